// Package cmd contains the commands of the lists binary.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	logFormatFlag = "log-format"
	logLevelFlag  = "log-level"
)

// NewRootCommand reads flags from the command line or from environment
// variables prefixed with LISTS, in that order.
func NewRootCommand() *cobra.Command {
	viper.SetEnvPrefix("LISTS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Exercise the stack, persistent stack and deque containers",
		Long: `Exercise the stack, persistent stack and deque containers.

Each container follows its own ownership discipline: the stack owns every
node exclusively, the persistent stack shares immutable nodes between
handles, and the deque shares nodes between neighbors and mutates them
through runtime-checked borrows.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.String(logFormatFlag, "text", "log format: text or json")
	flags.String(logLevelFlag, "info", "log level: none, debug, info, warn or error")
	mustBindPFlag(logFormatFlag, flags.Lookup(logFormatFlag))
	mustBindPFlag(logLevelFlag, flags.Lookup(logLevelFlag))

	return cmd
}

// mustBindPFlag binds key to a flag and panics if the binding fails.
func mustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}
