// Command piext packages this repository's agent extensions as a single
// binary: it serves the hook executable protocol the agent host uses to
// invoke the command guard, and exposes the greeting command, skill
// documents, and prompt templates for local use.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ManuelSelch/pi-agent-demo/pkg/logger"
	"github.com/ManuelSelch/pi-agent-demo/pkg/presenter"
)

var rootCmd = &cobra.Command{
	Use:   "piext",
	Short: "Extensions, skills, and prompts for the pi coding agent",
	Long: `piext bundles the pi agent extensions shipped in this repository:
the hello greeting command, the sudo command guard, skill documents, and
prompt templates. The guard is also exposed through the hook executable
protocol ("piext hook" / "piext run") so the agent host can invoke it on
every shell tool call.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			return err
		}
		logger.SetLogFormat(viper.GetString("log_format"))
		out.SetQuiet(viper.GetBool("quiet"))
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

// out is the presenter shared by all subcommands.
var out = presenter.New()

func init() {
	viper.SetEnvPrefix("PIEXT")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.pi")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig()

	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress non-essential output")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func main() {
	ctx := context.Background()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		out.Error(err, "command failed")
		os.Exit(1)
	}
}
