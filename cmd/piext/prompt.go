package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ManuelSelch/pi-agent-demo/pkg/prompts"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "List and render prompt templates",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var promptListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available prompt templates",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		processor, err := newPromptProcessor()
		if err != nil {
			return err
		}

		names, err := processor.List()
		if err != nil {
			return err
		}

		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var promptRenderCmd = &cobra.Command{
	Use:   "render <name>",
	Short: "Render a prompt template",
	Long: `Render a prompt template with optional arguments.

Examples:
  piext prompt render commit-message
  piext prompt render code-review --arg target=origin/main`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawArgs, err := cmd.Flags().GetStringArray("arg")
		if err != nil {
			return err
		}

		templateArgs, err := parsePromptArgs(rawArgs)
		if err != nil {
			return err
		}

		processor, err := newPromptProcessor()
		if err != nil {
			return err
		}

		rendered, err := processor.Load(cmd.Context(), &prompts.Config{
			Name:      args[0],
			Arguments: templateArgs,
		})
		if err != nil {
			return err
		}

		fmt.Print(rendered)
		return nil
	},
}

// parsePromptArgs parses key=value pairs from --arg flags.
func parsePromptArgs(raw []string) (map[string]string, error) {
	args := make(map[string]string, len(raw))
	for _, pair := range raw {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, errors.Errorf("invalid argument %q, expected key=value", pair)
		}
		args[key] = value
	}
	return args, nil
}

func newPromptProcessor() (*prompts.Processor, error) {
	if dirs := viper.GetStringSlice("prompts.dirs"); len(dirs) > 0 {
		return prompts.NewProcessor(prompts.WithPromptDirs(dirs...))
	}
	return prompts.NewProcessor()
}

func init() {
	promptRenderCmd.Flags().StringArray("arg", nil, "Template argument as key=value (repeatable)")
	promptCmd.AddCommand(promptListCmd)
	promptCmd.AddCommand(promptRenderCmd)
	rootCmd.AddCommand(promptCmd)
}
