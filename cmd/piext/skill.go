package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ManuelSelch/pi-agent-demo/pkg/skills"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "List and show skill documents",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all discovered skills",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		discovery, err := newSkillDiscovery()
		if err != nil {
			return err
		}

		found, err := discovery.DiscoverSkills()
		if err != nil {
			return err
		}
		found = skills.FilterByPatterns(found, viper.GetStringSlice("skills.allowed"))

		if len(found) == 0 {
			out.Info("no skills found")
			return nil
		}

		names := make([]string, 0, len(found))
		for name := range found {
			names = append(names, name)
		}
		sort.Strings(names)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tDESCRIPTION\tDIRECTORY")
		for _, name := range names {
			skill := found[name]
			fmt.Fprintf(w, "%s\t%s\t%s\n", skill.Name, skill.Description, skill.Directory)
		}
		return w.Flush()
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <skill-name>",
	Short: "Show a skill document body",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		discovery, err := newSkillDiscovery()
		if err != nil {
			return err
		}

		skill, err := discovery.GetSkill(args[0])
		if err != nil {
			return err
		}

		out.Section(skill.Name)
		out.Info(skill.Description)
		fmt.Println()
		fmt.Println(skill.Content)
		return nil
	},
}

func newSkillDiscovery() (*skills.Discovery, error) {
	if dirs := viper.GetStringSlice("skills.dirs"); len(dirs) > 0 {
		return skills.NewDiscovery(skills.WithSkillDirs(dirs...))
	}
	return skills.NewDiscovery()
}

func init() {
	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
	rootCmd.AddCommand(skillCmd)
}
