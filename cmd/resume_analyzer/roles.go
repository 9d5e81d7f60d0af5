package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List configured role profiles",
	Long:  "Lists every role profile in the configuration with its weighted required skills.",
	RunE:  runRoles,
}

var rolesConfigPath string

func init() {
	rolesCmd.Flags().StringVarP(&rolesConfigPath, "config", "c", "", "Analyzer config file (default: embedded config)")
	rootCmd.AddCommand(rolesCmd)
}

func runRoles(cmd *cobra.Command, _ []string) error {
	cfg, err := loadAnalyzerConfig(rolesConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	for _, role := range cfg.RoleProfiles {
		cmd.Printf("%s (total weight %d)\n", role.Name, role.TotalWeight())
		for _, req := range role.RequiredSkills {
			cmd.Printf("  %-24s %d\n", req.Skill, req.Weight)
		}
		cmd.Println()
	}
	return nil
}
