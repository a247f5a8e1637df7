package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/helmcode/skillready/pkg/config"
	"github.com/helmcode/skillready/pkg/formatter"
	"github.com/helmcode/skillready/pkg/taxonomy"
)

var (
	rolesOutputFormat string
	rolesTaxonomy     string
)

func NewRolesCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles [ROLE]",
		Short: "List role profiles or show which profile a role resolves to",
		Long: `Without arguments, list every role profile in the taxonomy.
With a role text, show the profile it resolves to.

Examples:
  # List the built-in roles
  skillready roles

  # See which profile a free-text role maps to
  skillready roles "Senior Backend Developer"

  # Export the taxonomy as a starting point for a custom one
  skillready roles -o yaml > roles.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRoles,
	}

	cmd.Flags().StringVarP(&rolesOutputFormat, "output", "o", cfg.Output, "Output format (human, json, yaml)")
	cmd.Flags().StringVar(&rolesTaxonomy, "taxonomy", cfg.TaxonomyPath, "Custom role taxonomy file (YAML or JSON)")

	return cmd
}

func runRoles(cmd *cobra.Command, args []string) error {
	if err := validateOutputFormat(rolesOutputFormat); err != nil {
		return err
	}

	store, err := taxonomy.LoadFile(rolesTaxonomy)
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}

	if len(args) == 0 {
		return formatter.DisplayRoles(os.Stdout, store.Roles(), rolesOutputFormat)
	}

	profile := store.Lookup(args[0])
	if rolesOutputFormat == "human" {
		fmt.Printf("%q resolves to %s\n", args[0], color.CyanString(profile.Key))
	}
	return formatter.DisplayRoles(os.Stdout, []taxonomy.RoleProfile{profile}, rolesOutputFormat)
}
