package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/seed/internal/app"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Copy template files into the current repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			noGit, _ := cmd.Flags().GetBool("no-git")
			force, _ := cmd.Flags().GetString("force")
			templateRoot, _ := cmd.Flags().GetString("template-root")
			return c.app.Sync(cmd.Context(), app.SyncOptions{
				DryRun:       dryRun,
				NoGit:        noGit,
				ForceSpec:    force,
				TemplateRoot: templateRoot,
				TargetRoot:   ".",
			})
		},
	}
	cmd.Flags().BoolP("dry-run", "n", false, "Log planned actions without touching the filesystem or repository")
	cmd.Flags().Bool("no-git", false, "Skip branch preparation and staging")
	cmd.Flags().StringP("force", "f", "", "Overwrite existing destinations: 'all' or a comma-separated subset of files,stubs,workflows")
	cmd.Flags().String("template-root", "", "Template directory (overrides "+app.TemplateRootEnv+" and the manifest)")
	return cmd
}
