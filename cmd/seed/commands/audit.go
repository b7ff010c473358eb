package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newAuditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Scan the repository for lint suppression markers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Audit(cmd.Context(), ".")
		},
	}
}
