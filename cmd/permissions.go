package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deskhand/deskhand/internal/output"
	"github.com/deskhand/deskhand/internal/platform"
)

// PermissionsResult is the output of `permissions`.
type PermissionsResult struct {
	OK      bool            `yaml:"ok"      json:"ok"`
	Backend string          `yaml:"backend" json:"backend"`
	Granted map[string]bool `yaml:"granted" json:"granted"`
}

var permissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "Report platform permission status",
	Long:  "Report which platform capabilities are currently granted. Status query only; never triggers a system prompt.",
	RunE:  runPermissions,
}

func init() {
	rootCmd.AddCommand(permissionsCmd)
}

func runPermissions(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	granted, err := backend.CheckPermissions()
	if err != nil {
		return err
	}
	return output.Print(PermissionsResult{OK: true, Backend: backend.Name(), Granted: granted})
}
