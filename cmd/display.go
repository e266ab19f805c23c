package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deskhand/deskhand/internal/output"
	"github.com/deskhand/deskhand/internal/platform"
)

// DisplayListResult is the output of `display list`.
type DisplayListResult struct {
	OK       bool                   `yaml:"ok"       json:"ok"`
	Displays []platform.DisplayInfo `yaml:"displays" json:"displays"`
}

// DisplayResult is the output of `display primary`.
type DisplayResult struct {
	OK      bool                 `yaml:"ok"      json:"ok"`
	Display platform.DisplayInfo `yaml:"display" json:"display"`
}

// VirtualScreenResult is the output of `display virtual`.
type VirtualScreenResult struct {
	OK   bool          `yaml:"ok"   json:"ok"`
	Rect platform.Rect `yaml:"rect" json:"rect"`
}

var displayCmd = &cobra.Command{
	Use:   "display",
	Short: "Inspect connected displays",
}

var displayListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all displays",
	RunE:  runDisplayList,
}

var displayPrimaryCmd = &cobra.Command{
	Use:   "primary",
	Short: "Show the primary display",
	RunE:  runDisplayPrimary,
}

var displayVirtualCmd = &cobra.Command{
	Use:   "virtual",
	Short: "Show the virtual screen bounding box",
	RunE:  runDisplayVirtual,
}

func init() {
	rootCmd.AddCommand(displayCmd)
	displayCmd.AddCommand(displayListCmd)
	displayCmd.AddCommand(displayPrimaryCmd)
	displayCmd.AddCommand(displayVirtualCmd)
}

func runDisplayList(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	displays, err := backend.Displays()
	if err != nil {
		return err
	}
	return output.Print(DisplayListResult{OK: true, Displays: displays})
}

func runDisplayPrimary(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	display, err := backend.PrimaryDisplay()
	if err != nil {
		return err
	}
	return output.Print(DisplayResult{OK: true, Display: display})
}

func runDisplayVirtual(cmd *cobra.Command, args []string) error {
	backend, err := platform.GetBackend()
	if err != nil {
		return err
	}
	rect, err := backend.VirtualScreenRect()
	if err != nil {
		return err
	}
	return output.Print(VirtualScreenResult{OK: true, Rect: rect})
}
