package cli

import (
	"github.com/displayq/displayq"
	"github.com/displayq/displayq/internal/output"
	"github.com/spf13/cobra"
)

var displaysCmd = &cobra.Command{
	Use:   "displays",
	Short: "List connected displays with their bounds",
	Long:  "List every active display's rectangle in virtual-desktop coordinates. Display 0 is the primary.",
	RunE:  runDisplays,
}

func init() {
	rootCmd.AddCommand(displaysCmd)
}

func runDisplays(cmd *cobra.Command, args []string) error {
	backend, err := displayq.Detect()
	if err != nil {
		return err
	}
	displays, err := backend.Displays()
	if err != nil {
		return err
	}
	return output.Print(displays)
}
