package cli

import (
	"time"

	"github.com/displayq/displayq"
	"github.com/displayq/displayq/internal/output"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the primary display's resolution, scale, and backend",
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

type infoResult struct {
	Backend string  `yaml:"backend" json:"backend"`
	Width   int     `yaml:"width"   json:"width"`
	Height  int     `yaml:"height"  json:"height"`
	Scale   float64 `yaml:"scale"   json:"scale"`
	TS      int64   `yaml:"ts"      json:"ts"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	backend, err := displayq.Detect()
	if err != nil {
		return err
	}
	info, err := backend.ScreenInfo()
	if err != nil {
		return err
	}
	return output.Print(infoResult{
		Backend: backend.Name(),
		Width:   info.Width,
		Height:  info.Height,
		Scale:   info.Scale,
		TS:      time.Now().Unix(),
	})
}
