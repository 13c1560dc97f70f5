package cli

import (
	"time"

	"github.com/displayq/displayq"
	"github.com/displayq/displayq/internal/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var cursorCmd = &cobra.Command{
	Use:   "cursor",
	Short: "Print the current cursor position",
	Long:  "Print the pointer location in physical pixels, origin at the top-left of the primary display.",
	RunE:  runCursor,
}

func init() {
	rootCmd.AddCommand(cursorCmd)
	cursorCmd.Flags().Bool("follow", false, "Keep polling and print on every change")
	cursorCmd.Flags().Int("interval", 100, "Polling interval in milliseconds for --follow")
}

type cursorResult struct {
	X  int   `yaml:"x"  json:"x"`
	Y  int   `yaml:"y"  json:"y"`
	TS int64 `yaml:"ts" json:"ts"`
}

func runCursor(cmd *cobra.Command, args []string) error {
	backend, err := displayq.Detect()
	if err != nil {
		return err
	}
	log.Debug().Str("backend", backend.Name()).Msg("resolved display backend")

	follow, _ := cmd.Flags().GetBool("follow")
	interval, _ := cmd.Flags().GetInt("interval")

	if !follow {
		pos, err := backend.CursorPosition()
		if err != nil {
			return err
		}
		return output.Print(cursorResult{X: pos.X, Y: pos.Y, TS: time.Now().Unix()})
	}

	// No portable movement events exist, so follow mode samples the
	// position and prints only when it changes. The sleep keeps the
	// loop off 100% CPU.
	var last displayq.CursorPosition
	seen := false
	for {
		pos, err := backend.CursorPosition()
		if err != nil {
			return err
		}
		if !seen || pos != last {
			if err := output.Print(cursorResult{X: pos.X, Y: pos.Y, TS: time.Now().Unix()}); err != nil {
				return err
			}
			last = pos
			seen = true
		}
		time.Sleep(time.Duration(interval) * time.Millisecond)
	}
}
