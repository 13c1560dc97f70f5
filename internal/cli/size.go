package cli

import (
	"time"

	"github.com/displayq/displayq"
	"github.com/displayq/displayq/internal/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Print the primary display's resolution",
	RunE:  runSize,
}

func init() {
	rootCmd.AddCommand(sizeCmd)
}

type sizeResult struct {
	Width  int   `yaml:"width"  json:"width"`
	Height int   `yaml:"height" json:"height"`
	TS     int64 `yaml:"ts"     json:"ts"`
}

func runSize(cmd *cobra.Command, args []string) error {
	backend, err := displayq.Detect()
	if err != nil {
		return err
	}
	log.Debug().Str("backend", backend.Name()).Msg("resolved display backend")

	info, err := backend.ScreenInfo()
	if err != nil {
		return err
	}
	return output.Print(sizeResult{
		Width:  info.Width,
		Height: info.Height,
		TS:     time.Now().Unix(),
	})
}
