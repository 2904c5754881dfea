package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/curvy"
	"github.com/phanxgames/curvy/canvas"
)

var (
	demoWidth  int
	demoHeight int
	demoScript string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open the interactive curve editor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := canvas.RunConfig{
			Title:  "curvy: cubic tool",
			Width:  demoWidth,
			Height: demoHeight,
		}
		if demoScript != "" {
			data, err := os.ReadFile(demoScript)
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			if cfg.Script, err = curvy.LoadScript(data); err != nil {
				return err
			}
		}
		return canvas.Run(newTool(), cfg)
	},
}

func init() {
	demoCmd.Flags().IntVar(&demoWidth, "width", 800, "window width")
	demoCmd.Flags().IntVar(&demoHeight, "height", 600, "window height")
	demoCmd.Flags().StringVar(&demoScript, "script", "", "gesture script to play in the window")
	rootCmd.AddCommand(demoCmd)
}
