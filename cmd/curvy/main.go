package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/curvy"
)

var (
	flagSegments int
	flagUnlocked bool
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:   "curvy",
	Short: "Cubic wall-curve editing tool",
	Long: `curvy places and edits cubic curves made of two endpoints and two
control points. Run the interactive editor with "demo" or play a recorded
gesture script headlessly with "replay".`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			curvy.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
		curvy.DefaultSettings.LockHandles = !flagUnlocked
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagSegments, "segments", curvy.DefaultSegments, "number of wall segments along the curve")
	rootCmd.PersistentFlags().BoolVar(&flagUnlocked, "unlocked", false, "start with endpoint/control handles unlocked")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log tool events to stderr")
}

func newTool() *curvy.CubicTool {
	return curvy.NewCubicTool(curvy.WithConfig(curvy.Config{Segments: flagSegments}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
