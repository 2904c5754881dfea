package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/curvy"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.json>",
	Short: "Play a gesture script against a fresh tool and print its state",
	Long: `Replay reads a JSON gesture script ({"steps": [...]} with press, move,
release, drag, cancel, lock and wait actions), plays it one step per frame
against a new cubic tool and prints the resulting tool state as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

type toolState struct {
	Mode        string       `json:"mode"`
	LockHandles bool         `json:"lockHandles"`
	Frames      int          `json:"frames"`
	Data        []float64    `json:"data"`
	Curve       []curvy.Vec2 `json:"curve,omitempty"`
}

func runReplay(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	script, err := curvy.LoadScript(data)
	if err != nil {
		return err
	}

	tool := newTool()
	d := curvy.NewDispatcher(tool)
	frames := script.Run(d)

	st := toolState{
		Mode:        tool.Mode().String(),
		LockHandles: tool.Settings().LockHandles,
		Frames:      frames,
		Data:        tool.Data(),
	}
	if tool.Mode() == curvy.ModePlaced {
		st.Curve = tool.Curve(0)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(st)
}
