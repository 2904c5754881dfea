package curvy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// placedTool returns a placed tool with its own settings cell. data is in
// handle order: lineA, controlA, controlB, lineB.
func placedTool(t *testing.T, lock bool, data ...float64) *CubicTool {
	t.Helper()
	tool := NewCubicTool(WithSettings(&Settings{LockHandles: lock}))
	require.NoError(t, tool.Restore(data))
	return tool
}

// archTool is a placed tool whose control points sit above the chord:
// lineA (0,0), controlA (0,-100), controlB (100,-100), lineB (100,0).
func archTool(t *testing.T, lock bool) *CubicTool {
	return placedTool(t, lock, 0, 0, 0, -100, 100, -100, 100, 0)
}
