// Package curvy provides interactive editing tools for curved wall shapes on
// a 2D canvas.
//
// The main tool is [CubicTool]: a cubic curve given by two endpoints
// (LineA, LineB) and two control points (ControlA, ControlB). Pointer input
// reaches the tool through a [Dispatcher], which asks the tool for an
// [InputHandler] on each press and drives that handler until the gesture is
// released or cancelled.
//
// # Quick start
//
//	tool := curvy.NewCubicTool()
//	d := curvy.NewDispatcher(tool)
//
//	// From your input loop, once per frame:
//	d.Pointer(x, y, buttonDown, curvy.PointerEvent{})
//
//	// From your draw loop:
//	tool.DrawHandles(graphics)
//
// The canvas subpackage provides an ebiten implementation of [Graphics] and a
// ready-made editor window:
//
//	canvas.Run(curvy.NewCubicTool(), canvas.RunConfig{Width: 800, Height: 600})
//
// # Placement
//
// A fresh tool is [ModeNotPlaced]. The first press switches it to
// [ModePlacing] and starts the initializer gesture: LineA stays at the press
// point, LineB follows the pointer, and both control points are derived
// perpendicular to the chord at two thirds of its length. Releasing after
// a drag places the tool ([ModePlaced]); a click without a drag, or a cancel,
// reverts to [ModeNotPlaced]. Point changes made during a cancelled placement
// are kept.
//
// # Editing
//
// Once placed, a press is tested in this order, first match wins:
//
//  1. LineA, then LineB, within Config.HandleRadius. With
//     Settings.LockHandles set the endpoint drags its control point along
//     ([MagnetHandler]); otherwise it moves alone ([PointHandler]).
//  2. ControlA, then ControlB: always moved alone.
//  3. Inside the control polygon: the whole shape is translated
//     ([PointArrayHandler]).
//
// Overlapping handles are resolved by that order, never by distance.
//
// # Shared settings
//
// [Settings] is shared by every tool created with the same cell
// ([DefaultSettings] unless [WithSettings] is given). The lock toggle
// returned by [CubicTool.Tools] is its only writer.
//
// # Scripts
//
// Gestures can be injected ([Dispatcher.InjectDrag] and friends) or loaded
// from JSON with [LoadScript] and played headlessly with [Script.Run]:
//
//	{"steps": [
//	  {"action": "drag", "fromX": 0, "fromY": 0, "toX": 90, "toY": 0, "frames": 4},
//	  {"action": "lock"},
//	  {"action": "drag", "fromX": 90, "fromY": 0, "toX": 90, "toY": 30, "frames": 3}
//	]}
//
// A script stepped inside a window should click that window's toolbar;
// pass it to [Script.UseToolbar].
//
// # Logging
//
// curvy is silent by default. Install a [log/slog] logger with [SetLogger] to
// see mode transitions and gesture boundaries at debug level.
//
// # Threading
//
// curvy is single-threaded: call every method from the goroutine that
// handles input and drawing.
package curvy
