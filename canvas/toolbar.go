package canvas

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/curvy"
)

// Toolbar is a text-only toolbar listing a tool's buttons. Buttons start
// hidden when their style says so, like the browser toolbar.
type Toolbar struct {
	buttons []curvy.ToolButton
	states  map[string]curvy.ClassSet
	visible map[string]bool
}

var (
	_ curvy.Toolbar       = (*Toolbar)(nil)
	_ curvy.ButtonClicker = (*Toolbar)(nil)
)

// NewToolbar builds a toolbar from the tool's buttons.
func NewToolbar(buttons []curvy.ToolButton) *Toolbar {
	tb := &Toolbar{
		buttons: buttons,
		states:  make(map[string]curvy.ClassSet, len(buttons)),
		visible: make(map[string]bool, len(buttons)),
	}
	for _, b := range buttons {
		tb.states[b.Name] = curvy.NewClassSet(b.Class)
		tb.visible[b.Name] = !strings.Contains(b.Style, "display:none")
	}
	return tb
}

// SetVisible shows or hides the named button.
func (tb *Toolbar) SetVisible(name string, visible bool) {
	if _, ok := tb.states[name]; ok {
		tb.visible[name] = visible
	}
}

// Visible reports whether the named button is shown.
func (tb *Toolbar) Visible(name string) bool { return tb.visible[name] }

// Active reports whether the named button carries the active class.
func (tb *Toolbar) Active(name string) bool { return tb.states[name].HasClass("active") }

// Click runs the named button's handler. Hidden buttons ignore clicks.
// Reports whether a handler ran.
func (tb *Toolbar) Click(name string) bool {
	if !tb.visible[name] {
		return false
	}
	for _, b := range tb.buttons {
		if b.Name == name && b.OnClick != nil {
			b.OnClick(tb.states[name])
			return true
		}
	}
	return false
}

func (tb *Toolbar) draw(screen *ebiten.Image, x, y int) {
	for _, b := range tb.buttons {
		if !tb.visible[b.Name] {
			continue
		}
		state := "off"
		if tb.Active(b.Name) {
			state = "on"
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("[%s] %s", b.Name, state), x, y)
		y += 16
	}
}
