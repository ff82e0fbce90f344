package dashboard

import (
	"log"

	"github.com/fvall/claydash/internal/layout"
)

// Layout callbacks. The engine runs every registered callback once per
// frame whether or not the pointer is over its element, so each one
// hit-tests its own element before acting.
//
// Edge policy per control:
//   - Reset fires on PressedThisFrame.
//   - Exit fires on ReleasedThisFrame.
//   - Everything else fires on the zero pointer state, which is also
//     PressedThisFrame.

// pointerOver hit-tests against the box id had in this frame's layout.
// An open dropdown under the pointer hides whatever it covers. p is the
// pointer the callback was handed, which is also the context's.
func (a *App) pointerOver(id layout.ID, p layout.PointerData) bool {
	if a.ctx == nil || id.IsZero() {
		return false
	}
	return a.ctx.Pointer().Position == p.Position && a.ctx.PointerOver(id)
}

// overMenus reports whether p is over either menu button or the open
// dropdown floating under it.
func (a *App) overMenus(p layout.PointerData) bool {
	for i := range a.menus {
		m := &a.menus[i]
		if a.pointerOver(m.ElementID, p) {
			return true
		}
		if m.Open && a.pointerOver(dropdownID(i), p) {
			return true
		}
	}
	return false
}

func (a *App) handleReset(id layout.ID, p layout.PointerData, userData uint64) {
	if id.IsZero() {
		return
	}
	app, ok := a.resolveApp(userData)
	if !ok || id != resetID {
		return
	}
	if app.pointerOver(id, p) && p.State == layout.PressedThisFrame {
		app.Reset()
	}
}

func (a *App) handleExit(id layout.ID, p layout.PointerData, userData uint64) {
	if id.IsZero() {
		return
	}
	app, ok := a.resolveApp(userData)
	if !ok || id != exitID {
		return
	}
	if app.pointerOver(id, p) && p.State == layout.ReleasedThisFrame {
		app.ShouldClose = true
	}
}

// handleMenuClick toggles a menu and closes the other one.
func (a *App) handleMenuClick(id layout.ID, p layout.PointerData, userData uint64) {
	if p.State != layout.PressedThisFrame || !a.pointerOver(id, p) {
		return
	}
	m, ok := a.resolveMenu(userData)
	if !ok {
		return
	}
	if m.parent == nil {
		log.Printf("[ERROR] Menu %q has no parent; was Init called?", id.Name)
		return
	}
	was := m.Open
	m.parent.Unclick()
	m.Open = !was
}

// handleBackgroundClick closes the menus on a press outside them. It
// backs the sidebar, the header and the chart area.
func (a *App) handleBackgroundClick(id layout.ID, p layout.PointerData, userData uint64) {
	app, ok := a.resolveApp(userData)
	if !ok || !app.pointerOver(id, p) {
		return
	}
	if app.overMenus(p) {
		return
	}
	if p.State == layout.PressedThisFrame {
		app.Unclick()
	}
}

// handleCanvasClick is handleBackgroundClick for the root, which leaves
// presses on the chart to the chart's own callback.
func (a *App) handleCanvasClick(id layout.ID, p layout.PointerData, userData uint64) {
	if a.pointerOver(chartID, p) {
		return
	}
	a.handleBackgroundClick(id, p, userData)
}

func (a *App) handleChartItemClick(id layout.ID, p layout.PointerData, userData uint64) {
	if p.State != layout.PressedThisFrame || !a.pointerOver(id, p) {
		return
	}
	d, m, ok := a.dropdownOwner(userData)
	if !ok {
		return
	}
	m.parent.selectChartKind(m, d.Label)
}

func (a *App) handleDistItemClick(id layout.ID, p layout.PointerData, userData uint64) {
	if p.State != layout.PressedThisFrame || !a.pointerOver(id, p) {
		return
	}
	d, m, ok := a.dropdownOwner(userData)
	if !ok {
		return
	}
	m.parent.selectDistribution(m, d.Label)
}

func (a *App) handleSimulate(id layout.ID, p layout.PointerData, userData uint64) {
	if p.State != layout.PressedThisFrame || !a.pointerOver(id, p) {
		return
	}
	if app, ok := a.resolveApp(userData); ok {
		app.Simulate()
	}
}

// dropdownOwner follows a dropdown handle to its entry and menu.
func (a *App) dropdownOwner(userData uint64) (*DropdownState, *MenuState, bool) {
	d, ok := a.resolveDropdown(userData)
	if !ok {
		return nil, nil, false
	}
	if d.menu < 0 || d.menu >= len(a.menus) {
		log.Printf("[ERROR] Dropdown %q is not attached to a menu; was Init called?", d.Label)
		return nil, nil, false
	}
	m := &a.menus[d.menu]
	if m.parent == nil {
		log.Printf("[ERROR] Menu of dropdown %q has no parent; was Init called?", d.Label)
		return nil, nil, false
	}
	return d, m, true
}
