// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/scroll/scrollpane.go
// Summary: Container widget that scrolls a child taller than its viewport.
// Handles keyboard and wheel input; offset can also be driven externally for
// animated scrolling.

package scroll

import (
	"github.com/gdamore/tcell/v2"

	"vitrine/ui/core"
)

// ScrollPane scrolls its child when content exceeds the viewport. The pane is
// focusable so it can receive PgUp/PgDn and wheel events.
type ScrollPane struct {
	core.BaseWidget
	Style          tcell.Style
	IndicatorStyle tcell.Style

	child           core.Widget
	contentHeight   int
	state           State
	inv             func(core.Rect)
	showIndicators  bool
	indicatorConfig IndicatorConfig
	lastFocused     core.Widget
	trapsFocus      bool

	// OnScroll fires after the offset changes from user input (not from
	// SetOffset), letting the owner run its scroll-effect pipeline.
	OnScroll func(offset int)
}

// NewScrollPane creates a scroll pane with the given geometry and style.
func NewScrollPane(x, y, w, h int, style tcell.Style) *ScrollPane {
	sp := &ScrollPane{
		Style:          style,
		IndicatorStyle: style,
		showIndicators: true,
	}
	sp.SetPosition(x, y)
	sp.Resize(w, h)
	sp.SetFocusable(true)
	sp.indicatorConfig = DefaultIndicatorConfig(sp.IndicatorStyle)
	return sp
}

// SetChild sets the child widget to be scrolled.
func (sp *ScrollPane) SetChild(child core.Widget) {
	sp.child = child
	if child != nil {
		if sp.inv != nil {
			if ia, ok := child.(core.InvalidationAware); ok {
				ia.SetInvalidator(sp.inv)
			}
		}
		_, h := child.Size()
		sp.contentHeight = h
		sp.state = sp.state.WithContentHeight(h).WithViewportHeight(sp.Rect.H)
	} else {
		sp.contentHeight = 0
		sp.state = NewState(0, sp.Rect.H)
	}
}

// GetChild returns the child widget.
func (sp *ScrollPane) GetChild() core.Widget { return sp.child }

// SetContentHeight explicitly sets the content height when the child does not
// report its full height.
func (sp *ScrollPane) SetContentHeight(h int) {
	sp.contentHeight = h
	sp.state = sp.state.WithContentHeight(h).WithViewportHeight(sp.Rect.H)
}

// ContentHeight returns the current content height.
func (sp *ScrollPane) ContentHeight() int { return sp.contentHeight }

// ScrollOffset returns the current scroll offset.
func (sp *ScrollPane) ScrollOffset() int { return sp.state.Offset }

// State returns the current scroll state.
func (sp *ScrollPane) State() State { return sp.state }

// SetInvalidator sets the invalidation callback.
func (sp *ScrollPane) SetInvalidator(fn func(core.Rect)) {
	sp.inv = fn
	if sp.child != nil {
		if ia, ok := sp.child.(core.InvalidationAware); ok {
			ia.SetInvalidator(fn)
		}
	}
}

func (sp *ScrollPane) invalidate() {
	if sp.inv != nil {
		sp.inv(sp.Rect)
	}
}

// ShowIndicators enables or disables scroll indicators.
func (sp *ScrollPane) ShowIndicators(show bool) { sp.showIndicators = show }

// SetIndicatorConfig sets the indicator configuration.
func (sp *ScrollPane) SetIndicatorConfig(config IndicatorConfig) { sp.indicatorConfig = config }

// Draw renders the pane with its scrolled child. The child's position is
// managed here: its Y is shifted by the scroll offset so content above the
// viewport moves out of view. Single-threaded UI, so mutating the child's
// position during draw is safe.
func (sp *ScrollPane) Draw(painter *core.Painter) {
	style := sp.EffectiveStyle(sp.Style)
	rect := sp.Rect

	painter.Fill(rect, ' ', style)
	if sp.child == nil {
		return
	}

	// Auto-scroll only on focus changes so manual scrolling does not fight back.
	currentFocused := sp.findFocusedWidget(sp.child)
	if currentFocused != sp.lastFocused {
		sp.lastFocused = currentFocused
		if currentFocused != nil {
			sp.EnsureFocusedVisible()
		}
	}

	sp.child.SetPosition(rect.X, rect.Y-sp.state.Offset)
	sp.child.Draw(painter.WithClip(rect))

	if sp.showIndicators {
		DrawIndicators(painter, rect, sp.state, sp.indicatorConfig)
	}
}

// Resize updates the viewport dimensions and recalculates scroll state.
func (sp *ScrollPane) Resize(w, h int) {
	sp.BaseWidget.Resize(w, h)
	sp.state = sp.state.WithViewportHeight(h)
}

func (sp *ScrollPane) applyState(next State, fromInput bool) {
	if next.Offset == sp.state.Offset {
		sp.state = next
		return
	}
	sp.state = next
	sp.invalidate()
	if fromInput && sp.OnScroll != nil {
		sp.OnScroll(sp.state.Offset)
	}
}

// ScrollBy scrolls by the given delta (positive = down, negative = up).
func (sp *ScrollPane) ScrollBy(delta int) {
	sp.applyState(sp.state.ScrollBy(delta), true)
}

// ScrollTo scrolls to make the given row visible with minimal movement.
func (sp *ScrollPane) ScrollTo(row int) {
	sp.applyState(sp.state.ScrollTo(row), true)
}

// ScrollToCentered scrolls to center the given row in the viewport.
func (sp *ScrollPane) ScrollToCentered(row int) {
	sp.applyState(sp.state.ScrollToCentered(row), true)
}

// ScrollToTop scrolls to the top of the content.
func (sp *ScrollPane) ScrollToTop() {
	sp.applyState(sp.state.ScrollToTop(), true)
}

// ScrollToBottom scrolls to the bottom of the content.
func (sp *ScrollPane) ScrollToBottom() {
	sp.applyState(sp.state.ScrollToBottom(), true)
}

// SetOffset drives the offset directly, e.g. from an animation frame. Does
// not fire OnScroll; the animator already knows the offset.
func (sp *ScrollPane) SetOffset(offset int) {
	sp.applyState(sp.state.WithOffset(offset), false)
}

// EnsureFocusedVisible scrolls to make the currently focused widget visible.
func (sp *ScrollPane) EnsureFocusedVisible() {
	if sp.child == nil {
		return
	}
	focused := sp.findFocusedWidget(sp.child)
	if focused == nil {
		return
	}

	_, widgetY := focused.Position()
	_, widgetH := focused.Size()
	contentY := widgetY - sp.Rect.Y + sp.state.Offset

	if sp.state.IsRowVisible(contentY) && sp.state.IsRowVisible(contentY+widgetH-1) {
		return
	}
	sp.ScrollTo(contentY)
}

func (sp *ScrollPane) findFocusedWidget(w core.Widget) core.Widget {
	if fs, ok := w.(core.FocusState); ok && fs.IsFocused() {
		return w
	}
	if cc, ok := w.(core.ChildContainer); ok {
		var found core.Widget
		cc.VisitChildren(func(child core.Widget) {
			if found != nil {
				return
			}
			found = sp.findFocusedWidget(child)
		})
		return found
	}
	return nil
}

// SetTrapsFocus sets whether this pane wraps focus at boundaries. Enable for
// root containers that should cycle focus internally.
func (sp *ScrollPane) SetTrapsFocus(trap bool) { sp.trapsFocus = trap }

// TrapsFocus returns whether this pane wraps focus at boundaries.
func (sp *ScrollPane) TrapsFocus() bool { return sp.trapsFocus }

// CycleFocus moves focus to the next (forward) or previous child. Returns true
// if focus was cycled, false at a boundary when the pane does not trap focus.
func (sp *ScrollPane) CycleFocus(forward bool) bool {
	if sp.child == nil {
		return false
	}
	if fc, ok := sp.child.(core.FocusCycler); ok {
		if fc.CycleFocus(forward) {
			sp.EnsureFocusedVisible()
			return true
		}
	}
	if sp.trapsFocus {
		if forward {
			sp.focusEdgeInChild(true)
		} else {
			sp.focusEdgeInChild(false)
		}
		sp.EnsureFocusedVisible()
		return true
	}
	return false
}

func (sp *ScrollPane) focusEdgeInChild(first bool) {
	if sp.child == nil {
		return
	}
	var target core.Widget
	if first {
		target = findFirstFocusable(sp.child)
	} else {
		target = findLastFocusable(sp.child)
	}
	if target != nil {
		target.Focus()
	}
}

func findFirstFocusable(w core.Widget) core.Widget {
	if cc, ok := w.(core.ChildContainer); ok {
		var found core.Widget
		cc.VisitChildren(func(child core.Widget) {
			if found != nil {
				return
			}
			found = findFirstFocusable(child)
		})
		if found != nil {
			return found
		}
	}
	if w.Focusable() {
		return w
	}
	return nil
}

func findLastFocusable(w core.Widget) core.Widget {
	if cc, ok := w.(core.ChildContainer); ok {
		var children []core.Widget
		cc.VisitChildren(func(child core.Widget) {
			children = append(children, child)
		})
		for i := len(children) - 1; i >= 0; i-- {
			if last := findLastFocusable(children[i]); last != nil {
				return last
			}
		}
	}
	if w.Focusable() {
		return w
	}
	return nil
}

// HandleKey handles keyboard input for scrolling; other keys go to the child.
func (sp *ScrollPane) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyPgUp:
		sp.ScrollBy(-sp.Rect.H)
		return true
	case tcell.KeyPgDn:
		sp.ScrollBy(sp.Rect.H)
		return true
	case tcell.KeyHome:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			sp.ScrollToTop()
			return true
		}
	case tcell.KeyEnd:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			sp.ScrollToBottom()
			return true
		}
	}

	if sp.child != nil {
		if sp.child.HandleKey(ev) {
			sp.EnsureFocusedVisible()
			return true
		}
	}
	return false
}

// HandleMouse handles wheel scrolling; other mouse events go to the child.
func (sp *ScrollPane) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	if !sp.HitTest(x, y) {
		return false
	}

	switch ev.Buttons() {
	case tcell.WheelUp:
		sp.ScrollBy(-3)
		return true
	case tcell.WheelDown:
		sp.ScrollBy(3)
		return true
	}

	if sp.child != nil {
		if ma, ok := sp.child.(core.MouseAware); ok {
			return ma.HandleMouse(ev)
		}
	}
	return true
}

// VisitChildren implements core.ChildContainer for focus traversal.
func (sp *ScrollPane) VisitChildren(f func(core.Widget)) {
	if sp.child != nil {
		f(sp.child)
	}
}

// WidgetAt implements core.HitTester. The pane returns itself so it receives
// wheel events; child routing happens in HandleMouse.
func (sp *ScrollPane) WidgetAt(x, y int) core.Widget {
	if !sp.HitTest(x, y) {
		return nil
	}
	return sp
}

// CanScroll returns true if the content can be scrolled.
func (sp *ScrollPane) CanScroll() bool { return sp.state.CanScroll() }

// CanScrollUp returns true if there is content above the viewport.
func (sp *ScrollPane) CanScrollUp() bool { return sp.state.CanScrollUp() }

// CanScrollDown returns true if there is content below the viewport.
func (sp *ScrollPane) CanScrollDown() bool { return sp.state.CanScrollDown() }
