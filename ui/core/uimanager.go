// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/core/uimanager.go
// Summary: Widget registry, focus, input routing and dirty-region rendering.

package core

import (
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// UIManager owns a small widget tree and composes it into a cell buffer.
// Later entries in the widget list draw on top; ZIndexer overrides the order.
//
// Widget operations (add/remove, focus, input, render) belong to the single UI
// goroutine; widget callbacks may re-enter the manager freely. Only the dirty
// list, the notifier and the surface size are shared with other goroutines
// (timers, workers), guarded by dirtyMu.
type UIManager struct {
	dirtyMu sync.Mutex // protects dirty list, notifier and W/H
	W, H    int
	widgets []Widget
	bgStyle tcell.Style

	notifier chan<- bool
	focused  Widget
	capture  Widget
	buf      [][]Cell
	dirty    []Rect

	// AdvanceFocusOnEnter moves focus to the next widget after Enter is
	// handled, for form-style data entry.
	AdvanceFocusOnEnter bool
}

// NewUIManager creates a manager composing onto the given background style.
func NewUIManager(bg tcell.Style) *UIManager {
	return &UIManager{bgStyle: bg}
}

// SetRefreshNotifier installs the channel poked whenever a redraw is needed.
func (u *UIManager) SetRefreshNotifier(ch chan<- bool) {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.notifier = ch
}

// Resize updates the surface dimensions and invalidates everything.
func (u *UIManager) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	u.dirtyMu.Lock()
	u.W, u.H = w, h
	u.dirtyMu.Unlock()
	u.buf = nil
	u.InvalidateAll()
}

// AddWidget appends a widget on top of the existing ones.
func (u *UIManager) AddWidget(w Widget) {
	u.widgets = append(u.widgets, w)
	u.propagateInvalidator(w)
	u.InvalidateAll()
}

// RemoveWidget detaches a widget (used when a modal closes).
func (u *UIManager) RemoveWidget(w Widget) {
	for i, cur := range u.widgets {
		if cur == w {
			u.widgets = append(u.widgets[:i], u.widgets[i+1:]...)
			break
		}
	}
	if u.focused == w {
		u.focused = nil
	}
	if u.capture == w {
		u.capture = nil
	}
	u.InvalidateAll()
}

func (u *UIManager) propagateInvalidator(w Widget) {
	if ia, ok := w.(InvalidationAware); ok {
		ia.SetInvalidator(u.Invalidate)
	}
	if cc, ok := w.(ChildContainer); ok {
		cc.VisitChildren(func(child Widget) { u.propagateInvalidator(child) })
	}
}

// Focus moves input focus to the given widget.
func (u *UIManager) Focus(w Widget) {
	if w == nil || !w.Focusable() {
		return
	}
	if u.focused == w {
		return
	}
	if u.focused != nil {
		u.focused.Blur()
	}
	u.focused = w
	u.focused.Focus()
}

// Focused returns the currently focused widget.
func (u *UIManager) Focused() Widget {
	return u.focused
}

// HandleKey routes a key event: modal first, then the focused widget, then
// Tab/Shift-Tab focus traversal.
func (u *UIManager) HandleKey(ev *tcell.EventKey) bool {
	// A modal widget gets all input, including Tab.
	if u.focused != nil {
		if modal, ok := u.focused.(Modal); ok && modal.IsModal() {
			if u.focused.HandleKey(ev) {
				u.InvalidateAll()
				return true
			}
			return false
		}
	}

	if u.focused != nil && u.focused.HandleKey(ev) {
		u.InvalidateAll()
		if u.AdvanceFocusOnEnter && ev.Key() == tcell.KeyEnter {
			if fc, ok := u.focused.(FocusCycler); ok {
				fc.CycleFocus(true)
				u.InvalidateAll()
			}
		}
		return true
	}

	if ev.Key() == tcell.KeyTab || ev.Key() == tcell.KeyBacktab {
		forward := ev.Key() == tcell.KeyTab && ev.Modifiers()&tcell.ModShift == 0
		if u.cycleFocus(forward) {
			u.InvalidateAll()
			return true
		}
	}
	return false
}

func (u *UIManager) cycleFocus(forward bool) bool {
	if fc, ok := u.focused.(FocusCycler); ok {
		if fc.CycleFocus(forward) {
			return true
		}
	}
	for _, w := range u.widgets {
		if fc, ok := w.(FocusCycler); ok {
			if u.containsWidget(w, u.focused) {
				if fc.CycleFocus(forward) {
					return true
				}
			}
		}
	}
	return u.cycleRootWidgets(forward)
}

func (u *UIManager) containsWidget(w, target Widget) bool {
	if w == target {
		return true
	}
	if cc, ok := w.(ChildContainer); ok {
		found := false
		cc.VisitChildren(func(child Widget) {
			if found {
				return
			}
			if u.containsWidget(child, target) {
				found = true
			}
		})
		return found
	}
	return false
}

func (u *UIManager) cycleRootWidgets(forward bool) bool {
	if len(u.widgets) == 0 {
		return false
	}
	currentIdx := -1
	for i, w := range u.widgets {
		if u.containsWidget(w, u.focused) {
			currentIdx = i
			break
		}
	}
	n := len(u.widgets)
	for offset := 1; offset <= n; offset++ {
		var idx int
		if forward {
			idx = (currentIdx + offset) % n
		} else {
			idx = (currentIdx - offset + n) % n
		}
		if idx < 0 {
			idx += n
		}
		if w := u.widgets[idx]; w.Focusable() {
			u.Focus(w)
			return true
		}
	}
	return false
}

// HandleMouse routes mouse events for click-to-focus, wheel scrolling and
// modal dismissal.
func (u *UIManager) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	buttons := ev.Buttons()
	prevDown := u.capture != nil
	nowDown := buttons&tcell.Button1 != 0

	// Click outside a modal dismisses it.
	if u.focused != nil && nowDown && !prevDown {
		if modal, ok := u.focused.(Modal); ok && modal.IsModal() {
			if !u.focused.HitTest(x, y) {
				modal.DismissModal()
				u.InvalidateAll()
				return true
			}
		}
	}

	if !prevDown && nowDown {
		if w := u.topmostAt(x, y); w != nil {
			u.Focus(w)
			u.capture = w
			if mw, ok := w.(MouseAware); ok {
				_ = mw.HandleMouse(ev)
			}
			u.InvalidateAll()
			return true
		}
		return false
	}

	if u.capture != nil {
		captured := u.capture
		if prevDown && !nowDown {
			u.capture = nil
		}
		if mw, ok := captured.(MouseAware); ok {
			_ = mw.HandleMouse(ev)
		}
		u.InvalidateAll()
		return true
	}

	if buttons&(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight) != 0 {
		if w := u.topmostAt(x, y); w != nil {
			if mw, ok := w.(MouseAware); ok {
				_ = mw.HandleMouse(ev)
				u.InvalidateAll()
				return true
			}
		}
	}
	return false
}

func (u *UIManager) topmostAt(x, y int) Widget {
	sorted := u.sortedWidgets()
	for i := len(sorted) - 1; i >= 0; i-- {
		if w := deepHit(sorted[i], x, y); w != nil {
			return w
		}
	}
	return nil
}

func deepHit(w Widget, x, y int) Widget {
	if ht, ok := w.(HitTester); ok {
		if dw := ht.WidgetAt(x, y); dw != nil {
			return dw
		}
	}
	if w.HitTest(x, y) {
		return w
	}
	if cc, ok := w.(ChildContainer); ok {
		var res Widget
		cc.VisitChildren(func(child Widget) {
			if res != nil {
				return
			}
			if dw := deepHit(child, x, y); dw != nil {
				res = dw
			}
		})
		return res
	}
	return nil
}

// Invalidate marks a region for redraw. Safe from any goroutine.
func (u *UIManager) Invalidate(r Rect) {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	if r.Empty() {
		return
	}
	u.dirty = append(u.dirty, r)
	u.requestRefreshLocked()
}

// InvalidateAll marks the whole surface for redraw. Safe from any goroutine.
func (u *UIManager) InvalidateAll() {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.dirty = append(u.dirty, Rect{W: u.W, H: u.H})
	u.requestRefreshLocked()
}

func (u *UIManager) requestRefreshLocked() {
	if u.notifier == nil {
		return
	}
	select {
	case u.notifier <- true:
	default:
	}
}

func (u *UIManager) ensureBuffer() {
	if u.buf != nil && len(u.buf) == u.H && (u.H == 0 || len(u.buf[0]) == u.W) {
		return
	}
	u.buf = NewBuffer(u.W, u.H, u.bgStyle)
}

func zIndex(w Widget) int {
	if zi, ok := w.(ZIndexer); ok {
		return zi.ZIndex()
	}
	return 0
}

func (u *UIManager) sortedWidgets() []Widget {
	sorted := make([]Widget, len(u.widgets))
	copy(sorted, u.widgets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return zIndex(sorted[i]) < zIndex(sorted[j])
	})
	return sorted
}

// Render redraws dirty regions and returns the framebuffer.
func (u *UIManager) Render() [][]Cell {
	u.ensureBuffer()

	u.dirtyMu.Lock()
	dirtyCopy := u.dirty
	u.dirty = nil
	u.dirtyMu.Unlock()

	sorted := u.sortedWidgets()

	if len(dirtyCopy) == 0 {
		full := Rect{W: u.W, H: u.H}
		p := NewPainter(u.buf, full)
		p.Fill(full, ' ', u.bgStyle)
		for _, w := range sorted {
			w.Draw(p)
		}
		return u.buf
	}

	for _, clip := range mergeRects(dirtyCopy) {
		clip = clip.Intersect(Rect{W: u.W, H: u.H})
		if clip.Empty() {
			continue
		}
		p := NewPainter(u.buf, clip)
		p.Fill(clip, ' ', u.bgStyle)
		for _, w := range sorted {
			wx, wy := w.Position()
			ww, wh := w.Size()
			if (Rect{X: wx, Y: wy, W: ww, H: wh}).Overlaps(clip) {
				w.Draw(p)
			}
		}
	}
	return u.buf
}

// mergeRects unions overlapping or edge-adjacent rectangles into a compact set.
func mergeRects(in []Rect) []Rect {
	out := make([]Rect, 0, len(in))
	for _, r := range in {
		if !r.Empty() {
			out = append(out, r)
		}
	}
	changed := true
	for changed {
		changed = false
		for i := 0; i < len(out) && !changed; i++ {
			for j := i + 1; j < len(out) && !changed; j++ {
				if rectsTouchOrOverlap(out[i], out[j]) {
					out[i] = out[i].Union(out[j])
					out = append(out[:j], out[j+1:]...)
					changed = true
				}
			}
		}
	}
	return out
}

func rectsTouchOrOverlap(a, b Rect) bool {
	if a.Overlaps(b) {
		return true
	}
	ax1, ay1 := a.X+a.W, a.Y+a.H
	bx1, by1 := b.X+b.W, b.Y+b.H
	horizontallyAdjacent := (ax1 == b.X || bx1 == a.X) && !(a.Y >= by1 || ay1 <= b.Y)
	verticallyAdjacent := (ay1 == b.Y || by1 == a.Y) && !(a.X >= bx1 || ax1 <= b.X)
	cornerAdjacent := (ax1 == b.X || bx1 == a.X) && (ay1 == b.Y || by1 == a.Y)
	return horizontallyAdjacent || verticallyAdjacent || cornerAdjacent
}
