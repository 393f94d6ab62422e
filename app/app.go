// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: app/app.go
// Summary: The page application: wires scroll effects, animated jumps, stat
// counters, the product modal and the contact form into one UI.

package app

import (
	"context"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"vitrine/catalog"
	"vitrine/config"
	"vitrine/form"
	"vitrine/motion"
	"vitrine/page"
	"vitrine/theme"
	"vitrine/ui/core"
	"vitrine/ui/scroll"
)

// Timeline keys. Typed keys keep targets distinct without string juggling.
type (
	scrollKey   struct{}
	navBlendKey struct{}
	statKey     struct{ index int }
)

// styleSet resolves the palette once so widgets share consistent styles.
type styleSet struct {
	surface     tcell.Style
	text        tcell.Style
	title       tcell.Style
	muted       tcell.Style
	field       tcell.Style
	accent      tcell.Style
	focus       tcell.Style
	errorLine   tcell.Style
	successLine tcell.Style
}

func newStyleSet() *styleSet {
	t := theme.Get()
	surfaceBG := t.GetColor("ui", "surface_bg", tcell.ColorBlack)
	return &styleSet{
		surface: tcell.StyleDefault.Background(surfaceBG).
			Foreground(t.GetColor("ui", "surface_fg", tcell.ColorWhite)),
		text: tcell.StyleDefault.Background(surfaceBG).
			Foreground(t.GetColor("ui", "text_fg", tcell.ColorWhite)),
		title: tcell.StyleDefault.Background(surfaceBG).
			Foreground(t.GetColor("ui", "accent_fg", tcell.ColorBlue)).Bold(true),
		muted: tcell.StyleDefault.Background(surfaceBG).
			Foreground(t.GetColor("ui", "muted_fg", tcell.ColorGray)),
		field: tcell.StyleDefault.
			Background(t.GetColor("ui", "text_bg", tcell.ColorBlack)).
			Foreground(t.GetColor("ui", "text_fg", tcell.ColorWhite)),
		accent: tcell.StyleDefault.Background(surfaceBG).
			Foreground(t.GetColor("ui", "accent_fg", tcell.ColorBlue)),
		focus: tcell.StyleDefault.
			Background(t.GetColor("ui", "focus_bg", tcell.ColorDarkBlue)).
			Foreground(t.GetColor("ui", "focus_fg", tcell.ColorWhite)),
		errorLine: tcell.StyleDefault.Background(surfaceBG).
			Foreground(t.GetColor("ui", "error_fg", tcell.ColorRed)),
		successLine: tcell.StyleDefault.Background(surfaceBG).
			Foreground(t.GetColor("ui", "success_fg", tcell.ColorGreen)),
	}
}

// App owns the whole page: the scrolled content column, the sticky nav, the
// floating controls and the interaction pipelines between them.
type App struct {
	UI *core.UIManager

	cfg      *config.Store
	pg       *page.Page
	styles   *styleSet
	pane     *scroll.ScrollPane
	content  *pageContent
	nav      *navBar
	topBtn   *backToTop
	status   *statusLine
	timeline *motion.Timeline
	throttle *motion.Throttler
	frames   *motion.FrameScheduler
	proc     *form.Processor

	ctx    context.Context
	cancel context.CancelFunc

	// Facets computed on timer goroutines, applied to widgets in Tick on the
	// UI goroutine.
	mu              sync.Mutex
	width, height   int
	navHeight       int
	activeSection   string
	topVisible      bool
	statsStarted    bool
	scrollAnimating bool
	pendingClear    bool
	lastOffset      int
	modal           *productModal
	reduced         bool

	scrollDur  time.Duration
	statDur    time.Duration
	blendDur   time.Duration
	scrollEase motion.EasingFunc
	solidAt    int
	topAt      int
}

var registerOnce sync.Once

// New builds a fully wired application from configuration.
func New(cfg *config.Store) *App {
	theme.Get().Merge(cfg.Palette("theme"))

	motionSec := cfg.Section("motion")
	pageSec := cfg.Section("page")
	formSec := cfg.Section("form")

	a := &App{
		cfg:        cfg,
		pg:         page.NewPage(),
		styles:     newStyleSet(),
		timeline:   motion.NewTimeline(0),
		navHeight:  pageSec.Int("nav_height", 1),
		reduced:    motionSec.Bool("reduced", false),
		scrollDur:  motionSec.DurationMS("scroll_duration_ms", 800),
		statDur:    motionSec.DurationMS("stat_duration_ms", 20),
		blendDur:   motionSec.DurationMS("nav_blend_ms", 200),
		scrollEase: motion.EasingByName(motionSec.String("scroll_easing", "ease-out-cubic")),
		solidAt:    pageSec.Int("nav_solid_threshold", 4),
		topAt:      pageSec.Int("back_to_top_threshold", 12),
	}
	a.ctx, a.cancel = context.WithCancel(context.Background())
	a.pg.ProductRows = len(catalog.Categories()) + 2

	a.content = newPageContent(a.pg, a.styles, a.ShowProduct, a.submit)
	a.pane = scroll.NewScrollPane(0, 0, 0, 0, a.styles.surface)
	a.pane.SetChild(a.content)
	a.pane.SetTrapsFocus(true)
	a.pane.OnScroll = a.onScroll

	a.nav = newNavBar("Ferreteria Delgado", a.pg.Sections, a.JumpToSection)
	a.topBtn = newBackToTop(a.styles.accent, a.BackToTop)
	a.status = newStatusLine(a.styles, formSec.DurationMS("notice_duration_ms", 4000))

	a.UI = core.NewUIManager(a.styles.surface)
	a.UI.AddWidget(a.pane)
	a.UI.AddWidget(a.nav)
	a.UI.AddWidget(a.topBtn)
	a.UI.AddWidget(a.status)
	a.UI.Focus(a.pane)

	a.frames = motion.NewFrameScheduler(motionSec.DurationMS("frame_ms", 16), a.syncScrollEffects)
	a.throttle = motion.NewThrottler(motionSec.DurationMS("throttle_ms", 100), func() {
		a.frames.Request()
	})

	sub := &form.SimulatedSubmitter{
		Delay:       formSec.DurationMS("submit_delay_ms", 1500),
		SuccessRate: formSec.Float("submit_success_rate", 0.95),
	}
	a.proc = form.NewProcessor(sub)
	a.proc.Notify = func(text string, success bool) {
		a.status.show(text, success)
		a.UI.InvalidateAll()
	}
	a.proc.OnBusyChange = func(bool) {
		// Tick picks the busy state up on the UI goroutine.
		a.UI.InvalidateAll()
	}

	a.registerActions()
	return a
}

// registerActions exposes the entry points callable by name from outside the
// page logic. Process-wide: later App instances rebind the handlers.
func (a *App) registerActions() {
	registerOnce.Do(func() {
		catalog.RegisterAction("product.show", func(arg string) { boundApp().ShowProduct(arg) })
		catalog.RegisterAction("product.close", func(string) { boundApp().CloseProduct() })
		catalog.RegisterAction("brand.placeholder", func(string) {
			boundApp().status.show("Brand materials are being prepared. Ask at the counter meanwhile.", true)
			boundApp().UI.InvalidateAll()
		})
	})
	bindApp(a)
}

var (
	boundMu  sync.RWMutex
	boundRef *App
)

func bindApp(a *App) {
	boundMu.Lock()
	boundRef = a
	boundMu.Unlock()
}

func boundApp() *App {
	boundMu.RLock()
	defer boundMu.RUnlock()
	return boundRef
}

// Resize lays the surface out for a new terminal size.
func (a *App) Resize(w, h int) {
	a.mu.Lock()
	a.width, a.height = w, h
	a.mu.Unlock()

	a.content.relayout(w)
	a.pane.SetPosition(0, 0)
	a.pane.Resize(w, h)
	a.pane.SetContentHeight(a.pg.ContentHeight(w))
	a.nav.Resize(w, a.nav.height())
	a.topBtn.place(w, h)
	a.status.place(w, h)

	a.mu.Lock()
	if a.modal != nil {
		a.modal.center(w, h)
	}
	a.mu.Unlock()

	a.UI.Resize(w, h)
	a.frames.Request()
}

// onScroll runs on every user scroll of the pane. Manual scrolling cancels an
// in-flight animated jump, then the throttled effect pipeline takes over.
func (a *App) onScroll(offset int) {
	a.mu.Lock()
	a.lastOffset = offset
	if a.scrollAnimating {
		a.scrollAnimating = false
		a.timeline.Reset(scrollKey{})
	}
	a.mu.Unlock()
	a.throttle.Call()
}

// syncScrollEffects recomputes every scroll-derived facet. Runs on the frame
// scheduler, at most once per frame interval.
func (a *App) syncScrollEffects() {
	a.mu.Lock()
	offset := a.lastOffset
	width := a.width
	navHeight := a.navHeight
	a.mu.Unlock()

	regions := a.pg.Regions(width, navHeight)
	active := page.ActiveRegion(offset, regions)

	now := time.Now()
	a.mu.Lock()
	changed := active != a.activeSection
	a.activeSection = active

	target := 0.0
	if offset > a.solidAt {
		target = 1.0
	}
	if a.reduced || a.blendDur <= 0 {
		a.timeline.Set(navBlendKey{}, target)
	} else {
		a.timeline.AnimateTo(navBlendKey{}, target, a.blendDur, now)
	}

	startStats := false
	if !a.statsStarted {
		if sec, ok := a.pg.SectionByID(active); ok && sec.Kind == page.KindStats {
			a.statsStarted = true
			startStats = true
		}
	}
	a.topVisible = offset > a.topAt
	a.mu.Unlock()

	if startStats {
		a.startStatCounters(now)
	}
	if changed {
		log.Printf("Page: Active section is now %q", active)
	}
	a.UI.InvalidateAll()
}

// startStatCounters animates every stat from zero to its target.
func (a *App) startStatCounters(now time.Time) {
	idx := 0
	for _, sec := range a.pg.Sections {
		for _, stat := range sec.Stats {
			if a.reduced {
				a.timeline.Set(statKey{idx}, float64(stat.Target))
			} else {
				a.timeline.AnimateTo(statKey{idx}, float64(stat.Target), a.statDur, now)
			}
			idx++
		}
	}
}

// scrollToOffset animates the pane offset to target, or jumps when reduced
// motion is on. Retargeting an in-flight jump continues from the current spot.
func (a *App) scrollToOffset(target int) {
	if target < 0 {
		target = 0
	}
	if a.reduced || a.scrollDur <= 0 {
		a.pane.SetOffset(target)
		a.mu.Lock()
		a.lastOffset = a.pane.ScrollOffset()
		a.mu.Unlock()
		a.throttle.Call()
		a.UI.InvalidateAll()
		return
	}

	now := time.Now()
	a.mu.Lock()
	if !a.scrollAnimating {
		a.timeline.Set(scrollKey{}, float64(a.pane.ScrollOffset()))
	}
	a.scrollAnimating = true
	a.mu.Unlock()
	a.timeline.AnimateToWithOptions(scrollKey{}, float64(target),
		motion.AnimateOptions{Duration: a.scrollDur, Easing: a.scrollEase}, now)
}

// JumpToSection smooth-scrolls so the section top lands below the nav bar.
func (a *App) JumpToSection(id string) {
	a.mu.Lock()
	width, navHeight := a.width, a.navHeight
	a.mu.Unlock()

	top, ok := a.pg.SectionTop(id, width)
	if !ok {
		log.Printf("Page: No section %q to jump to", id)
		return
	}
	a.nav.menuOpen = false
	a.scrollToOffset(top - navHeight)
}

// BackToTop smooth-scrolls to the very top of the page.
func (a *App) BackToTop() {
	a.scrollToOffset(0)
}

// ShowProduct opens the detail modal for a catalog category.
func (a *App) ShowProduct(id string) {
	p, ok := catalog.Lookup(id)
	if !ok {
		return
	}
	a.CloseProduct()

	m := newProductModal(p, a.styles, a.CloseProduct)
	a.mu.Lock()
	m.center(a.width, a.height)
	a.modal = m
	a.mu.Unlock()

	a.UI.AddWidget(m)
	a.UI.Focus(m)
	a.UI.InvalidateAll()
}

// CloseProduct dismisses the modal if one is open.
func (a *App) CloseProduct() {
	a.mu.Lock()
	m := a.modal
	a.modal = nil
	a.mu.Unlock()
	if m == nil {
		return
	}
	a.UI.RemoveWidget(m)
	a.UI.Focus(a.pane)
	a.UI.InvalidateAll()
}

// submit runs the contact workflow off the UI goroutine.
func (a *App) submit() {
	if a.proc.Busy() {
		return
	}
	msg := a.content.message()
	go func() {
		if a.proc.Submit(a.ctx, msg) {
			a.mu.Lock()
			a.pendingClear = true
			a.mu.Unlock()
			a.UI.InvalidateAll()
		}
	}()
}

// Tick advances animations to now and applies their values. Returns true while
// anything is still animating, so the event loop knows to keep ticking.
func (a *App) Tick(now time.Time) bool {
	a.timeline.Update(now)

	a.mu.Lock()
	animatingScroll := a.scrollAnimating
	a.mu.Unlock()

	if animatingScroll {
		value := a.timeline.GetCached(scrollKey{})
		a.pane.SetOffset(int(math.Round(value)))
		a.mu.Lock()
		a.lastOffset = a.pane.ScrollOffset()
		if !a.timeline.IsAnimating(scrollKey{}, now) {
			a.scrollAnimating = false
		}
		a.mu.Unlock()
		// Animated scrolling feeds the same pipeline as manual scrolling.
		a.throttle.Call()
		a.UI.InvalidateAll()
	}

	a.nav.setBlend(a.timeline.GetCached(navBlendKey{}))

	a.mu.Lock()
	active := a.activeSection
	topVisible := a.topVisible
	started := a.statsStarted
	doClear := a.pendingClear
	a.pendingClear = false
	a.mu.Unlock()

	a.nav.setActive(active)
	a.topBtn.setVisible(topVisible)
	a.content.submitButton.SetDisabled(a.proc.Busy())
	if doClear {
		a.content.clearForm()
	}

	if started {
		vals := make([]int, countStats(a.pg))
		for i := range vals {
			vals[i] = int(math.Round(a.timeline.GetCached(statKey{i})))
		}
		a.content.setStatValues(vals)
	}

	return a.timeline.HasActiveAnimations(now)
}

// HandleEvent routes one terminal event. Returns false for events the app does
// not consume (the caller decides about quitting).
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.Resize(w, h)
		return true
	case *tcell.EventKey:
		if a.UI.HandleKey(ev) {
			return true
		}
		return a.handleGlobalKey(ev)
	case *tcell.EventMouse:
		return a.UI.HandleMouse(ev)
	}
	return false
}

// handleGlobalKey implements page-level shortcuts once no widget claimed the
// key.
func (a *App) handleGlobalKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape {
		if a.nav.menuOpen {
			a.nav.menuOpen = false
			a.UI.InvalidateAll()
			return true
		}
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}
	switch ev.Rune() {
	case 'm':
		a.nav.toggleMenu()
		a.UI.InvalidateAll()
		return true
	case 't':
		a.BackToTop()
		return true
	case '1', '2', '3', '4':
		idx := int(ev.Rune() - '1')
		if idx < len(a.pg.Sections) {
			a.JumpToSection(a.pg.Sections[idx].ID)
			return true
		}
	}
	return false
}

// EditingText reports whether a text entry widget has focus, so the caller
// can keep plain letters (like a quit shortcut) out of form fields.
func (a *App) EditingText() bool {
	for _, w := range []core.Widget{
		a.content.nameInput, a.content.emailInput, a.content.phoneInput,
		a.content.subjectInput, a.content.bodyInput,
	} {
		if fs, ok := w.(core.FocusState); ok && fs.IsFocused() {
			return true
		}
	}
	return false
}

// ActiveSection returns the current nav highlight target.
func (a *App) ActiveSection() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.activeSection
}

// Close stops timers and cancels any in-flight submission.
func (a *App) Close() {
	a.cancel()
	a.throttle.Stop()
	a.frames.Stop()
}
