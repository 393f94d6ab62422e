// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package widgets

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"vitrine/ui/core"
)

func TestLabelSizesToContent(t *testing.T) {
	l := NewLabel(2, 1, tcell.StyleDefault, "short", "a longer line")
	w, h := l.Size()
	if w != 13 || h != 2 {
		t.Fatalf("label size = %dx%d, want 13x2", w, h)
	}
}

func TestLabelDrawsAtItsPosition(t *testing.T) {
	buf := core.NewBuffer(20, 4, tcell.StyleDefault)
	p := core.NewPainter(buf, core.Rect{W: 20, H: 4})

	l := NewLabel(2, 1, tcell.StyleDefault, "hardware")
	l.Draw(p)

	got := ""
	for x := 2; x < 10; x++ {
		got += string(buf[1][x].Ch)
	}
	if got != "hardware" {
		t.Fatalf("row 1 = %q, want %q", got, "hardware")
	}
}

func TestLabelSetLinesKeepsSize(t *testing.T) {
	l := NewLabel(0, 0, tcell.StyleDefault, "one", "two")
	l.SetLines("replacement")
	if w, h := l.Size(); w != 3 || h != 2 {
		t.Fatalf("size after SetLines = %dx%d, want 3x2", w, h)
	}
}
