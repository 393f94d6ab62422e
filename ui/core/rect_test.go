// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ui/core/rect_test.go
// Summary: Rect, painter and dirty-region merge tests.

package core

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func defaultStyle() tcell.Style { return tcell.StyleDefault }

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	if !r.Contains(2, 3) || !r.Contains(5, 4) {
		t.Fatal("expected corners inside")
	}
	if r.Contains(6, 3) || r.Contains(2, 5) || r.Contains(1, 3) {
		t.Fatal("expected points outside")
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: 5, W: 10, H: 10}
	got := a.Intersect(b)
	want := Rect{X: 5, Y: 5, W: 5, H: 5}
	if got != want {
		t.Fatalf("Intersect = %+v, want %+v", got, want)
	}

	c := Rect{X: 20, Y: 20, W: 2, H: 2}
	if !a.Intersect(c).Empty() {
		t.Fatal("disjoint intersect should be empty")
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 2, H: 2}
	b := Rect{X: 4, Y: 4, W: 2, H: 2}
	got := a.Union(b)
	want := Rect{X: 0, Y: 0, W: 6, H: 6}
	if got != want {
		t.Fatalf("Union = %+v, want %+v", got, want)
	}
}

func TestMergeRects(t *testing.T) {
	in := []Rect{
		{X: 0, Y: 0, W: 5, H: 5},
		{X: 5, Y: 0, W: 5, H: 5}, // edge-adjacent, merges
		{X: 20, Y: 20, W: 3, H: 3},
	}
	out := mergeRects(in)
	if len(out) != 2 {
		t.Fatalf("mergeRects produced %d rects, want 2: %+v", len(out), out)
	}
}

func TestPainterClipping(t *testing.T) {
	buf := NewBuffer(10, 5, defaultStyle())
	p := NewPainter(buf, Rect{X: 0, Y: 0, W: 10, H: 5})

	clipped := p.WithClip(Rect{X: 2, Y: 1, W: 3, H: 2})
	clipped.SetCell(1, 1, 'A', defaultStyle()) // outside clip
	clipped.SetCell(2, 1, 'B', defaultStyle()) // inside clip
	clipped.SetCell(5, 1, 'C', defaultStyle()) // outside clip (x = 2+3)

	if buf[1][1].Ch == 'A' {
		t.Fatal("write outside clip leaked through")
	}
	if buf[1][2].Ch != 'B' {
		t.Fatalf("write inside clip missing, got %q", buf[1][2].Ch)
	}
	if buf[1][5].Ch == 'C' {
		t.Fatal("write at clip edge leaked through")
	}
}

func TestPainterDrawTextAdvance(t *testing.T) {
	buf := NewBuffer(20, 1, defaultStyle())
	p := NewPainter(buf, Rect{X: 0, Y: 0, W: 20, H: 1})

	end := p.DrawText(0, 0, "hi", defaultStyle())
	if end != 2 {
		t.Fatalf("DrawText advance = %d, want 2", end)
	}
	if buf[0][0].Ch != 'h' || buf[0][1].Ch != 'i' {
		t.Fatalf("text not written: %q %q", buf[0][0].Ch, buf[0][1].Ch)
	}
}
