// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import "testing"

func TestLookupKnownCategory(t *testing.T) {
	p, ok := Lookup("tools")
	if !ok {
		t.Fatal("expected tools category to exist")
	}
	if p.Title == "" || p.Description == "" {
		t.Errorf("incomplete record: %+v", p)
	}
	if len(p.Features) == 0 || len(p.Brands) == 0 {
		t.Error("expected features and brands")
	}
}

func TestLookupUnknownCategory(t *testing.T) {
	if _, ok := Lookup("submarines"); ok {
		t.Fatal("unknown category should report ok=false")
	}
}

func TestCategoriesCoverEveryProduct(t *testing.T) {
	cats := Categories()
	if len(cats) != len(products) {
		t.Fatalf("%d categories for %d products", len(cats), len(products))
	}
	for _, id := range cats {
		if _, ok := products[id]; !ok {
			t.Errorf("category %q has no product", id)
		}
	}
}

func TestActionRegistry(t *testing.T) {
	resetActions()

	var got string
	RegisterAction("product.show", func(arg string) { got = arg })
	RegisterAction("product.close", func(string) {})

	if !Invoke("product.show", "tools") {
		t.Fatal("registered action should invoke")
	}
	if got != "tools" {
		t.Errorf("action received %q, want tools", got)
	}
	if Invoke("nope", "") {
		t.Error("unknown action should return false")
	}

	names := RegisteredActions()
	if len(names) != 2 || names[0] != "product.close" || names[1] != "product.show" {
		t.Errorf("RegisteredActions = %v", names)
	}
}

func TestDuplicateActionPanics(t *testing.T) {
	resetActions()
	RegisterAction("product.show", func(string) {})

	defer func() {
		if recover() == nil {
			t.Fatal("duplicate registration should panic")
		}
	}()
	RegisterAction("product.show", func(string) {})
}
