// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: catalog/actions.go
// Summary: Named action registry for entry points invoked outside the page logic.

package catalog

import (
	"fmt"
	"log"
	"sort"
	"sync"
)

// Action is an externally invocable entry point. The argument is the action's
// subject (a category ID for product.show, ignored by actions without one).
type Action func(arg string)

var (
	actionMu sync.RWMutex
	actions  = make(map[string]Action)
)

// RegisterAction adds a named action. Registering the same name twice is a
// programming error and panics.
func RegisterAction(name string, fn Action) {
	actionMu.Lock()
	defer actionMu.Unlock()
	if _, exists := actions[name]; exists {
		panic(fmt.Sprintf("catalog: action %q registered twice", name))
	}
	actions[name] = fn
}

// LookupAction returns the named action if registered.
func LookupAction(name string) (Action, bool) {
	actionMu.RLock()
	defer actionMu.RUnlock()
	fn, ok := actions[name]
	return fn, ok
}

// Invoke runs the named action, logging a warning for unknown names.
func Invoke(name, arg string) bool {
	fn, ok := LookupAction(name)
	if !ok {
		log.Printf("Catalog: unknown action %q", name)
		return false
	}
	fn(arg)
	return true
}

// RegisteredActions returns all registered action names, sorted.
func RegisteredActions() []string {
	actionMu.RLock()
	defer actionMu.RUnlock()
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resetActions clears the registry. Test helper.
func resetActions() {
	actionMu.Lock()
	defer actionMu.Unlock()
	actions = make(map[string]Action)
}
