// Copyright © 2026 Vitrine contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: form/message.go
// Summary: Contact message fields and validation.

package form

import (
	"regexp"
	"strings"
)

// Message holds the contact form fields as entered.
type Message struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Body    string
}

// The domain part requires a dot, so "a@b" is rejected while "a@b.com" passes.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var phonePattern = regexp.MustCompile(`^[0-9 ()+.\-]+$`)

// Validate checks every field and returns one human-readable message per
// failure. An empty slice means the message can be submitted.
func (m Message) Validate() []string {
	var problems []string

	if len([]rune(strings.TrimSpace(m.Name))) < 2 {
		problems = append(problems, "Please enter your name (at least 2 characters).")
	}
	if !emailPattern.MatchString(strings.TrimSpace(m.Email)) {
		problems = append(problems, "Please enter a valid email address.")
	}
	if phone := strings.TrimSpace(m.Phone); phone != "" && !phonePattern.MatchString(phone) {
		problems = append(problems, "Phone may only contain digits, spaces and ()+-. characters.")
	}
	if strings.TrimSpace(m.Subject) == "" {
		problems = append(problems, "Please enter a subject.")
	}
	if len([]rune(strings.TrimSpace(m.Body))) < 10 {
		problems = append(problems, "Please enter a message (at least 10 characters).")
	}

	return problems
}
