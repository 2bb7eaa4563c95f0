// Package validation checks form field values against declarative rule sets
// and produces field-level French error messages.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Rule describes the checks applied to a single field. Checks run in order
// (required, min, max, pattern, custom) and the first violation wins.
type Rule struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	// Custom runs after the built-in checks and returns "" when the value is
	// acceptable. When a Pattern fails and Custom is set, Custom's wording
	// replaces the generic pattern message.
	Custom func(value string) string
}

// Rules maps field names to their rule.
type Rules map[string]Rule

// Errors maps field names to the first violated rule's message.
// Fields with no violation are absent.
type Errors map[string]string

// IsValid reports whether no field has an error.
func (e Errors) IsValid() bool { return len(e) == 0 }

// First returns an arbitrary-but-stable first error message, or "".
func (e Errors) First() string {
	for _, msg := range e {
		return msg
	}
	return ""
}

// Field validates a single value and returns the error message, or "".
func Field(value string, rule Rule) string {
	empty := strings.TrimSpace(value) == ""

	if rule.Required && empty {
		return "Ce champ est requis"
	}
	// Optional and empty: skip every remaining check.
	if empty {
		return ""
	}

	length := utf8.RuneCountInString(value)
	if rule.MinLength > 0 && length < rule.MinLength {
		return fmt.Sprintf("Minimum %d caractères requis", rule.MinLength)
	}
	if rule.MaxLength > 0 && length > rule.MaxLength {
		return fmt.Sprintf("Maximum %d caractères autorisés", rule.MaxLength)
	}
	if rule.Pattern != nil && !rule.Pattern.MatchString(value) {
		if rule.Custom != nil {
			if msg := rule.Custom(value); msg != "" {
				return msg
			}
		}
		return "Format invalide"
	}
	if rule.Custom != nil {
		return rule.Custom(value)
	}
	return ""
}

// Form validates every declared field and aggregates the violations.
func Form(data map[string]string, rules Rules) Errors {
	errs := Errors{}
	for field, rule := range rules {
		if msg := Field(data[field], rule); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}
