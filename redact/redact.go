// Package redact scrubs personally identifying details from citizen mentions
// before they are exported or served: email addresses, phone numbers, and
// social media handles.
package redact

import (
	"regexp"

	"pulse/core"
)

// Rule replaces every match of a pattern with a fixed placeholder.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Placeholder string
}

func (r Rule) apply(s string) string {
	return r.Pattern.ReplaceAllString(s, r.Placeholder)
}

// Config controls which rules a Redactor applies.
type Config struct {
	Emails  bool
	Phones  bool
	Handles bool
}

// All enables every rule.
func All() Config {
	return Config{Emails: true, Phones: true, Handles: true}
}

// Redactor applies PII rules to mention content.
type Redactor struct {
	rules []Rule
}

// New creates a Redactor from the given config.
func New(cfg Config) *Redactor {
	var rules []Rule
	if cfg.Emails {
		rules = append(rules, emailRule)
	}
	if cfg.Phones {
		rules = append(rules, phoneRule)
	}
	if cfg.Handles {
		rules = append(rules, handleRule)
	}
	return &Redactor{rules: rules}
}

// Scrub rewrites the snapshot's mentions in place. Author fields are handles
// by convention, so the handle rule covers them; the other datasets carry no
// citizen-provided text.
func (r *Redactor) Scrub(snap *core.Snapshot) {
	for i := range snap.Mentions {
		snap.Mentions[i].Author = r.scrubString(snap.Mentions[i].Author)
		snap.Mentions[i].Content = r.scrubString(snap.Mentions[i].Content)
	}
}

func (r *Redactor) scrubString(s string) string {
	for _, rule := range r.rules {
		s = rule.apply(s)
	}
	return s
}
