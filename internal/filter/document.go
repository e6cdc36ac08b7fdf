package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	// ErrRuleNotFound is returned by Document.AddCondition when no rule
	// carries the requested name. Callers typically recover by calling
	// CreateRule instead.
	ErrRuleNotFound = errors.New("rule not found")

	// ErrUnsupportedValue is returned when a match value cannot be embedded
	// in the condition grammar without corrupting it. The file format has no
	// escaping rules, so such values are refused rather than written.
	ErrUnsupportedValue = errors.New("unsupported match value")
)

// Document is the in-memory form of one msgFilterRules.dat file: two global
// settings plus the rules in file order. Order is significant because it is
// the evaluation precedence in Thunderbird, so rules are only ever appended.
type Document struct {
	Version string
	Logging string
	Rules   []*Rule
}

// FindByName returns the first rule whose name matches exactly, or nil if
// there is none. Names are compared case-sensitively.
func (d *Document) FindByName(name string) *Rule {
	for _, r := range d.Rules {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// AddCondition merges a contains-term for (field, value) into the named
// rule's condition. Returns ErrRuleNotFound if the rule does not exist.
func (d *Document) AddCondition(ruleName, field, value string) error {
	r := d.FindByName(ruleName)
	if r == nil {
		return fmt.Errorf("%w: %q", ErrRuleNotFound, ruleName)
	}
	return r.AddCondition(field, value)
}

// AddCondition merges the term (field,contains,value) into the rule's
// condition using OR logic. The merge is idempotent: if the exact term is
// already present the condition is left unchanged. An existing condition's
// leading operator is preserved verbatim, even when it is AND from a file
// written elsewhere.
func (r *Rule) AddCondition(field, value string) error {
	if err := checkTermValue(field); err != nil {
		return fmt.Errorf("field %q: %w", field, err)
	}
	if err := checkTermValue(value); err != nil {
		return fmt.Errorf("value %q: %w", value, err)
	}

	term := fmt.Sprintf("(%s,contains,%s)", field, value)

	switch {
	case r.Condition == "":
		r.Condition = "OR " + term
	case strings.Contains(r.Condition, term):
		log.Debug().Str("rule", r.Name).Str("term", term).Msg("condition already present, skipping")
		return nil
	default:
		r.Condition += " OR " + term
	}

	log.Debug().Str("rule", r.Name).Str("condition", r.Condition).Msg("condition updated")
	return nil
}

// CreateRule appends a new move-to-folder rule with a single-term condition
// and returns it. The new rule goes last so existing precedence is kept.
func (d *Document) CreateRule(name, field, value, actionValue string) (*Rule, error) {
	r := NewRule(name)
	r.ActionValue = actionValue
	if err := r.AddCondition(field, value); err != nil {
		return nil, err
	}

	d.Rules = append(d.Rules, r)
	log.Info().Str("rule", name).Str("folder", actionValue).Msg("created new rule")
	return r, nil
}

// Serialize renders the document back to the msgFilterRules.dat layout:
// the global settings first (each only when non-empty), then every rule in
// sequence order. The output ends with a trailing newline.
func (d *Document) Serialize() string {
	var sb strings.Builder
	if d.Version != "" {
		writeField(&sb, "version", d.Version)
	}
	if d.Logging != "" {
		writeField(&sb, "logging", d.Logging)
	}
	for _, r := range d.Rules {
		sb.WriteString(r.Serialize())
	}
	return sb.String()
}

// checkTermValue rejects strings that the condition grammar cannot carry:
// a double quote breaks the key="value" framing on write, and a literal
// " OR (" would be indistinguishable from a term separator on later merges.
func checkTermValue(s string) error {
	if strings.Contains(s, `"`) {
		return fmt.Errorf("%w: contains a double quote", ErrUnsupportedValue)
	}
	if strings.Contains(s, " OR (") {
		return fmt.Errorf("%w: contains a term separator", ErrUnsupportedValue)
	}
	return nil
}
