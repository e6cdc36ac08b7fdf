// Package filter models Thunderbird's msgFilterRules.dat format: an ordered
// list of filter rules plus two global settings, stored as one key="value"
// pair per line. The package parses that format, edits rule conditions, and
// serializes back to the same layout.
package filter

import (
	"fmt"
	"strings"
)

// Defaults applied to every newly created rule. These match what Thunderbird
// itself writes for a plain "move to folder" filter.
const (
	DefaultEnabled = "yes"
	DefaultType    = "17"
	DefaultAction  = "Move to folder"
)

// Rule is a single message filter entry. All fields are kept as strings so
// that anything found in an existing file round-trips untouched.
type Rule struct {
	Name        string
	Enabled     string
	Type        string
	Action      string
	ActionValue string
	Condition   string
}

// NewRule returns a rule with the given name and the standard defaults for
// the remaining fields. No validation is performed; an empty name is
// accepted so degenerate files still round-trip.
func NewRule(name string) *Rule {
	return &Rule{
		Name:    name,
		Enabled: DefaultEnabled,
		Type:    DefaultType,
		Action:  DefaultAction,
	}
}

// Serialize renders the rule as its six key="value" lines in the fixed
// order Thunderbird expects. Values are written verbatim, with no escaping:
// a value containing a double quote would produce ambiguous output, which
// is why AddCondition rejects such values up front.
func (r *Rule) Serialize() string {
	var sb strings.Builder
	writeField(&sb, "name", r.Name)
	writeField(&sb, "enabled", r.Enabled)
	writeField(&sb, "type", r.Type)
	writeField(&sb, "action", r.Action)
	writeField(&sb, "actionValue", r.ActionValue)
	writeField(&sb, "condition", r.Condition)
	return sb.String()
}

func writeField(sb *strings.Builder, key, value string) {
	fmt.Fprintf(sb, "%s=\"%s\"\n", key, value)
}
