package filter

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Keys understood by the parser. "name" doubles as the record boundary:
// the format has no explicit rule delimiter, so a new name line closes the
// previous rule and opens the next one.
const (
	keyVersion     = "version"
	keyLogging     = "logging"
	keyName        = "name"
	keyEnabled     = "enabled"
	keyType        = "type"
	keyAction      = "action"
	keyActionValue = "actionValue"
	keyCondition   = "condition"
)

// Parse reads msgFilterRules.dat text into a Document. It is deliberately
// lenient so hand-edited or partially written files survive: blank lines,
// lines without an "=", unknown keys, and rule fields appearing before any
// name line are all skipped silently. Parse cannot fail.
func Parse(text string) *Document {
	doc, _ := parse(text, false)
	return doc
}

// ParseStrict parses like Parse but turns every condition the lenient
// parser would skip into an error, reporting the offending line. Useful for
// validating files this tool wrote itself.
func ParseStrict(text string) (*Document, error) {
	return parse(text, true)
}

func parse(text string, strict bool) (*Document, error) {
	doc := &Document{}

	var cur *Rule
	flush := func() {
		if cur != nil {
			doc.Rules = append(doc.Rules, cur)
			cur = nil
		}
	}

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		idx := strings.Index(line, "=")
		if idx < 0 {
			if strict {
				return nil, fmt.Errorf("line %d: not a key=value pair: %q", i+1, line)
			}
			continue
		}

		key := strings.TrimSpace(line[:idx])
		value := unquote(strings.TrimSpace(line[idx+1:]))

		switch key {
		case keyVersion:
			doc.Version = value
		case keyLogging:
			doc.Logging = value
		case keyName:
			flush()
			cur = NewRule(value)
		case keyEnabled, keyType, keyAction, keyActionValue, keyCondition:
			if cur == nil {
				if strict {
					return nil, fmt.Errorf("line %d: %s before any name line", i+1, key)
				}
				continue
			}
			switch key {
			case keyEnabled:
				cur.Enabled = value
			case keyType:
				cur.Type = value
			case keyAction:
				cur.Action = value
			case keyActionValue:
				cur.ActionValue = value
			case keyCondition:
				cur.Condition = value
			}
		default:
			if strict {
				return nil, fmt.Errorf("line %d: unknown key %q", i+1, key)
			}
		}
	}

	// The last rule has no trailing name line to close it.
	flush()

	log.Debug().Int("rules", len(doc.Rules)).Str("version", doc.Version).Msg("parsed filter rules")
	return doc, nil
}

// unquote strips at most one leading and one trailing double quote. A value
// written without quotes is accepted as-is.
func unquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return s
}
