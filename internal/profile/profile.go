// Package profile locates msgFilterRules.dat files inside Thunderbird
// profiles when the user does not name one explicitly.
package profile

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
)

// ErrNotFound is returned when no msgFilterRules.dat can be located under
// any known Thunderbird profile directory.
var ErrNotFound = errors.New("no msgFilterRules.dat found in any Thunderbird profile")

// RulesFileName is the filter rules file Thunderbird keeps per account.
const RulesFileName = "msgFilterRules.dat"

// profileRoots returns the candidate profile directories, classic install
// first, then the snap layout.
func profileRoots(home string) []string {
	return []string{
		filepath.Join(home, ".thunderbird"),
		filepath.Join(home, "snap", "thunderbird", "common", ".thunderbird"),
	}
}

// FindRulesFile searches the user's Thunderbird profiles for a filter rules
// file and returns the first match, preferring IMAP accounts over local
// mail. Matches within one root are sorted so the result is stable across
// runs.
func FindRulesFile() (string, error) {
	return findUnder(xdg.Home)
}

func findUnder(home string) (string, error) {
	for _, root := range profileRoots(home) {
		if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
			continue
		}

		// Profiles look like <hash>.default/ImapMail/<server>/msgFilterRules.dat
		// or, for POP/local accounts, <hash>.default/Mail/<server>/...
		for _, sub := range []string{"ImapMail", "Mail"} {
			pattern := filepath.Join(root, "*", sub, "*", RulesFileName)
			matches, err := filepath.Glob(pattern)
			if err != nil || len(matches) == 0 {
				continue
			}
			sort.Strings(matches)
			log.Debug().Str("path", matches[0]).Int("candidates", len(matches)).Msg("discovered filter rules file")
			return matches[0], nil
		}
	}

	return "", ErrNotFound
}
