// Package app drives the edit workflow: resolve the rules file, validate
// input, back the file up, apply the rule change, and write the result.
package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hal-eisen/thunderbird-msgFilterRules-builder/internal/config"
	"github.com/hal-eisen/thunderbird-msgFilterRules-builder/internal/filter"
	"github.com/hal-eisen/thunderbird-msgFilterRules-builder/internal/importer"
	"github.com/hal-eisen/thunderbird-msgFilterRules-builder/internal/profile"
)

// ValidHeaderFields are the message headers a filter condition may match.
var ValidHeaderFields = []string{"from", "to", "cc", "subject"}

// Options describes one rule edit.
type Options struct {
	RuleName    string
	HeaderField string
	Value       string
	DestFolder  string

	// Path of the rules file; empty means config then profile discovery.
	Path string
}

// ValidateHeaderField checks the field against ValidHeaderFields,
// case-insensitively.
func ValidateHeaderField(field string) error {
	f := strings.ToLower(field)
	for _, v := range ValidHeaderFields {
		if f == v {
			return nil
		}
	}
	return fmt.Errorf("invalid header field %q: must be one of %s",
		field, strings.Join(ValidHeaderFields, ", "))
}

// ProcessRule applies a single find-or-create-then-merge edit to the rules
// file. The backup copy must succeed before the file is touched; on any
// failure the original file is left as it was.
func ProcessRule(cfg *config.Config, opts Options) error {
	if err := ValidateHeaderField(opts.HeaderField); err != nil {
		return err
	}

	path, err := resolvePath(cfg, opts.Path)
	if err != nil {
		return err
	}

	doc, err := loadDocument(cfg, path)
	if err != nil {
		return err
	}

	if cfg.Backup {
		backup, err := Backup(path)
		if err != nil {
			return fmt.Errorf("backup failed, aborting edit: %w", err)
		}
		log.Info().Str("backup", backup).Msg("created backup")
	}

	if err := applyEdit(doc, opts); err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(doc.Serialize()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	log.Info().Str("path", path).Int("rules", len(doc.Rules)).Msg("updated filter rules file")
	return nil
}

// ProcessManifest applies every entry of a YAML manifest to the rules file,
// in manifest order, with a single backup before the batch.
func ProcessManifest(cfg *config.Config, manifestPath, path string) error {
	entries, err := importer.Read(manifestPath)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := ValidateHeaderField(e.Field); err != nil {
			return fmt.Errorf("entry %q: %w", e.Rule, err)
		}
	}

	path, err = resolvePath(cfg, path)
	if err != nil {
		return err
	}

	doc, err := loadDocument(cfg, path)
	if err != nil {
		return err
	}

	if cfg.Backup {
		backup, err := Backup(path)
		if err != nil {
			return fmt.Errorf("backup failed, aborting import: %w", err)
		}
		log.Info().Str("backup", backup).Msg("created backup")
	}

	for _, e := range entries {
		opts := Options{
			RuleName:    e.Rule,
			HeaderField: e.Field,
			Value:       e.Value,
			DestFolder:  e.Folder,
		}
		if err := applyEdit(doc, opts); err != nil {
			return fmt.Errorf("entry %q: %w", e.Rule, err)
		}
	}

	if err := os.WriteFile(path, []byte(doc.Serialize()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	log.Info().Str("path", path).Int("entries", len(entries)).Msg("imported filter manifest")
	return nil
}

// ListRules parses the rules file without modifying it.
func ListRules(cfg *config.Config, path string) (*filter.Document, error) {
	path, err := resolvePath(cfg, path)
	if err != nil {
		return nil, err
	}
	return loadDocument(cfg, path)
}

// applyEdit merges the condition into an existing rule, or creates the rule
// if the name is unknown. RuleNotFound is the expected miss signal here,
// not a failure.
func applyEdit(doc *filter.Document, opts Options) error {
	if rule := doc.FindByName(opts.RuleName); rule != nil {
		log.Info().Str("rule", opts.RuleName).Msg("rule exists, merging condition")
		return rule.AddCondition(opts.HeaderField, opts.Value)
	}

	log.Info().Str("rule", opts.RuleName).Msg("rule not found, creating")
	_, err := doc.CreateRule(opts.RuleName, opts.HeaderField, opts.Value, opts.DestFolder)
	return err
}

// resolvePath picks the rules file: explicit flag first, then the config
// file, then Thunderbird profile discovery. The file must already exist;
// this tool edits rule files, it does not create them.
func resolvePath(cfg *config.Config, flagPath string) (string, error) {
	path := flagPath
	if path == "" {
		path = cfg.RulesFile
	}
	if path == "" {
		found, err := profile.FindRulesFile()
		if err != nil {
			return "", err
		}
		path = found
	}

	if fi, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("filter rules file %s: %w", path, err)
	} else if fi.IsDir() {
		return "", fmt.Errorf("filter rules file %s is a directory", path)
	}
	return path, nil
}

func loadDocument(cfg *config.Config, path string) (*filter.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if cfg.Strict {
		doc, err := filter.ParseStrict(string(data))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return doc, nil
	}
	return filter.Parse(string(data)), nil
}
