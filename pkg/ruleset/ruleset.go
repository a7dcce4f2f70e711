package ruleset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/datacheck/pkg/validator"
)

// Definition is one named pattern from a rules document.
type Definition struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Description string `yaml:"description,omitempty"`
}

type document struct {
	Rules []Definition `yaml:"rules"`
}

// Load reads a rules document and returns its definitions in file order.
// Every definition is checked here: names must be present and unique
// within the document, patterns must be present and compile. The first
// violation fails the load.
func Load(r io.Reader) ([]Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty document carries no rules.
			return nil, nil
		}
		return nil, errors.Join(ErrInvalidDocument, err)
	}

	seen := make(map[string]struct{}, len(doc.Rules))
	for i, def := range doc.Rules {
		if strings.TrimSpace(def.Name) == "" {
			return nil, fmt.Errorf("rule %d: %w", i, ErrMissingRuleName)
		}
		if def.Pattern == "" {
			return nil, fmt.Errorf("rule %q: %w", def.Name, ErrMissingPattern)
		}
		if _, dup := seen[def.Name]; dup {
			return nil, fmt.Errorf("rule %q: %w", def.Name, ErrDuplicateRule)
		}
		seen[def.Name] = struct{}{}

		if _, err := validator.CompilePattern(def.Pattern); err != nil {
			return nil, fmt.Errorf("rule %q: %w", def.Name, err)
		}
	}

	return doc.Rules, nil
}

// LoadFile opens path and loads it like Load.
func LoadFile(path string) ([]Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Register adds every definition to v in document order. Definitions that
// share a name with a built-in rule overwrite it.
func Register(v *validator.Validator, defs []Definition) error {
	for _, def := range defs {
		if err := v.AddRule(def.Name, def.Pattern); err != nil {
			return fmt.Errorf("rule %q: %w", def.Name, err)
		}
	}
	return nil
}
