// Package config loads the directive configuration used by "a1 apply".
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/orayew2002/rast-a1/template"
)

// Replace is one literal substitution applied to cell text.
type Replace struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Formula defines a formula directive, given either as a Template
// containing template.RangePlaceholder or as a Count symbol. A Count formula
// counts the cells of the range equal to Count, each worth Weight (default 1).
type Formula struct {
	Name     string `yaml:"name"`
	Template string `yaml:"template,omitempty"`
	Count    string `yaml:"count,omitempty"`
	Weight   int    `yaml:"weight,omitempty"`
}

func (f Formula) key() template.FormulaKey {
	if f.Count != "" {
		weight := f.Weight
		if weight == 0 {
			weight = 1
		}
		return template.FormulaKey{Key: f.Name, FormulaFn: template.CountIFFormula(f.Count, weight)}
	}
	return template.FormulaKey{Key: f.Name, FormulaFn: template.TemplateFormula(f.Template)}
}

// Config is the YAML configuration file.
type Config struct {
	// Replace pairs are applied in file order.
	Replace []Replace `yaml:"replace"`
	// Formulas are added to the built-in formula directives; a name that
	// matches a built-in overrides it.
	Formulas []Formula `yaml:"formulas"`
	// MergeCodes enables the "[rows:cols]" merge codes.
	MergeCodes bool `yaml:"merge_codes"`
	// Builtins controls whether the built-in formula directives are registered.
	Builtins *bool `yaml:"builtins"`
}

var namePat = regexp.MustCompile(`^[a-z]+$`)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{MergeCodes: true}
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML configuration.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem found in c.
func (c *Config) Validate() error {
	var errs []error
	for i, r := range c.Replace {
		if r.Key == "" {
			errs = append(errs, fmt.Errorf("replace[%d]: empty key", i))
		}
	}
	reserved := template.NewDirectiveHandler().WithDefaults().Names()
	for i, f := range c.Formulas {
		if !namePat.MatchString(f.Name) {
			errs = append(errs, fmt.Errorf("formulas[%d]: name %q must be lower case letters", i, f.Name))
		}
		if slices.Contains(reserved, f.Name) {
			errs = append(errs, fmt.Errorf("formulas[%d]: name %q is reserved", i, f.Name))
		}
		switch {
		case f.Count != "" && f.Template != "":
			errs = append(errs, fmt.Errorf("formulas[%d]: template and count are exclusive", i))
		case f.Count != "":
			if strings.Contains(f.Count, `"`) {
				errs = append(errs, fmt.Errorf("formulas[%d]: count %q may not contain a double quote", i, f.Count))
			}
		case !strings.Contains(f.Template, template.RangePlaceholder):
			errs = append(errs, fmt.Errorf("formulas[%d]: template %q has no %s", i, f.Template, template.RangePlaceholder))
		}
	}
	return errors.Join(errs...)
}

// Registry builds the handler registry c describes. Directives are matched
// before replace keys, and merge codes last.
func (c *Config) Registry() *template.Registry {
	r := template.New()

	h := template.NewDirectiveHandler().WithDefaults()
	if c.Builtins == nil || *c.Builtins {
		h.AddFormula(template.DefaultFormulas()...)
	}
	for _, f := range c.Formulas {
		h.AddFormula(f.key())
	}
	h.Register(r)

	if len(c.Replace) > 0 {
		rh := template.NewReplaceHandler()
		for _, p := range c.Replace {
			rh.Add(p.Key, p.Value)
		}
		rh.Register(r)
	}

	if c.MergeCodes {
		template.RegisterMergeHandler(r)
	}

	return r
}
