/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/suparena/recordkv/errors"
)

// Relationship kinds.
const (
	HasOne  = "hasOne"
	HasMany = "hasMany"
)

// Schema describes the record types a source holds.
// It is consumed by the surrounding framework; stored values are never validated against it.
type Schema struct {
	Version int              `yaml:"version"`
	Models  map[string]Model `yaml:"models"`
}

// Model describes one record type.
type Model struct {
	Attributes    map[string]Attribute    `yaml:"attributes"`
	Keys          map[string]Key          `yaml:"keys"`
	Relationships map[string]Relationship `yaml:"relationships"`
}

// Attribute describes one attribute of a model.
// Format, if set, must be a format name known to strfmt (e.g. "date-time", "email").
type Attribute struct {
	Type   string `yaml:"type"`
	Format string `yaml:"format"`
}

// Key describes an alternate (e.g. remote) identifier of a model.
type Key struct {
	Primary bool `yaml:"primaryKey"`
}

// Relationship describes a link from one model to another.
type Relationship struct {
	Type    string `yaml:"type"`
	Model   string `yaml:"model"`
	Inverse string `yaml:"inverse"`
}

// Load reads and validates a YAML schema file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML schema document.
func Parse(data []byte) (*Schema, error) {
	s := &Schema{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	if s.Version == 0 {
		s.Version = 1
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that relationships point at defined models with a known kind
// and that every attribute format is registered with strfmt.
func (s *Schema) Validate() error {
	for _, modelName := range s.ModelNames() {
		model := s.Models[modelName]
		for attrName, attr := range model.Attributes {
			if attr.Format != "" && !strfmt.Default.ContainsName(attr.Format) {
				return errors.NewValidationError(
					modelName+"."+attrName,
					fmt.Sprintf("unknown format %q", attr.Format))
			}
		}
		for relName, rel := range model.Relationships {
			field := modelName + "." + relName
			if rel.Type != HasOne && rel.Type != HasMany {
				return errors.NewValidationError(field,
					fmt.Sprintf("relationship type must be %q or %q, got %q", HasOne, HasMany, rel.Type))
			}
			if !s.HasModel(rel.Model) {
				return errors.NewValidationError(field,
					fmt.Sprintf("related model %q is not defined", rel.Model))
			}
		}
	}
	return nil
}

// HasModel reports whether a model named name is defined.
func (s *Schema) HasModel(name string) bool {
	_, ok := s.Models[name]
	return ok
}

// ModelNames returns the defined model names in sorted order.
func (s *Schema) ModelNames() []string {
	names := make([]string, 0, len(s.Models))
	for name := range s.Models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Relationship returns the definition of relationship name on model.
func (s *Schema) Relationship(model, name string) (Relationship, bool) {
	m, ok := s.Models[model]
	if !ok {
		return Relationship{}, false
	}
	rel, ok := m.Relationships[name]
	return rel, ok
}

// GenerateID returns a new random record id.
func (s *Schema) GenerateID() string {
	return string(strfmt.UUID(uuid.NewString()))
}
