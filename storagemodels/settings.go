/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import "github.com/suparena/recordkv/keys"

// Settings configures a source or bucket adapter.
type Settings struct {
	Name      string // Adapter name used by the framework to address it
	Namespace string // Prefix of every key the adapter writes
	Delimiter string // Separator between namespace and key segments
}

// Option is a functional option for configuring an adapter
type Option func(*Settings)

// SourceDefaults returns the default settings of a record source
func SourceDefaults() Settings {
	return Settings{
		Name:      "localStorage",
		Namespace: "orbit",
		Delimiter: keys.DefaultDelimiter,
	}
}

// BucketDefaults returns the default settings of a bucket
func BucketDefaults() Settings {
	return Settings{
		Name:      "localStorageBucket",
		Namespace: "orbit-bucket",
		Delimiter: keys.DefaultDelimiter,
	}
}

// WithName sets the adapter name
func WithName(name string) Option {
	return func(s *Settings) {
		s.Name = name
	}
}

// WithNamespace sets the key namespace
func WithNamespace(namespace string) Option {
	return func(s *Settings) {
		s.Namespace = namespace
	}
}

// WithDelimiter sets the key delimiter
func WithDelimiter(delimiter string) Option {
	return func(s *Settings) {
		s.Delimiter = delimiter
	}
}

// Apply applies opts on top of defaults. Options that leave a field empty
// fall back to the default value.
func Apply(defaults Settings, opts ...Option) Settings {
	s := defaults
	for _, opt := range opts {
		opt(&s)
	}
	if s.Name == "" {
		s.Name = defaults.Name
	}
	if s.Namespace == "" {
		s.Namespace = defaults.Namespace
	}
	if s.Delimiter == "" {
		s.Delimiter = defaults.Delimiter
	}
	return s
}
