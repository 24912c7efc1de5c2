/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/suparena/recordkv/errors"
	"github.com/suparena/recordkv/keys"
)

// Medium kinds.
const (
	MediumMemory   = "memory"
	MediumBolt     = "bolt"
	MediumDynamoDB = "dynamodb"
)

// EnvPrefix prefixes every environment variable Load reads.
const EnvPrefix = "RECORDKV_"

type Config struct {
	Source SourceConfig `yaml:"source" toml:"source"`
	Bucket BucketConfig `yaml:"bucket" toml:"bucket"`
	Medium MediumConfig `yaml:"medium" toml:"medium"`
	Log    LogConfig    `yaml:"log" toml:"log"`
}

type SourceConfig struct {
	Name      string `yaml:"name" toml:"name"`
	Namespace string `yaml:"namespace" toml:"namespace"`
	Delimiter string `yaml:"delimiter" toml:"delimiter"`

	// Schema is the path of the YAML schema file. Without it no source is opened.
	Schema string `yaml:"schema" toml:"schema"`
}

type BucketConfig struct {
	Name      string `yaml:"name" toml:"name"`
	Namespace string `yaml:"namespace" toml:"namespace"`
	Delimiter string `yaml:"delimiter" toml:"delimiter"`
}

type MediumConfig struct {
	Kind     string         `yaml:"kind" toml:"kind"`
	Metered  bool           `yaml:"metered" toml:"metered"`
	Bolt     BoltConfig     `yaml:"bolt" toml:"bolt"`
	DynamoDB DynamoDBConfig `yaml:"dynamodb" toml:"dynamodb"`
}

type BoltConfig struct {
	Path   string `yaml:"path" toml:"path"`
	Bucket string `yaml:"bucket" toml:"bucket"`
}

type DynamoDBConfig struct {
	Table     string `yaml:"table" toml:"table"`
	Region    string `yaml:"region" toml:"region"`
	Endpoint  string `yaml:"endpoint" toml:"endpoint"`
	AccessKey string `yaml:"access_key" toml:"access_key"`
	SecretKey string `yaml:"secret_key" toml:"secret_key"`
}

type LogConfig struct {
	Level      string `yaml:"level" toml:"level"`
	Format     string `yaml:"format" toml:"format"`
	File       string `yaml:"file" toml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_age_days"`
}

// Defaults returns a Config for an in-memory medium with the standard
// adapter names and namespaces.
func Defaults() *Config {
	return &Config{
		Source: SourceConfig{
			Name:      "localStorage",
			Namespace: "orbit",
			Delimiter: keys.DefaultDelimiter,
		},
		Bucket: BucketConfig{
			Name:      "localStorageBucket",
			Namespace: "orbit-bucket",
			Delimiter: keys.DefaultDelimiter,
		},
		Medium: MediumConfig{
			Kind: MediumMemory,
			Bolt: BoltConfig{Path: "recordkv.db"},
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads a YAML or TOML config file (chosen by extension) over the
// defaults, then applies RECORDKV_* environment overrides. An empty path
// skips the file.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".toml":
			if _, err := toml.Decode(string(data), cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		case ".yaml", ".yml", ".json":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		default:
			return nil, errors.NewValidationError("config", fmt.Sprintf("unsupported config file extension %q", ext))
		}
	}

	cfg.applyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnvFiles loads variables from the given dotenv files into the process
// environment. Missing files are skipped; variables already set win.
func LoadEnvFiles(files ...string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	overrides := map[string]*string{
		"SOURCE_NAME":      &c.Source.Name,
		"NAMESPACE":        &c.Source.Namespace,
		"DELIMITER":        &c.Source.Delimiter,
		"SCHEMA":           &c.Source.Schema,
		"BUCKET_NAME":      &c.Bucket.Name,
		"BUCKET_NAMESPACE": &c.Bucket.Namespace,
		"BUCKET_DELIMITER": &c.Bucket.Delimiter,
		"MEDIUM":           &c.Medium.Kind,
		"BOLT_PATH":        &c.Medium.Bolt.Path,
		"BOLT_BUCKET":      &c.Medium.Bolt.Bucket,
		"DDB_TABLE":        &c.Medium.DynamoDB.Table,
		"DDB_REGION":       &c.Medium.DynamoDB.Region,
		"DDB_ENDPOINT":     &c.Medium.DynamoDB.Endpoint,
		"DDB_ACCESS_KEY":   &c.Medium.DynamoDB.AccessKey,
		"DDB_SECRET_KEY":   &c.Medium.DynamoDB.SecretKey,
		"LOG_LEVEL":        &c.Log.Level,
		"LOG_FORMAT":       &c.Log.Format,
		"LOG_FILE":         &c.Log.File,
	}
	for name, field := range overrides {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*field = v
		}
	}
	if v, ok := lookup(EnvPrefix + "METERED"); ok {
		c.Medium.Metered = v == "1" || strings.EqualFold(v, "true")
	}
}

// Validate checks that the selected medium has what it needs.
func (c *Config) Validate() error {
	switch c.Medium.Kind {
	case MediumMemory:
	case MediumBolt:
		if c.Medium.Bolt.Path == "" {
			return errors.NewValidationError("medium.bolt.path", "required for the bolt medium")
		}
	case MediumDynamoDB:
		if c.Medium.DynamoDB.Table == "" {
			return errors.NewValidationError("medium.dynamodb.table", "required for the dynamodb medium")
		}
		if c.Medium.DynamoDB.Region == "" {
			return errors.NewValidationError("medium.dynamodb.region", "required for the dynamodb medium")
		}
	default:
		return errors.NewValidationError("medium.kind", fmt.Sprintf("unknown medium %q", c.Medium.Kind))
	}
	return nil
}
