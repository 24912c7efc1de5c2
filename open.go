/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package recordkv

import (
	"context"
	"fmt"
	"io"

	"github.com/VictoriaMetrics/metrics"

	"github.com/suparena/recordkv/bucket"
	"github.com/suparena/recordkv/config"
	"github.com/suparena/recordkv/errors"
	"github.com/suparena/recordkv/logging"
	"github.com/suparena/recordkv/medium"
	"github.com/suparena/recordkv/medium/bolt"
	"github.com/suparena/recordkv/medium/ddb"
	"github.com/suparena/recordkv/medium/memory"
	"github.com/suparena/recordkv/medium/metered"
	"github.com/suparena/recordkv/schema"
	"github.com/suparena/recordkv/source"
	"github.com/suparena/recordkv/storagemodels"
)

var log = logging.For("recordkv")

// Instance is a configured medium with the source and bucket built over it,
// both registered in Manager.
type Instance struct {
	Config  *config.Config
	Manager *Manager
	Medium  medium.Medium
	// Metrics is set when the medium is metered.
	Metrics *metered.Medium
	// Source is nil when no schema is configured.
	Source *source.Store
	Bucket *bucket.Store

	closer io.Closer
}

// Open builds an Instance from cfg.
func Open(ctx context.Context, cfg *config.Config) (*Instance, error) {
	if cfg == nil {
		cfg = config.Defaults()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m, closer, err := OpenMedium(ctx, cfg.Medium)
	if err != nil {
		return nil, err
	}
	inst := &Instance{Config: cfg, Manager: NewManager(), Medium: m, closer: closer}

	if cfg.Medium.Metered {
		inst.Metrics = metered.New(m, cfg.Medium.Kind, metrics.NewSet())
		inst.Medium = inst.Metrics
	}

	if err := inst.openAdapters(cfg); err != nil {
		inst.Close()
		return nil, err
	}

	log.Info("recordkv opened",
		"medium", cfg.Medium.Kind,
		"metered", cfg.Medium.Metered,
		"sources", inst.Manager.Sources(),
		"buckets", inst.Manager.Buckets(),
	)
	return inst, nil
}

func (i *Instance) openAdapters(cfg *config.Config) error {
	b, err := bucket.New(i.Medium,
		storagemodels.WithName(cfg.Bucket.Name),
		storagemodels.WithNamespace(cfg.Bucket.Namespace),
		storagemodels.WithDelimiter(cfg.Bucket.Delimiter),
	)
	if err != nil {
		return err
	}
	if err := i.Manager.RegisterBucket(b); err != nil {
		return err
	}
	i.Bucket = b

	if cfg.Source.Schema == "" {
		return nil
	}
	sch, err := schema.Load(cfg.Source.Schema)
	if err != nil {
		return err
	}
	src, err := source.New(i.Medium, sch,
		storagemodels.WithName(cfg.Source.Name),
		storagemodels.WithNamespace(cfg.Source.Namespace),
		storagemodels.WithDelimiter(cfg.Source.Delimiter),
	)
	if err != nil {
		return err
	}
	if err := i.Manager.RegisterSource(src); err != nil {
		return err
	}
	i.Source = src
	return nil
}

// RequireSource returns the configured source, or errors.ErrMissingSchema
// if none was opened.
func (i *Instance) RequireSource() (*source.Store, error) {
	if i.Source == nil {
		return nil, fmt.Errorf("no source configured: %w", errors.ErrMissingSchema)
	}
	return i.Source, nil
}

// Close releases the medium.
func (i *Instance) Close() error {
	if i.closer == nil {
		return nil
	}
	err := i.closer.Close()
	i.closer = nil
	return err
}

// OpenMedium creates the medium selected by cfg. The returned closer is nil
// for media that hold no resources.
func OpenMedium(ctx context.Context, cfg config.MediumConfig) (medium.Medium, io.Closer, error) {
	switch cfg.Kind {
	case config.MediumMemory, "":
		return memory.New(), nil, nil

	case config.MediumBolt:
		m, err := bolt.Open(cfg.Bolt.Path, cfg.Bolt.Bucket)
		if err != nil {
			return nil, nil, err
		}
		return m, m, nil

	case config.MediumDynamoDB:
		client, err := ddb.NewClient(ctx, ddb.ClientConfig{
			Region:    cfg.DynamoDB.Region,
			AccessKey: cfg.DynamoDB.AccessKey,
			SecretKey: cfg.DynamoDB.SecretKey,
			Endpoint:  cfg.DynamoDB.Endpoint,
		})
		if err != nil {
			return nil, nil, err
		}
		return ddb.New(client, cfg.DynamoDB.Table), nil, nil

	default:
		return nil, nil, errors.NewValidationError("medium.kind", fmt.Sprintf("unknown medium %q", cfg.Kind))
	}
}
