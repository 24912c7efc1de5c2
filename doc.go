/*
Package recordkv adapts the Source and Bucket concepts of a data-synchronization
framework to a flat key/value storage medium.

Records are stored as JSON under "<namespace>/<type>/<id>", bucket items under
"<namespace>/<key>". Transforms applied through Sync or Push become writes;
queries answered through Pull become transforms.

Key Features:
  - Record source with sync, push and pull capabilities
  - Bucket for transient, schema-less application state
  - Pluggable media: in-memory, bbolt, DynamoDB, plus a metrics decorator
  - Semantic error types for better error handling
  - Thread-safe registry of named sources and buckets
  - YAML or TOML configuration with environment overrides

Basic Usage:

	cfg, err := config.Load("recordkv.yaml")
	if err != nil {
	    return err
	}
	inst, err := recordkv.Open(ctx, cfg)
	if err != nil {
	    return err
	}
	defer inst.Close()

	// Apply a transform to the source
	src, err := inst.RequireSource()
	err = src.Sync(ctx, storagemodels.NewTransform(
	    &storagemodels.AddRecord{Record: jupiter},
	))

	// Keep typed transient state in the bucket
	prefs := recordkv.NewTypedBucket[Preferences](inst.Bucket)
	err = prefs.Set(ctx, "prefs", Preferences{Theme: "dark"})

Adapters can also be built directly over any medium:

	src, err := source.New(memory.New(), sch, storagemodels.WithNamespace("app"))
	b, err := bucket.New(memory.New())
*/
package recordkv
