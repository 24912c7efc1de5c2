/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package source stores typed records in a key/value medium and answers the
sync, push and pull calls of a synchronization framework.

Each record lives at "<namespace><delimiter><type><delimiter><id>" as the JSON
encoding of the full storagemodels.Record. Writes replace the stored value
wholesale.

Basic usage:

	sch, err := schema.Load("schema.yaml")
	if err != nil {
	    return err
	}
	src, err := source.New(memory.New(), sch)
	if err != nil {
	    return err
	}

	// Apply a transform
	err = src.Sync(ctx, storagemodels.NewTransform(
	    &storagemodels.AddRecord{Record: jupiter},
	    &storagemodels.AddToRelatedRecords{
	        Record:        jupiter.Identity(),
	        Relationship:  "moons",
	        RelatedRecord: storagemodels.RecordIdentity{Type: "moon", ID: "io"},
	    },
	))

	// Ask for state as transforms
	transforms, err := src.Pull(ctx, storagemodels.NewQuery(
	    &storagemodels.FindRecords{Type: "planet"},
	))

Operations

addRecord and replaceRecord store the given record. removeRecord deletes it.
The field operations (replaceKey, replaceAttribute, addToRelatedRecords,
replaceRelatedRecord, replaceRelatedRecords) read the record, change one
field and write it back. A missing record starts out as its bare identity.
removeFromRelatedRecords leaves a missing record missing.

An operation with no handler fails the call with an
errors.UnsupportedOperationError. Operations earlier in the same transform
stay applied; there is no rollback.

Queries

Every query yields a single transform. findRecord, findRecords,
findRelatedRecord and findRelatedRecords are supported; records that are not
stored are left out. Any other expression fails with an
errors.UnsupportedQueryError.

Concurrency

The store holds no locks. Field operations are read-modify-write, so two
writers updating the same record concurrently can lose an update. Callers
serialize per record.
*/
package source
