/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package bucket stores transient, schema-less application state as JSON
// values under "<namespace><delimiter><key>" in a storage medium.
//
// An absent item reads as nil, never as an error:
//
//	b, err := bucket.New(memory.New(), storagemodels.WithNamespace("app"))
//	if err != nil {
//	    return err
//	}
//	_ = b.SetItem(ctx, "session", map[string]any{"user": "ada"})
//	v, _ := b.GetItem(ctx, "session") // map[string]any{"user": "ada"}
//	_ = b.RemoveItem(ctx, "session")
//	v, _ = b.GetItem(ctx, "session")  // nil
package bucket
