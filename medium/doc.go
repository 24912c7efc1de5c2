/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package medium defines the key/value storage medium the bucket and source
adapters persist to.

A Medium stores string values under string keys and can enumerate its keys.
Adapters never cache what they read; every call goes straight to the medium.

Backends:

  - memory: in-process concurrent map, with error injection for tests
  - bolt: embedded bbolt file, one bolt bucket per medium
  - ddb: DynamoDB table with a string partition key "Key" and a "Value" attribute
  - metered: decorator counting calls and errors of any other medium

Availability

Constructors of adapters call Available before touching storage and fail with
errors.ErrUnavailableMedium when it reports false:

	m := memory.New()
	m.SetAvailable(false)
	_, err := bucket.New(m) // errors.IsUnavailableMedium(err) == true
*/
package medium
