/*
Package registry maps wire-level kind names to factories.

Transforms and queries arrive as JSON objects tagged with an "op" field.
The storagemodels package keeps one registry for operations and one for
query expressions, and decoding looks the tag up to obtain a concrete value
to unmarshal into:

	var operations = registry.New[Operation]("operation")

	func init() {
	    operations.Register("addRecord", func() Operation {
	        return &AddRecord{}
	    })
	}

	op, err := operations.New("addRecord")

Registering the same name twice panics. Registries are safe for concurrent
use and are expected to be populated during initialization.
*/
package registry
