/*
Package storagemodels defines the data structures used throughout recordkv.

Key Types:

Record:
The unit a source stores, identified by (type, id):

	planet := &Record{
	    Type: "planet",
	    ID:   "jupiter",
	    Attributes: map[string]any{"name": "Jupiter"},
	    Relationships: map[string]*Relationship{
	        "moons": ToMany(RecordIdentity{Type: "moon", ID: "io"}),
	    },
	}

Transform:
An ordered list of operations. Operation is a closed union; each kind
serializes with an "op" tag:

	t := NewTransform(
	    &AddRecord{Record: planet},
	    &ReplaceAttribute{Record: planet.Identity(), Attribute: "classification", Value: "gas giant"},
	)
	// {"id":"...","operations":[{"op":"addRecord","record":{...}}, ...]}

Query:
A read intent wrapping one Expression:

	q := NewQuery(&FindRecords{Type: "planet"})

Decoding a transform or query whose "op" is not registered succeeds and
yields an UnknownOperation or UnknownExpression, so the failure is reported
by the adapter that is asked to apply it.

Settings:
Functional options configuring adapter name, namespace and delimiter:

	opts := []Option{
	    WithNamespace("app"),
	    WithDelimiter(":"),
	}
*/
package storagemodels
