package orm

import (
	swap "github.com/iov-one/swap"
)

// Model is an entity that can be stored in a bucket. Validate is called
// before every write.
type Model interface {
	swap.Persistent
	Validate() error
}

// Object binds a value to the key it is stored under.
type Object interface {
	Cloneable
	Key() []byte
	SetKey([]byte)
	// Validate returns an error if the object cannot be written, for
	// example when a field is missing or out of range.
	Validate() error
	Value() swap.Persistent
}

// Cloneable creates an empty object of the same kind, ready to be loaded.
type Cloneable interface {
	Clone() Object
}
