package orm

import (
	"reflect"

	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
)

// ModelBucket is implemented by buckets that operates on Models rather than
// Objects.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrInvalidType
	// is returned.
	One(db swap.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if an entity with given primary key value exists. It
	// returns ErrNotFound if no entity can be found.
	Has(db swap.ReadOnlyKVStore, key []byte) error

	// ByIndex returns the keys and models of all entities indexed under
	// the given value of the named index.
	ByIndex(db swap.ReadOnlyKVStore, indexName string, value []byte) ([][]byte, []Model, error)

	// Put saves given model in the database.
	Put(db swap.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db swap.KVStore, key []byte) error

	// Register registers this buckets content to be accessible via query
	// requests under the given name.
	Register(name string, r swap.QueryRouter)
}

// ModelBucketOption is implemented by any function that can configure
// ModelBucket during creation.
type ModelBucketOption func(mb *modelBucket)

// WithIndex configures the bucket to build an index with given name. All
// entities stored in the bucket are indexed using value returned by the
// indexer function. If an index is unique, there can be only one entity
// referenced per index value.
func WithIndex(name string, indexer Indexer, unique bool) ModelBucketOption {
	return func(mb *modelBucket) {
		mb.b = mb.b.WithIndex(name, indexer, unique)
	}
}

// NewModelBucket returns a ModelBucket instance. This implementation relies on
// a bucket instance.
func NewModelBucket(name string, m Model, opts ...ModelBucketOption) ModelBucket {
	b := NewBucket(name, NewSimpleObj(nil, m))

	tp := reflect.TypeOf(m)
	if tp.Kind() == reflect.Ptr {
		tp = tp.Elem()
	}

	mb := &modelBucket{
		b:     b,
		model: tp,
	}
	for _, fn := range opts {
		fn(mb)
	}
	return mb
}

type modelBucket struct {
	b     Bucket
	model reflect.Type
}

func (mb *modelBucket) Register(name string, r swap.QueryRouter) {
	mb.b.Register(name, r)
}

func (mb *modelBucket) One(db swap.ReadOnlyKVStore, key []byte, dest Model) error {
	obj, err := mb.b.Get(db, key)
	if err != nil {
		return err
	}
	if obj == nil || obj.Value() == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	return load(dest, obj.Value())
}

func (mb *modelBucket) Has(db swap.ReadOnlyKVStore, key []byte) error {
	if key == nil {
		// nil key is a special case that would cause the store API to panic.
		return errors.ErrNotFound
	}
	ok, err := mb.b.Has(db, key)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrNotFound
	}
	return nil
}

func (mb *modelBucket) ByIndex(db swap.ReadOnlyKVStore, indexName string, value []byte) ([][]byte, []Model, error) {
	objs, err := mb.b.GetIndexed(db, indexName, value)
	if err != nil {
		return nil, nil, err
	}
	keys := make([][]byte, 0, len(objs))
	models := make([]Model, 0, len(objs))
	for _, obj := range objs {
		if obj == nil {
			continue
		}
		m, ok := obj.Value().(Model)
		if !ok {
			return nil, nil, errors.Wrapf(errors.ErrInvalidType, "%T is not a model", obj.Value())
		}
		keys = append(keys, obj.Key())
		models = append(models, m)
	}
	return keys, models, nil
}

func (mb *modelBucket) Put(db swap.KVStore, key []byte, m Model) error {
	mTp := reflect.TypeOf(m)
	if mTp.Kind() == reflect.Ptr {
		mTp = mTp.Elem()
	}
	if !mb.model.AssignableTo(mTp) {
		return errors.Wrapf(errors.ErrInvalidModel, "cannot store %T type in this bucket", m)
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	if err := mb.b.Save(db, NewSimpleObj(key, m)); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (mb *modelBucket) Delete(db swap.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	return mb.b.Delete(db, key)
}

// load copies the content of src into dest. dest must be a pointer to the
// same type as src.
func load(dest Model, src swap.Persistent) error {
	if !reflect.TypeOf(src).AssignableTo(reflect.TypeOf(dest)) {
		return errors.Wrapf(errors.ErrInvalidType, "%T cannot be represented as %T", src, dest)
	}
	reflect.ValueOf(dest).Elem().Set(reflect.ValueOf(src).Elem())
	return nil
}

var _ ModelBucket = (*modelBucket)(nil)
