package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/swap/errors"
)

// mergedIterator combines a snapshot of cached btree items with the
// iterator of the backing store. Cached entries shadow the parent ones
// with the same key and deleted entries hide them.
type mergedIterator struct {
	items     []btree.Item
	idx       int
	parent    Iterator
	ascending bool

	// one item read ahead from the parent
	pkey, pvalue []byte
	pdone        bool
}

var _ Iterator = (*mergedIterator)(nil)

func newMergedIterator(items []btree.Item, parent Iterator, ascending bool) *mergedIterator {
	return &mergedIterator{
		items:     items,
		parent:    parent,
		ascending: ascending,
	}
}

// peekParent makes sure one parent entry is buffered if available.
func (m *mergedIterator) peekParent() error {
	if m.pdone || m.pkey != nil {
		return nil
	}
	key, value, err := m.parent.Next()
	if err != nil {
		if errors.ErrIteratorDone.Is(err) {
			m.pdone = true
			return nil
		}
		return err
	}
	m.pkey, m.pvalue = key, value
	return nil
}

func (m *mergedIterator) Next() (key, value []byte, err error) {
	for {
		if err := m.peekParent(); err != nil {
			return nil, nil, err
		}
		hasOwn := m.idx < len(m.items)
		hasParent := !m.pdone

		switch {
		case !hasOwn && !hasParent:
			return nil, nil, errors.Wrap(errors.ErrIteratorDone, "cache iterator")
		case !hasOwn:
			return m.takeParent()
		case !hasParent:
			if k, v, ok := m.takeOwn(); ok {
				return k, v, nil
			}
			continue
		}

		ownKey := m.items[m.idx].(keyer).Key()
		cmp := bytes.Compare(ownKey, m.pkey)
		if !m.ascending {
			cmp = -cmp
		}
		if cmp > 0 {
			return m.takeParent()
		}
		if cmp == 0 {
			// cached entry shadows the parent
			m.pkey, m.pvalue = nil, nil
		}
		if k, v, ok := m.takeOwn(); ok {
			return k, v, nil
		}
	}
}

func (m *mergedIterator) takeParent() ([]byte, []byte, error) {
	k, v := m.pkey, m.pvalue
	m.pkey, m.pvalue = nil, nil
	return k, v, nil
}

// takeOwn consumes one cached item. ok is false for deleted items.
func (m *mergedIterator) takeOwn() ([]byte, []byte, bool) {
	item := m.items[m.idx]
	m.idx++
	if s, ok := item.(setItem); ok {
		return s.key, s.value, true
	}
	return nil, nil, false
}

func (m *mergedIterator) Release() {
	m.parent.Release()
	m.items = nil
}
