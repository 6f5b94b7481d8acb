/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package catalog

import "sync/atomic"

// Store holds the current catalog snapshot. Swapping replaces the whole
// snapshot, so readers always see one complete catalog.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore creates a store seeded with initial, or the embedded catalog when nil
func NewStore(initial *Catalog) *Store {
	if initial == nil {
		initial = Embedded()
	}
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Load returns the current snapshot
func (s *Store) Load() *Catalog {
	return s.current.Load()
}

// Swap installs next and returns the previous snapshot. A nil next is ignored.
func (s *Store) Swap(next *Catalog) *Catalog {
	if next == nil {
		return s.current.Load()
	}
	return s.current.Swap(next)
}
