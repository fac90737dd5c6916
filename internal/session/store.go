package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/mfowlewebs/dominos-mcp/pkg/types"
)

// ErrNotFound is returned when a requested entity doesn't exist in the
// session.
var ErrNotFound = errors.New("not found")

// Store holds one logical session's state. Construct one per server
// instance and inject it into every workflow operation; nothing here is
// package-global, so multiple sessions can coexist in one process if a
// caller wants them.
type Store struct {
	mu            sync.Mutex
	stores        []types.Store
	selectedStore *types.Store
	menu          *types.Menu
	orders        map[string]*types.Order
}

// New creates an empty session store.
func New() *Store {
	return &Store{
		orders: make(map[string]*types.Order),
	}
}

// RecordStores replaces the candidate store list wholesale. The previous
// list is discarded, not merged.
func (s *Store) RecordStores(stores []types.Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stores = make([]types.Store, len(stores))
	copy(s.stores, stores)
}

// Stores returns a copy of the last recorded candidate list.
func (s *Store) Stores() []types.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Store, len(s.stores))
	copy(out, s.stores)
	return out
}

// SelectStore looks up id in the last recorded candidate list and marks it
// selected. Returns ErrNotFound if the id is not in the list; callers decide
// whether that is fatal.
func (s *Store) SelectStore(id string) (types.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.stores {
		if s.stores[i].ID == id {
			st := s.stores[i]
			s.selectedStore = &st
			return st, nil
		}
	}
	return types.Store{}, ErrNotFound
}

// SetSelectedStore marks a store selected without requiring it to be in the
// candidate list. Menu retrieval uses this so a session can resume from a
// bare store id.
func (s *Store) SetSelectedStore(store types.Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedStore = &store
}

// SelectedStore returns the currently selected store, if any.
func (s *Store) SelectedStore() (types.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedStore == nil {
		return types.Store{}, ErrNotFound
	}
	return *s.selectedStore, nil
}

// RecordMenu replaces the stored menu snapshot unconditionally. No linkage
// check against the selected store is performed; the association is by
// convention only.
func (s *Store) RecordMenu(menu *types.Menu) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu = menu
}

// Menu returns the last recorded menu snapshot, or ErrNotFound if none has
// been fetched.
func (s *Store) Menu() (*types.Menu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.menu == nil {
		return nil, ErrNotFound
	}
	return s.menu, nil
}

// CreateOrder assigns the order a fresh unique id, inserts it, and returns
// the id. Ids never collide for the life of the process. Entries are never
// removed.
func (s *Store) CreateOrder(order *types.Order) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	order.ID = id
	s.orders[id] = order.Clone()
	return id
}

// GetOrder returns a copy of the order aggregate, or ErrNotFound.
func (s *Store) GetOrder(id string) (*types.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return order.Clone(), nil
}

// UpdateOrder replaces the stored aggregate only if id already exists.
// ErrNotFound here implies the order disappeared between read and write,
// which cannot happen under normal sequencing but is defended against.
func (s *Store) UpdateOrder(id string, order *types.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return ErrNotFound
	}
	s.orders[id] = order.Clone()
	return nil
}
