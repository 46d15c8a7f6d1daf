package store

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/feral-file/nft-ledger/internal/domain"
)

// operatorKey identifies one (owner, operator) grant. A dedicated key type
// keeps the operator set from ever being queried with a plain account key.
type operatorKey struct {
	owner    domain.AccountID
	operator domain.AccountID
}

// MemoryStore is an in-memory Store for tests and embedded use. txMu
// serializes transactions; mu guards the tables so direct reads may race a
// running transaction and still see a consistent pre-commit snapshot. mu is
// never held while a transaction callback runs.
type MemoryStore struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	owners    map[domain.TokenID]domain.AccountID
	balances  map[domain.AccountID]uint64
	delegates map[domain.TokenID]domain.AccountID
	operators map[operatorKey]struct{}
	events    []*domain.LedgerEvent
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		owners:    make(map[domain.TokenID]domain.AccountID),
		balances:  make(map[domain.AccountID]uint64),
		delegates: make(map[domain.TokenID]domain.AccountID),
		operators: make(map[operatorKey]struct{}),
	}
}

func (m *MemoryStore) OwnerOf(_ context.Context, id domain.TokenID) (*domain.AccountID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	owner, ok := m.owners[id]
	if !ok {
		return nil, nil
	}
	return &owner, nil
}

func (m *MemoryStore) TokenExists(_ context.Context, id domain.TokenID) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.owners[id]
	return ok, nil
}

func (m *MemoryStore) SetOwner(_ context.Context, id domain.TokenID, owner domain.AccountID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.owners[id] = owner
	return nil
}

func (m *MemoryStore) RemoveOwner(_ context.Context, id domain.TokenID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.owners, id)
	return nil
}

func (m *MemoryStore) BalanceOf(_ context.Context, account domain.AccountID) (uint64, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count, ok := m.balances[account]
	return count, ok, nil
}

func (m *MemoryStore) SetBalance(_ context.Context, account domain.AccountID, count uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[account] = count
	return nil
}

func (m *MemoryStore) DelegateOf(_ context.Context, id domain.TokenID) (*domain.AccountID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	delegate, ok := m.delegates[id]
	if !ok {
		return nil, nil
	}
	return &delegate, nil
}

func (m *MemoryStore) SetDelegate(_ context.Context, id domain.TokenID, delegate domain.AccountID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delegates[id] = delegate
	return nil
}

func (m *MemoryStore) RemoveDelegate(_ context.Context, id domain.TokenID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.delegates, id)
	return nil
}

func (m *MemoryStore) IsOperator(_ context.Context, owner, operator domain.AccountID) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.operators[operatorKey{owner: owner, operator: operator}]
	return ok, nil
}

func (m *MemoryStore) SetOperator(_ context.Context, owner, operator domain.AccountID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.operators[operatorKey{owner: owner, operator: operator}] = struct{}{}
	return nil
}

func (m *MemoryStore) RemoveOperator(_ context.Context, owner, operator domain.AccountID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.operators, operatorKey{owner: owner, operator: operator})
	return nil
}

func (m *MemoryStore) RecordEvent(_ context.Context, event *domain.LedgerEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

// Transaction runs fn against a copy of the tables and swaps the copy in only
// if fn succeeds. Concurrent transactions run one at a time; reads against
// the outer store stay on the pre-transaction state until the swap.
func (m *MemoryStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	m.mu.RLock()
	tx := &MemoryStore{
		owners:    maps.Clone(m.owners),
		balances:  maps.Clone(m.balances),
		delegates: maps.Clone(m.delegates),
		operators: maps.Clone(m.operators),
		events:    slices.Clone(m.events),
	}
	m.mu.RUnlock()

	if err := fn(tx); err != nil {
		return err
	}

	m.mu.Lock()
	m.owners = tx.owners
	m.balances = tx.balances
	m.delegates = tx.delegates
	m.operators = tx.operators
	m.events = tx.events
	m.mu.Unlock()
	return nil
}

// Events returns the journaled events in emission order
func (m *MemoryStore) Events() []*domain.LedgerEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.events)
}
