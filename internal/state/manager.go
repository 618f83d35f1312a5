package state

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/semaphore"

	"starksnap/internal/filter"
)

type txnStatus int

const (
	txnIdle txnStatus = iota
	txnInProgress
)

// txnState is the open transaction of a manager. working is mutated by the
// transaction body, snapshot is what gets restored after a failed commit.
type txnState struct {
	working   *SnapState
	snapshot  *SnapState
	committed bool
}

type txnKey struct {
	owner *StoreLock
}

// StoreLock serializes the get-mutate-set cycles of every manager sharing
// one store and tracks the transaction open on it.
type StoreLock struct {
	// sem is FIFO, so mutations run one at a time in arrival order.
	sem *semaphore.Weighted

	mu     sync.Mutex
	status txnStatus
	txn    *txnState
}

func NewStoreLock() *StoreLock {
	return &StoreLock{
		sem: semaphore.NewWeighted(1),
	}
}

// StateManager gives locked read-modify-write access to one collection of
// the state document. Managers of the same store must share a StoreLock.
type StateManager[T any] struct {
	store      Store
	collection func(*SnapState) *[]T
	lock       *StoreLock
}

func NewStateManager[T any](store Store, lock *StoreLock, collection func(*SnapState) *[]T) *StateManager[T] {
	return &StateManager[T]{
		store:      store,
		collection: collection,
		lock:       lock,
	}
}

// Get loads the state document. Inside a transaction of this manager the
// working copy is returned instead.
func (m *StateManager[T]) Get(ctx context.Context) (*SnapState, error) {
	if t := m.lock.openTxn(ctx); t != nil {
		return t.working, nil
	}
	return m.load(ctx)
}

// Find returns the first item matching all filters, or the zero value.
func (m *StateManager[T]) Find(ctx context.Context, st *SnapState, filters ...filter.Filter[T]) (T, error) {
	var zero T
	items, err := m.items(ctx, st)
	if err != nil {
		return zero, err
	}
	for _, item := range items {
		if filter.All(item, filters...) {
			return item, nil
		}
	}
	return zero, nil
}

// List returns every item matching all filters. A nil less keeps document order.
func (m *StateManager[T]) List(ctx context.Context, st *SnapState, less func(a, b T) bool, filters ...filter.Filter[T]) ([]T, error) {
	items, err := m.items(ctx, st)
	if err != nil {
		return nil, err
	}

	result := make([]T, 0, len(items))
	for _, item := range items {
		if filter.All(item, filters...) {
			result = append(result, item)
		}
	}

	if less != nil {
		sort.SliceStable(result, func(i, j int) bool {
			return less(result[i], result[j])
		})
	}
	return result, nil
}

// Update applies mutator to a freshly loaded document and persists it. When
// ctx carries an open transaction of this manager the working copy is
// mutated instead and nothing is persisted until the transaction ends.
func (m *StateManager[T]) Update(ctx context.Context, mutator func(st *SnapState) error) error {
	if t := m.lock.openTxn(ctx); t != nil {
		return newStateManagerError(mutator(t.working))
	}

	if err := m.lock.sem.Acquire(ctx, 1); err != nil {
		return newStateManagerError(fmt.Errorf("acquire state lock: %w", err))
	}
	defer m.lock.sem.Release(1)

	st, err := m.load(ctx)
	if err != nil {
		return newStateManagerError(err)
	}

	if err := mutator(st); err != nil {
		return newStateManagerError(err)
	}

	if err := m.store.Set(ctx, st); err != nil {
		return newStateManagerError(fmt.Errorf("set state: %w", err))
	}
	return nil
}

// Txn is handed to the body of WithTransaction.
type Txn struct {
	store Store
	state *txnState
}

// State returns the working copy.
func (t *Txn) State() *SnapState {
	return t.state.working
}

// Commit persists the working copy before the transaction ends. A later
// failure restores the snapshot taken when the transaction opened.
func (t *Txn) Commit(ctx context.Context) error {
	if err := t.store.Set(ctx, t.state.working); err != nil {
		return fmt.Errorf("commit state: %w", err)
	}
	t.state.committed = true
	return nil
}

// WithTransaction runs fn against a working copy of the document and
// persists it when fn succeeds. Calls made with the ctx passed to fn reuse
// the same transaction.
func (m *StateManager[T]) WithTransaction(ctx context.Context, fn func(ctx context.Context, txn *Txn) error) error {
	if t := m.lock.openTxn(ctx); t != nil {
		return newStateManagerError(fn(ctx, &Txn{store: m.store, state: t}))
	}

	if err := m.lock.sem.Acquire(ctx, 1); err != nil {
		return newStateManagerError(fmt.Errorf("acquire state lock: %w", err))
	}
	defer m.lock.sem.Release(1)

	working, err := m.load(ctx)
	if err != nil {
		return newStateManagerError(err)
	}
	snapshot, err := working.Clone()
	if err != nil {
		return newStateManagerError(err)
	}

	t := &txnState{working: working, snapshot: snapshot}
	m.lock.begin(t)
	defer m.lock.end()

	txnCtx := context.WithValue(ctx, txnKey{owner: m.lock}, t)
	err = fn(txnCtx, &Txn{store: m.store, state: t})
	if err == nil {
		if err = m.store.Set(ctx, t.working); err == nil {
			return nil
		}
		err = fmt.Errorf("set state: %w", err)
	}

	if t.committed {
		if rbErr := m.store.Set(ctx, t.snapshot); rbErr != nil {
			return newStateManagerError(errors.Join(err, fmt.Errorf("%w: %w", ErrRollback, rbErr)))
		}
	}
	return newStateManagerError(err)
}

// InTransaction reports whether a transaction is open on the store.
func (m *StateManager[T]) InTransaction() bool {
	m.lock.mu.Lock()
	defer m.lock.mu.Unlock()
	return m.lock.status == txnInProgress
}

func (l *StoreLock) begin(t *txnState) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.status = txnInProgress
	l.txn = t
}

func (l *StoreLock) end() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.status = txnIdle
	l.txn = nil
}

// openTxn returns the transaction carried by ctx when it is the one
// currently open on the store.
func (l *StoreLock) openTxn(ctx context.Context) *txnState {
	t, ok := ctx.Value(txnKey{owner: l}).(*txnState)
	if !ok {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.status != txnInProgress || l.txn != t {
		return nil
	}
	return t
}

func (m *StateManager[T]) load(ctx context.Context) (*SnapState, error) {
	st, err := m.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get state: %w", err)
	}
	if st == nil {
		st = NewSnapState()
	}
	st.ensureCollections()
	return st, nil
}

func (m *StateManager[T]) items(ctx context.Context, st *SnapState) ([]T, error) {
	if st == nil {
		var err error
		st, err = m.Get(ctx)
		if err != nil {
			return nil, err
		}
	}
	return *m.collection(st), nil
}
