package integration

import (
	"context"
	"fmt"
	"sync"

	"valvetrace/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Actor Repo ---

type inMemoryActorRepo struct {
	mu     sync.RWMutex
	actors map[uuid.UUID]*domain.Actor
}

func newInMemoryActorRepo() *inMemoryActorRepo {
	return &inMemoryActorRepo{actors: make(map[uuid.UUID]*domain.Actor)}
}

func (r *inMemoryActorRepo) Create(ctx context.Context, a *domain.Actor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.actors {
		if existing.Username == a.Username {
			return fmt.Errorf("username already exists")
		}
	}
	r.actors[a.ID] = a
	return nil
}

func (r *inMemoryActorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.actors[id]
	if !ok {
		return nil, nil
	}
	return a, nil
}

func (r *inMemoryActorRepo) GetByUsername(ctx context.Context, username string) (*domain.Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.actors {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, nil
}

// --- In-Memory Asset Repo ---

type inMemoryAssetRepo struct {
	mu     sync.RWMutex
	assets map[uuid.UUID]*domain.Asset // keyed by token ID
}

func newInMemoryAssetRepo() *inMemoryAssetRepo {
	return &inMemoryAssetRepo{assets: make(map[uuid.UUID]*domain.Asset)}
}

func (r *inMemoryAssetRepo) Create(ctx context.Context, a *domain.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.assets {
		if existing.SerialNumber == a.SerialNumber {
			return fmt.Errorf("serial number already exists")
		}
	}
	cp := *a
	r.assets[a.TokenID] = &cp
	return nil
}

func (r *inMemoryAssetRepo) GetBySerial(ctx context.Context, serial string) (*domain.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.assets {
		if a.SerialNumber == serial {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryAssetRepo) GetByTokenID(ctx context.Context, tokenID uuid.UUID) (*domain.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.assets[tokenID]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *inMemoryAssetRepo) GetBySerialForUpdate(ctx context.Context, tx pgx.Tx, serial string) (*domain.Asset, error) {
	// Row locking is provided by the locking transactor: the caller already
	// holds the store-wide lock for the duration of its transaction.
	return r.GetBySerial(ctx, serial)
}

func (r *inMemoryAssetRepo) SetOwner(ctx context.Context, tx pgx.Tx, tokenID uuid.UUID, ownerID uuid.UUID, ownerClass domain.OwnerClass) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assets[tokenID]
	if !ok {
		return fmt.Errorf("asset not found")
	}
	a.CurrentOwnerID = ownerID
	a.CurrentOwnerClass = ownerClass
	return nil
}

func (r *inMemoryAssetRepo) SetBurned(ctx context.Context, tx pgx.Tx, tokenID uuid.UUID, burned bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assets[tokenID]
	if !ok {
		return fmt.Errorf("asset not found")
	}
	a.Burned = burned
	return nil
}

// --- In-Memory Transfer Ledger ---

type inMemoryTransferLedger struct {
	mu      sync.RWMutex
	records map[uuid.UUID][]domain.TransferRecord // keyed by asset ID, insertion order
}

func newInMemoryTransferLedger() *inMemoryTransferLedger {
	return &inMemoryTransferLedger{records: make(map[uuid.UUID][]domain.TransferRecord)}
}

func (l *inMemoryTransferLedger) Append(ctx context.Context, tx pgx.Tx, rec *domain.TransferRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records[rec.AssetID] = append(l.records[rec.AssetID], *rec)
	return nil
}

func (l *inMemoryTransferLedger) CountByCategory(ctx context.Context, tx pgx.Tx, assetID uuid.UUID, category domain.TransferCategory) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	count := 0
	for _, rec := range l.records[assetID] {
		if rec.Accepted && rec.Category == category {
			count++
		}
	}
	return count, nil
}

func (l *inMemoryTransferLedger) CountAcceptedExcludingPlant(ctx context.Context, tx pgx.Tx, assetID uuid.UUID) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	count := 0
	for _, rec := range l.records[assetID] {
		if !rec.Accepted {
			continue
		}
		if rec.Category == domain.CategoryManufacturerToDistributor || rec.Category == domain.CategoryDistributorToDistributor {
			count++
		}
	}
	return count, nil
}

func (l *inMemoryTransferLedger) History(ctx context.Context, assetID uuid.UUID) ([]domain.TransferRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.TransferRecord, len(l.records[assetID]))
	copy(out, l.records[assetID])
	return out, nil
}

// --- In-Memory Return Request Repo ---

type inMemoryReturnRepo struct {
	mu       sync.RWMutex
	requests map[uuid.UUID]*domain.ReturnRequest
}

func newInMemoryReturnRepo() *inMemoryReturnRepo {
	return &inMemoryReturnRepo{requests: make(map[uuid.UUID]*domain.ReturnRequest)}
}

func (r *inMemoryReturnRepo) Create(ctx context.Context, req *domain.ReturnRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *inMemoryReturnRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReturnRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	cp := *req
	return &cp, nil
}

func (r *inMemoryReturnRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.ReturnRequest, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryReturnRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.ReturnStatus, resolvedBy uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return fmt.Errorf("return request not found")
	}
	req.Status = status
	req.ResolvedBy = &resolvedBy
	return nil
}

func (r *inMemoryReturnRepo) ListByAsset(ctx context.Context, assetID uuid.UUID) ([]domain.ReturnRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.ReturnRequest
	for _, req := range r.requests {
		if req.AssetID == assetID {
			out = append(out, *req)
		}
	}
	return out, nil
}

// --- In-Memory Audit Repo ---

type inMemoryAuditRepo struct {
	mu      sync.RWMutex
	entries []domain.AuditLog
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{}
}

func (r *inMemoryAuditRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

// --- Locking Transactor ---

// lockingTransactor serializes transactions with a single mutex, standing in
// for the row lock a real database takes with SELECT ... FOR UPDATE. This
// makes concurrent quota decisions deterministic in-memory.
type lockingTransactor struct {
	mu sync.Mutex
}

func newLockingTransactor() *lockingTransactor {
	return &lockingTransactor{}
}

func (t *lockingTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &lockTx{release: &t.mu}, nil
}

// lockTx holds the transactor lock until Commit or Rollback, whichever comes
// first. Services call both (Rollback via defer), so release exactly once.
type lockTx struct {
	release *sync.Mutex
	once    sync.Once
}

func (t *lockTx) done() {
	t.once.Do(t.release.Unlock)
}

func (t *lockTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *lockTx) Commit(ctx context.Context) error          { t.done(); return nil }
func (t *lockTx) Rollback(ctx context.Context) error        { t.done(); return nil }
func (t *lockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *lockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *lockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *lockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *lockTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *lockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *lockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *lockTx) Conn() *pgx.Conn { return nil }
