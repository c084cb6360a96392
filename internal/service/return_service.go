package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"valvetrace/internal/core/domain"
	"valvetrace/internal/core/ports"
	"valvetrace/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// ReturnServiceImpl implements ports.ReturnService: the administrative
// side-channel for returning, burning and restoring assets. Burn and
// restore are the only operations allowed to touch a terminal asset, and
// each of them writes an override ledger record whether it is accepted or
// rejected, the same contract as regular transfers.
type ReturnServiceImpl struct {
	assetRepo  ports.AssetRepository
	ledger     ports.TransferLedger
	returnRepo ports.ReturnRequestRepository
	transactor ports.DBTransactor
	oracle     ports.ConfirmationOracle // nil = no external confirmation
	cache      ports.AssetCache         // nil = caching disabled
	auditSvc   ports.AuditService       // nil = audit sink disabled
	log        zerolog.Logger
}

// NewReturnService creates a new ReturnServiceImpl.
func NewReturnService(
	assetRepo ports.AssetRepository,
	ledger ports.TransferLedger,
	returnRepo ports.ReturnRequestRepository,
	transactor ports.DBTransactor,
	oracle ports.ConfirmationOracle,
	cache ports.AssetCache,
	auditSvc ports.AuditService,
	log zerolog.Logger,
) *ReturnServiceImpl {
	return &ReturnServiceImpl{
		assetRepo:  assetRepo,
		ledger:     ledger,
		returnRepo: returnRepo,
		transactor: transactor,
		oracle:     oracle,
		cache:      cache,
		auditSvc:   auditSvc,
		log:        log,
	}
}

// CreateReturnRequest opens a PENDING return request for an asset. Only
// manufacturers, distributors and admins may request a return, and a
// burned asset cannot be returned again.
func (s *ReturnServiceImpl) CreateReturnRequest(ctx context.Context, req ports.CreateReturnRequest) (*domain.ReturnRequest, error) {
	if req.Serial == "" {
		return nil, apperror.Validation("serial number is required")
	}
	if !domain.ValidReturnType(string(req.ReturnType)) {
		return nil, apperror.Validation(fmt.Sprintf("invalid return type: %s", req.ReturnType))
	}
	if req.Fee < 0 {
		return nil, apperror.Validation("fee must not be negative")
	}
	if !req.RequestedByClass.CanRequestReturn() {
		return nil, apperror.ErrForbidden()
	}

	asset, err := s.assetRepo.GetBySerial(ctx, req.Serial)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get asset: %w", err))
	}
	if asset == nil {
		return nil, apperror.ErrNotFound("asset")
	}
	if asset.Burned {
		return nil, apperror.ErrAssetBurned()
	}

	now := time.Now().UTC()
	request := &domain.ReturnRequest{
		ID:               uuid.New(),
		AssetID:          asset.TokenID,
		RequestedBy:      req.RequestedBy,
		RequestedByClass: req.RequestedByClass,
		ReturnType:       req.ReturnType,
		Reason:           req.Reason,
		Fee:              req.Fee,
		Status:           domain.ReturnStatusPending,
		CreatedAt:        now,
	}

	if err := s.returnRepo.Create(ctx, request); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create return request: %w", err))
	}

	s.audit(ctx, &req.RequestedBy, domain.AuditActionReturnRequest, "return_request", request.ID.String(), map[string]interface{}{
		"serial":      req.Serial,
		"return_type": string(req.ReturnType),
		"fee":         req.Fee,
	})
	s.log.Info().
		Str("serial", req.Serial).
		Str("request_id", request.ID.String()).
		Str("return_type", string(req.ReturnType)).
		Msg("return request created")

	return request, nil
}

// ListReturns fetches all return requests ever opened for an asset.
func (s *ReturnServiceImpl) ListReturns(ctx context.Context, serial string) ([]domain.ReturnRequest, error) {
	if serial == "" {
		return nil, apperror.Validation("serial number is required")
	}

	asset, err := s.assetRepo.GetBySerial(ctx, serial)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get asset: %w", err))
	}
	if asset == nil {
		return nil, apperror.ErrNotFound("asset")
	}

	requests, err := s.returnRepo.ListByAsset(ctx, asset.TokenID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list return requests: %w", err))
	}
	return requests, nil
}

// ApproveReturn resolves a PENDING request. APPROVED_FOR_BURN burns the
// asset inline; APPROVED_FOR_RESTORE only marks eligibility — the actual
// restore is a separate call because the new owner is chosen later.
func (s *ReturnServiceImpl) ApproveReturn(ctx context.Context, requestID uuid.UUID, adminID uuid.UUID, decision domain.ReturnStatus) (*domain.ReturnRequest, error) {
	switch decision {
	case domain.ReturnStatusApprovedForBurn, domain.ReturnStatusApprovedForRestore, domain.ReturnStatusRejected:
	default:
		return nil, apperror.Validation(fmt.Sprintf("invalid decision: %s", decision))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	request, err := s.returnRepo.GetByIDForUpdate(ctx, dbTx, requestID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock return request: %w", err))
	}
	if request == nil {
		return nil, apperror.ErrNotFound("return request")
	}
	if !request.IsPending() {
		return nil, apperror.ErrReturnNotPending()
	}

	if err := s.returnRepo.UpdateStatus(ctx, dbTx, requestID, decision, adminID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update return status: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	now := time.Now().UTC()
	request.Status = decision
	request.ResolvedBy = &adminID
	request.ResolvedAt = &now

	s.audit(ctx, &adminID, domain.AuditActionReturnDecision, "return_request", request.ID.String(), map[string]interface{}{
		"decision": string(decision),
	})

	if decision == domain.ReturnStatusApprovedForBurn {
		asset, err := s.assetByID(ctx, request.AssetID)
		if err != nil {
			return nil, err
		}
		if _, err := s.Burn(ctx, asset.SerialNumber, adminID, fmt.Sprintf("return request %s approved for burn", request.ID)); err != nil {
			return nil, err
		}
	}

	s.log.Info().
		Str("request_id", request.ID.String()).
		Str("decision", string(decision)).
		Msg("return request resolved")

	return request, nil
}

// Burn marks an asset terminally burned. Ownership fields are left
// untouched so the last custodian stays attributed in the audit trail.
func (s *ReturnServiceImpl) Burn(ctx context.Context, serial string, adminID uuid.UUID, reason string) (*domain.Asset, error) {
	if serial == "" {
		return nil, apperror.Validation("serial number is required")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	asset, err := s.assetRepo.GetBySerialForUpdate(ctx, dbTx, serial)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock asset: %w", err))
	}
	if asset == nil {
		return nil, apperror.ErrNotFound("asset")
	}

	now := time.Now().UTC()
	record := &domain.TransferRecord{
		ID:             uuid.New(),
		AssetID:        asset.TokenID,
		FromOwnerID:    asset.CurrentOwnerID,
		FromOwnerClass: asset.CurrentOwnerClass,
		ToOwnerID:      asset.CurrentOwnerID,
		ToOwnerClass:   asset.CurrentOwnerClass,
		Category:       domain.CategoryBurnOverride,
		Note:           reason,
		CreatedAt:      now,
	}

	if asset.Burned {
		record.ReasonCode = "ALREADY_BURNED"
		if err := s.appendAndCommit(ctx, dbTx, record); err != nil {
			return nil, err
		}
		s.auditOverride(ctx, adminID, domain.AuditActionBurn, asset, record)
		return nil, apperror.ErrAlreadyBurned()
	}

	record.Accepted = true
	if err := s.assetRepo.SetBurned(ctx, dbTx, asset.TokenID, true); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("set burned: %w", err))
	}
	if err := s.appendAndCommit(ctx, dbTx, record); err != nil {
		return nil, err
	}

	asset.Burned = true
	asset.UpdatedAt = now
	s.invalidate(ctx, serial)
	s.confirmOverride(ctx, "BURN", asset, record)
	s.auditOverride(ctx, adminID, domain.AuditActionBurn, asset, record)

	s.log.Info().Str("serial", serial).Str("admin", adminID.String()).Msg("asset burned")
	return asset, nil
}

// Restore clears the burned flag and reassigns ownership. The ledger is
// never purged: a restored asset's later transfers still count against its
// lifetime quotas.
func (s *ReturnServiceImpl) Restore(ctx context.Context, serial string, adminID uuid.UUID, newOwnerID uuid.UUID, newOwnerClass domain.OwnerClass, reason string) (*domain.Asset, error) {
	if serial == "" {
		return nil, apperror.Validation("serial number is required")
	}
	if !domain.ValidOwnerClass(string(newOwnerClass)) || newOwnerClass == domain.OwnerClassPlant {
		return nil, apperror.Validation("restore target must be a manufacturer or distributor")
	}
	if newOwnerID == uuid.Nil {
		return nil, apperror.Validation("new owner ID is required")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	asset, err := s.assetRepo.GetBySerialForUpdate(ctx, dbTx, serial)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock asset: %w", err))
	}
	if asset == nil {
		return nil, apperror.ErrNotFound("asset")
	}

	now := time.Now().UTC()
	record := &domain.TransferRecord{
		ID:             uuid.New(),
		AssetID:        asset.TokenID,
		FromOwnerID:    asset.CurrentOwnerID,
		FromOwnerClass: asset.CurrentOwnerClass,
		ToOwnerID:      newOwnerID,
		ToOwnerClass:   newOwnerClass,
		Category:       domain.CategoryRestoreOverride,
		Note:           reason,
		CreatedAt:      now,
	}

	if !asset.Burned {
		record.ReasonCode = "NOT_BURNED"
		record.ToOwnerID = asset.CurrentOwnerID
		record.ToOwnerClass = asset.CurrentOwnerClass
		if err := s.appendAndCommit(ctx, dbTx, record); err != nil {
			return nil, err
		}
		s.auditOverride(ctx, adminID, domain.AuditActionRestore, asset, record)
		return nil, apperror.ErrNotBurned()
	}

	record.Accepted = true
	if err := s.assetRepo.SetBurned(ctx, dbTx, asset.TokenID, false); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("clear burned: %w", err))
	}
	if err := s.assetRepo.SetOwner(ctx, dbTx, asset.TokenID, newOwnerID, newOwnerClass); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("set owner: %w", err))
	}
	if err := s.appendAndCommit(ctx, dbTx, record); err != nil {
		return nil, err
	}

	asset.Burned = false
	asset.CurrentOwnerID = newOwnerID
	asset.CurrentOwnerClass = newOwnerClass
	asset.UpdatedAt = now
	s.invalidate(ctx, serial)
	s.confirmOverride(ctx, "RESTORE", asset, record)
	s.auditOverride(ctx, adminID, domain.AuditActionRestore, asset, record)

	s.log.Info().
		Str("serial", serial).
		Str("new_owner", newOwnerID.String()).
		Str("new_owner_class", string(newOwnerClass)).
		Msg("asset restored")

	return asset, nil
}

func (s *ReturnServiceImpl) appendAndCommit(ctx context.Context, dbTx pgx.Tx, record *domain.TransferRecord) error {
	if err := s.ledger.Append(ctx, dbTx, record); err != nil {
		return apperror.InternalError(fmt.Errorf("append override record: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

func (s *ReturnServiceImpl) assetByID(ctx context.Context, assetID uuid.UUID) (*domain.Asset, error) {
	// Return requests reference assets by token ID; resolve back to the
	// serial for the burn path.
	asset, err := s.assetRepo.GetByTokenID(ctx, assetID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get asset by token: %w", err))
	}
	if asset == nil {
		return nil, apperror.ErrNotFound("asset")
	}
	return asset, nil
}

func (s *ReturnServiceImpl) invalidate(ctx context.Context, serial string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, serial); err != nil {
		s.log.Warn().Err(err).Str("serial", serial).Msg("failed to invalidate asset cache")
	}
}

func (s *ReturnServiceImpl) confirmOverride(ctx context.Context, op string, asset *domain.Asset, record *domain.TransferRecord) {
	if s.oracle == nil {
		return
	}
	if _, err := s.oracle.Confirm(ctx, ports.OperationDescriptor{
		Operation:    op,
		AssetID:      asset.TokenID,
		SerialNumber: asset.SerialNumber,
		RecordID:     &record.ID,
		Timestamp:    record.CreatedAt.Unix(),
	}); err != nil {
		s.log.Warn().Err(err).Str("serial", asset.SerialNumber).Str("operation", op).Msg("chain confirmation failed after local commit")
	}
}

func (s *ReturnServiceImpl) auditOverride(ctx context.Context, adminID uuid.UUID, action domain.AuditAction, asset *domain.Asset, record *domain.TransferRecord) {
	s.audit(ctx, &adminID, action, "asset", asset.SerialNumber, map[string]interface{}{
		"accepted":    record.Accepted,
		"reason_code": record.ReasonCode,
		"note":        record.Note,
	})
}

func (s *ReturnServiceImpl) audit(ctx context.Context, actorID *uuid.UUID, action domain.AuditAction, resourceType, resourceID string, fields map[string]interface{}) {
	if s.auditSvc == nil {
		return
	}
	details, _ := json.Marshal(fields)
	s.auditSvc.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		ActorID:      actorID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Details:      string(details),
		CreatedAt:    time.Now().UTC(),
	})
}
