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

// TransferServiceImpl implements ports.TransferService. It is the only
// component that mutates asset ownership: read of current owner, ledger
// counts, the quota decision and the subsequent writes all happen inside
// one database transaction holding the asset row lock. The confirmation
// oracle is invoked strictly after local commit and never under the lock.
type TransferServiceImpl struct {
	assetRepo  ports.AssetRepository
	ledger     ports.TransferLedger
	transactor ports.DBTransactor
	oracle     ports.ConfirmationOracle // nil = no external confirmation
	cache      ports.AssetCache         // nil = caching disabled
	auditSvc   ports.AuditService       // nil = audit sink disabled
	log        zerolog.Logger
}

// NewTransferService creates a new TransferServiceImpl.
func NewTransferService(
	assetRepo ports.AssetRepository,
	ledger ports.TransferLedger,
	transactor ports.DBTransactor,
	oracle ports.ConfirmationOracle,
	cache ports.AssetCache,
	auditSvc ports.AuditService,
	log zerolog.Logger,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		assetRepo:  assetRepo,
		ledger:     ledger,
		transactor: transactor,
		oracle:     oracle,
		cache:      cache,
		auditSvc:   auditSvc,
		log:        log,
	}
}

// AttemptTransfer validates, decides and applies one ownership change.
// Every attempt that reaches the quota evaluator produces exactly one
// ledger record, accepted or rejected. Denials commit their rejection
// record before the typed error is returned: the rejection itself is data.
func (s *TransferServiceImpl) AttemptTransfer(ctx context.Context, serial string, proposal domain.TransferProposal) (*ports.TransferResult, error) {
	if err := validateProposal(serial, proposal); err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock the asset row. This serializes all mutations of one asset.
	asset, err := s.assetRepo.GetBySerialForUpdate(ctx, dbTx, serial)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock asset: %w", err))
	}
	if asset == nil {
		return nil, apperror.ErrNotFound("asset")
	}

	counts, err := s.readCounts(ctx, dbTx, asset.TokenID)
	if err != nil {
		return nil, err
	}

	decision := domain.EvaluateTransfer(asset, proposal, counts)

	now := time.Now().UTC()
	record := &domain.TransferRecord{
		ID:             uuid.New(),
		AssetID:        asset.TokenID,
		FromOwnerID:    asset.CurrentOwnerID,
		FromOwnerClass: asset.CurrentOwnerClass,
		ToOwnerID:      proposal.ToOwnerID,
		ToOwnerClass:   proposal.ToOwnerClass,
		Category:       proposal.Category,
		Accepted:       decision.Allowed,
		ReasonCode:     decision.ReasonCode,
		Note:           proposal.Note,
		CreatedAt:      now,
	}

	if !decision.Allowed {
		if err := s.ledger.Append(ctx, dbTx, record); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("append denial record: %w", err))
		}
		if err := dbTx.Commit(ctx); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("commit denial: %w", err))
		}

		s.audit(ctx, asset, record)
		s.log.Info().
			Str("serial", serial).
			Str("category", string(proposal.Category)).
			Str("reason", decision.ReasonCode).
			Msg("transfer denied")

		return nil, apperror.TransferDenied(decision.ReasonCode)
	}

	if err := s.assetRepo.SetOwner(ctx, dbTx, asset.TokenID, proposal.ToOwnerID, proposal.ToOwnerClass); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("set owner: %w", err))
	}
	if err := s.ledger.Append(ctx, dbTx, record); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append transfer record: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	asset.CurrentOwnerID = proposal.ToOwnerID
	asset.CurrentOwnerClass = proposal.ToOwnerClass
	asset.UpdatedAt = now

	s.invalidate(ctx, serial)

	result := &ports.TransferResult{Record: record, Asset: asset}

	// Post-commit: external confirmation is advisory. A failure here is
	// surfaced on the result, never rolled back and never retried in-core.
	if s.oracle != nil {
		confirmationID, err := s.oracle.Confirm(ctx, ports.OperationDescriptor{
			Operation:    "TRANSFER",
			AssetID:      asset.TokenID,
			SerialNumber: asset.SerialNumber,
			RecordID:     &record.ID,
			ToOwnerID:    &proposal.ToOwnerID,
			Timestamp:    now.Unix(),
		})
		if err != nil {
			result.ChainError = err.Error()
			s.log.Warn().Err(err).Str("serial", serial).Msg("chain confirmation failed after local commit")
		} else {
			result.ChainConfirmationID = confirmationID
		}
	}

	s.audit(ctx, asset, record)
	s.log.Info().
		Str("serial", serial).
		Str("record_id", record.ID.String()).
		Str("category", string(proposal.Category)).
		Str("to_owner", proposal.ToOwnerID.String()).
		Msg("transfer accepted")

	return result, nil
}

// readCounts reads the accepted-record counts the evaluator needs, all
// under the caller's transaction so the decision sees a consistent snapshot.
func (s *TransferServiceImpl) readCounts(ctx context.Context, dbTx pgx.Tx, assetID uuid.UUID) (domain.QuotaCounts, error) {
	var counts domain.QuotaCounts
	var err error

	counts.ManufacturerToDistributor, err = s.ledger.CountByCategory(ctx, dbTx, assetID, domain.CategoryManufacturerToDistributor)
	if err != nil {
		return counts, apperror.InternalError(fmt.Errorf("count manufacturer transfers: %w", err))
	}
	counts.DistributorToDistributor, err = s.ledger.CountByCategory(ctx, dbTx, assetID, domain.CategoryDistributorToDistributor)
	if err != nil {
		return counts, apperror.InternalError(fmt.Errorf("count distributor transfers: %w", err))
	}
	counts.TotalExcludingPlant, err = s.ledger.CountAcceptedExcludingPlant(ctx, dbTx, assetID)
	if err != nil {
		return counts, apperror.InternalError(fmt.Errorf("count total transfers: %w", err))
	}
	return counts, nil
}

func (s *TransferServiceImpl) invalidate(ctx context.Context, serial string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, serial); err != nil {
		s.log.Warn().Err(err).Str("serial", serial).Msg("failed to invalidate asset cache")
	}
}

func (s *TransferServiceImpl) audit(ctx context.Context, asset *domain.Asset, record *domain.TransferRecord) {
	if s.auditSvc == nil {
		return
	}
	details, _ := json.Marshal(map[string]interface{}{
		"category":    string(record.Category),
		"accepted":    record.Accepted,
		"reason_code": record.ReasonCode,
		"from_owner":  record.FromOwnerID.String(),
		"to_owner":    record.ToOwnerID.String(),
	})
	s.auditSvc.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		Action:       domain.AuditActionTransfer,
		ResourceType: "asset",
		ResourceID:   asset.SerialNumber,
		Details:      string(details),
		CreatedAt:    time.Now().UTC(),
	})
}

// validateProposal rejects malformed intents before any persistence access.
// No ledger entry is written for these.
func validateProposal(serial string, p domain.TransferProposal) error {
	if serial == "" {
		return apperror.Validation("serial number is required")
	}
	if !domain.ValidTransferCategory(string(p.Category)) {
		return apperror.Validation(fmt.Sprintf("invalid transfer category: %s", p.Category))
	}
	if !domain.ValidOwnerClass(string(p.ToOwnerClass)) {
		return apperror.Validation(fmt.Sprintf("invalid target owner class: %s", p.ToOwnerClass))
	}
	if p.FromOwnerID == uuid.Nil || p.ToOwnerID == uuid.Nil {
		return apperror.Validation("from and to owner IDs are required")
	}

	// Category must be consistent with the declared target class.
	switch p.Category {
	case domain.CategoryManufacturerToDistributor, domain.CategoryDistributorToDistributor:
		if p.ToOwnerClass != domain.OwnerClassDistributor {
			return apperror.Validation("target of a distributor transfer must be a distributor")
		}
	case domain.CategoryToPlant:
		if p.ToOwnerClass != domain.OwnerClassPlant {
			return apperror.Validation("target of a plant transfer must be a plant")
		}
	}
	return nil
}
