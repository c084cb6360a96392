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
	"github.com/rs/zerolog"
)

const assetCacheTTL = 30 * time.Second

// RegistryServiceImpl implements ports.RegistryService: tokenization and
// read access to assets and their ledger history.
type RegistryServiceImpl struct {
	assetRepo ports.AssetRepository
	ledger    ports.TransferLedger
	oracle    ports.ConfirmationOracle // nil = no external confirmation
	cache     ports.AssetCache         // nil = caching disabled
	auditSvc  ports.AuditService       // nil = audit sink disabled
	log       zerolog.Logger
}

// NewRegistryService creates a new RegistryServiceImpl.
func NewRegistryService(
	assetRepo ports.AssetRepository,
	ledger ports.TransferLedger,
	oracle ports.ConfirmationOracle,
	cache ports.AssetCache,
	auditSvc ports.AuditService,
	log zerolog.Logger,
) *RegistryServiceImpl {
	return &RegistryServiceImpl{
		assetRepo: assetRepo,
		ledger:    ledger,
		oracle:    oracle,
		cache:     cache,
		auditSvc:  auditSvc,
		log:       log,
	}
}

// Tokenize mints a new asset for a serial number. Serial-number reuse is
// rejected at the boundary with DUPLICATE_ASSET; the first asset is left
// untouched. New assets always start manufacturer-owned.
func (s *RegistryServiceImpl) Tokenize(ctx context.Context, req ports.TokenizeRequest) (*domain.Asset, error) {
	if req.SerialNumber == "" {
		return nil, apperror.Validation("serial number is required")
	}
	if req.ManufacturerID == uuid.Nil {
		return nil, apperror.Validation("manufacturer ID is required")
	}

	existing, err := s.assetRepo.GetBySerial(ctx, req.SerialNumber)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check serial: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateAsset(req.SerialNumber)
	}

	now := time.Now().UTC()
	asset := &domain.Asset{
		TokenID:           uuid.New(),
		SerialNumber:      req.SerialNumber,
		CurrentOwnerID:    req.ManufacturerID,
		CurrentOwnerClass: domain.OwnerClassManufacturer,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	// A unique index on serial_number backs up the pre-check under
	// concurrent tokenization of the same serial.
	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create asset: %w", err))
	}

	if s.oracle != nil {
		if _, err := s.oracle.Confirm(ctx, ports.OperationDescriptor{
			Operation:    "TOKENIZE",
			AssetID:      asset.TokenID,
			SerialNumber: asset.SerialNumber,
			Timestamp:    now.Unix(),
		}); err != nil {
			s.log.Warn().Err(err).Str("serial", asset.SerialNumber).Msg("chain confirmation failed for tokenization")
		}
	}

	if s.auditSvc != nil {
		details, _ := json.Marshal(map[string]interface{}{
			"token_id":     asset.TokenID.String(),
			"manufacturer": req.ManufacturerID.String(),
		})
		s.auditSvc.Log(ctx, &domain.AuditLog{
			ID:           uuid.New(),
			ActorID:      &req.ManufacturerID,
			Action:       domain.AuditActionTokenize,
			ResourceType: "asset",
			ResourceID:   asset.SerialNumber,
			Details:      string(details),
			CreatedAt:    now,
		})
	}

	s.log.Info().
		Str("serial", asset.SerialNumber).
		Str("token_id", asset.TokenID.String()).
		Msg("asset tokenized")

	return asset, nil
}

// GetAsset returns the current asset snapshot, read through the cache.
func (s *RegistryServiceImpl) GetAsset(ctx context.Context, serial string) (*domain.Asset, error) {
	if serial == "" {
		return nil, apperror.Validation("serial number is required")
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, serial)
		if err != nil {
			s.log.Warn().Err(err).Str("serial", serial).Msg("asset cache read failed, falling through")
		}
		if cached != nil {
			asset := &domain.Asset{}
			if err := json.Unmarshal(cached, asset); err == nil {
				return asset, nil
			}
		}
	}

	asset, err := s.assetRepo.GetBySerial(ctx, serial)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get asset: %w", err))
	}
	if asset == nil {
		return nil, apperror.ErrNotFound("asset")
	}

	if s.cache != nil {
		if data, err := json.Marshal(asset); err == nil {
			if err := s.cache.Set(ctx, serial, data, assetCacheTTL); err != nil {
				s.log.Warn().Err(err).Str("serial", serial).Msg("asset cache write failed")
			}
		}
	}

	return asset, nil
}

// History returns the full ledger for an asset, accepted and rejected
// records, ordered by timestamp ascending.
func (s *RegistryServiceImpl) History(ctx context.Context, serial string) ([]domain.TransferRecord, error) {
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

	records, err := s.ledger.History(ctx, asset.TokenID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("ledger history: %w", err))
	}
	return records, nil
}
