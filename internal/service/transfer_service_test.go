package service

import (
	"context"
	"errors"
	"testing"

	"valvetrace/internal/core/domain"
	"valvetrace/internal/core/ports/mocks"
	"valvetrace/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type transferTestDeps struct {
	svc        *TransferServiceImpl
	assetRepo  *mocks.MockAssetRepository
	ledger     *mocks.MockTransferLedger
	transactor *mocks.MockDBTransactor
	oracle     *mocks.MockConfirmationOracle
	cache      *mocks.MockAssetCache
	auditSvc   *mocks.MockAuditService
	ctrl       *gomock.Controller
}

func setupTransferService(t *testing.T) *transferTestDeps {
	ctrl := gomock.NewController(t)
	d := &transferTestDeps{
		assetRepo:  mocks.NewMockAssetRepository(ctrl),
		ledger:     mocks.NewMockTransferLedger(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		oracle:     mocks.NewMockConfirmationOracle(ctrl),
		cache:      mocks.NewMockAssetCache(ctrl),
		auditSvc:   mocks.NewMockAuditService(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewTransferService(
		d.assetRepo, d.ledger, d.transactor, d.oracle,
		d.cache, d.auditSvc, zerolog.Nop(),
	)
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func manufacturerAsset(serial string) *domain.Asset {
	return &domain.Asset{
		TokenID:           uuid.New(),
		SerialNumber:      serial,
		CurrentOwnerID:    uuid.New(),
		CurrentOwnerClass: domain.OwnerClassManufacturer,
	}
}

func (d *transferTestDeps) expectCounts(ctx context.Context, tx pgx.Tx, assetID uuid.UUID, counts domain.QuotaCounts) {
	d.ledger.EXPECT().CountByCategory(ctx, tx, assetID, domain.CategoryManufacturerToDistributor).
		Return(counts.ManufacturerToDistributor, nil)
	d.ledger.EXPECT().CountByCategory(ctx, tx, assetID, domain.CategoryDistributorToDistributor).
		Return(counts.DistributorToDistributor, nil)
	d.ledger.EXPECT().CountAcceptedExcludingPlant(ctx, tx, assetID).
		Return(counts.TotalExcludingPlant, nil)
}

// ==================== AttemptTransfer Tests ====================

func TestTransferService_AttemptTransfer_Accepted(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	asset := manufacturerAsset("VLV-001")
	distributorID := uuid.New()

	proposal := domain.TransferProposal{
		FromOwnerID:  asset.CurrentOwnerID,
		ToOwnerID:    distributorID,
		ToOwnerClass: domain.OwnerClassDistributor,
		Category:     domain.CategoryManufacturerToDistributor,
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.assetRepo.EXPECT().GetBySerialForUpdate(ctx, tx, "VLV-001").Return(asset, nil)
	d.expectCounts(ctx, tx, asset.TokenID, domain.QuotaCounts{})
	d.assetRepo.EXPECT().SetOwner(ctx, tx, asset.TokenID, distributorID, domain.OwnerClassDistributor).Return(nil)
	d.ledger.EXPECT().Append(ctx, tx, gomock.Any()).Do(func(_ context.Context, _ pgx.Tx, rec *domain.TransferRecord) {
		assert.True(t, rec.Accepted)
		assert.Equal(t, asset.TokenID, rec.AssetID)
		assert.Equal(t, domain.CategoryManufacturerToDistributor, rec.Category)
	}).Return(nil)
	d.cache.EXPECT().Invalidate(ctx, "VLV-001").Return(nil)
	d.oracle.EXPECT().Confirm(ctx, gomock.Any()).Return("chain-001", nil)
	d.auditSvc.EXPECT().Log(ctx, gomock.Any())

	result, err := d.svc.AttemptTransfer(ctx, "VLV-001", proposal)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "chain-001", result.ChainConfirmationID)
	assert.Empty(t, result.ChainError)
	assert.Equal(t, distributorID, result.Asset.CurrentOwnerID)
	assert.Equal(t, domain.OwnerClassDistributor, result.Asset.CurrentOwnerClass)
	assert.True(t, result.Record.Accepted)
}

func TestTransferService_AttemptTransfer_ManufacturerLimitExceeded(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	asset := manufacturerAsset("VLV-002")

	proposal := domain.TransferProposal{
		FromOwnerID:  asset.CurrentOwnerID,
		ToOwnerID:    uuid.New(),
		ToOwnerClass: domain.OwnerClassDistributor,
		Category:     domain.CategoryManufacturerToDistributor,
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.assetRepo.EXPECT().GetBySerialForUpdate(ctx, tx, "VLV-002").Return(asset, nil)
	d.expectCounts(ctx, tx, asset.TokenID, domain.QuotaCounts{
		ManufacturerToDistributor: 1,
		TotalExcludingPlant:       1,
	})
	// The rejection itself is data: the denial record commits before the error.
	d.ledger.EXPECT().Append(ctx, tx, gomock.Any()).Do(func(_ context.Context, _ pgx.Tx, rec *domain.TransferRecord) {
		assert.False(t, rec.Accepted)
		assert.Equal(t, domain.ReasonManufacturerLimitExceeded, rec.ReasonCode)
	}).Return(nil)
	d.auditSvc.EXPECT().Log(ctx, gomock.Any())

	result, err := d.svc.AttemptTransfer(ctx, "VLV-002", proposal)
	assert.Nil(t, result)
	require.Error(t, err)
	assertAppError(t, err, domain.ReasonManufacturerLimitExceeded)
}

func TestTransferService_AttemptTransfer_PlantOwnershipFinal(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	asset := manufacturerAsset("VLV-003")
	asset.CurrentOwnerClass = domain.OwnerClassPlant

	proposal := domain.TransferProposal{
		FromOwnerID:  asset.CurrentOwnerID,
		ToOwnerID:    uuid.New(),
		ToOwnerClass: domain.OwnerClassDistributor,
		Category:     domain.CategoryDistributorToDistributor,
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.assetRepo.EXPECT().GetBySerialForUpdate(ctx, tx, "VLV-003").Return(asset, nil)
	d.expectCounts(ctx, tx, asset.TokenID, domain.QuotaCounts{})
	d.ledger.EXPECT().Append(ctx, tx, gomock.Any()).Do(func(_ context.Context, _ pgx.Tx, rec *domain.TransferRecord) {
		assert.False(t, rec.Accepted)
		assert.Equal(t, domain.ReasonPlantOwnershipFinal, rec.ReasonCode)
	}).Return(nil)
	d.auditSvc.EXPECT().Log(ctx, gomock.Any())

	result, err := d.svc.AttemptTransfer(ctx, "VLV-003", proposal)
	assert.Nil(t, result)
	assertAppError(t, err, domain.ReasonPlantOwnershipFinal)
}

func TestTransferService_AttemptTransfer_BurnedAsset(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	asset := manufacturerAsset("VLV-004")
	asset.Burned = true

	proposal := domain.TransferProposal{
		FromOwnerID:  asset.CurrentOwnerID,
		ToOwnerID:    uuid.New(),
		ToOwnerClass: domain.OwnerClassDistributor,
		Category:     domain.CategoryManufacturerToDistributor,
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.assetRepo.EXPECT().GetBySerialForUpdate(ctx, tx, "VLV-004").Return(asset, nil)
	d.expectCounts(ctx, tx, asset.TokenID, domain.QuotaCounts{})
	d.ledger.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil)
	d.auditSvc.EXPECT().Log(ctx, gomock.Any())

	result, err := d.svc.AttemptTransfer(ctx, "VLV-004", proposal)
	assert.Nil(t, result)
	assertAppError(t, err, domain.ReasonAssetBurned)
}

func TestTransferService_AttemptTransfer_GlobalLimitExceeded(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	asset := manufacturerAsset("VLV-005")
	asset.CurrentOwnerClass = domain.OwnerClassDistributor

	proposal := domain.TransferProposal{
		FromOwnerID:  asset.CurrentOwnerID,
		ToOwnerID:    uuid.New(),
		ToOwnerClass: domain.OwnerClassDistributor,
		Category:     domain.CategoryDistributorToDistributor,
	}

	// Category quota still has room (1 of 2); the global cap trips first.
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.assetRepo.EXPECT().GetBySerialForUpdate(ctx, tx, "VLV-005").Return(asset, nil)
	d.expectCounts(ctx, tx, asset.TokenID, domain.QuotaCounts{
		ManufacturerToDistributor: 1,
		DistributorToDistributor:  1,
		TotalExcludingPlant:       3,
	})
	d.ledger.EXPECT().Append(ctx, tx, gomock.Any()).Do(func(_ context.Context, _ pgx.Tx, rec *domain.TransferRecord) {
		assert.Equal(t, domain.ReasonGlobalTransferLimitExceeded, rec.ReasonCode)
	}).Return(nil)
	d.auditSvc.EXPECT().Log(ctx, gomock.Any())

	result, err := d.svc.AttemptTransfer(ctx, "VLV-005", proposal)
	assert.Nil(t, result)
	assertAppError(t, err, domain.ReasonGlobalTransferLimitExceeded)
}

func TestTransferService_AttemptTransfer_ToPlantExemptFromGlobalCap(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	asset := manufacturerAsset("VLV-006")
	asset.CurrentOwnerClass = domain.OwnerClassDistributor
	plantID := uuid.New()

	proposal := domain.TransferProposal{
		FromOwnerID:  asset.CurrentOwnerID,
		ToOwnerID:    plantID,
		ToOwnerClass: domain.OwnerClassPlant,
		Category:     domain.CategoryToPlant,
	}

	// Quota fully exhausted; installation must still be reachable.
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.assetRepo.EXPECT().GetBySerialForUpdate(ctx, tx, "VLV-006").Return(asset, nil)
	d.expectCounts(ctx, tx, asset.TokenID, domain.QuotaCounts{
		ManufacturerToDistributor: 1,
		DistributorToDistributor:  2,
		TotalExcludingPlant:       3,
	})
	d.assetRepo.EXPECT().SetOwner(ctx, tx, asset.TokenID, plantID, domain.OwnerClassPlant).Return(nil)
	d.ledger.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil)
	d.cache.EXPECT().Invalidate(ctx, "VLV-006").Return(nil)
	d.oracle.EXPECT().Confirm(ctx, gomock.Any()).Return("chain-006", nil)
	d.auditSvc.EXPECT().Log(ctx, gomock.Any())

	result, err := d.svc.AttemptTransfer(ctx, "VLV-006", proposal)
	require.NoError(t, err)
	assert.Equal(t, domain.OwnerClassPlant, result.Asset.CurrentOwnerClass)
}

func TestTransferService_AttemptTransfer_NotCurrentOwner(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	asset := manufacturerAsset("VLV-007")

	proposal := domain.TransferProposal{
		FromOwnerID:  uuid.New(), // not the registry's current owner
		ToOwnerID:    uuid.New(),
		ToOwnerClass: domain.OwnerClassDistributor,
		Category:     domain.CategoryManufacturerToDistributor,
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.assetRepo.EXPECT().GetBySerialForUpdate(ctx, tx, "VLV-007").Return(asset, nil)
	d.expectCounts(ctx, tx, asset.TokenID, domain.QuotaCounts{})
	d.ledger.EXPECT().Append(ctx, tx, gomock.Any()).Do(func(_ context.Context, _ pgx.Tx, rec *domain.TransferRecord) {
		assert.Equal(t, domain.ReasonNotCurrentOwner, rec.ReasonCode)
	}).Return(nil)
	d.auditSvc.EXPECT().Log(ctx, gomock.Any())

	result, err := d.svc.AttemptTransfer(ctx, "VLV-007", proposal)
	assert.Nil(t, result)
	assertAppError(t, err, domain.ReasonNotCurrentOwner)
}

func TestTransferService_AttemptTransfer_AssetNotFound(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	proposal := domain.TransferProposal{
		FromOwnerID:  uuid.New(),
		ToOwnerID:    uuid.New(),
		ToOwnerClass: domain.OwnerClassDistributor,
		Category:     domain.CategoryManufacturerToDistributor,
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.assetRepo.EXPECT().GetBySerialForUpdate(ctx, tx, "VLV-MISSING").Return(nil, nil)

	result, err := d.svc.AttemptTransfer(ctx, "VLV-MISSING", proposal)
	assert.Nil(t, result)
	assertAppError(t, err, "NOT_FOUND")
}

func TestTransferService_AttemptTransfer_InvalidCategory(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	// Override categories are reserved for the return workflow; no ledger
	// entry is written for malformed intents.
	proposal := domain.TransferProposal{
		FromOwnerID:  uuid.New(),
		ToOwnerID:    uuid.New(),
		ToOwnerClass: domain.OwnerClassDistributor,
		Category:     domain.CategoryBurnOverride,
	}

	result, err := d.svc.AttemptTransfer(context.Background(), "VLV-008", proposal)
	assert.Nil(t, result)
	assertAppError(t, err, "VALIDATION_ERROR")
}

func TestTransferService_AttemptTransfer_CategoryClassMismatch(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	proposal := domain.TransferProposal{
		FromOwnerID:  uuid.New(),
		ToOwnerID:    uuid.New(),
		ToOwnerClass: domain.OwnerClassPlant,
		Category:     domain.CategoryManufacturerToDistributor,
	}

	result, err := d.svc.AttemptTransfer(context.Background(), "VLV-009", proposal)
	assert.Nil(t, result)
	assertAppError(t, err, "VALIDATION_ERROR")
}

func TestTransferService_AttemptTransfer_ChainConfirmationFailure(t *testing.T) {
	d := setupTransferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	asset := manufacturerAsset("VLV-010")
	distributorID := uuid.New()

	proposal := domain.TransferProposal{
		FromOwnerID:  asset.CurrentOwnerID,
		ToOwnerID:    distributorID,
		ToOwnerClass: domain.OwnerClassDistributor,
		Category:     domain.CategoryManufacturerToDistributor,
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.assetRepo.EXPECT().GetBySerialForUpdate(ctx, tx, "VLV-010").Return(asset, nil)
	d.expectCounts(ctx, tx, asset.TokenID, domain.QuotaCounts{})
	d.assetRepo.EXPECT().SetOwner(ctx, tx, asset.TokenID, distributorID, domain.OwnerClassDistributor).Return(nil)
	d.ledger.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil)
	d.cache.EXPECT().Invalidate(ctx, "VLV-010").Return(nil)
	d.oracle.EXPECT().Confirm(ctx, gomock.Any()).Return("", errors.New("oracle unreachable"))
	d.auditSvc.EXPECT().Log(ctx, gomock.Any())

	// Local state is authoritative: the transfer succeeds and the failure
	// is surfaced on the result.
	result, err := d.svc.AttemptTransfer(ctx, "VLV-010", proposal)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.ChainConfirmationID)
	assert.Contains(t, result.ChainError, "oracle unreachable")
	assert.Equal(t, distributorID, result.Asset.CurrentOwnerID)
}

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected *apperror.AppError, got %T: %v", err, err)
	assert.Equal(t, expectedCode, appErr.Code)
}
