package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"valvetrace/internal/adapter/http/dto"
	"valvetrace/internal/adapter/http/middleware"
	"valvetrace/internal/core/domain"
	"valvetrace/internal/core/ports"
	"valvetrace/internal/core/ports/mocks"
	"valvetrace/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testAsset(serial string, ownerID uuid.UUID) *domain.Asset {
	now := time.Now()
	return &domain.Asset{
		TokenID:           uuid.New(),
		SerialNumber:      serial,
		CurrentOwnerID:    ownerID,
		CurrentOwnerClass: domain.OwnerClassManufacturer,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// --- Auth Handler Tests ---

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	actorID := uuid.New()
	mockAuth.EXPECT().Register(gomock.Any(), ports.RegisterRequest{
		Username:    "acme-mfg",
		Password:    "password123",
		DisplayName: "Acme Valve Works",
		Class:       domain.ActorClassManufacturer,
	}).Return(&domain.Actor{
		ID:       actorID,
		Username: "acme-mfg",
		Class:    domain.ActorClassManufacturer,
	}, nil)

	body, _ := json.Marshal(dto.RegisterRequest{
		Username:    "acme-mfg",
		Password:    "password123",
		DisplayName: "Acme Valve Works",
		Class:       "MANUFACTURER",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, actorID.String(), data["actor_id"])
	assert.Equal(t, "MANUFACTURER", data["class"])
}

func TestRegister_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	// Empty body => binding error
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte("{}")))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	expiry := time.Now().Add(24 * time.Hour)
	mockAuth.EXPECT().Login(gomock.Any(), "acme-mfg", "password123").Return("jwt-token-123", expiry, nil)

	body, _ := json.Marshal(dto.LoginRequest{
		Username: "acme-mfg",
		Password: "password123",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "jwt-token-123", data["token"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Login(gomock.Any(), "bad", "badpassword").Return("", time.Time{}, apperror.ErrInvalidCredentials())

	body, _ := json.Marshal(dto.LoginRequest{
		Username: "bad",
		Password: "badpassword",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Asset Handler Tests ---

func TestTokenize_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistryService(ctrl)
	h := NewAssetHandler(mockRegistry)

	manufacturerID := uuid.New()
	asset := testAsset("VLV-2024-0001", manufacturerID)

	mockRegistry.EXPECT().Tokenize(gomock.Any(), ports.TokenizeRequest{
		SerialNumber:   "VLV-2024-0001",
		ManufacturerID: manufacturerID,
	}).Return(asset, nil)

	body, _ := json.Marshal(dto.TokenizeRequest{SerialNumber: "VLV-2024-0001"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxActorID, manufacturerID)

	h.Tokenize(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "VLV-2024-0001", data["serial_number"])
	assert.Equal(t, "MANUFACTURER", data["current_owner_class"])
}

func TestTokenize_DuplicateSerial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistryService(ctrl)
	h := NewAssetHandler(mockRegistry)

	mockRegistry.EXPECT().Tokenize(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrDuplicateAsset("VLV-2024-0001"))

	body, _ := json.Marshal(dto.TokenizeRequest{SerialNumber: "VLV-2024-0001"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxActorID, uuid.New())

	h.Tokenize(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTokenize_MissingIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistryService(ctrl)
	h := NewAssetHandler(mockRegistry)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	h.Tokenize(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetAsset_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistryService(ctrl)
	h := NewAssetHandler(mockRegistry)

	asset := testAsset("VLV-2024-0002", uuid.New())
	mockRegistry.EXPECT().GetAsset(gomock.Any(), "VLV-2024-0002").Return(asset, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "serial", Value: "VLV-2024-0002"}}

	h.GetAsset(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetAsset_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistryService(ctrl)
	h := NewAssetHandler(mockRegistry)

	mockRegistry.EXPECT().GetAsset(gomock.Any(), "MISSING").Return(nil, apperror.ErrNotFound("asset"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "serial", Value: "MISSING"}}

	h.GetAsset(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHistory_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistryService(ctrl)
	h := NewAssetHandler(mockRegistry)

	assetID := uuid.New()
	mockRegistry.EXPECT().History(gomock.Any(), "VLV-2024-0003").Return([]domain.TransferRecord{
		{
			ID:             uuid.New(),
			AssetID:        assetID,
			FromOwnerClass: domain.OwnerClassManufacturer,
			ToOwnerClass:   domain.OwnerClassDistributor,
			Category:       domain.CategoryManufacturerToDistributor,
			Accepted:       true,
			CreatedAt:      time.Now(),
		},
		{
			ID:             uuid.New(),
			AssetID:        assetID,
			FromOwnerClass: domain.OwnerClassDistributor,
			ToOwnerClass:   domain.OwnerClassDistributor,
			Category:       domain.CategoryDistributorToDistributor,
			Accepted:       false,
			ReasonCode:     domain.ReasonGlobalTransferLimitExceeded,
			CreatedAt:      time.Now(),
		},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "serial", Value: "VLV-2024-0003"}}

	h.History(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	records := data["records"].([]interface{})
	assert.Len(t, records, 2)
	rejected := records[1].(map[string]interface{})
	assert.Equal(t, false, rejected["accepted"])
	assert.Equal(t, "GLOBAL_TRANSFER_LIMIT_EXCEEDED", rejected["reason_code"])
}

// --- Transfer Handler Tests ---

func transferBody(from, to uuid.UUID, class, category string) []byte {
	body, _ := json.Marshal(dto.TransferRequest{
		FromOwnerID:  from.String(),
		ToOwnerID:    to.String(),
		ToOwnerClass: class,
		Category:     category,
	})
	return body
}

func TestAttemptTransfer_Accepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTransfer := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(mockTransfer)

	from := uuid.New()
	to := uuid.New()
	asset := testAsset("VLV-2024-0004", to)
	asset.CurrentOwnerClass = domain.OwnerClassDistributor

	mockTransfer.EXPECT().AttemptTransfer(gomock.Any(), "VLV-2024-0004", domain.TransferProposal{
		FromOwnerID:  from,
		ToOwnerID:    to,
		ToOwnerClass: domain.OwnerClassDistributor,
		Category:     domain.CategoryManufacturerToDistributor,
	}).Return(&ports.TransferResult{
		Record: &domain.TransferRecord{
			ID:             uuid.New(),
			AssetID:        asset.TokenID,
			FromOwnerID:    from,
			FromOwnerClass: domain.OwnerClassManufacturer,
			ToOwnerID:      to,
			ToOwnerClass:   domain.OwnerClassDistributor,
			Category:       domain.CategoryManufacturerToDistributor,
			Accepted:       true,
			CreatedAt:      time.Now(),
		},
		Asset:               asset,
		ChainConfirmationID: "chain-xyz",
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(
		transferBody(from, to, "DISTRIBUTOR", "MANUFACTURER_TO_DISTRIBUTOR")))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "serial", Value: "VLV-2024-0004"}}

	h.AttemptTransfer(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "chain-xyz", data["chain_confirmation_id"])
	record := data["record"].(map[string]interface{})
	assert.Equal(t, true, record["accepted"])
}

func TestAttemptTransfer_Denied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTransfer := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(mockTransfer)

	from := uuid.New()
	to := uuid.New()
	mockTransfer.EXPECT().AttemptTransfer(gomock.Any(), "VLV-2024-0005", gomock.Any()).
		Return(nil, apperror.TransferDenied(domain.ReasonManufacturerLimitExceeded))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(
		transferBody(from, to, "DISTRIBUTOR", "MANUFACTURER_TO_DISTRIBUTOR")))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "serial", Value: "VLV-2024-0005"}}

	h.AttemptTransfer(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "MANUFACTURER_TRANSFER_LIMIT_EXCEEDED", resp["error_code"])
}

func TestAttemptTransfer_InvalidUUID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTransfer := mocks.NewMockTransferService(ctrl)
	h := NewTransferHandler(mockTransfer)

	body, _ := json.Marshal(map[string]string{
		"from_owner_id":  "not-a-uuid",
		"to_owner_id":    uuid.New().String(),
		"to_owner_class": "DISTRIBUTOR",
		"category":       "MANUFACTURER_TO_DISTRIBUTOR",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "serial", Value: "VLV-2024-0006"}}

	h.AttemptTransfer(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Return Handler Tests ---

func withIdentity(c *gin.Context, id uuid.UUID, class domain.ActorClass) {
	c.Set(middleware.CtxActorID, id)
	c.Set(middleware.CtxActorClass, class)
}

func TestCreateReturn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReturn := mocks.NewMockReturnService(ctrl)
	h := NewReturnHandler(mockReturn)

	requesterID := uuid.New()
	reqID := uuid.New()

	mockReturn.EXPECT().CreateReturnRequest(gomock.Any(), ports.CreateReturnRequest{
		Serial:           "VLV-2024-0007",
		RequestedBy:      requesterID,
		RequestedByClass: domain.ActorClassDistributor,
		ReturnType:       domain.ReturnTypeDamaged,
		Reason:           "cracked housing",
		Fee:              2500,
	}).Return(&domain.ReturnRequest{
		ID:               reqID,
		AssetID:          uuid.New(),
		RequestedBy:      requesterID,
		RequestedByClass: domain.ActorClassDistributor,
		ReturnType:       domain.ReturnTypeDamaged,
		Reason:           "cracked housing",
		Fee:              2500,
		Status:           domain.ReturnStatusPending,
		CreatedAt:        time.Now(),
	}, nil)

	body, _ := json.Marshal(dto.CreateReturnRequest{
		SerialNumber: "VLV-2024-0007",
		ReturnType:   "damaged",
		Reason:       "cracked housing",
		Fee:          2500,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	withIdentity(c, requesterID, domain.ActorClassDistributor)

	h.CreateReturn(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "PENDING", data["status"])
}

func TestCreateReturn_ForbiddenClass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReturn := mocks.NewMockReturnService(ctrl)
	h := NewReturnHandler(mockReturn)

	mockReturn.EXPECT().CreateReturnRequest(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrForbidden())

	body, _ := json.Marshal(dto.CreateReturnRequest{
		SerialNumber: "VLV-2024-0008",
		ReturnType:   "damaged",
		Reason:       "broken",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	withIdentity(c, uuid.New(), domain.ActorClassPlant)

	h.CreateReturn(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestApproveReturn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReturn := mocks.NewMockReturnService(ctrl)
	h := NewReturnHandler(mockReturn)

	adminID := uuid.New()
	reqID := uuid.New()
	now := time.Now()

	mockReturn.EXPECT().ApproveReturn(gomock.Any(), reqID, adminID, domain.ReturnStatusApprovedForBurn).
		Return(&domain.ReturnRequest{
			ID:         reqID,
			AssetID:    uuid.New(),
			Status:     domain.ReturnStatusApprovedForBurn,
			ResolvedBy: &adminID,
			CreatedAt:  now,
			ResolvedAt: &now,
		}, nil)

	body, _ := json.Marshal(dto.ReturnDecisionRequest{Decision: "APPROVED_FOR_BURN"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: reqID.String()}}
	withIdentity(c, adminID, domain.ActorClassAdmin)

	h.ApproveReturn(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "APPROVED_FOR_BURN", data["status"])
}

func TestApproveReturn_AlreadyResolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReturn := mocks.NewMockReturnService(ctrl)
	h := NewReturnHandler(mockReturn)

	adminID := uuid.New()
	reqID := uuid.New()

	mockReturn.EXPECT().ApproveReturn(gomock.Any(), reqID, adminID, domain.ReturnStatusRejected).
		Return(nil, apperror.ErrReturnNotPending())

	body, _ := json.Marshal(dto.ReturnDecisionRequest{Decision: "REJECTED"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: reqID.String()}}
	withIdentity(c, adminID, domain.ActorClassAdmin)

	h.ApproveReturn(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBurn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReturn := mocks.NewMockReturnService(ctrl)
	h := NewReturnHandler(mockReturn)

	adminID := uuid.New()
	asset := testAsset("VLV-2024-0009", uuid.New())
	asset.Burned = true

	mockReturn.EXPECT().Burn(gomock.Any(), "VLV-2024-0009", adminID, "defective batch").Return(asset, nil)

	body, _ := json.Marshal(dto.BurnRequest{Reason: "defective batch"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "serial", Value: "VLV-2024-0009"}}
	withIdentity(c, adminID, domain.ActorClassAdmin)

	h.Burn(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["burned"])
}

func TestBurn_AlreadyBurned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReturn := mocks.NewMockReturnService(ctrl)
	h := NewReturnHandler(mockReturn)

	adminID := uuid.New()
	mockReturn.EXPECT().Burn(gomock.Any(), "VLV-2024-0010", adminID, "scrap").
		Return(nil, apperror.ErrAlreadyBurned())

	body, _ := json.Marshal(dto.BurnRequest{Reason: "scrap"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "serial", Value: "VLV-2024-0010"}}
	withIdentity(c, adminID, domain.ActorClassAdmin)

	h.Burn(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ALREADY_BURNED", resp["error_code"])
}

func TestRestore_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReturn := mocks.NewMockReturnService(ctrl)
	h := NewReturnHandler(mockReturn)

	adminID := uuid.New()
	newOwnerID := uuid.New()
	asset := testAsset("VLV-2024-0011", newOwnerID)

	mockReturn.EXPECT().Restore(gomock.Any(), "VLV-2024-0011", adminID, newOwnerID,
		domain.OwnerClassManufacturer, "refurbished").Return(asset, nil)

	body, _ := json.Marshal(dto.RestoreRequest{
		NewOwnerID:    newOwnerID.String(),
		NewOwnerClass: "MANUFACTURER",
		Reason:        "refurbished",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "serial", Value: "VLV-2024-0011"}}
	withIdentity(c, adminID, domain.ActorClassAdmin)

	h.Restore(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Health Check Test ---

func TestHealthCheck(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}
