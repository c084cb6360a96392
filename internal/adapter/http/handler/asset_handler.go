package handler

import (
	"time"

	"valvetrace/internal/adapter/http/dto"
	"valvetrace/internal/adapter/http/middleware"
	"valvetrace/internal/core/domain"
	"valvetrace/internal/core/ports"
	"valvetrace/pkg/apperror"
	"valvetrace/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssetHandler handles registry endpoints: tokenization and reads.
type AssetHandler struct {
	registrySvc ports.RegistryService
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(registrySvc ports.RegistryService) *AssetHandler {
	return &AssetHandler{registrySvc: registrySvc}
}

// Tokenize handles POST /api/v1/assets. The caller (a manufacturer) becomes
// the initial owner.
func (h *AssetHandler) Tokenize(c *gin.Context) {
	actorID, ok := c.Get(middleware.CtxActorID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.TokenizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	asset, err := h.registrySvc.Tokenize(c.Request.Context(), ports.TokenizeRequest{
		SerialNumber:   req.SerialNumber,
		ManufacturerID: actorID.(uuid.UUID),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toAssetResponse(asset))
}

// GetAsset handles GET /api/v1/assets/:serial.
func (h *AssetHandler) GetAsset(c *gin.Context) {
	serial := c.Param("serial")

	asset, err := h.registrySvc.GetAsset(c.Request.Context(), serial)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toAssetResponse(asset))
}

// History handles GET /api/v1/assets/:serial/history. Returns every ledger
// record, accepted and rejected, in creation order.
func (h *AssetHandler) History(c *gin.Context) {
	serial := c.Param("serial")

	records, err := h.registrySvc.History(c.Request.Context(), serial)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.HistoryResponse{
		SerialNumber: serial,
		Records:      make([]dto.TransferRecordResponse, 0, len(records)),
	}
	for i := range records {
		resp.Records = append(resp.Records, toTransferRecordResponse(&records[i]))
	}

	response.OK(c, resp)
}

func toAssetResponse(a *domain.Asset) dto.AssetResponse {
	return dto.AssetResponse{
		TokenID:           a.TokenID.String(),
		SerialNumber:      a.SerialNumber,
		CurrentOwnerID:    a.CurrentOwnerID.String(),
		CurrentOwnerClass: string(a.CurrentOwnerClass),
		Burned:            a.Burned,
		CreatedAt:         a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         a.UpdatedAt.Format(time.RFC3339),
	}
}

func toTransferRecordResponse(r *domain.TransferRecord) dto.TransferRecordResponse {
	return dto.TransferRecordResponse{
		ID:             r.ID.String(),
		AssetID:        r.AssetID.String(),
		FromOwnerID:    r.FromOwnerID.String(),
		FromOwnerClass: string(r.FromOwnerClass),
		ToOwnerID:      r.ToOwnerID.String(),
		ToOwnerClass:   string(r.ToOwnerClass),
		Category:       string(r.Category),
		Accepted:       r.Accepted,
		ReasonCode:     r.ReasonCode,
		Note:           r.Note,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}
