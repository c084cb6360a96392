package handler

import (
	"valvetrace/internal/adapter/http/dto"
	"valvetrace/internal/core/domain"
	"valvetrace/internal/core/ports"
	"valvetrace/pkg/apperror"
	"valvetrace/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransferHandler handles the transfer attempt endpoint.
type TransferHandler struct {
	transferSvc ports.TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferSvc ports.TransferService) *TransferHandler {
	return &TransferHandler{transferSvc: transferSvc}
}

// AttemptTransfer handles POST /api/v1/assets/:serial/transfers.
// Denials come back as 409 with the ledger reason code; the rejected
// attempt is already committed to the ledger by the time the response
// is written.
func (h *TransferHandler) AttemptTransfer(c *gin.Context) {
	serial := c.Param("serial")

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	fromOwnerID, err := uuid.Parse(req.FromOwnerID)
	if err != nil {
		response.Error(c, apperror.Validation("from_owner_id must be a UUID"))
		return
	}
	toOwnerID, err := uuid.Parse(req.ToOwnerID)
	if err != nil {
		response.Error(c, apperror.Validation("to_owner_id must be a UUID"))
		return
	}

	result, err := h.transferSvc.AttemptTransfer(c.Request.Context(), serial, domain.TransferProposal{
		FromOwnerID:  fromOwnerID,
		ToOwnerID:    toOwnerID,
		ToOwnerClass: domain.OwnerClass(req.ToOwnerClass),
		Category:     domain.TransferCategory(req.Category),
		Note:         req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.TransferResponse{
		Record:              toTransferRecordResponse(result.Record),
		Asset:               toAssetResponse(result.Asset),
		ChainConfirmationID: result.ChainConfirmationID,
		ChainError:          result.ChainError,
	})
}
