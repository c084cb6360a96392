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

// ReturnHandler handles the return workflow and the administrative
// burn / restore overrides.
type ReturnHandler struct {
	returnSvc ports.ReturnService
}

// NewReturnHandler creates a new ReturnHandler.
func NewReturnHandler(returnSvc ports.ReturnService) *ReturnHandler {
	return &ReturnHandler{returnSvc: returnSvc}
}

// CreateReturn handles POST /api/v1/returns.
func (h *ReturnHandler) CreateReturn(c *gin.Context) {
	actorID, class, ok := callerIdentity(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.returnSvc.CreateReturnRequest(c.Request.Context(), ports.CreateReturnRequest{
		Serial:           req.SerialNumber,
		RequestedBy:      actorID,
		RequestedByClass: class,
		ReturnType:       domain.ReturnType(req.ReturnType),
		Reason:           req.Reason,
		Fee:              req.Fee,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toReturnResponse(result))
}

// ListReturns handles GET /api/v1/assets/:serial/returns.
func (h *ReturnHandler) ListReturns(c *gin.Context) {
	requests, err := h.returnSvc.ListReturns(c.Request.Context(), c.Param("serial"))
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.ReturnResponse, 0, len(requests))
	for i := range requests {
		out = append(out, toReturnResponse(&requests[i]))
	}
	response.OK(c, dto.ReturnListResponse{
		SerialNumber: c.Param("serial"),
		Requests:     out,
	})
}

// ApproveReturn handles POST /api/v1/returns/:id/approve. Admin only.
func (h *ReturnHandler) ApproveReturn(c *gin.Context) {
	adminID, _, ok := callerIdentity(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("return request id must be a UUID"))
		return
	}

	var req dto.ReturnDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.returnSvc.ApproveReturn(c.Request.Context(), requestID, adminID, domain.ReturnStatus(req.Decision))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toReturnResponse(result))
}

// Burn handles POST /api/v1/assets/:serial/burn. Admin only.
func (h *ReturnHandler) Burn(c *gin.Context) {
	adminID, _, ok := callerIdentity(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.BurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	asset, err := h.returnSvc.Burn(c.Request.Context(), c.Param("serial"), adminID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toAssetResponse(asset))
}

// Restore handles POST /api/v1/assets/:serial/restore. Admin only.
func (h *ReturnHandler) Restore(c *gin.Context) {
	adminID, _, ok := callerIdentity(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.RestoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	newOwnerID, err := uuid.Parse(req.NewOwnerID)
	if err != nil {
		response.Error(c, apperror.Validation("new_owner_id must be a UUID"))
		return
	}

	asset, err := h.returnSvc.Restore(
		c.Request.Context(),
		c.Param("serial"),
		adminID,
		newOwnerID,
		domain.OwnerClass(req.NewOwnerClass),
		req.Reason,
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toAssetResponse(asset))
}

// callerIdentity extracts the authenticated actor ID and class set by JWTAuth.
func callerIdentity(c *gin.Context) (uuid.UUID, domain.ActorClass, bool) {
	idVal, ok := c.Get(middleware.CtxActorID)
	if !ok {
		return uuid.Nil, "", false
	}
	id, ok := idVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, "", false
	}
	classVal, ok := c.Get(middleware.CtxActorClass)
	if !ok {
		return uuid.Nil, "", false
	}
	class, ok := classVal.(domain.ActorClass)
	if !ok {
		return uuid.Nil, "", false
	}
	return id, class, true
}

func toReturnResponse(r *domain.ReturnRequest) dto.ReturnResponse {
	resp := dto.ReturnResponse{
		ID:               r.ID.String(),
		AssetID:          r.AssetID.String(),
		RequestedBy:      r.RequestedBy.String(),
		RequestedByClass: string(r.RequestedByClass),
		ReturnType:       string(r.ReturnType),
		Reason:           r.Reason,
		Fee:              r.Fee,
		Status:           string(r.Status),
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
	}
	if r.ResolvedBy != nil {
		resp.ResolvedBy = r.ResolvedBy.String()
	}
	if r.ResolvedAt != nil {
		resp.ResolvedAt = r.ResolvedAt.Format(time.RFC3339)
	}
	return resp
}
