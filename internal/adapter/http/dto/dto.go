package dto

// RegisterRequest is the request body for actor registration.
type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password    string `json:"password" binding:"required,min=8,max=128"`
	DisplayName string `json:"display_name" binding:"required,min=1,max=100"`
	Class       string `json:"class" binding:"required"`
}

// LoginRequest is the request body for actor login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	ActorID  string `json:"actor_id"`
	Username string `json:"username"`
	Class    string `json:"class"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// TokenizeRequest is the request body for asset tokenization.
type TokenizeRequest struct {
	SerialNumber string `json:"serial_number" binding:"required,min=1,max=100,safe_id"`
}

// AssetResponse is the registry snapshot of one asset.
type AssetResponse struct {
	TokenID           string `json:"token_id"`
	SerialNumber      string `json:"serial_number"`
	CurrentOwnerID    string `json:"current_owner_id"`
	CurrentOwnerClass string `json:"current_owner_class"`
	Burned            bool   `json:"burned"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

// TransferRequest is the request body for a transfer attempt.
type TransferRequest struct {
	FromOwnerID  string `json:"from_owner_id" binding:"required,uuid"`
	ToOwnerID    string `json:"to_owner_id" binding:"required,uuid"`
	ToOwnerClass string `json:"to_owner_class" binding:"required"`
	Category     string `json:"category" binding:"required"`
	Note         string `json:"note" binding:"max=500"`
}

// TransferRecordResponse is one ledger entry.
type TransferRecordResponse struct {
	ID             string `json:"id"`
	AssetID        string `json:"asset_id"`
	FromOwnerID    string `json:"from_owner_id"`
	FromOwnerClass string `json:"from_owner_class"`
	ToOwnerID      string `json:"to_owner_id"`
	ToOwnerClass   string `json:"to_owner_class"`
	Category       string `json:"category"`
	Accepted       bool   `json:"accepted"`
	ReasonCode     string `json:"reason_code,omitempty"`
	Note           string `json:"note,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// TransferResponse is the response body for an accepted transfer. ChainError
// is set when local state committed but the oracle confirmation failed.
type TransferResponse struct {
	Record              TransferRecordResponse `json:"record"`
	Asset               AssetResponse          `json:"asset"`
	ChainConfirmationID string                 `json:"chain_confirmation_id,omitempty"`
	ChainError          string                 `json:"chain_error,omitempty"`
}

// HistoryResponse wraps an asset's full ledger history.
type HistoryResponse struct {
	SerialNumber string                   `json:"serial_number"`
	Records      []TransferRecordResponse `json:"records"`
}

// CreateReturnRequest is the request body for opening a return request.
type CreateReturnRequest struct {
	SerialNumber string `json:"serial_number" binding:"required,min=1,max=100,safe_id"`
	ReturnType   string `json:"return_type" binding:"required"`
	Reason       string `json:"reason" binding:"required,max=500"`
	Fee          int64  `json:"fee" binding:"gte=0"`
}

// ReturnDecisionRequest is the admin decision on a pending return request.
type ReturnDecisionRequest struct {
	Decision string `json:"decision" binding:"required"` // APPROVED_FOR_BURN, APPROVED_FOR_RESTORE, REJECTED
}

// ReturnResponse is the response body for a return request.
type ReturnResponse struct {
	ID               string `json:"id"`
	AssetID          string `json:"asset_id"`
	RequestedBy      string `json:"requested_by"`
	RequestedByClass string `json:"requested_by_class"`
	ReturnType       string `json:"return_type"`
	Reason           string `json:"reason"`
	Fee              int64  `json:"fee"`
	Status           string `json:"status"`
	ResolvedBy       string `json:"resolved_by,omitempty"`
	CreatedAt        string `json:"created_at"`
	ResolvedAt       string `json:"resolved_at,omitempty"`
}

// ReturnListResponse wraps all return requests opened for one asset.
type ReturnListResponse struct {
	SerialNumber string           `json:"serial_number"`
	Requests     []ReturnResponse `json:"requests"`
}

// BurnRequest is the request body for a direct administrative burn.
type BurnRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// RestoreRequest is the request body for an administrative restore.
type RestoreRequest struct {
	NewOwnerID    string `json:"new_owner_id" binding:"required,uuid"`
	NewOwnerClass string `json:"new_owner_class" binding:"required"`
	Reason        string `json:"reason" binding:"required,max=500"`
}
