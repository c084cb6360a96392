package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"valvetrace/config"
	"valvetrace/internal/core/ports"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Oracle implements ports.ConfirmationOracle against an external HTTP
// attestation endpoint. Callers invoke Confirm only after local commit;
// an error from here never affects registry or ledger state.
type Oracle struct {
	url        string
	secretKey  string
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewOracle creates a confirmation oracle client.
func NewOracle(cfg config.OracleConfig, sigSvc ports.SignatureService, httpClient HTTPClient, log zerolog.Logger) *Oracle {
	return &Oracle{
		url:        cfg.URL,
		secretKey:  cfg.SecretKey,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		log:        log,
	}
}

// confirmRequest is the JSON body sent to the oracle endpoint.
type confirmRequest struct {
	Operation ports.OperationDescriptor `json:"operation"`
	Signature string                    `json:"signature"`
}

// confirmResponse is the oracle's attestation reply.
type confirmResponse struct {
	ConfirmationID string `json:"confirmation_id"`
	Status         string `json:"status"`
}

// Confirm submits a signed operation descriptor and returns the oracle's
// confirmation ID. A single attempt: the caller decides whether a failed
// confirmation is surfaced or retried later.
func (o *Oracle) Confirm(ctx context.Context, op ports.OperationDescriptor) (string, error) {
	opBytes, err := json.Marshal(op)
	if err != nil {
		return "", fmt.Errorf("oracle: marshal operation: %w", err)
	}

	body := confirmRequest{
		Operation: op,
		Signature: o.sigSvc.Sign(o.secretKey, string(opBytes)),
	}
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("oracle: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.url+"/confirmations", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("oracle: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("oracle: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("oracle: unexpected status %d", resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("oracle: read response: %w", err)
	}

	var confirmed confirmResponse
	if err := json.Unmarshal(respBytes, &confirmed); err != nil {
		return "", fmt.Errorf("oracle: decode response: %w", err)
	}
	if confirmed.ConfirmationID == "" {
		return "", fmt.Errorf("oracle: empty confirmation id")
	}

	o.log.Debug().
		Str("operation", op.Operation).
		Str("serial", op.SerialNumber).
		Str("confirmation_id", confirmed.ConfirmationID).
		Msg("oracle confirmation received")

	return confirmed.ConfirmationID, nil
}
