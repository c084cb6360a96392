package chain

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"valvetrace/config"
	"valvetrace/internal/core/ports"
	"valvetrace/internal/service"
	"valvetrace/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDescriptor() ports.OperationDescriptor {
	recordID := uuid.New()
	return ports.OperationDescriptor{
		Operation:    "TRANSFER",
		AssetID:      uuid.New(),
		SerialNumber: "VLV-2024-0001",
		RecordID:     &recordID,
		Timestamp:    time.Now().Unix(),
	}
}

func newTestOracle(url string) *Oracle {
	cfg := config.OracleConfig{URL: url, SecretKey: "oracle-secret", Timeout: 5 * time.Second}
	log := logger.New("error", false)
	return NewOracle(cfg, service.NewHMACSignatureService(), &http.Client{}, log)
}

func TestOracle_Confirm(t *testing.T) {
	sigSvc := service.NewHMACSignatureService()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/confirmations", r.URL.Path)

		var body confirmRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		// Oracle-side signature verification over the operation payload
		opBytes, err := json.Marshal(body.Operation)
		require.NoError(t, err)
		assert.True(t, sigSvc.Verify("oracle-secret", string(opBytes), body.Signature))

		json.NewEncoder(w).Encode(confirmResponse{ConfirmationID: "chain-abc-123", Status: "CONFIRMED"})
	}))
	defer srv.Close()

	oracle := newTestOracle(srv.URL)

	id, err := oracle.Confirm(context.Background(), testDescriptor())
	require.NoError(t, err)
	assert.Equal(t, "chain-abc-123", id)
}

func TestOracle_Confirm_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	oracle := newTestOracle(srv.URL)

	_, err := oracle.Confirm(context.Background(), testDescriptor())
	assert.Error(t, err)
}

func TestOracle_Confirm_EmptyConfirmationID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(confirmResponse{Status: "CONFIRMED"})
	}))
	defer srv.Close()

	oracle := newTestOracle(srv.URL)

	_, err := oracle.Confirm(context.Background(), testDescriptor())
	assert.Error(t, err)
}

type failingClient struct{}

func (failingClient) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestOracle_Confirm_Unreachable(t *testing.T) {
	cfg := config.OracleConfig{URL: "http://oracle.invalid", SecretKey: "k"}
	oracle := NewOracle(cfg, service.NewHMACSignatureService(), failingClient{}, logger.New("error", false))

	_, err := oracle.Confirm(context.Background(), testDescriptor())
	assert.Error(t, err)
}
