package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSafeID(t *testing.T) {
	assert.True(t, safeStringRe.MatchString("VLV-2024-0001"))
	assert.True(t, safeStringRe.MatchString("serial_1.2"))
	assert.False(t, safeStringRe.MatchString("has space"))
	assert.False(t, safeStringRe.MatchString("<script>"))
	assert.False(t, safeStringRe.MatchString(""))
}

func TestSanitizeStruct(t *testing.T) {
	req := TokenizeRequest{SerialNumber: "  VLV-1<b>  "}
	SanitizeStruct(&req)
	assert.Equal(t, "VLV-1&lt;b&gt;", req.SerialNumber)
}

func TestSanitizeStruct_NonPointer(t *testing.T) {
	// Passing a value is a no-op, not a panic.
	req := LoginRequest{Username: "  user  "}
	SanitizeStruct(req)
	assert.Equal(t, "  user  ", req.Username)
}
