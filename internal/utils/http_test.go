package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessMergesExtraFields(t *testing.T) {
	rr := httptest.NewRecorder()
	Success(rr, http.StatusCreated, "created", map[string]interface{}{"id": 7})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "created", body["message"])
	assert.Equal(t, float64(7), body["id"])
}

func TestFailure(t *testing.T) {
	rr := httptest.NewRecorder()
	Failure(rr, http.StatusBadRequest, "id is required")

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "id is required", body["message"])
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var dst struct {
		Email string `json:"email"`
	}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a@x.com","bogus":1}`))
	rr := httptest.NewRecorder()

	err := DecodeJSON(rr, req, &dst)
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDecodeJSON_Valid(t *testing.T) {
	var dst struct {
		Email string `json:"email"`
	}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a@x.com"}`))
	rr := httptest.NewRecorder()

	require.NoError(t, DecodeJSON(rr, req, &dst))
	assert.Equal(t, "a@x.com", dst.Email)
}
