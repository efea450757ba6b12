package models

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return RespondWithError(c, err)
	})

	resp, terr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, terr)
	defer func() { _ = resp.Body.Close() }()

	body, terr := io.ReadAll(resp.Body)
	require.NoError(t, terr)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(body, &parsed))
	return resp.StatusCode, parsed
}

func TestRespondWithError_FieldKeyedBody(t *testing.T) {
	status, body := respond(t, NewNotFoundError("noprofile", "There is no profile for this user"))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, map[string]any{"noprofile": "There is no profile for this user"}, body)

	status, body = respond(t, NewConflictError("alreadyliked", "User already liked this post"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, map[string]any{"alreadyliked": "User already liked this post"}, body)

	status, body = respond(t, NewOwnershipError())
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, map[string]any{"notauthorized": "User not authorized"}, body)
}

func TestRespondWithError_CodedBody(t *testing.T) {
	status, body := respond(t, NewValidationError("Invalid request body"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid request body", body["error"])
	assert.Equal(t, "VALIDATION_ERROR", body["code"])

	status, body = respond(t, NewUnauthorizedError("Authorization required"))
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", body["code"])
}

func TestRespondWithError_InternalError(t *testing.T) {
	cause := errors.New("connection refused")
	status, body := respond(t, NewInternalError(cause))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body["error"])
	assert.Equal(t, "connection refused", body["details"])
}

func TestRespondWithError_PlainError(t *testing.T) {
	status, body := respond(t, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "boom", body["error"])
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := NewInternalError(cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "dial tcp: timeout")
}
