package services

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		kind   ErrorKind
		status int
	}{
		{Validation("bad input"), KindValidation, http.StatusBadRequest},
		{NotFound("missing"), KindNotFound, http.StatusNotFound},
		{Conflict("already there"), KindConflict, http.StatusConflict},
		{Unauthorized("who are you"), KindUnauthorized, http.StatusUnauthorized},
		{Forbidden("not yours"), KindForbidden, http.StatusForbidden},
		{Internal("boom", fmt.Errorf("db down")), KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.kind, KindOf(tc.err))
		assert.Equal(t, tc.status, HTTPStatus(KindOf(tc.err)))
	}
}

func TestKindOfWrappedAndForeignErrors(t *testing.T) {
	wrapped := fmt.Errorf("while saving: %w", Conflict("duplicate"))
	assert.Equal(t, KindConflict, KindOf(wrapped))

	// Anything outside the taxonomy counts as internal
	assert.Equal(t, KindInternal, KindOf(fmt.Errorf("plain error")))
}

func TestInternalKeepsCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Internal("Failed to save order", cause)

	assert.Equal(t, "Failed to save order", err.Error())
	assert.Equal(t, cause, err.Unwrap())
}
