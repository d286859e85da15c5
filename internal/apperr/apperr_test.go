package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"swapnet-ops/internal/scenario"
	"swapnet-ops/internal/store"
)

func TestFromMapsDomainErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"invalid status", fmt.Errorf("%w: x", store.ErrInvalidStatus), CodeValidationError, http.StatusBadRequest},
		{"unknown kind", fmt.Errorf("%w: y", scenario.ErrUnknownKind), CodeValidationError, http.StatusBadRequest},
		{"passthrough", NotFound("station", "ST-9"), CodeNotFound, http.StatusNotFound},
		{"other", errors.New("disk on fire"), CodeInternalError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := From(tc.err)
			assert.Equal(t, tc.code, got.Code)
			assert.Equal(t, tc.status, got.HTTPStatus)
		})
	}
	assert.Nil(t, From(nil))
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Internal(cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")

	nf := NotFound("station", "ST-1")
	assert.Equal(t, "ST-1", nf.Details["id"])
	assert.Equal(t, "RESOURCE_NOT_FOUND: station not found", nf.Error())
}
