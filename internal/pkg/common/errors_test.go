package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorWithErr(t *testing.T) {
	cause := errors.New("boom")
	err := ErrSessionNotFound.WithErr(cause)

	assert.Equal(t, ErrCodeSessionNotFound, err.Code)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, ErrSessionNotFound.Err)
}

func TestCustomErrorResponse(t *testing.T) {
	err := ErrInvalidRequest.WithErr(errors.New("missing field"))

	assert.Equal(t, ErrorResponse{Code: ErrCodeInvalidRequest, Message: "invalid request"}, err.Response(false))
	assert.Equal(t, "missing field", err.Response(true).Details)
	assert.Empty(t, ErrInvalidRequest.Response(true).Details)
}

func TestErrFetchFailedWraps(t *testing.T) {
	err := fmt.Errorf("%w: catalog returned status %d", ErrFetchFailed, 502)
	assert.ErrorIs(t, err, ErrFetchFailed)
}
