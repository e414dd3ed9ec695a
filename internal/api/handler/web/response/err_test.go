package response

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrConstructors(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name       string
		err        *Err
		wantStatus int
		wantCause  bool
	}{
		{"bad request", ErrBadRequest(cause), http.StatusBadRequest, true},
		{"unauthorized", ErrUnauthorized(cause), http.StatusUnauthorized, true},
		{"not found", ErrNotFound("rrpp", "id", 7), http.StatusNotFound, false},
		{"bad gateway", ErrBadGateway(cause), http.StatusBadGateway, true},
		{"internal", ErrInternalServerError(cause), http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatusCode)
			assert.Equal(t, tt.wantCause, errors.Is(tt.err, cause))
			assert.NotEmpty(t, tt.err.Message)
		})
	}

	assert.Equal(t, "rrpp with id 7 not found", ErrNotFound("rrpp", "id", 7).Error())
	assert.Equal(t, "boom", ErrBadRequest(cause).Message)
}
