package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-repair-pos/internal/apperr"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Validation", apperr.Validation("missing field"), 400},
		{"InsufficientStock", apperr.InsufficientStock("not enough"), 400},
		{"NotFound", apperr.NotFound("gone"), 404},
		{"Conflict", apperr.Conflict("duplicate"), 409},
		{"Internal", apperr.Internal(errors.New("db down")), 500},
		{"Unclassified", errors.New("anything"), 500},
		{"Wrapped", fmt.Errorf("checkout: %w", apperr.NotFound("gone")), 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperr.StatusCode(tt.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "duplicate phone", apperr.PublicMessage(apperr.Conflict("duplicate phone")))

	// Internal details never leak to the caller
	assert.Equal(t, "Internal server error", apperr.PublicMessage(apperr.Internal(errors.New("pq: connection refused"))))
	assert.Equal(t, "Internal server error", apperr.PublicMessage(errors.New("raw failure")))
}

func TestIsKind(t *testing.T) {
	err := apperr.InsufficientStock("short by 3")
	assert.True(t, apperr.IsKind(err, apperr.KindInsufficientStock))
	assert.False(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.False(t, apperr.IsKind(errors.New("plain"), apperr.KindInternal))
}
