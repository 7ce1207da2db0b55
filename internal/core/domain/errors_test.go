package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrDuplicateDomain", ErrDuplicateDomain},
		{"ErrEmptyRegistry", ErrEmptyRegistry},
		{"ErrUnsupportedPlatform", ErrUnsupportedPlatform},
		{"ErrOpenerUnavailable", ErrOpenerUnavailable},
		{"ErrMissingJobTitle", ErrMissingJobTitle},
		{"ErrNoSiteSelected", ErrNoSiteSelected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	assert.Equal(t, "Please enter a job title", (&ValidationError{Kind: MissingJobTitle}).Message())
	assert.Equal(t, "Please select at least one site to search", (&ValidationError{Kind: NoSiteSelected}).Message())
	assert.Equal(t, "Invalid search", (&ValidationError{}).Message())
}

func TestValidationError_Is(t *testing.T) {
	err := fmt.Errorf("submit: %w", &ValidationError{Kind: NoSiteSelected})

	assert.True(t, errors.Is(err, ErrNoSiteSelected))
	assert.False(t, errors.Is(err, ErrMissingJobTitle))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestValidationKind_String(t *testing.T) {
	assert.Equal(t, "missing_job_title", MissingJobTitle.String())
	assert.Equal(t, "no_site_selected", NoSiteSelected.String())
	assert.Equal(t, "unknown", ValidationKind(0).String())
}
