package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSite_Validate(t *testing.T) {
	tests := []struct {
		name    string
		site    Site
		wantErr bool
	}{
		{"valid", Site{Name: "Greenhouse", Domain: "boards.greenhouse.io"}, false},
		{"empty name", Site{Name: " ", Domain: "boards.greenhouse.io"}, true},
		{"empty domain", Site{Name: "Greenhouse", Domain: ""}, true},
		{"domain with path", Site{Name: "Greenhouse", Domain: "greenhouse.io/jobs"}, true},
		{"domain with space", Site{Name: "Greenhouse", Domain: "green house.io"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.site.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSites(t *testing.T) {
	t.Run("unique domains pass", func(t *testing.T) {
		err := ValidateSites(testSites())
		assert.NoError(t, err)
	})

	t.Run("empty list", func(t *testing.T) {
		assert.ErrorIs(t, ValidateSites(nil), ErrEmptyRegistry)
	})

	t.Run("duplicate domain", func(t *testing.T) {
		sites := append(testSites(), Site{Name: "Greenhouse EU", Domain: "boards.greenhouse.io"})

		err := ValidateSites(sites)

		assert.ErrorIs(t, err, ErrDuplicateDomain)
		assert.Contains(t, err.Error(), "boards.greenhouse.io")
	})

	t.Run("invalid entry", func(t *testing.T) {
		sites := append(testSites(), Site{Name: "Broken"})
		assert.ErrorIs(t, ValidateSites(sites), ErrInvalidInput)
	})
}

func testSites() []Site {
	return []Site{
		{Name: "Greenhouse", Domain: "boards.greenhouse.io"},
		{Name: "Lever", Domain: "jobs.lever.co"},
		{Name: "Ashby", Domain: "jobs.ashbyhq.com"},
	}
}
