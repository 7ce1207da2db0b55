package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, 300*time.Millisecond, s.Dispatch.Interval)
	assert.True(t, s.Dispatch.UsesSystemBrowser())
	assert.False(t, s.Dispatch.PrintOnly)
	assert.NoError(t, s.Validate())
}

func TestDispatchSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings DispatchSettings
		wantErr  bool
	}{
		{"zero interval", DispatchSettings{}, false},
		{"max interval", DispatchSettings{Interval: MaxDispatchInterval}, false},
		{"negative interval", DispatchSettings{Interval: -time.Millisecond}, true},
		{"interval too large", DispatchSettings{Interval: MaxDispatchInterval + time.Millisecond}, true},
		{"browser command", DispatchSettings{BrowserCommand: "firefox --new-tab"}, false},
		{"blank browser command", DispatchSettings{BrowserCommand: "   "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDispatchResult_Last(t *testing.T) {
	assert.True(t, DispatchResult{Index: 1, Total: 2}.Last())
	assert.False(t, DispatchResult{Index: 0, Total: 2}.Last())
}
