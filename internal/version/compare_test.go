package version

import (
	"testing"

	"github.com/rxtech-lab/argo-kline/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckVersionCompatibility(t *testing.T) {
	tests := []struct {
		name          string
		library       string
		native        string
		expectCode    errors.ErrorCode
		errorContains string
	}{
		{name: "exact match", library: "0.3.0", native: "0.3.0"},
		{name: "library patch higher", library: "0.3.2", native: "0.3.0"},
		{name: "native patch higher", library: "0.3.0", native: "0.3.7"},
		{name: "v prefix on both", library: "v1.2.0", native: "v1.2.0"},
		{name: "prerelease", library: "1.2.0-beta.1", native: "1.2.0"},
		{name: "library is main", library: "main", native: "9.9.9"},
		{name: "native is main", library: "0.3.0", native: "main"},
		{
			name:          "minor differs",
			library:       "0.4.0",
			native:        "0.3.0",
			expectCode:    errors.ErrCodeVersionMismatch,
			errorContains: "minor version mismatch",
		},
		{
			name:          "major differs",
			library:       "2.0.0",
			native:        "1.0.0",
			expectCode:    errors.ErrCodeVersionMismatch,
			errorContains: "major version mismatch",
		},
		{
			name:          "invalid library version",
			library:       "not-a-version",
			native:        "1.2.0",
			expectCode:    errors.ErrCodeInvalidVersion,
			errorContains: "invalid library version",
		},
		{
			name:          "empty native version",
			library:       "1.2.0",
			native:        "",
			expectCode:    errors.ErrCodeInvalidVersion,
			errorContains: "invalid native version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckVersionCompatibility(tt.library, tt.native)

			if tt.expectCode == 0 {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.expectCode))
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestGetVersion(t *testing.T) {
	assert.Equal(t, Version, GetVersion())
}
