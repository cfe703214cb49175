package specification

import (
	"testing"

	"noc-monitor/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForSeverity(t *testing.T) {
	tests := []struct {
		severity  entity.LogSeverity
		wantLevel bool
	}{
		{severity: entity.LogSeverityLow, wantLevel: false},
		{severity: entity.LogSeverityMedium, wantLevel: true},
		{severity: entity.LogSeverityHigh, wantLevel: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			specs, err := ForSeverity(tt.severity)
			require.NoError(t, err)

			var byLevel *ByLevel
			for _, s := range specs {
				if l, ok := s.(ByLevel); ok {
					byLevel = &l
				}
			}
			if tt.wantLevel {
				require.NotNil(t, byLevel)
				assert.Equal(t, tt.severity, byLevel.Level)
			} else {
				assert.Nil(t, byLevel)
			}
		})
	}
}

func TestForSeverityUnknown(t *testing.T) {
	_, err := ForSeverity("urgent")
	assert.ErrorIs(t, err, entity.ErrUnknownSeverity)
}
