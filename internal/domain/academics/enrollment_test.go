package academics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sis/backend/internal/domain/shared"
)

func TestCreditWindow(t *testing.T) {
	tests := []struct {
		name        string
		degreeLevel string
		wantMin     int
		wantMax     int
	}{
		{"undergraduate", DegreeLevelUndergraduate, 12, 18},
		{"postgraduate", DegreeLevelPostgraduate, 9, 12},
		{"empty defaults to undergraduate", "", 12, 18},
		{"unknown defaults to undergraduate", "doctoral", 12, 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minCredits, maxCredits := CreditWindow(tt.degreeLevel)
			assert.Equal(t, tt.wantMin, minCredits)
			assert.Equal(t, tt.wantMax, maxCredits)
		})
	}
}

func TestValidateCreditLoad(t *testing.T) {
	tests := []struct {
		name        string
		credits     int
		degreeLevel string
		wantCode    string
	}{
		{"undergraduate in range", 15, DegreeLevelUndergraduate, ""},
		{"undergraduate at minimum", 12, DegreeLevelUndergraduate, ""},
		{"undergraduate at maximum", 18, DegreeLevelUndergraduate, ""},
		{"undergraduate below minimum", 11, DegreeLevelUndergraduate, "CREDITS_BELOW_MINIMUM"},
		{"undergraduate above maximum", 19, DegreeLevelUndergraduate, "CREDITS_ABOVE_MAXIMUM"},
		{"postgraduate at minimum", 9, DegreeLevelPostgraduate, ""},
		{"postgraduate at maximum", 12, DegreeLevelPostgraduate, ""},
		{"postgraduate below minimum", 8, DegreeLevelPostgraduate, "CREDITS_BELOW_MINIMUM"},
		{"postgraduate rejects undergraduate load", 15, DegreeLevelPostgraduate, "CREDITS_ABOVE_MAXIMUM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCreditLoad(tt.credits, tt.degreeLevel)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			var domainErr *shared.DomainError
			assert.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.wantCode, domainErr.Code)
		})
	}
}
