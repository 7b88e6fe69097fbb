package numbering

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStudentNumber(t *testing.T) {
	tests := []struct {
		name string
		year int
		seq  int64
		want string
	}{
		{"pads short sequences", 2026, 7, "STU-2026-0007"},
		{"keeps long sequences", 2026, 12345, "STU-2026-12345"},
		{"first of the year", 2027, 1, "STU-2027-0001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StudentNumber(tt.year, tt.seq))
		})
	}
}

func TestAdmissionInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-2026-0042", AdmissionInvoiceNumber("2026", 42))
}

func TestRegistrationInvoiceNumber(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	got := RegistrationInvoiceNumber("2026", now)

	assert.Equal(t, "INV-2026-1773480413000", got)
	// The two invoice schemes must stay distinguishable: the admission form
	// is zero-padded to four digits, the registration form never is.
	assert.Greater(t, len(got), len(AdmissionInvoiceNumber("2026", 42)))
}

func TestReceiptNumber(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 123_000_000, time.UTC)
	got := ReceiptNumber(now)

	assert.True(t, strings.HasPrefix(got, "REC-2026-"), got)
	suffix := strings.TrimPrefix(got, "REC-2026-")
	assert.Len(t, suffix, 6)
}

func TestApplicationID(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	got := ApplicationID(now)

	assert.True(t, strings.HasPrefix(got, "APP-1773480413000-"), got)
	random := strings.TrimPrefix(got, "APP-1773480413000-")
	assert.Len(t, random, 5)
	assert.Equal(t, strings.ToUpper(random), random)
}
