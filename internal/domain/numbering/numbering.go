// Package numbering produces the human-readable identifiers used across the
// system: student numbers, invoice numbers, receipt numbers and application
// identifiers. Generation never fails; uniqueness is sequential or
// probabilistic, not guaranteed.
package numbering

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Sequence issues the next sequence number for a named counter. The default
// implementation derives it from the current record count (read-then-use, so
// concurrent callers can observe the same value); a Redis-backed
// implementation provides an atomic counter instead.
type Sequence interface {
	// Next returns the next sequence number for the counter
	Next(ctx context.Context, counter string) (int64, error)
}

// Counter names used with Sequence implementations
const (
	CounterStudents = "students"
)

// StudentNumber formats a student identifier: STU-<year>-<seq zero-padded to 4>.
func StudentNumber(year int, seq int64) string {
	return fmt.Sprintf("STU-%d-%04d", year, seq)
}

// AdmissionInvoiceNumber formats the invoice number minted at admission time.
// It reuses the student's sequence number for the period.
func AdmissionInvoiceNumber(academicYear string, seq int64) string {
	return fmt.Sprintf("INV-%s-%04d", academicYear, seq)
}

// RegistrationInvoiceNumber formats the invoice number minted at course
// registration time, which is keyed on the current epoch milliseconds rather
// than a sequence. The two schemes are intentionally different.
func RegistrationInvoiceNumber(academicYear string, now time.Time) string {
	return fmt.Sprintf("INV-%s-%d", academicYear, now.UnixMilli())
}

// ReceiptNumber formats a receipt identifier: REC-<year>-<last 6 digits of
// the current epoch milliseconds>.
func ReceiptNumber(now time.Time) string {
	millis := fmt.Sprintf("%d", now.UnixMilli())
	return fmt.Sprintf("REC-%d-%s", now.Year(), millis[len(millis)-6:])
}

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// ApplicationID formats a public application identifier:
// APP-<epochMillis>-<5 random base36 chars, uppercased>.
func ApplicationID(now time.Time) string {
	b := make([]byte, 5)
	for i := range b {
		b[i] = base36Alphabet[rand.Intn(len(base36Alphabet))]
	}
	return fmt.Sprintf("APP-%d-%s", now.UnixMilli(), strings.ToUpper(string(b)))
}
