package finance

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/domain/shared"
)

// FeeStructure defines the charges for a (program, academic year) pair.
// Monetary fields are stored as decimal strings and parsed to floats at use;
// a missing or empty field counts as zero.
type FeeStructure struct {
	shared.BaseEntity
	ProgramID      uuid.UUID
	AcademicYear   string
	TuitionFee     string
	CompulsoryFees string
	BoardingFee    string
}

// ParseAmount parses a decimal-string monetary value. Empty or unparseable
// input yields zero, matching the lenient parsing of the stored data.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatAmount renders a float amount back to its decimal-string storage form
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// CalculateTotal computes the invoice total for a fee structure: tuition plus
// compulsory fees, plus boarding only for residential students. The result is
// the plain sum of the parsed floats.
func CalculateTotal(fs *FeeStructure, residential bool) float64 {
	total := ParseAmount(fs.TuitionFee) + ParseAmount(fs.CompulsoryFees)
	if residential {
		total += ParseAmount(fs.BoardingFee)
	}
	return total
}

// FeeItem is one line of an invoice fee breakdown
type FeeItem struct {
	Description string
	Amount      float64
}

// FeeBreakdown returns the non-zero fee lines for document rendering
func FeeBreakdown(fs *FeeStructure, residential bool) []FeeItem {
	var items []FeeItem
	if v := ParseAmount(fs.TuitionFee); v > 0 {
		items = append(items, FeeItem{Description: "Tuition Fee", Amount: v})
	}
	if v := ParseAmount(fs.CompulsoryFees); v > 0 {
		items = append(items, FeeItem{Description: "Compulsory Fees", Amount: v})
	}
	if residential {
		if v := ParseAmount(fs.BoardingFee); v > 0 {
			items = append(items, FeeItem{Description: "Boarding Fee", Amount: v})
		}
	}
	return items
}
