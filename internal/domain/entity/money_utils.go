package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/voyagehub/payment-ledger/internal/domain/error"
)

// Monetary amounts are carried as int64 minor units (e.g. cents) everywhere
// inside the ledger. Conversion to major units happens only at presentation
// boundaries, via the helpers below.

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ParseMajorAmount validates and converts a major-unit string to minor units.
// Uses a string-based approach to avoid floating point:
// - If no decimal point: appends ".00" and removes the point to get an integer
// - If one digit after decimal: appends a "0" and removes the point
// - If two digits after decimal: just removes the point
func ParseMajorAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	// Negative amounts never enter the ledger through this path
	if strings.HasPrefix(amount, "-") {
		return 0, fmt.Errorf("%w: negative value", errs.ErrInvalidAmount)
	}

	parts := strings.Split(amount, ".")

	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	var integerValue string

	if len(parts) == 1 {
		// No decimal point - add ".00"
		integerValue = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			// Like "10." - add "00"
			integerValue = parts[0] + "00"
		case 1:
			// One digit after decimal - add one zero
			integerValue = parts[0] + parts[1] + "0"
		case 2:
			// Two digits after decimal - use as is
			integerValue = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(integerValue, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// MinorToMajorString converts a minor-unit amount to a decimal string
// For example:
// - 1015 becomes "10.15"
// - 1000 becomes "10.00"
// - -4250 becomes "-42.50"
func MinorToMajorString(amountMinor int64) string {
	isNegative := amountMinor < 0
	if isNegative {
		amountMinor = -amountMinor
	}

	amountStr := fmt.Sprintf("%d", amountMinor)

	// Ensure minimum length
	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	// Extract decimal parts
	decimalPos := len(amountStr) - 2
	wholePart := amountStr[:decimalPos]
	decimalPart := amountStr[decimalPos:]

	if wholePart == "" {
		wholePart = "0"
	}

	if isNegative {
		return "-" + wholePart + "." + decimalPart
	}
	return wholePart + "." + decimalPart
}

// CommissionMinor computes the platform commission retained on a minor-unit
// amount at the given percentage rate, using integer arithmetic so the result
// is exact (5000 at 15% yields 750).
func CommissionMinor(amountMinor int64, ratePercent int64) int64 {
	if amountMinor <= 0 || ratePercent <= 0 {
		return 0
	}
	return amountMinor * ratePercent / 100
}
