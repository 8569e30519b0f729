package helpers

import (
	"fmt"
	"strconv"
	"strings"
)

// All monetary amounts are integer cents so fee arithmetic stays exact at
// two-decimal currency precision. The helpers here convert between the
// "80.00" notation of the published price matrix and cents.

// ParseAmount parses a decimal amount string such as "80.00" or "5" into
// cents. Amounts must be non-negative with at most two decimal places.
func ParseAmount(raw string) (int64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("empty amount")
	}
	if strings.HasPrefix(trimmed, "-") {
		return 0, fmt.Errorf("negative amount not allowed: %q", raw)
	}

	whole := trimmed
	fraction := ""
	if idx := strings.IndexByte(trimmed, '.'); idx >= 0 {
		whole = trimmed[:idx]
		fraction = trimmed[idx+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(fraction) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", raw)
	}
	// Pad "5.5" to "5.50"
	for len(fraction) < 2 {
		fraction += "0"
	}

	wholeCents, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	fractionCents, err := strconv.ParseInt(fraction, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", raw, err)
	}

	return wholeCents*100 + fractionCents, nil
}

// FormatAmount renders cents as a two-decimal amount string
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// PercentageAmount returns percentage percent of the given amount in cents,
// rounded half up. Integer arithmetic keeps the result exact.
func PercentageAmount(amountCents int64, percentage int32) int64 {
	if amountCents <= 0 || percentage <= 0 {
		return 0
	}
	return (amountCents*int64(percentage) + 50) / 100
}
