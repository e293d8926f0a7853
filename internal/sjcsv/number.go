package sjcsv

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ParseDecimal parses a price-like field. Thousands separators are
// stripped. Returns false for an empty field, and false with a warning
// for a value that does not parse; it never fails the caller.
func ParseDecimal(value string) (decimal.Decimal, bool) {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if value == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		log.Warn().Str("value", value).Msg("field is not a valid decimal")
		return decimal.Decimal{}, false
	}
	return d, true
}

// ParseInt parses a quantity field. Empty means zero; an unparseable
// value is treated as zero with a warning.
func ParseInt(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("value", value).Msg("field is not a valid integer")
		return 0
	}
	return n
}
