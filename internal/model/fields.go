package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IDSuffixLength is the number of random characters appended to the timestamp
const IDSuffixLength = 6

// IDGenerator produces record identifiers.
// Uniqueness is best effort: timestamp plus a short random suffix.
type IDGenerator func(now time.Time) string

// GenerateID returns "<unix millis>-<random suffix>"
func GenerateID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix[:IDSuffixLength])
}

// ParseYear converts free-form year text to an integer.
// Blank, non-numeric, non-finite or out-of-range input returns nil; fractional
// values are truncated toward zero.
func ParseYear(text string) *int {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}

	value = math.Trunc(value)
	if value > math.MaxInt32 || value < math.MinInt32 {
		return nil
	}

	year := int(value)
	return &year
}
