package order

import (
	"regexp"
	"strings"
	"time"
)

// Platform labels recognized by DetectPlatform.
const (
	PlatformShopee = "Shopee"
	PlatformLazada = "Lazada"
	PlatformTiktok = "Tiktok"
	PlatformOther  = "Other"
)

var digitsOnlyPattern = regexp.MustCompile(`^\d{10,20}$`)

// DetectPlatform guesses the selling platform from a carrier package code.
// The heuristics reflect the label formats seen in production:
//
//   - Shopee codes start with "TH" followed by at least ten more characters,
//     or carry the "SPX" prefix
//   - Lazada uses "LAZ", "LEX", or "LX" prefixes
//   - Tiktok shipments are handled by J&T or Kerry, or carry a purely numeric code
//
// Anything else maps to PlatformOther.
func DetectPlatform(packageCode string) string {
	if packageCode == "" {
		return PlatformOther
	}

	code := strings.ToUpper(strings.Join(strings.Fields(packageCode), ""))

	if (strings.HasPrefix(code, "TH") && len(code) >= 12) || strings.HasPrefix(code, "SPX") {
		return PlatformShopee
	}

	if strings.HasPrefix(code, "LAZ") || strings.Contains(code, "LEX") || strings.HasPrefix(code, "LX") {
		return PlatformLazada
	}

	if strings.HasPrefix(code, "JT") ||
		strings.HasPrefix(code, "KER") ||
		digitsOnlyPattern.MatchString(code) {
		return PlatformTiktok
	}

	return PlatformOther
}

// DefaultDueDate returns the due date offered for a new order created at the
// given time: orders registered from noon onward default to the next day,
// earlier orders to the same day. The result is truncated to a date in the
// local time of now.
func DefaultDueDate(now time.Time) time.Time {
	day := now
	if now.Hour() >= 12 {
		day = now.AddDate(0, 0, 1)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}
