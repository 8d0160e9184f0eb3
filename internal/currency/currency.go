// Package currency holds the closed set of currency codes an account
// may be denominated in.
package currency

// Code is an ISO-4217 currency code from the allow-list below.
type Code string

const (
	UAH Code = "UAH"
	USD Code = "USD"
	EUR Code = "EUR"
	GBP Code = "GBP"
	PLN Code = "PLN"
	CAD Code = "CAD"
	AUD Code = "AUD"
	JPY Code = "JPY"
	CHF Code = "CHF"
	CNY Code = "CNY"
)

var allowed = []Code{UAH, USD, EUR, GBP, PLN, CAD, AUD, JPY, CHF, CNY}

// Allowed returns the full allow-list in a fresh slice.
func Allowed() []Code {
	codes := make([]Code, len(allowed))
	copy(codes, allowed)
	return codes
}

// IsAllowed reports whether s is one of the allow-listed codes.
// Matching is exact, upper-case only.
func IsAllowed(s string) bool {
	for _, code := range allowed {
		if string(code) == s {
			return true
		}
	}
	return false
}
