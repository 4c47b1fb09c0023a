package shopping

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Window is an inclusive price range in rupees.
type Window struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// Contains reports whether price falls inside the window.
func (w Window) Contains(price decimal.Decimal) bool {
	return price.GreaterThanOrEqual(w.Min) && price.LessThanOrEqual(w.Max)
}

var (
	defaultWindow = Window{Min: decimal.NewFromInt(500), Max: decimal.NewFromInt(5000)}
	lowWindow     = Window{Min: decimal.NewFromInt(500), Max: decimal.NewFromInt(1500)}
	midWindow     = Window{Min: decimal.NewFromInt(1500), Max: decimal.NewFromInt(3000)}
	highWindow    = Window{Min: decimal.NewFromInt(3000), Max: decimal.NewFromInt(10000)}

	rangePattern  = regexp.MustCompile(`(\d+)\s*-\s*(\d+)`)
	numberPattern = regexp.MustCompile(`\d+`)
)

// ParseBudget maps a user budget utterance to a price window. Menu picks
// carry their range inline ("₹500-1500"); free text falls back to a bare
// range or number, then to the default window.
func ParseBudget(text string) Window {
	if m := rangePattern.FindStringSubmatch(text); m != nil {
		min, errMin := decimal.NewFromString(m[1])
		max, errMax := decimal.NewFromString(m[2])
		if errMin == nil && errMax == nil && max.GreaterThan(min) {
			return Window{Min: min, Max: max}
		}
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "mid") || strings.Contains(lower, "medium"):
		return midWindow
	case strings.Contains(lower, "high"):
		return highWindow
	case strings.Contains(lower, "low") || strings.Contains(lower, "budget"):
		return lowWindow
	}

	if m := numberPattern.FindString(text); m != "" {
		if max, err := decimal.NewFromString(m); err == nil && max.IsPositive() {
			return Window{Min: decimal.Zero, Max: max}
		}
	}

	return defaultWindow
}

// DefaultWindow returns the range used when the user never stated a budget.
func DefaultWindow() Window {
	return defaultWindow
}
