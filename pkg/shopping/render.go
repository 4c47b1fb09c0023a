package shopping

import (
	"fmt"
	"strings"
)

const noResultsMessage = "Sorry, I couldn't find products in your budget right now. 😕\nTry a different budget range or check back later!"

// Render formats products as a WhatsApp-friendly list. An empty slice
// renders the no-results message instead.
func Render(products []Product) string {
	if len(products) == 0 {
		return noResultsMessage
	}

	var b strings.Builder
	b.WriteString("🛍️ Here are some picks for you:\n")
	for i, p := range products {
		b.WriteString(fmt.Sprintf("\n%d. *%s*\n", i+1, p.Name))
		b.WriteString(fmt.Sprintf("   Brand: %s\n", p.Brand))
		b.WriteString(fmt.Sprintf("   Price: ₹%s\n", p.Price.StringFixed(0)))
		if p.URL != "" {
			b.WriteString(fmt.Sprintf("   Link: %s\n", p.URL))
		}
	}
	b.WriteString("\nHappy shopping! ✨")
	return b.String()
}
