package shopping

import "strings"

// knownBrands are the labels recognized in product titles and merchant
// names. First match wins, so multi-word brands come before their parts.
var knownBrands = []string{
	"Allen Solly",
	"Louis Philippe",
	"Peter England",
	"Van Heusen",
	"U.S. Polo",
	"Flying Machine",
	"Jack & Jones",
	"Myntra",
	"Ajio",
	"Flipkart",
	"Amazon",
	"Meesho",
	"Nykaa",
	"Zara",
	"H&M",
	"Levis",
	"Levi's",
	"Wrangler",
	"Roadster",
	"HRX",
	"Puma",
	"Nike",
	"Adidas",
	"Reebok",
	"Biba",
	"W for Woman",
	"Fabindia",
	"Max",
	"Pantaloons",
	"Westside",
}

// ExtractBrand picks a known brand out of a product title or merchant
// name, falling back to the merchant itself.
func ExtractBrand(title, merchant string) string {
	haystack := strings.ToLower(title + " " + merchant)
	for _, brand := range knownBrands {
		if strings.Contains(haystack, strings.ToLower(brand)) {
			return brand
		}
	}
	if merchant != "" {
		return merchant
	}
	return "Unknown"
}
