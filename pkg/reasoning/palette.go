package reasoning

import "strings"

// PaletteEntry is one reference skin-tone/undertone category with its
// pre-associated color lists.
type PaletteEntry struct {
	Label             string
	Undertone         string
	RecommendedColors []string
	AvoidColors       []string
}

// ReferencePalette is the fixed set of categories the classifier is
// constrained to. The vision call must pick exactly one label from it.
var ReferencePalette = []PaletteEntry{
	{
		Label:             "Fair with Warm Undertone",
		Undertone:         "warm",
		RecommendedColors: []string{"Peach", "Coral", "Ivory", "Warm Beige", "Camel", "Golden Yellow"},
		AvoidColors:       []string{"Icy Blue", "Neon Pink", "Stark White", "Silver Grey"},
	},
	{
		Label:             "Fair with Cool Undertone",
		Undertone:         "cool",
		RecommendedColors: []string{"Lavender", "Powder Blue", "Rose Pink", "Emerald", "Plum", "Navy"},
		AvoidColors:       []string{"Orange", "Mustard", "Camel", "Tomato Red"},
	},
	{
		Label:             "Fair with Neutral Undertone",
		Undertone:         "neutral",
		RecommendedColors: []string{"Soft White", "Dusty Pink", "Jade Green", "Light Grey", "Teal", "Burgundy"},
		AvoidColors:       []string{"Neon Green", "Bright Orange", "Fluorescent Yellow", "Magenta"},
	},
	{
		Label:             "Wheatish with Warm Undertone",
		Undertone:         "warm",
		RecommendedColors: []string{"Olive", "Mustard", "Rust", "Terracotta", "Cream", "Deep Teal"},
		AvoidColors:       []string{"Pastel Pink", "Icy Blue", "Silver", "Lilac"},
	},
	{
		Label:             "Wheatish with Cool Undertone",
		Undertone:         "cool",
		RecommendedColors: []string{"Raspberry", "Cobalt Blue", "Forest Green", "Charcoal", "Wine", "Ice Pink"},
		AvoidColors:       []string{"Golden Yellow", "Orange", "Khaki", "Warm Brown"},
	},
	{
		Label:             "Wheatish with Neutral Undertone",
		Undertone:         "neutral",
		RecommendedColors: []string{"Maroon", "Teal", "Off White", "Mauve", "Bottle Green", "Denim Blue"},
		AvoidColors:       []string{"Neon Yellow", "Bright Orange", "Lime Green", "Hot Pink"},
	},
	{
		Label:             "Dusky with Warm Undertone",
		Undertone:         "warm",
		RecommendedColors: []string{"Burnt Orange", "Gold", "Copper", "Olive Green", "Burgundy", "Chocolate Brown"},
		AvoidColors:       []string{"Pastel Blue", "Baby Pink", "Grey", "Mint Green"},
	},
	{
		Label:             "Dusky with Cool Undertone",
		Undertone:         "cool",
		RecommendedColors: []string{"Royal Blue", "Magenta", "Deep Purple", "Crimson", "Emerald Green", "Fuchsia"},
		AvoidColors:       []string{"Beige", "Camel", "Mustard", "Peach"},
	},
	{
		Label:             "Deep with Warm Undertone",
		Undertone:         "warm",
		RecommendedColors: []string{"Bright Yellow", "Tangerine", "Warm Red", "Ivory", "Kelly Green", "Cobalt"},
		AvoidColors:       []string{"Dark Brown", "Charcoal", "Muted Olive", "Dusty Grey"},
	},
	{
		Label:             "Deep with Cool Undertone",
		Undertone:         "cool",
		RecommendedColors: []string{"Pure White", "Electric Blue", "Ruby Red", "Violet", "Hot Pink", "Emerald"},
		AvoidColors:       []string{"Brown", "Olive", "Mustard", "Faded Pastels"},
	},
}

// PaletteLabels returns the label of every reference category, in order.
func PaletteLabels() []string {
	labels := make([]string, len(ReferencePalette))
	for i, entry := range ReferencePalette {
		labels[i] = entry.Label
	}
	return labels
}

// LookupPalette finds a palette entry by case-insensitive exact label
// match. Returns nil when the label is not part of the reference set.
func LookupPalette(label string) *PaletteEntry {
	for i := range ReferencePalette {
		if strings.EqualFold(ReferencePalette[i].Label, label) {
			return &ReferencePalette[i]
		}
	}
	return nil
}
