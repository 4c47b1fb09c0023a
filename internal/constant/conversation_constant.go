package constant

const (
	SessionTypeNew           = "new"
	SessionTypeWelcome       = "welcome"
	SessionTypeColorAnalysis = "color_analysis"
	SessionTypeVirtualTryon  = "virtual_tryon"

	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
)

const (
	ImageTypeFace     = "face"
	ImageTypeBody     = "body"
	ImageTypeClothing = "clothing"
	ImageTypeResult   = "result"
)

// InteractiveOptionsMarker separates a reply's lead-in from its
// pipe-delimited option list.
const InteractiveOptionsMarker = "[INTERACTIVE_OPTIONS]"

const (
	IntentColorAnalysis = "I want Color Analysis & Shopping Recommendations"
	IntentVirtualTryon  = "I want Virtual Try-On"

	IntentBudgetLow  = "My budget is low (₹500-1500)"
	IntentBudgetMid  = "My budget is mid-range (₹1500-3000)"
	IntentBudgetHigh = "My budget is high (₹3000-10000)"
)

// OptionIntents maps (session type, selected digit) to the intent text the
// reasoning step receives in place of the bare digit. Unmapped digits pass
// through as literal text.
var OptionIntents = map[string]map[int]string{
	SessionTypeNew: {
		1: IntentColorAnalysis,
		2: IntentVirtualTryon,
	},
	SessionTypeWelcome: {
		1: IntentColorAnalysis,
		2: IntentVirtualTryon,
	},
	SessionTypeColorAnalysis: {
		1: IntentBudgetLow,
		2: IntentBudgetMid,
		3: IntentBudgetHigh,
	},
}

const WelcomeMessage = "👋 Hello%s! Welcome to WhatsApp Fashion Buddy!\n\nI can help you find clothes that match your skin tone or try on clothes virtually. What would you like to do today?"

var WelcomeOptions = []string{
	"Color Analysis & Shopping Recommendations",
	"Virtual Try-On",
}
