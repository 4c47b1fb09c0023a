package reasoning

import "strings"

// SessionUpdates carries the optional transition signal inferred from a
// reply. Empty fields mean "no change proposed".
type SessionUpdates struct {
	SessionType string
	Status      string
}

func (u SessionUpdates) IsZero() bool {
	return u.SessionType == "" && u.Status == ""
}

var (
	colorAnalysisPhrases = []string{"color analysis", "skin tone"}
	virtualTryonPhrases  = []string{"virtual try-on", "try on"}
	closingPhrases       = []string{"session complete", "thank you for using", "have a stylish day"}
)

// DetectSessionUpdates scans a reply for transition keywords. It is a
// best-effort heuristic over free text: false positives and negatives are
// expected and must be tolerated by the caller.
func DetectSessionUpdates(reply string) SessionUpdates {
	lower := strings.ToLower(reply)
	updates := SessionUpdates{}

	if containsAny(lower, colorAnalysisPhrases) {
		updates.SessionType = "color_analysis"
	} else if containsAny(lower, virtualTryonPhrases) {
		updates.SessionType = "virtual_tryon"
	}

	if containsAny(lower, closingPhrases) {
		updates.Status = "completed"
	}

	return updates
}

func containsAny(s string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(s, phrase) {
			return true
		}
	}
	return false
}
