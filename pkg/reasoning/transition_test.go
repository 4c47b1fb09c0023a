package reasoning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSessionUpdates(t *testing.T) {
	tests := []struct {
		name        string
		reply       string
		wantType    string
		wantStatus  string
	}{
		{
			name:     "color analysis phrase",
			reply:    "Let's begin your Color Analysis! Please send a selfie.",
			wantType: "color_analysis",
		},
		{
			name:     "skin tone phrase",
			reply:    "I'll determine your skin tone from the photo.",
			wantType: "color_analysis",
		},
		{
			name:     "virtual tryon phrase",
			reply:    "Time for a Virtual Try-On! Send a full body photo.",
			wantType: "virtual_tryon",
		},
		{
			name:       "closing phrase completes session",
			reply:      "Thank you for using WhatsApp Fashion Buddy. Have a stylish day!",
			wantStatus: "completed",
		},
		{
			name:       "transition and closing together",
			reply:      "Your color analysis is done. Session complete!",
			wantType:   "color_analysis",
			wantStatus: "completed",
		},
		{
			name:  "neutral reply",
			reply: "Here are some options for you.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updates := DetectSessionUpdates(tt.reply)
			assert.Equal(t, tt.wantType, updates.SessionType)
			assert.Equal(t, tt.wantStatus, updates.Status)
			assert.Equal(t, tt.wantType == "" && tt.wantStatus == "", updates.IsZero())
		})
	}
}
