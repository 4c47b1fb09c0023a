package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fashion-buddy-be/pkg/apperrors"
)

func TestParseInbound(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		want    *Message
		wantErr bool
	}{
		{
			name: "text message",
			payload: Payload{
				From: "whatsapp:+919876543210",
				To:   "whatsapp:+14155238886",
				Body: "Hi",
			},
			want: &Message{
				Kind: MessageKindText,
				From: "+919876543210",
				To:   "+14155238886",
				Text: "Hi",
			},
		},
		{
			name: "image message",
			payload: Payload{
				From:      "whatsapp:+919876543210",
				To:        "whatsapp:+14155238886",
				NumMedia:  "1",
				MediaURL0: "https://api.example.com/media/1",
			},
			want: &Message{
				Kind:     MessageKindImage,
				From:     "+919876543210",
				To:       "+14155238886",
				MediaURL: "https://api.example.com/media/1",
			},
		},
		{
			name: "image with caption stays an image",
			payload: Payload{
				From:      "whatsapp:+919876543210",
				To:        "whatsapp:+14155238886",
				Body:      "my selfie",
				NumMedia:  "1",
				MediaURL0: "https://api.example.com/media/2",
			},
			want: &Message{
				Kind:     MessageKindImage,
				From:     "+919876543210",
				To:       "+14155238886",
				MediaURL: "https://api.example.com/media/2",
				Caption:  "my selfie",
			},
		},
		{
			name: "bare numbers without prefix",
			payload: Payload{
				From: "+919876543210",
				To:   "+14155238886",
				Body: "1",
			},
			want: &Message{
				Kind: MessageKindText,
				From: "+919876543210",
				To:   "+14155238886",
				Text: "1",
			},
		},
		{
			name:    "missing sender",
			payload: Payload{To: "whatsapp:+14155238886", Body: "Hi"},
			wantErr: true,
		},
		{
			name:    "missing recipient",
			payload: Payload{From: "whatsapp:+919876543210", Body: "Hi"},
			wantErr: true,
		},
		{
			name: "neither text nor media",
			payload: Payload{
				From: "whatsapp:+919876543210",
				To:   "whatsapp:+14155238886",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInbound(tt.payload)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.CodeInvalidMessageFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
