package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fashion-buddy-be/internal/constant"
	"fashion-buddy-be/internal/entity"
	"fashion-buddy-be/pkg/reasoning"
	"fashion-buddy-be/pkg/whatsapp"
)

func textPayload(body string) whatsapp.Payload {
	return whatsapp.Payload{
		From: "whatsapp:+919876543210",
		To:   "whatsapp:+14155238886",
		Body: body,
	}
}

func newConversationFixture(gateway *scriptedGateway) (IConversationService, *fakeUowFactory, *capturePublisher) {
	factory := newFakeUowFactory()
	publisher := &capturePublisher{}
	svc := NewConversationService(factory, gateway, nil, nil, nil, publisher, nopLogger{})
	return svc, factory, publisher
}

func seedActiveSession(factory *fakeUowFactory, phone, sessionType string) (*entity.User, *entity.Session) {
	now := time.Now()
	user := &entity.User{
		Id:          uuid.New(),
		PhoneNumber: phone,
		LastActive:  now,
		CreatedAt:   now,
	}
	factory.uow.users.users[user.Id] = user

	session := &entity.Session{
		Id:          uuid.New(),
		UserId:      user.Id,
		SessionType: sessionType,
		Status:      constant.SessionStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	factory.uow.sessions.sessions = append(factory.uow.sessions.sessions, session)
	return user, session
}

func TestHandleInboundCreatesUserAndSession(t *testing.T) {
	gateway := &scriptedGateway{replies: []reasoning.ReplyResult{{Reply: "Hello! 👋"}}}
	svc, factory, publisher := newConversationFixture(gateway)

	err := svc.HandleInbound(context.Background(), textPayload("Hi"))
	require.NoError(t, err)

	user, err := factory.uow.users.FindByPhone(context.Background(), "+919876543210")
	require.NoError(t, err)
	require.NotNil(t, user)

	session, err := factory.uow.sessions.FindActiveByUser(context.Background(), user.Id)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, constant.SessionTypeNew, session.SessionType)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, "+919876543210", publisher.published[0].To)
	assert.Equal(t, "Hello! 👋", publisher.published[0].Body)

	require.Len(t, gateway.contents, 1)
	assert.Equal(t, "Hi", gateway.contents[0].Text)
	assert.Equal(t, constant.SessionTypeNew, gateway.contexts[0].SessionType)
}

func TestHandleInboundRewritesOptionDigit(t *testing.T) {
	tests := []struct {
		name        string
		sessionType string
		text        string
		wantText    string
	}{
		{"welcome digit 1", constant.SessionTypeWelcome, "1", constant.IntentColorAnalysis},
		{"welcome digit 2 with spaces", constant.SessionTypeWelcome, " 2 ", constant.IntentVirtualTryon},
		{"budget digit in analysis", constant.SessionTypeColorAnalysis, "3", constant.IntentBudgetHigh},
		{"unmapped digit passes through", constant.SessionTypeWelcome, "7", "7"},
		{"plain text untouched", constant.SessionTypeWelcome, "hello", "hello"},
		{"multi digit untouched", constant.SessionTypeWelcome, "12", "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &scriptedGateway{replies: []reasoning.ReplyResult{{Reply: "ok"}}}
			svc, factory, _ := newConversationFixture(gateway)
			seedActiveSession(factory, "+919876543210", tt.sessionType)

			require.NoError(t, svc.HandleInbound(context.Background(), textPayload(tt.text)))
			require.Len(t, gateway.contents, 1)
			assert.Equal(t, tt.wantText, gateway.contents[0].Text)
		})
	}
}

func TestHandleInboundSessionTypeTransition(t *testing.T) {
	gateway := &scriptedGateway{replies: []reasoning.ReplyResult{{
		Reply:   "Great, let's analyze your colors! Send a selfie.",
		Updates: reasoning.SessionUpdates{SessionType: constant.SessionTypeColorAnalysis},
	}}}
	svc, factory, _ := newConversationFixture(gateway)
	user, old := seedActiveSession(factory, "+919876543210", constant.SessionTypeWelcome)

	require.NoError(t, svc.HandleInbound(context.Background(), textPayload("1")))

	retired, err := factory.uow.sessions.FindById(context.Background(), old.Id)
	require.NoError(t, err)
	assert.Equal(t, constant.SessionStatusCompleted, retired.Status)

	active, err := factory.uow.sessions.FindActiveByUser(context.Background(), user.Id)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, constant.SessionTypeColorAnalysis, active.SessionType)
	assert.NotEqual(t, old.Id, active.Id)

	// Retire + open ran inside one transaction.
	assert.Equal(t, 1, factory.uow.begun)
	assert.Equal(t, 1, factory.uow.committed)
	assert.Equal(t, 0, factory.uow.rolledBack)
}

func TestHandleInboundSessionTypeTransitionRollsBackOnFailure(t *testing.T) {
	gateway := &scriptedGateway{replies: []reasoning.ReplyResult{{
		Reply:   "Great, let's analyze your colors! Send a selfie.",
		Updates: reasoning.SessionUpdates{SessionType: constant.SessionTypeColorAnalysis},
	}}}
	svc, factory, publisher := newConversationFixture(gateway)
	seedActiveSession(factory, "+919876543210", constant.SessionTypeWelcome)
	factory.uow.sessions.failCreate = true

	err := svc.HandleInbound(context.Background(), textPayload("1"))
	require.Error(t, err)

	assert.Equal(t, 1, factory.uow.begun)
	assert.Equal(t, 0, factory.uow.committed)
	assert.Equal(t, 1, factory.uow.rolledBack)
	assert.Empty(t, publisher.published)
}

func TestHandleInboundStatusUpdate(t *testing.T) {
	gateway := &scriptedGateway{replies: []reasoning.ReplyResult{{
		Reply:   "Thank you for using WhatsApp Fashion Buddy!",
		Updates: reasoning.SessionUpdates{Status: constant.SessionStatusCompleted},
	}}}
	svc, factory, _ := newConversationFixture(gateway)
	user, old := seedActiveSession(factory, "+919876543210", constant.SessionTypeColorAnalysis)

	require.NoError(t, svc.HandleInbound(context.Background(), textPayload("thanks")))

	updated, err := factory.uow.sessions.FindById(context.Background(), old.Id)
	require.NoError(t, err)
	assert.Equal(t, constant.SessionStatusCompleted, updated.Status)

	active, err := factory.uow.sessions.FindActiveByUser(context.Background(), user.Id)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestHandleInboundMalformedPayloadMutatesNothing(t *testing.T) {
	gateway := &scriptedGateway{replies: []reasoning.ReplyResult{{Reply: "never"}}}
	svc, factory, publisher := newConversationFixture(gateway)

	err := svc.HandleInbound(context.Background(), whatsapp.Payload{Body: "Hi"})
	require.Error(t, err)

	assert.Empty(t, factory.uow.users.users)
	assert.Empty(t, factory.uow.sessions.sessions)
	assert.Empty(t, publisher.published)
}

func TestHandleInboundRendersInteractiveOptions(t *testing.T) {
	gateway := &scriptedGateway{replies: []reasoning.ReplyResult{{
		Reply: "What would you like to do?" + constant.InteractiveOptionsMarker + "Color Analysis|Virtual Try-On",
	}}}
	svc, _, publisher := newConversationFixture(gateway)

	require.NoError(t, svc.HandleInbound(context.Background(), textPayload("Hi")))

	require.Len(t, publisher.published, 1)
	body := publisher.published[0].Body
	assert.Contains(t, body, "What would you like to do?")
	assert.Contains(t, body, "1️⃣ Color Analysis")
	assert.Contains(t, body, "2️⃣ Virtual Try-On")
	assert.NotContains(t, body, constant.InteractiveOptionsMarker)
}

func TestInitiate(t *testing.T) {
	gateway := &scriptedGateway{replies: []reasoning.ReplyResult{{Reply: "unused"}}}
	svc, factory, publisher := newConversationFixture(gateway)

	res, err := svc.Initiate(context.Background(), "+919876543210", "Priya")
	require.NoError(t, err)

	sessions, err := factory.uow.sessions.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	assert.Equal(t, "+919876543210", res.Client.PhoneNumber)
	require.NotNil(t, res.Client.Name)
	assert.Equal(t, "Priya", *res.Client.Name)
	assert.Equal(t, constant.SessionTypeWelcome, res.Session.SessionType)
	assert.Equal(t, constant.SessionStatusActive, res.Session.Status)

	require.Len(t, publisher.published, 1)
	body := publisher.published[0].Body
	assert.Contains(t, body, "Hello Priya")
	assert.Contains(t, body, "1️⃣ Color Analysis & Shopping Recommendations")
	assert.Contains(t, body, "2️⃣ Virtual Try-On")

	// A second initiate reuses the user but always opens a fresh session.
	res2, err := svc.Initiate(context.Background(), "+919876543210", "")
	require.NoError(t, err)
	assert.Equal(t, res.Client.Id, res2.Client.Id)
	assert.NotEqual(t, res.Session.Id, res2.Session.Id)
}

func TestHandleInboundColorAnalysisImage(t *testing.T) {
	media := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00})
	}))
	defer media.Close()

	gateway := &scriptedGateway{
		replies: []reasoning.ReplyResult{{Reply: "unused"}},
		analysis: &reasoning.SkinToneAnalysis{
			SkinTone:          "Wheatish Warm",
			Undertone:         "warm",
			RecommendedColors: []string{"Coral", "Olive"},
			AvoidColors:       []string{"Neon Green"},
		},
	}

	factory := newFakeUowFactory()
	publisher := &capturePublisher{}
	store := newFakeObjectStore()
	images := NewImageService(factory, store, nopLogger{}, 4*time.Hour, "", "")
	analyses := NewColorAnalysisService(factory, gateway, images, nil)
	svc := NewConversationService(factory, gateway, images, analyses, nil, publisher, nopLogger{})

	user, session := seedActiveSession(factory, "+919876543210", constant.SessionTypeColorAnalysis)

	err := svc.HandleInbound(context.Background(), whatsapp.Payload{
		From:      "whatsapp:+919876543210",
		To:        "whatsapp:+14155238886",
		NumMedia:  "1",
		MediaURL0: media.URL + "/media/1",
	})
	require.NoError(t, err)

	stored, err := factory.uow.images.FindBySessionAndType(context.Background(), session.Id, constant.ImageTypeFace)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, user.Id, stored[0].UserId)

	analysis, err := factory.uow.analyses.FindLatestBySession(context.Background(), session.Id)
	require.NoError(t, err)
	require.NotNil(t, analysis)
	assert.Equal(t, "Wheatish Warm", analysis.SkinTone)

	require.Len(t, publisher.published, 1)
	body := publisher.published[0].Body
	assert.Contains(t, body, "Wheatish Warm")
	assert.Contains(t, body, "Coral, Olive")
	assert.Contains(t, body, constant.IntentBudgetLow)
}
