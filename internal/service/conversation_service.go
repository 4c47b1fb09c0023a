package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"fashion-buddy-be/internal/constant"
	"fashion-buddy-be/internal/dto"
	"fashion-buddy-be/internal/entity"
	"fashion-buddy-be/internal/pkg/logger"
	"fashion-buddy-be/internal/repository/unitofwork"
	"fashion-buddy-be/pkg/reasoning"
	"fashion-buddy-be/pkg/whatsapp"
)

type IConversationService interface {
	// HandleInbound drives one turn of the conversation state machine.
	// Failures after normalization leave the caller free to ack anyway;
	// the returned error is for logging.
	HandleInbound(ctx context.Context, payload whatsapp.Payload) error
	// Initiate starts a fresh welcome conversation with the given phone
	// number, creating the user when needed.
	Initiate(ctx context.Context, phoneNumber, name string) (*dto.InitiateConversationResponse, error)
	SendText(ctx context.Context, req *dto.SendTextRequest) error
	SendMedia(ctx context.Context, req *dto.SendMediaRequest) error
}

type conversationService struct {
	uowFactory    unitofwork.RepositoryFactory
	gateway       reasoning.Gateway
	imageService  IImageService
	colorAnalysis IColorAnalysisService
	tryOn         ITryOnService
	publisher     IPublisherService
	log           logger.ILogger
}

func NewConversationService(
	uowFactory unitofwork.RepositoryFactory,
	gateway reasoning.Gateway,
	imageService IImageService,
	colorAnalysis IColorAnalysisService,
	tryOn ITryOnService,
	publisher IPublisherService,
	log logger.ILogger,
) IConversationService {
	return &conversationService{
		uowFactory:    uowFactory,
		gateway:       gateway,
		imageService:  imageService,
		colorAnalysis: colorAnalysis,
		tryOn:         tryOn,
		publisher:     publisher,
		log:           log,
	}
}

func (s *conversationService) HandleInbound(ctx context.Context, payload whatsapp.Payload) error {
	msg, err := whatsapp.ParseInbound(payload)
	if err != nil {
		// Nothing was mutated; the malformed payload is simply dropped.
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.touchUser(ctx, uow, msg.From)
	if err != nil {
		return err
	}

	session, err := s.currentSession(ctx, uow, user.Id)
	if err != nil {
		return err
	}

	if msg.Kind == whatsapp.MessageKindImage {
		return s.handleImage(ctx, uow, user, session, msg)
	}
	return s.handleText(ctx, uow, user, session, msg.Text)
}

func (s *conversationService) handleText(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, session *entity.Session, text string) error {
	result, err := s.gateway.GenerateReply(ctx, reasoning.InboundContent{
		Text: rewriteOptionDigit(session.SessionType, text),
	}, reasoning.SessionContext{
		SessionType: session.SessionType,
		Status:      session.Status,
	})
	if err != nil {
		return err
	}

	if err := s.applySessionUpdates(ctx, uow, user.Id, session, result.Updates); err != nil {
		return err
	}

	body := whatsapp.RenderReply(result.Reply, constant.InteractiveOptionsMarker)
	return s.dispatch(ctx, user.PhoneNumber, body, nil)
}

func (s *conversationService) handleImage(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, session *entity.Session, msg *whatsapp.Message) error {
	switch session.SessionType {
	case constant.SessionTypeColorAnalysis:
		return s.handleColorAnalysisImage(ctx, user, session, msg.MediaURL)
	case constant.SessionTypeVirtualTryon:
		return s.handleTryOnImage(ctx, uow, user, session, msg.MediaURL)
	default:
		// An image outside a flow still gets a conversational answer.
		result, err := s.gateway.GenerateReply(ctx, reasoning.InboundContent{
			ImageURL: msg.MediaURL,
			Caption:  msg.Caption,
		}, reasoning.SessionContext{
			SessionType: session.SessionType,
			Status:      session.Status,
		})
		if err != nil {
			return err
		}
		if err := s.applySessionUpdates(ctx, uow, user.Id, session, result.Updates); err != nil {
			return err
		}
		body := whatsapp.RenderReply(result.Reply, constant.InteractiveOptionsMarker)
		return s.dispatch(ctx, user.PhoneNumber, body, nil)
	}
}

func (s *conversationService) handleColorAnalysisImage(ctx context.Context, user *entity.User, session *entity.Session, mediaURL string) error {
	stored, err := s.imageService.StoreFromURL(ctx, mediaURL, user.Id, session.Id, constant.ImageTypeFace)
	if err != nil {
		return err
	}

	analysis, err := s.colorAnalysis.AnalyzeFromURLs(ctx, session.Id, []string{stored.URL})
	if err != nil {
		return err
	}

	return s.dispatch(ctx, user.PhoneNumber, colorAnalysisReply(analysis), nil)
}

func (s *conversationService) handleTryOnImage(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, session *entity.Session, mediaURL string) error {
	bodyImages, err := uow.ImageRepository().FindBySessionAndType(ctx, session.Id, constant.ImageTypeBody)
	if err != nil {
		return err
	}

	// First photo is the person, second is the garment.
	if len(bodyImages) == 0 {
		if _, err := s.imageService.StoreFromURL(ctx, mediaURL, user.Id, session.Id, constant.ImageTypeBody); err != nil {
			return err
		}
		return s.dispatch(ctx, user.PhoneNumber,
			"📸 Got your photo! Now send me a picture of the clothing item you'd like to try on.", nil)
	}

	clothing, err := s.imageService.StoreFromURL(ctx, mediaURL, user.Id, session.Id, constant.ImageTypeClothing)
	if err != nil {
		return err
	}

	personURL, err := s.imageService.ResolveURL(ctx, bodyImages[len(bodyImages)-1].StoragePath)
	if err != nil {
		return err
	}

	result, err := s.tryOn.TryOnStored(ctx, user.Id, session.Id, personURL, clothing.URL)
	if err != nil {
		return err
	}

	return s.dispatch(ctx, user.PhoneNumber,
		"✨ Here's how it looks on you! Thank you for using WhatsApp Fashion Buddy. Have a stylish day! 👗",
		[]string{result.ResultURL})
}

func (s *conversationService) Initiate(ctx context.Context, phoneNumber, name string) (*dto.InitiateConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if user == nil {
		user = &entity.User{
			Id:          uuid.New(),
			PhoneNumber: phoneNumber,
			LastActive:  now,
			CreatedAt:   now,
		}
		if name != "" {
			user.Name = &name
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return nil, err
		}
	} else {
		user.LastActive = now
		if user.Name == nil && name != "" {
			user.Name = &name
		}
		if err := uow.UserRepository().Update(ctx, user); err != nil {
			return nil, err
		}
	}

	session := entity.Session{
		Id:          uuid.New(),
		UserId:      user.Id,
		SessionType: constant.SessionTypeWelcome,
		Status:      constant.SessionStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uow.SessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	greeting := ""
	if user.Name != nil {
		greeting = " " + *user.Name
	}
	body := whatsapp.FormatMenu(fmt.Sprintf(constant.WelcomeMessage, greeting), constant.WelcomeOptions)
	if err := s.dispatch(ctx, user.PhoneNumber, body, nil); err != nil {
		return nil, err
	}

	return &dto.InitiateConversationResponse{
		Client: dto.ClientResponse{
			Id:          user.Id,
			PhoneNumber: user.PhoneNumber,
			Name:        user.Name,
			LastActive:  user.LastActive,
			CreatedAt:   user.CreatedAt,
		},
		Session: dto.SessionResponse{
			Id:          session.Id,
			UserId:      session.UserId,
			SessionType: session.SessionType,
			Status:      session.Status,
			CreatedAt:   session.CreatedAt,
			UpdatedAt:   session.UpdatedAt,
		},
	}, nil
}

func (s *conversationService) SendText(ctx context.Context, req *dto.SendTextRequest) error {
	return s.dispatch(ctx, req.To, req.Body, nil)
}

func (s *conversationService) SendMedia(ctx context.Context, req *dto.SendMediaRequest) error {
	return s.dispatch(ctx, req.To, req.Body, req.MediaURLs)
}

func (s *conversationService) touchUser(ctx context.Context, uow unitofwork.UnitOfWork, phoneNumber string) (*entity.User, error) {
	user, err := uow.UserRepository().FindByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if user == nil {
		user = &entity.User{
			Id:          uuid.New(),
			PhoneNumber: phoneNumber,
			LastActive:  now,
			CreatedAt:   now,
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	}

	user.LastActive = now
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *conversationService) currentSession(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.Session, error) {
	session, err := uow.SessionRepository().FindActiveByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	if session != nil {
		return session, nil
	}

	now := time.Now()
	session = &entity.Session{
		Id:          uuid.New(),
		UserId:      userId,
		SessionType: constant.SessionTypeNew,
		Status:      constant.SessionStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// applySessionUpdates is the only place a session changes type: the
// current one retires and a new session of the signalled type begins.
func (s *conversationService) applySessionUpdates(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, session *entity.Session, updates reasoning.SessionUpdates) error {
	if updates.IsZero() {
		return nil
	}

	if updates.SessionType != "" && updates.SessionType != session.SessionType {
		// Retire + open must land together or the user is left with no
		// active session.
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer uow.Rollback()

		session.Status = constant.SessionStatusCompleted
		session.UpdatedAt = time.Now()
		if err := uow.SessionRepository().Update(ctx, session); err != nil {
			return err
		}

		next := entity.Session{
			Id:          uuid.New(),
			UserId:      userId,
			SessionType: updates.SessionType,
			Status:      constant.SessionStatusActive,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		if updates.Status != "" {
			next.Status = updates.Status
		}
		if err := uow.SessionRepository().Create(ctx, &next); err != nil {
			return err
		}
		return uow.Commit()
	}

	if updates.Status != "" && updates.Status != session.Status {
		session.Status = updates.Status
		session.UpdatedAt = time.Now()
		return uow.SessionRepository().Update(ctx, session)
	}
	return nil
}

func (s *conversationService) dispatch(ctx context.Context, to, body string, mediaURLs []string) error {
	payload, err := json.Marshal(dto.OutboundMessage{
		To:        to,
		Body:      body,
		MediaURLs: mediaURLs,
	})
	if err != nil {
		return err
	}
	return s.publisher.Publish(ctx, payload)
}

// rewriteOptionDigit maps a bare menu digit to the intent text the option
// stood for in the current session type. Anything unmapped passes through.
func rewriteOptionDigit(sessionType, text string) string {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) != 1 {
		return text
	}
	digit, err := strconv.Atoi(trimmed)
	if err != nil || digit < 1 || digit > 9 {
		return text
	}
	if intent, ok := constant.OptionIntents[sessionType][digit]; ok {
		return intent
	}
	return text
}

func colorAnalysisReply(analysis *dto.ColorAnalysisResponse) string {
	var b strings.Builder
	b.WriteString("✨ Your Color Analysis Results ✨\n\n")
	b.WriteString(fmt.Sprintf("Skin Tone: %s\n", analysis.SkinTone))
	if analysis.Undertone != "" {
		b.WriteString(fmt.Sprintf("Undertone: %s\n", analysis.Undertone))
	}
	if len(analysis.RecommendedColors) > 0 {
		b.WriteString(fmt.Sprintf("\n🎨 Colors that suit you: %s\n", strings.Join(analysis.RecommendedColors, ", ")))
	}
	if len(analysis.AvoidColors) > 0 {
		b.WriteString(fmt.Sprintf("🚫 Colors to avoid: %s\n", strings.Join(analysis.AvoidColors, ", ")))
	}
	b.WriteString("\nWant me to find clothes in your colors? What's your budget?")
	return whatsapp.FormatMenu(b.String(), []string{
		constant.IntentBudgetLow,
		constant.IntentBudgetMid,
		constant.IntentBudgetHigh,
	})
}
