package bootstrap

import (
	"context"
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"fashion-buddy-be/internal/config"
	"fashion-buddy-be/internal/controller"
	"fashion-buddy-be/internal/pkg/logger"
	"fashion-buddy-be/internal/repository/unitofwork"
	"fashion-buddy-be/internal/service"
	"fashion-buddy-be/pkg/reasoning"
	"fashion-buddy-be/pkg/reasoning/openai"
	"fashion-buddy-be/pkg/shopping"
	"fashion-buddy-be/pkg/storage"
	"fashion-buddy-be/pkg/tryon"
	"fashion-buddy-be/pkg/whatsapp"
)

const outboundTopic = "OUTBOUND_WHATSAPP_MESSAGES"

type Container struct {
	// Controllers
	WebhookController  controller.IWebhookController
	ClientController   controller.IClientController
	AnalysisController controller.IAnalysisController
	TryOnController    controller.ITryOnController
	MessageController  controller.IMessageController
	CleanupController  controller.ICleanupController

	// Background services (exposed for main.go to run)
	DispatcherService service.IDispatcherService
	ImageService      service.IImageService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. External clients
	objectStore, err := storage.NewS3Store(context.Background(), cfg.Storage.Region, cfg.Storage.Bucket)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize object store: %v", err)
	}

	gateway := reasoning.NewGateway(openai.NewOpenAIProvider(cfg.Keys.OpenAI, "", ""))
	searcher := shopping.NewSearcher(shopping.NewSerpAPIProvider(cfg.Keys.SerpAPI))
	tryOnClient := tryon.NewFashnClient(cfg.Keys.Fashn)
	sender := whatsapp.NewTwilioSender(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber)

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, outboundTopic)
	dispatcherService := service.NewDispatcherService(pubSub, outboundTopic, sender, sysLogger)

	imageService := service.NewImageService(
		uowFactory,
		objectStore,
		sysLogger,
		cfg.Images.TTL,
		cfg.Twilio.AccountSID,
		cfg.Twilio.AuthToken,
	)
	colorAnalysisService := service.NewColorAnalysisService(uowFactory, gateway, imageService, searcher)
	tryOnService := service.NewTryOnService(uowFactory, tryOnClient, imageService)
	conversationService := service.NewConversationService(
		uowFactory,
		gateway,
		imageService,
		colorAnalysisService,
		tryOnService,
		publisherService,
		sysLogger,
	)
	clientService := service.NewClientService(uowFactory, conversationService)

	// 5. Controllers
	return &Container{
		WebhookController:  controller.NewWebhookController(conversationService, sysLogger),
		ClientController:   controller.NewClientController(clientService),
		AnalysisController: controller.NewAnalysisController(colorAnalysisService),
		TryOnController:    controller.NewTryOnController(tryOnService),
		MessageController:  controller.NewMessageController(conversationService),
		CleanupController:  controller.NewCleanupController(imageService),
		DispatcherService:  dispatcherService,
		ImageService:       imageService,
		Logger:             sysLogger,
	}
}
