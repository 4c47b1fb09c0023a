package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"fashion-buddy-be/internal/dto"
	"fashion-buddy-be/internal/pkg/logger"
	"fashion-buddy-be/pkg/whatsapp"
)

// IDispatcherService drains the outbound message topic and delivers each
// message over the WhatsApp transport. Delivery failures are logged and
// the message is dropped: the webhook has already acked, so there is no
// caller left to report to.
type IDispatcherService interface {
	Consume(ctx context.Context) error
}

type dispatcherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	sender    whatsapp.Sender
	log       logger.ILogger
}

func NewDispatcherService(
	pubSub *gochannel.GoChannel,
	topicName string,
	sender whatsapp.Sender,
	log logger.ILogger,
) IDispatcherService {
	return &dispatcherService{
		pubSub:    pubSub,
		topicName: topicName,
		sender:    sender,
		log:       log,
	}
}

func (ds *dispatcherService) Consume(ctx context.Context) error {
	messages, err := ds.pubSub.Subscribe(ctx, ds.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ds.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (ds *dispatcherService) processMessage(ctx context.Context, msg *message.Message) {
	var outbound dto.OutboundMessage
	if err := json.Unmarshal(msg.Payload, &outbound); err != nil {
		ds.log.Error("dispatcher", "Failed to unmarshal outbound message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed, retrying cannot help
		return
	}

	var err error
	if len(outbound.MediaURLs) > 0 {
		err = ds.sender.SendMedia(ctx, outbound.To, outbound.Body, outbound.MediaURLs)
	} else {
		err = ds.sender.SendText(ctx, outbound.To, outbound.Body)
	}
	if err != nil {
		ds.log.Error("dispatcher", "Failed to deliver outbound message", map[string]interface{}{
			"to":    outbound.To,
			"error": err.Error(),
		})
	}
	msg.Ack()
}
