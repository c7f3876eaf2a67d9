package service

import (
	"context"
	"encoding/json"
	"log"

	"subhub-be/internal/dto"
	"subhub-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IReceiptService interface {
	Consume(ctx context.Context) error
}

// receiptService listens for recorded payments and emails a receipt. Receipts
// are best effort: a mail failure never affects the billing run that produced
// the payment.
type receiptService struct {
	pubSub       *gochannel.GoChannel
	emailService mailer.IEmailService
	enabled      bool
}

func NewReceiptService(pubSub *gochannel.GoChannel, emailService mailer.IEmailService, enabled bool) IReceiptService {
	return &receiptService{
		pubSub:       pubSub,
		emailService: emailService,
		enabled:      enabled,
	}
}

func (s *receiptService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, PaymentRecordedTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(msg)
		}
	}()

	return nil
}

func (s *receiptService) processMessage(msg *message.Message) {
	var payload dto.PaymentRecordedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal receipt message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if !s.enabled {
		msg.Ack()
		return
	}

	err := s.emailService.SendPaymentReceipt(
		payload.CustomerEmail,
		payload.CustomerName,
		payload.PlanName,
		payload.Amount,
		payload.PaymentDate,
	)
	if err != nil {
		log.Printf("[ERROR] Failed to send receipt for payment %s: %v", payload.PaymentId, err)
	}

	msg.Ack()
}
