package messages

import (
	"context"
	"time"
)

type messageSender interface {
	SendMessage(text string) error
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, text string) (string, error)
}

type Service struct {
	sender  messageSender
	handler MessageHandler
}

func NewService(sender messageSender, ledger expenseLedger) *Service {
	return &Service{
		sender:  sender,
		handler: newHandler(ledger),
	}
}

type Message struct {
	Text string
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(elapsed, err != nil)
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text)
	if err != nil {
		_ = s.sender.SendMessage("Sorry, something wrong happened...\n" + resp)
		return err
	}
	return s.sender.SendMessage(resp)
}
