package email

import (
	"context"
	"fmt"

	"github.com/avykhor/airport-api/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

// Send delivers an order confirmation to the user. This is a stand-in
// for a real mail gateway; it prints what would be sent.
func (s *Sender) Send(ctx context.Context, event kafka.OrderEvent) error {
	fmt.Printf("notify user %d: order %s (%s) with %d ticket(s)\n",
		event.UserID, event.Reference, event.Type, len(event.Tickets))
	return nil
}
