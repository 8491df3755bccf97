package worker

import (
	"context"
	"fmt"
	"log"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/nasir9967/skillbazaar/internal/notification/events"
	"github.com/nasir9967/skillbazaar/internal/notification/notifier"
	"github.com/nasir9967/skillbazaar/pkg/mq"
)

type Worker struct {
	cons     *mq.Consumer
	notifier notifier.Notifier
}

func New(cons *mq.Consumer, n notifier.Notifier) *Worker {
	return &Worker{cons: cons, notifier: n}
}

func (w *Worker) Run(ctx context.Context) error {
	msgs, err := w.cons.Deliveries(ctx)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := w.handle(d); err != nil {
				log.Printf("[notify] handle key=%s err=%v -> Nack", d.RoutingKey, err)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (w *Worker) handle(d amqp.Delivery) error {
	switch d.RoutingKey {
	case events.RKBookingCreated:
		ev, err := events.Unmarshal[events.BookingCreated](d.Body)
		if err != nil {
			return err
		}
		return w.notifier.Notify("Booking Created",
			fmt.Sprintf("Booking %s for service %s (%s, total %d).", ev.BookingID, ev.SkillID, ev.Method, ev.Total))

	case events.RKBookingConfirmed:
		ev, err := events.Unmarshal[events.BookingSimple](d.Body)
		if err != nil {
			return err
		}
		return w.notifier.Notify("Booking Confirmed",
			fmt.Sprintf("Booking %s has been confirmed.", ev.BookingID))

	case events.RKBookingCompleted:
		ev, err := events.Unmarshal[events.BookingSimple](d.Body)
		if err != nil {
			return err
		}
		return w.notifier.Notify("Booking Completed",
			fmt.Sprintf("Booking %s has been completed.", ev.BookingID))

	case events.RKBookingCancelled:
		ev, err := events.Unmarshal[events.BookingSimple](d.Body)
		if err != nil {
			return err
		}
		msg := fmt.Sprintf("Booking %s has been cancelled.", ev.BookingID)
		if ev.CancelledBy != "" {
			msg = fmt.Sprintf("%s Cancelled by %s.", msg, ev.CancelledBy)
		}
		return w.notifier.Notify("Booking Cancelled", msg)

	case events.RKPaymentPaid:
		ev, err := events.Unmarshal[events.PaymentPaid](d.Body)
		if err != nil {
			return err
		}
		return w.notifier.Notify("Payment Received",
			fmt.Sprintf("Booking %s paid %d %s (payment=%s).", ev.BookingID, ev.Amount, strings.ToUpper(ev.Currency), ev.PaymentID))

	case events.RKPaymentFailed:
		ev, err := events.Unmarshal[events.PaymentFailed](d.Body)
		if err != nil {
			return err
		}
		msg := fmt.Sprintf("Payment failed for booking %s.", ev.BookingID)
		if ev.Reason != "" {
			msg = fmt.Sprintf("%s Reason: %s", msg, ev.Reason)
		}
		return w.notifier.Notify("Payment Failed", msg)

	default:
		log.Printf("[notify] skip unknown key=%s", d.RoutingKey)
	}
	return nil
}
