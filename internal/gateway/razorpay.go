package gateway

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// Order is the gateway-side reservation of an amount to collect.
type Order struct {
	ID       string
	Amount   int64 // minor currency unit (paise)
	Currency string
}

// OrderCreator is what the booking flow needs from the gateway.
type OrderCreator interface {
	CreateOrder(ctx context.Context, amountPaise int64, receipt string, notes map[string]any) (*Order, error)
}

type Razorpay struct {
	client *razorpay.Client
}

func NewRazorpay(keyID, keySecret string) *Razorpay {
	return &Razorpay{client: razorpay.NewClient(keyID, keySecret)}
}

func (g *Razorpay) CreateOrder(ctx context.Context, amountPaise int64, receipt string, notes map[string]any) (*Order, error) {
	data := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        "INR",
		"receipt":         receipt,
		"payment_capture": 1,
		"notes":           notes,
	}
	res, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay create order: %w", err)
	}
	id, _ := res["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("razorpay create order: empty order id")
	}
	out := &Order{ID: id, Amount: amountPaise, Currency: "INR"}
	if cur, ok := res["currency"].(string); ok && cur != "" {
		out.Currency = cur
	}
	if amt, ok := res["amount"].(float64); ok {
		out.Amount = int64(amt)
	}
	return out, nil
}
