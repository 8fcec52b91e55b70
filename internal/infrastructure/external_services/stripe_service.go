package external_services

import (
	"context"

	"github.com/mazboy1/frasa-backend/internal/domain/contract"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// StripeGateway creates card payment intents against the Stripe API.
type StripeGateway struct{}

// NewStripeGateway configures the Stripe client with the account secret.
func NewStripeGateway(secretKey string) contract.IPaymentGateway {
	stripe.Key = secretKey
	return &StripeGateway{}
}

// CreatePaymentIntent creates a USD card payment intent and returns the
// client secret the frontend confirms against.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amountCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
