package contract

import "context"

// IPaymentGateway is the external payment provider. It creates a payment
// intent for an amount in the smallest currency unit and returns the
// client-usable secret.
type IPaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64) (string, error)
}
