package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// StripeGateway issues and reads PaymentIntents through the Stripe API.
type StripeGateway struct {
	client paymentintent.Client
}

// NewStripeGateway builds a gateway bound to key. backend may be nil to use the
// default API backend.
func NewStripeGateway(key string, backend stripe.Backend) *StripeGateway {
	if backend == nil {
		backend = stripe.GetBackend(stripe.APIBackend)
	}
	return &StripeGateway{client: paymentintent.Client{B: backend, Key: key}}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, params CreateIntentParams) (*Intent, error) {
	p := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(params.Amount),
		Currency: stripe.String(params.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	p.Context = ctx
	for k, v := range params.Metadata {
		p.AddMetadata(k, v)
	}
	if params.IdempotencyKey != "" {
		p.SetIdempotencyKey(params.IdempotencyKey)
	}

	pi, err := g.client.New(p)
	if err != nil {
		return nil, fmt.Errorf("stripe: create payment intent: %w", err)
	}
	intent := fromStripe(pi)
	if err := intent.Validate(); err != nil {
		return nil, err
	}
	return intent, nil
}

func (g *StripeGateway) GetIntent(ctx context.Context, id string) (*Intent, error) {
	p := &stripe.PaymentIntentParams{}
	p.Context = ctx

	pi, err := g.client.Get(id, p)
	if err != nil {
		return nil, mapStripeError(id, err)
	}
	intent := fromStripe(pi)
	if err := intent.Validate(); err != nil {
		return nil, err
	}
	return intent, nil
}

func fromStripe(pi *stripe.PaymentIntent) *Intent {
	if pi == nil {
		return nil
	}
	metadata := pi.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}
	return &Intent{
		ID:           pi.ID,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       IntentStatus(pi.Status),
		ClientSecret: pi.ClientSecret,
		Metadata:     metadata,
	}
}

func mapStripeError(id string, err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.Code == stripe.ErrorCodeResourceMissing || stripeErr.HTTPStatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s", ErrIntentNotFound, id)
		}
	}
	return fmt.Errorf("stripe: retrieve payment intent %s: %w", id, err)
}
