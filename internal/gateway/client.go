package gateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/branchpay/walletcore/pkg/clients"
)

// SecretSource hands out the decrypted gateway API key on demand, so a
// key rotation takes effect without a restart.
type SecretSource interface {
	DecryptedSecretKey(ctx context.Context) (string, error)
}

type ClientI interface {
	CreateCheckout(ctx context.Context, ownerID int, amount int64, description string) (*CheckoutSession, error)
	CheckPayment(ctx context.Context, reference string) (*PaymentStatus, error)
}

// CheckoutSession is a hosted payment page the customer is sent to.
type CheckoutSession struct {
	Reference   string `json:"reference"`
	CheckoutURL string `json:"checkoutUrl"`
	Amount      int64  `json:"amount"`
}

// PaymentStatus is the gateway's view of a payment. Amount is in minor
// units, matching the gateway wire format.
type PaymentStatus struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	OwnerID   int    `json:"ownerId"`
}

type Client struct {
	baseURL string
	secrets SecretSource
	client  clients.HTTPClientI
}

func NewClient(baseURL string, secrets SecretSource, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL: baseURL,
		secrets: secrets,
		client:  client,
	}
}

func (c *Client) authHeaders(ctx context.Context) (http.Header, error) {
	secret, err := c.secrets.DecryptedSecretKey(ctx)
	if err != nil {
		return nil, err
	}
	headers := http.Header{}
	headers.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(secret+":")))
	headers.Set("Content-Type", "application/json")
	return headers, nil
}

// NewReference mints a unique top-up reference for a checkout session.
func NewReference() string {
	return "topup_" + uuid.NewString()
}

type checkoutRequest struct {
	Reference   string `json:"reference"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description,omitempty"`
	OwnerID     int    `json:"ownerId"`
}

// CreateCheckout opens a checkout session for amount minor units.
func (c *Client) CreateCheckout(ctx context.Context, ownerID int, amount int64, description string) (*CheckoutSession, error) {
	headers, err := c.authHeaders(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(checkoutRequest{
		Reference:   NewReference(),
		Amount:      amount,
		Currency:    "PHP",
		Description: description,
		OwnerID:     ownerID,
	})
	if err != nil {
		return nil, err
	}

	status, respBody, _, err := c.client.Post(c.baseURL+"/v1/checkout_sessions", headers, body)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, fmt.Errorf("gateway returned status %d creating checkout", status)
	}

	var session CheckoutSession
	if err := json.Unmarshal(respBody, &session); err != nil {
		return nil, fmt.Errorf("failed to parse checkout response: %w", err)
	}
	return &session, nil
}

// CheckPayment polls the gateway for the state of a reference.
func (c *Client) CheckPayment(ctx context.Context, reference string) (*PaymentStatus, error) {
	headers, err := c.authHeaders(ctx)
	if err != nil {
		return nil, err
	}

	status, respBody, _, err := c.client.Get(c.baseURL+"/v1/payments/"+reference, headers)
	if err != nil {
		return nil, err
	}
	switch status {
	case http.StatusOK:
	case http.StatusNotFound:
		return &PaymentStatus{Reference: reference, Status: StatusExpired}, nil
	default:
		return nil, fmt.Errorf("gateway returned status %d checking payment", status)
	}

	var payment PaymentStatus
	if err := json.Unmarshal(respBody, &payment); err != nil {
		return nil, fmt.Errorf("failed to parse payment response: %w", err)
	}
	return &payment, nil
}
