package gateway

// Webhook event types the payment gateway sends.
const (
	EventPaymentPaid   = "payment.paid"
	EventPaymentFailed = "payment.failed"
)

// Payment statuses the gateway reports when polled.
const (
	StatusPaid    = "paid"
	StatusPending = "pending"
	StatusFailed  = "failed"
	StatusExpired = "expired"
)

// PaymentSucceeded is a confirmed payment, from the webhook or from a
// reconciler poll.
type PaymentSucceeded struct {
	Reference string
	Amount    int64
	OwnerID   int
}

type PaymentFailed struct {
	Reference string
}
