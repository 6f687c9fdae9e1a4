package model

import (
	"slices"
	"time"

	"voyage/shared/constant"
	"voyage/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldTransactionID = "transaction_id"
	FieldStatus        = "status"
	FieldCompletedAt   = "completed_at"

	ConstraintTransactionID = "payments_transaction_id_key"
	ConstraintBookingID     = "payments_booking_id_key"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusRefunded  = "refunded"
)

const (
	MethodCreditCard = "credit_card"
	MethodDebitCard  = "debit_card"
	MethodPaypal     = "paypal"
)

const (
	EventCreated   = "payment.created"
	EventCompleted = "payment.completed"
	EventFailed    = "payment.failed"
	EventRefunded  = "payment.refunded"
)

var transitions = map[string][]string{
	StatusPending:   {StatusCompleted, StatusFailed},
	StatusCompleted: {StatusRefunded},
}

type Payment struct {
	ID            string          `db:"id"`
	BookingID     string          `db:"booking_id"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentMethod string          `db:"payment_method"`
	TransactionID string          `db:"transaction_id"`
	Status        string          `db:"status"`
	CardLast4     string          `db:"card_last4"`
	CardBrand     string          `db:"card_brand"`
	CompletedAt   *time.Time      `db:"completed_at"`
	model.Metadata
}

func (Payment) GetDefaultOrder() string {
	return "payments.created_at DESC"
}

func (p Payment) CanTransitionTo(next string) bool {
	return slices.Contains(transitions[p.Status], next)
}

type Event struct {
	Type          string    `json:"type"`
	PaymentID     string    `json:"payment_id"`
	BookingID     string    `json:"booking_id"`
	TransactionID string    `json:"transaction_id"`
	Amount        string    `json:"amount"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func (p Payment) ToEvent(eventType string, occurredAt time.Time) Event {
	return Event{
		Type:          eventType,
		PaymentID:     p.ID,
		BookingID:     p.BookingID,
		TransactionID: p.TransactionID,
		Amount:        p.Amount.StringFixed(constant.MoneyDecimals),
		Status:        p.Status,
		OccurredAt:    occurredAt,
	}
}
