package dto

import (
	"time"

	"voyage/internal/domains/payment/model"
	"voyage/shared"
	"voyage/shared/constant"
	gDto "voyage/shared/dto"
	gModel "voyage/shared/model"
	"voyage/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	BookingID     string `json:"booking_id"     validate:"required,uuid"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=credit_card debit_card paypal"`
	TransactionID string `json:"transaction_id" validate:"required,max=100"`
	CardLast4     string `json:"card_last4"     validate:"omitempty,len=4,numeric"`
	CardBrand     string `json:"card_brand"     validate:"omitempty,max=20"`
}

// ToModel opens a pending payment for the amount frozen on the booking.
func (c *CreatePaymentRequest) ToModel(user string, amount decimal.Decimal) model.Payment {
	return model.Payment{
		ID:            uuid.NewString(),
		BookingID:     c.BookingID,
		Amount:        amount,
		PaymentMethod: c.PaymentMethod,
		TransactionID: c.TransactionID,
		Status:        model.StatusPending,
		CardLast4:     c.CardLast4,
		CardBrand:     c.CardBrand,
		Metadata:      gModel.NewMetadata(user, timezone.Now()),
	}
}

type PaymentResponse struct {
	ID            string     `json:"id"`
	BookingID     string     `json:"booking_id"`
	Amount        string     `json:"amount"`
	PaymentMethod string     `json:"payment_method"`
	TransactionID string     `json:"transaction_id"`
	Status        string     `json:"status"`
	CardLast4     string     `json:"card_last4"`
	CardBrand     string     `json:"card_brand"`
	CompletedAt   *time.Time `json:"completed_at"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Amount = model.Amount.StringFixed(constant.MoneyDecimals)
	r.PaymentMethod = model.PaymentMethod
	r.TransactionID = model.TransactionID
	r.Status = model.Status
	r.CardLast4 = model.CardLast4
	r.CardBrand = model.CardBrand
	r.CompletedAt = model.CompletedAt
	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
