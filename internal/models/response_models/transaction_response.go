package response_models

import (
	"memberpay/internal/models/db_models"
)

type TransactionResponse struct {
	ID             string  `json:"id"`
	MemberID       string  `json:"member_id"`
	DueID          *string `json:"due_id,omitempty"`
	SubscriptionID *string `json:"subscription_id,omitempty"`
	Amount         float64 `json:"amount"`
	RefID          string  `json:"ref_id"`
	Status         string  `json:"status"`
	Channel        string  `json:"channel"`
	PaidAt         string  `json:"paid_at"`
	Receipt        string  `json:"receipt,omitempty"`
	CreatedAt      int64   `json:"created_at"`
}

func NewTransactionResponse(t *db_models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:        t.ID.String(),
		MemberID:  t.MemberID.String(),
		Amount:    t.Amount,
		RefID:     t.RefID,
		Status:    string(t.Status),
		Channel:   t.Channel,
		PaidAt:    t.PaidAt,
		Receipt:   t.Receipt,
		CreatedAt: t.CreatedAt,
	}
	if t.DueID != nil {
		id := t.DueID.String()
		resp.DueID = &id
	}
	if t.SubscriptionID != nil {
		id := t.SubscriptionID.String()
		resp.SubscriptionID = &id
	}
	return resp
}

func NewTransactionList(txns []db_models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for i := range txns {
		out = append(out, NewTransactionResponse(&txns[i]))
	}
	return out
}
