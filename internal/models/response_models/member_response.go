package response_models

import (
	"memberpay/internal/models/db_models"
)

type MemberResponse struct {
	ID           string `json:"id"`
	MembershipID string `json:"membership_id"`
	AccountType  string `json:"account_type"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	Status       string `json:"status"`
	IsSubscribed bool   `json:"is_subscribed"`
	Avatar       string `json:"avatar,omitempty"`
}

func NewMemberResponse(m *db_models.Member) MemberResponse {
	return MemberResponse{
		ID:           m.ID.String(),
		MembershipID: m.MembershipID,
		AccountType:  string(m.AccountType),
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Username:     m.Username,
		Email:        m.Email,
		PhoneNumber:  m.PhoneNumber,
		Status:       string(m.Status),
		IsSubscribed: m.IsSubscribed,
		Avatar:       m.Avatar,
	}
}

type LoginResponse struct {
	Token  string         `json:"token"`
	Member MemberResponse `json:"member"`
}
