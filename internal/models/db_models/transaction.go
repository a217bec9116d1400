package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending TransactionStatus = "pending"
	TxnStatusSuccess TransactionStatus = "success"
	TxnStatusFailed  TransactionStatus = "failed"
)

// ManualPaymentRef is the sentinel ref_id carried by transactions
// entered from an uploaded receipt. The partial unique index below
// excludes it, so any number of manual payments may coexist while a
// gateway reference can be recorded at most once.
const ManualPaymentRef = "manual payment"

// Transaction records one payment attempt against exactly one of a
// Due or a Subscription. Rows are never deleted; admin review is the
// only status mutation.
type Transaction struct {
	BaseModel
	MemberID       uuid.UUID  `gorm:"index"`
	DueID          *uuid.UUID `gorm:"index"`
	SubscriptionID *uuid.UUID `gorm:"index"`

	Amount  float64
	RefID   string            `gorm:"index:idx_transactions_ref,unique,where:ref_id <> 'manual payment'"`
	Status  TransactionStatus `gorm:"index"`
	Channel string
	PaidAt  string
	IP      string
	Receipt string

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Member       Member        `gorm:"foreignKey:MemberID"`
	Due          *Due          `gorm:"foreignKey:DueID"`
	Subscription *Subscription `gorm:"foreignKey:SubscriptionID"`
}

// PaymentTarget is the tagged union behind the Due/Subscription
// exclusivity: a transaction references exactly one of the two.
type PaymentTarget struct {
	dueID          *uuid.UUID
	subscriptionID *uuid.UUID
}

func DueTarget(id uuid.UUID) PaymentTarget {
	return PaymentTarget{dueID: &id}
}

func SubscriptionTarget(id uuid.UUID) PaymentTarget {
	return PaymentTarget{subscriptionID: &id}
}

func (t PaymentTarget) DueID() *uuid.UUID          { return t.dueID }
func (t PaymentTarget) SubscriptionID() *uuid.UUID { return t.subscriptionID }

func (t PaymentTarget) IsSubscription() bool { return t.subscriptionID != nil }
