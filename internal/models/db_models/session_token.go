package db_models

import "github.com/google/uuid"

// SessionToken pins the one live token id per member and purpose.
// Issuing a new token upserts this row, so the replaced id stops
// validating immediately (last writer wins under concurrent logins).
type SessionToken struct {
	BaseModel
	MemberID uuid.UUID `gorm:"uniqueIndex:idx_session_member_purpose"`
	Purpose  string    `gorm:"uniqueIndex:idx_session_member_purpose"`
	TokenID  uuid.UUID `gorm:"index"`
}

const TokenPurposeAPI = "api"
