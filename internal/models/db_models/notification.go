package db_models

import "github.com/google/uuid"

type NotificationStatus string

const (
	NotificationUnread NotificationStatus = "Unread"
	NotificationRead   NotificationStatus = "Read"
)

type Notification struct {
	BaseModel
	MemberID uuid.UUID  `gorm:"index"`
	FromID   *uuid.UUID `gorm:"index"`
	Title    string
	Body     string
	Type     string
	Link     string
	Status   NotificationStatus `gorm:"default:'Unread'"`

	Member Member  `gorm:"foreignKey:MemberID"`
	From   *Member `gorm:"foreignKey:FromID"`
}
