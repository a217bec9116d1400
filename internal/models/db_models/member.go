package db_models

type AccountType string

const (
	AccountTypeAdministrator AccountType = "Administrator"
	AccountTypeFellow        AccountType = "Fellow"
	AccountTypeAssociate     AccountType = "Associate"
)

type MemberStatus string

const (
	MemberStatusPending      MemberStatus = "Pending"
	MemberStatusActive       MemberStatus = "Active"
	MemberStatusInactive     MemberStatus = "Inactive"
	MemberStatusUnsubscribed MemberStatus = "Unsubscribed"
)

// Member is never hard-deleted; admission and deactivation only move
// Status, and IsSubscribed is flipped by the reconciliation engine on
// the first successful subscription payment.
type Member struct {
	BaseModel
	MembershipID string      `gorm:"uniqueIndex"`
	AccountType  AccountType `gorm:"index"`
	FirstName    string
	LastName     string
	Username     string `gorm:"uniqueIndex"`
	Email        string `gorm:"uniqueIndex"`
	PhoneNumber  string
	PasswordHash string

	Status       MemberStatus `gorm:"index;default:'Pending'"`
	IsSubscribed bool         `gorm:"default:false"`

	// Profile
	Gender               string
	MaritalStatus        string
	State                string
	Address              string
	Avatar               string
	Passport             string
	Certificates         string
	PlaceOfBusiness      string
	NatureOfBusiness     string
	ProfessionalBodies   string
	InsolvencyExperience string
	RefereeEmailAddress  string

	Transactions []Transaction `gorm:"foreignKey:MemberID"`
}

func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

func (m *Member) IsAdministrator() bool {
	return m.AccountType == AccountTypeAdministrator
}
