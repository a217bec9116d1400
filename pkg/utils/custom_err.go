package utils

import "errors"

var (
	// Not-found family: the referenced entity is absent.
	ErrMemberNotFound       = errors.New("member not found")
	ErrDueNotFound          = errors.New("due not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrResetCodeNotFound    = errors.New("reset code not found")

	// Business-rule family.
	ErrDuplicateReference  = errors.New("gateway reference already recorded")
	ErrResetCodeExpired    = errors.New("reset code expired")
	ErrIncorrectPassword   = errors.New("incorrect password")
	ErrTokenRevoked        = errors.New("session token revoked")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrAccountPending      = errors.New("account pending review")
	ErrAccountDeactivated  = errors.New("account deactivated")
	ErrInvalidStatusTarget = errors.New("invalid status transition target")
	ErrDueInactive         = errors.New("due is not active")
	ErrNotAnAdministrator  = errors.New("not an administrator")
	ErrNotAMember          = errors.New("not a member")

	// Upstream payment provider unreachable or rejected the reference.
	// Never retried by this service.
	ErrGateway = errors.New("payment gateway error")

	// Ownership / role mismatch.
	ErrNotOwner = errors.New("resource not owned by caller")

	ErrDatabaseError = errors.New("database error")
)
