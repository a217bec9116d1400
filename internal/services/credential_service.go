package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"memberpay/internal/models/db_models"
	"memberpay/internal/repositories"
	"memberpay/pkg/utils"
)

const resetCodeTTL = time.Hour

// CredentialServiceInterface issues and validates single-use session
// tokens and password-reset codes.
type CredentialServiceInterface interface {
	Login(ctx context.Context, loginKey, password string) (string, *db_models.Member, error)
	AdminLogin(ctx context.Context, email, password string) (string, *db_models.Member, error)

	// IssueSessionToken rotates the member's live session token: any
	// previously issued token stops validating.
	IssueSessionToken(ctx context.Context, member *db_models.Member) (string, error)
	// ValidateSessionToken checks the signed claims against the
	// persisted token id for the member.
	ValidateSessionToken(ctx context.Context, tokenString string) (*utils.Claims, error)

	IssueResetCode(ctx context.Context, email string) error
	ConsumeResetCode(ctx context.Context, code, newPassword string) error
}

type credentialService struct {
	members repositories.MemberRepository
	tokens  repositories.SessionTokenRepository
	codes   repositories.ResetCodeRepository
	mailer  IMailService
	logger  *logrus.Logger
	now     func() time.Time
}

func NewCredentialService(
	members repositories.MemberRepository,
	tokens repositories.SessionTokenRepository,
	codes repositories.ResetCodeRepository,
	mailer IMailService,
	logger *logrus.Logger,
) CredentialServiceInterface {
	return &credentialService{
		members: members,
		tokens:  tokens,
		codes:   codes,
		mailer:  mailer,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *credentialService) Login(ctx context.Context, loginKey, password string) (string, *db_models.Member, error) {
	member, err := s.members.FindByLoginKey(ctx, loginKey)
	if err != nil {
		return "", nil, utils.ErrDatabaseError
	}
	if member == nil {
		return "", nil, utils.ErrMemberNotFound
	}
	if utils.ComparePasswords(member.PasswordHash, password) != nil {
		return "", nil, utils.ErrIncorrectPassword
	}

	switch member.Status {
	case db_models.MemberStatusInactive:
		return "", nil, utils.ErrAccountDeactivated
	case db_models.MemberStatusPending:
		return "", nil, utils.ErrAccountPending
	}
	if member.IsAdministrator() {
		return "", nil, utils.ErrNotAMember
	}

	token, err := s.IssueSessionToken(ctx, member)
	if err != nil {
		return "", nil, err
	}
	return token, member, nil
}

func (s *credentialService) AdminLogin(ctx context.Context, email, password string) (string, *db_models.Member, error) {
	member, err := s.members.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, utils.ErrDatabaseError
	}
	if member == nil {
		return "", nil, utils.ErrMemberNotFound
	}
	if utils.ComparePasswords(member.PasswordHash, password) != nil {
		return "", nil, utils.ErrIncorrectPassword
	}
	if member.Status == db_models.MemberStatusInactive {
		return "", nil, utils.ErrAccountDeactivated
	}
	if !member.IsAdministrator() {
		return "", nil, utils.ErrNotAnAdministrator
	}

	token, err := s.IssueSessionToken(ctx, member)
	if err != nil {
		return "", nil, err
	}
	return token, member, nil
}

func (s *credentialService) IssueSessionToken(ctx context.Context, member *db_models.Member) (string, error) {
	tokenID := uuid.New()
	if err := s.tokens.Rotate(ctx, member.ID, db_models.TokenPurposeAPI, tokenID); err != nil {
		return "", utils.ErrDatabaseError
	}
	token, err := utils.CreateSessionToken(member.ID, string(member.AccountType), tokenID)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *credentialService) ValidateSessionToken(ctx context.Context, tokenString string) (*utils.Claims, error) {
	claims, err := utils.ValidateSessionToken(tokenString)
	if err != nil {
		return nil, err
	}

	memberID, err := uuid.Parse(claims.MemberID)
	if err != nil {
		return nil, utils.ErrMemberNotFound
	}
	tokenID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, utils.ErrMemberNotFound
	}

	current, err := s.tokens.CurrentTokenID(ctx, memberID, db_models.TokenPurposeAPI)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if current == uuid.Nil || current != tokenID {
		// Rotated away by a later login.
		return nil, utils.ErrTokenRevoked
	}
	return claims, nil
}

func (s *credentialService) IssueResetCode(ctx context.Context, email string) error {
	member, err := s.members.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if member == nil {
		return utils.ErrMemberNotFound
	}

	code := &db_models.ResetCode{
		Email: email,
		Code:  utils.GenerateResetCode(),
	}
	if err := s.codes.Replace(ctx, code); err != nil {
		return utils.ErrDatabaseError
	}

	if err := s.mailer.SendResetCodeMail(email, member.FullName(), code.Code); err != nil {
		s.logger.WithError(err).WithField("email", email).Warn("reset code mail failed")
	}
	return nil
}

func (s *credentialService) ConsumeResetCode(ctx context.Context, code, newPassword string) error {
	rc, err := s.codes.FindByCode(ctx, code)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if rc == nil {
		return utils.ErrResetCodeNotFound
	}

	if s.now().Unix()-rc.CreatedAt > int64(resetCodeTTL.Seconds()) {
		if err := s.codes.Delete(ctx, rc.ID); err != nil {
			s.logger.WithError(err).Warn("failed to delete expired reset code")
		}
		return utils.ErrResetCodeExpired
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if err := s.members.UpdatePasswordByEmail(ctx, rc.Email, hash); err != nil {
		return utils.ErrDatabaseError
	}
	if err := s.codes.Delete(ctx, rc.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
