package services

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"memberpay/internal/clients"
	"memberpay/internal/models/db_models"
	"memberpay/internal/models/request_models"
	"memberpay/internal/repositories"
	"memberpay/pkg/utils"
)

// IdentityServiceInterface owns member records and their admission
// lifecycle. Status moves only through TransitionStatus; notification
// and mail emission on activation belong to the caller.
type IdentityServiceInterface interface {
	Register(ctx context.Context, req request_models.RegisterRequest) (*db_models.Member, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Member, error)
	FindByLoginKey(ctx context.Context, key string) (*db_models.Member, error)

	// TransitionStatus moves the member into Active or Inactive.
	// Activating an already-Active member is a no-op. The returned
	// flag reports whether this call was the member's first
	// activation, so the caller can send the welcome exactly once.
	TransitionStatus(ctx context.Context, id uuid.UUID, target db_models.MemberStatus) (*db_models.Member, bool, error)

	VerifyCredential(member *db_models.Member, plaintext string) bool

	UpdateProfile(ctx context.Context, memberID uuid.UUID, req request_models.UpdateProfileRequest) error
	ChangePassword(ctx context.Context, memberID uuid.UUID, oldPassword, newPassword string) error
	UploadAvatar(ctx context.Context, memberID uuid.UUID, content []byte, filename string) (string, error)
}

type identityService struct {
	members  repositories.MemberRepository
	storage  clients.FileStorage
	notifier NotificationServiceInterface
	mailer   IMailService
	logger   *logrus.Logger
	appName  string
	idPrefix string
	folder   string
}

func NewIdentityService(
	members repositories.MemberRepository,
	storage clients.FileStorage,
	notifier NotificationServiceInterface,
	mailer IMailService,
	logger *logrus.Logger,
	appName, idPrefix, folder string,
) IdentityServiceInterface {
	return &identityService{
		members:  members,
		storage:  storage,
		notifier: notifier,
		mailer:   mailer,
		logger:   logger,
		appName:  appName,
		idPrefix: idPrefix,
		folder:   folder,
	}
}

func (s *identityService) Register(ctx context.Context, req request_models.RegisterRequest) (*db_models.Member, string, error) {
	if existing, err := s.members.FindByEmail(ctx, req.Email); err != nil {
		return nil, "", utils.ErrDatabaseError
	} else if existing != nil {
		return nil, "", utils.ErrEmailAlreadyExists
	}
	if existing, err := s.members.FindByUsername(ctx, req.Username); err != nil {
		return nil, "", utils.ErrDatabaseError
	} else if existing != nil {
		return nil, "", utils.ErrUsernameTaken
	}

	count, err := s.members.CountMembers(ctx)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	membershipID := fmt.Sprintf("%s%03d", s.idPrefix, count+1)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	member := &db_models.Member{
		MembershipID:         membershipID,
		AccountType:          db_models.AccountType(req.AccountType),
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Username:             req.Username,
		Email:                req.Email,
		PhoneNumber:          req.PhoneNumber,
		PasswordHash:         hash,
		Status:               db_models.MemberStatusPending,
		Gender:               req.Gender,
		MaritalStatus:        req.MaritalStatus,
		State:                req.State,
		Address:              req.Address,
		PlaceOfBusiness:      req.PlaceOfBusiness,
		NatureOfBusiness:     req.NatureOfBusiness,
		ProfessionalBodies:   req.ProfessionalBodies,
		InsolvencyExperience: req.InsolvencyExp,
		RefereeEmailAddress:  req.RefereeEmailAddress,
	}

	if err := s.members.Insert(ctx, member); err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	if err := s.mailer.SendRegistrationMail(member, req.Password); err != nil {
		s.logger.WithError(err).WithField("email", member.Email).
			Warn("registration mail failed")
	}

	return member, membershipID, nil
}

func (s *identityService) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Member, error) {
	member, err := s.members.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}
	return member, nil
}

func (s *identityService) FindByLoginKey(ctx context.Context, key string) (*db_models.Member, error) {
	member, err := s.members.FindByLoginKey(ctx, key)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}
	return member, nil
}

func (s *identityService) TransitionStatus(ctx context.Context, id uuid.UUID, target db_models.MemberStatus) (*db_models.Member, bool, error) {
	if target != db_models.MemberStatusActive && target != db_models.MemberStatusInactive {
		return nil, false, utils.ErrInvalidStatusTarget
	}

	member, err := s.members.FindByID(ctx, id)
	if err != nil {
		return nil, false, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, false, utils.ErrMemberNotFound
	}

	firstActivation := target == db_models.MemberStatusActive &&
		member.Status != db_models.MemberStatusActive &&
		!member.IsSubscribed

	if member.Status == target {
		return member, false, nil
	}

	if err := s.members.UpdateStatus(ctx, id, target); err != nil {
		return nil, false, utils.ErrDatabaseError
	}
	member.Status = target

	return member, firstActivation, nil
}

func (s *identityService) VerifyCredential(member *db_models.Member, plaintext string) bool {
	return utils.ComparePasswords(member.PasswordHash, plaintext) == nil
}

func (s *identityService) UpdateProfile(ctx context.Context, memberID uuid.UUID, req request_models.UpdateProfileRequest) error {
	member, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if member == nil {
		return utils.ErrMemberNotFound
	}

	if req.Email != nil && *req.Email != member.Email {
		existing, err := s.members.FindByEmail(ctx, *req.Email)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if existing != nil {
			return utils.ErrEmailAlreadyExists
		}
		member.Email = *req.Email
	}

	applyString(&member.FirstName, req.FirstName)
	applyString(&member.LastName, req.LastName)
	applyString(&member.PhoneNumber, req.PhoneNumber)
	applyString(&member.Gender, req.Gender)
	applyString(&member.MaritalStatus, req.MaritalStatus)
	applyString(&member.State, req.State)
	applyString(&member.Address, req.Address)
	applyString(&member.PlaceOfBusiness, req.PlaceOfBusiness)
	applyString(&member.NatureOfBusiness, req.NatureOfBusiness)
	applyString(&member.ProfessionalBodies, req.ProfessionalBodies)
	applyString(&member.InsolvencyExperience, req.InsolvencyExp)
	applyString(&member.RefereeEmailAddress, req.RefereeEmailAddress)

	if err := s.members.Save(ctx, member); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func (s *identityService) ChangePassword(ctx context.Context, memberID uuid.UUID, oldPassword, newPassword string) error {
	member, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if member == nil {
		return utils.ErrMemberNotFound
	}

	if !s.VerifyCredential(member, oldPassword) {
		return utils.ErrIncorrectPassword
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if err := s.members.UpdatePassword(ctx, memberID, hash); err != nil {
		return utils.ErrDatabaseError
	}

	s.notifier.Emit(ctx, memberID, s.appName,
		fmt.Sprintf("Your %s password changed successfully.", s.appName),
		"Password Changed", nil)
	return nil
}

func (s *identityService) UploadAvatar(ctx context.Context, memberID uuid.UUID, content []byte, filename string) (string, error) {
	member, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if member == nil {
		return "", utils.ErrMemberNotFound
	}

	if member.Avatar != "" {
		// Best-effort cleanup of the replaced object.
		publicID := strings.TrimSuffix(path.Base(member.Avatar), path.Ext(member.Avatar))
		if err := s.storage.Destroy(ctx, s.folder+"/"+publicID); err != nil {
			s.logger.WithError(err).Warn("failed to destroy previous avatar")
		}
	}

	url, err := s.storage.Upload(ctx, content, s.folder, filename)
	if err != nil {
		return "", err
	}

	member.Avatar = url
	if err := s.members.Save(ctx, member); err != nil {
		return "", utils.ErrDatabaseError
	}
	return url, nil
}
