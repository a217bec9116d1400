package services

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memberpay/internal/models/db_models"
	"memberpay/pkg/utils"
)

type credentialFixture struct {
	service CredentialServiceInterface
	members *fakeMemberRepo
	tokens  *fakeSessionTokenRepo
	codes   *fakeResetCodeRepo
	mailer  *fakeMailer
}

func newCredentialFixture(t *testing.T) *credentialFixture {
	t.Setenv("JWT_SECRET", "credential-test-secret")

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	members := newFakeMemberRepo()
	tokens := newFakeSessionTokenRepo()
	codes := newFakeResetCodeRepo()
	mailer := &fakeMailer{}

	return &credentialFixture{
		service: NewCredentialService(members, tokens, codes, mailer, logger),
		members: members,
		tokens:  tokens,
		codes:   codes,
		mailer:  mailer,
	}
}

func (f *credentialFixture) addMember(t *testing.T, accountType db_models.AccountType, status db_models.MemberStatus, password string) *db_models.Member {
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	member := &db_models.Member{
		AccountType:  accountType,
		FirstName:    "Ngozi",
		LastName:     "Eze",
		Username:     "ngozi",
		Email:        "ngozi@example.com",
		PasswordHash: hash,
		Status:       status,
	}
	require.NoError(t, f.members.Insert(context.Background(), member))
	return member
}

func TestLogin_ByUsernameAndEmail(t *testing.T) {
	f := newCredentialFixture(t)
	f.addMember(t, db_models.AccountTypeFellow, db_models.MemberStatusActive, "password123")

	for _, key := range []string{"ngozi", "ngozi@example.com"} {
		token, member, err := f.service.Login(context.Background(), key, "password123")
		require.NoError(t, err, "login key %q", key)
		assert.NotEmpty(t, token)
		assert.Equal(t, "ngozi", member.Username)
	}
}

func TestLogin_Failures(t *testing.T) {
	f := newCredentialFixture(t)
	f.addMember(t, db_models.AccountTypeFellow, db_models.MemberStatusActive, "password123")

	tests := []struct {
		name     string
		key      string
		password string
		wantErr  error
	}{
		{"unknown member", "nobody", "password123", utils.ErrMemberNotFound},
		{"wrong password", "ngozi", "wrong-password", utils.ErrIncorrectPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := f.service.Login(context.Background(), tt.key, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLogin_StatusGates(t *testing.T) {
	tests := []struct {
		name    string
		status  db_models.MemberStatus
		wantErr error
	}{
		{"pending member", db_models.MemberStatusPending, utils.ErrAccountPending},
		{"deactivated member", db_models.MemberStatusInactive, utils.ErrAccountDeactivated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCredentialFixture(t)
			f.addMember(t, db_models.AccountTypeFellow, tt.status, "password123")

			_, _, err := f.service.Login(context.Background(), "ngozi", "password123")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLogin_RejectsAdministratorOnMemberEndpoint(t *testing.T) {
	f := newCredentialFixture(t)
	f.addMember(t, db_models.AccountTypeAdministrator, db_models.MemberStatusActive, "password123")

	_, _, err := f.service.Login(context.Background(), "ngozi", "password123")
	assert.ErrorIs(t, err, utils.ErrNotAMember)
}

func TestAdminLogin_RequiresAdministrator(t *testing.T) {
	f := newCredentialFixture(t)
	f.addMember(t, db_models.AccountTypeFellow, db_models.MemberStatusActive, "password123")

	_, _, err := f.service.AdminLogin(context.Background(), "ngozi@example.com", "password123")
	assert.ErrorIs(t, err, utils.ErrNotAnAdministrator)
}

func TestAdminLogin_Success(t *testing.T) {
	f := newCredentialFixture(t)
	f.addMember(t, db_models.AccountTypeAdministrator, db_models.MemberStatusActive, "password123")

	token, member, err := f.service.AdminLogin(context.Background(), "ngozi@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, member.IsAdministrator())
}

func TestSessionToken_RotationInvalidatesOlderToken(t *testing.T) {
	f := newCredentialFixture(t)
	f.addMember(t, db_models.AccountTypeFellow, db_models.MemberStatusActive, "password123")

	firstToken, _, err := f.service.Login(context.Background(), "ngozi", "password123")
	require.NoError(t, err)

	_, err = f.service.ValidateSessionToken(context.Background(), firstToken)
	require.NoError(t, err)

	secondToken, _, err := f.service.Login(context.Background(), "ngozi", "password123")
	require.NoError(t, err)

	_, err = f.service.ValidateSessionToken(context.Background(), firstToken)
	assert.ErrorIs(t, err, utils.ErrTokenRevoked, "token issued before the rotation must stop validating")

	_, err = f.service.ValidateSessionToken(context.Background(), secondToken)
	assert.NoError(t, err)
}

func TestIssueResetCode_ReplacesLiveCode(t *testing.T) {
	f := newCredentialFixture(t)
	f.addMember(t, db_models.AccountTypeFellow, db_models.MemberStatusActive, "password123")

	require.NoError(t, f.service.IssueResetCode(context.Background(), "ngozi@example.com"))
	firstCode := f.mailer.lastResetCode
	require.NoError(t, f.service.IssueResetCode(context.Background(), "ngozi@example.com"))

	assert.Equal(t, 1, f.codes.liveCount("ngozi@example.com"))
	assert.Equal(t, 2, f.mailer.resetCodeMails)

	// The superseded code is gone.
	if firstCode != f.mailer.lastResetCode {
		err := f.service.ConsumeResetCode(context.Background(), firstCode, "newpassword1")
		assert.ErrorIs(t, err, utils.ErrResetCodeNotFound)
	}
}

func TestIssueResetCode_UnknownEmail(t *testing.T) {
	f := newCredentialFixture(t)

	err := f.service.IssueResetCode(context.Background(), "stranger@example.com")
	assert.ErrorIs(t, err, utils.ErrMemberNotFound)
	assert.Zero(t, f.mailer.resetCodeMails)
}

func TestConsumeResetCode_SingleUse(t *testing.T) {
	f := newCredentialFixture(t)
	member := f.addMember(t, db_models.AccountTypeFellow, db_models.MemberStatusActive, "password123")

	require.NoError(t, f.service.IssueResetCode(context.Background(), "ngozi@example.com"))
	code := f.mailer.lastResetCode

	require.NoError(t, f.service.ConsumeResetCode(context.Background(), code, "brand-new-pass"))
	assert.NoError(t, utils.ComparePasswords(f.members.members[member.ID].PasswordHash, "brand-new-pass"))

	err := f.service.ConsumeResetCode(context.Background(), code, "another-pass")
	assert.ErrorIs(t, err, utils.ErrResetCodeNotFound)
}

func TestConsumeResetCode_Expired(t *testing.T) {
	f := newCredentialFixture(t)
	member := f.addMember(t, db_models.AccountTypeFellow, db_models.MemberStatusActive, "password123")

	require.NoError(t, f.service.IssueResetCode(context.Background(), "ngozi@example.com"))
	code := f.mailer.lastResetCode

	svc := f.service.(*credentialService)
	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	err := f.service.ConsumeResetCode(context.Background(), code, "too-late-pass")
	assert.ErrorIs(t, err, utils.ErrResetCodeExpired)

	// Expired code is purged and the password untouched.
	assert.Zero(t, f.codes.liveCount("ngozi@example.com"))
	assert.NoError(t, utils.ComparePasswords(f.members.members[member.ID].PasswordHash, "password123"))
}

func TestConsumeResetCode_UnknownCode(t *testing.T) {
	f := newCredentialFixture(t)

	err := f.service.ConsumeResetCode(context.Background(), "000000", "whatever-pass")
	assert.ErrorIs(t, err, utils.ErrResetCodeNotFound)
}
