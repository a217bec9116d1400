package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"memberpay/internal/clients"
	"memberpay/internal/models/db_models"
	"memberpay/pkg/utils"
)

// In-memory doubles for the repository and client interfaces so the
// service layer can be exercised without a database.

type fakeMemberRepo struct {
	members map[uuid.UUID]*db_models.Member
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: map[uuid.UUID]*db_models.Member{}}
}

func (f *fakeMemberRepo) Insert(_ context.Context, member *db_models.Member) error {
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	member.CreatedAt = time.Now().Unix()
	f.members[member.ID] = member
	return nil
}

func (f *fakeMemberRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Member, error) {
	return f.members[id], nil
}

func (f *fakeMemberRepo) FindByLoginKey(_ context.Context, key string) (*db_models.Member, error) {
	for _, m := range f.members {
		if m.Username == key || m.Email == key {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMemberRepo) FindByEmail(_ context.Context, email string) (*db_models.Member, error) {
	for _, m := range f.members {
		if m.Email == email {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMemberRepo) FindByUsername(_ context.Context, username string) (*db_models.Member, error) {
	for _, m := range f.members {
		if m.Username == username {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMemberRepo) UpdateStatus(_ context.Context, id uuid.UUID, status db_models.MemberStatus) error {
	m, ok := f.members[id]
	if !ok {
		return fmt.Errorf("member %s not found", id)
	}
	m.Status = status
	return nil
}

func (f *fakeMemberRepo) UpdatePasswordByEmail(_ context.Context, email, passwordHash string) error {
	for _, m := range f.members {
		if m.Email == email {
			m.PasswordHash = passwordHash
			return nil
		}
	}
	return fmt.Errorf("member with email %s not found", email)
}

func (f *fakeMemberRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	m, ok := f.members[id]
	if !ok {
		return fmt.Errorf("member %s not found", id)
	}
	m.PasswordHash = passwordHash
	return nil
}

func (f *fakeMemberRepo) Save(_ context.Context, member *db_models.Member) error {
	f.members[member.ID] = member
	return nil
}

func (f *fakeMemberRepo) CountMembers(_ context.Context) (int64, error) {
	var n int64
	for _, m := range f.members {
		if m.AccountType != db_models.AccountTypeAdministrator {
			n++
		}
	}
	return n, nil
}

type fakeTransactionRepo struct {
	txns    []*db_models.Transaction
	members *fakeMemberRepo
}

func newFakeTransactionRepo(members *fakeMemberRepo) *fakeTransactionRepo {
	return &fakeTransactionRepo{members: members}
}

func (f *fakeTransactionRepo) Create(_ context.Context, txn *db_models.Transaction) error {
	if txn.RefID != db_models.ManualPaymentRef {
		for _, existing := range f.txns {
			if existing.RefID == txn.RefID {
				return utils.ErrDuplicateReference
			}
		}
	}
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	txn.CreatedAt = time.Now().Unix()
	f.txns = append(f.txns, txn)
	return nil
}

func (f *fakeTransactionRepo) CreateAndSubscribe(ctx context.Context, txn *db_models.Transaction, memberID uuid.UUID) error {
	if err := f.Create(ctx, txn); err != nil {
		return err
	}
	m, ok := f.members.members[memberID]
	if !ok {
		return fmt.Errorf("member %s not found", memberID)
	}
	m.IsSubscribed = true
	return nil
}

func (f *fakeTransactionRepo) ExistsByRef(_ context.Context, refID string) (bool, error) {
	for _, txn := range f.txns {
		if txn.RefID == refID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Transaction, error) {
	for _, txn := range f.txns {
		if txn.ID == id {
			return txn, nil
		}
	}
	return nil, nil
}

func (f *fakeTransactionRepo) UpdateStatus(_ context.Context, id uuid.UUID, status db_models.TransactionStatus) error {
	for _, txn := range f.txns {
		if txn.ID == id {
			txn.Status = status
			return nil
		}
	}
	return fmt.Errorf("transaction %s not found", id)
}

func (f *fakeTransactionRepo) ListByMemberAndStatus(_ context.Context, memberID uuid.UUID, status db_models.TransactionStatus) ([]db_models.Transaction, error) {
	var out []db_models.Transaction
	for _, txn := range f.txns {
		if txn.MemberID == memberID && txn.Status == status {
			out = append(out, *txn)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) ListDuePayments(_ context.Context) ([]db_models.Transaction, error) {
	var out []db_models.Transaction
	for _, txn := range f.txns {
		if txn.DueID != nil {
			out = append(out, *txn)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) ListSubscriptionPayments(_ context.Context) ([]db_models.Transaction, error) {
	var out []db_models.Transaction
	for _, txn := range f.txns {
		if txn.SubscriptionID != nil {
			out = append(out, *txn)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) ListByDue(_ context.Context, dueID uuid.UUID) ([]db_models.Transaction, error) {
	var out []db_models.Transaction
	for _, txn := range f.txns {
		if txn.DueID != nil && *txn.DueID == dueID {
			out = append(out, *txn)
		}
	}
	return out, nil
}

type fakeDueRepo struct {
	dues       map[uuid.UUID]*db_models.Due
	categories map[uuid.UUID]*db_models.Category
	txns       *fakeTransactionRepo
}

func newFakeDueRepo(txns *fakeTransactionRepo) *fakeDueRepo {
	return &fakeDueRepo{
		dues:       map[uuid.UUID]*db_models.Due{},
		categories: map[uuid.UUID]*db_models.Category{},
		txns:       txns,
	}
}

func (f *fakeDueRepo) Insert(_ context.Context, due *db_models.Due) error {
	if due.ID == uuid.Nil {
		due.ID = uuid.New()
	}
	f.dues[due.ID] = due
	return nil
}

func (f *fakeDueRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Due, error) {
	return f.dues[id], nil
}

func (f *fakeDueRepo) Save(_ context.Context, due *db_models.Due) error {
	f.dues[due.ID] = due
	return nil
}

func (f *fakeDueRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	due, ok := f.dues[id]
	if !ok {
		return fmt.Errorf("due %s not found", id)
	}
	due.Status = db_models.DueStatusInactive
	return nil
}

func (f *fakeDueRepo) ListActive(_ context.Context) ([]db_models.Due, error) {
	var out []db_models.Due
	for _, due := range f.dues {
		if due.Status == db_models.DueStatusActive {
			out = append(out, *due)
		}
	}
	return out, nil
}

func (f *fakeDueRepo) ListUnpaidForMember(ctx context.Context, memberID uuid.UUID) ([]db_models.Due, error) {
	paid := map[uuid.UUID]bool{}
	if f.txns != nil {
		for _, txn := range f.txns.txns {
			if txn.MemberID == memberID && txn.DueID != nil {
				paid[*txn.DueID] = true
			}
		}
	}
	var out []db_models.Due
	for _, due := range f.dues {
		if due.Status == db_models.DueStatusActive && !paid[due.ID] {
			out = append(out, *due)
		}
	}
	return out, nil
}

func (f *fakeDueRepo) InsertCategory(_ context.Context, category *db_models.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeDueRepo) FindCategory(_ context.Context, id uuid.UUID) (*db_models.Category, error) {
	return f.categories[id], nil
}

func (f *fakeDueRepo) ListCategories(_ context.Context) ([]db_models.Category, error) {
	var out []db_models.Category
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

type fakeSubscriptionRepo struct {
	subs map[uuid.UUID]*db_models.Subscription
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: map[uuid.UUID]*db_models.Subscription{}}
}

func (f *fakeSubscriptionRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Subscription, error) {
	return f.subs[id], nil
}

func (f *fakeSubscriptionRepo) FindByAccountType(_ context.Context, accountType db_models.AccountType) (*db_models.Subscription, error) {
	for _, s := range f.subs {
		if s.AccountType == accountType {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSubscriptionRepo) List(_ context.Context) ([]db_models.Subscription, error) {
	var out []db_models.Subscription
	for _, s := range f.subs {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSubscriptionRepo) UpdateAmount(_ context.Context, id uuid.UUID, amount float64) error {
	s, ok := f.subs[id]
	if !ok {
		return fmt.Errorf("subscription %s not found", id)
	}
	s.Amount = amount
	return nil
}

type fakeResetCodeRepo struct {
	codes map[uuid.UUID]*db_models.ResetCode
}

func newFakeResetCodeRepo() *fakeResetCodeRepo {
	return &fakeResetCodeRepo{codes: map[uuid.UUID]*db_models.ResetCode{}}
}

func (f *fakeResetCodeRepo) Replace(_ context.Context, code *db_models.ResetCode) error {
	for id, existing := range f.codes {
		if existing.Email == code.Email {
			delete(f.codes, id)
		}
	}
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	if code.CreatedAt == 0 {
		code.CreatedAt = time.Now().Unix()
	}
	f.codes[code.ID] = code
	return nil
}

func (f *fakeResetCodeRepo) FindByCode(_ context.Context, code string) (*db_models.ResetCode, error) {
	for _, rc := range f.codes {
		if rc.Code == code {
			return rc, nil
		}
	}
	return nil, nil
}

func (f *fakeResetCodeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.codes, id)
	return nil
}

func (f *fakeResetCodeRepo) liveCount(email string) int {
	n := 0
	for _, rc := range f.codes {
		if rc.Email == email {
			n++
		}
	}
	return n
}

type fakeSessionTokenRepo struct {
	tokens map[string]uuid.UUID
}

func newFakeSessionTokenRepo() *fakeSessionTokenRepo {
	return &fakeSessionTokenRepo{tokens: map[string]uuid.UUID{}}
}

func sessionKey(memberID uuid.UUID, purpose string) string {
	return memberID.String() + "/" + purpose
}

func (f *fakeSessionTokenRepo) Rotate(_ context.Context, memberID uuid.UUID, purpose string, tokenID uuid.UUID) error {
	f.tokens[sessionKey(memberID, purpose)] = tokenID
	return nil
}

func (f *fakeSessionTokenRepo) CurrentTokenID(_ context.Context, memberID uuid.UUID, purpose string) (uuid.UUID, error) {
	return f.tokens[sessionKey(memberID, purpose)], nil
}

type fakeNotificationRepo struct {
	notifications []*db_models.Notification
}

func (f *fakeNotificationRepo) Insert(_ context.Context, n *db_models.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	f.notifications = append(f.notifications, n)
	return nil
}

func (f *fakeNotificationRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Notification, error) {
	for _, n := range f.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, nil
}

func (f *fakeNotificationRepo) ListByMember(_ context.Context, memberID uuid.UUID) ([]db_models.Notification, error) {
	var out []db_models.Notification
	for _, n := range f.notifications {
		if n.MemberID == memberID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) ListUnread(_ context.Context, memberID uuid.UUID) ([]db_models.Notification, error) {
	var out []db_models.Notification
	for _, n := range f.notifications {
		if n.MemberID == memberID && n.Status == db_models.NotificationUnread {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) CountUnread(_ context.Context, memberID uuid.UUID) (int64, error) {
	unread, err := f.ListUnread(context.Background(), memberID)
	if err != nil {
		return 0, err
	}
	return int64(len(unread)), nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id uuid.UUID) error {
	for _, n := range f.notifications {
		if n.ID == id {
			n.Status = db_models.NotificationRead
			return nil
		}
	}
	return fmt.Errorf("notification %s not found", id)
}

func (f *fakeNotificationRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, n := range f.notifications {
		if n.ID == id {
			f.notifications = append(f.notifications[:i], f.notifications[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("notification %s not found", id)
}

type fakeGateway struct {
	result *clients.VerifyResult
	err    error
	calls  int
}

func (f *fakeGateway) Verify(_ context.Context, reference string) (*clients.VerifyResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	result := *f.result
	result.Reference = reference
	return &result, nil
}

type fakeStorage struct {
	uploads   []string
	destroyed []string
}

func (f *fakeStorage) Upload(_ context.Context, _ []byte, folder, name string) (string, error) {
	url := "https://files.example/" + folder + "/" + name
	f.uploads = append(f.uploads, url)
	return url, nil
}

func (f *fakeStorage) Destroy(_ context.Context, publicID string) error {
	f.destroyed = append(f.destroyed, publicID)
	return nil
}

type fakeMailer struct {
	registrationMails int
	activationMails   int
	resetCodeMails    int
	lastResetCode     string
}

func (f *fakeMailer) SendRegistrationMail(_ *db_models.Member, _ string) error {
	f.registrationMails++
	return nil
}

func (f *fakeMailer) SendActivationMail(_ *db_models.Member) error {
	f.activationMails++
	return nil
}

func (f *fakeMailer) SendResetCodeMail(_, _, code string) error {
	f.resetCodeMails++
	f.lastResetCode = code
	return nil
}
