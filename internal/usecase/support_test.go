package usecase_test

import (
	"context"
	"errors"
	"sync"

	"github.com/mazboy1/frasa-backend/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// testLogger discards everything.
type testLogger struct{}

func (testLogger) Debugf(format string, args ...interface{}) {}
func (testLogger) Infof(format string, args ...interface{})  {}
func (testLogger) Warnf(format string, args ...interface{})  {}
func (testLogger) Errorf(format string, args ...interface{}) {}
func (testLogger) Fatalf(format string, args ...interface{}) {}

// fakeClassRepo records repository calls for assertion.
type fakeClassRepo struct {
	mu sync.Mutex

	classes map[primitive.ObjectID]entity.Class

	createdClass *entity.Class
	setStatusID  string
	setStatus    entity.ClassStatus
	setReason    string
	setCalls     int
	updatedID    string
	lastUpdate   *entity.ClassUpdate
	enrolledIDs  []primitive.ObjectID
	enrollErr    error
	createErr    error
	linkedClass  primitive.ObjectID
	linkedFeed   primitive.ObjectID
	statusCounts map[entity.ClassStatus]int64
	totalClasses int64
}

func newFakeClassRepo() *fakeClassRepo {
	return &fakeClassRepo{
		classes:      map[primitive.ObjectID]entity.Class{},
		statusCounts: map[entity.ClassStatus]int64{},
	}
}

func (r *fakeClassRepo) CreateClass(ctx context.Context, class *entity.Class) (primitive.ObjectID, error) {
	if r.createErr != nil {
		return primitive.NilObjectID, r.createErr
	}
	r.createdClass = class
	id := primitive.NewObjectID()
	r.classes[id] = *class
	return id, nil
}

func (r *fakeClassRepo) GetClassByID(ctx context.Context, id string) (*entity.Class, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, entity.ErrInvalidID
	}
	class, ok := r.classes[oid]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &class, nil
}

func (r *fakeClassRepo) ListByStatus(ctx context.Context, status entity.ClassStatus) ([]entity.Class, error) {
	var out []entity.Class
	for _, class := range r.classes {
		if class.Status == status {
			out = append(out, class)
		}
	}
	return out, nil
}

func (r *fakeClassRepo) ListAll(ctx context.Context) ([]entity.Class, error) {
	var out []entity.Class
	for _, class := range r.classes {
		out = append(out, class)
	}
	return out, nil
}

func (r *fakeClassRepo) ListByInstructor(ctx context.Context, email string, status entity.ClassStatus) ([]entity.Class, error) {
	var out []entity.Class
	for _, class := range r.classes {
		if class.InstructorEmail != email {
			continue
		}
		if status != "" && class.Status != status {
			continue
		}
		out = append(out, class)
	}
	return out, nil
}

func (r *fakeClassRepo) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]entity.Class, error) {
	var out []entity.Class
	for _, id := range ids {
		if class, ok := r.classes[id]; ok {
			out = append(out, class)
		}
	}
	return out, nil
}

func (r *fakeClassRepo) SetStatus(ctx context.Context, id string, status entity.ClassStatus, reason string) error {
	r.setCalls++
	r.setStatusID = id
	r.setStatus = status
	r.setReason = reason
	return nil
}

func (r *fakeClassRepo) UpdateClass(ctx context.Context, id string, update *entity.ClassUpdate) error {
	r.updatedID = id
	r.lastUpdate = update
	return nil
}

func (r *fakeClassRepo) ApplyEnrollment(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.enrollErr != nil {
		return r.enrollErr
	}
	r.enrolledIDs = append(r.enrolledIDs, id)
	return nil
}

func (r *fakeClassRepo) LinkFeedback(ctx context.Context, classID, feedbackID primitive.ObjectID) error {
	r.linkedClass = classID
	r.linkedFeed = feedbackID
	return nil
}

func (r *fakeClassRepo) CountByStatus(ctx context.Context, status entity.ClassStatus) (int64, error) {
	return r.statusCounts[status], nil
}

func (r *fakeClassRepo) CountAll(ctx context.Context) (int64, error) {
	return r.totalClasses, nil
}

// fakeCartRepo keys rows by (classId, userMail).
type fakeCartRepo struct {
	items map[string]entity.CartItem

	addCalls         int
	removedUser      string
	removedClassIDs  []string
	removeItemsCalls int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: map[string]entity.CartItem{}}
}

func cartKey(classID, userMail string) string { return classID + "|" + userMail }

func (r *fakeCartRepo) AddItem(ctx context.Context, item *entity.CartItem) error {
	r.addCalls++
	key := cartKey(item.ClassID, item.UserMail)
	if _, ok := r.items[key]; ok {
		return entity.ErrAlreadyInCart
	}
	item.ID = primitive.NewObjectID()
	r.items[key] = *item
	return nil
}

func (r *fakeCartRepo) GetItem(ctx context.Context, classID, userMail string) (*entity.CartItem, error) {
	item, ok := r.items[cartKey(classID, userMail)]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &item, nil
}

func (r *fakeCartRepo) ListByUser(ctx context.Context, userMail string) ([]entity.CartItem, error) {
	var out []entity.CartItem
	for _, item := range r.items {
		if item.UserMail == userMail {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeCartRepo) RemoveItem(ctx context.Context, id string) error {
	for key, item := range r.items {
		if item.ID.Hex() == id {
			delete(r.items, key)
			return nil
		}
	}
	return entity.ErrNotFound
}

func (r *fakeCartRepo) RemoveItems(ctx context.Context, userMail string, classIDs []string) error {
	r.removeItemsCalls++
	r.removedUser = userMail
	r.removedClassIDs = classIDs
	for _, classID := range classIDs {
		delete(r.items, cartKey(classID, userMail))
	}
	return nil
}

// fakePaymentRepo stores payments in insertion order.
type fakePaymentRepo struct {
	payments  []entity.Payment
	createErr error
}

func (r *fakePaymentRepo) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	if r.createErr != nil {
		return r.createErr
	}
	payment.ID = primitive.NewObjectID()
	r.payments = append(r.payments, *payment)
	return nil
}

func (r *fakePaymentRepo) ListByUser(ctx context.Context, email string) ([]entity.Payment, error) {
	var out []entity.Payment
	for _, p := range r.payments {
		if p.UserEmail == email {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeEnrollmentRepo struct {
	enrollments []entity.Enrollment
	rows        []entity.EnrolledClass
}

func (r *fakeEnrollmentRepo) CreateEnrollment(ctx context.Context, enrollment *entity.Enrollment) error {
	enrollment.ID = primitive.NewObjectID()
	r.enrollments = append(r.enrollments, *enrollment)
	return nil
}

func (r *fakeEnrollmentRepo) EnrolledClasses(ctx context.Context, email string) ([]entity.EnrolledClass, error) {
	return r.rows, nil
}

func (r *fakeEnrollmentRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(r.enrollments)), nil
}

// fakeGateway records the amount of the last intent.
type fakeGateway struct {
	lastAmount int64
	secret     string
	err        error
}

func (g *fakeGateway) CreatePaymentIntent(ctx context.Context, amountCents int64) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	g.lastAmount = amountCents
	return g.secret, nil
}

// fakeUserStore serves GetUserByEmail from a map; other methods are unused
// by the usecases under test.
type fakeUserStore struct {
	users map[string]entity.User
}

func newFakeUserStore(users ...entity.User) *fakeUserStore {
	store := &fakeUserStore{users: map[string]entity.User{}}
	for _, u := range users {
		store.users[u.Email] = u
	}
	return store
}

func (s *fakeUserStore) CreateUser(ctx context.Context, user *entity.User) error {
	s.users[user.Email] = *user
	return nil
}

func (s *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &u, nil
}

func (s *fakeUserStore) ListUsers(ctx context.Context) ([]entity.User, error) { return nil, nil }

func (s *fakeUserStore) ListByRole(ctx context.Context, role entity.UserRole) ([]entity.User, error) {
	return nil, nil
}

func (s *fakeUserStore) UpdateUser(ctx context.Context, id string, user *entity.User) (*entity.User, error) {
	return nil, nil
}

func (s *fakeUserStore) SetRole(ctx context.Context, id string, role entity.UserRole) error {
	return nil
}

func (s *fakeUserStore) DeleteUser(ctx context.Context, id string) error { return nil }

func (s *fakeUserStore) CountByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	var n int64
	for _, u := range s.users {
		if u.EffectiveRole() == role {
			n++
		}
	}
	return n, nil
}

// fakeTokenService signs tokens by concatenation.
type fakeTokenService struct {
	issueErr error
}

func (s *fakeTokenService) IssueToken(email, name, role string) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}
	return "signed:" + email + ":" + role, nil
}

func (s *fakeTokenService) VerifyToken(token string) (*entity.Claims, error) {
	return nil, errors.New("not implemented")
}

// fakeValidator accepts any non-empty email containing an @.
type fakeValidator struct{}

func (fakeValidator) ValidateEmail(email string) error {
	for _, r := range email {
		if r == '@' {
			return nil
		}
	}
	return entity.ErrValidation
}
