package services

import (
	"errors"
	"fmt"
	"time"

	"heptabet_backend/internal/models"
	"heptabet_backend/internal/repositories"
)

// In-memory repository fakes. Each returns copies on reads so a service
// mutating a result cannot silently change the stored record.

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID int

	failCreate error
	failFind   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) add(u *models.User) *models.User {
	if u.ID == "" {
		r.nextID++
		u.ID = fmt.Sprintf("user-%d", r.nextID)
	}
	r.users[u.ID] = u
	return u
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	r.add(user)
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	if r.failFind != nil {
		return nil, r.failFind
	}
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	if r.failFind != nil {
		return nil, r.failFind
	}
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindAll() ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) RotateCSRFSecret(userID, secret string) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.CSRFSecret = secret
	return nil
}

func (r *fakeUserRepo) UpdatePassword(userID, passwordHash string) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) UpdateSubscription(userID string, tier models.SubscriptionTier, expiresAt *time.Time) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Subscription = tier
	u.SubscriptionExpiresAt = expiresAt
	return nil
}

func (r *fakeUserRepo) DowngradeTier(userID string, tier models.SubscriptionTier) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Subscription = tier
	return nil
}

func (r *fakeUserRepo) SetResetCode(userID, code string, expiresAt, sentAt time.Time) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.ResetCode = code
	u.ResetCodeExpiresAt = &expiresAt
	u.ResetCodeSentAt = &sentAt
	return nil
}

func (r *fakeUserRepo) ClearResetCode(userID string) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.ResetCode = ""
	u.ResetCodeExpiresAt = nil
	return nil
}

type fakePredictionRepo struct {
	predictions map[string]*models.Prediction
	nextID      int
}

func newFakePredictionRepo() *fakePredictionRepo {
	return &fakePredictionRepo{predictions: make(map[string]*models.Prediction)}
}

func (r *fakePredictionRepo) add(p *models.Prediction) *models.Prediction {
	if p.ID == "" {
		r.nextID++
		p.ID = fmt.Sprintf("pred-%d", r.nextID)
	}
	r.predictions[p.ID] = p
	return p
}

func (r *fakePredictionRepo) Create(p *models.Prediction) error {
	r.add(p)
	return nil
}

func (r *fakePredictionRepo) FindByID(id string) (*models.Prediction, error) {
	p, ok := r.predictions[id]
	if !ok {
		return nil, repositories.ErrPredictionNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePredictionRepo) Update(p *models.Prediction) error {
	if _, ok := r.predictions[p.ID]; !ok {
		return repositories.ErrPredictionNotFound
	}
	cp := *p
	r.predictions[p.ID] = &cp
	return nil
}

func (r *fakePredictionRepo) Delete(id string) error {
	delete(r.predictions, id)
	return nil
}

func (r *fakePredictionRepo) FindAllOrdered() ([]models.Prediction, error) {
	out := make([]models.Prediction, 0, len(r.predictions))
	for _, p := range r.predictions {
		out = append(out, *p)
	}
	return out, nil
}

type fakeBlogRepo struct {
	posts  map[string]*models.BlogPost
	nextID int
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{posts: make(map[string]*models.BlogPost)}
}

func (r *fakeBlogRepo) Create(p *models.BlogPost) error {
	if p.ID == "" {
		r.nextID++
		p.ID = fmt.Sprintf("post-%d", r.nextID)
	}
	r.posts[p.ID] = p
	return nil
}

func (r *fakeBlogRepo) FindByID(id string) (*models.BlogPost, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, repositories.ErrBlogPostNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeBlogRepo) Delete(id string) error {
	delete(r.posts, id)
	return nil
}

func (r *fakeBlogRepo) FindAllOrdered() ([]models.BlogPost, error) {
	out := make([]models.BlogPost, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, *p)
	}
	return out, nil
}

type fakeTransactionRepo struct {
	transactions map[string]*models.PaymentTransaction
	nextID       int
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[string]*models.PaymentTransaction)}
}

func (r *fakeTransactionRepo) Create(tx *models.PaymentTransaction) error {
	if tx.ID == "" {
		r.nextID++
		tx.ID = fmt.Sprintf("tx-%d", r.nextID)
	}
	r.transactions[tx.ID] = tx
	return nil
}

func (r *fakeTransactionRepo) FindByID(id string) (*models.PaymentTransaction, error) {
	tx, ok := r.transactions[id]
	if !ok {
		return nil, repositories.ErrTransactionNotFound
	}
	cp := *tx
	return &cp, nil
}

func (r *fakeTransactionRepo) UpdateStatus(id string, status models.PaymentStatus) error {
	tx, ok := r.transactions[id]
	if !ok {
		return repositories.ErrTransactionNotFound
	}
	tx.Status = status
	return nil
}

func (r *fakeTransactionRepo) FindAllOrdered() ([]models.PaymentTransaction, error) {
	out := make([]models.PaymentTransaction, 0, len(r.transactions))
	for _, tx := range r.transactions {
		out = append(out, *tx)
	}
	return out, nil
}

// fakeEmailProvider records outbound codes and can be told to fail.
type fakeEmailProvider struct {
	sent []sentEmail
	err  error
}

type sentEmail struct {
	to   string
	code string
}

var errSMTPDown = errors.New("smtp unreachable")

func (p *fakeEmailProvider) SendResetCode(to, name, code string) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, sentEmail{to: to, code: code})
	return nil
}
