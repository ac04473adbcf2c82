package service

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

// memUserRepo is an in-memory ports.UserRepository for service tests.
type memUserRepo struct {
	users       []*domain.User
	nextID      int64
	lastList    domain.ListOptions
	listOut     []domain.User
	listN       int
	updates     []domain.UserUpdate
	deleted     []string
	findByIDErr error
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if r.findByIDErr != nil {
		return nil, r.findByIDErr
	}
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByUUID(_ context.Context, uid string) (*domain.User, error) {
	for _, u := range r.users {
		if u.UUID == uid {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.nextID++
	user.ID = r.nextID
	r.users = append(r.users, user)
	return user, nil
}

func (r *memUserRepo) List(_ context.Context, opts domain.ListOptions) ([]domain.User, int, error) {
	r.lastList = opts
	return r.listOut, r.listN, nil
}

func (r *memUserRepo) Update(_ context.Context, uid string, upd domain.UserUpdate) error {
	r.updates = append(r.updates, upd)
	for _, u := range r.users {
		if u.UUID == uid {
			if upd.Name != nil {
				u.Name = *upd.Name
			}
			if upd.Role != nil {
				u.Role = *upd.Role
			}
			if upd.IsActive != nil {
				u.IsActive = *upd.IsActive
			}
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *memUserRepo) Delete(_ context.Context, uid string) error {
	r.deleted = append(r.deleted, uid)
	for i, u := range r.users {
		if u.UUID == uid {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *memUserRepo) CountByRole(_ context.Context, role string) (int, error) {
	n := 0
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

// memTokenRepo is an in-memory ports.TokenRepository.
type memTokenRepo struct {
	sessions map[string]domain.RefreshSession
	nextID   int64
	revoked  []int64
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{sessions: map[string]domain.RefreshSession{}}
}

func (r *memTokenRepo) Save(_ context.Context, userID int64, token string, expiresAt time.Time) error {
	r.nextID++
	r.sessions[token] = domain.RefreshSession{
		ID: r.nextID, UserID: userID, Token: token,
		ExpiresAt: expiresAt, CreatedAt: time.Now().UTC(),
	}
	return nil
}

func (r *memTokenRepo) Find(_ context.Context, token string) (*domain.RefreshSession, error) {
	s, ok := r.sessions[token]
	if !ok || !s.ExpiresAt.After(time.Now()) {
		return nil, nil
	}
	return &s, nil
}

func (r *memTokenRepo) Consume(_ context.Context, token string) (bool, error) {
	s, ok := r.sessions[token]
	if !ok || !s.ExpiresAt.After(time.Now()) {
		return false, nil
	}
	delete(r.sessions, token)
	return true, nil
}

func (r *memTokenRepo) DeleteByToken(_ context.Context, token string) error {
	delete(r.sessions, token)
	return nil
}

func (r *memTokenRepo) DeleteAllForUser(_ context.Context, userID int64) error {
	r.revoked = append(r.revoked, userID)
	for token, s := range r.sessions {
		if s.UserID == userID {
			delete(r.sessions, token)
		}
	}
	return nil
}

func (r *memTokenRepo) DeleteExpired(_ context.Context) (int64, error) {
	var removed int64
	for token, s := range r.sessions {
		if !s.ExpiresAt.After(time.Now()) {
			delete(r.sessions, token)
			removed++
		}
	}
	return removed, nil
}

// stubProductRepo records calls and returns canned values.
type stubProductRepo struct {
	product    *domain.Product
	findErr    error
	created    *domain.Product
	lastList   domain.ListOptions
	listOut    []domain.Product
	listN      int
	updCalled  bool
	updOwner   *int64
	updPayload domain.ProductUpdate
	delCalled  bool
	delOwner   *int64
	taken      map[string]bool
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.created = p
	if p.ID == 0 {
		p.ID = 1
	}
	r.product = p
	return p, nil
}

func (r *stubProductRepo) FindByUUID(_ context.Context, _ string) (*domain.Product, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if r.product == nil {
		return nil, domain.ErrProductNotFound
	}
	return r.product, nil
}

func (r *stubProductRepo) FindBySlug(_ context.Context, _ string) (*domain.Product, error) {
	if r.product == nil {
		return nil, domain.ErrProductNotFound
	}
	return r.product, nil
}

func (r *stubProductRepo) List(_ context.Context, opts domain.ListOptions) ([]domain.Product, int, error) {
	r.lastList = opts
	return r.listOut, r.listN, nil
}

func (r *stubProductRepo) Update(_ context.Context, _ int64, ownerID *int64, upd domain.ProductUpdate) error {
	r.updCalled = true
	r.updOwner = ownerID
	r.updPayload = upd
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, _ int64, ownerID *int64) error {
	r.delCalled = true
	r.delOwner = ownerID
	return nil
}

func (r *stubProductRepo) SlugExists(_ context.Context, slug string, _ int64) (bool, error) {
	return r.taken[slug], nil
}

func (r *stubProductRepo) Count(_ context.Context, _ *int64) (int, error) {
	return r.listN, nil
}

func (r *stubProductRepo) Recent(_ context.Context, _ *int64, _ int) ([]domain.Product, error) {
	return r.listOut, nil
}

// stubImageStore records removals.
type stubImageStore struct {
	removed []string
}

func (s *stubImageStore) Save(_ context.Context, file *multipart.FileHeader) (*domain.Image, error) {
	return &domain.Image{URL: "/uploads/" + file.Filename}, nil
}

func (s *stubImageStore) Remove(_ context.Context, url string) error {
	s.removed = append(s.removed, url)
	return nil
}
