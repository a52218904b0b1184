package repository

import (
	"assetconsole/models"
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type UserRepository interface {
	CreateUser(ctx context.Context, req models.RegisterReq, role models.Role) (models.User, error)
	Authenticate(ctx context.Context, email, password string) (models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context, search string) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, req models.UpdateUserReq) (models.User, error)
	SetProfileImage(ctx context.Context, id string, imageURL *string) (models.User, error)
}

func (s *Store) CreateUser(ctx context.Context, req models.RegisterReq, role models.Role) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return models.User{}, newError(ErrInvalid, "Password cannot be used")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	email := strings.TrimSpace(req.Email)
	if s.userByEmail(email) != nil {
		return models.User{}, newError(ErrConflict, "Email is already registered")
	}

	now := s.timestamp()
	rec := &userRecord{
		user: models.User{
			ID:        newID(),
			Email:     email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Role:      role,
			CreatedAt: now,
			UpdatedAt: now,
		},
		passwordHash: hash,
		seq:          s.nextSeq(),
	}
	s.users[rec.user.ID] = rec
	return rec.user, nil
}

func (s *Store) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	s.mu.RLock()
	rec := s.userByEmail(email)
	s.mu.RUnlock()
	if rec == nil {
		return models.User{}, newError(ErrUnauthorized, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(password)); err != nil {
		return models.User{}, newError(ErrUnauthorized, "Invalid email or password")
	}
	return rec.user, nil
}

func (s *Store) GetUser(ctx context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.users[id]
	if !ok {
		return models.User{}, newError(ErrNotFound, "User not found")
	}
	return rec.user, nil
}

func (s *Store) ListUsers(ctx context.Context, search string) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs := make([]*userRecord, 0, len(s.users))
	for _, rec := range s.users {
		u := rec.user
		if search != "" && !containsFold(u.Email, search) && !containsFold(u.FirstName+" "+u.LastName, search) {
			continue
		}
		recs = append(recs, rec)
	}
	newestFirst(recs, func(r *userRecord) uint64 { return r.seq })

	users := make([]models.User, len(recs))
	for i, rec := range recs {
		users[i] = rec.user
	}
	return users, nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, req models.UpdateUserReq) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[id]
	if !ok {
		return models.User{}, newError(ErrNotFound, "User not found")
	}

	email := rec.user.Email
	if req.Email != nil {
		email = strings.TrimSpace(*req.Email)
		if email == "" {
			return models.User{}, newError(ErrInvalid, "Email cannot be empty")
		}
		if other := s.userByEmail(email); other != nil && other.user.ID != id {
			return models.User{}, newError(ErrConflict, "Email is already registered")
		}
	}
	if req.Role != nil && *req.Role != models.AdminRole && *req.Role != models.UserRole {
		return models.User{}, newError(ErrInvalid, "Unknown role %q", *req.Role)
	}

	rec.user.Email = email
	if req.FirstName != nil {
		rec.user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		rec.user.LastName = *req.LastName
	}
	if req.Role != nil {
		rec.user.Role = *req.Role
	}
	rec.user.UpdatedAt = s.timestamp()
	return rec.user, nil
}

// SetProfileImage replaces the user's image reference; nil removes it.
func (s *Store) SetProfileImage(ctx context.Context, id string, imageURL *string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[id]
	if !ok {
		return models.User{}, newError(ErrNotFound, "User not found")
	}
	if imageURL == nil && rec.user.ProfileImageURL == nil {
		return models.User{}, newError(ErrNotFound, "User has no profile image")
	}
	rec.user.ProfileImageURL = imageURL
	rec.user.UpdatedAt = s.timestamp()
	return rec.user, nil
}

// userByEmail must be called with the lock held.
func (s *Store) userByEmail(email string) *userRecord {
	for _, rec := range s.users {
		if strings.EqualFold(rec.user.Email, strings.TrimSpace(email)) {
			return rec
		}
	}
	return nil
}

// userRef must be called with the lock held.
func (s *Store) userRef(id *string) *models.User {
	if id == nil {
		return nil
	}
	rec, ok := s.users[*id]
	if !ok {
		return nil
	}
	u := rec.user
	return &u
}
