package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"arcade/internal/domain/entity"
	domainerrors "arcade/internal/domain/errors"
	"arcade/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memUserRepo is an in-memory UserRepository that enforces the same
// uniqueness rules as the Postgres implementation, including the
// duplicate-error translation on Create.
type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email != "" && user.Email == email {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Phone != "" && user.Phone == phone {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		clone := *user
		users = append(users, &clone)
	}

	return users, nil
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if user.Email != "" && existing.Email == user.Email {
			return domainerrors.ErrDuplicateEmail.WrapMessage("failed to create user")
		}
		if user.Phone != "" && existing.Phone == user.Phone {
			return domainerrors.ErrDuplicatePhone.WrapMessage("failed to create user")
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, id)

	return nil
}

// memTokenRepo is an in-memory RefreshTokenRepository.
type memTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*entity.RefreshToken
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{tokens: make(map[string]*entity.RefreshToken)}
}

func (r *memTokenRepo) Create(_ context.Context, token *entity.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token.ID = uuid.New()
	token.CreatedAt = time.Now()
	clone := *token
	r.tokens[token.TokenHash] = &clone

	return nil
}

func (r *memTokenRepo) FindByHash(_ context.Context, hash string) (*entity.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.tokens[hash]
	if !ok || token.ExpiresAt.Before(time.Now()) {
		return nil, repository.ErrTokenNotFound
	}
	clone := *token

	return &clone, nil
}

func (r *memTokenRepo) DeleteByHash(_ context.Context, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tokens, hash)

	return nil
}

// memFactory hands the shared in-memory repositories to transactional code.
type memFactory struct {
	userRepo  *memUserRepo
	tokenRepo *memTokenRepo
}

func (f *memFactory) UserRepo() repository.UserRepository { return f.userRepo }

func (f *memFactory) RefreshTokenRepo() repository.RefreshTokenRepository { return f.tokenRepo }

// memTxManager runs the callback directly against the shared repositories;
// the fakes have no transactional semantics to manage.
type memTxManager struct {
	factory *memFactory
}

func (tm *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}

// sentMail records one MailSender.Send call.
type sentMail struct {
	To       string
	Subject  string
	Template string
	Data     map[string]any
}

// recordingMailSender captures outgoing mail instead of delivering it.
type recordingMailSender struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (s *recordingMailSender) Send(_ context.Context, to, subject, templateName string, data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMail{To: to, Subject: subject, Template: templateName, Data: data})

	return nil
}
