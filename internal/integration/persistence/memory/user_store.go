package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/vitaltrack/backend/internal/application/adapter"
	"github.com/vitaltrack/backend/internal/domain/entity"
	domainerror "github.com/vitaltrack/backend/internal/domain/error"
)

// userStore implements adapter.UserRepository over a plain map.
type userStore struct {
	mu      sync.RWMutex
	users   map[int]*entity.User
	byEmail map[string]int
	lastID  int
}

// NewUserStore creates an empty in-memory user repository.
func NewUserStore() adapter.UserRepository {
	return &userStore{
		users:   make(map[int]*entity.User),
		byEmail: make(map[string]int),
	}
}

// NextID allocates the next user id.
func (s *userStore) NextID(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	return s.lastID, nil
}

// Create stores a new user.
func (s *userStore) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *user
	s.users[user.ID] = &copied
	s.byEmail[normalizeEmail(user.Email)] = user.ID
	return nil
}

// FindByID retrieves a user by id.
func (s *userStore) FindByID(_ context.Context, id int) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, userNotFound()
	}
	copied := *user
	return &copied, nil
}

// FindByEmail retrieves a user by email, case-insensitively.
func (s *userStore) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, userNotFound()
	}
	copied := *s.users[id]
	return &copied, nil
}

// ExistsByEmail checks whether an email is already registered.
func (s *userStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byEmail[normalizeEmail(email)]
	return ok, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func userNotFound() error {
	return domainerror.NewUserError(
		domainerror.ErrCodeUserNotFound,
		"user not found",
		domainerror.ErrUserNotFound,
	)
}
