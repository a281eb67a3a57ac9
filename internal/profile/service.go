// Package profile owns the current-user session and every mutation of the
// user record: authentication, profile edits, XP awards, badge awards, and
// streak tracking. There is no ambient global user; callers hold a Service
// and the Service holds the session it loaded.
package profile

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nishantk77/skillpath-ascend-together/internal/notify"
	"github.com/nishantk77/skillpath-ascend-together/internal/store"
)

// Fixed demo credentials for the admin path. The password is compared
// through bcrypt like any other; only the hash lives in the binary.
const (
	adminUsername = "admin"
	adminUserID   = "admin-1"
	adminEmail    = "admin@skillpath.dev"
)

// adminPasswordHash is the bcrypt hash of the demo admin password
// ("skillpath123"). A real deployment would inject this from a secret
// store.
var adminPasswordHash = mustHash("skillpath123")

func mustHash(password string) []byte {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("hash admin password: %v", err))
	}
	return h
}

// Service manages the current session and user-record mutations.
type Service struct {
	users    store.UserRepo
	sessions store.SessionRepo
	events   store.EventRepo
	notifier notify.Notifier

	current *store.User

	// authInFlight guards against double-submission of login/signup:
	// a second auth call while one is pending fails with ErrBusy
	// instead of racing the first.
	authInFlight atomic.Bool

	// now is the clock, swappable in tests.
	now func() time.Time
}

// NewService creates a profile service backed by the store.
func NewService(st *store.Store, n notify.Notifier) *Service {
	if n == nil {
		n = notify.Discard
	}
	return &Service{
		users:    st.UserRepo(),
		sessions: st.SessionRepo(),
		events:   st.EventRepo(),
		notifier: n,
		now:      time.Now,
	}
}

// LoadSession hydrates the current user from the persisted session, if
// any. A session pointing at a deleted user is discarded silently.
func (s *Service) LoadSession(ctx context.Context) error {
	id, err := s.sessions.CurrentUserID(ctx)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if id == "" {
		return nil
	}

	u, err := s.users.ByID(ctx, id)
	if err != nil {
		if store.IsNotFound(err) {
			_ = s.sessions.Clear(ctx)
			return nil
		}
		return fmt.Errorf("load session user: %w", err)
	}
	s.current = u
	return nil
}

// Current returns the logged-in user, or nil.
func (s *Service) Current() *store.User {
	return s.current
}

// IsAuthenticated reports whether a user is logged in.
func (s *Service) IsAuthenticated() bool {
	return s.current != nil
}

// IsAdmin reports whether the logged-in user has the admin role.
func (s *Service) IsAdmin() bool {
	return s.current != nil && s.current.Role == store.RoleAdmin
}

// requireUser returns the current user or ErrUnauthenticated.
func (s *Service) requireUser() (*store.User, error) {
	if s.current == nil {
		return nil, ErrUnauthenticated
	}
	return s.current, nil
}

// beginAuth claims the in-flight guard.
func (s *Service) beginAuth() error {
	if !s.authInFlight.CompareAndSwap(false, true) {
		return ErrBusy
	}
	return nil
}

func (s *Service) endAuth() {
	s.authInFlight.Store(false)
}

// SignupInput carries the fields collected at signup. Interests, weekly
// time, and goals come from onboarding and may be empty.
type SignupInput struct {
	Name       string
	Email      string
	Password   string
	Interests  []string
	WeeklyTime int
	Goals      []string
}

// Signup registers a new learner and logs them in.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*store.User, error) {
	if err := s.beginAuth(); err != nil {
		return nil, err
	}
	defer s.endAuth()

	switch {
	case strings.TrimSpace(in.Name) == "":
		return nil, missingField("name")
	case strings.TrimSpace(in.Email) == "":
		return nil, missingField("email")
	case in.Password == "":
		return nil, missingField("password")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := s.users.ByEmail(ctx, email); err == nil {
		s.notifier.Notify("Signup failed", "That email is already registered")
		return nil, ErrDuplicateEmail
	} else if !store.IsNotFound(err) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &store.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         store.RoleLearner,
		Interests:    in.Interests,
		WeeklyTime:   in.WeeklyTime,
		Goals:        in.Goals,
		JoinDate:     s.now(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if err := s.sessions.Set(ctx, u.ID); err != nil {
		return nil, fmt.Errorf("set session: %w", err)
	}

	s.current = u
	s.notifier.Notify("Welcome to SkillPath!", "Your account has been created")
	return u, nil
}

// Login authenticates a learner by email and password.
func (s *Service) Login(ctx context.Context, email, password string) (*store.User, error) {
	if err := s.beginAuth(); err != nil {
		return nil, err
	}
	defer s.endAuth()

	switch {
	case strings.TrimSpace(email) == "":
		return nil, missingField("email")
	case password == "":
		return nil, missingField("password")
	}

	u, err := s.users.ByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if store.IsNotFound(err) {
			s.notifier.Notify("Login failed", "Invalid email or password")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		s.notifier.Notify("Login failed", "Invalid email or password")
		return nil, ErrInvalidCredentials
	}

	if err := s.sessions.Set(ctx, u.ID); err != nil {
		return nil, fmt.Errorf("set session: %w", err)
	}

	s.current = u
	s.notifier.Notify("Welcome back!", fmt.Sprintf("Logged in as %s", u.Name))
	return u, nil
}

// AdminLogin authenticates against the fixed demo admin credentials and
// synthesizes the admin user record on first use.
func (s *Service) AdminLogin(ctx context.Context, username, password string) (*store.User, error) {
	if err := s.beginAuth(); err != nil {
		return nil, err
	}
	defer s.endAuth()

	if username != adminUsername ||
		bcrypt.CompareHashAndPassword(adminPasswordHash, []byte(password)) != nil {
		s.notifier.Notify("Admin login failed", "Invalid admin credentials")
		return nil, ErrInvalidCredentials
	}

	u, err := s.users.ByID(ctx, adminUserID)
	if err != nil {
		if !store.IsNotFound(err) {
			return nil, fmt.Errorf("lookup admin: %w", err)
		}
		u = &store.User{
			ID:       adminUserID,
			Name:     "Admin User",
			Email:    adminEmail,
			Role:     store.RoleAdmin,
			JoinDate: s.now(),
		}
		if err := s.users.Create(ctx, u); err != nil {
			return nil, fmt.Errorf("create admin user: %w", err)
		}
	}

	if err := s.sessions.Set(ctx, u.ID); err != nil {
		return nil, fmt.Errorf("set session: %w", err)
	}

	s.current = u
	s.notifier.Notify("Admin Access Granted", "Welcome to the admin dashboard")
	return u, nil
}

// Logout clears the session. Logging out while logged out is a no-op.
func (s *Service) Logout(ctx context.Context) error {
	if s.current == nil {
		return nil
	}
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.current = nil
	s.notifier.Notify("Logged out", "You have been successfully logged out")
	return nil
}

// UpdateInput carries a partial profile edit. Nil fields are left alone.
type UpdateInput struct {
	Name       *string
	Interests  *[]string
	WeeklyTime *int
	Goals      *[]string
}

// UpdateUser applies a partial edit to the current user's profile.
func (s *Service) UpdateUser(ctx context.Context, in UpdateInput) error {
	u, err := s.requireUser()
	if err != nil {
		return err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return missingField("name")
		}
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.Interests != nil {
		u.Interests = *in.Interests
	}
	if in.WeeklyTime != nil {
		u.WeeklyTime = *in.WeeklyTime
	}
	if in.Goals != nil {
		u.Goals = *in.Goals
	}

	if err := s.users.Update(ctx, u); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	s.notifier.Notify("Profile updated", "Your changes have been saved")
	return nil
}
