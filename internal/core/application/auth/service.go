// Package auth implements registration and credential verification for user
// accounts. Passwords are hashed with bcrypt and successful logins are
// exchanged for signed JWTs.
package auth

import (
	"context"
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/user"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailTaken is returned when registering an email that already has
	// an account.
	ErrEmailTaken = errors.New("email is already registered")

	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match. The two cases are indistinguishable
	// on purpose.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountInactive is returned on login when the credentials are
	// correct but the account is not active.
	ErrAccountInactive = errors.New("account is not active")
)

// UserUoW manages transactions for account operations.
type UserUoW interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	UserRepository() ports.UserRepository
}

// UserUoWFactory creates new unit of work instances for account operations.
type UserUoWFactory interface {
	Create() UserUoW
}

// Service handles registration and login.
type Service struct {
	uowFactory      UserUoWFactory
	jwtSecret       string
	tokenTTLMinutes int
}

// NewService creates an auth service signing tokens with the given secret.
func NewService(uowFactory UserUoWFactory, jwtSecret string, tokenTTLMinutes int) *Service {
	return &Service{
		uowFactory:      uowFactory,
		jwtSecret:       jwtSecret,
		tokenTTLMinutes: tokenTTLMinutes,
	}
}

// RegisterRequest carries the fields needed to open an account.
type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Role      string
}

// LoginResult is a successful authentication outcome.
type LoginResult struct {
	Token string
	User  *user.User
}

// Register creates a new active account and returns a signed token for it.
// The role must be one of the known roles and the email must not be in use.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*LoginResult, error) {
	role, err := user.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	if req.Password == "" {
		return nil, errs.NewValueIsRequiredError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	exists, err := userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	aggregate, err := user.NewUser(
		kernel.NewUUID(),
		req.Email,
		string(hash),
		req.FirstName,
		req.LastName,
		req.Phone,
		role,
	)
	if err != nil {
		return nil, err
	}

	if err = userRepo.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(
		s.jwtSecret,
		aggregate.ID().String(),
		aggregate.Email(),
		aggregate.Role().String(),
		s.tokenTTLMinutes,
	)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: aggregate}, nil
}

// Login verifies the credentials and returns a signed token. Unknown emails
// and wrong passwords both map to ErrInvalidCredentials; inactive accounts
// with correct credentials map to ErrAccountInactive. The login time is
// recorded on success.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	aggregate, err := userRepo.GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(aggregate.PasswordHash()), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	if !aggregate.IsActive() {
		return nil, ErrAccountInactive
	}

	token, err := jwt.Generate(
		s.jwtSecret,
		aggregate.ID().String(),
		aggregate.Email(),
		aggregate.Role().String(),
		s.tokenTTLMinutes,
	)
	if err != nil {
		return nil, err
	}

	aggregate.RecordLogin(time.Now().UTC())
	if err = userRepo.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: aggregate}, nil
}
