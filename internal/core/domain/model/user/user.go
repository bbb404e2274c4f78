package user

import (
	"errors"
	"strings"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

	ErrEmailIsRequired        = errs.NewValueIsRequiredError("email")
	ErrEmailIsInvalid         = errs.NewValueIsInvalidError("email")
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("password hash")
	ErrFirstNameIsRequired    = errs.NewValueIsRequiredError("first name")
	ErrLastNameIsRequired     = errs.NewValueIsRequiredError("last name")
)

// User is an account in the system. It stores only the password hash; plain
// passwords never cross the domain boundary.
type User struct {
	id           kernel.UUID
	email        string
	passwordHash string
	firstName    string
	lastName     string
	phone        string
	role         Role
	status       Status
	lastLoginAt  *time.Time

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewUser creates an active User with both timestamps set to the current time.
func NewUser(
	id kernel.UUID,
	email string,
	passwordHash string,
	firstName string,
	lastName string,
	phone string,
	role Role,
) (*User, error) {
	now := time.Now().UTC()
	u := &User{
		phone:     phone,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setFirstName(firstName),
		u.setLastName(lastName),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persisted state.
func RestoreUser(
	id kernel.UUID,
	email string,
	passwordHash string,
	firstName string,
	lastName string,
	phone string,
	role Role,
	status Status,
	lastLoginAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*User, error) {
	u := &User{
		phone:       phone,
		lastLoginAt: lastLoginAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setFirstName(firstName),
		u.setLastName(lastName),
		u.setRole(role),
		u.setStatus(status),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

func (u *User) ID() kernel.UUID         { return u.id }
func (u *User) Email() string           { return u.email }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) FirstName() string       { return u.firstName }
func (u *User) LastName() string        { return u.lastName }
func (u *User) Phone() string           { return u.phone }
func (u *User) Role() Role              { return u.role }
func (u *User) Status() Status          { return u.status }
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }

// FullName returns the first and last names joined with a space.
func (u *User) FullName() string {
	return u.firstName + " " + u.lastName
}

// IsActive reports whether the account may log in.
func (u *User) IsActive() bool { return u.status == StatusActive }

// IsAdmin reports whether the account has the admin role.
func (u *User) IsAdmin() bool { return u.role == RoleAdmin }

// CanCreateOrders reports whether the account may create orders.
// Clients create their own orders, admins can create on anyone's behalf.
func (u *User) CanCreateOrders() bool {
	return u.role == RoleClient || u.role == RoleAdmin
}

// CanDeliverOrders reports whether the account may be assigned deliveries.
func (u *User) CanDeliverOrders() bool {
	return u.role == RoleCarrier || u.role == RoleAdmin
}

// Rename updates the first and last names.
func (u *User) Rename(firstName, lastName string) error {
	if err := errors.Join(
		u.setFirstName(firstName),
		u.setLastName(lastName),
	); err != nil {
		return err
	}
	u.touch()
	return nil
}

// ChangePhone updates the contact phone number.
func (u *User) ChangePhone(phone string) {
	u.phone = phone
	u.touch()
}

// ChangeStatus overwrites the account status with any valid value.
func (u *User) ChangeStatus(status Status) error {
	if err := u.setStatus(status); err != nil {
		return err
	}
	u.touch()
	return nil
}

// ChangeRole overwrites the account role with any valid value.
func (u *User) ChangeRole(role Role) error {
	if err := u.setRole(role); err != nil {
		return err
	}
	u.touch()
	return nil
}

// ChangePasswordHash replaces the stored password hash.
func (u *User) ChangePasswordHash(passwordHash string) error {
	if err := u.setPasswordHash(passwordHash); err != nil {
		return err
	}
	u.touch()
	return nil
}

// RecordLogin stores the time of a successful login.
func (u *User) RecordLogin(at time.Time) {
	u.lastLoginAt = &at
	u.touch()
}

func (u *User) touch() {
	u.updatedAt = time.Now().UTC()
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrEmailIsInvalid
	}
	u.email = strings.ToLower(email)
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return ErrPasswordHashIsRequired
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}
	u.firstName = firstName
	return nil
}

func (u *User) setLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}
	u.lastName = lastName
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	u.status = status
	return nil
}
