package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/bobscoffee/loyalty/internal/domain/errors"
	"github.com/bobscoffee/loyalty/internal/domain/model"
	"github.com/bobscoffee/loyalty/internal/domain/repository"
	pkgAuth "github.com/bobscoffee/loyalty/internal/pkg/auth"
	"github.com/bobscoffee/loyalty/internal/pkg/qr"
)

// AccountUseCase handles account lifecycle, credentials and role management.
type AccountUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
	issuer qr.Issuer
	qrDir  string
}

// NewAccountUseCase constructs AccountUseCase.
func NewAccountUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, issuer qr.Issuer, qrDir string) *AccountUseCase {
	return &AccountUseCase{users: users, hasher: hasher, tokens: strategy, issuer: issuer, qrDir: qrDir}
}

// Register creates a new customer account with a fresh QR card. The QR
// image and the user row are all-or-nothing: a failed insert removes the
// image, a failed render writes no row.
func (u *AccountUseCase) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	return u.create(ctx, username, email, password, model.NewRoleSet(model.RoleCustomer))
}

// CreateAccount provisions an account with an explicit role set. Reserved
// for admin callers; an empty list yields a plain customer.
func (u *AccountUseCase) CreateAccount(ctx context.Context, username, email, password string, roleNames []string) (*model.User, error) {
	roles := model.NewRoleSet(model.RoleCustomer)
	for _, name := range roleNames {
		role, ok := model.ParseRole(name)
		if !ok {
			return nil, domainErrors.ErrInvalidRole
		}
		roles = roles.Grant(role)
	}
	return u.create(ctx, username, email, password, roles)
}

func (u *AccountUseCase) create(ctx context.Context, username, email, password string, roles model.RoleSet) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if err := ValidateRegistration(username, email, password); err != nil {
		return nil, err
	}

	exists, err := u.users.Exists(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domainErrors.ErrAlreadyExists
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	qrPath, err := u.issuer.Generate(username, u.qrDir, "user_"+uuid.NewString())
	if err != nil {
		return nil, err
	}

	user, err := u.users.Create(ctx, &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Roles:        roles,
		CoffeeCount:  0,
		QRCodePath:   qrPath,
	})
	if err != nil {
		// roll back the image so a lost duplicate race leaves no orphan file
		_ = u.issuer.Remove(qrPath)
		return nil, err
	}

	return user, nil
}

// Authenticate validates credentials and returns the user with an auth
// token. Absent user and wrong password are indistinguishable to callers.
func (u *AccountUseCase) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AccountUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// UserByID fetches user by identifier.
func (u *AccountUseCase) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// UserByUsername fetches user by name.
func (u *AccountUseCase) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	return u.users.GetByUsername(ctx, username)
}

// AssignRole grants or revokes a role tag. Granting a held role or
// revoking an absent one is a no-op.
func (u *AccountUseCase) AssignRole(ctx context.Context, username, roleName string, grant bool) (*model.User, error) {
	role, ok := model.ParseRole(roleName)
	if !ok {
		return nil, domainErrors.ErrInvalidRole
	}

	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	updated := user.Roles.Revoke(role)
	if grant {
		updated = user.Roles.Grant(role)
	}
	if updated.Len() == user.Roles.Len() {
		return user, nil
	}

	if err := u.users.UpdateRoles(ctx, user.ID, updated); err != nil {
		return nil, err
	}
	user.Roles = updated
	return user, nil
}

// DeleteAccount removes the user row and its QR image.
func (u *AccountUseCase) DeleteAccount(ctx context.Context, username string) error {
	user, err := u.users.Delete(ctx, username)
	if err != nil {
		return err
	}
	// the row is gone either way, a stray image is harmless
	_ = u.issuer.Remove(user.QRCodePath)
	return nil
}

// QRCode returns the PNG bytes of a user's loyalty card.
func (u *AccountUseCase) QRCode(ctx context.Context, username string) ([]byte, error) {
	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	data, err := u.issuer.Read(user.QRCodePath)
	if err != nil {
		return nil, domainErrors.ErrNotFound
	}
	return data, nil
}
