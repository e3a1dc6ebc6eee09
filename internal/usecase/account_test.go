package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	domainErrors "github.com/bobscoffee/loyalty/internal/domain/errors"
	"github.com/bobscoffee/loyalty/internal/domain/model"
	pkgAuth "github.com/bobscoffee/loyalty/internal/pkg/auth"
	"github.com/bobscoffee/loyalty/internal/test"
)

func newAccountFixture() (*AccountUseCase, *test.UserRepositoryStub, *test.IssuerStub) {
	users := test.NewUserRepositoryStub()
	issuer := &test.IssuerStub{}
	uc := NewAccountUseCase(users, test.HasherStub{}, test.StrategyStub{}, issuer, "qrcodes")
	return uc, users, issuer
}

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc, _, issuer := newAccountFixture()

		user, err := uc.Register(context.Background(), " alice ", "alice@example.com", "password123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Username != "alice" {
			t.Fatalf("expected trimmed username, got %q", user.Username)
		}
		if !user.Roles.Has(model.RoleCustomer) || user.Roles.Len() != 1 {
			t.Fatalf("expected customer role only, got %v", user.Roles.Strings())
		}
		if user.PasswordHash != "hash:password123" {
			t.Fatalf("unexpected hash: %q", user.PasswordHash)
		}
		if len(issuer.Generated) != 1 || !strings.HasPrefix(user.QRCodePath, "qrcodes/user_") {
			t.Fatalf("expected generated QR image, got %q", user.QRCodePath)
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		uc, _, _ := newAccountFixture()

		cases := []struct {
			name     string
			username string
			email    string
			password string
		}{
			{"empty username", "", "a@b.c", "password123"},
			{"empty email", "alice", "", "password123"},
			{"bad email", "alice", "not-an-email", "password123"},
			{"short password", "alice", "a@b.c", "short"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := uc.Register(context.Background(), tc.username, tc.email, tc.password); !errors.Is(err, domainErrors.ErrValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
			})
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		uc, users, _ := newAccountFixture()
		users.Seed(&model.User{Username: "alice"})

		if _, err := uc.Register(context.Background(), "alice", "a@b.c", "password123"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
			t.Fatalf("expected already exists, got %v", err)
		}
	})

	t.Run("qr failure writes no row", func(t *testing.T) {
		uc, users, issuer := newAccountFixture()
		issuer.GenerateFn = func(string, string, string) (string, error) {
			return "", errors.New("disk full")
		}

		if _, err := uc.Register(context.Background(), "alice", "a@b.c", "password123"); err == nil {
			t.Fatal("expected error")
		}
		if exists, _ := users.Exists(context.Background(), "alice"); exists {
			t.Fatal("user must not be stored when QR rendering fails")
		}
	})

	t.Run("insert failure removes image", func(t *testing.T) {
		uc, users, issuer := newAccountFixture()
		users.CreateErr = errors.New("insert failed")

		if _, err := uc.Register(context.Background(), "alice", "a@b.c", "password123"); err == nil {
			t.Fatal("expected error")
		}
		if len(issuer.Removed) != 1 {
			t.Fatalf("expected QR rollback, removed=%v", issuer.Removed)
		}
		if issuer.Removed[0] != issuer.Generated[0] {
			t.Fatalf("removed wrong file: %q vs %q", issuer.Removed[0], issuer.Generated[0])
		}
	})
}

func TestCreateAccount(t *testing.T) {
	t.Run("grants requested roles plus customer", func(t *testing.T) {
		uc, _, _ := newAccountFixture()

		user, err := uc.CreateAccount(context.Background(), "bob", "b@b.c", "password123", []string{"Barista"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !user.Roles.Has(model.RoleBarista) || !user.Roles.Has(model.RoleCustomer) {
			t.Fatalf("unexpected roles: %v", user.Roles.Strings())
		}
	})

	t.Run("empty roles yields plain customer", func(t *testing.T) {
		uc, _, _ := newAccountFixture()

		user, err := uc.CreateAccount(context.Background(), "bob", "b@b.c", "password123", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Roles.Len() != 1 || !user.Roles.Has(model.RoleCustomer) {
			t.Fatalf("unexpected roles: %v", user.Roles.Strings())
		}
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		uc, _, _ := newAccountFixture()

		if _, err := uc.CreateAccount(context.Background(), "bob", "b@b.c", "password123", []string{"Owner"}); !errors.Is(err, domainErrors.ErrInvalidRole) {
			t.Fatalf("expected invalid role, got %v", err)
		}
	})
}

func TestAuthenticate(t *testing.T) {
	seed := func(users *test.UserRepositoryStub) {
		users.Seed(&model.User{ID: 1, Username: "alice", PasswordHash: "hash:password123"})
	}

	t.Run("success", func(t *testing.T) {
		uc, users, _ := newAccountFixture()
		seed(users)

		user, token, err := uc.Authenticate(context.Background(), "alice", "password123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != 1 || token != "token" {
			t.Fatalf("unexpected result: %+v %q", user, token)
		}
	})

	t.Run("unknown user and wrong password are the same error", func(t *testing.T) {
		uc, users, _ := newAccountFixture()
		seed(users)

		_, _, errGhost := uc.Authenticate(context.Background(), "ghost", "password123")
		_, _, errWrong := uc.Authenticate(context.Background(), "alice", "wrong")
		if !errors.Is(errGhost, domainErrors.ErrInvalidCredentials) || !errors.Is(errWrong, domainErrors.ErrInvalidCredentials) {
			t.Fatalf("expected invalid credentials for both, got %v / %v", errGhost, errWrong)
		}
	})

	t.Run("empty credentials", func(t *testing.T) {
		uc, _, _ := newAccountFixture()

		if _, _, err := uc.Authenticate(context.Background(), "", "password123"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
			t.Fatalf("expected invalid credentials, got %v", err)
		}
		if _, _, err := uc.Authenticate(context.Background(), "alice", ""); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
			t.Fatalf("expected invalid credentials, got %v", err)
		}
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		uc, users, _ := newAccountFixture()
		users.GetErr = errors.New("db down")

		if _, _, err := uc.Authenticate(context.Background(), "alice", "password123"); errors.Is(err, domainErrors.ErrInvalidCredentials) || err == nil {
			t.Fatalf("expected raw failure, got %v", err)
		}
	})
}

func TestParseToken(t *testing.T) {
	uc, _, _ := newAccountFixture()

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
	id, err := uc.ParseToken("token")
	if err != nil || id != 1 {
		t.Fatalf("unexpected result: %d %v", id, err)
	}
}

func TestAssignRole(t *testing.T) {
	seed := func(users *test.UserRepositoryStub) {
		users.Seed(&model.User{ID: 1, Username: "alice", Roles: model.NewRoleSet(model.RoleCustomer)})
	}

	t.Run("grant", func(t *testing.T) {
		uc, users, _ := newAccountFixture()
		seed(users)

		user, err := uc.AssignRole(context.Background(), "alice", "Barista", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !user.Roles.Has(model.RoleBarista) {
			t.Fatalf("expected barista role, got %v", user.Roles.Strings())
		}
		stored, _ := users.GetByUsername(context.Background(), "alice")
		if !stored.Roles.Has(model.RoleBarista) {
			t.Fatal("role not persisted")
		}
	})

	t.Run("revoke", func(t *testing.T) {
		uc, users, _ := newAccountFixture()
		users.Seed(&model.User{ID: 1, Username: "alice", Roles: model.NewRoleSet(model.RoleCustomer, model.RoleBarista)})

		user, err := uc.AssignRole(context.Background(), "alice", "Barista", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Roles.Has(model.RoleBarista) {
			t.Fatalf("expected role revoked, got %v", user.Roles.Strings())
		}
	})

	t.Run("granting held role skips persistence", func(t *testing.T) {
		uc, users, _ := newAccountFixture()
		seed(users)
		users.UpdateErr = errors.New("must not be called")

		if _, err := uc.AssignRole(context.Background(), "alice", "Customer", true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		uc, users, _ := newAccountFixture()
		seed(users)

		if _, err := uc.AssignRole(context.Background(), "alice", "Owner", true); !errors.Is(err, domainErrors.ErrInvalidRole) {
			t.Fatalf("expected invalid role, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		uc, _, _ := newAccountFixture()

		if _, err := uc.AssignRole(context.Background(), "ghost", "Barista", true); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Run("removes row and image", func(t *testing.T) {
		uc, users, issuer := newAccountFixture()
		users.Seed(&model.User{ID: 1, Username: "alice", QRCodePath: "qrcodes/user_1.png"})

		if err := uc.DeleteAccount(context.Background(), "alice"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists, _ := users.Exists(context.Background(), "alice"); exists {
			t.Fatal("user still stored")
		}
		if len(issuer.Removed) != 1 || issuer.Removed[0] != "qrcodes/user_1.png" {
			t.Fatalf("expected image removal, got %v", issuer.Removed)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		uc, _, _ := newAccountFixture()

		if err := uc.DeleteAccount(context.Background(), "ghost"); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestQRCode(t *testing.T) {
	t.Run("serves image bytes", func(t *testing.T) {
		uc, users, issuer := newAccountFixture()
		users.Seed(&model.User{ID: 1, Username: "alice", QRCodePath: "qrcodes/user_1.png"})
		issuer.ReadFn = func(path string) ([]byte, error) {
			if path != "qrcodes/user_1.png" {
				return nil, errors.New("wrong path")
			}
			return []byte("png-bytes"), nil
		}

		data, err := uc.QRCode(context.Background(), "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != "png-bytes" {
			t.Fatalf("unexpected payload: %q", data)
		}
	})

	t.Run("missing file maps to not found", func(t *testing.T) {
		uc, users, issuer := newAccountFixture()
		users.Seed(&model.User{ID: 1, Username: "alice", QRCodePath: "gone.png"})
		issuer.ReadFn = func(string) ([]byte, error) { return nil, errors.New("no such file") }

		if _, err := uc.QRCode(context.Background(), "alice"); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		uc, _, _ := newAccountFixture()

		if _, err := uc.QRCode(context.Background(), "ghost"); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}
