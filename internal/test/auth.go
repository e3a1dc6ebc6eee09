package test

import (
	"errors"
	"os"
	"path/filepath"

	pkgAuth "github.com/bobscoffee/loyalty/internal/pkg/auth"
	"github.com/bobscoffee/loyalty/internal/pkg/qr"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(int64) (string, error)
	ParseFn func(string) (int64, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(userID int64) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	ID      int64
	Err     error
	ParseFn func(string) (int64, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	return s.ID, nil
}

// IssuerStub fakes QR code generation without touching image encoding.
type IssuerStub struct {
	GenerateFn func(payload, dir, filename string) (string, error)
	ReadFn     func(path string) ([]byte, error)
	RemoveFn   func(path string) error

	Generated []string
	Removed   []string
}

// Generate records the requested path and writes a marker file.
func (s *IssuerStub) Generate(payload, dir, filename string) (string, error) {
	if s.GenerateFn != nil {
		return s.GenerateFn(payload, dir, filename)
	}
	path := filepath.Join(dir, filename+".png")
	s.Generated = append(s.Generated, path)
	return path, nil
}

// Read returns the marker file contents or a fixed payload.
func (s *IssuerStub) Read(path string) ([]byte, error) {
	if s.ReadFn != nil {
		return s.ReadFn(path)
	}
	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	}
	return []byte("png"), nil
}

// Remove records removal requests.
func (s *IssuerStub) Remove(path string) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(path)
	}
	s.Removed = append(s.Removed, path)
	return nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
var _ qr.Issuer = (*IssuerStub)(nil)
