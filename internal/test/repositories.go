package test

import (
	"context"
	"sort"
	"sync"

	"github.com/bobscoffee/loyalty/internal/domain/errors"
	"github.com/bobscoffee/loyalty/internal/domain/model"
	"github.com/bobscoffee/loyalty/internal/domain/repository"
)

// UserRepositoryStub keeps users in memory keyed by username.
type UserRepositoryStub struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*model.User

	CreateErr error
	GetErr    error
	UpdateErr error
	DeleteErr error
}

// NewUserRepositoryStub constructs an empty in-memory user repository.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{users: make(map[string]*model.User)}
}

// Create stores the user assigning a sequential identifier.
func (s *UserRepositoryStub) Create(_ context.Context, user *model.User) (*model.User, error) {
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Username]; ok {
		return nil, errors.ErrAlreadyExists
	}
	s.nextID++
	stored := *user
	stored.ID = s.nextID
	s.users[user.Username] = &stored
	out := stored
	return &out, nil
}

// GetByUsername returns a copy of the stored user.
func (s *UserRepositoryStub) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[username]
	if !ok {
		return nil, errors.ErrNotFound
	}
	out := *user
	return &out, nil
}

// GetByID scans stored users for the matching identifier.
func (s *UserRepositoryStub) GetByID(_ context.Context, id int64) (*model.User, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.ID == id {
			out := *user
			return &out, nil
		}
	}
	return nil, errors.ErrNotFound
}

// Exists reports whether the username is already taken.
func (s *UserRepositoryStub) Exists(_ context.Context, username string) (bool, error) {
	if s.GetErr != nil {
		return false, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[username]
	return ok, nil
}

// UpdateRoles replaces the stored role set.
func (s *UserRepositoryStub) UpdateRoles(_ context.Context, id int64, roles model.RoleSet) error {
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.ID == id {
			user.Roles = roles
			return nil
		}
	}
	return errors.ErrNotFound
}

// Delete removes the user returning the deleted record.
func (s *UserRepositoryStub) Delete(_ context.Context, username string) (*model.User, error) {
	if s.DeleteErr != nil {
		return nil, s.DeleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[username]
	if !ok {
		return nil, errors.ErrNotFound
	}
	delete(s.users, username)
	out := *user
	return &out, nil
}

// Seed inserts a user directly bypassing Create semantics.
func (s *UserRepositoryStub) Seed(user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == 0 {
		s.nextID++
		user.ID = s.nextID
	} else if user.ID > s.nextID {
		s.nextID = user.ID
	}
	stored := *user
	s.users[user.Username] = &stored
}

// RecordedScan captures the arguments of a RecordScan invocation.
type RecordedScan struct {
	Username    string
	Amount      int
	PerformedBy *int64
}

// LoyaltyRepositoryStub applies scan arithmetic against the user stub.
type LoyaltyRepositoryStub struct {
	Users *UserRepositoryStub

	ScanErr   error
	StatsErr  error
	UsedCards int64

	mu    sync.Mutex
	scans []RecordedScan
}

// RecordScan mirrors the storage transaction against in-memory state.
func (s *LoyaltyRepositoryStub) RecordScan(_ context.Context, username string, amount int, performedBy *int64) (*model.ScanResult, error) {
	if s.ScanErr != nil {
		return nil, s.ScanErr
	}
	s.Users.mu.Lock()
	defer s.Users.mu.Unlock()
	user, ok := s.Users.users[username]
	if !ok {
		return nil, errors.ErrNotFound
	}
	newCount, free := model.ApplyScan(user.CoffeeCount, amount)
	user.CoffeeCount = newCount
	if free {
		s.UsedCards++
	}
	s.mu.Lock()
	s.scans = append(s.scans, RecordedScan{Username: username, Amount: amount, PerformedBy: performedBy})
	s.mu.Unlock()
	return &model.ScanResult{Username: username, CoffeeCount: newCount, FreeCoffee: free}, nil
}

// ResetCount zeroes the counter without touching the card statistics.
func (s *LoyaltyRepositoryStub) ResetCount(_ context.Context, username string) (*model.User, error) {
	if s.ScanErr != nil {
		return nil, s.ScanErr
	}
	s.Users.mu.Lock()
	defer s.Users.mu.Unlock()
	user, ok := s.Users.users[username]
	if !ok {
		return nil, errors.ErrNotFound
	}
	user.CoffeeCount = 0
	out := *user
	return &out, nil
}

// RemoveOne decrements the counter clamping at zero.
func (s *LoyaltyRepositoryStub) RemoveOne(_ context.Context, username string) (*model.User, error) {
	if s.ScanErr != nil {
		return nil, s.ScanErr
	}
	s.Users.mu.Lock()
	defer s.Users.mu.Unlock()
	user, ok := s.Users.users[username]
	if !ok {
		return nil, errors.ErrNotFound
	}
	if user.CoffeeCount > 0 {
		user.CoffeeCount--
	}
	out := *user
	return &out, nil
}

// Stats reports the number of completed cards.
func (s *LoyaltyRepositoryStub) Stats(context.Context) (*model.CardStats, error) {
	if s.StatsErr != nil {
		return nil, s.StatsErr
	}
	return &model.CardStats{UsedCards: s.UsedCards}, nil
}

// Scans returns the recorded scan calls in order.
func (s *LoyaltyRepositoryStub) Scans() []RecordedScan {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedScan, len(s.scans))
	copy(out, s.scans)
	return out
}

// TransactionRepositoryStub serves a fixed transaction history.
type TransactionRepositoryStub struct {
	Transactions []model.LoyaltyTransaction
	ListErr      error
}

// ListByUser filters stored transactions by user sorted newest first.
func (s *TransactionRepositoryStub) ListByUser(_ context.Context, userID int64) ([]model.LoyaltyTransaction, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	var out []model.LoyaltyTransaction
	for _, tx := range s.Transactions {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

var _ repository.UserRepository = (*UserRepositoryStub)(nil)
var _ repository.LoyaltyRepository = (*LoyaltyRepositoryStub)(nil)
var _ repository.TransactionRepository = (*TransactionRepositoryStub)(nil)
