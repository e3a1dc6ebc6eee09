package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/bobscoffee/loyalty/internal/domain/errors"
	"github.com/bobscoffee/loyalty/internal/domain/model"
	"github.com/bobscoffee/loyalty/internal/domain/repository"
)

// dbPool is the subset of pgxpool.Pool the storage relies on. Tests
// substitute a pgxmock pool through it.
type dbPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   dbPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type loyaltyRepository struct {
	storage *Storage
}

type transactionRepository struct {
	storage *Storage
}

// newPgxPool is replaced in tests to avoid a live connection.
var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (dbPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Loyalty() repository.LoyaltyRepository {
	return &loyaltyRepository{storage: s}
}

func (s *Storage) Transactions() repository.TransactionRepository {
	return &transactionRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            email TEXT NOT NULL,
            password_hash TEXT NOT NULL,
            roles TEXT[] NOT NULL DEFAULT '{}',
            coffee_count INT NOT NULL DEFAULT 0,
            qr_code_path TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS loyalty_transactions (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            amount INT NOT NULL,
            free_coffee BOOLEAN NOT NULL,
            performed_by BIGINT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS loyalty_stats (
            id INT PRIMARY KEY,
            used_cards BIGINT NOT NULL DEFAULT 0
        )`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_user ON loyalty_transactions(user_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const userColumns = `id, username, email, password_hash, roles, coffee_count, qr_code_path, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var (
		u     model.User
		roles []string
	)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &roles, &u.CoffeeCount, &u.QRCodePath, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	u.Roles = model.RoleSetFromStrings(roles)
	return &u, nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `INSERT INTO users (username, email, password_hash, roles, coffee_count, qr_code_path)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING id, created_at`
	stored := *user
	err := r.storage.pool.QueryRow(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.Roles.Strings(), user.CoffeeCount, user.QRCodePath,
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &stored, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, username))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) Exists(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM users WHERE username=$1)`
	var exists bool
	if err := r.storage.pool.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *userRepository) UpdateRoles(ctx context.Context, id int64, roles model.RoleSet) error {
	const query = `UPDATE users SET roles=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, roles.Strings(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, username string) (*model.User, error) {
	query := `DELETE FROM users WHERE username=$1 RETURNING ` + userColumns
	return scanUser(r.storage.pool.QueryRow(ctx, query, username))
}

// --- LoyaltyRepository implementation ---

func (r *loyaltyRepository) RecordScan(ctx context.Context, username string, amount int, performedBy *int64) (*model.ScanResult, error) {
	var result model.ScanResult
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		// the row lock serializes concurrent scans for the same user
		const lockQuery = `SELECT id, coffee_count FROM users WHERE username=$1 FOR UPDATE`
		var (
			userID int64
			count  int
		)
		if err := tx.QueryRow(ctx, lockQuery, username).Scan(&userID, &count); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		newCount, freeCoffee := model.ApplyScan(count, amount)

		if _, err := tx.Exec(ctx, `UPDATE users SET coffee_count=$1 WHERE id=$2`, newCount, userID); err != nil {
			return err
		}

		const insertTransaction = `INSERT INTO loyalty_transactions (user_id, amount, free_coffee, performed_by)
                                   VALUES ($1, $2, $3, $4)`
		if _, err := tx.Exec(ctx, insertTransaction, userID, amount, freeCoffee, performedBy); err != nil {
			return err
		}

		if freeCoffee {
			const bumpStats = `INSERT INTO loyalty_stats (id, used_cards)
                               VALUES (1, 1)
                               ON CONFLICT (id) DO UPDATE SET used_cards = loyalty_stats.used_cards + 1`
			if _, err := tx.Exec(ctx, bumpStats); err != nil {
				return err
			}
		}

		result = model.ScanResult{Username: username, CoffeeCount: newCount, FreeCoffee: freeCoffee}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *loyaltyRepository) ResetCount(ctx context.Context, username string) (*model.User, error) {
	query := `UPDATE users SET coffee_count=0 WHERE username=$1 RETURNING ` + userColumns
	return scanUser(r.storage.pool.QueryRow(ctx, query, username))
}

func (r *loyaltyRepository) RemoveOne(ctx context.Context, username string) (*model.User, error) {
	query := `UPDATE users SET coffee_count=GREATEST(coffee_count-1, 0) WHERE username=$1 RETURNING ` + userColumns
	return scanUser(r.storage.pool.QueryRow(ctx, query, username))
}

func (r *loyaltyRepository) Stats(ctx context.Context) (*model.CardStats, error) {
	const query = `SELECT used_cards FROM loyalty_stats WHERE id=1`
	var stats model.CardStats
	err := r.storage.pool.QueryRow(ctx, query).Scan(&stats.UsedCards)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &model.CardStats{}, nil
		}
		return nil, err
	}
	return &stats, nil
}

// --- TransactionRepository implementation ---

func (r *transactionRepository) ListByUser(ctx context.Context, userID int64) ([]model.LoyaltyTransaction, error) {
	const query = `SELECT id, user_id, amount, free_coffee, performed_by, created_at
                   FROM loyalty_transactions WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.LoyaltyTransaction
	for rows.Next() {
		var tr model.LoyaltyTransaction
		if err := rows.Scan(&tr.ID, &tr.UserID, &tr.Amount, &tr.FreeCoffee, &tr.PerformedBy, &tr.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
