package store

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already in use")
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store is the postgres-backed persistence layer. Every resource query is
// scoped by the owning user id.
type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Migrate applies the embedded schema. Statements are idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	files, err := migrations.ReadDir("migrations")
	if err != nil {
		return err
	}
	for _, f := range files {
		b, err := migrations.ReadFile("migrations/" + f.Name())
		if err != nil {
			return err
		}
		if _, err := s.pool.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("migrate %s: %w", f.Name(), err)
		}
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// unique_violation
const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// nonNil keeps list columns from scanning to JSON null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// setList accumulates "col = $n" assignments for a partial update.
type setList struct {
	cols []string
	args []any
}

func (s *setList) add(col string, v any) {
	s.args = append(s.args, v)
	s.cols = append(s.cols, fmt.Sprintf("%s = $%d", col, len(s.args)))
}

// update runs a partial update of table row id owned by userID and scans the
// returned columns into dest. A missing or foreign row is ErrNotFound.
func (s *Store) update(ctx context.Context, table, userID, id string, set *setList, returning string, dest ...any) error {
	set.cols = append(set.cols, "updated_at = NOW()")
	args := append(set.args, id, userID)
	q := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d AND user_id = $%d RETURNING %s`,
		table, strings.Join(set.cols, ", "), len(args)-1, len(args), returning)
	return notFound(s.pool.QueryRow(ctx, q, args...).Scan(dest...))
}

// remove deletes table row id owned by userID.
func (s *Store) remove(ctx context.Context, table, userID, id string) error {
	tag, err := s.pool.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND user_id = $2`, table), id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
