// README: Contact-query store backed by PostgreSQL.
package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Insert(ctx context.Context, q *Query) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO contact_queries (id, name, email, phone, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		q.ID, q.Name, q.Email, q.Phone, q.Message, q.Read, q.CreatedAt,
	)
	return err
}

func (s *PostgresStore) List(ctx context.Context) ([]Query, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, email, phone, message, read, created_at
		FROM contact_queries
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Query
	for rows.Next() {
		var q Query
		if err := rows.Scan(&q.ID, &q.Name, &q.Email, &q.Phone, &q.Message, &q.Read, &q.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *PostgresStore) SetRead(ctx context.Context, id string, read bool) (bool, error) {
	tag, err := s.db.Exec(ctx, `UPDATE contact_queries SET read = $1 WHERE id = $2`, read, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM contact_queries WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
