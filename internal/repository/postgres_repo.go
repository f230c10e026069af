package repository

import (
	"context"
	"database/sql"
	"errors"
	"intakeflow/internal/apierr"
	"intakeflow/internal/model"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const intakesSchema = `
CREATE EXTENSION IF NOT EXISTS pgcrypto;

CREATE TABLE IF NOT EXISTS intakes (
	id                    UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	created_at            TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at            TIMESTAMPTZ NOT NULL DEFAULT now(),
	project_name          TEXT NOT NULL,
	target_audience       TEXT NOT NULL,
	core_problem          TEXT NOT NULL,
	key_features          TEXT NOT NULL,
	technical_constraints TEXT NOT NULL,
	success_metric        TEXT NOT NULL,
	status                TEXT NOT NULL DEFAULT 'draft'
		CHECK (status IN ('draft', 'in-progress', 'completed')),
	user_id               UUID
);

CREATE TABLE IF NOT EXISTS brd_results (
	id                UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	intake_id         UUID NOT NULL REFERENCES intakes(id) ON DELETE CASCADE,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	document_url      TEXT,
	document_content  TEXT,
	generation_status TEXT NOT NULL DEFAULT 'pending'
		CHECK (generation_status IN ('pending', 'processing', 'completed', 'failed')),
	error_message     TEXT,
	metadata          JSONB
);
`

const insertIntakeSQL = `
INSERT INTO intakes (
	project_name, target_audience, core_problem, key_features,
	technical_constraints, success_metric, status, user_id
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id::text`

// PostgresIntakeRepo writes intakes directly to a Postgres database
type PostgresIntakeRepo struct {
	db *sql.DB
}

// OpenPostgres opens and pings a database through the pgx driver
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewPostgresIntakeRepo creates a repository over an open database
func NewPostgresIntakeRepo(db *sql.DB) *PostgresIntakeRepo {
	return &PostgresIntakeRepo{db: db}
}

// EnsureSchema creates the intakes and brd_results tables if missing
func (r *PostgresIntakeRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, intakesSchema)
	return err
}

// Insert ignores accessToken; the database connection carries its own role.
func (r *PostgresIntakeRepo) Insert(ctx context.Context, rec *model.SubmissionRecord, accessToken string) (string, error) {
	var userID interface{}
	if rec.UserID != nil {
		userID = *rec.UserID
	}

	var id string
	err := r.db.QueryRowContext(ctx, insertIntakeSQL,
		rec.ProjectName,
		rec.TargetAudience,
		rec.CoreProblem,
		rec.KeyFeatures,
		rec.TechnicalConstraints,
		rec.SuccessMetric,
		string(rec.Status),
		userID,
	).Scan(&id)
	if err != nil {
		return "", classifyPostgresError(err)
	}
	return id, nil
}

func classifyPostgresError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &StoreError{Code: pgErr.Code, Message: pgErr.Message, Err: err}
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || errors.Is(err, sql.ErrConnDone) || pgconn.Timeout(err) {
		return &StoreError{Code: apierr.BackendConnection, Message: err.Error(), Err: err}
	}
	if errors.Is(err, sql.ErrNoRows) {
		return &StoreError{Code: apierr.BackendNoRows, Message: "no row returned from insert", Err: err}
	}
	return err
}
