package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"intakeflow/internal/apierr"
	"intakeflow/internal/model"
	"intakeflow/internal/supabase"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func sampleRecord() *model.SubmissionRecord {
	uid := "0b7f6c6e-1111-4a43-9d36-1f1f6c1d9a10"
	return &model.SubmissionRecord{
		ProjectName:          "Portal",
		TargetAudience:       "75 account executives",
		CoreProblem:          "Reps lose 5 hours weekly",
		KeyFeatures:          "Unified search",
		TechnicalConstraints: "Salesforce API limits",
		SuccessMetric:        "20% faster quotes",
		Status:               model.IntakeCompleted,
		UserID:               &uid,
	}
}

func TestPostgRESTIntakeRepo_Insert(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/intakes", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"a1b2"}`))
	}))
	defer srv.Close()

	client, err := supabase.New(supabase.Config{URL: srv.URL, AnonKey: "anon"})
	require.NoError(t, err)

	id, err := NewPostgRESTIntakeRepo(client).Insert(context.Background(), sampleRecord(), "")
	require.NoError(t, err)
	assert.Equal(t, "a1b2", id)
}

func TestPostgRESTIntakeRepo_ErrorCarriesCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"code":"23503","message":"insert violates foreign key constraint"}`))
	}))
	defer srv.Close()

	client, err := supabase.New(supabase.Config{URL: srv.URL, AnonKey: "anon"})
	require.NoError(t, err)

	_, err = NewPostgRESTIntakeRepo(client).Insert(context.Background(), sampleRecord(), "")
	code, ok := BackendCodeOf(err)
	require.True(t, ok)
	assert.Equal(t, apierr.BackendForeignKeyViolation, code)
}

func TestClassifyPostgresError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"unique", &pgconn.PgError{Code: "23505", Message: "duplicate key"}, apierr.BackendUniqueViolation},
		{"foreign key", fmt.Errorf("query: %w", &pgconn.PgError{Code: "23503"}), apierr.BackendForeignKeyViolation},
		{"conn done", sql.ErrConnDone, apierr.BackendConnection},
		{"no rows", sql.ErrNoRows, apierr.BackendNoRows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := BackendCodeOf(classifyPostgresError(tt.err))
			require.True(t, ok)
			assert.Equal(t, tt.code, code)
		})
	}

	t.Run("unclassified error passes through", func(t *testing.T) {
		plain := errors.New("boom")
		got := classifyPostgresError(plain)
		assert.Same(t, plain, got)
		_, ok := BackendCodeOf(got)
		assert.False(t, ok)
	})
}

func TestClassifyMongoError(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key"}}}
	code, ok := BackendCodeOf(classifyMongoError(dup))
	require.True(t, ok)
	assert.Equal(t, apierr.BackendUniqueViolation, code)

	plain := errors.New("boom")
	assert.Same(t, plain, classifyMongoError(plain))
}

func TestStoreErrorUnwraps(t *testing.T) {
	inner := errors.New("inner")
	err := &StoreError{Code: "23505", Message: "dup", Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "dup", err.Error())
}
