package repository

import (
	"context"
	"intakeflow/internal/model"
	"intakeflow/internal/supabase"
)

type postgrestIntakeRepo struct {
	client *supabase.Client
}

// NewPostgRESTIntakeRepo stores intakes through a Supabase project's REST API
func NewPostgRESTIntakeRepo(client *supabase.Client) IntakeRepo {
	return &postgrestIntakeRepo{client: client}
}

func (r *postgrestIntakeRepo) Insert(ctx context.Context, rec *model.SubmissionRecord, accessToken string) (string, error) {
	var row struct {
		ID string `json:"id"`
	}
	if err := r.client.Insert(ctx, IntakesTable, rec, &row, accessToken); err != nil {
		return "", err
	}
	return row.ID, nil
}
