package service

import (
	"intakeflow/internal/apierr"
	"intakeflow/internal/catalog"
	"intakeflow/internal/model"
	"strings"
)

// Intake table columns
const (
	ColumnProjectName          = "project_name"
	ColumnTargetAudience       = "target_audience"
	ColumnCoreProblem          = "core_problem"
	ColumnKeyFeatures          = "key_features"
	ColumnTechnicalConstraints = "technical_constraints"
	ColumnSuccessMetric        = "success_metric"
)

// PersistedQuestionIDs are the question IDs stored in an intake row.
// The UX principles and rollout plan answers are not persisted.
var PersistedQuestionIDs = []string{
	catalog.BusinessImpact,
	catalog.UserValue,
	catalog.TechnicalScope,
	catalog.Dependencies,
	catalog.SuccessMetrics,
}

// QuestionColumns maps each persisted question ID to its column
var QuestionColumns = map[string]string{
	catalog.BusinessImpact: ColumnCoreProblem,
	catalog.UserValue:      ColumnTargetAudience,
	catalog.TechnicalScope: ColumnKeyFeatures,
	catalog.Dependencies:   ColumnTechnicalConstraints,
	catalog.SuccessMetrics: ColumnSuccessMetric,
}

// RequiredColumns must be non-blank before a record is submitted
var RequiredColumns = []string{
	ColumnProjectName,
	ColumnTargetAudience,
	ColumnCoreProblem,
	ColumnKeyFeatures,
	ColumnTechnicalConstraints,
	ColumnSuccessMetric,
}

// ToRecord shapes an answer set into an intakes row. Missing answers become
// empty strings; nil projectName and status take their defaults.
func ToRecord(answers model.AnswerSet, projectName *string, status *model.IntakeStatus) model.SubmissionRecord {
	rec := model.SubmissionRecord{
		ProjectName: model.DefaultProjectName,
		Status:      model.IntakeCompleted,
	}
	if projectName != nil {
		rec.ProjectName = *projectName
	}
	if status != nil {
		rec.Status = *status
	}
	for _, id := range PersistedQuestionIDs {
		setColumn(&rec, QuestionColumns[id], answers.Get(id))
	}
	return rec
}

// ValidateRecord checks the required columns locally. It returns nil when
// the record may be submitted.
func ValidateRecord(rec model.SubmissionRecord) *apierr.Error {
	for _, col := range RequiredColumns {
		if strings.TrimSpace(column(rec, col)) == "" {
			return apierr.New(apierr.CodeMissingRequiredField,
				apierr.WithMessagef("Missing required field: %s", col))
		}
	}
	return nil
}

func column(rec model.SubmissionRecord, col string) string {
	switch col {
	case ColumnProjectName:
		return rec.ProjectName
	case ColumnTargetAudience:
		return rec.TargetAudience
	case ColumnCoreProblem:
		return rec.CoreProblem
	case ColumnKeyFeatures:
		return rec.KeyFeatures
	case ColumnTechnicalConstraints:
		return rec.TechnicalConstraints
	case ColumnSuccessMetric:
		return rec.SuccessMetric
	}
	return ""
}

func setColumn(rec *model.SubmissionRecord, col, val string) {
	switch col {
	case ColumnProjectName:
		rec.ProjectName = val
	case ColumnTargetAudience:
		rec.TargetAudience = val
	case ColumnCoreProblem:
		rec.CoreProblem = val
	case ColumnKeyFeatures:
		rec.KeyFeatures = val
	case ColumnTechnicalConstraints:
		rec.TechnicalConstraints = val
	case ColumnSuccessMetric:
		rec.SuccessMetric = val
	}
}
