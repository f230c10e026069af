package model

import "time"

// IntakeStatus is the lifecycle status stored with an intake row
type IntakeStatus string

const (
	IntakeDraft      IntakeStatus = "draft"
	IntakeInProgress IntakeStatus = "in-progress"
	IntakeCompleted  IntakeStatus = "completed"
)

// Valid reports whether s is one of the known statuses
func (s IntakeStatus) Valid() bool {
	switch s {
	case IntakeDraft, IntakeInProgress, IntakeCompleted:
		return true
	}
	return false
}

// DefaultProjectName is used when the caller supplies none
const DefaultProjectName = "Untitled Project"

// SubmissionRecord is the row shape inserted into the intakes table
type SubmissionRecord struct {
	ProjectName          string       `json:"project_name" bson:"project_name"`
	TargetAudience       string       `json:"target_audience" bson:"target_audience"`
	CoreProblem          string       `json:"core_problem" bson:"core_problem"`
	KeyFeatures          string       `json:"key_features" bson:"key_features"`
	TechnicalConstraints string       `json:"technical_constraints" bson:"technical_constraints"`
	SuccessMetric        string       `json:"success_metric" bson:"success_metric"`
	Status               IntakeStatus `json:"status" bson:"status"`
	UserID               *string      `json:"user_id" bson:"user_id"`
}

// Intake is a persisted intake row including server-assigned columns
type Intake struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
	SubmissionRecord `bson:",inline"`
}

// BrdGenerationStatus tracks the downstream document generator.
// Nothing in this module writes brd_results; the type mirrors the schema.
type BrdGenerationStatus string

const (
	BrdPending    BrdGenerationStatus = "pending"
	BrdProcessing BrdGenerationStatus = "processing"
	BrdCompleted  BrdGenerationStatus = "completed"
	BrdFailed     BrdGenerationStatus = "failed"
)
