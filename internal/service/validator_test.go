package service

import (
	"intakeflow/internal/catalog"
	"intakeflow/internal/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasMetrics(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"We will save 5 hours weekly", true},
		{"$150K annually", true},
		{"improve experience", false},
		{"reduce churn by 20%", true},
		{"5 hours per week today", true},
		{"Roughly 300 USERS are affected", true},
		{"ships in 10 days", true},
		{"10 Days", true},
		{"reps spend 8-10 hours weekly", false},
		{"75users", false},
		{"5  hours", false},
		{"about twenty percent", false},
		{"costs $ 100", false},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			assert.Equal(t, tt.want, HasMetrics(tt.answer))
		})
	}
}

func TestValidateResponse(t *testing.T) {
	q1, ok := catalog.ByID(catalog.BusinessImpact)
	require.True(t, ok)
	q3, ok := catalog.ByID(catalog.TechnicalScope)
	require.True(t, ok)

	long := strings.Repeat("a", 150)

	tests := []struct {
		name   string
		answer string
		def    model.QuestionDefinition
		want   model.ValidationState
	}{
		{"empty", "", q1, model.ValidationIncomplete},
		{"one short", strings.Repeat("a", 149), q1, model.ValidationIncomplete},
		{"padding is trimmed", "   " + strings.Repeat("a", 149) + "\n\t", q1, model.ValidationIncomplete},
		{"long without metrics", long, q1, model.ValidationNeedsMetrics},
		{"long with percentage", long + " cut errors by 30%", q1, model.ValidationValid},
		{"long with currency", "$150K annually " + long, q1, model.ValidationValid},
		{"metrics not required", long, q3, model.ValidationValid},
		{"short but with metrics", "save 5 hours", q1, model.ValidationIncomplete},
		{"multibyte characters count once", strings.Repeat("é", 150), q3, model.ValidationValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateResponse(tt.answer, tt.def))
		})
	}
}

func TestValidateResponse_PrefixMonotonic(t *testing.T) {
	def, _ := catalog.ByID(catalog.UserValue)
	full := strings.Repeat("We will save 5 hours weekly. ", 10)[:def.MinCharacters-1]

	for i := 0; i <= len(full); i++ {
		assert.Equal(t, model.ValidationIncomplete, ValidateResponse(full[:i], def), "prefix length %d", i)
	}
}

func TestValidateResponse_Deterministic(t *testing.T) {
	def, _ := catalog.ByID(catalog.SuccessMetrics)
	answer := strings.Repeat("grow weekly active usage steadily ", 4) + "to 20% above baseline"
	first := ValidateResponse(answer, def)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ValidateResponse(answer, def))
	}
	assert.Equal(t, model.ValidationValid, first)
}

func TestCheckAnswers(t *testing.T) {
	checks, complete := CheckAnswers(validAnswers())
	require.Len(t, checks, catalog.Len())
	assert.False(t, complete, "UX and rollout answers are still missing")

	for i, c := range checks {
		assert.Equal(t, catalog.IDs()[i], c.QuestionID)
	}
	assert.Equal(t, model.ValidationValid, checks[0].State)
	assert.True(t, checks[0].HasMetrics)
	assert.Equal(t, model.ValidationIncomplete, checks[5].State)

	all := validAnswers()
	all[catalog.UserExperience] = strings.Repeat("Keyboard first, zero extra clicks, inline status. ", 3)
	all[catalog.AdoptionPlan] = strings.Repeat("Pilot with one sales pod, then roll out by region. ", 3)
	_, complete = CheckAnswers(all)
	assert.True(t, complete)
}
