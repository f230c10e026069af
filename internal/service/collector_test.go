package service

import (
	"intakeflow/internal/catalog"
	"intakeflow/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollector_Answers(t *testing.T) {
	c := NewCollector(catalog.Len())

	assert.Equal(t, "", c.CurrentAnswer(catalog.BusinessImpact))

	c.SetAnswer(catalog.BusinessImpact, "first")
	c.SetAnswer(catalog.BusinessImpact, "second")
	assert.Equal(t, "second", c.CurrentAnswer(catalog.BusinessImpact))

	answers := c.Answers()
	answers[catalog.BusinessImpact] = "mutated"
	assert.Equal(t, "second", c.CurrentAnswer(catalog.BusinessImpact))
}

func TestCollector_CursorClamped(t *testing.T) {
	n := catalog.Len()
	c := NewCollector(n)

	assert.Equal(t, 0, c.Cursor())
	assert.False(t, c.Retreat())
	assert.Equal(t, 0, c.Cursor())

	for i := 1; i < n; i++ {
		assert.True(t, c.Advance())
		assert.Equal(t, i, c.Cursor())
	}
	assert.False(t, c.Advance())
	assert.Equal(t, n-1, c.Cursor())

	assert.True(t, c.Retreat())
	assert.Equal(t, n-2, c.Cursor())
}

func TestRestoreCollector(t *testing.T) {
	stored := model.AnswerSet{catalog.UserValue: "75 users"}

	c := RestoreCollector(7, stored, 3)
	assert.Equal(t, 3, c.Cursor())
	assert.Equal(t, "75 users", c.CurrentAnswer(catalog.UserValue))

	c.SetAnswer(catalog.UserValue, "changed")
	assert.Equal(t, "75 users", stored[catalog.UserValue])

	assert.Equal(t, 6, RestoreCollector(7, nil, 99).Cursor())
	assert.Equal(t, 0, RestoreCollector(7, nil, -4).Cursor())
}

func TestCollector_SingleQuestionCatalog(t *testing.T) {
	c := NewCollector(1)
	assert.False(t, c.Advance())
	assert.False(t, c.Retreat())
	assert.Equal(t, 0, c.Cursor())
}

func TestCollector_Progress(t *testing.T) {
	c := NewCollector(catalog.Len())
	ids := catalog.IDs()
	assert.Equal(t, 0, c.Progress(ids))

	c.SetAnswer(ids[0], "answer")
	c.SetAnswer(ids[1], "   ")
	assert.Equal(t, 14, c.Progress(ids))

	for _, id := range ids {
		c.SetAnswer(id, "answer")
	}
	assert.Equal(t, 100, c.Progress(ids))
	assert.Equal(t, 0, c.Progress(nil))
}
