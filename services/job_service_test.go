package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/durable-fastener/durable-cms-backend/jobcodec"
	"github.com/durable-fastener/durable-cms-backend/models"
)

func intPtr(v int) *int { return &v }

func dispatchJob() models.JobRequest {
	return models.JobRequest{
		Title:      "Dispatch Executive",
		Department: "Logistics",
		Location:   "Rajkot",
		SalaryMin:  intPtr(15000),
		SalaryMax:  intPtr(25000),
		Fields: jobcodec.Fields{
			Intro:            "Join the dispatch team.",
			WorkingHours:     "9am - 6pm",
			Responsibilities: []jobcodec.Item{{Title: "Dispatch", Detail: "Plan routes"}},
		},
	}
}

func TestJobSaveCompilesDescription(t *testing.T) {
	s := newTestServices(t, nil, nil)

	job, err := s.Jobs.Create(ctx(), dispatchJob())
	require.NoError(t, err)
	assert.Equal(t, "Any", job.Gender)
	assert.Contains(t, job.Description, "Join the dispatch team.")
	assert.Contains(t, job.Description, "Key Responsibilities")

	state, err := s.Jobs.EditorState(ctx(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Join the dispatch team.", state.Fields.Intro)
	assert.Equal(t, "9am - 6pm", state.Fields.WorkingHours)
	assert.Equal(t, []jobcodec.Item{{Title: "Dispatch", Detail: "Plan routes"}}, state.Fields.Responsibilities)
}

func TestJobUpdateKeepsCreatedAt(t *testing.T) {
	s := newTestServices(t, nil, nil)

	job, err := s.Jobs.Create(ctx(), dispatchJob())
	require.NoError(t, err)

	req := dispatchJob()
	req.Title = "Senior Dispatch Executive"
	updated, err := s.Jobs.Update(ctx(), job.ID, req)
	require.NoError(t, err)
	assert.Equal(t, job.ID, updated.ID)
	assert.WithinDuration(t, job.CreatedAt, updated.CreatedAt, time.Millisecond)

	jobs, err := s.Jobs.List(ctx())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Senior Dispatch Executive", jobs[0].Title)
}

func TestJobRejectsInvertedSalaryRange(t *testing.T) {
	s := newTestServices(t, nil, nil)

	req := dispatchJob()
	req.SalaryMin, req.SalaryMax = intPtr(30000), intPtr(20000)
	_, err := s.Jobs.Create(ctx(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestJobAttributes(t *testing.T) {
	s := newTestServices(t, nil, nil)

	for _, req := range []models.JobAttributeRequest{
		{Category: models.AttributeDepartment, Value: "Sales"},
		{Category: models.AttributeDepartment, Value: "Logistics"},
		{Category: models.AttributeDepartment, Value: "Logistics"},
		{Category: models.AttributeLocation, Value: "Rajkot"},
	} {
		_, err := s.Attributes.Create(ctx(), req)
		require.NoError(t, err)
	}

	_, err := s.Attributes.Create(ctx(), models.JobAttributeRequest{Category: "colour", Value: "Red"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	groups, err := s.Attributes.Groups(ctx())
	require.NoError(t, err)
	assert.Equal(t, []string{"Logistics", "Logistics", "Sales"}, groups.Departments)
	assert.Equal(t, []string{"Rajkot"}, groups.Locations)
	assert.Equal(t, []string{}, groups.Types)

	depts, err := s.Attributes.List(ctx(), models.AttributeDepartment)
	require.NoError(t, err)
	require.Len(t, depts, 3)
	require.NoError(t, s.Attributes.Delete(ctx(), depts[0].ID))
	assert.ErrorIs(t, s.Attributes.Delete(ctx(), depts[0].ID), ErrNotFound)
}
