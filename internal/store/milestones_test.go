package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FarahAbbdi/mission/internal/models"
)

func TestCreateMilestone(t *testing.T) {
	s := openTestStore(t)
	mission := createTestMission(t, s, "owner-1")

	milestone, err := s.CreateMilestone(CreateMilestoneRequest{
		MissionID: mission.ID,
		Name:      "Recruit testers",
		Notes:     "aim for 10",
		Deadline:  "2025-03-01",
		Priority:  "high",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, milestone.ID)
	assert.Equal(t, models.MilestoneActive, milestone.Status)
	assert.Equal(t, "high", milestone.Priority)
}

func TestCreateMilestoneValidation(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		name string
		req  CreateMilestoneRequest
	}{
		{"missing name", CreateMilestoneRequest{MissionID: "m", Deadline: "2025-03-01", Priority: "medium"}},
		{"bad deadline", CreateMilestoneRequest{MissionID: "m", Name: "x", Deadline: "soon", Priority: "medium"}},
		{"bad priority", CreateMilestoneRequest{MissionID: "m", Name: "x", Deadline: "2025-03-01", Priority: "urgent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateMilestone(tt.req)
			assert.Error(t, err)
		})
	}
}

func TestListMilestonesOrderedByDeadline(t *testing.T) {
	s := openTestStore(t)
	mission := createTestMission(t, s, "owner-1")

	for _, deadline := range []string{"2025-05-01", "2025-02-01", "2025-03-01"} {
		_, err := s.CreateMilestone(CreateMilestoneRequest{
			MissionID: mission.ID, Name: "step " + deadline, Deadline: deadline, Priority: "medium",
		})
		require.NoError(t, err)
	}

	milestones, err := s.ListMilestones(mission.ID)
	require.NoError(t, err)
	require.Len(t, milestones, 3)
	assert.Equal(t, "2025-02-01", milestones[0].Deadline)
	assert.Equal(t, "2025-03-01", milestones[1].Deadline)
	assert.Equal(t, "2025-05-01", milestones[2].Deadline)
}

func TestSetMilestoneStatusScopedByMission(t *testing.T) {
	s := openTestStore(t)
	mission := createTestMission(t, s, "owner-1")
	other := createTestMission(t, s, "owner-1")

	milestone, err := s.CreateMilestone(CreateMilestoneRequest{
		MissionID: mission.ID, Name: "step", Deadline: "2025-03-01", Priority: "medium",
	})
	require.NoError(t, err)

	err = s.SetMilestoneStatus(other.ID, milestone.ID, models.MilestoneCompleted)
	assert.ErrorIs(t, err, ErrNotFound)

	milestones, err := s.ListMilestones(mission.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MilestoneActive, milestones[0].Status)

	require.NoError(t, s.SetMilestoneStatus(mission.ID, milestone.ID, models.MilestoneCompleted))

	milestones, err = s.ListMilestones(mission.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MilestoneCompleted, milestones[0].Status)
}

func TestDeleteMilestoneRemovesLogs(t *testing.T) {
	s := openTestStore(t)
	mission := createTestMission(t, s, "owner-1")

	milestone, err := s.CreateMilestone(CreateMilestoneRequest{
		MissionID: mission.ID, Name: "step", Deadline: "2025-03-01", Priority: "medium",
	})
	require.NoError(t, err)
	_, err = s.CreateLog(milestone.ID, "first note")
	require.NoError(t, err)

	require.NoError(t, s.DeleteMilestone(mission.ID, milestone.ID))

	milestones, err := s.ListMilestones(mission.ID)
	require.NoError(t, err)
	assert.Empty(t, milestones)

	logs, err := s.ListLogsByMilestones([]string{milestone.ID})
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestDeleteMilestoneScopedByMission(t *testing.T) {
	s := openTestStore(t)
	mission := createTestMission(t, s, "owner-1")
	other := createTestMission(t, s, "owner-1")

	milestone, err := s.CreateMilestone(CreateMilestoneRequest{
		MissionID: mission.ID, Name: "step", Deadline: "2025-03-01", Priority: "medium",
	})
	require.NoError(t, err)

	err = s.DeleteMilestone(other.ID, milestone.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	milestones, err := s.ListMilestones(mission.ID)
	require.NoError(t, err)
	assert.Len(t, milestones, 1)
}
