package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FarahAbbdi/mission/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "mission.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func createTestMission(t *testing.T, s *Store, ownerID string) *models.Mission {
	t.Helper()
	mission, err := s.CreateMission(CreateMissionRequest{
		OwnerID:   ownerID,
		Name:      "Launch beta",
		StartDate: "2025-01-01",
		EndDate:   "2025-12-31",
	})
	require.NoError(t, err)
	return mission
}

func TestCreateMission(t *testing.T) {
	s := openTestStore(t)

	mission, err := s.CreateMission(CreateMissionRequest{
		OwnerID:     "owner-1",
		Name:        "Launch beta",
		Description: "Get the first users in",
		StartDate:   "2025-01-01",
		EndDate:     "2025-06-30",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, mission.ID)
	assert.Equal(t, models.MissionActive, mission.Status)

	got, err := s.GetMission(mission.ID)
	require.NoError(t, err)
	assert.Equal(t, "Launch beta", got.Name)
	assert.Equal(t, "2025-01-01", got.StartDate)
}

func TestCreateMissionValidation(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		name string
		req  CreateMissionRequest
	}{
		{"missing name", CreateMissionRequest{OwnerID: "o", StartDate: "2025-01-01", EndDate: "2025-02-01"}},
		{"missing owner", CreateMissionRequest{Name: "x", StartDate: "2025-01-01", EndDate: "2025-02-01"}},
		{"bad start format", CreateMissionRequest{OwnerID: "o", Name: "x", StartDate: "01/01/2025", EndDate: "2025-02-01"}},
		{"end before start", CreateMissionRequest{OwnerID: "o", Name: "x", StartDate: "2025-02-01", EndDate: "2025-01-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateMission(tt.req)
			assert.Error(t, err)
		})
	}
}

func TestExpireOverdue(t *testing.T) {
	s := openTestStore(t)

	overdue, err := s.CreateMission(CreateMissionRequest{
		OwnerID: "owner-1", Name: "old", StartDate: "2025-01-01", EndDate: "2025-02-01",
	})
	require.NoError(t, err)
	current := createTestMission(t, s, "owner-1")
	otherOwner, err := s.CreateMission(CreateMissionRequest{
		OwnerID: "owner-2", Name: "theirs", StartDate: "2025-01-01", EndDate: "2025-02-01",
	})
	require.NoError(t, err)

	require.NoError(t, s.SetMissionStatus("owner-1", overdue.ID, models.MissionCompleted))

	require.NoError(t, s.ExpireOverdue("owner-1", "2025-06-15"))

	got, err := s.GetMission(overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MissionCompleted, got.Status, "completed missions never expire")

	got, err = s.GetMission(current.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MissionActive, got.Status, "end date in the future")

	got, err = s.GetMission(otherOwner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MissionActive, got.Status, "other owners untouched")
}

func TestExpireOverdueRewritesAndIsIdempotent(t *testing.T) {
	s := openTestStore(t)

	mission, err := s.CreateMission(CreateMissionRequest{
		OwnerID: "owner-1", Name: "old", StartDate: "2025-01-01", EndDate: "2025-02-01",
	})
	require.NoError(t, err)

	require.NoError(t, s.ExpireOverdue("owner-1", "2025-06-15"))
	require.NoError(t, s.ExpireOverdue("owner-1", "2025-06-15"))

	got, err := s.GetMission(mission.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MissionExpired, got.Status)
}

func TestExpireOverdueEndDateTodayNotExpired(t *testing.T) {
	s := openTestStore(t)

	mission, err := s.CreateMission(CreateMissionRequest{
		OwnerID: "owner-1", Name: "last day", StartDate: "2025-01-01", EndDate: "2025-06-15",
	})
	require.NoError(t, err)

	require.NoError(t, s.ExpireOverdue("owner-1", "2025-06-15"))

	got, err := s.GetMission(mission.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MissionActive, got.Status)
}

func TestListMissionsByOwner(t *testing.T) {
	s := openTestStore(t)

	createTestMission(t, s, "owner-1")
	createTestMission(t, s, "owner-1")
	createTestMission(t, s, "owner-2")

	mine, err := s.ListMissionsByOwner("owner-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	none, err := s.ListMissionsByOwner("owner-3")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListMissionsWatching(t *testing.T) {
	s := openTestStore(t)

	theirs := createTestMission(t, s, "owner-1")
	createTestMission(t, s, "owner-1")

	require.NoError(t, s.AddWatcher(theirs.ID, "viewer-1"))

	watching, err := s.ListMissionsWatching("viewer-1")
	require.NoError(t, err)
	require.Len(t, watching, 1)
	assert.Equal(t, theirs.ID, watching[0].ID)
}

func TestSetMissionStatusScopedByOwner(t *testing.T) {
	s := openTestStore(t)
	mission := createTestMission(t, s, "owner-1")

	err := s.SetMissionStatus("intruder", mission.ID, models.MissionCompleted)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := s.GetMission(mission.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MissionActive, got.Status)

	require.NoError(t, s.SetMissionStatus("owner-1", mission.ID, models.MissionCompleted))

	got, err = s.GetMission(mission.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MissionCompleted, got.Status)
}

func TestDeleteMissionCascades(t *testing.T) {
	s := openTestStore(t)
	mission := createTestMission(t, s, "owner-1")

	milestone, err := s.CreateMilestone(CreateMilestoneRequest{
		MissionID: mission.ID, Name: "step one", Deadline: "2025-03-01", Priority: "medium",
	})
	require.NoError(t, err)
	_, err = s.CreateLog(milestone.ID, "made progress")
	require.NoError(t, err)
	require.NoError(t, s.AddWatcher(mission.ID, "viewer-1"))

	require.NoError(t, s.DeleteMission("owner-1", mission.ID))

	_, err = s.GetMission(mission.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	milestones, err := s.ListMilestones(mission.ID)
	require.NoError(t, err)
	assert.Empty(t, milestones)

	logs, err := s.ListLogsByMilestones([]string{milestone.ID})
	require.NoError(t, err)
	assert.Empty(t, logs)

	watchers, err := s.ListWatchers(mission.ID)
	require.NoError(t, err)
	assert.Empty(t, watchers)
}

func TestDeleteMissionScopedByOwner(t *testing.T) {
	s := openTestStore(t)
	mission := createTestMission(t, s, "owner-1")

	err := s.DeleteMission("intruder", mission.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetMission(mission.ID)
	assert.NoError(t, err)
}

func TestMilestoneCounts(t *testing.T) {
	s := openTestStore(t)
	mission := createTestMission(t, s, "owner-1")
	other := createTestMission(t, s, "owner-1")

	for _, st := range []string{models.MilestoneActive, models.MilestoneActive, models.MilestoneCompleted} {
		ms, err := s.CreateMilestone(CreateMilestoneRequest{
			MissionID: mission.ID, Name: "step", Deadline: "2025-03-01", Priority: "medium",
		})
		require.NoError(t, err)
		if st == models.MilestoneCompleted {
			require.NoError(t, s.SetMilestoneStatus(mission.ID, ms.ID, st))
		}
	}

	counts, err := s.MilestoneCounts([]string{mission.ID, other.ID})
	require.NoError(t, err)
	assert.Equal(t, [2]int{1, 3}, counts[mission.ID])
	_, ok := counts[other.ID]
	assert.False(t, ok, "missions with no milestones are absent")

	empty, err := s.MilestoneCounts(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
