package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FarahAbbdi/mission/internal/models"
)

func TestGroupByLabel(t *testing.T) {
	missions := []models.Mission{
		{ID: "a", Status: models.MissionCompleted},
		{ID: "b", Status: models.MissionActive},
		{ID: "c", Status: models.MissionExpired},
		{ID: "d", Status: models.MissionActive},
	}

	groups := groupByLabel(missions)

	assert.Equal(t, []string{"b", "d"}, missionGroupIDs(groups[0]))
	assert.Equal(t, []string{"a"}, missionGroupIDs(groups[1]))
	assert.Equal(t, []string{"c"}, missionGroupIDs(groups[2]))
}

func TestFlattenMissionRows(t *testing.T) {
	mine := []models.Mission{
		{ID: "done", Status: models.MissionCompleted},
		{ID: "live", Status: models.MissionActive},
	}
	watching := []models.Mission{
		{ID: "theirs", Status: models.MissionActive},
	}

	rows := flattenMissionRows(mine, watching)

	require.Len(t, rows, 3)
	assert.Equal(t, "live", rows[0].mission.ID, "own active missions come first")
	assert.Equal(t, "done", rows[1].mission.ID)
	assert.Equal(t, "theirs", rows[2].mission.ID)
	assert.False(t, rows[0].watching)
	assert.True(t, rows[2].watching)
}

func TestMissionListNavigationAndOutcome(t *testing.T) {
	a := newTestApp(t)
	m := NewMissionListModel(a)

	loaded := missionsLoadedMsg{
		viewerID: "owner-1",
		mine: []models.Mission{
			{ID: "m-1", Name: "first", Status: models.MissionActive, StartDate: "2025-01-01", EndDate: "2025-12-31"},
			{ID: "m-2", Name: "second", Status: models.MissionActive, StartDate: "2025-01-01", EndDate: "2025-12-31"},
		},
		counts: map[string][2]int{},
	}
	updated, _ := m.Update(loaded)
	m = updated.(MissionListModel)
	require.False(t, m.loading)

	updated, _ = m.Update(keyMsg("j"))
	m = updated.(MissionListModel)

	updated, cmd := m.Update(keyMsg("enter"))
	m = updated.(MissionListModel)
	assert.Equal(t, "m-2", m.ChosenID)
	assert.NotNil(t, cmd)
}

func TestMissionListWantAdd(t *testing.T) {
	a := newTestApp(t)
	m := NewMissionListModel(a)

	updated, _ := m.Update(missionsLoadedMsg{viewerID: "owner-1", counts: map[string][2]int{}})
	m = updated.(MissionListModel)

	updated, cmd := m.Update(keyMsg("n"))
	m = updated.(MissionListModel)
	assert.True(t, m.WantAdd)
	assert.NotNil(t, cmd)
}

func TestMissionListDegradedLoadStillRenders(t *testing.T) {
	a := newTestApp(t)
	m := NewMissionListModel(a)

	// Watching and counts failed upstream and degraded to empty.
	updated, _ := m.Update(missionsLoadedMsg{
		viewerID: "owner-1",
		mine: []models.Mission{
			{ID: "m-1", Name: "first", Status: models.MissionActive, StartDate: "2025-01-01", EndDate: "2025-12-31"},
		},
		counts: map[string][2]int{},
	})
	m = updated.(MissionListModel)

	view := m.View()
	assert.Contains(t, view, "first")
	assert.Contains(t, view, "0 / 0 milestones")
	assert.Contains(t, view, "WATCHING")
}

func TestMissionListErrorState(t *testing.T) {
	a := newTestApp(t)
	m := NewMissionListModel(a)

	updated, _ := m.Update(missionsLoadedMsg{err: assert.AnError})
	m = updated.(MissionListModel)

	assert.Contains(t, m.View(), "ERROR")
}

func missionGroupIDs(ms []models.Mission) []string {
	ids := make([]string, 0, len(ms))
	for _, m := range ms {
		ids = append(ids, m.ID)
	}
	return ids
}
