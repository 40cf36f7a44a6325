package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FarahAbbdi/mission/internal/models"
)

func TestBefore(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"earlier day", "2025-03-01", "2025-03-02", true},
		{"same day", "2025-03-01", "2025-03-01", false},
		{"later day", "2025-03-02", "2025-03-01", false},
		{"month boundary", "2025-09-30", "2025-10-01", true},
		{"year boundary", "2024-12-31", "2025-01-01", true},
		{"single digit padding", "2025-01-02", "2025-01-10", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Before(tt.a, tt.b))
		})
	}
}

func TestMissionLabel(t *testing.T) {
	assert.Equal(t, "ACTIVE", MissionLabel(models.MissionActive))
	assert.Equal(t, "COMPLETED", MissionLabel(models.MissionCompleted))
	assert.Equal(t, "UNSATISFIED", MissionLabel(models.MissionExpired))
	assert.Equal(t, "ACTIVE", MissionLabel("something-else"))
}

func TestMissionLocked(t *testing.T) {
	assert.False(t, MissionLocked(models.MissionActive))
	assert.True(t, MissionLocked(models.MissionCompleted))
	assert.True(t, MissionLocked(models.MissionExpired))
}

func TestMilestoneBucket(t *testing.T) {
	today := "2025-06-15"

	tests := []struct {
		name     string
		status   string
		deadline string
		locked   bool
		want     Bucket
	}{
		{"active with future deadline", models.MilestoneActive, "2025-07-01", false, BucketActive},
		{"active due today stays active", models.MilestoneActive, "2025-06-15", false, BucketActive},
		{"active past deadline", models.MilestoneActive, "2025-06-14", false, BucketUnsatisfied},
		{"completed past deadline stays completed", models.MilestoneCompleted, "2025-01-01", false, BucketCompleted},
		{"completed under locked mission stays completed", models.MilestoneCompleted, "2025-07-01", true, BucketCompleted},
		{"active under locked mission", models.MilestoneActive, "2025-07-01", true, BucketUnsatisfied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := models.Milestone{Status: tt.status, Deadline: tt.deadline}
			assert.Equal(t, tt.want, MilestoneBucket(ms, tt.locked, today))
		})
	}
}

func TestGroupMilestonesPreservesOrder(t *testing.T) {
	today := "2025-06-15"
	ms := []models.Milestone{
		{ID: "a", Status: models.MilestoneActive, Deadline: "2025-06-20"},
		{ID: "b", Status: models.MilestoneCompleted, Deadline: "2025-06-01"},
		{ID: "c", Status: models.MilestoneActive, Deadline: "2025-06-01"},
		{ID: "d", Status: models.MilestoneActive, Deadline: "2025-06-25"},
	}

	groups := GroupMilestones(ms, false, today)

	assert.Equal(t, []string{"a", "d"}, milestoneIDs(groups[BucketActive]))
	assert.Equal(t, []string{"b"}, milestoneIDs(groups[BucketCompleted]))
	assert.Equal(t, []string{"c"}, milestoneIDs(groups[BucketUnsatisfied]))
}

func TestGroupMilestonesLockedMission(t *testing.T) {
	today := "2025-06-15"
	ms := []models.Milestone{
		{ID: "a", Status: models.MilestoneActive, Deadline: "2025-06-20"},
		{ID: "b", Status: models.MilestoneCompleted, Deadline: "2025-06-01"},
	}

	groups := GroupMilestones(ms, true, today)

	assert.Empty(t, groups[BucketActive])
	assert.Equal(t, []string{"b"}, milestoneIDs(groups[BucketCompleted]))
	assert.Equal(t, []string{"a"}, milestoneIDs(groups[BucketUnsatisfied]))
}

func TestBucketLabel(t *testing.T) {
	assert.Equal(t, "ACTIVE", BucketActive.Label())
	assert.Equal(t, "COMPLETED", BucketCompleted.Label())
	assert.Equal(t, "UNSATISFIED", BucketUnsatisfied.Label())
}

func milestoneIDs(ms []models.Milestone) []string {
	ids := make([]string, 0, len(ms))
	for _, m := range ms {
		ids = append(ids, m.ID)
	}
	return ids
}
