package status

import (
	"time"

	"github.com/FarahAbbdi/mission/internal/models"
)

// DateLayout is the stored date format. Comparing two such strings with <
// is a true date comparison because the fields are fixed-width and
// zero-padded.
const DateLayout = "2006-01-02"

// Today produces the current date as YYYY-MM-DD. It is injected everywhere
// a date comparison happens so one value can be captured per render pass
// and tests can pin the clock.
type Today func() string

// LocalToday returns today's date from local wall-clock time, not UTC.
func LocalToday() string {
	return time.Now().Format(DateLayout)
}

// Before reports whether date a falls strictly before date b.
func Before(a, b string) bool {
	return a < b
}

// MissionLabel maps a stored mission status to its display label.
// Expired missions are shown as UNSATISFIED.
func MissionLabel(stored string) string {
	switch stored {
	case models.MissionCompleted:
		return "COMPLETED"
	case models.MissionExpired:
		return "UNSATISFIED"
	default:
		return "ACTIVE"
	}
}

// MissionLocked reports whether a mission blocks further milestone
// mutation: completed and expired missions are locked.
func MissionLocked(stored string) bool {
	return stored == models.MissionCompleted || stored == models.MissionExpired
}

// Bucket is the list grouping a milestone lands in. It is derived on every
// render and never persisted.
type Bucket int

const (
	BucketActive Bucket = iota
	BucketCompleted
	BucketUnsatisfied
)

// Label returns the section heading for a bucket.
func (b Bucket) Label() string {
	switch b {
	case BucketCompleted:
		return "COMPLETED"
	case BucketUnsatisfied:
		return "UNSATISFIED"
	default:
		return "ACTIVE"
	}
}

// MilestoneBucket assigns a milestone to a bucket. An active milestone is
// unsatisfied when its parent mission is locked or its deadline has passed.
func MilestoneBucket(m models.Milestone, missionLocked bool, today string) Bucket {
	if m.Status == models.MilestoneCompleted {
		return BucketCompleted
	}
	if missionLocked || Before(m.Deadline, today) {
		return BucketUnsatisfied
	}
	return BucketActive
}

// GroupMilestones splits a fetched milestone set into buckets, preserving
// the fetch order within each bucket. The same today value must be used as
// in the expiry pass of the render.
func GroupMilestones(ms []models.Milestone, missionLocked bool, today string) map[Bucket][]models.Milestone {
	out := make(map[Bucket][]models.Milestone)
	for _, m := range ms {
		b := MilestoneBucket(m, missionLocked, today)
		out[b] = append(out[b], m)
	}
	return out
}
