package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jehee0076-netizen/Academic-Support/internal/models"
)

func reconfigured(pr models.PlanRange) *TimelineRepository {
	repo := NewTimelineRepository()
	repo.ReconfigureRange(pr)
	return repo
}

func TestReconfigureRangeWalksTermCycle(t *testing.T) {
	repo := reconfigured(models.PlanRange{StartYear: 25, StartTerm: 2, EndYear: 27, EndTerm: 1})

	slots := repo.List()
	require.Len(t, slots, 4)
	assert.Equal(t, "sem25-2", slots[0].ID)
	assert.Equal(t, "sem26-1", slots[1].ID)
	assert.Equal(t, "sem26-2", slots[2].ID)
	assert.Equal(t, "sem27-1", slots[3].ID)
}

func TestReconfigureRangeStartAfterEndYieldsEmptyTimeline(t *testing.T) {
	repo := reconfigured(models.PlanRange{StartYear: 27, StartTerm: 1, EndYear: 25, EndTerm: 2})
	assert.Empty(t, repo.List())
}

func TestReconfigureRangeKeepsSurvivingAssignments(t *testing.T) {
	repo := reconfigured(models.PlanRange{StartYear: 25, StartTerm: 1, EndYear: 26, EndTerm: 2})
	target := "sem25-2"
	repo.MoveSubject("BMED202", &target)

	repo.ReconfigureRange(models.PlanRange{StartYear: 25, StartTerm: 2, EndYear: 27, EndTerm: 1})

	slot, ok := repo.FindByID("sem25-2")
	require.True(t, ok)
	assert.Equal(t, []string{"BMED202"}, slot.AssignedSubjectIDs)
}

func TestReconfigureRangeDropsOutOfRangeAssignments(t *testing.T) {
	repo := reconfigured(models.PlanRange{StartYear: 25, StartTerm: 1, EndYear: 27, EndTerm: 1})
	target := "sem25-1"
	repo.MoveSubject("BMED205", &target)

	// Shrink so sem25-1 no longer exists; its assignment is discarded.
	repo.ReconfigureRange(models.PlanRange{StartYear: 25, StartTerm: 2, EndYear: 27, EndTerm: 1})

	_, ok := repo.FindByID("sem25-1")
	assert.False(t, ok)
	_, held := repo.HolderOf("BMED205")
	assert.False(t, held)
}

func TestMoveSubjectEnforcesExclusivity(t *testing.T) {
	repo := reconfigured(models.PlanRange{StartYear: 25, StartTerm: 1, EndYear: 26, EndTerm: 2})

	first := "sem25-1"
	second := "sem26-1"
	repo.MoveSubject("BMED205", &first)
	repo.MoveSubject("BMED205", &second)

	holder, ok := repo.HolderOf("BMED205")
	require.True(t, ok)
	assert.Equal(t, "sem26-1", holder)

	count := 0
	for _, slot := range repo.List() {
		for _, id := range slot.AssignedSubjectIDs {
			if id == "BMED205" {
				count++
			}
		}
	}
	assert.Equal(t, 1, count)
}

func TestMoveSubjectNilTargetUnassignsIdempotently(t *testing.T) {
	repo := reconfigured(models.PlanRange{StartYear: 25, StartTerm: 1, EndYear: 25, EndTerm: 2})
	target := "sem25-1"
	repo.MoveSubject("BMED205", &target)

	repo.MoveSubject("BMED205", nil)
	_, held := repo.HolderOf("BMED205")
	assert.False(t, held)

	// Already unassigned: a second unassign is a no-op.
	repo.MoveSubject("BMED205", nil)
	_, held = repo.HolderOf("BMED205")
	assert.False(t, held)
}

func TestMoveSubjectToUnknownSlotLeavesSubjectUnassigned(t *testing.T) {
	repo := reconfigured(models.PlanRange{StartYear: 25, StartTerm: 1, EndYear: 25, EndTerm: 2})
	stale := "sem99-1"
	repo.MoveSubject("BMED205", &stale)

	_, held := repo.HolderOf("BMED205")
	assert.False(t, held)
}

func TestRemoveFromSemesterOnlyTouchesThatSlot(t *testing.T) {
	repo := reconfigured(models.PlanRange{StartYear: 25, StartTerm: 1, EndYear: 25, EndTerm: 2})
	first := "sem25-1"
	repo.MoveSubject("BMED205", &first)

	repo.RemoveFromSemester("BMED205", "sem25-2")
	holder, ok := repo.HolderOf("BMED205")
	require.True(t, ok)
	assert.Equal(t, "sem25-1", holder)

	repo.RemoveFromSemester("BMED205", "sem25-1")
	_, held := repo.HolderOf("BMED205")
	assert.False(t, held)
}

func TestPurgeSubjectClearsEverySlot(t *testing.T) {
	repo := reconfigured(models.PlanRange{StartYear: 25, StartTerm: 1, EndYear: 25, EndTerm: 2})
	first := "sem25-1"
	repo.MoveSubject("BMED205", &first)

	repo.PurgeSubject("BMED205")
	assert.Empty(t, repo.AssignedSet())
}

func TestIndexOfReflectsTimelineOrder(t *testing.T) {
	repo := reconfigured(models.PlanRange{StartYear: 25, StartTerm: 2, EndYear: 26, EndTerm: 2})

	i, ok := repo.IndexOf("sem26-1")
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = repo.IndexOf("sem99-1")
	assert.False(t, ok)
}
