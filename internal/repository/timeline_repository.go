package repository

import (
	"sync"

	"github.com/jehee0076-netizen/Academic-Support/internal/models"
)

// TimelineRepository is the ordered in-memory store of semester slots. The
// slot order is (year, term) ascending with term 2 of year Y preceding term 1
// of year Y+1, which is exactly the generation order of ReconfigureRange.
//
// The store guarantees the exclusivity invariant: a subject ID appears in at
// most one slot's assignment list. It performs no placement validation;
// validation happens in the planner service before any mutation.
type TimelineRepository struct {
	mu    sync.RWMutex
	slots []models.Semester
}

// NewTimelineRepository builds an empty timeline.
func NewTimelineRepository() *TimelineRepository {
	return &TimelineRepository{}
}

// Seed replaces the timeline content wholesale.
func (r *TimelineRepository) Seed(slots []models.Semester) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slots = cloneSlots(slots)
}

// List returns a snapshot of all slots in timeline order.
func (r *TimelineRepository) List() []models.Semester {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneSlots(r.slots)
}

// FindByID looks up a slot; a miss is ok=false.
func (r *TimelineRepository) FindByID(id string) (models.Semester, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.slots {
		if s.ID == id {
			return cloneSlot(s), true
		}
	}
	return models.Semester{}, false
}

// IndexOf returns the ordinal position of a slot in the timeline.
func (r *TimelineRepository) IndexOf(id string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i, s := range r.slots {
		if s.ID == id {
			return i, true
		}
	}
	return 0, false
}

// ReconfigureRange regenerates the canonical slot list for the inclusive
// range, walking (year, term) pairs where term cycles 1→2→(year+1, 1). Slots
// whose derived ID already existed keep their assignment list; slots that
// fall outside the new range are dropped together with their assignments. A
// start after the end yields an empty timeline, which is a valid state.
func (r *TimelineRepository) ReconfigureRange(pr models.PlanRange) {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous := make(map[string][]string, len(r.slots))
	for _, s := range r.slots {
		previous[s.ID] = s.AssignedSubjectIDs
	}

	var next []models.Semester
	year, term := pr.StartYear, pr.StartTerm
	for year < pr.EndYear || (year == pr.EndYear && term <= pr.EndTerm) {
		slot := models.NewSemester(year, term)
		if kept, ok := previous[slot.ID]; ok {
			slot.AssignedSubjectIDs = append([]string{}, kept...)
		}
		next = append(next, slot)
		if term == 2 {
			year++
			term = 1
		} else {
			term = 2
		}
	}
	r.slots = next
}

// MoveSubject removes the subject from whichever slot currently holds it
// (idempotent when held nowhere), then appends it to the target slot when
// targetSemesterID is non-nil. A nil target is a plain unassign. Moving to an
// unknown slot ID leaves the subject unassigned.
func (r *TimelineRepository) MoveSubject(subjectID string, targetSemesterID *string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.purge(subjectID)
	if targetSemesterID == nil {
		return
	}
	for i := range r.slots {
		if r.slots[i].ID == *targetSemesterID {
			r.slots[i].AssignedSubjectIDs = append(r.slots[i].AssignedSubjectIDs, subjectID)
			return
		}
	}
}

// RemoveFromSemester unassigns the subject from one specific slot only.
func (r *TimelineRepository) RemoveFromSemester(subjectID, semesterID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.slots {
		if r.slots[i].ID == semesterID {
			r.slots[i].AssignedSubjectIDs = removeID(r.slots[i].AssignedSubjectIDs, subjectID)
			return
		}
	}
}

// PurgeSubject removes the subject from every slot. Used when a subject is
// deleted from the catalog.
func (r *TimelineRepository) PurgeSubject(subjectID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.purge(subjectID)
}

// AssignedSet returns the set of subject IDs placed anywhere in the timeline.
func (r *TimelineRepository) AssignedSet() map[string]struct{} {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := make(map[string]struct{})
	for _, s := range r.slots {
		for _, id := range s.AssignedSubjectIDs {
			set[id] = struct{}{}
		}
	}
	return set
}

// HolderOf returns the ID of the slot currently holding the subject.
func (r *TimelineRepository) HolderOf(subjectID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.slots {
		for _, id := range s.AssignedSubjectIDs {
			if id == subjectID {
				return s.ID, true
			}
		}
	}
	return "", false
}

func (r *TimelineRepository) purge(subjectID string) {
	for i := range r.slots {
		r.slots[i].AssignedSubjectIDs = removeID(r.slots[i].AssignedSubjectIDs, subjectID)
	}
}

func removeID(ids []string, target string) []string {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

func cloneSlot(s models.Semester) models.Semester {
	out := s
	out.AssignedSubjectIDs = append([]string{}, s.AssignedSubjectIDs...)
	return out
}

func cloneSlots(slots []models.Semester) []models.Semester {
	out := make([]models.Semester, len(slots))
	for i, s := range slots {
		out[i] = cloneSlot(s)
	}
	return out
}
