package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jehee0076-netizen/Academic-Support/internal/models"
)

// ActivityService keeps a bounded in-memory trail of applied mutations,
// newest first. It records what happened, not what was rejected.
type ActivityService struct {
	mu         sync.RWMutex
	entries    []models.ActivityEntry
	maxEntries int
	now        func() time.Time
}

// NewActivityService builds the trail with the given capacity.
func NewActivityService(maxEntries int) *ActivityService {
	if maxEntries <= 0 {
		maxEntries = 100
	}
	return &ActivityService{maxEntries: maxEntries, now: time.Now}
}

// Record appends an entry, evicting the oldest when the trail is full.
func (s *ActivityService) Record(action models.ActivityAction, subjectID, semesterID, detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := models.ActivityEntry{
		ID:         uuid.NewString(),
		Action:     action,
		SubjectID:  subjectID,
		SemesterID: semesterID,
		Detail:     detail,
		OccurredAt: s.now(),
	}
	s.entries = append(s.entries, entry)
	if len(s.entries) > s.maxEntries {
		s.entries = s.entries[len(s.entries)-s.maxEntries:]
	}
}

// List returns the trail newest first.
func (s *ActivityService) List() []models.ActivityEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ActivityEntry, len(s.entries))
	for i, e := range s.entries {
		out[len(s.entries)-1-i] = e
	}
	return out
}
