package models

import "time"

// ActivityAction enumerates the mutations recorded in the activity trail.
type ActivityAction string

const (
	ActivityMove     ActivityAction = "MOVE"
	ActivityUnassign ActivityAction = "UNASSIGN"
	ActivityEdit     ActivityAction = "EDIT"
	ActivityDelete   ActivityAction = "DELETE"
	ActivityToggle   ActivityAction = "TOGGLE_CATEGORY"
	ActivityRange    ActivityAction = "RANGE_CHANGE"
)

// ActivityEntry records one applied mutation. Rejected requests are not
// recorded.
type ActivityEntry struct {
	ID         string         `json:"id"`
	Action     ActivityAction `json:"action"`
	SubjectID  string         `json:"subject_id,omitempty"`
	SemesterID string         `json:"semester_id,omitempty"`
	Detail     string         `json:"detail,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}
