package service

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jehee0076-netizen/Academic-Support/internal/dto"
	"github.com/jehee0076-netizen/Academic-Support/internal/models"
	appErrors "github.com/jehee0076-netizen/Academic-Support/pkg/errors"
)

type catalogStore interface {
	List() []models.Subject
	FindByID(id string) (models.Subject, bool)
	Upsert(subject models.Subject)
	Remove(id string) bool
	ToggleCategory(id string) (models.Subject, bool)
}

type timelineStore interface {
	List() []models.Semester
	FindByID(id string) (models.Semester, bool)
	MoveSubject(subjectID string, targetSemesterID *string)
	RemoveFromSemester(subjectID, semesterID string)
	PurgeSubject(subjectID string)
	ReconfigureRange(pr models.PlanRange)
	AssignedSet() map[string]struct{}
}

type activityRecorder interface {
	Record(action models.ActivityAction, subjectID, semesterID, detail string)
}

type plannerMetrics interface {
	ObserveMove()
	ObserveRejection(reason string)
}

// DeleteScope is the tagged intent of a delete request. The two variants make
// the two-path policy exhaustive instead of hiding it behind an optional
// field.
type DeleteScope interface {
	isDeleteScope()
}

// GlobalDelete removes the subject from the catalog and from every semester.
// It must be explicitly confirmed.
type GlobalDelete struct {
	Confirmed bool
}

func (GlobalDelete) isDeleteScope() {}

// DeleteChoice resolves the ambiguity of deleting from within a semester.
type DeleteChoice string

const (
	// DeleteChoiceUnassign removes the subject from that one semester; it
	// stays in the catalog and returns to the unassigned pool.
	DeleteChoiceUnassign DeleteChoice = "unassign"
	// DeleteChoiceGlobal escalates to the global delete path.
	DeleteChoiceGlobal DeleteChoice = "delete"
)

// ScopedDelete targets a subject inside a specific semester. Choice is
// mandatory input; there is no default.
type ScopedDelete struct {
	SemesterID string
	Choice     DeleteChoice
	Confirmed  bool
}

func (ScopedDelete) isDeleteScope() {}

// PlannerService is the single mutation entry point for the catalog and the
// timeline. Every write validates first and mutates only on success, so a
// rejected request leaves both stores untouched. A mutex serializes writers;
// reads go through the stats service against store snapshots.
type PlannerService struct {
	catalog   catalogStore
	timeline  timelineStore
	validator *validator.Validate
	logger    *zap.Logger
	activity  activityRecorder
	metrics   plannerMetrics

	mu sync.Mutex
}

// NewPlannerService wires the coordinator. Activity and metrics are optional.
func NewPlannerService(catalog catalogStore, timeline timelineStore, validate *validator.Validate, logger *zap.Logger, activity activityRecorder, metrics plannerMetrics) *PlannerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlannerService{
		catalog:   catalog,
		timeline:  timeline,
		validator: validate,
		logger:    logger,
		activity:  activity,
		metrics:   metrics,
	}
}

// RequestMove validates the placement and applies it atomically. A nil
// target unassigns the subject, which always succeeds and is idempotent.
func (s *PlannerService) RequestMove(subjectID string, targetSemesterID *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subject, ok := s.catalog.FindByID(subjectID)
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "subject not found")
	}

	if err := CanPlace(subject, targetSemesterID, s.timeline.List(), s.catalog.FindByID); err != nil {
		appErr := appErrors.FromError(err)
		s.logger.Info("move_rejected",
			zap.String("subject_id", subjectID),
			zap.String("reason", appErr.Code),
			zap.String("message", appErr.Message),
		)
		if s.metrics != nil {
			s.metrics.ObserveRejection(appErr.Code)
		}
		return err
	}

	s.timeline.MoveSubject(subjectID, targetSemesterID)

	action := models.ActivityUnassign
	semesterID := ""
	if targetSemesterID != nil {
		action = models.ActivityMove
		semesterID = *targetSemesterID
	}
	s.record(action, subjectID, semesterID, "")
	if s.metrics != nil {
		s.metrics.ObserveMove()
	}
	s.logger.Info("subject_moved", zap.String("subject_id", subjectID), zap.String("semester_id", semesterID))
	return nil
}

// RequestDelete executes a delete intent. Global deletes cascade: the subject
// leaves the catalog and is purged from every semester.
func (s *PlannerService) RequestDelete(subjectID string, scope DeleteScope) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch sc := scope.(type) {
	case GlobalDelete:
		return s.deleteGlobally(subjectID, sc.Confirmed)
	case ScopedDelete:
		switch sc.Choice {
		case DeleteChoiceUnassign:
			if _, ok := s.catalog.FindByID(subjectID); !ok {
				return appErrors.Clone(appErrors.ErrNotFound, "subject not found")
			}
			s.timeline.RemoveFromSemester(subjectID, sc.SemesterID)
			s.record(models.ActivityUnassign, subjectID, sc.SemesterID, "removed from semester")
			return nil
		case DeleteChoiceGlobal:
			return s.deleteGlobally(subjectID, sc.Confirmed)
		default:
			return appErrors.Clone(appErrors.ErrChoiceRequired, "choose to unassign the subject or delete it from the curriculum")
		}
	default:
		return appErrors.Clone(appErrors.ErrValidation, "unknown delete scope")
	}
}

func (s *PlannerService) deleteGlobally(subjectID string, confirmed bool) error {
	if !confirmed {
		return appErrors.Clone(appErrors.ErrConfirmationRequired, "deleting a subject from the curriculum cannot be undone and must be confirmed")
	}
	if !s.catalog.Remove(subjectID) {
		return appErrors.Clone(appErrors.ErrNotFound, "subject not found")
	}
	s.timeline.PurgeSubject(subjectID)
	s.record(models.ActivityDelete, subjectID, "", "deleted from curriculum")
	s.logger.Info("subject_deleted", zap.String("subject_id", subjectID))
	return nil
}

// SaveSubjectEdit upserts a subject draft keyed by its ID. Editing never
// moves or unassigns the subject, even when the new offered term conflicts
// with its current slot.
func (s *PlannerService) SaveSubjectEdit(draft dto.SubjectDraft) (models.Subject, error) {
	if err := s.validator.Struct(draft); err != nil {
		return models.Subject{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	subject := models.Subject{
		ID:            strings.ToUpper(strings.TrimSpace(draft.ID)),
		Name:          strings.TrimSpace(draft.Name),
		Credits:       draft.Credits,
		Category:      models.SubjectCategory(draft.Category),
		OfferedTerm:   draft.OfferedTerm,
		Prerequisites: splitPrerequisites(draft.Prerequisites),
		IsRetake:      draft.IsRetake,
	}
	if subject.IsRetake {
		subject.Credits = 0
	}

	s.catalog.Upsert(subject)
	s.record(models.ActivityEdit, subject.ID, "", "")
	return subject, nil
}

// ToggleCategory flips a subject between MANDATORY and ELECTIVE. Retake
// subjects are never toggled.
func (s *PlannerService) ToggleCategory(subjectID string) (models.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subject, ok := s.catalog.ToggleCategory(subjectID)
	if !ok {
		return models.Subject{}, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
	}
	s.record(models.ActivityToggle, subjectID, "", string(subject.Category))
	return subject, nil
}

// ReconfigureRange regenerates the timeline for a new inclusive range and
// returns the resulting slots. Assignments of slots surviving the change are
// kept; assignments of dropped slots are lost and their subjects fall back to
// the unassigned pool.
func (s *PlannerService) ReconfigureRange(req dto.RangeRequest) ([]models.Semester, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid range payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pr := models.PlanRange{
		StartYear: req.StartYear,
		StartTerm: req.StartTerm,
		EndYear:   req.EndYear,
		EndTerm:   req.EndTerm,
	}
	s.timeline.ReconfigureRange(pr)
	s.record(models.ActivityRange, "", "", fmt.Sprintf("%d-%d through %d-%d", pr.StartYear, pr.StartTerm, pr.EndYear, pr.EndTerm))
	return s.timeline.List(), nil
}

func (s *PlannerService) record(action models.ActivityAction, subjectID, semesterID, detail string) {
	if s.activity != nil {
		s.activity.Record(action, subjectID, semesterID, detail)
	}
}

func splitPrerequisites(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.ToUpper(strings.TrimSpace(p))
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
