package service

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jehee0076-netizen/Academic-Support/internal/models"
)

// StatsService derives aggregate views from the current catalog and timeline
// snapshots. Everything is recomputed on every read; there is no caching and
// no incremental state, which keeps the views trivially consistent with the
// stores at the expected catalog sizes.
type StatsService struct {
	catalog      catalogStore
	timeline     timelineStore
	requirements models.GraduationRequirements
	sortTag      language.Tag
}

// NewStatsService builds the stats engine. The locale controls collation of
// the unassigned pool; an unparseable locale falls back to the neutral
// collator.
func NewStatsService(catalog catalogStore, timeline timelineStore, requirements models.GraduationRequirements, locale string) *StatsService {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &StatsService{
		catalog:      catalog,
		timeline:     timeline,
		requirements: requirements,
		sortTag:      tag,
	}
}

// Requirements returns the configured thresholds.
func (s *StatsService) Requirements() models.GraduationRequirements {
	return s.requirements
}

// GraduationSummary totals assigned credits per category and compares them
// against the thresholds. Assignment entries whose subject was deleted from
// the catalog are skipped silently.
func (s *StatsService) GraduationSummary() models.GraduationSummary {
	mandatory, elective := 0, 0
	for _, slot := range s.timeline.List() {
		for _, id := range slot.AssignedSubjectIDs {
			subject, ok := s.catalog.FindByID(id)
			if !ok {
				continue
			}
			if subject.Category == models.CategoryMandatory {
				mandatory += subject.EffectiveCredits()
			} else {
				elective += subject.EffectiveCredits()
			}
		}
	}

	return models.GraduationSummary{
		MandatoryCredits:  mandatory,
		ElectiveCredits:   elective,
		TotalCredits:      mandatory + elective,
		RequiredMandatory: s.requirements.Mandatory,
		RequiredElective:  s.requirements.Elective,
		GraduationReady:   mandatory >= s.requirements.Mandatory && elective >= s.requirements.Elective,
	}
}

// SemesterOverviews resolves each slot's assignments and computes the credit
// subtotals, in timeline order.
func (s *StatsService) SemesterOverviews() []models.SemesterOverview {
	slots := s.timeline.List()
	out := make([]models.SemesterOverview, 0, len(slots))
	for _, slot := range slots {
		overview := models.SemesterOverview{Semester: slot, Subjects: []models.Subject{}}
		for _, id := range slot.AssignedSubjectIDs {
			subject, ok := s.catalog.FindByID(id)
			if !ok {
				continue
			}
			overview.Subjects = append(overview.Subjects, subject)
			credits := subject.EffectiveCredits()
			overview.TotalCredits += credits
			if subject.Category == models.CategoryMandatory {
				overview.MandatoryCredits += credits
			} else {
				overview.ElectiveCredits += credits
			}
		}
		out = append(out, overview)
	}
	return out
}

// CatalogSubjects lists the whole catalog, optionally filtered by a
// case-insensitive substring match on name or ID.
func (s *StatsService) CatalogSubjects(search string) []models.Subject {
	return filterSubjects(s.catalog.List(), search)
}

// UnassignedSubjects returns the subjects not placed in any semester,
// optionally filtered, grouped by offered term and sorted by name using the
// configured locale's collation.
func (s *StatsService) UnassignedSubjects(search string) models.UnassignedPool {
	assigned := s.timeline.AssignedSet()

	var unassigned []models.Subject
	for _, subject := range s.catalog.List() {
		if _, ok := assigned[subject.ID]; !ok {
			unassigned = append(unassigned, subject)
		}
	}
	unassigned = filterSubjects(unassigned, search)

	pool := models.UnassignedPool{Term1: []models.Subject{}, Term2: []models.Subject{}}
	for _, subject := range unassigned {
		if subject.OfferedTerm == 1 {
			pool.Term1 = append(pool.Term1, subject)
		} else {
			pool.Term2 = append(pool.Term2, subject)
		}
	}

	// collate.Collator keeps an internal buffer, so build one per call.
	c := collate.New(s.sortTag)
	sortByName(c, pool.Term1)
	sortByName(c, pool.Term2)
	return pool
}

func sortByName(c *collate.Collator, subjects []models.Subject) {
	sort.SliceStable(subjects, func(i, j int) bool {
		return c.CompareString(subjects[i].Name, subjects[j].Name) < 0
	})
}

func filterSubjects(subjects []models.Subject, search string) []models.Subject {
	query := strings.ToLower(strings.TrimSpace(search))
	if query == "" {
		return subjects
	}
	out := make([]models.Subject, 0, len(subjects))
	for _, subject := range subjects {
		if strings.Contains(strings.ToLower(subject.Name), query) ||
			strings.Contains(strings.ToLower(subject.ID), query) {
			out = append(out, subject)
		}
	}
	return out
}
