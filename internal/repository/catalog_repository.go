package repository

import (
	"sync"

	"github.com/jehee0076-netizen/Academic-Support/internal/models"
)

// CatalogRepository is the in-memory store of known subjects. Subjects keep
// their insertion order; upserting an existing ID replaces the record in
// place. The store never cascades into the timeline, that is the planner
// service's obligation.
type CatalogRepository struct {
	mu       sync.RWMutex
	subjects []models.Subject
	index    map[string]int
}

// NewCatalogRepository builds an empty catalog.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{index: make(map[string]int)}
}

// Seed replaces the catalog content wholesale.
func (r *CatalogRepository) Seed(subjects []models.Subject) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subjects = make([]models.Subject, 0, len(subjects))
	r.index = make(map[string]int, len(subjects))
	for _, s := range subjects {
		if _, ok := r.index[s.ID]; ok {
			continue
		}
		r.index[s.ID] = len(r.subjects)
		r.subjects = append(r.subjects, cloneSubject(s))
	}
}

// List returns a snapshot of all subjects in catalog order.
func (r *CatalogRepository) List() []models.Subject {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Subject, len(r.subjects))
	for i, s := range r.subjects {
		out[i] = cloneSubject(s)
	}
	return out
}

// FindByID looks up a subject. A miss is reported via ok=false, never an
// error.
func (r *CatalogRepository) FindByID(id string) (models.Subject, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return models.Subject{}, false
	}
	return cloneSubject(r.subjects[i]), true
}

// Upsert replaces the record when the ID exists, preserving its position,
// and appends otherwise.
func (r *CatalogRepository) Upsert(subject models.Subject) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[subject.ID]; ok {
		r.subjects[i] = cloneSubject(subject)
		return
	}
	r.index[subject.ID] = len(r.subjects)
	r.subjects = append(r.subjects, cloneSubject(subject))
}

// Remove deletes the record. It reports whether the ID was present.
func (r *CatalogRepository) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return false
	}
	r.subjects = append(r.subjects[:i], r.subjects[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.subjects); j++ {
		r.index[r.subjects[j].ID] = j
	}
	return true
}

// ToggleCategory flips MANDATORY and ELECTIVE. Retake subjects are left
// untouched. It returns the resulting record.
func (r *CatalogRepository) ToggleCategory(id string) (models.Subject, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return models.Subject{}, false
	}
	if !r.subjects[i].IsRetake {
		r.subjects[i].Category = r.subjects[i].Category.Toggle()
	}
	return cloneSubject(r.subjects[i]), true
}

func cloneSubject(s models.Subject) models.Subject {
	out := s
	if s.Prerequisites != nil {
		out.Prerequisites = append([]string(nil), s.Prerequisites...)
	}
	return out
}
