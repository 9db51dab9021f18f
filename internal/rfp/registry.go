package rfp

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"nexus.regintel.org/internal/metrics"
)

// Registry holds the RFP workflows in memory, in creation order.
type Registry struct {
	mu        sync.RWMutex
	workflows map[string]*Workflow
	order     []string
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewRegistry returns a registry holding the seed RFPs.
func NewRegistry(m *metrics.Metrics) *Registry {
	r := &Registry{
		workflows: make(map[string]*Workflow),
		metrics:   m,
		now:       time.Now,
	}
	for _, w := range seedWorkflows() {
		r.workflows[w.RFP.ID] = w
		r.order = append(r.order, w.RFP.ID)
	}
	return r
}

// List returns a snapshot of every workflow.
func (r *Registry) List() []Workflow {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Workflow, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.workflows[id].clone())
	}
	return out
}

func (r *Registry) Get(id string) (Workflow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.workflows[id]
	if !ok {
		return Workflow{}, ErrNotFound
	}
	return *w.clone(), nil
}

// Create starts a new draft. An empty author becomes DefaultAuthor.
func (r *Registry) Create(title, category, author string) (Workflow, error) {
	w := newWorkflow(uuid.NewString(), author, r.now().Format("2006-01-02"))
	w.SetTitle(title)
	if category != "" {
		if err := w.SetCategory(category); err != nil {
			return Workflow{}, err
		}
	}

	r.mu.Lock()
	r.workflows[w.RFP.ID] = w
	r.order = append(r.order, w.RFP.ID)
	r.mu.Unlock()

	r.metrics.RFPTransition("create")
	return *w.clone(), nil
}

// Apply runs fn against a copy of the workflow and stores the copy only when fn
// succeeds, so a failed update leaves the workflow untouched.
func (r *Registry) Apply(id, action string, fn func(w *Workflow) error) (Workflow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.workflows[id]
	if !ok {
		return Workflow{}, ErrNotFound
	}
	next := current.clone()
	if err := fn(next); err != nil {
		return Workflow{}, err
	}
	r.workflows[id] = next
	r.metrics.RFPTransition(action)
	return *next.clone(), nil
}

func (r *Registry) Next(id string) (Workflow, error) {
	return r.Apply(id, "next", func(w *Workflow) error {
		w.Next()
		return nil
	})
}

func (r *Registry) Previous(id string) (Workflow, error) {
	return r.Apply(id, "previous", func(w *Workflow) error {
		w.Previous()
		return nil
	})
}

func (r *Registry) Update(id string, p Patch) (Workflow, error) {
	return r.Apply(id, "update", func(w *Workflow) error {
		return w.ApplyPatch(p)
	})
}

func (r *Registry) ToggleVendor(id, vendorID string) (Workflow, error) {
	return r.Apply(id, "toggle_vendor", func(w *Workflow) error {
		return w.ToggleVendor(vendorID)
	})
}

func (r *Registry) Award(id, vendorName string) (Workflow, error) {
	return r.Apply(id, "award", func(w *Workflow) error {
		return w.Award(vendorName)
	})
}

func (r *Registry) Comment(id, author, text string) (Workflow, error) {
	at := r.now()
	return r.Apply(id, "comment", func(w *Workflow) error {
		return w.AddComment(author, text, at)
	})
}

// Export returns the workflow as YAML.
func (r *Registry) Export(id string) ([]byte, error) {
	w, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	return w.Export()
}

func (r *Registry) ToggleOption(id, key, option string) (Workflow, error) {
	return r.Apply(id, "toggle_option", func(w *Workflow) error {
		w.ToggleRequirementOption(key, option)
		return nil
	})
}
