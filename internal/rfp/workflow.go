package rfp

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	ErrNotFound           = errors.New("rfp: not found")
	ErrUnknownVendor      = errors.New("rfp: unknown vendor")
	ErrNoResponse         = errors.New("rfp: vendor has not responded")
	ErrUnknownCategory    = errors.New("rfp: unknown category")
	ErrInvalidPublishType = errors.New("rfp: invalid publish type")
	ErrEmptyComment       = errors.New("rfp: comment text is empty")
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusReview    Status = "review"
	StatusApproved  Status = "approved"
	StatusPublished Status = "published"
	StatusResponses Status = "responses"
	StatusAwarded   Status = "awarded"
)

type PublishType string

const (
	PublishVendors PublishType = "vendors"
	PublishPublic  PublishType = "public"
)

// Wizard steps.
const (
	StepDraft = iota + 1
	StepInternalWorkflow
	StepPublishing
	StepResponses
	StepAward
)

const (
	FirstStep = StepDraft
	LastStep  = StepAward
)

var stepTitles = map[int]string{
	StepDraft:            "Draft RFP",
	StepInternalWorkflow: "Internal Workflow",
	StepPublishing:       "Publishing",
	StepResponses:        "Responses",
	StepAward:            "Award",
}

// StepTitle names a wizard step, or returns "" outside [FirstStep, LastStep].
func StepTitle(step int) string {
	return stepTitles[step]
}

const DefaultAuthor = "John Smith"

type VendorResponse struct {
	VendorID       string   `json:"vendorId" yaml:"vendorId"`
	VendorName     string   `json:"vendorName" yaml:"vendorName"`
	Logo           string   `json:"logo" yaml:"logo"`
	Timeline       string   `json:"timeline" yaml:"timeline"`
	CostEstimate   string   `json:"costEstimate" yaml:"costEstimate"`
	ProofPoints    []string `json:"proofPoints" yaml:"proofPoints"`
	VendorFitScore float64  `json:"vendorFitScore" yaml:"vendorFitScore"`
	SubmittedAt    string   `json:"submittedAt" yaml:"submittedAt"`
	Documents      []string `json:"documents" yaml:"documents"`
}

type Comment struct {
	Author    string `json:"author" yaml:"author"`
	Text      string `json:"text" yaml:"text"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

type RFP struct {
	ID              string           `json:"id" yaml:"id"`
	Title           string           `json:"title" yaml:"title"`
	Category        string           `json:"category" yaml:"category"`
	Status          Status           `json:"status" yaml:"status"`
	Author          string           `json:"author" yaml:"author"`
	Reviewer        string           `json:"reviewer,omitempty" yaml:"reviewer,omitempty"`
	Approver        string           `json:"approver,omitempty" yaml:"approver,omitempty"`
	CreatedAt       string           `json:"createdAt" yaml:"createdAt"`
	AwardedTo       string           `json:"awardedTo,omitempty" yaml:"awardedTo,omitempty"`
	Requirements    map[string]any   `json:"requirements" yaml:"requirements"`
	PublishType     PublishType      `json:"publishType" yaml:"publishType"`
	SelectedVendors []string         `json:"selectedVendors" yaml:"selectedVendors"`
	Responses       []VendorResponse `json:"responses" yaml:"responses"`
}

// Workflow is one RFP moving through the five-step wizard.
type Workflow struct {
	RFP       RFP       `json:"rfp" yaml:"rfp"`
	Step      int       `json:"step" yaml:"step"`
	StepTitle string    `json:"stepTitle" yaml:"stepTitle"`
	Comments  []Comment `json:"comments" yaml:"comments"`
}

// DefaultRequirements are the evaluation sliders every new RFP starts with.
func DefaultRequirements() map[string]any {
	return map[string]any{
		"timeline":      []int{50},
		"cost":          []int{50},
		"experience":    []int{50},
		"technologyFit": []int{50},
		"supportModel":  []int{50},
	}
}

func newWorkflow(id, author, createdAt string) *Workflow {
	if author == "" {
		author = DefaultAuthor
	}
	w := &Workflow{
		RFP: RFP{
			ID:              id,
			Author:          author,
			CreatedAt:       createdAt,
			Requirements:    DefaultRequirements(),
			PublishType:     PublishVendors,
			SelectedVendors: []string{},
			Responses:       []VendorResponse{},
		},
		Step:     StepDraft,
		Comments: seedComments(),
	}
	w.sync()
	return w
}

// sync derives the status and step title from the step and award state.
func (w *Workflow) sync() {
	w.StepTitle = StepTitle(w.Step)

	if w.RFP.AwardedTo != "" {
		w.RFP.Status = StatusAwarded
		return
	}
	switch w.Step {
	case StepDraft:
		w.RFP.Status = StatusDraft
	case StepInternalWorkflow:
		w.RFP.Status = StatusReview
	case StepPublishing:
		if len(w.RFP.SelectedVendors) > 0 || w.RFP.PublishType == PublishPublic {
			w.RFP.Status = StatusPublished
		} else {
			w.RFP.Status = StatusApproved
		}
	default:
		w.RFP.Status = StatusResponses
	}
}

// Next advances one step, stopping at LastStep. Reaching the responses step
// collects the vendor proposals.
func (w *Workflow) Next() {
	w.Step = min(LastStep, w.Step+1)
	if w.Step >= StepResponses && len(w.RFP.Responses) == 0 {
		w.RFP.Responses = CannedResponses()
	}
	w.sync()
}

// Previous goes back one step, stopping at FirstStep.
func (w *Workflow) Previous() {
	w.Step = max(FirstStep, w.Step-1)
	w.sync()
}

func (w *Workflow) SetTitle(title string) {
	w.RFP.Title = title
}

func (w *Workflow) SetCategory(category string) error {
	if !validCategory(category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	w.RFP.Category = category
	return nil
}

func (w *Workflow) SetPublishType(t PublishType) error {
	if t != PublishVendors && t != PublishPublic {
		return fmt.Errorf("%w: %q", ErrInvalidPublishType, t)
	}
	w.RFP.PublishType = t
	w.sync()
	return nil
}

// MergeRequirements overwrites the top-level requirement keys present in values.
func (w *Workflow) MergeRequirements(values map[string]any) {
	merged := make(map[string]any, len(w.RFP.Requirements)+len(values))
	for k, v := range w.RFP.Requirements {
		merged[k] = v
	}
	for k, v := range values {
		merged[k] = v
	}
	w.RFP.Requirements = merged
}

// ToggleRequirementOption adds option to the multiselect requirement key, or
// removes it when already selected.
func (w *Workflow) ToggleRequirementOption(key, option string) {
	current := stringSlice(w.RFP.Requirements[key])
	var updated []string
	if slices.Contains(current, option) {
		updated = slices.DeleteFunc(slices.Clone(current), func(s string) bool { return s == option })
	} else {
		updated = append(slices.Clone(current), option)
	}
	w.MergeRequirements(map[string]any{key: updated})
}

// ToggleVendor invites the vendor, or withdraws the invitation when it is already selected.
func (w *Workflow) ToggleVendor(vendorID string) error {
	if _, ok := lookupVendor(vendorID); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVendor, vendorID)
	}
	if slices.Contains(w.RFP.SelectedVendors, vendorID) {
		w.RFP.SelectedVendors = slices.DeleteFunc(slices.Clone(w.RFP.SelectedVendors), func(s string) bool { return s == vendorID })
	} else {
		w.RFP.SelectedVendors = append(slices.Clone(w.RFP.SelectedVendors), vendorID)
	}
	w.sync()
	return nil
}

// Award grants the RFP to a vendor that has submitted a response.
func (w *Workflow) Award(vendorName string) error {
	responded := slices.ContainsFunc(w.RFP.Responses, func(r VendorResponse) bool {
		return r.VendorName == vendorName
	})
	if !responded {
		return fmt.Errorf("%w: %q", ErrNoResponse, vendorName)
	}
	w.RFP.AwardedTo = vendorName
	w.sync()
	return nil
}

func (w *Workflow) AddComment(author, text string, at time.Time) error {
	if text == "" {
		return ErrEmptyComment
	}
	if author == "" {
		author = w.RFP.Author
	}
	w.Comments = append(w.Comments, Comment{Author: author, Text: text, Timestamp: at.UTC().Format(time.RFC3339)})
	return nil
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Title        *string        `json:"title,omitempty"`
	Category     *string        `json:"category,omitempty"`
	PublishType  *PublishType   `json:"publishType,omitempty"`
	Requirements map[string]any `json:"requirements,omitempty"`
}

// ApplyPatch applies p field by field and stops at the first invalid one.
func (w *Workflow) ApplyPatch(p Patch) error {
	if p.Title != nil {
		w.SetTitle(*p.Title)
	}
	if p.Category != nil {
		if err := w.SetCategory(*p.Category); err != nil {
			return err
		}
	}
	if p.PublishType != nil {
		if err := w.SetPublishType(*p.PublishType); err != nil {
			return err
		}
	}
	if p.Requirements != nil {
		w.MergeRequirements(p.Requirements)
	}
	return nil
}

// Export renders the workflow as a YAML document.
func (w *Workflow) Export() ([]byte, error) {
	out, err := yaml.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("error exporting rfp %s: %w", w.RFP.ID, err)
	}
	return out, nil
}

func (w *Workflow) clone() *Workflow {
	c := *w
	c.RFP.Requirements = make(map[string]any, len(w.RFP.Requirements))
	for k, v := range w.RFP.Requirements {
		c.RFP.Requirements[k] = v
	}
	c.RFP.SelectedVendors = slices.Clone(w.RFP.SelectedVendors)
	c.RFP.Responses = slices.Clone(w.RFP.Responses)
	c.Comments = slices.Clone(w.Comments)
	return &c
}

// stringSlice reads a multiselect value that may have been decoded from JSON.
func stringSlice(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
