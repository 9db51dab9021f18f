package rfp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewWorkflowDefaults(t *testing.T) {
	w := newWorkflow("x", "", "2024-02-01")

	assert.Equal(t, DefaultAuthor, w.RFP.Author)
	assert.Equal(t, StepDraft, w.Step)
	assert.Equal(t, "Draft RFP", w.StepTitle)
	assert.Equal(t, StatusDraft, w.RFP.Status)
	assert.Equal(t, PublishVendors, w.RFP.PublishType)
	assert.Empty(t, w.RFP.SelectedVendors)
	assert.Len(t, w.Comments, 2)
	for _, key := range []string{"timeline", "cost", "experience", "technologyFit", "supportModel"} {
		assert.Equal(t, []int{50}, w.RFP.Requirements[key], key)
	}
}

func TestStepStaysInRange(t *testing.T) {
	w := newWorkflow("x", "", "")
	moves := []bool{true, true, true, true, true, true, true, false, true, false, false, false, false, false, false, false, true}
	for i, forward := range moves {
		if forward {
			w.Next()
		} else {
			w.Previous()
		}
		assert.GreaterOrEqual(t, w.Step, FirstStep, "move %d", i)
		assert.LessOrEqual(t, w.Step, LastStep, "move %d", i)
	}

	for range 20 {
		w.Next()
	}
	assert.Equal(t, LastStep, w.Step)
	for range 20 {
		w.Previous()
	}
	assert.Equal(t, FirstStep, w.Step)
}

func TestStatusFollowsStep(t *testing.T) {
	w := newWorkflow("x", "", "")
	want := []Status{StatusReview, StatusApproved, StatusResponses, StatusResponses}
	for _, status := range want {
		w.Next()
		assert.Equal(t, status, w.RFP.Status, "step %d", w.Step)
	}
	assert.Equal(t, "Award", w.StepTitle)
}

func TestPublishingStatus(t *testing.T) {
	w := newWorkflow("x", "", "")
	w.Next()
	w.Next()
	assert.Equal(t, StatusApproved, w.RFP.Status)

	require.NoError(t, w.ToggleVendor("veeva"))
	assert.Equal(t, StatusPublished, w.RFP.Status)

	require.NoError(t, w.ToggleVendor("veeva"))
	assert.Equal(t, StatusApproved, w.RFP.Status)

	require.NoError(t, w.SetPublishType(PublishPublic))
	assert.Equal(t, StatusPublished, w.RFP.Status)
}

func TestReachingResponsesCollectsProposals(t *testing.T) {
	w := newWorkflow("x", "", "")
	for range 3 {
		w.Next()
	}
	assert.Equal(t, StepResponses, w.Step)
	assert.Len(t, w.RFP.Responses, 2)
}

func TestToggleVendorTwiceRestores(t *testing.T) {
	w := newWorkflow("x", "", "")
	require.NoError(t, w.ToggleVendor("iqvia"))
	require.NoError(t, w.ToggleVendor("oracle"))
	before := append([]string(nil), w.RFP.SelectedVendors...)

	for _, id := range []string{"veeva", "oracle", "freyr"} {
		require.NoError(t, w.ToggleVendor(id))
		require.NoError(t, w.ToggleVendor(id))
		assert.ElementsMatch(t, before, w.RFP.SelectedVendors, id)
	}

	require.NoError(t, w.ToggleVendor("veeva"))
	require.NoError(t, w.ToggleVendor("veeva"))
	assert.Equal(t, before, w.RFP.SelectedVendors)
}

func TestToggleUnknownVendor(t *testing.T) {
	w := newWorkflow("x", "", "")
	assert.ErrorIs(t, w.ToggleVendor("acme"), ErrUnknownVendor)
	assert.Empty(t, w.RFP.SelectedVendors)
}

func TestMergeRequirementsIsShallow(t *testing.T) {
	w := newWorkflow("x", "", "")
	w.MergeRequirements(map[string]any{
		"cost":    []int{80},
		"modules": []string{"Submissions"},
	})

	assert.Equal(t, []int{80}, w.RFP.Requirements["cost"])
	assert.Equal(t, []int{50}, w.RFP.Requirements["timeline"])
	assert.Equal(t, []string{"Submissions"}, w.RFP.Requirements["modules"])
}

func TestToggleRequirementOption(t *testing.T) {
	w := newWorkflow("x", "", "")
	w.ToggleRequirementOption("modules", "Submissions")
	w.ToggleRequirementOption("modules", "Registrations")
	assert.Equal(t, []string{"Submissions", "Registrations"}, w.RFP.Requirements["modules"])

	w.ToggleRequirementOption("modules", "Submissions")
	assert.Equal(t, []string{"Registrations"}, w.RFP.Requirements["modules"])

	// values decoded from JSON arrive as []any
	w.MergeRequirements(map[string]any{"regions": []any{"EU", "US"}})
	w.ToggleRequirementOption("regions", "EU")
	assert.Equal(t, []string{"US"}, w.RFP.Requirements["regions"])
}

func TestAward(t *testing.T) {
	w := newWorkflow("x", "", "")
	assert.ErrorIs(t, w.Award("Veeva Systems"), ErrNoResponse)

	for range 4 {
		w.Next()
	}
	assert.ErrorIs(t, w.Award("Oracle"), ErrNoResponse)
	require.NoError(t, w.Award("ArisGlobal"))
	assert.Equal(t, "ArisGlobal", w.RFP.AwardedTo)
	assert.Equal(t, StatusAwarded, w.RFP.Status)

	w.Previous()
	assert.Equal(t, StatusAwarded, w.RFP.Status)
}

func TestSetCategoryAndPublishType(t *testing.T) {
	w := newWorkflow("x", "", "")
	require.NoError(t, w.SetCategory("IDMP"))
	assert.ErrorIs(t, w.SetCategory("Hardware"), ErrUnknownCategory)
	assert.Equal(t, "IDMP", w.RFP.Category)

	assert.ErrorIs(t, w.SetPublishType("private"), ErrInvalidPublishType)
	assert.Equal(t, PublishVendors, w.RFP.PublishType)
}

func TestApplyPatch(t *testing.T) {
	w := newWorkflow("x", "", "")
	title := "EDC Platform"
	category := "Web Apps"
	public := PublishPublic
	require.NoError(t, w.ApplyPatch(Patch{
		Title:        &title,
		Category:     &category,
		PublishType:  &public,
		Requirements: map[string]any{"budget": "500000"},
	}))

	assert.Equal(t, title, w.RFP.Title)
	assert.Equal(t, category, w.RFP.Category)
	assert.Equal(t, PublishPublic, w.RFP.PublishType)
	assert.Equal(t, "500000", w.RFP.Requirements["budget"])

	bad := "Hardware"
	assert.ErrorIs(t, w.ApplyPatch(Patch{Category: &bad}), ErrUnknownCategory)
}

func TestAddComment(t *testing.T) {
	w := newWorkflow("x", "", "")
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	require.NoError(t, w.AddComment("", "Looks good", at))
	assert.ErrorIs(t, w.AddComment("Ann", "", at), ErrEmptyComment)

	last := w.Comments[len(w.Comments)-1]
	assert.Equal(t, Comment{Author: DefaultAuthor, Text: "Looks good", Timestamp: "2024-03-01T09:30:00Z"}, last)
}

func TestExportIsYAML(t *testing.T) {
	w := newWorkflow("rfp-9", "", "2024-02-01")
	w.SetTitle("Safety Database")
	require.NoError(t, w.ToggleVendor("extedo"))

	out, err := w.Export()
	require.NoError(t, err)

	var doc struct {
		RFP struct {
			ID              string   `yaml:"id"`
			Title           string   `yaml:"title"`
			Status          string   `yaml:"status"`
			SelectedVendors []string `yaml:"selectedVendors"`
		} `yaml:"rfp"`
		Step int `yaml:"step"`
	}
	require.NoError(t, yaml.Unmarshal(out, &doc))
	assert.Equal(t, "rfp-9", doc.RFP.ID)
	assert.Equal(t, "Safety Database", doc.RFP.Title)
	assert.Equal(t, "draft", doc.RFP.Status)
	assert.Equal(t, []string{"extedo"}, doc.RFP.SelectedVendors)
	assert.Equal(t, 1, doc.Step)
}
