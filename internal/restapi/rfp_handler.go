package restapi

import (
	"errors"
	"net/http"
	"strings"

	"nexus.regintel.org/internal/rfp"
	"nexus.regintel.org/internal/utils"
)

type createRFPRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Author   string `json:"author"`
}

type awardRequest struct {
	VendorName string `json:"vendorName"`
}

type commentRequest struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

type optionRequest struct {
	Option string `json:"option"`
}

type rfpReference struct {
	Categories []string              `json:"categories"`
	Vendors    []rfp.DirectoryVendor `json:"vendors"`
}

// pathID reads and validates the {id} path value. It writes the 400 itself.
func (api *RestAPI) pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := utils.ExtractIDFromParams(r, "id")
	if err := utils.ValidateID(id); err != nil {
		api.fieldErrorResponse(w, r, "id", err)
		return "", false
	}
	return id, true
}

// sendWorkflow maps registry errors onto the envelope.
func (api *RestAPI) sendWorkflow(w http.ResponseWriter, r *http.Request, wf rfp.Workflow, err error) {
	switch {
	case err == nil:
		api.sendData(w, r, wf)
	case errors.Is(err, rfp.ErrNotFound):
		api.sendNotFound(w, r, "RFP not found")
	case errors.Is(err, rfp.ErrUnknownVendor):
		api.sendNotFound(w, r, "Vendor not found")
	case errors.Is(err, rfp.ErrNoResponse):
		api.fieldErrorResponse(w, r, "vendorName", err)
	case errors.Is(err, rfp.ErrUnknownCategory):
		api.fieldErrorResponse(w, r, "category", err)
	case errors.Is(err, rfp.ErrInvalidPublishType):
		api.fieldErrorResponse(w, r, "publishType", err)
	case errors.Is(err, rfp.ErrEmptyComment):
		api.fieldErrorResponse(w, r, "text", err)
	default:
		api.serverErrorResponse(w, r, err, "Failed to update RFP")
	}
}

func (api *RestAPI) rfpsHandler(w http.ResponseWriter, r *http.Request) {
	api.sendData(w, r, api.RFPs.List())
}

func (api *RestAPI) rfpReferenceHandler(w http.ResponseWriter, r *http.Request) {
	api.sendData(w, r, rfpReference{Categories: rfp.Categories, Vendors: rfp.Directory()})
}

func (api *RestAPI) createRFPHandler(w http.ResponseWriter, r *http.Request) {
	var req createRFPRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		api.fieldErrorResponse(w, r, "body", err)
		return
	}
	req.Title = utils.SanitizeInput(req.Title)
	req.Author = utils.SanitizeInput(req.Author)

	wf, err := api.RFPs.Create(req.Title, req.Category, req.Author)
	if err != nil {
		api.sendWorkflow(w, r, wf, err)
		return
	}
	api.sendCreated(w, r, wf)
}

func (api *RestAPI) rfpHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.pathID(w, r)
	if !ok {
		return
	}
	wf, err := api.RFPs.Get(id)
	api.sendWorkflow(w, r, wf, err)
}

func (api *RestAPI) updateRFPHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.pathID(w, r)
	if !ok {
		return
	}
	var patch rfp.Patch
	if err := decodeJSONBody(w, r, &patch); err != nil {
		api.fieldErrorResponse(w, r, "body", err)
		return
	}
	if patch.Title != nil {
		title := utils.SanitizeInput(*patch.Title)
		patch.Title = &title
	}
	wf, err := api.RFPs.Update(id, patch)
	api.sendWorkflow(w, r, wf, err)
}

func (api *RestAPI) nextRFPStepHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.pathID(w, r)
	if !ok {
		return
	}
	wf, err := api.RFPs.Next(id)
	api.sendWorkflow(w, r, wf, err)
}

func (api *RestAPI) previousRFPStepHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.pathID(w, r)
	if !ok {
		return
	}
	wf, err := api.RFPs.Previous(id)
	api.sendWorkflow(w, r, wf, err)
}

func (api *RestAPI) toggleRFPVendorHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.pathID(w, r)
	if !ok {
		return
	}
	vendorID := utils.ExtractIDFromParams(r, "vendorId")
	if err := utils.ValidateID(vendorID); err != nil {
		api.fieldErrorResponse(w, r, "vendorId", err)
		return
	}
	wf, err := api.RFPs.ToggleVendor(id, vendorID)
	api.sendWorkflow(w, r, wf, err)
}

func (api *RestAPI) toggleRFPRequirementHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.pathID(w, r)
	if !ok {
		return
	}
	key := utils.ExtractIDFromParams(r, "key")
	if err := utils.ValidateID(key); err != nil {
		api.fieldErrorResponse(w, r, "key", err)
		return
	}
	var req optionRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		api.fieldErrorResponse(w, r, "body", err)
		return
	}
	req.Option = utils.SanitizeInput(req.Option)
	if req.Option == "" {
		api.fieldErrorResponse(w, r, "option", errors.New("option is required"))
		return
	}
	wf, err := api.RFPs.ToggleOption(id, key, req.Option)
	api.sendWorkflow(w, r, wf, err)
}

func (api *RestAPI) awardRFPHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.pathID(w, r)
	if !ok {
		return
	}
	var req awardRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		api.fieldErrorResponse(w, r, "body", err)
		return
	}
	if strings.TrimSpace(req.VendorName) == "" {
		api.fieldErrorResponse(w, r, "vendorName", errors.New("vendorName is required"))
		return
	}
	wf, err := api.RFPs.Award(id, req.VendorName)
	api.sendWorkflow(w, r, wf, err)
}

func (api *RestAPI) commentRFPHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.pathID(w, r)
	if !ok {
		return
	}
	var req commentRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		api.fieldErrorResponse(w, r, "body", err)
		return
	}
	wf, err := api.RFPs.Comment(id, utils.SanitizeInput(req.Author), utils.SanitizeInput(req.Text))
	api.sendWorkflow(w, r, wf, err)
}

// exportRFPHandler serves the workflow as a YAML attachment instead of the JSON envelope.
func (api *RestAPI) exportRFPHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.pathID(w, r)
	if !ok {
		return
	}
	out, err := api.RFPs.Export(id)
	if err != nil {
		api.sendWorkflow(w, r, rfp.Workflow{}, err)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.Header().Set("Content-Disposition", `attachment; filename="rfp-`+id+`.yaml"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}
