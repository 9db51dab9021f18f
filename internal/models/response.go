package models

// ResponseModel is the envelope every API response uses: {success, data, error?}.
type ResponseModel struct {
	Success     bool                `json:"success"`
	Data        interface{}         `json:"data,omitempty"`
	Error       string              `json:"error,omitempty"`
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`
}

// NewSuccessResponse wraps data in a successful envelope.
func NewSuccessResponse(data interface{}) ResponseModel {
	return ResponseModel{
		Success: true,
		Data:    data,
	}
}

// NewErrorResponse builds a failed envelope carrying text.
func NewErrorResponse(text string) ResponseModel {
	return ResponseModel{
		Success: false,
		Error:   text,
	}
}

// NewValidationErrorResponse builds a failed envelope with per-field messages.
func NewValidationErrorResponse(fieldErrors map[string][]string) ResponseModel {
	return ResponseModel{
		Success:     false,
		Error:       "invalid request parameters",
		FieldErrors: fieldErrors,
	}
}
