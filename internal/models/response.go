package models

// SuccessResponse wraps model output returned to the UI.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Data    string `json:"data"`
}

// ErrorResponse is the error envelope written by every endpoint.
type ErrorResponse struct {
	Error     string            `json:"error"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ExtractResponse is returned by the document extraction endpoint.
type ExtractResponse struct {
	Success  bool   `json:"success"`
	Data     string `json:"data"`
	Filename string `json:"filename"`
	Words    int    `json:"words"`
}
