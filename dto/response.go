package dto

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// CheckResponse is the response body for the check-docs endpoint
type CheckResponse struct {
	Results []DocumentResult `json:"results"`
}
