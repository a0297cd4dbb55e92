package dto

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type InvalidEntriesDetail struct {
	InvalidCount int `json:"invalid_count"`
}
