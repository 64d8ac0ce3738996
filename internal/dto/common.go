package dto

// MessageResponse is the acknowledgement body of write operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// BulkUpdateResponse acknowledges a bulk write.
type BulkUpdateResponse struct {
	Message string `json:"message"`
	Updated int    `json:"updated"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
