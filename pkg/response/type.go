package response

// Resp is the standard JSON response body.
//
// Success: {"success": true, "data": ..., "message": ...}
// Failure: {"success": false, "error": {"message": ..., "status": ...}}
type Resp struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody is the failure payload.
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Details any    `json:"details,omitempty"`
}

// PageResp is the body of list responses. Data is always present, as [] when
// the page is empty.
type PageResp struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
	PageMeta
}

// PageMeta is flattened next to data for list responses.
type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}
