package response

// Response represents a standard API response format
type Response struct {
	Status     string      `json:"status"`      // "success" or "error"
	StatusCode int         `json:"status_code"` // HTTP status code
	Data       interface{} `json:"data,omitempty"`
	Meta       *ListMeta   `json:"meta,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// ListMeta carries pagination metadata for list responses
type ListMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// Success returns a standard success response wrapping the data
func Success(statusCode int, data interface{}) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Data:       data,
	}
}

// List returns a success response with pagination metadata
func List(statusCode int, data interface{}, page, limit int, total int64) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Data:       data,
		Meta:       &ListMeta{Page: page, Limit: limit, Total: total},
	}
}

// Error returns a standard error response wrapping the error message
func Error(statusCode int, err string) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      err,
	}
}
