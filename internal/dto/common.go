package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`   // Stable kind, e.g. NOT_FOUND
	Message string `json:"message"` // Human readable
}

// PageQuery defines query parameters for paged lists.
type PageQuery struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=10" binding:"min=1,max=100"`
}

// PaginationResponse describes the window returned by a paged list.
type PaginationResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPaginationResponse computes the page count for total rows.
func NewPaginationResponse(page, limit, total int) PaginationResponse {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return PaginationResponse{Page: page, Limit: limit, Total: total, Pages: pages}
}
