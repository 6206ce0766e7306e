package model

type PageMetadata struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type PageResponse struct {
	Data       interface{}  `json:"data"`
	Pagination PageMetadata `json:"pagination"`
}

func NewPageMetadata(page, limit int, total int64) PageMetadata {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return PageMetadata{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
