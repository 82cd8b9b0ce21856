package models

type SearchMetadata struct {
	TotalResults int   `json:"total_results"`
	TotalOffers  int   `json:"total_offers"`
	SearchTimeMs int64 `json:"search_time_ms"`
}

type SearchCriteria struct {
	DocumentID string         `json:"document_id,omitempty"`
	Filters    *SearchFilters `json:"filters,omitempty"`
	SortBy     string         `json:"sort_by"`
}

type OffersResponse struct {
	SearchCriteria SearchCriteria `json:"search_criteria"`
	Metadata       SearchMetadata `json:"metadata"`
	Offers         []OfferRecord  `json:"offers"`
}

type DocumentResponse struct {
	DocumentID  string `json:"document_id"`
	TotalOffers int    `json:"total_offers"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
