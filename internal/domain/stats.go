package domain

// TicketStats holds headline counts over the whole collection. Recomputed on
// demand, never cached.
type TicketStats struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
}
