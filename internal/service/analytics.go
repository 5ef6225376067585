package service

import "github.com/spec-kit/complaint-portal/internal/domain"

// CategoryCount is one chart bucket.
type CategoryCount struct {
	Category domain.TicketCategory `json:"category"`
	Count    int                   `json:"count"`
}

// PriorityCount is one chart bucket.
type PriorityCount struct {
	Priority domain.TicketPriority `json:"priority"`
	Count    int                   `json:"count"`
}

// CategoryTally groups tickets into the four fixed category buckets. Pure
// function of the collection, recomputed per request.
func CategoryTally(tickets []domain.Ticket) []CategoryCount {
	counts := make(map[domain.TicketCategory]int, 4)
	for i := range tickets {
		counts[tickets[i].Category]++
	}
	result := make([]CategoryCount, 0, 4)
	for _, category := range domain.Categories() {
		result = append(result, CategoryCount{Category: category, Count: counts[category]})
	}
	return result
}

// PriorityTally groups tickets into the three fixed priority buckets.
func PriorityTally(tickets []domain.Ticket) []PriorityCount {
	counts := make(map[domain.TicketPriority]int, 3)
	for i := range tickets {
		counts[tickets[i].Priority]++
	}
	result := make([]PriorityCount, 0, 3)
	for _, priority := range domain.Priorities() {
		result = append(result, PriorityCount{Priority: priority, Count: counts[priority]})
	}
	return result
}
