package domain

// CreationReason is a read-only catalog entry used to pre-classify a new
// ticket. After creation the ticket keeps only the reason's category; the
// reason itself is not linked.
type CreationReason struct {
	ID                string
	Title             string
	Description       string
	InformationalText string
	Category          string
	EstimatedHours    int
	IsProject         bool
}
