package models

// Communication is one way of reaching a listing agent.
type Communication struct {
	Type    CommunicationType `json:"type"`
	Details string            `json:"details"`
}

// ListingAgent is an agent attached to a listing. Order is the dense
// 1-based rank assigned after sorting, never the raw source attribute.
type ListingAgent struct {
	Name           string          `json:"name"`
	Order          int             `json:"order"`
	Communications []Communication `json:"communications"`
}
