package models

// LeadSource tags which intake form produced a lead
type LeadSource string

const (
	LeadSourceParents LeadSource = "parents"
	LeadSourceKids    LeadSource = "kids"
)

// IsValid checks if the lead source is one of the known forms
func (s LeadSource) IsValid() bool {
	return s == LeadSourceParents || s == LeadSourceKids
}

// LeadSubmission is the body posted to the lead intake API.
// It lives for a single request/response exchange and is never stored.
type LeadSubmission struct {
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone,omitempty"`          // Parent form only
	StateLocation string     `json:"state_location,omitempty"` // Parent form only
	Description   string     `json:"description"`
	LeadSource    LeadSource `json:"lead_source"`
	OriginDomain  string     `json:"original_domain"`
}
