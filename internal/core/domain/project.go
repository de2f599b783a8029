package domain

import "time"

// Project groups tasks and members under a manager. Tasks reference the
// project by id; the project does not own task records.
type Project struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	ManagerID   string       `json:"manager_id"`
	StartDate   string       `json:"start_date"`         // ISO date YYYY-MM-DD
	EndDate     string       `json:"end_date,omitempty"` // empty = open-ended
	Members     []string     `json:"members"`            // user ids; the manager is not required to appear here
	Attachments []Attachment `json:"attachments"`
	CreatedAt   time.Time    `json:"created_at"`
}

// HasMember reports whether userID is in the project's member list.
func (p *Project) HasMember(userID string) bool {
	for _, m := range p.Members {
		if m == userID {
			return true
		}
	}
	return false
}
