package models

type DeadMember struct {
	ID                 string  `json:"_id"`
	UserID             string  `json:"userId"`
	DeathCertificate   string  `json:"death_certificate"`
	DateOfDeath        string  `json:"date_of_death"`
	ContributionAmount float64 `json:"contribution_amount"`
	Remarks            string  `json:"remarks"`
	Version            int     `json:"__v"`
}

// DeadMemberInput marks a member as dead (create) or amends the record
// (update, ID set).
type DeadMemberInput struct {
	ID                 string  `json:"id,omitempty"`
	UserID             string  `json:"userId"`
	DateOfDeath        string  `json:"date_of_death"`
	DeathCertificate   string  `json:"death_certificate"`
	Remarks            string  `json:"remarks"`
	ContributionAmount float64 `json:"contribution_amount"`
}
