// Package models defines the member, profile, address, payment and
// dead-member records exchanged with the backend.
package models

// User is a member record as returned by the backend. It doubles as the row
// type of the member list cache; ID is unique within any listing.
type User struct {
	ID                 string  `json:"_id"`
	MemberID           string  `json:"member_id"`
	Username           string  `json:"username"`
	Email              string  `json:"email"`
	Password           string  `json:"password,omitempty"`
	FirstName          string  `json:"first_name"`
	MiddleName         string  `json:"middle_name"`
	Surname            string  `json:"surname"`
	Mobile             string  `json:"mobile"`
	Gender             string  `json:"gender"`
	DateOfBirth        string  `json:"date_of_birth"`
	EntryDate          string  `json:"entry_date"`
	Role               string  `json:"role"`
	Status             string  `json:"status"`
	Provider           string  `json:"provider"`
	ReferenceMember1   string  `json:"reference_member_1"`
	ReferenceMember2   string  `json:"reference_member_2"`
	Blocked            bool    `json:"blocked"`
	Confirmed          bool    `json:"confirmed"`
	ConfirmationToken  string  `json:"confirmationToken,omitempty"`
	ResetPasswordToken string  `json:"resetPasswordToken,omitempty"`
	IsFirebase         bool    `json:"is_firebase"`
	IsProfileCompleted bool    `json:"is_profile_completed"`
	OutstandingAmount  float64 `json:"outstanding_amount"`
	TotalPayment       float64 `json:"total_payment"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
	Version            int     `json:"_v"`
}

// FullName joins the non-empty name parts with single spaces.
func (u User) FullName() string {
	name := ""
	for _, part := range []string{u.FirstName, u.MiddleName, u.Surname} {
		if part == "" {
			continue
		}
		if name != "" {
			name += " "
		}
		name += part
	}
	return name
}

// UserAllInfo is the aggregate returned by GET /api/user/{id}: the member
// together with its profile, addresses and related records.
type UserAllInfo struct {
	User     User             `json:"user"`
	Profile  *Profile         `json:"profile"`
	Address  []Address        `json:"address"`
	Nominee  []map[string]any `json:"nominee"`
	Payments []map[string]any `json:"payments"`
	Orders   []map[string]any `json:"orders"`
}

// UserCreate is the registration payload.
type UserCreate struct {
	FirstName        string `json:"first_name"`
	MiddleName       string `json:"middle_name"`
	Surname          string `json:"surname"`
	Mobile           string `json:"mobile"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	ReferenceMember1 string `json:"reference_member_1"`
	ReferenceMember2 string `json:"reference_member_2"`
}

// UserUpdate is the payload of PUT /api/user/update/{id}.
type UserUpdate struct {
	FirstName        string `json:"first_name"`
	MiddleName       string `json:"middle_name"`
	Surname          string `json:"surname"`
	Status           string `json:"status"`
	DateOfBirth      string `json:"date_of_birth"`
	Gender           string `json:"gender"`
	Mobile           string `json:"mobile"`
	ReferenceMember1 string `json:"reference_member_1"`
	ReferenceMember2 string `json:"reference_member_2"`
}

// UserPatch is a partial User. Nil fields are left untouched by Apply.
type UserPatch struct {
	Email             *string
	FirstName         *string
	MiddleName        *string
	Surname           *string
	Mobile            *string
	Gender            *string
	DateOfBirth       *string
	Role              *string
	Status            *string
	OutstandingAmount *float64
	TotalPayment      *float64
}

// Apply merges the non-nil fields of p into u.
func (p UserPatch) Apply(u *User) {
	if u == nil {
		return
	}
	setString(&u.Email, p.Email)
	setString(&u.FirstName, p.FirstName)
	setString(&u.MiddleName, p.MiddleName)
	setString(&u.Surname, p.Surname)
	setString(&u.Mobile, p.Mobile)
	setString(&u.Gender, p.Gender)
	setString(&u.DateOfBirth, p.DateOfBirth)
	setString(&u.Role, p.Role)
	setString(&u.Status, p.Status)
	if p.OutstandingAmount != nil {
		u.OutstandingAmount = *p.OutstandingAmount
	}
	if p.TotalPayment != nil {
		u.TotalPayment = *p.TotalPayment
	}
}

// PatchFromUpdate converts an update payload into a patch, so a successful
// PUT can be mirrored into cached copies.
func PatchFromUpdate(u UserUpdate) UserPatch {
	return UserPatch{
		FirstName:   &u.FirstName,
		MiddleName:  &u.MiddleName,
		Surname:     &u.Surname,
		Status:      &u.Status,
		DateOfBirth: &u.DateOfBirth,
		Gender:      &u.Gender,
		Mobile:      &u.Mobile,
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// UserList is the response of GET /api/user.
type UserList struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}
