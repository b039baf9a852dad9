package models

type Address struct {
	ID               string `json:"_id"`
	UserID           string `json:"userId"`
	AddressLine1     string `json:"address_line_1"`
	AddressLine2     string `json:"address_line_2"`
	AreaName         string `json:"area_name"`
	Landmark         string `json:"landmark"`
	City             string `json:"city"`
	State            string `json:"state"`
	Country          string `json:"country"`
	Pincode          string `json:"pincode"`
	IsNomineeAddress bool   `json:"is_nominee_address"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
	Version          int    `json:"__v"`
}

// AddressInput is the body of both address create and update calls.
type AddressInput struct {
	AddressLine1     string `json:"address_line_1"`
	AddressLine2     string `json:"address_line_2"`
	AreaName         string `json:"area_name"`
	Landmark         string `json:"landmark"`
	City             string `json:"city"`
	State            string `json:"state"`
	Country          string `json:"country"`
	Pincode          string `json:"pincode"`
	IsNomineeAddress bool   `json:"is_nominee_address"`
}

// PrimaryAddress returns the first address that is not a nominee address.
func PrimaryAddress(addresses []Address) (Address, bool) {
	for _, a := range addresses {
		if !a.IsNomineeAddress {
			return a, true
		}
	}
	return Address{}, false
}
