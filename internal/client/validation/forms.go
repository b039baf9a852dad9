package validation

import "github.com/dmitrijs2005/memberdesk/internal/client/models"

// UserRegistration is the member details part of the edit form.
type UserRegistration struct {
	FirstName       string `form:"firstName" validate:"required,min=2,person_name" msg:"required=First Name is required|min=Minimum 2 letters required|person_name=Enter a valid Name"`
	MiddleName      string `form:"middleName" validate:"required,person_name" msg:"required=Middle Name is required|person_name=Enter a valid Name"`
	LastName        string `form:"lastName" validate:"required,min=2,person_name" msg:"required=Surname is required|min=Minimum 2 letters required|person_name=Enter a valid Name"`
	MobileNumber    string `form:"mobileNumber" validate:"required,digits,len=10" msg:"required=Mobile number is required|digits=Must be only digits|len=Must be exactly 10 digits"`
	Email           string `form:"email" validate:"required,email" msg:"required=Email is required|email=Invalid email"`
	Gender          string `form:"gender" validate:"required" msg:"required=Gender is required"`
	DOB             string `form:"dob" validate:"required,datetime=2006-01-02" msg:"required=Date is required|datetime=Invalid date"`
	Password        string `form:"password" validate:"required,strong_password" msg:"required=Password is required|strong_password=Password must be at least 8 characters long and must contain at least one uppercase, lowercase and number. SPACE NOT ALLOWED"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password" msg:"required=Confirm Password is required|eqfield=Confirm Password different from Password"`
	Status          string `form:"status" validate:"required" msg:"required=Status is required"`
	RefNum1         string `form:"refNum1" validate:"required" msg:"required=Reference Number 1 is required"`
	RefNum2         string `form:"refNum2" validate:"required" msg:"required=Reference Number 2 is required"`
}

// UserCreate is the add-member form.
type UserCreate struct {
	FirstName       string `form:"firstName" validate:"required,min=2,person_name" msg:"required=First Name is required|min=Minimum 2 letters required|person_name=Enter a valid Name"`
	MiddleName      string `form:"middleName" validate:"required,person_name" msg:"required=Middle Name is required|person_name=Enter a valid Name"`
	LastName        string `form:"lastName" validate:"required,min=2,person_name" msg:"required=Surname is required|min=Minimum 2 letters required|person_name=Enter a valid Name"`
	MobileNumber    string `form:"mobileNumber" validate:"required,digits,len=10" msg:"required=Mobile number is required|digits=Must be only digits|len=Must be exactly 10 digits"`
	Email           string `form:"email" validate:"required,email" msg:"required=Email is required|email=Invalid email"`
	Password        string `form:"password" validate:"required,strong_password" msg:"required=Password is required|strong_password=Password must be at least 8 characters long and must contain at least one uppercase, lowercase and number. SPACE NOT ALLOWED"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password" msg:"required=Confirm Password is required|eqfield=Confirm Password different from Password"`
}

// Model converts the form into the registration payload.
func (f UserCreate) Model() models.UserCreate {
	return models.UserCreate{
		FirstName:  f.FirstName,
		MiddleName: f.MiddleName,
		Surname:    f.LastName,
		Mobile:     f.MobileNumber,
		Email:      f.Email,
		Password:   f.Password,
	}
}

type ProfileDetails struct {
	MaritalStatus string `form:"maritalStatus" validate:"required" msg:"required=Marital Status is required"`
	Gotra         string `form:"gotra" validate:"required" msg:"required=Gotra is required"`
	NativePlace   string `form:"nativePlace" validate:"required,min=2,person_name" msg:"required=Native Place is required|min=Minimum 2 letters required|person_name=Enter a valid Place"`
}

type Address struct {
	AddressLine1 string `form:"addressLine1" validate:"required" msg:"required=Address Line 1 is required"`
	AddressLine2 string `form:"addressLine2" validate:"required" msg:"required=Address Line 2 is required"`
	AreaName     string `form:"areaName" validate:"required" msg:"required=Area Name is required"`
	Landmark     string `form:"landmark" validate:"required" msg:"required=Landmark is required"`
	City         string `form:"city" validate:"required" msg:"required=City is required"`
	Pincode      string `form:"pincode" validate:"required,len=6,digits" msg:"required=Pincode is required|len=Must be exactly 6 digits|digits=Must be only digits"`
	State        string `form:"state" validate:"required" msg:"required=State is required"`
	Country      string `form:"country" validate:"required" msg:"required=Country is required"`
}

func (f Address) Model() models.AddressInput {
	return models.AddressInput{
		AddressLine1: f.AddressLine1,
		AddressLine2: f.AddressLine2,
		AreaName:     f.AreaName,
		Landmark:     f.Landmark,
		City:         f.City,
		State:        f.State,
		Country:      f.Country,
		Pincode:      f.Pincode,
	}
}

// UpdateUser is the full edit form: member, profile and address details.
type UpdateUser struct {
	UserRegistration
	ProfileDetails
	Address
}

// UserUpdate converts the member part into the update payload.
func (f UpdateUser) UserUpdate() models.UserUpdate {
	return models.UserUpdate{
		FirstName:        f.FirstName,
		MiddleName:       f.MiddleName,
		Surname:          f.LastName,
		Status:           f.Status,
		DateOfBirth:      f.DOB,
		Gender:           f.Gender,
		Mobile:           f.MobileNumber,
		ReferenceMember1: f.RefNum1,
		ReferenceMember2: f.RefNum2,
	}
}

func (f UpdateUser) ProfileUpdate() models.ProfileUpdate {
	return models.ProfileUpdate{
		NativePlace:   f.NativePlace,
		MaritalStatus: f.MaritalStatus,
		Gotra:         f.Gotra,
	}
}
