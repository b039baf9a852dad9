package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserPatch_Apply_OnlyNonNil(t *testing.T) {
	u := User{ID: "U1", FirstName: "Asha", Surname: "Rao", Role: "member", TotalPayment: 10}

	first := "Usha"
	total := 25.5
	UserPatch{FirstName: &first, TotalPayment: &total}.Apply(&u)

	assert.Equal(t, "Usha", u.FirstName)
	assert.Equal(t, "Rao", u.Surname)
	assert.Equal(t, "member", u.Role)
	assert.Equal(t, 25.5, u.TotalPayment)
	assert.Equal(t, "U1", u.ID)
}

func TestUserPatch_Apply_NilUser(t *testing.T) {
	role := "admin"
	UserPatch{Role: &role}.Apply(nil)
}

func TestPatchFromUpdate(t *testing.T) {
	u := User{ID: "U1", Email: "a@b.com", FirstName: "Old"}
	PatchFromUpdate(UserUpdate{FirstName: "New", Status: "dead"}).Apply(&u)

	assert.Equal(t, "New", u.FirstName)
	assert.Equal(t, "dead", u.Status)
	assert.Equal(t, "a@b.com", u.Email)
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Asha K Rao", User{FirstName: "Asha", MiddleName: "K", Surname: "Rao"}.FullName())
	assert.Equal(t, "Asha Rao", User{FirstName: "Asha", Surname: "Rao"}.FullName())
	assert.Equal(t, "", User{}.FullName())
}

func TestPrimaryAddress(t *testing.T) {
	addrs := []Address{
		{ID: "n", IsNomineeAddress: true},
		{ID: "a"},
		{ID: "b"},
	}
	a, ok := PrimaryAddress(addrs)
	assert.True(t, ok)
	assert.Equal(t, "a", a.ID)

	_, ok = PrimaryAddress([]Address{{IsNomineeAddress: true}})
	assert.False(t, ok)
}
