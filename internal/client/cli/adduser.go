package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/memberdesk/internal/client/models"
	"github.com/dmitrijs2005/memberdesk/internal/client/validation"
	"github.com/dmitrijs2005/memberdesk/internal/common"
)

// AddUser registers a member, then creates the profile and primary address
// with the new member's own token. The member list cache is cleared since
// it can no longer be trusted.
func (a *App) AddUser(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}

	var form validation.UserCreate
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"First name", &form.FirstName},
		{"Middle name", &form.MiddleName},
		{"Surname", &form.LastName},
		{"Mobile number", &form.MobileNumber},
		{"Email", &form.Email},
	}
	for _, f := range fields {
		v, err := GetSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	pw, err := GetPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	form.Password = pw
	if form.ConfirmPassword, err = GetSimpleText(a.reader, "Confirm password", a.out); err != nil {
		return err
	}
	if !a.checkForm(form) {
		return nil
	}

	var profile validation.ProfileDetails
	if profile.MaritalStatus, err = GetChoice(a.reader, "Marital status", common.MaritalStatuses, a.out); err != nil {
		return err
	}
	if profile.Gotra, err = GetChoice(a.reader, "Gotra", common.Gotras, a.out); err != nil {
		return err
	}
	if profile.NativePlace, err = GetSimpleText(a.reader, "Native place", a.out); err != nil {
		return err
	}
	if !a.checkForm(profile) {
		return nil
	}

	address, err := a.promptAddress()
	if err != nil {
		return err
	}
	if address != nil && !a.checkForm(*address) {
		return nil
	}

	created, err := a.api.Users.CreateUser(ctx, form.Model())
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	a.members.Clear()
	if created.Token == "" {
		return errors.New("backend did not return a token for the new member")
	}

	_, err = a.api.Profiles.CreateProfile(ctx, created.Token, models.ProfileCreate{
		UserID:        created.User.ID,
		NativePlace:   profile.NativePlace,
		MaritalStatus: profile.MaritalStatus,
		Gotra:         profile.Gotra,
	})
	if err != nil {
		return fmt.Errorf("member %s created, profile failed: %w", created.User.ID, err)
	}
	if address != nil {
		if _, err := a.api.Addresses.CreateAddress(ctx, created.Token, address.Model()); err != nil {
			return fmt.Errorf("member %s created, address failed: %w", created.User.ID, err)
		}
	}

	fmt.Fprintf(a.out, "Member %s created (%s)\n", created.User.FullName(), created.User.ID)
	return nil
}

// promptAddress returns nil when the user skips the address.
func (a *App) promptAddress() (*validation.Address, error) {
	answer, err := GetSimpleText(a.reader, "Add address now? (y/N)", a.out)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(answer, "y") {
		return nil, nil
	}

	var f validation.Address
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Address line 1", &f.AddressLine1},
		{"Address line 2", &f.AddressLine2},
		{"Area name", &f.AreaName},
		{"Landmark", &f.Landmark},
		{"City", &f.City},
		{"Pincode", &f.Pincode},
		{"State", &f.State},
		{"Country", &f.Country},
	}
	for _, field := range fields {
		v, err := GetSimpleText(a.reader, field.prompt, a.out)
		if err != nil {
			return nil, err
		}
		*field.dst = v
	}
	return &f, nil
}

// checkForm validates form and prints every failed field.
func (a *App) checkForm(form any) bool {
	err := validation.Validate(form)
	if err == nil {
		return true
	}
	var errs validation.Errors
	if !errors.As(err, &errs) {
		fmt.Fprintf(a.out, "invalid input: %v\n", err)
		return false
	}
	for _, fe := range errs {
		fmt.Fprintf(a.out, "  %s: %s\n", fe.Field, fe.Message)
	}
	return false
}
