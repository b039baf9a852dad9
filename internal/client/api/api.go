// Package api exposes one typed client per backend REST resource. Clients
// only shape requests and responses; tokens and error statuses are handled
// by the transport.
package api

import (
	"net/url"

	"github.com/dmitrijs2005/memberdesk/internal/client/transport"
)

// API bundles every resource client around one transport.
type API struct {
	Auth       *AuthAPI
	Core       *CoreAPI
	Users      *UserAPI
	Profiles   *ProfileAPI
	Addresses  *AddressAPI
	Payments   *PaymentAPI
	DeadMember *DeadMemberAPI
	Upload     *UploadAPI
	Dashboard  *DashboardAPI
}

func New(c *transport.Client) *API {
	return &API{
		Auth:       &AuthAPI{c: c},
		Core:       &CoreAPI{c: c},
		Users:      &UserAPI{c: c},
		Profiles:   &ProfileAPI{c: c},
		Addresses:  &AddressAPI{c: c},
		Payments:   &PaymentAPI{c: c},
		DeadMember: &DeadMemberAPI{c: c},
		Upload:     &UploadAPI{c: c},
		Dashboard:  &DashboardAPI{c: c},
	}
}

// MutationResult is the envelope most write endpoints answer with.
type MutationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func pathID(prefix, id string) string {
	return prefix + url.PathEscape(id)
}
