package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/memberdesk/internal/client/format"
	"github.com/dmitrijs2005/memberdesk/internal/client/models"
	"github.com/dmitrijs2005/memberdesk/internal/common"
	"golang.org/x/sync/errgroup"
)

// Members lists members matching the query in args. The unfiltered list is
// served from the cache when present; "-r" forces a refetch.
func (a *App) Members(ctx context.Context, args []string) error {
	if !a.requireAdmin() {
		return nil
	}
	refresh := false
	terms := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "-r" {
			refresh = true
			continue
		}
		terms = append(terms, arg)
	}
	query := strings.Join(terms, " ")

	st := a.members.State()
	cached := !refresh && query == "" && st.LastQuery == nil && st.Error == "" && len(st.Members) > 0
	switch {
	case cached:
		fmt.Fprintln(a.out, "(cached)")
	case query == "":
		st = a.members.FetchAll(ctx)
	default:
		st = a.members.Search(ctx, query)
	}

	if st.Error != "" {
		fmt.Fprintf(a.out, "Failed to refresh: %s\n", st.Error)
		if len(st.Members) == 0 {
			return nil
		}
		fmt.Fprintln(a.out, "Showing previous results:")
	}
	a.printMembers(st.Members)
	fmt.Fprintf(a.out, "%d of %d members\n", len(st.Members), st.Total)
	return nil
}

func (a *App) printMembers(list []models.User) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMEMBER\tNAME\tMOBILE\tSTATUS\tOUTSTANDING")
	for _, m := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.2f\n",
			m.ID,
			m.MemberID,
			format.Truncate(format.FormatString(m.FullName(), format.Trim, format.CapitalizeWords), 32),
			m.Mobile,
			common.LabelFor(common.MemberStatuses, m.Status),
			m.OutstandingAmount,
		)
	}
	_ = tw.Flush()
}

// Member shows one member's details and outstanding balance, fetched
// concurrently.
func (a *App) Member(ctx context.Context, args []string) error {
	if !a.requireAdmin() {
		return nil
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: member <id>")
		return nil
	}
	id := args[0]

	var (
		info        *models.UserAllInfo
		outstanding *models.Outstanding
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		info, err = a.api.Core.FetchUserInfo(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		outstanding, err = a.api.Payments.OutstandingOfMember(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load member %s: %w", id, err)
	}

	u := info.User
	fmt.Fprintf(a.out, "%s (%s)\n", format.FormatString(u.FullName(), format.CapitalizeWords), u.MemberID)
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "  Status\t%s\n", common.LabelFor(common.MemberStatuses, u.Status))
	fmt.Fprintf(tw, "  Gender\t%s\n", common.LabelFor(common.Genders, u.Gender))
	fmt.Fprintf(tw, "  Date of birth\t%s\n", format.FormatDate(u.DateOfBirth))
	fmt.Fprintf(tw, "  Member since\t%s\n", format.FormatDate(u.EntryDate))
	fmt.Fprintf(tw, "  Mobile\t%s\n", u.Mobile)
	fmt.Fprintf(tw, "  Email\t%s\n", u.Email)
	if p := info.Profile; p != nil {
		fmt.Fprintf(tw, "  Marital status\t%s\n", common.LabelFor(common.MaritalStatuses, p.MaritalStatus))
		fmt.Fprintf(tw, "  Gotra\t%s\n", common.LabelFor(common.Gotras, p.Gotra))
		fmt.Fprintf(tw, "  Native place\t%s\n", format.Capitalize(p.NativePlace))
	}
	if addr, ok := models.PrimaryAddress(info.Address); ok {
		fmt.Fprintf(tw, "  Address\t%s, %s, %s %s\n", addr.AddressLine1, addr.AreaName, addr.City, addr.Pincode)
	}
	fmt.Fprintf(tw, "  Total paid\t%.2f\n", outstanding.TotalPayment)
	fmt.Fprintf(tw, "  Outstanding\t%.2f\n", outstanding.OutstandingAmount)
	_ = tw.Flush()
	return nil
}
