package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/memberdesk/internal/client/format"
	"github.com/dmitrijs2005/memberdesk/internal/client/models"
	"github.com/dmitrijs2005/memberdesk/internal/common"
)

// Payments lists payments between optional YYYY-MM-DD bounds.
func (a *App) Payments(ctx context.Context, args []string) error {
	if !a.requireAdmin() {
		return nil
	}
	var from, to string
	if len(args) > 0 {
		from = args[0]
	}
	if len(args) > 1 {
		to = args[1]
	}
	for _, d := range []*string{&from, &to} {
		if *d == "" {
			continue
		}
		t, ok := format.ParseDate(*d)
		if !ok {
			fmt.Fprintf(a.out, "Invalid date %q, expected YYYY-MM-DD\n", *d)
			return nil
		}
		*d = format.FormatYYYYMMDD(t)
	}

	payments, err := a.api.Payments.ListPayments(ctx, from, to)
	if err != nil {
		return fmt.Errorf("list payments: %w", err)
	}
	format.SortByString(payments, func(p models.Payment) string { return p.Date }, format.Desc)

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tMEMBER\tAMOUNT\tMODE\tTYPE\tRECEIPT")
	var total float64
	for _, p := range payments {
		total += p.Amount
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%s\t%s\n",
			format.FormatDate(p.Date),
			p.UserID,
			p.Amount,
			common.LabelFor(common.PaymentModes, p.PaymentMode),
			common.LabelFor(common.PaymentTypes, p.PaymentType),
			p.ReceiptNumber,
		)
	}
	_ = tw.Flush()
	fmt.Fprintf(a.out, "%d payments, total %.2f\n", len(payments), total)
	return nil
}

// Payouts lists payouts; limit must be one of the offered page sizes.
func (a *App) Payouts(ctx context.Context, args []string) error {
	if !a.requireAdmin() {
		return nil
	}
	limit, page := common.PageSizes[0], 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || !slices.Contains(common.PageSizes, n) {
			fmt.Fprintf(a.out, "Limit must be one of %v\n", common.PageSizes)
			return nil
		}
		limit = n
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			fmt.Fprintln(a.out, "Page must be a positive number")
			return nil
		}
		page = n
	}

	payouts, err := a.api.Payments.ListPayouts(ctx, limit, page)
	if err != nil {
		return fmt.Errorf("list payouts: %w", err)
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tDEAD MEMBER\tPAID TO\tAMOUNT\tPAID BY")
	for _, p := range payouts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%s\n",
			format.FormatDate(p.PaymentDate),
			p.DeadMemberID,
			format.Capitalize(p.PaymentToPerson),
			p.PaymentAmount,
			format.Capitalize(p.PaymentByPerson),
		)
	}
	_ = tw.Flush()
	fmt.Fprintf(a.out, "page %d, %d payouts\n", page, len(payouts))
	return nil
}

// Outstanding lists members by outstanding amount, largest first. An
// optional "<op> <amount>" filter (e.g. "> 500") narrows the list.
func (a *App) Outstanding(ctx context.Context, args []string) error {
	if !a.requireAdmin() {
		return nil
	}
	keep := func(float64) bool { return true }
	if len(args) > 0 {
		f, err := outstandingFilter(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return nil
		}
		keep = f
	}

	rows, err := a.api.Payments.AllUserOutstanding(ctx)
	if err != nil {
		return fmt.Errorf("outstanding amounts: %w", err)
	}
	format.SortByNumber(rows, outstandingAmount, format.Desc)

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MEMBER\tNAME\tOUTSTANDING")
	shown := 0
	for _, r := range rows {
		amount := outstandingAmount(r)
		if !keep(amount) {
			continue
		}
		shown++
		fmt.Fprintf(tw, "%s\t%s\t%.2f\n", stringField(r, "member_id", "_id", "userId"), rowName(r), amount)
	}
	_ = tw.Flush()
	fmt.Fprintf(a.out, "%d members\n", shown)
	return nil
}

func outstandingFilter(args []string) (func(float64) bool, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("usage: outstanding [<op> <amount>]")
	}
	op, ok := common.OperatorMapping[args[0]]
	if !ok {
		return nil, fmt.Errorf("unknown operator %q", args[0])
	}
	limit, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q", args[1])
	}
	return func(v float64) bool {
		switch op {
		case "gt":
			return v > limit
		case "lt":
			return v < limit
		case "gte":
			return v >= limit
		case "lte":
			return v <= limit
		default:
			return v == limit
		}
	}, nil
}

func outstandingAmount(row map[string]any) float64 {
	for _, k := range []string{"outstanding_amount", "outstandingAmount", "amount"} {
		switch v := row[k].(type) {
		case float64:
			return v
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
	}
	return 0
}

func stringField(row map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := row[k].(string); ok && s != "" {
			return s
		}
	}
	return "-"
}

func rowName(row map[string]any) string {
	parts := make([]string, 0, 3)
	for _, k := range []string{"first_name", "middle_name", "surname"} {
		if s, ok := row[k].(string); ok && s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return stringField(row, "name", "username")
	}
	return format.FormatString(strings.Join(parts, " "), format.CapitalizeWords)
}

// Dead lists members recorded as deceased.
func (a *App) Dead(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}
	records, err := a.api.DeadMember.List(ctx)
	if err != nil {
		return fmt.Errorf("list dead members: %w", err)
	}
	format.SortByString(records, func(d models.DeadMember) string { return d.DateOfDeath }, format.Desc)

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MEMBER\tDATE OF DEATH\tCONTRIBUTION\tREMARKS")
	for _, d := range records {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\n",
			d.UserID, format.FormatDate(d.DateOfDeath), d.ContributionAmount, format.Truncate(d.Remarks, 40))
	}
	_ = tw.Flush()
	return nil
}
