package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/memberdesk/internal/client/format"
)

// Dashboard prints the backend's dashboard statistics, one per line.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}
	stats, err := a.api.Dashboard.Stats(ctx)
	if err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}

	keys := make([]string, 0, len(stats))
	for k := range stats {
		if k == "success" || k == "message" {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%s\n", statLabel(k), statValue(stats[k]))
	}
	return tw.Flush()
}

// statLabel turns "totalMembers" or "total_members" into "Total members".
func statLabel(key string) string {
	var b strings.Builder
	for i, r := range key {
		switch {
		case r == '_' || r == '-':
			b.WriteRune(' ')
		case i > 0 && r >= 'A' && r <= 'Z':
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return format.Capitalize(b.String())
}

func statValue(v any) string {
	switch x := v.(type) {
	case float64:
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
		return fmt.Sprintf("%.2f", x)
	case map[string]any, []any:
		return fmt.Sprintf("%v", x)
	case nil:
		return "-"
	default:
		return fmt.Sprint(x)
	}
}
