package format

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/memberdesk/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := map[string]string{
		"":                              "-",
		"not a date":                    "-",
		"2024-03-07":                    "07-03-2024",
		"2024-03-07T10:15:00Z":          "07-03-2024",
		"2024-03-07T23:30:00.123+05:30": "07-03-2024",
		"2024-12-31T08:00:00":           "31-12-2024",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatDate(in), in)
	}
}

func TestFormatYYYYMMDD(t *testing.T) {
	assert.Equal(t, "", FormatYYYYMMDD(time.Time{}))
	assert.Equal(t, "2024-01-05", FormatYYYYMMDD(time.Date(2024, 1, 5, 13, 0, 0, 0, time.UTC)))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "   ", Capitalize("   "))
	assert.Equal(t, "Asha", Capitalize("aSHA"))
	assert.Equal(t, "Élan", Capitalize("élan"))
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "", FormatString("", Trim))
	assert.Equal(t, "asha patil", FormatString("  Asha PATIL ", Trim, Lowercase))
	assert.Equal(t, "Asha  Patil", FormatString(" asha  patil", TrimStart, CapitalizeWords))
	assert.Equal(t, "ASHA  ", FormatString("  asha  ", Uppercase, TrimStart))
	assert.Equal(t, "Asha patil", FormatString("ASHA PATIL", CapitalizeFirst))
	assert.Equal(t, "  x", FormatString("  x  ", TrimEnd))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly10!", Truncate("exactly10!", 10))
	assert.Equal(t, "Membe...", Truncate("Memberdesk", 8))
	assert.Equal(t, "...", Truncate("abcdef", 2))
}

func TestSortByNumber(t *testing.T) {
	users := []models.User{{ID: "a", OutstandingAmount: 30}, {ID: "b", OutstandingAmount: 10}, {ID: "c", OutstandingAmount: 20}}
	amount := func(u models.User) float64 { return u.OutstandingAmount }

	SortByNumber(users, amount, Asc)
	assert.Equal(t, []string{"b", "c", "a"}, ids(users))

	SortByNumber(users, amount, Desc)
	assert.Equal(t, []string{"a", "c", "b"}, ids(users))
}

func TestSortByString(t *testing.T) {
	users := []models.User{{ID: "1", Surname: "patil"}, {ID: "2", Surname: "Deshmukh"}, {ID: "3", Surname: ""}}
	surname := func(u models.User) string { return u.Surname }

	SortByString(users, surname, Asc)
	assert.Equal(t, []string{"3", "2", "1"}, ids(users))

	SortByString(users, surname, Desc)
	assert.Equal(t, []string{"1", "2", "3"}, ids(users))
}

func ids(users []models.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}
