package common

// Option is a selectable key/label pair used by forms and CLI prompts.
type Option struct {
	Key   string
	Label string
}

// Member statuses.
const (
	StatusActive           = "active"
	StatusDead             = "dead"
	StatusVoluntaryRetired = "voluntary-retired"
	StatusRemoved          = "removed"
)

var MaritalStatuses = []Option{
	{Key: "married", Label: "Married"},
	{Key: "unmarried", Label: "Unmarried"},
	{Key: "divorced", Label: "Divorced"},
	{Key: "widow", Label: "Widow"},
	{Key: "divorced with child", Label: "Divorced with child"},
}

var Gotras = []Option{
	{Key: "shandilya", Label: "Shandilya"},
	{Key: "parashar", Label: "Parashar"},
	{Key: "bhargav", Label: "Bhargav"},
	{Key: "kashyap", Label: "Kashyap"},
	{Key: "vatchhas", Label: "Vatchhas"},
}

var Genders = []Option{
	{Key: "female", Label: "Female"},
	{Key: "male", Label: "Male"},
}

var MemberStatuses = []Option{
	{Key: StatusActive, Label: "Active"},
	{Key: StatusDead, Label: "Dead"},
	{Key: StatusVoluntaryRetired, Label: "Voluntary Retired"},
	{Key: StatusRemoved, Label: "Removed"},
}

var PaymentModes = []Option{
	{Key: "upi", Label: "UPI"},
	{Key: "cash", Label: "Cash"},
	{Key: "cheque", Label: "Cheque"},
	{Key: "netbanking", Label: "Net Banking"},
	{Key: "card", Label: "Card"},
	{Key: "emandate", Label: "E-mandate"},
	{Key: "nach", Label: "NACH"},
}

var PaymentTypes = []Option{
	{Key: "deposit", Label: "Deposit"},
	{Key: "membership_fee", Label: "Membership Fee"},
	{Key: "donation", Label: "Donation"},
	{Key: "msy_contribution", Label: "Contribution"},
	{Key: "other", Label: "Other"},
}

// OperatorMapping translates comparison operators typed by the user into the
// backend filter vocabulary.
var OperatorMapping = map[string]string{
	">":  "gt",
	"<":  "lt",
	">=": "gte",
	"<=": "lte",
	"=":  "eq",
}

// PageSizes lists the page sizes offered for paginated listings.
var PageSizes = []int{10, 30, 50, 100, 250}

// LabelFor returns the label registered for key in opts, or key itself when
// no option matches.
func LabelFor(opts []Option, key string) string {
	for _, o := range opts {
		if o.Key == key {
			return o.Label
		}
	}
	return key
}

// HasKey reports whether key is one of opts.
func HasKey(opts []Option, key string) bool {
	for _, o := range opts {
		if o.Key == key {
			return true
		}
	}
	return false
}
