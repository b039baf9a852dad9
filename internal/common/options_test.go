package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelFor(t *testing.T) {
	assert.Equal(t, "Contribution", LabelFor(PaymentTypes, "msy_contribution"))
	assert.Equal(t, "Voluntary Retired", LabelFor(MemberStatuses, StatusVoluntaryRetired))
	assert.Equal(t, "unknown", LabelFor(Genders, "unknown"))
}

func TestHasKey(t *testing.T) {
	assert.True(t, HasKey(PaymentModes, "nach"))
	assert.False(t, HasKey(PaymentModes, ""))
	assert.False(t, HasKey(nil, "upi"))
}

func TestOperatorMapping(t *testing.T) {
	assert.Equal(t, "gte", OperatorMapping[">="])
	assert.Len(t, OperatorMapping, 5)
}
