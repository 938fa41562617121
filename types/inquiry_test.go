package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatReference(t *testing.T) {
	cases := []struct {
		id       int64
		expected string
	}{
		{7, "000007"},
		{42, "000042"},
		{123456, "123456"},
		{1234567, "1234567"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, FormatReference(tc.id))
	}
}

func TestInquiryIsPartner(t *testing.T) {
	assert.False(t, (&Inquiry{Type: InquiryTypeContact}).IsPartner())
	assert.True(t, (&Inquiry{Type: InquiryTypeDealer}).IsPartner())
	assert.True(t, (&Inquiry{Type: InquiryTypeDistributor}).IsPartner())
}
