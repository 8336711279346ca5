package emvqr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// tlv builds one tag-length-value field.
func tlv(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}

func TestDecode_MerchantTemplate(t *testing.T) {
	nested := tlv("00", "TZ.TZ.0012") + tlv("01", "1234567890")
	payload := tlv("00", "01") + tlv("26", nested) + tlv("53", "834")

	info, err := Decode(payload)
	assert.NoError(t, err)
	assert.Equal(t, "1234567890", info.AccountNumber)
	assert.Equal(t, "0012", info.BankCode)
	assert.Empty(t, info.BankName)
}

func TestDecode_ExplicitBankCodeTag(t *testing.T) {
	nested := tlv("00", "TZ.TZ.0012") + tlv("02", "0099") + tlv("01", "555000111")
	payload := tlv("26", nested)

	info, err := Decode(payload)
	assert.NoError(t, err)
	assert.Equal(t, "555000111", info.AccountNumber)
	// tag 02 came after tag 00, so it owns the bank code
	assert.Equal(t, "0099", info.BankCode)
}

func TestDecode_MultipleTemplatesLastWins(t *testing.T) {
	first := tlv("26", tlv("00", "TZ.TZ.0012")+tlv("01", "1111111111"))
	second := tlv("27", tlv("00", "TZ.TZ.0034")+tlv("01", "2222222222"))

	info, err := Decode(first + second)
	assert.NoError(t, err)
	assert.Equal(t, "2222222222", info.AccountNumber)
	assert.Equal(t, "0034", info.BankCode)
}

func TestDecode_IgnoresUnknownTags(t *testing.T) {
	nested := tlv("05", "junk") + tlv("01", "987654") + tlv("99", "trailer")
	payload := tlv("01", "12") + tlv("26", nested) + tlv("62", tlv("05", "ref"))

	info, err := Decode(payload)
	assert.NoError(t, err)
	assert.Equal(t, "987654", info.AccountNumber)
	assert.Empty(t, info.BankCode)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"length overruns payload", "2699" + tlv("01", "123")},
		{"truncated header", "26"},
		{"non-numeric length", "26XX1234"},
		{"non-numeric tag", "ZZ04abcd"},
		{"nested length overruns template", tlv("26", "0109short")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.payload)
			assert.Error(t, err)
		})
	}
}

func TestDecodeWithFallback(t *testing.T) {
	tests := []struct {
		name        string
		qrData      string
		merchantID  string
		wantAccount string
		wantBank    string
	}{
		{
			name:        "valid payload wins over merchant id",
			qrData:      tlv("26", tlv("00", "TZ.TZ.0012")+tlv("01", "1234567890")),
			merchantID:  "M-001",
			wantAccount: "1234567890",
			wantBank:    "0012",
		},
		{
			name:        "malformed payload falls back",
			qrData:      "2650" + tlv("01", "123"),
			merchantID:  "M-001",
			wantAccount: "M-001",
			wantBank:    "",
		},
		{
			name:        "empty payload falls back immediately",
			qrData:      "",
			merchantID:  "M-002",
			wantAccount: "M-002",
			wantBank:    "",
		},
		{
			name:        "payload without account number falls back",
			qrData:      tlv("26", tlv("00", "TZ.TZ.0012")),
			merchantID:  "M-003",
			wantAccount: "M-003",
			wantBank:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := DecodeWithFallback(tt.qrData, tt.merchantID)
			assert.Equal(t, tt.wantAccount, info.AccountNumber)
			assert.Equal(t, tt.wantBank, info.BankCode)
			assert.Empty(t, info.BankName)
		})
	}
}
