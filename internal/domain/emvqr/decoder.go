// Package emvqr decodes EMVCo-style merchant-presented QR payloads into a
// transfer destination (account number + bank code).
package emvqr

import (
	"fmt"
	"strconv"
	"strings"

	"benki/internal/models"
)

// Merchant Account Information template tag range per the EMVCo merchant QR
// layout. Any top-level tag inside this range carries a nested TLV sequence.
const (
	merchantTemplateMin = 26
	merchantTemplateMax = 51
)

// Nested tags inside a Merchant Account Information template.
const (
	nestedTagGUID        = "00"
	nestedTagAccount     = "01"
	nestedTagBankCode    = "02"
	domesticSchemePrefix = "TZ."
)

// Decode parses a TLV-encoded QR payload and extracts the merchant account
// number and bank code. The accumulator is shared across all Merchant Account
// Information templates, so when a payload carries more than one template the
// last-parsed one wins. That behavior is part of the observed contract and is
// pinned by tests; do not change it without product sign-off.
func Decode(qrData string) (models.MerchantAccountInfo, error) {
	var out models.MerchantAccountInfo

	pos := 0
	for pos < len(qrData) {
		tag, value, next, err := readField(qrData, pos)
		if err != nil {
			return models.MerchantAccountInfo{}, err
		}

		tagNum, err := strconv.Atoi(tag)
		if err != nil {
			return models.MerchantAccountInfo{}, fmt.Errorf("non-numeric tag %q at position %d", tag, pos)
		}

		if tagNum >= merchantTemplateMin && tagNum <= merchantTemplateMax {
			if err := decodeMerchantTemplate(value, &out); err != nil {
				return models.MerchantAccountInfo{}, err
			}
		}

		pos = next
	}

	return out, nil
}

// decodeMerchantTemplate walks the nested TLV sequence of one Merchant
// Account Information template, bounded by the outer field's declared length.
func decodeMerchantTemplate(data string, out *models.MerchantAccountInfo) error {
	pos := 0
	for pos < len(data) {
		tag, value, next, err := readField(data, pos)
		if err != nil {
			return err
		}

		switch tag {
		case nestedTagGUID:
			if strings.HasPrefix(value, domesticSchemePrefix) {
				parts := strings.Split(value, ".")
				if len(parts) > 2 {
					out.BankCode = parts[2]
				}
			}
		case nestedTagAccount:
			out.AccountNumber = value
		case nestedTagBankCode:
			out.BankCode = value
		}

		pos = next
	}
	return nil
}

// readField reads one tag-length-value field starting at pos and returns the
// tag, the value, and the position of the next field.
func readField(data string, pos int) (tag, value string, next int, err error) {
	if pos+4 > len(data) {
		return "", "", 0, fmt.Errorf("truncated field header at position %d", pos)
	}

	tag = data[pos : pos+2]
	length, err := strconv.Atoi(data[pos+2 : pos+4])
	if err != nil {
		return "", "", 0, fmt.Errorf("malformed length %q at position %d", data[pos+2:pos+4], pos)
	}
	if length < 0 || pos+4+length > len(data) {
		return "", "", 0, fmt.Errorf("declared length %d overruns payload at position %d", length, pos)
	}

	return tag, data[pos+4 : pos+4+length], pos + 4 + length, nil
}

// DecodeWithFallback decodes qrData, falling back to the supplied merchant
// identifier as the account number when the payload is empty or malformed.
// A bad scan must never fail the payment flow; the caller resolves the
// identifier through a merchant lookup instead.
func DecodeWithFallback(qrData, merchantID string) models.MerchantAccountInfo {
	fallback := models.MerchantAccountInfo{AccountNumber: merchantID}

	if qrData == "" {
		return fallback
	}

	info, err := Decode(qrData)
	if err != nil || info.AccountNumber == "" {
		return fallback
	}
	return info
}
