package payfast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Fixture from the gateway's documentation example. The digest was
// captured once from a verified reference run of the signing scheme;
// any change to encoding, ordering, or the passphrase rule shows up
// here first.
func docFields() map[string]string {
	return map[string]string{
		FieldMerchantID:   "10000100",
		FieldMerchantKey:  "46f0cd694581a",
		FieldReturnURL:    "https://www.example.com/return",
		FieldCancelURL:    "https://www.example.com/cancel",
		FieldNotifyURL:    "https://www.example.com/notify",
		FieldMPaymentID:   "TEST-ORDER-123",
		FieldAmount:       "100.00",
		FieldItemName:     "Test Product",
		FieldNameFirst:    "John",
		FieldNameLast:     "Doe",
		FieldEmailAddress: "test@example.com",
	}
}

const (
	docPassphrase = "secret"
	docSignature  = "6fd8acac4373debb2f1c044e7345d9ba"
)

func TestSignatureString_DocExample(t *testing.T) {
	expected := "merchant_id=10000100" +
		"&merchant_key=46f0cd694581a" +
		"&return_url=https%3A%2F%2Fwww.example.com%2Freturn" +
		"&cancel_url=https%3A%2F%2Fwww.example.com%2Fcancel" +
		"&notify_url=https%3A%2F%2Fwww.example.com%2Fnotify" +
		"&name_first=John" +
		"&name_last=Doe" +
		"&email_address=test%40example.com" +
		"&m_payment_id=TEST-ORDER-123" +
		"&amount=100.00" +
		"&item_name=Test+Product" +
		"&passphrase=secret"

	require.Equal(t, expected, SignatureString(docFields(), docPassphrase))
}

func TestSign_DocExample(t *testing.T) {
	require.Equal(t, docSignature, Sign(docFields(), docPassphrase))
}

func TestSign_Deterministic(t *testing.T) {
	first := Sign(docFields(), docPassphrase)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Sign(docFields(), docPassphrase))
	}

	require.Len(t, first, 32)
	require.Regexp(t, "^[0-9a-f]{32}$", first)
}

func TestVerify_RoundTrip(t *testing.T) {
	var tests = []struct {
		name       string
		fields     map[string]string
		passphrase string
	}{
		{name: "doc example", fields: docFields(), passphrase: docPassphrase},
		{name: "empty passphrase", fields: docFields(), passphrase: ""},
		{name: "minimal fields", fields: map[string]string{FieldMPaymentID: "x", FieldAmount: "1.00"}, passphrase: "p"},
		{name: "no fields", fields: map[string]string{}, passphrase: "p"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sig := Sign(tt.fields, tt.passphrase)
			require.True(t, Verify(tt.fields, sig, tt.passphrase))
			require.False(t, Verify(tt.fields, sig, tt.passphrase+"x"))
		})
	}
}

func TestSign_AnySingleFieldChangeChangesDigest(t *testing.T) {
	base := Sign(docFields(), docPassphrase)

	for _, key := range SignatureFieldOrder {
		fields := docFields()
		fields[key] = fields[key] + "x"
		require.NotEqual(t, base, Sign(fields, docPassphrase), "field %s", key)
	}
}

func TestSignatureString_SkipsEmptyAndAbsentFields(t *testing.T) {
	fields := docFields()
	delete(fields, FieldNameFirst)
	fields[FieldNameLast] = ""

	s := SignatureString(fields, docPassphrase)
	require.NotContains(t, s, "name_first")
	require.NotContains(t, s, "name_last")
	require.NotContains(t, s, "=&")
}

func TestSignatureString_EmptyPassphraseSegmentAlwaysPresent(t *testing.T) {
	s := SignatureString(docFields(), "")
	require.True(t, strings.HasSuffix(s, "&passphrase="))

	// Even with no fields at all.
	require.Equal(t, "&passphrase=", SignatureString(map[string]string{}, ""))
}

func TestVerify_IgnoresNonCanonicalFields(t *testing.T) {
	// An ITN payload carries gateway-added fields alongside the signed
	// set. They must not enter the re-serialization, or every
	// verification would fail.
	signed := docFields()
	sig := Sign(signed, docPassphrase)

	inbound := docFields()
	inbound[FieldPaymentStatus] = "COMPLETE"
	inbound[FieldPFPaymentID] = "1089250"
	inbound["fees_gross"] = "-2.28"

	require.True(t, Verify(inbound, sig, docPassphrase))
	require.Equal(t, sig, Sign(inbound, docPassphrase))
}

func TestSign_PassphraseWithSpaceUsesPercentTwenty(t *testing.T) {
	s := SignatureString(docFields(), "two words")
	require.Contains(t, s, "&passphrase=two%20words")
}
