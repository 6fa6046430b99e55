// Package payfast implements the PayFast signing convention: the
// gateway's parameter encoding, the ordered signature string, the MD5
// integrity signature, and the checkout payload builder. The same code
// path signs outbound payment requests and verifies inbound ITN
// callbacks.
package payfast

// Field names understood by the gateway.
const (
	FieldMerchantID   = "merchant_id"
	FieldMerchantKey  = "merchant_key"
	FieldReturnURL    = "return_url"
	FieldCancelURL    = "cancel_url"
	FieldNotifyURL    = "notify_url"
	FieldNameFirst    = "name_first"
	FieldNameLast     = "name_last"
	FieldEmailAddress = "email_address"
	FieldMPaymentID   = "m_payment_id"
	FieldAmount       = "amount"
	FieldItemName     = "item_name"
	FieldCellNumber   = "cell_number"
	FieldCustomStr1   = "custom_str1"
	FieldCustomStr2   = "custom_str2"
	FieldSignature    = "signature"

	// Set by the gateway on ITN callbacks, never signed.
	FieldPaymentStatus = "payment_status"
	FieldPFPaymentID   = "pf_payment_id"
)

// SignatureFieldOrder is the exact field order the gateway hashes over.
// Both request signing and ITN verification serialize against this one
// list; fields outside it never enter the signature string.
var SignatureFieldOrder = []string{
	FieldMerchantID,
	FieldMerchantKey,
	FieldReturnURL,
	FieldCancelURL,
	FieldNotifyURL,
	FieldNameFirst,
	FieldNameLast,
	FieldEmailAddress,
	FieldMPaymentID,
	FieldAmount,
	FieldItemName,
}
