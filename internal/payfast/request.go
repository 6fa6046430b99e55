package payfast

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"payfast-store-demo/internal/config"
)

// ErrInvalidOrder is returned when checkout input is missing required
// order fields; nothing is signed or persisted for such requests.
var ErrInvalidOrder = errors.New("missing required payment information")

const sandboxProcessURL = "https://sandbox.payfast.co.za/eng/process"

// The gateway rejects custom string fields longer than this.
const maxCustomFieldLen = 255

type Customer struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

type LineItem struct {
	Title    string
	Price    float64
	Quantity int
}

// PaymentRequest is the signed field set a buyer's browser posts to the
// gateway, plus the endpoint to post it to. Built fresh per checkout
// attempt and never persisted.
type PaymentRequest struct {
	Data        map[string]string
	RedirectURL string
}

type Builder struct {
	cfg config.Payfast
}

func NewBuilder(cfg config.Payfast) *Builder {
	return &Builder{cfg: cfg}
}

// Build maps an order onto the gateway field set and signs it. The
// signature is computed over the canonical field order first and only
// then attached, so it never feeds into its own digest.
func (b *Builder) Build(orderID string, customer Customer, items []LineItem, total float64) (*PaymentRequest, error) {
	if orderID == "" || len(items) == 0 || total <= 0 {
		return nil, ErrInvalidOrder
	}
	if customer.FirstName == "" || customer.LastName == "" || customer.Email == "" {
		return nil, ErrInvalidOrder
	}

	data := map[string]string{
		FieldMerchantID:  b.cfg.MerchantID,
		FieldMerchantKey: b.cfg.MerchantKey,
		FieldReturnURL:   b.cfg.ReturnURL,
		FieldCancelURL:   b.cfg.CancelURL,
		FieldNotifyURL:   b.cfg.NotifyURL,

		FieldMPaymentID: orderID,
		FieldAmount:     decimal.NewFromFloat(total).StringFixed(2),
		FieldItemName:   fmt.Sprintf("%s - %s", b.cfg.ItemNamePrefix, shortID(orderID)),

		FieldNameFirst:    customer.FirstName,
		FieldNameLast:     customer.LastName,
		FieldEmailAddress: customer.Email,
		FieldCellNumber:   customer.Phone,

		FieldCustomStr1: orderID,
		FieldCustomStr2: OrderSummary(items),
	}

	data[FieldSignature] = Sign(data, b.cfg.Passphrase)

	return &PaymentRequest{
		Data:        data,
		RedirectURL: b.processURL(),
	}, nil
}

func (b *Builder) processURL() string {
	if b.cfg.Sandbox {
		return sandboxProcessURL
	}
	return b.cfg.ProcessURL
}

// OrderSummary renders items as "Title(Qty), Title(Qty), ...",
// truncated to the gateway's 255-character custom field limit.
func OrderSummary(items []LineItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%s(%d)", item.Title, item.Quantity)
	}
	summary := strings.Join(parts, ", ")
	if len(summary) > maxCustomFieldLen {
		summary = summary[:maxCustomFieldLen-3] + "..."
	}
	return summary
}

func shortID(orderID string) string {
	if len(orderID) > 8 {
		return orderID[:8]
	}
	return orderID
}
