package model

import "time"

// Order lifecycle. pending is the only state the notification handler
// transitions out of; paid and failed are terminal.
const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
	OrderStatusFailed  = "failed"
)

// Gateway-reported payment statuses we act on. Anything else is
// recorded verbatim without a status transition.
const (
	PaymentStatusComplete = "COMPLETE"
	PaymentStatusFailed   = "FAILED"
)

type Product struct {
	ID          string  `gorm:"primaryKey;size:64;not null" json:"id"`
	Handle      string  `gorm:"size:128;uniqueIndex" json:"handle"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Price       float64 `gorm:"not null" json:"price"`
	Description string  `json:"description"`
	Image       string  `gorm:"size:255" json:"image"`

	Specs ProductSpecs `gorm:"embedded;embeddedPrefix:spec_" json:"specs"`
}

type ProductSpecs struct {
	WaterResistance string `gorm:"size:32" json:"waterResistance"`
	Material        string `gorm:"size:64" json:"material"`
	Weight          string `gorm:"size:32" json:"weight"`
}

type CartItem struct {
	ID        string  `gorm:"primaryKey;size:64;not null" json:"id"`
	ProductID string  `gorm:"size:64;uniqueIndex;not null" json:"productId"`
	Title     string  `gorm:"size:255" json:"title"`
	Price     float64 `json:"price"`
	Image     string  `gorm:"size:255" json:"image"`
	Quantity  int     `gorm:"not null" json:"quantity"`
}

type Order struct {
	ID     string  `gorm:"primaryKey;size:64;not null" json:"id"` // uuid, doubles as m_payment_id
	Status string  `gorm:"size:32;index;not null" json:"status"`
	Total  float64 `gorm:"not null" json:"total"`

	Customer CustomerInfo `gorm:"embedded;embeddedPrefix:customer_" json:"customerInfo"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	// Reported by the gateway over ITN.
	PaymentStatus string `gorm:"size:32" json:"paymentStatus"`
	PaymentID     string `gorm:"size:64" json:"paymentId"` // pf_payment_id

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CustomerInfo struct {
	FirstName  string `gorm:"size:128" json:"firstName"`
	LastName   string `gorm:"size:128" json:"lastName"`
	Email      string `gorm:"size:255" json:"email"`
	Phone      string `gorm:"size:32" json:"phone"`
	Address    string `gorm:"size:255" json:"address"`
	City       string `gorm:"size:128" json:"city"`
	Province   string `gorm:"size:128" json:"province"`
	PostalCode string `gorm:"size:16" json:"postalCode"`
}

type OrderItem struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	OrderID string `gorm:"size:64;index;not null" json:"-"`

	Title    string  `gorm:"size:255" json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `gorm:"not null" json:"quantity"`
}

// NotificationEvent records processed ITN callbacks keyed by the
// gateway's payment id, so a retried notification is acknowledged
// without re-running side effects.
type NotificationEvent struct {
	PFPaymentID   string `gorm:"column:pf_payment_id;primaryKey;size:64;not null"`
	OrderID       string `gorm:"size:64;index"`
	PaymentStatus string `gorm:"size:32"`
	ProcessedAt   time.Time
	CreatedAt     time.Time
}
