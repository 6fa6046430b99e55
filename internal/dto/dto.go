package dto

import "payfast-store-demo/internal/model"

type CheckoutItem struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CheckoutRequest struct {
	CustomerInfo model.CustomerInfo `json:"customerInfo"`
	Items        []CheckoutItem     `json:"items"`
	Total        float64            `json:"total"`
}

type CheckoutResponse struct {
	Success     bool              `json:"success"`
	PaymentData map[string]string `json:"paymentData"`
	RedirectURL string            `json:"redirectUrl"`
	OrderID     string            `json:"orderId"`
}

type OrderStatusResponse struct {
	Success bool         `json:"success"`
	Order   *OrderStatus `json:"order"`
}

type OrderStatus struct {
	ID            string             `json:"id"`
	Status        string             `json:"status"`
	PaymentStatus string             `json:"paymentStatus"`
	Total         float64            `json:"total"`
	CustomerInfo  model.CustomerInfo `json:"customerInfo"`
	CreatedAt     string             `json:"createdAt"`
}

type AddToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	Success bool             `json:"success"`
	Cart    []model.CartItem `json:"cart"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
