package model

import (
	"github.com/shopspring/decimal"
)

// Order is a read-only purchase record pulled from the WooCommerce store.
// Orders are fetched fresh each run and never persisted by this service.
type Order struct {
	ID        int64           `json:"id"`
	Billing   Billing         `json:"billing"`
	LineItems []LineItem      `json:"line_items"`
	Total     decimal.Decimal `json:"total"`
}

// Billing carries the customer details attached to an order. Email may be
// empty; guest checkouts do not always collect one.
type Billing struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type LineItem struct {
	Name string `json:"name"`
}
