package model

import (
	"github.com/shopspring/decimal"
)

// DealStageQualification is the pipeline stage every synced deal starts in.
const DealStageQualification = "Qualification"

// NewContact is the payload for creating a CRM contact. Contacts are keyed by
// email for dedup purposes and never updated once created.
type NewContact struct {
	FirstName string
	LastName  string
	Email     string
}

// NewDeal is the payload for creating a CRM deal. ContactID is optional; a
// deal created from an order without a billing email stays unlinked.
type NewDeal struct {
	Name      string
	Amount    decimal.Decimal
	Stage     string
	ContactID string
}
