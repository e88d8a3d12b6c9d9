package gateway

import (
	"context"

	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/model"
)

// LookupState distinguishes a record that is known to be absent from one
// whose lookup could not be completed. Callers decide how to treat a failed
// lookup; the gateway never collapses the two.
type LookupState int

const (
	LookupFound LookupState = iota
	LookupNotFound
	LookupFailed
)

// ContactLookup is the result of a dedup search for a contact by email.
type ContactLookup struct {
	State LookupState
	ID    string
	Err   error
}

func ContactFound(id string) ContactLookup {
	return ContactLookup{State: LookupFound, ID: id}
}

func ContactNotFound() ContactLookup {
	return ContactLookup{State: LookupNotFound}
}

func ContactLookupFailed(err error) ContactLookup {
	return ContactLookup{State: LookupFailed, Err: err}
}

// DealLookup is the result of a dedup search for a deal by its derived name.
type DealLookup struct {
	State LookupState
	Err   error
}

func DealFound() DealLookup {
	return DealLookup{State: LookupFound}
}

func DealNotFound() DealLookup {
	return DealLookup{State: LookupNotFound}
}

func DealLookupFailed(err error) DealLookup {
	return DealLookup{State: LookupFailed, Err: err}
}

// CRMGateway wraps the CRM's contact and deal resources. Every call is an
// independent network round trip.
type CRMGateway interface {
	// FindContactByEmail searches contacts by exact email match.
	FindContactByEmail(ctx context.Context, email string) ContactLookup

	// FindDealByName searches deals by exact name match.
	FindDealByName(ctx context.Context, name string) DealLookup

	// CreateContact creates a contact and returns its CRM identifier. Fails
	// with *errors.CRMWriteError on a non-success response.
	CreateContact(ctx context.Context, contact model.NewContact) (string, error)

	// CreateDeal creates a deal, linked to a contact when ContactID is set.
	CreateDeal(ctx context.Context, deal model.NewDeal) error
}
