package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/gateway"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/model"
)

// ContactResolver maps an order's billing customer to a CRM contact,
// deduplicating by email.
type ContactResolver struct {
	crm    gateway.CRMGateway
	logger *zap.Logger
}

// NewContactResolver creates a new contact resolver
func NewContactResolver(crm gateway.CRMGateway, logger *zap.Logger) *ContactResolver {
	return &ContactResolver{
		crm:    crm,
		logger: logger,
	}
}

// Resolve returns the identifier of an existing or newly created contact for
// the order's billing email. An order without an email resolves to no contact
// at all; that is a success, the deal is simply created unlinked.
func (r *ContactResolver) Resolve(ctx context.Context, order model.Order) (contactID string, created bool, err error) {
	email := order.Billing.Email
	if email == "" {
		r.logger.Info("Order has no billing email, skipping contact",
			zap.Int64("order_id", order.ID))
		return "", false, nil
	}

	lookup := r.crm.FindContactByEmail(ctx, email)
	switch lookup.State {
	case gateway.LookupFound:
		r.logger.Info("Contact already exists, reusing",
			zap.Int64("order_id", order.ID),
			zap.String("email", email),
			zap.String("contact_id", lookup.ID))
		return lookup.ID, false, nil

	case gateway.LookupFailed:
		// A failed lookup is deliberately treated like "not found" and
		// resolution proceeds to create. This favours availability over
		// strict dedup: a transient search failure can produce a duplicate
		// contact, which the CRM owner has to merge by hand.
		r.logger.Warn("Contact lookup failed, proceeding to create",
			zap.Int64("order_id", order.ID),
			zap.String("email", email),
			zap.Error(lookup.Err))
	}

	id, err := r.crm.CreateContact(ctx, model.NewContact{
		FirstName: order.Billing.FirstName,
		LastName:  order.Billing.LastName,
		Email:     email,
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to create contact for %s: %w", email, err)
	}

	r.logger.Info("Contact created",
		zap.Int64("order_id", order.ID),
		zap.String("email", email),
		zap.String("contact_id", id))

	return id, true, nil
}
