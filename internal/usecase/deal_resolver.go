package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/gateway"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/model"
)

// DealName derives the CRM deal name for an order. The derivation is the
// dedup identity of the deal, so it must stay byte-for-byte stable across
// runs for the same order content.
func DealName(order model.Order) string {
	names := make([]string, 0, len(order.LineItems))
	for _, item := range order.LineItems {
		names = append(names, item.Name)
	}
	return fmt.Sprintf("Order #%d - %s", order.ID, strings.Join(names, ", "))
}

// DealResolver materializes an order as a CRM deal, deduplicating by the
// derived deal name.
type DealResolver struct {
	crm    gateway.CRMGateway
	logger *zap.Logger
}

// NewDealResolver creates a new deal resolver
func NewDealResolver(crm gateway.CRMGateway, logger *zap.Logger) *DealResolver {
	return &DealResolver{
		crm:    crm,
		logger: logger,
	}
}

// Resolve creates a deal for the order unless one with the same derived name
// already exists. contactID may be empty; the deal is then created unlinked.
// Existing deals are never updated.
func (r *DealResolver) Resolve(ctx context.Context, order model.Order, contactID string) (name string, created bool, err error) {
	name = DealName(order)

	lookup := r.crm.FindDealByName(ctx, name)
	switch lookup.State {
	case gateway.LookupFound:
		r.logger.Info("Deal already exists, skipping",
			zap.Int64("order_id", order.ID),
			zap.String("deal_name", name))
		return name, false, nil

	case gateway.LookupFailed:
		// Same availability-over-dedup tradeoff as the contact lookup: a
		// failed search is treated as "not found" and the create proceeds.
		r.logger.Warn("Deal lookup failed, proceeding to create",
			zap.Int64("order_id", order.ID),
			zap.String("deal_name", name),
			zap.Error(lookup.Err))
	}

	err = r.crm.CreateDeal(ctx, model.NewDeal{
		Name:      name,
		Amount:    order.Total,
		Stage:     model.DealStageQualification,
		ContactID: contactID,
	})
	if err != nil {
		return name, false, fmt.Errorf("failed to create deal for order %d: %w", order.ID, err)
	}

	r.logger.Info("Deal created",
		zap.Int64("order_id", order.ID),
		zap.String("deal_name", name),
		zap.String("amount", order.Total.String()),
		zap.Bool("linked", contactID != ""))

	return name, true, nil
}
