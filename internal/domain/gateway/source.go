package gateway

import (
	"context"

	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/model"
)

// OrderSource returns the current batch of orders to synchronize. Pagination
// is the source's internal concern; callers see one complete batch. An empty
// batch is valid and not an error.
type OrderSource interface {
	// FetchOrders fails with *errors.SourceFetchError when the remote call
	// errors; this is the one condition fatal to a run.
	FetchOrders(ctx context.Context) ([]model.Order, error)
}
