package booking

import (
	"context"
	"fmt"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
)

// ActivateLoyalty registers a customer for preferential fares after a
// one-time charge. Check-then-register is idempotent at the business level:
// a second activation is rejected before any charge happens, so the fee is
// paid exactly once.
func (h *Handler) ActivateLoyalty(ctx context.Context, req entities.Request) entities.Response {
	if req.CustomerID == "" {
		return entities.KO(entities.CodeNotEligible, "customer id is required")
	}

	if h.loyalty.IsRegistered(ctx, req.CustomerID) {
		return entities.KO(entities.CodeNotEligible, "customer is already a loyalty member")
	}

	err := h.payments.Charge(ctx, req.CustomerID, LoyaltyFee, "loyalty activation")
	if err != nil {
		return entities.KO(entities.CodePaymentFailed, "payment refused, loyalty not activated")
	}

	if err := h.loyalty.Register(ctx, req.CustomerID); err != nil {
		return internalError(ctx, err)
	}

	h.publish(ctx, entities.LoyaltyActivated{
		Header:     entities.NewEventHeader(),
		CustomerID: req.CustomerID,
	})

	return entities.OK(fmt.Sprintf("loyalty activated, charged %.2f", LoyaltyFee))
}
