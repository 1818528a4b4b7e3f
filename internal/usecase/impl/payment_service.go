package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
)

// InitiatePayment creates a gateway order intent for the persisted snapshot and
// records it as pending, keyed by the intent id.
func (s *checkoutService) InitiatePayment(ctx context.Context) (*entity.PaymentIntent, error) {
	snapshot, found, err := repository.LoadJSON[entity.CheckoutSnapshot](ctx, s.store, repository.SlotCheckoutSnapshot)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, repository.SlotCheckoutSnapshot)
	}
	if !found {
		return nil, domainerrors.ErrSnapshotMissing
	}
	if len(snapshot.Lines) == 0 {
		return nil, domainerrors.ErrEmptyWorkingSet
	}

	amount := entity.ToMinorUnits(snapshot.Total)
	intent, err := s.gateway.CreateOrderIntent(ctx, amount, s.currency)
	if err != nil {
		s.log(ctx).Warn("Payment intent creation failed",
			slog.String("session_id", snapshot.SessionID.String()),
			slog.Any("error", err),
		)

		return nil, asNetworkError("payments.create_intent", err)
	}
	if intent.Currency == "" {
		intent.Currency = s.currency
	}

	pending := &entity.PendingPayment{
		Intent:    *intent,
		Snapshot:  snapshot,
		CreatedAt: time.Now(),
	}
	if err := repository.SaveJSON(ctx, s.store, repository.PaymentIntentSlot(intent.IntentID), pending); err != nil {
		return nil, domainerrors.NewStoreError(err, repository.PaymentIntentSlot(intent.IntentID))
	}

	s.log(ctx).Info("Payment intent created",
		slog.String("intent_id", intent.IntentID),
		slog.Int64("amount", intent.Amount),
		slog.String("currency", intent.Currency),
	)

	return intent, nil
}

// HandlePaymentResult reconciles a gateway callback. The pending record found
// under the intent id decides what is submitted, whatever session is current.
//
// Outcomes:
//   - gateway failure: PaymentFailedError, nothing submitted, pending kept for a retry
//   - order recorded: cart cleared for cart-sourced checkouts, pending removed
//   - order not recorded: PartialSuccessError, cart kept, pending removed, no retry
func (s *checkoutService) HandlePaymentResult(ctx context.Context, result entity.PaymentResult) (*entity.Order, error) {
	if result.IntentID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("intent_id is required")
	}

	if !s.beginSettling(result.IntentID) {
		return nil, domainerrors.ErrOrderInFlight
	}
	defer s.endSettling(result.IntentID)

	slot := repository.PaymentIntentSlot(result.IntentID)
	pending, found, err := repository.LoadJSON[entity.PendingPayment](ctx, s.store, slot)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, slot)
	}
	if !found {
		return nil, domainerrors.ErrPaymentNotFound
	}

	if !result.Success {
		s.log(ctx).Warn("Gateway reported payment failure",
			slog.String("intent_id", result.IntentID),
			slog.String("reason", result.FailureReason),
		)

		return nil, &domainerrors.PaymentFailedError{IntentID: result.IntentID, Reason: result.FailureReason}
	}

	draft := pending.Draft(result)
	order, orderErr := s.orders.CreateOrder(ctx, draft)

	// Both remaining outcomes are terminal for this intent.
	ctx = context.WithoutCancel(ctx)
	if err := s.store.Delete(ctx, slot); err != nil {
		s.log(ctx).Error("Failed to delete pending payment", slog.String("intent_id", result.IntentID), slog.Any("error", err))
	}

	s.mu.Lock()
	ended := s.endSessionLocked(ctx, pending.Snapshot.SessionID)
	s.mu.Unlock()
	if ended {
		s.observers.notify(nil)
	}

	event := &entity.OrderEvent{
		Source:           pending.Snapshot.Source,
		AddressID:        draft.AddressID,
		Total:            draft.TotalPrice,
		PaymentMethod:    entity.PaymentMethodGateway,
		GatewayOrderID:   result.IntentID,
		GatewayPaymentID: result.PaymentID,
	}

	if orderErr != nil {
		s.log(ctx).Error("Payment captured but order not recorded",
			slog.String("intent_id", result.IntentID),
			slog.String("payment_id", result.PaymentID),
			slog.Any("error", orderErr),
		)
		event.Type = entity.OrderEventUnrecorded
		event.Reason = orderErr.Error()
		s.publish(ctx, event)

		return nil, &domainerrors.PartialSuccessError{
			IntentID:  result.IntentID,
			PaymentID: result.PaymentID,
			Err:       orderErr,
		}
	}

	event.Type = entity.OrderEventPlaced
	event.OrderID = order.ID
	s.afterOrderRecorded(ctx, pending.Snapshot.Source, order, event)

	return order, nil
}

func (s *checkoutService) beginSettling(intentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.settling[intentID]; busy {
		return false
	}
	s.settling[intentID] = struct{}{}

	return true
}

func (s *checkoutService) endSettling(intentID string) {
	s.mu.Lock()
	delete(s.settling, intentID)
	s.mu.Unlock()
}
