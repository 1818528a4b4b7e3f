package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultCurrency = "INR"

// checkoutService implements the CheckoutUsecase interface.
//
// The mutex guards session, submitting and settling. It is held across state
// transitions and their store writes, never across a collaborator call.
type checkoutService struct {
	mu         sync.Mutex
	session    *entity.CheckoutSession
	submitting map[uuid.UUID]struct{}
	settling   map[string]struct{}

	store     repository.DurableStore
	cart      usecase.CartUsecase
	orders    service.OrderClient
	gateway   service.PaymentGateway
	publisher service.EventPublisher
	currency  string
	logger    *slog.Logger
	observers observers[*entity.CheckoutSession]
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Ctx       context.Context
	Store     repository.DurableStore
	Cart      usecase.CartUsecase
	Orders    service.OrderClient
	Gateway   service.PaymentGateway
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCheckoutService creates the checkout orchestrator. A snapshot left by a
// previous run resumes its session at PAYMENT_SELECTION.
func NewCheckoutService(params CheckoutServiceParams) (usecase.CheckoutUsecase, error) {
	currency := defaultCurrency
	if params.Config != nil && params.Config.Payment != nil && params.Config.Payment.Currency != "" {
		currency = params.Config.Payment.Currency
	}

	srv := &checkoutService{
		submitting: make(map[uuid.UUID]struct{}),
		settling:   make(map[string]struct{}),
		store:      params.Store,
		cart:       params.Cart,
		orders:     params.Orders,
		gateway:    params.Gateway,
		publisher:  params.Publisher,
		currency:   currency,
		logger:     params.Logger,
	}

	ctx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	snapshot, found, err := repository.LoadJSON[entity.CheckoutSnapshot](ctx, params.Store, repository.SlotCheckoutSnapshot)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load checkout snapshot")
	}
	if found {
		addressID := snapshot.AddressID
		srv.session = &entity.CheckoutSession{
			ID:                snapshot.SessionID,
			Source:            snapshot.Source,
			Stage:             entity.StagePaymentSelection,
			Lines:             entity.CloneLines(snapshot.Lines),
			SelectedAddressID: &addressID,
			Total:             snapshot.Total,
			StartedAt:         snapshot.CreatedAt,
		}
		params.Logger.Info("Checkout session resumed",
			slog.String("session_id", snapshot.SessionID.String()),
			slog.String("source", string(snapshot.Source)),
		)
	}

	return srv, nil
}

// Begin starts a checkout from a deep copy of the cart lines
func (s *checkoutService) Begin(ctx context.Context) (*entity.CheckoutSession, error) {
	cart := s.cart.Cart()
	if cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyWorkingSet
	}

	return s.start(ctx, entity.SourceCart, entity.CloneLines(cart.Lines))
}

// BeginDirectBuy starts a checkout of one unit of product, bypassing the cart
func (s *checkoutService) BeginDirectBuy(ctx context.Context, product entity.ProductSnapshot) (*entity.CheckoutSession, error) {
	return s.start(ctx, entity.SourceDirectBuy, []entity.CartLine{{Product: product, Quantity: 1}})
}

func (s *checkoutService) start(ctx context.Context, source entity.CheckoutSource, lines []entity.CartLine) (*entity.CheckoutSession, error) {
	addressID, found, err := repository.LoadJSON[int64](ctx, s.store, repository.SlotSelectedAddressID)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, repository.SlotSelectedAddressID)
	}

	next := &entity.CheckoutSession{
		ID:        uuid.New(),
		Source:    source,
		Stage:     entity.StageAddressSelection,
		Lines:     lines,
		StartedAt: time.Now(),
	}
	if found {
		next.SelectedAddressID = &addressID
	}
	next.Recalculate()

	s.mu.Lock()
	// A snapshot left over belongs to the session being replaced.
	if err := s.store.Delete(ctx, repository.SlotCheckoutSnapshot); err != nil {
		s.mu.Unlock()

		return nil, domainerrors.NewStoreError(err, repository.SlotCheckoutSnapshot)
	}
	s.session = next
	view := next.Clone()
	s.mu.Unlock()

	s.log(ctx).Debug("Checkout started",
		slog.String("session_id", next.ID.String()),
		slog.String("source", string(source)),
		slog.Int("lines", len(lines)),
	)
	s.observers.notify(view.Clone())

	return view, nil
}

// Session returns a copy of the current session
func (s *checkoutService) Session() (*entity.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, domainerrors.ErrCheckoutNotStarted
	}

	return s.session.Clone(), nil
}

// SelectAddress sets and persists the delivery address
func (s *checkoutService) SelectAddress(ctx context.Context, addressID int64) (*entity.CheckoutSession, error) {
	if addressID <= 0 {
		return nil, domainerrors.ErrAddressRequired
	}

	return s.update(func(next *entity.CheckoutSession) error {
		if next.SelectedAddressID != nil && *next.SelectedAddressID == addressID {
			return nil
		}

		if err := s.backToSummary(ctx, next); err != nil {
			return err
		}
		if err := repository.SaveJSON(ctx, s.store, repository.SlotSelectedAddressID, addressID); err != nil {
			return domainerrors.NewStoreError(err, repository.SlotSelectedAddressID)
		}
		next.SelectedAddressID = &addressID

		return nil
	})
}

// ConfirmAddress moves to SUMMARY_REVIEW once an address is selected
func (s *checkoutService) ConfirmAddress(_ context.Context) (*entity.CheckoutSession, error) {
	return s.update(func(next *entity.CheckoutSession) error {
		if !next.HasAddress() {
			return domainerrors.ErrAddressRequired
		}
		if next.Stage == entity.StageAddressSelection {
			next.Stage = entity.StageSummaryReview
		}

		return nil
	})
}

// IncrementLine adds one unit to a working-set line
func (s *checkoutService) IncrementLine(ctx context.Context, productID int64) (*entity.CheckoutSession, error) {
	return s.editLine(ctx, productID, func(lines *entity.Cart, line entity.CartLine) bool {
		return lines.UpdateQuantity(productID, 1)
	})
}

// DecrementLine removes one unit from a working-set line, never going below 1
func (s *checkoutService) DecrementLine(ctx context.Context, productID int64) (*entity.CheckoutSession, error) {
	return s.editLine(ctx, productID, func(lines *entity.Cart, line entity.CartLine) bool {
		if line.Quantity <= 1 {
			return false
		}

		return lines.UpdateQuantity(productID, -1)
	})
}

// RemoveLine drops a working-set line
func (s *checkoutService) RemoveLine(ctx context.Context, productID int64) (*entity.CheckoutSession, error) {
	return s.editLine(ctx, productID, func(lines *entity.Cart, _ entity.CartLine) bool {
		return lines.Remove(productID)
	})
}

// editLine applies edit to the working set. The order summary is only
// reachable once an address is selected.
func (s *checkoutService) editLine(
	ctx context.Context,
	productID int64,
	edit func(lines *entity.Cart, line entity.CartLine) bool,
) (*entity.CheckoutSession, error) {
	return s.update(func(next *entity.CheckoutSession) error {
		if !next.HasAddress() {
			return domainerrors.ErrCheckoutStageLocked.WithDetails("select a delivery address first")
		}

		lines := &entity.Cart{Lines: next.Lines}
		line, ok := lines.Line(productID)
		if !ok {
			return domainerrors.ErrCheckoutLineNotFound
		}
		if !edit(lines, line) {
			return nil
		}

		if err := s.backToSummary(ctx, next); err != nil {
			return err
		}
		next.Lines = lines.Lines
		next.Recalculate()

		return nil
	})
}

// AdvanceToPayment persists the checkout snapshot and moves to PAYMENT_SELECTION
func (s *checkoutService) AdvanceToPayment(ctx context.Context) (*entity.CheckoutSession, error) {
	return s.update(func(next *entity.CheckoutSession) error {
		if !next.HasAddress() {
			return domainerrors.ErrAddressRequired
		}
		if len(next.Lines) == 0 {
			return domainerrors.ErrEmptyWorkingSet
		}

		next.Recalculate()
		snapshot := &entity.CheckoutSnapshot{
			SessionID: next.ID,
			Source:    next.Source,
			AddressID: *next.SelectedAddressID,
			Lines:     entity.CloneLines(next.Lines),
			Total:     next.Total,
			CreatedAt: time.Now(),
		}
		if err := repository.SaveJSON(ctx, s.store, repository.SlotCheckoutSnapshot, snapshot); err != nil {
			return domainerrors.NewStoreError(err, repository.SlotCheckoutSnapshot)
		}
		next.Stage = entity.StagePaymentSelection

		return nil
	})
}

// PlaceOrder submits the working set as a cash-on-delivery order. Gateway
// payments go through InitiatePayment and HandlePaymentResult instead.
func (s *checkoutService) PlaceOrder(ctx context.Context, method entity.PaymentMethod) (*entity.Order, error) {
	s.mu.Lock()
	session := s.session
	switch {
	case session == nil:
		s.mu.Unlock()

		return nil, domainerrors.ErrCheckoutNotStarted
	case !session.HasAddress():
		s.mu.Unlock()

		return nil, domainerrors.ErrAddressRequired
	case len(session.Lines) == 0:
		s.mu.Unlock()

		return nil, domainerrors.ErrEmptyWorkingSet
	case method != entity.PaymentMethodCOD:
		s.mu.Unlock()

		return nil, domainerrors.ErrInvalidPayment.WithDetails("online payments are placed through the payment gateway")
	}
	if _, busy := s.submitting[session.ID]; busy {
		s.mu.Unlock()

		return nil, domainerrors.ErrOrderInFlight
	}

	sessionID, source := session.ID, session.Source
	draft := entity.NewOrderDraft(*session.SelectedAddressID, session.Lines, method)
	s.submitting[sessionID] = struct{}{}
	s.mu.Unlock()

	order, err := s.orders.CreateOrder(ctx, draft)

	s.mu.Lock()
	delete(s.submitting, sessionID)
	if err != nil {
		s.mu.Unlock()
		s.log(ctx).Warn("Order submission failed",
			slog.String("session_id", sessionID.String()),
			slog.Any("error", err),
		)

		return nil, asNetworkError("orders.create", err)
	}
	ended := s.endSessionLocked(ctx, sessionID)
	s.mu.Unlock()

	if ended {
		s.observers.notify(nil)
	}
	s.afterOrderRecorded(ctx, source, order, &entity.OrderEvent{
		Type:          entity.OrderEventPlaced,
		OrderID:       order.ID,
		Source:        source,
		AddressID:     draft.AddressID,
		Total:         draft.TotalPrice,
		PaymentMethod: method,
	})

	return order, nil
}

// Discard ends the current session without placing an order
func (s *checkoutService) Discard(ctx context.Context) error {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()

		return nil
	}
	if err := s.store.Delete(ctx, repository.SlotCheckoutSnapshot); err != nil {
		s.mu.Unlock()

		return domainerrors.NewStoreError(err, repository.SlotCheckoutSnapshot)
	}
	s.session = nil
	s.mu.Unlock()

	s.observers.notify(nil)

	return nil
}

// Subscribe registers fn for session changes
func (s *checkoutService) Subscribe(fn func(*entity.CheckoutSession)) func() {
	return s.observers.subscribe(fn)
}

// update runs fn on a copy of the current session and commits the copy if fn succeeds.
func (s *checkoutService) update(fn func(next *entity.CheckoutSession) error) (*entity.CheckoutSession, error) {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()

		return nil, domainerrors.ErrCheckoutNotStarted
	}

	next := s.session.Clone()
	if err := fn(next); err != nil {
		s.mu.Unlock()

		return nil, err
	}

	s.session = next
	view := next.Clone()
	s.mu.Unlock()

	s.observers.notify(view.Clone())

	return view, nil
}

// backToSummary drops a stale payment snapshot once its inputs change.
func (s *checkoutService) backToSummary(ctx context.Context, next *entity.CheckoutSession) error {
	if next.Stage != entity.StagePaymentSelection {
		return nil
	}

	if err := s.store.Delete(ctx, repository.SlotCheckoutSnapshot); err != nil {
		return domainerrors.NewStoreError(err, repository.SlotCheckoutSnapshot)
	}
	next.Stage = entity.StageSummaryReview

	return nil
}

// endSessionLocked discards the session and snapshot belonging to sessionID.
// A newer session started meanwhile is left untouched. Callers hold s.mu.
func (s *checkoutService) endSessionLocked(ctx context.Context, sessionID uuid.UUID) bool {
	ctx = context.WithoutCancel(ctx)

	snapshot, found, err := repository.LoadJSON[entity.CheckoutSnapshot](ctx, s.store, repository.SlotCheckoutSnapshot)
	switch {
	case err != nil:
		s.log(ctx).Warn("Failed to read checkout snapshot", slog.Any("error", err))
	case found && snapshot.SessionID == sessionID:
		if err := s.store.Delete(ctx, repository.SlotCheckoutSnapshot); err != nil {
			s.log(ctx).Warn("Failed to delete checkout snapshot", slog.Any("error", err))
		}
	}

	if s.session == nil || s.session.ID != sessionID {
		s.log(ctx).Debug("Discarding result for stale checkout session", slog.String("session_id", sessionID.String()))

		return false
	}
	s.session = nil

	return true
}

// afterOrderRecorded clears the cart for cart-sourced orders and publishes the event.
// The order is recorded at this point, so failures are logged rather than returned.
func (s *checkoutService) afterOrderRecorded(ctx context.Context, source entity.CheckoutSource, order *entity.Order, event *entity.OrderEvent) {
	ctx = context.WithoutCancel(ctx)

	if source == entity.SourceCart {
		if err := s.cart.ClearCart(ctx); err != nil {
			s.log(ctx).Error("Failed to clear cart after order",
				slog.Int64("order_id", order.ID),
				slog.Any("error", err),
			)
		}
	}

	s.log(ctx).Info("Order placed",
		slog.Int64("order_id", order.ID),
		slog.String("source", string(source)),
		slog.String("total", event.Total.StringFixed(2)),
	)
	s.publish(ctx, event)
}

func (s *checkoutService) publish(ctx context.Context, event *entity.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	if event.RequestID == "" {
		event.RequestID = deliverycontext.RequestID(ctx)
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.log(ctx).Error("Failed to publish order event",
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, s.logger)
}

func asNetworkError(op string, err error) error {
	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	return domainerrors.NewNetworkError(op, 0, err)
}
