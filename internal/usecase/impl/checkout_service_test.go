package impl

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	store     repository.DurableStore
	cart      *cartService
	orders    *mockService.MockOrderClient
	gateway   *mockService.MockPaymentGateway
	publisher *mockService.MockEventPublisher
	checkout  usecase.CheckoutUsecase
}

func createTestCheckout(t *testing.T) *checkoutFixture {
	t.Helper()

	store := createTestStore(t)
	f := &checkoutFixture{
		store:     store,
		cart:      createTestCartService(t, store),
		orders:    mockService.NewMockOrderClient(t),
		gateway:   mockService.NewMockPaymentGateway(t),
		publisher: mockService.NewMockEventPublisher(t),
	}
	f.checkout = f.restart(t)

	return f
}

// restart builds a new orchestrator over the same store and collaborators.
func (f *checkoutFixture) restart(t *testing.T) usecase.CheckoutUsecase {
	t.Helper()

	cfg := &config.Config{Payment: &config.PaymentConfig{Currency: "INR"}}
	uc, err := NewCheckoutService(CheckoutServiceParams{
		Ctx:       context.Background(),
		Store:     f.store,
		Cart:      f.cart,
		Orders:    f.orders,
		Gateway:   f.gateway,
		Publisher: f.publisher,
		Config:    cfg,
		Logger:    discardLogger(),
	})
	require.NoError(t, err)

	return uc
}

// fillCart puts 2 x 500 and 1 x 300 in the cart.
func (f *checkoutFixture) fillCart(t *testing.T) {
	t.Helper()

	ctx := context.Background()
	for _, p := range []entity.ProductSnapshot{testProduct(1, "500"), testProduct(1, "500"), testProduct(2, "300")} {
		_, err := f.cart.AddToCart(ctx, p)
		require.NoError(t, err)
	}
}

// toPayment begins a cart checkout and walks it to PAYMENT_SELECTION.
func (f *checkoutFixture) toPayment(t *testing.T, addressID int64) *entity.CheckoutSession {
	t.Helper()

	ctx := context.Background()
	f.fillCart(t)

	_, err := f.checkout.Begin(ctx)
	require.NoError(t, err)
	_, err = f.checkout.SelectAddress(ctx, addressID)
	require.NoError(t, err)
	_, err = f.checkout.ConfirmAddress(ctx)
	require.NoError(t, err)
	session, err := f.checkout.AdvanceToPayment(ctx)
	require.NoError(t, err)

	return session
}

func (f *checkoutFixture) expectPublish() {
	f.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func TestCheckoutService_BeginEmptyCart(t *testing.T) {
	f := createTestCheckout(t)

	_, err := f.checkout.Begin(context.Background())
	require.ErrorIs(t, err, domainerrors.ErrEmptyWorkingSet)

	_, err = f.checkout.Session()
	require.ErrorIs(t, err, domainerrors.ErrCheckoutNotStarted)
}

func TestCheckoutService_BeginCopiesCart(t *testing.T) {
	ctx := context.Background()
	f := createTestCheckout(t)
	f.fillCart(t)

	session, err := f.checkout.Begin(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.SourceCart, session.Source)
	assert.Equal(t, entity.StageAddressSelection, session.Stage)
	assert.Equal(t, "1300.00", session.Total.StringFixed(2))
	assert.Nil(t, session.SelectedAddressID)

	_, err = f.checkout.SelectAddress(ctx, 42)
	require.NoError(t, err)
	_, err = f.checkout.IncrementLine(ctx, 2)
	require.NoError(t, err)
	session, err = f.checkout.RemoveLine(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, "600.00", session.Total.StringFixed(2))
	assert.Equal(t, "1300.00", f.cart.Total().StringFixed(2))
	assert.Equal(t, 3, f.cart.Cart().ItemCount())
}

func TestCheckoutService_StageGating(t *testing.T) {
	ctx := context.Background()
	f := createTestCheckout(t)
	f.fillCart(t)

	_, err := f.checkout.Begin(ctx)
	require.NoError(t, err)

	_, err = f.checkout.ConfirmAddress(ctx)
	require.ErrorIs(t, err, domainerrors.ErrAddressRequired)

	_, err = f.checkout.IncrementLine(ctx, 1)
	require.ErrorIs(t, err, domainerrors.ErrCheckoutStageLocked)

	_, err = f.checkout.AdvanceToPayment(ctx)
	require.ErrorIs(t, err, domainerrors.ErrAddressRequired)

	_, err = f.checkout.SelectAddress(ctx, 0)
	require.ErrorIs(t, err, domainerrors.ErrAddressRequired)

	session, err := f.checkout.Session()
	require.NoError(t, err)
	assert.Equal(t, entity.StageAddressSelection, session.Stage)
}

func TestCheckoutService_DecrementStopsAtOne(t *testing.T) {
	ctx := context.Background()
	f := createTestCheckout(t)
	f.fillCart(t)

	_, err := f.checkout.Begin(ctx)
	require.NoError(t, err)
	_, err = f.checkout.SelectAddress(ctx, 42)
	require.NoError(t, err)

	session, err := f.checkout.DecrementLine(ctx, 2)
	require.NoError(t, err)
	line, ok := (&entity.Cart{Lines: session.Lines}).Line(2)
	require.True(t, ok)
	assert.Equal(t, 1, line.Quantity)

	_, err = f.checkout.DecrementLine(ctx, 99)
	require.ErrorIs(t, err, domainerrors.ErrCheckoutLineNotFound)
}

func TestCheckoutService_PlaceOrderWithoutAddressMakesNoCall(t *testing.T) {
	ctx := context.Background()
	f := createTestCheckout(t)
	f.fillCart(t)

	_, err := f.checkout.Begin(ctx)
	require.NoError(t, err)

	_, err = f.checkout.PlaceOrder(ctx, entity.PaymentMethodCOD)
	require.ErrorIs(t, err, domainerrors.ErrAddressRequired)

	f.orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	assert.Equal(t, 3, f.cart.Cart().ItemCount())
}

func TestCheckoutService_PlaceOrderRejectsGatewayMethod(t *testing.T) {
	ctx := context.Background()
	f := createTestCheckout(t)
	f.toPayment(t, 42)

	_, err := f.checkout.PlaceOrder(ctx, entity.PaymentMethodGateway)
	require.ErrorIs(t, err, domainerrors.ErrInvalidPayment)
}

func TestCheckoutService_PlaceOrderFromCart(t *testing.T) {
	ctx := context.Background()
	f := createTestCheckout(t)
	f.toPayment(t, 42)

	f.orders.EXPECT().
		CreateOrder(mock.Anything, mock.MatchedBy(func(d *entity.OrderDraft) bool {
			return d.AddressID == 42 &&
				d.PaymentMethod == entity.PaymentMethodCOD &&
				!d.IsPaid &&
				d.TotalPrice.StringFixed(2) == "1300.00" &&
				len(d.Lines) == 2
		})).
		Return(&entity.Order{ID: 501, AddressID: 42}, nil).
		Once()
	f.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.MatchedBy(func(e *entity.OrderEvent) bool {
			return e.Type == entity.OrderEventPlaced && e.OrderID == 501 && e.Source == entity.SourceCart
		})).
		Return(nil).
		Once()

	order, err := f.checkout.PlaceOrder(ctx, entity.PaymentMethodCOD)
	require.NoError(t, err)
	assert.Equal(t, int64(501), order.ID)

	assert.True(t, f.cart.Cart().IsEmpty())

	_, err = f.checkout.Session()
	require.ErrorIs(t, err, domainerrors.ErrCheckoutNotStarted)

	_, found, err := repository.LoadJSON[entity.CheckoutSnapshot](ctx, f.store, repository.SlotCheckoutSnapshot)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCheckoutService_DirectBuyLeavesCart(t *testing.T) {
	ctx := context.Background()
	f := createTestCheckout(t)
	f.fillCart(t)
	f.expectPublish()

	session, err := f.checkout.BeginDirectBuy(ctx, testProduct(9, "199.99"))
	require.NoError(t, err)
	assert.Equal(t, entity.SourceDirectBuy, session.Source)
	require.Len(t, session.Lines, 1)
	assert.Equal(t, 1, session.Lines[0].Quantity)

	_, err = f.checkout.SelectAddress(ctx, 42)
	require.NoError(t, err)

	f.orders.EXPECT().
		CreateOrder(mock.Anything, mock.MatchedBy(func(d *entity.OrderDraft) bool {
			return len(d.Lines) == 1 && d.Lines[0].ProductID == 9
		})).
		Return(&entity.Order{ID: 7}, nil).
		Once()

	_, err = f.checkout.PlaceOrder(ctx, entity.PaymentMethodCOD)
	require.NoError(t, err)

	assert.Equal(t, 3, f.cart.Cart().ItemCount())
	assert.Equal(t, "1300.00", f.cart.Total().StringFixed(2))
}

func TestCheckoutService_PlaceOrderNetworkErrorKeepsState(t *testing.T) {
	ctx := context.Background()
	f := createTestCheckout(t)
	before := f.toPayment(t, 42)

	f.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	_, err := f.checkout.PlaceOrder(ctx, entity.PaymentMethodCOD)
	require.Error(t, err)
	_, isNetwork := errors.AsType[*domainerrors.NetworkError](err)
	assert.True(t, isNetwork)

	after, err := f.checkout.Session()
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, 3, f.cart.Cart().ItemCount())
}

func TestCheckoutService_PlaceOrderInFlight(t *testing.T) {
	ctx := context.Background()
	f := createTestCheckout(t)
	f.toPayment(t, 42)
	f.expectPublish()

	started := make(chan struct{})
	release := make(chan struct{})
	f.orders.EXPECT().
		CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *entity.OrderDraft) (*entity.Order, error) {
			close(started)
			<-release

			return &entity.Order{ID: 1}, nil
		}).
		Once()

	done := make(chan error, 1)
	go func() {
		_, err := f.checkout.PlaceOrder(ctx, entity.PaymentMethodCOD)
		done <- err
	}()
	<-started

	// The lock is not held across the call.
	_, err := f.checkout.Session()
	require.NoError(t, err)

	_, err = f.checkout.PlaceOrder(ctx, entity.PaymentMethodCOD)
	require.ErrorIs(t, err, domainerrors.ErrOrderInFlight)

	close(release)
	require.NoError(t, <-done)
}

func TestCheckoutService_PublishFailureIsNotReturned(t *testing.T) {
	ctx := context.Background()
	f := createTestCheckout(t)
	f.toPayment(t, 42)

	f.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(&entity.Order{ID: 3}, nil).Once()
	f.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	order, err := f.checkout.PlaceOrder(ctx, entity.PaymentMethodCOD)
	require.NoError(t, err)
	assert.Equal(t, int64(3), order.ID)
}

func TestCheckoutService_EditAtPaymentReturnsToSummary(t *testing.T) {
	ctx := context.Background()
	f := createTestCheckout(t)
	f.toPayment(t, 42)

	_, found, err := repository.LoadJSON[entity.CheckoutSnapshot](ctx, f.store, repository.SlotCheckoutSnapshot)
	require.NoError(t, err)
	require.True(t, found)

	session, err := f.checkout.IncrementLine(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, entity.StageSummaryReview, session.Stage)
	assert.Equal(t, "1600.00", session.Total.StringFixed(2))

	_, found, err = repository.LoadJSON[entity.CheckoutSnapshot](ctx, f.store, repository.SlotCheckoutSnapshot)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = f.checkout.InitiatePayment(ctx)
	require.ErrorIs(t, err, domainerrors.ErrSnapshotMissing)
}

func TestCheckoutService_ResumesAfterRestart(t *testing.T) {
	f := createTestCheckout(t)
	before := f.toPayment(t, 42)

	resumed, err := f.restart(t).Session()
	require.NoError(t, err)

	assert.Equal(t, before.ID, resumed.ID)
	assert.Equal(t, entity.StagePaymentSelection, resumed.Stage)
	assert.Equal(t, entity.SourceCart, resumed.Source)
	require.NotNil(t, resumed.SelectedAddressID)
	assert.Equal(t, int64(42), *resumed.SelectedAddressID)
	assert.Equal(t, "1300.00", resumed.Total.StringFixed(2))
}

func TestCheckoutService_AddressPersistsAcrossCheckouts(t *testing.T) {
	ctx := context.Background()
	f := createTestCheckout(t)
	f.fillCart(t)

	_, err := f.checkout.Begin(ctx)
	require.NoError(t, err)
	_, err = f.checkout.SelectAddress(ctx, 42)
	require.NoError(t, err)
	require.NoError(t, f.checkout.Discard(ctx))

	session, err := f.checkout.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, session.SelectedAddressID)
	assert.Equal(t, int64(42), *session.SelectedAddressID)
}

func TestCheckoutService_SubscribeSeesSessionEnd(t *testing.T) {
	ctx := context.Background()
	f := createTestCheckout(t)
	f.fillCart(t)

	var stages []string
	f.checkout.Subscribe(func(s *entity.CheckoutSession) {
		if s == nil {
			stages = append(stages, "ended")

			return
		}
		stages = append(stages, s.Stage.String())
	})

	_, err := f.checkout.Begin(ctx)
	require.NoError(t, err)
	_, err = f.checkout.SelectAddress(ctx, 42)
	require.NoError(t, err)
	_, err = f.checkout.ConfirmAddress(ctx)
	require.NoError(t, err)
	require.NoError(t, f.checkout.Discard(ctx))

	assert.Equal(t, []string{"ADDRESS_SELECTION", "ADDRESS_SELECTION", "SUMMARY_REVIEW", "ended"}, stages)
}
