package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/entity"
	mockusecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutHandlerMocks struct {
	checkoutUC *mockusecase.MockCheckoutUsecase
	catalogUC  *mockusecase.MockCatalogUsecase
}

func createTestCheckoutHandler(t *testing.T) (*CheckoutHandler, *checkoutHandlerMocks) {
	mocks := &checkoutHandlerMocks{
		checkoutUC: mockusecase.NewMockCheckoutUsecase(t),
		catalogUC:  mockusecase.NewMockCatalogUsecase(t),
	}

	h := NewCheckoutHandler(CheckoutHandlerParams{
		CheckoutUC: mocks.checkoutUC,
		CatalogUC:  mocks.catalogUC,
		Logger:     discardLogger(),
	})

	return h, mocks
}

func testSession(source entity.CheckoutSource, stage entity.CheckoutStage, lines ...entity.CartLine) *entity.CheckoutSession {
	return &entity.CheckoutSession{
		ID:     uuid.New(),
		Source: source,
		Stage:  stage,
		Lines:  lines,
		Total:  entity.LinesTotal(lines),
	}
}

func TestCheckoutHandler_Begin_FromCart(t *testing.T) {
	h, mocks := createTestCheckoutHandler(t)
	e := newTestEcho()

	session := testSession(entity.SourceCart, entity.StageAddressSelection,
		entity.CartLine{Product: testProduct(1, "500"), Quantity: 2},
		entity.CartLine{Product: testProduct(2, "300"), Quantity: 1},
	)
	mocks.checkoutUC.EXPECT().Begin(mock.Anything).Return(session, nil)

	c, rec := newTestContext(e, http.MethodPost, "/checkout", "")
	require.NoError(t, h.Begin(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var view CheckoutView
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &view))
	assert.Equal(t, entity.SourceCart, view.Source)
	assert.Equal(t, "1300.00", view.Total)
	assert.Contains(t, rec.Body.String(), `"stage":"ADDRESS_SELECTION"`)
}

func TestCheckoutHandler_Begin_DirectBuy(t *testing.T) {
	h, mocks := createTestCheckoutHandler(t)
	e := newTestEcho()
	product := testProduct(9, "199.99")

	mocks.catalogUC.EXPECT().GetProduct(mock.Anything, int64(9)).Return(&product, nil)
	mocks.checkoutUC.EXPECT().BeginDirectBuy(mock.Anything, product).
		Return(testSession(entity.SourceDirectBuy, entity.StageAddressSelection,
			entity.CartLine{Product: product, Quantity: 1}), nil)

	c, rec := newTestContext(e, http.MethodPost, "/checkout", `{"direct_buy_product_id":9}`)
	require.NoError(t, h.Begin(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"source":"direct_buy"`)
	assert.Contains(t, rec.Body.String(), `"total":"199.99"`)
}

func TestCheckoutHandler_Begin_EmptyCart(t *testing.T) {
	h, mocks := createTestCheckoutHandler(t)
	e := newTestEcho()

	mocks.checkoutUC.EXPECT().Begin(mock.Anything).Return(nil, domainerrors.ErrEmptyWorkingSet)

	c, rec := newTestContext(e, http.MethodPost, "/checkout", "")
	require.NoError(t, h.Begin(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMPTY_CHECKOUT", decodeEnvelope(t, rec).Error.Code)
}

func TestCheckoutHandler_SelectAddress(t *testing.T) {
	h, mocks := createTestCheckoutHandler(t)
	e := newTestEcho()

	session := testSession(entity.SourceCart, entity.StageAddressSelection,
		entity.CartLine{Product: testProduct(1, "500"), Quantity: 1})
	addressID := int64(42)
	session.SelectedAddressID = &addressID
	mocks.checkoutUC.EXPECT().SelectAddress(mock.Anything, int64(42)).Return(session, nil)

	c, rec := newTestContext(e, http.MethodPut, "/checkout/address", `{"address_id":42}`)
	require.NoError(t, h.SelectAddress(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"selected_address_id":42`)
}

func TestCheckoutHandler_ConfirmAddress_Required(t *testing.T) {
	h, mocks := createTestCheckoutHandler(t)
	e := newTestEcho()

	mocks.checkoutUC.EXPECT().ConfirmAddress(mock.Anything).Return(nil, domainerrors.ErrAddressRequired)

	c, rec := newTestContext(e, http.MethodPost, "/checkout/address/confirm", "")
	require.NoError(t, h.ConfirmAddress(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "ADDRESS_REQUIRED", env.Error.Code)
	assert.Equal(t, "Please select an address to continue", env.Error.Message)
}

func TestCheckoutHandler_DecrementLine(t *testing.T) {
	h, mocks := createTestCheckoutHandler(t)
	e := newTestEcho()

	mocks.checkoutUC.EXPECT().DecrementLine(mock.Anything, int64(1)).
		Return(testSession(entity.SourceCart, entity.StageSummaryReview,
			entity.CartLine{Product: testProduct(1, "500"), Quantity: 1}), nil)

	c, rec := newTestContext(e, http.MethodPost, "/checkout/lines/1/decrement", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.DecrementLine(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":"500.00"`)
}

func TestCheckoutHandler_RemoveLine_InvalidID(t *testing.T) {
	h, _ := createTestCheckoutHandler(t)
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodDelete, "/checkout/lines/0", "")
	c.SetParamNames("id")
	c.SetParamValues("0")
	require.NoError(t, h.RemoveLine(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutHandler_PlaceOrder(t *testing.T) {
	h, mocks := createTestCheckoutHandler(t)
	e := newTestEcho()

	order := &entity.Order{ID: 501, AddressID: 42, TotalPrice: decimal.RequireFromString("1300")}
	mocks.checkoutUC.EXPECT().PlaceOrder(mock.Anything, entity.PaymentMethodCOD).Return(order, nil)

	c, rec := newTestContext(e, http.MethodPost, "/checkout/orders", `{"payment_method":"cod"}`)
	require.NoError(t, h.PlaceOrder(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":501`)
}

func TestCheckoutHandler_PlaceOrder_NetworkError(t *testing.T) {
	h, mocks := createTestCheckoutHandler(t)
	e := newTestEcho()

	mocks.checkoutUC.EXPECT().PlaceOrder(mock.Anything, entity.PaymentMethodCOD).
		Return(nil, domainerrors.NewNetworkError("orders.create", http.StatusServiceUnavailable, assert.AnError))

	c, rec := newTestContext(e, http.MethodPost, "/checkout/orders", `{"payment_method":"cod"}`)
	require.NoError(t, h.PlaceOrder(c))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "NETWORK_ERROR", decodeEnvelope(t, rec).Error.Code)
}

func TestCheckoutHandler_PaymentCallback_PartialSuccess(t *testing.T) {
	h, mocks := createTestCheckoutHandler(t)
	e := newTestEcho()

	result := entity.PaymentResult{IntentID: "order_abc", Success: true, PaymentID: "pay_1", Signature: "sig"}
	mocks.checkoutUC.EXPECT().HandlePaymentResult(mock.Anything, result).
		Return(nil, &domainerrors.PartialSuccessError{IntentID: "order_abc", PaymentID: "pay_1", Err: assert.AnError})

	body := `{"intent_id":"order_abc","success":true,"payment_id":"pay_1","signature":"sig"}`
	c, rec := newTestContext(e, http.MethodPost, "/checkout/payment/callback", body)
	require.NoError(t, h.PaymentCallback(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "PAYMENT_CAPTURED_ORDER_NOT_RECORDED", env.Error.Code)
	assert.Equal(t, "gateway_order_id=order_abc payment_id=pay_1", env.Error.Details)
}

func TestCheckoutHandler_PaymentCallback_MissingIntent(t *testing.T) {
	h, _ := createTestCheckoutHandler(t)
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodPost, "/checkout/payment/callback", `{"success":true}`)
	require.NoError(t, h.PaymentCallback(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutHandler_GetSession_NotStarted(t *testing.T) {
	h, mocks := createTestCheckoutHandler(t)
	e := newTestEcho()

	mocks.checkoutUC.EXPECT().Session().Return(nil, domainerrors.ErrCheckoutNotStarted)

	c, rec := newTestContext(e, http.MethodGet, "/checkout", "")
	require.NoError(t, h.GetSession(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
}
