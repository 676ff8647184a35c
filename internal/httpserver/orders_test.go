package httpserver

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/clothing_store/internal/models"
	"github.com/Skotchmaster/clothing_store/internal/transport"
)

func TestCreateOrder_FromSessionCart(t *testing.T) {
	env := newTestEnv(t)
	shirt := env.good("shirt", 10, models.GenderUnisex, nil, time.Now().UTC())
	socks := env.good("socks", 5, models.GenderUnisex, nil, time.Now().UTC())
	session := map[string]string{HeaderSessionID: "sess-42"}

	rec := env.do(http.MethodPost, "/cart/items", transport.AddCartItemRequest{ProductID: shirt.ID.String(), VariantKey: "M", Qty: 2}, session)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(http.MethodPost, "/cart/items", transport.AddCartItemRequest{ProductID: socks.ID.String(), Qty: 1}, session)
	require.Equal(t, http.StatusOK, rec.Code)

	cart := decode[transport.DataResponse[models.Cart]](t, rec)
	require.Len(t, cart.Data.Items, 2)

	rec = env.do(http.MethodPost, "/orders", nil, session)
	require.Equal(t, http.StatusCreated, rec.Code)

	order := decode[transport.DataResponse[models.Order]](t, rec).Data
	assert.Equal(t, models.OrderStatusCreated, order.Status)
	require.Len(t, order.Items, 2)
	assert.True(t, order.Totals.Subtotal.Equal(decimal.NewFromInt(25)))
	assert.True(t, order.Totals.Shipping.IsZero())
	assert.True(t, order.Totals.Total.Equal(decimal.NewFromInt(25)))

	rec = env.do(http.MethodGet, "/cart", nil, session)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[transport.DataResponse[models.Cart]](t, rec).Data.Items)

	rec = env.do(http.MethodPost, "/orders", nil, session)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cart empty", decode[transport.ErrorResponse](t, rec).Message)
}

func TestCreateOrder_NoCart(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/orders", nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cart empty", decode[transport.ErrorResponse](t, rec).Message)

	rec = env.do(http.MethodPost, "/orders", nil, map[string]string{HeaderSessionID: "unknown"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	require.NoError(t, env.Repo.DB.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateOrder_UserCart(t *testing.T) {
	env := newTestEnv(t)
	token, userID := env.token(models.RoleUser)
	hat := env.good("hat", 7, models.GenderUnisex, nil, time.Now().UTC())

	rec := env.do(http.MethodPost, "/cart/items", transport.AddCartItemRequest{ProductID: hat.ID.String(), Qty: 3}, bearer(token))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodPost, "/orders", nil, bearer(token))
	require.Equal(t, http.StatusCreated, rec.Code)

	order := decode[transport.DataResponse[models.Order]](t, rec).Data
	require.NotNil(t, order.UserID)
	assert.Equal(t, userID, *order.UserID)
	assert.True(t, order.Totals.Total.Equal(decimal.NewFromInt(21)))
}

func TestAddCartItem_Validation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/cart/items", transport.AddCartItemRequest{ProductID: "x", Qty: 0}, map[string]string{HeaderSessionID: "s"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[transport.ErrorResponse](t, rec)
	assert.Contains(t, body.Details, "productId")
	assert.Contains(t, body.Details, "qty")
}

func TestCreateOrder_UsesSessionCartWhenUserCartEmpty(t *testing.T) {
	env := newTestEnv(t)
	token, userID := env.token(models.RoleUser)
	hat := env.good("hat", 7, models.GenderUnisex, nil, time.Now().UTC())

	rec := env.do(http.MethodPost, "/cart/items", transport.AddCartItemRequest{ProductID: hat.ID.String(), Qty: 1}, bearer(token))
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(http.MethodPost, "/orders", nil, bearer(token))
	require.Equal(t, http.StatusCreated, rec.Code)

	session := map[string]string{HeaderSessionID: "s2"}
	rec = env.do(http.MethodPost, "/cart/items", transport.AddCartItemRequest{ProductID: hat.ID.String(), Qty: 2}, session)
	require.Equal(t, http.StatusOK, rec.Code)

	headers := bearer(token)
	headers[HeaderSessionID] = "s2"
	rec = env.do(http.MethodPost, "/orders", nil, headers)
	require.Equal(t, http.StatusCreated, rec.Code)

	order := decode[transport.DataResponse[models.Order]](t, rec).Data
	require.NotNil(t, order.UserID)
	assert.Equal(t, userID, *order.UserID)
	assert.True(t, order.Totals.Total.Equal(decimal.NewFromInt(14)))
}
