package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginForToken(t *testing.T, server *gin.Engine) map[string]string {
	t.Helper()
	w := doJSON(t, server, http.MethodPost, "/auth/login", map[string]any{
		"email": "a@b.com", "password": "123456",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	token := decodeBody(t, w)["token"].(string)
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestCreateOrderRequiresToken(t *testing.T) {
	server := setupServer(t)

	w := doJSON(t, server, http.MethodPost, "/order", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateOrderRejectsEmptyCart(t *testing.T) {
	server := setupServer(t)
	headers := loginForToken(t, server)

	w := doJSON(t, server, http.MethodPost, "/order", nil, headers)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgEmptyCart, decodeBody(t, w)["message"])
}

func TestCheckoutFlow(t *testing.T) {
	server := setupServer(t)
	headers := loginForToken(t, server)

	w := doJSON(t, server, http.MethodPost, "/cart", map[string]any{"productId": 1, "size": "M", "quantity": 2}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, server, http.MethodPost, "/order", nil, headers)
	require.Equal(t, http.StatusCreated, w.Code)
	order := decodeBody(t, w)["order"].(map[string]any)
	assert.Equal(t, "processing", order["status"])
	assert.Equal(t, float64(2*12999), order["total"])

	// the just-created order heads the history
	w = doJSON(t, server, http.MethodGet, "/order", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	orders := decodeBody(t, w)["orders"].([]any)
	require.NotEmpty(t, orders)
	assert.Equal(t, order["id"], orders[0].(map[string]any)["id"])

	// checkout emptied the cart
	w = doJSON(t, server, http.MethodGet, "/cart", nil, nil)
	assert.Equal(t, float64(0), decodeBody(t, w)["count"])

	// the order is retrievable by id
	w = doJSON(t, server, http.MethodGet, "/order/"+order["id"].(string), nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetOrdersStatusFilter(t *testing.T) {
	server := setupServer(t)
	headers := loginForToken(t, server)

	w := doJSON(t, server, http.MethodPost, "/cart", map[string]any{"productId": 2}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, server, http.MethodPost, "/order", nil, headers)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, server, http.MethodGet, "/order?status=processing", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["orders"], 1)

	w = doJSON(t, server, http.MethodGet, "/order?status=shipped", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["orders"])

	w = doJSON(t, server, http.MethodGet, "/order?status=bogus", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
