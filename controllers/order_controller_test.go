package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FT-Key/Ravello-web-sub001/config"
	"github.com/FT-Key/Ravello-web-sub001/models"

	"github.com/stretchr/testify/assert"
)

// fakeGatewayServer stands in for the Mercado Pago API.
func fakeGatewayServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/checkout/preferences" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"id":         "pref-test",
			"init_point": "https://mp.test/init/pref-test",
		})
	}))
}

func TestCreateOrderEndpoint(t *testing.T) {
	server := fakeGatewayServer(t)
	defer server.Close()

	cfg := &config.Config{JWTSecret: "test-secret", MPBaseURL: server.URL, MPAccessToken: "t"}
	r, db := setupRouter(t, cfg)
	user, token := newUser(t, db, "buyer@example.com", "customer")

	w := doJSON(t, r, "POST", "/orders", map[string]interface{}{
		"items":       []map[string]interface{}{{"title": "Tour A", "quantity": 2, "unit_price": 100.0}},
		"totalAmount": 200.0,
		"returnUrl":   "http://x/",
	}, token)
	assert.Equal(t, 201, w.Code)

	var resp struct {
		Message   string         `json:"message"`
		InitPoint string         `json:"init_point"`
		Order     models.Order   `json:"order"`
		Payment   models.Payment `json:"payment"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://mp.test/init/pref-test", resp.InitPoint)
	assert.Equal(t, user.ID, resp.Order.UserID)
	assert.Equal(t, 200.0, resp.Order.TotalAmount)
	assert.Equal(t, 200.0, resp.Payment.Amount)
	assert.NotNil(t, resp.Payment.OrderID)
	assert.Equal(t, resp.Order.ID, *resp.Payment.OrderID)
}

func TestCreateOrderRequiresAuth(t *testing.T) {
	r, _ := setupRouter(t, nil)

	w := doJSON(t, r, "POST", "/orders", map[string]interface{}{
		"items":       []map[string]interface{}{{"title": "Tour A", "quantity": 1, "unit_price": 100.0}},
		"totalAmount": 100.0,
	}, "")
	assert.Equal(t, 401, w.Code)
}

func TestListAndGetOwnOrders(t *testing.T) {
	server := fakeGatewayServer(t)
	defer server.Close()

	cfg := &config.Config{JWTSecret: "test-secret", MPBaseURL: server.URL, MPAccessToken: "t"}
	r, db := setupRouter(t, cfg)
	_, token := newUser(t, db, "buyer@example.com", "customer")
	_, otherToken := newUser(t, db, "other@example.com", "customer")

	w := doJSON(t, r, "POST", "/orders", map[string]interface{}{
		"items":       []map[string]interface{}{{"title": "Tour A", "quantity": 1, "unit_price": 100.0}},
		"totalAmount": 100.0,
		"returnUrl":   "http://x",
	}, token)
	assert.Equal(t, 201, w.Code)

	var created struct {
		Order models.Order `json:"order"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, "GET", "/orders/my", nil, token)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), created.Order.OrderNumber)

	// Owner sees the order, another customer does not
	w = doJSON(t, r, "GET", "/orders/"+created.Order.OrderNumber, nil, token)
	assert.Equal(t, 200, w.Code)

	w = doJSON(t, r, "GET", "/orders/"+created.Order.OrderNumber, nil, otherToken)
	assert.Equal(t, 403, w.Code)
}

func TestUpdateOrderStatusAdminOnly(t *testing.T) {
	server := fakeGatewayServer(t)
	defer server.Close()

	cfg := &config.Config{JWTSecret: "test-secret", MPBaseURL: server.URL, MPAccessToken: "t"}
	r, db := setupRouter(t, cfg)
	_, token := newUser(t, db, "buyer@example.com", "customer")
	_, adminToken := newUser(t, db, "admin@example.com", "admin")

	w := doJSON(t, r, "POST", "/orders", map[string]interface{}{
		"items":       []map[string]interface{}{{"title": "Tour A", "quantity": 1, "unit_price": 100.0}},
		"totalAmount": 100.0,
		"returnUrl":   "http://x",
	}, token)
	assert.Equal(t, 201, w.Code)

	var created struct {
		Order models.Order `json:"order"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	statusPath := "/orders/" + created.Order.OrderNumber + "/status"

	w = doJSON(t, r, "PUT", statusPath, map[string]string{"status": "confirmed"}, token)
	assert.Equal(t, 403, w.Code)

	w = doJSON(t, r, "PUT", statusPath, map[string]string{"status": "confirmed"}, adminToken)
	assert.Equal(t, 200, w.Code)

	var order models.Order
	assert.NoError(t, db.Where("order_number = ?", created.Order.OrderNumber).First(&order).Error)
	assert.Equal(t, "confirmed", order.Status)
}
