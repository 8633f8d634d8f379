package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FT-Key/Ravello-web-sub001/config"

	"github.com/stretchr/testify/assert"
)

func TestCreatePreference(t *testing.T) {
	var captured map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/checkout/preferences", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"id":         "pref-789",
			"init_point": "https://mp.test/checkout/pref-789",
		})
	}))
	defer server.Close()

	mp := NewMercadoPago(&config.Config{MPBaseURL: server.URL, MPAccessToken: "test-token"})

	pref, err := mp.CreatePreference([]PreferenceItem{
		{Title: "Tour A", Quantity: 2, UnitPrice: 100, CurrencyID: "ARS"},
	}, "http://x/")
	assert.NoError(t, err)
	assert.Equal(t, "pref-789", pref.ID)
	assert.Equal(t, "https://mp.test/checkout/pref-789", pref.InitPoint)

	// Back URLs derive from the return URL with the trailing slash stripped
	backURLs := captured["back_urls"].(map[string]interface{})
	assert.Equal(t, "http://x/success", backURLs["success"])
	assert.Equal(t, "http://x/failure", backURLs["failure"])
	assert.Equal(t, "http://x/pending", backURLs["pending"])
	assert.Equal(t, "approved", captured["auto_return"])

	items := captured["items"].([]interface{})
	assert.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "Tour A", item["title"])
	assert.Equal(t, 2.0, item["quantity"])
	assert.Equal(t, 100.0, item["unit_price"])
	assert.Equal(t, "ARS", item["currency_id"])
}

func TestCreatePreferenceGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"invalid items"}`))
	}))
	defer server.Close()

	mp := NewMercadoPago(&config.Config{MPBaseURL: server.URL, MPAccessToken: "test-token"})

	_, err := mp.CreatePreference(nil, "http://x")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "preference creation failed")
}

func TestFindPaymentStatusByPreference(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payments/search", r.URL.Path)
		assert.Equal(t, "pref-1", r.URL.Query().Get("preference_id"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]string{{"status": "approved"}},
		})
	}))
	defer server.Close()

	mp := NewMercadoPago(&config.Config{MPBaseURL: server.URL, MPAccessToken: "test-token"})

	status, err := mp.FindPaymentStatusByPreference("pref-1")
	assert.NoError(t, err)
	assert.Equal(t, "approved", status)
}

func TestFindPaymentStatusNoPaymentYet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"results": []interface{}{}})
	}))
	defer server.Close()

	mp := NewMercadoPago(&config.Config{MPBaseURL: server.URL, MPAccessToken: "test-token"})

	status, err := mp.FindPaymentStatusByPreference("pref-1")
	assert.NoError(t, err)
	assert.Equal(t, "", status)
}
