package controllers_test

import (
	"fmt"
	"testing"

	"github.com/FT-Key/Ravello-web-sub001/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateQuoteIsPublic(t *testing.T) {
	r, db := setupRouter(t, nil)

	w := doJSON(t, r, "POST", "/quotes", map[string]string{
		"name":        "Ana",
		"email":       "ana@example.com",
		"destination": "Bariloche",
		"start_date":  "2026-01-10",
		"end_date":    "2026-01-17",
		"message":     "Family of four",
	}, "")
	assert.Equal(t, 201, w.Code)

	var quote models.Quote
	assert.NoError(t, db.First(&quote).Error)
	assert.Equal(t, "pending", quote.Status)
}

func TestListQuotesAdminOnly(t *testing.T) {
	r, db := setupRouter(t, nil)
	_, customerToken := newUser(t, db, "c@example.com", "customer")
	_, adminToken := newUser(t, db, "a@example.com", "admin")

	w := doJSON(t, r, "GET", "/quotes", nil, customerToken)
	assert.Equal(t, 403, w.Code)

	w = doJSON(t, r, "GET", "/quotes", nil, adminToken)
	assert.Equal(t, 200, w.Code)
}

func TestUpdateQuoteStatus(t *testing.T) {
	r, db := setupRouter(t, nil)
	_, adminToken := newUser(t, db, "a@example.com", "admin")

	quote := models.Quote{Name: "Ana", Email: "ana@example.com", Destination: "Iguazu", Status: "pending"}
	assert.NoError(t, db.Create(&quote).Error)

	// SMTP is unset in tests, so no mail is attempted
	w := doJSON(t, r, "PUT", fmt.Sprintf("/quotes/%d/status", quote.ID), map[string]string{
		"status": "responded", "response": "We have availability in January",
	}, adminToken)
	assert.Equal(t, 200, w.Code)

	var stored models.Quote
	assert.NoError(t, db.First(&stored, quote.ID).Error)
	assert.Equal(t, "responded", stored.Status)
	assert.Equal(t, "We have availability in January", stored.Response)
}

func TestUpdateQuoteStatusRejectsUnknownStatus(t *testing.T) {
	r, db := setupRouter(t, nil)
	_, adminToken := newUser(t, db, "a@example.com", "admin")

	quote := models.Quote{Name: "Ana", Email: "ana@example.com", Destination: "Iguazu"}
	assert.NoError(t, db.Create(&quote).Error)

	w := doJSON(t, r, "PUT", fmt.Sprintf("/quotes/%d/status", quote.ID), map[string]string{
		"status": "archived",
	}, adminToken)
	assert.Equal(t, 400, w.Code)
}
