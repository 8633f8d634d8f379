package controllers_test

import (
	"fmt"
	"testing"

	"github.com/FT-Key/Ravello-web-sub001/models"

	"github.com/stretchr/testify/assert"
)

func TestAddAndListFavorites(t *testing.T) {
	r, db := setupRouter(t, nil)
	user, token := newUser(t, db, "fav@example.com", "customer")
	path := fmt.Sprintf("/favorites/%d", user.ID)

	w := doJSON(t, r, "POST", path, map[string]string{"itemId": "pkg-42"}, token)
	assert.Equal(t, 201, w.Code)

	w = doJSON(t, r, "GET", path, nil, token)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "pkg-42")
}

func TestDuplicateFavoriteConflicts(t *testing.T) {
	r, db := setupRouter(t, nil)
	user, token := newUser(t, db, "fav@example.com", "customer")
	path := fmt.Sprintf("/favorites/%d", user.ID)

	w := doJSON(t, r, "POST", path, map[string]string{"itemId": "pkg-42"}, token)
	assert.Equal(t, 201, w.Code)

	w = doJSON(t, r, "POST", path, map[string]string{"itemId": "pkg-42"}, token)
	assert.Equal(t, 409, w.Code)
	assert.Contains(t, w.Body.String(), "Already in favorites")

	// No second record was created
	var count int64
	db.Model(&models.Favorite{}).Where("user_id = ? AND item_id = ?", user.ID, "pkg-42").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRemoveFavorite(t *testing.T) {
	r, db := setupRouter(t, nil)
	user, token := newUser(t, db, "fav@example.com", "customer")
	path := fmt.Sprintf("/favorites/%d", user.ID)

	doJSON(t, r, "POST", path, map[string]string{"itemId": "pkg-42"}, token)

	w := doJSON(t, r, "DELETE", path+"/pkg-42", nil, token)
	assert.Equal(t, 200, w.Code)

	w = doJSON(t, r, "DELETE", path+"/pkg-42", nil, token)
	assert.Equal(t, 404, w.Code)
}

func TestFavoritesForbiddenForOtherUser(t *testing.T) {
	r, db := setupRouter(t, nil)
	owner, _ := newUser(t, db, "owner@example.com", "customer")
	_, otherToken := newUser(t, db, "other@example.com", "customer")

	w := doJSON(t, r, "GET", fmt.Sprintf("/favorites/%d", owner.ID), nil, otherToken)
	assert.Equal(t, 403, w.Code)
}
