package handlers_test

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abagency/backend/internal/models"
)

func TestSendMessageEmptyBodyRejected(t *testing.T) {
	r, db, cfg := setupTest(t)
	artist := findUser(t, db, "artist@abagency.com")

	var before int64
	require.NoError(t, db.Model(&models.Message{}).Count(&before).Error)

	req, _ := http.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(`{"body":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	withSession(t, req, cfg, artist.ID)
	w := doRequest(r, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Message vide"}`, w.Body.String())

	var after int64
	require.NoError(t, db.Model(&models.Message{}).Count(&after).Error)
	assert.Equal(t, before, after)
}

func TestSendMessageToModerator(t *testing.T) {
	r, db, cfg := setupTest(t)
	artist := findUser(t, db, "artist@abagency.com")

	req, _ := http.NewRequest(http.MethodPost, "/api/messages",
		strings.NewReader(`{"body":"Question sur le gala","to_moderator":true}`))
	req.Header.Set("Content-Type", "application/json")
	withSession(t, req, cfg, artist.ID)
	w := doRequest(r, req)

	require.Equal(t, http.StatusOK, w.Code)

	var message models.Message
	require.NoError(t, db.Order("id DESC").First(&message).Error)
	assert.Equal(t, artist.ID, message.SenderID)
	assert.Equal(t, "Question sur le gala", message.Body)
	assert.True(t, message.IsToModerator)
	assert.Nil(t, message.RecipientID)
}

func TestSendMessageWithRecipient(t *testing.T) {
	r, db, cfg := setupTest(t)
	artist := findUser(t, db, "artist@abagency.com")
	moderator := findUser(t, db, "moderator@abagency.com")

	w := doRequest(r, func() *http.Request {
		req := postForm("/api/messages", url.Values{
			"body":         {"Bonjour"},
			"recipient_id": {fmt.Sprint(moderator.ID)},
		})
		withSession(t, req, cfg, artist.ID)
		return req
	}())

	require.Equal(t, http.StatusOK, w.Code)

	var message models.Message
	require.NoError(t, db.Order("id DESC").First(&message).Error)
	require.NotNil(t, message.RecipientID)
	assert.Equal(t, moderator.ID, *message.RecipientID)
	assert.False(t, message.IsToModerator)
}

func TestSendMessageBadRecipientIgnored(t *testing.T) {
	r, db, cfg := setupTest(t)
	artist := findUser(t, db, "artist@abagency.com")

	req, _ := http.NewRequest(http.MethodPost, "/api/messages",
		strings.NewReader(`{"body":"Sans destinataire","recipient_id":"personne"}`))
	req.Header.Set("Content-Type", "application/json")
	withSession(t, req, cfg, artist.ID)
	w := doRequest(r, req)

	require.Equal(t, http.StatusOK, w.Code)

	var message models.Message
	require.NoError(t, db.Order("id DESC").First(&message).Error)
	assert.Nil(t, message.RecipientID)
}
