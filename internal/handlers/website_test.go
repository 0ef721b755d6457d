package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type websitePayload struct {
	ID     uint   `json:"id"`
	URL    string `json:"url"`
	Name   string `json:"name"`
	UserID uint   `json:"userId"`
}

type websiteEnvelope struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Website  *websitePayload  `json:"website"`
	Websites []websitePayload `json:"websites"`
}

func addWebsite(t *testing.T, r *gin.Engine, token, url, name string) websitePayload {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/v1/websites", token, gin.H{"url": url, "name": name})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp websiteEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Website)

	return *resp.Website
}

func TestAddWebsite(t *testing.T) {
	r := setupTestApp(t)
	token := registerTestUser(t, r, "Ada", "ada@example.com", "supersecret")

	website := addWebsite(t, r, token, "https://MyStore.com/", "My Store")

	assert.Equal(t, "mystore.com", website.URL)
	assert.Equal(t, "My Store", website.Name)
	assert.NotZero(t, website.ID)
}

func TestAddWebsiteMissingURL(t *testing.T) {
	r := setupTestApp(t)
	token := registerTestUser(t, r, "Ada", "ada@example.com", "supersecret")

	w := doJSON(t, r, http.MethodPost, "/api/v1/websites", token, gin.H{"name": "No URL"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListWebsites(t *testing.T) {
	r := setupTestApp(t)
	token := registerTestUser(t, r, "Ada", "ada@example.com", "supersecret")

	addWebsite(t, r, token, "a.com", "")
	addWebsite(t, r, token, "b.com", "")

	w := doJSON(t, r, http.MethodGet, "/api/v1/websites", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp websiteEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	require.Len(t, resp.Websites, 2)
	// Newest first.
	assert.Equal(t, "b.com", resp.Websites[0].URL)
	assert.Equal(t, "a.com", resp.Websites[1].URL)
}

func TestListWebsitesScopedToUser(t *testing.T) {
	r := setupTestApp(t)
	adaToken := registerTestUser(t, r, "Ada", "ada@example.com", "supersecret")
	bobToken := registerTestUser(t, r, "Bob", "bob@example.com", "supersecret")

	addWebsite(t, r, adaToken, "ada.com", "")

	w := doJSON(t, r, http.MethodGet, "/api/v1/websites", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp websiteEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Websites)
}

func TestRemoveWebsite(t *testing.T) {
	r := setupTestApp(t)
	token := registerTestUser(t, r, "Ada", "ada@example.com", "supersecret")

	website := addWebsite(t, r, token, "doomed.com", "")

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/websites/%d", website.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Website deleted")

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/websites/%d", website.ID), token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveWebsiteCrossUser(t *testing.T) {
	r := setupTestApp(t)
	ownerToken := registerTestUser(t, r, "Owner", "owner@example.com", "supersecret")
	intruderToken := registerTestUser(t, r, "Intruder", "intruder@example.com", "supersecret")

	website := addWebsite(t, r, ownerToken, "precious.com", "")

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/websites/%d", website.ID), intruderToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Still listed for the owner.
	w = doJSON(t, r, http.MethodGet, "/api/v1/websites", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp websiteEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Websites, 1)
}
