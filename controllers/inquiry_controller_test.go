package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globalmart/models"
)

func TestCreateInquiry(t *testing.T) {
	env := newTestEnv()

	w := env.request(http.MethodPost, "/api/inquiries", map[string]string{
		"name":    "Jane Buyer",
		"email":   "jane@example.com",
		"message": "Interested in bulk pricing.",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeBody(w)["data"].(map[string]interface{})
	assert.Equal(t, models.InquiryStatusPending, data["status"])
	assert.Len(t, env.inquiries.inquiries, 1)
}

func TestCreateInquiryMissingFields(t *testing.T) {
	env := newTestEnv()

	cases := []map[string]string{
		{"email": "jane@example.com", "message": "hello"},
		{"name": "Jane", "message": "hello"},
		{"name": "Jane", "email": "jane@example.com"},
		{"name": "   ", "email": "jane@example.com", "message": "hello"},
	}
	for _, body := range cases {
		w := env.request(http.MethodPost, "/api/inquiries", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Name, email, and message are required", decodeBody(w)["error"])
	}
	assert.Empty(t, env.inquiries.inquiries, "rejected inquiries must not be persisted")
}

func TestCreateInquiryInvalidEmail(t *testing.T) {
	env := newTestEnv()

	for _, email := range []string{"not-an-email", "a@b", "a b@c.com", "@example.com"} {
		w := env.request(http.MethodPost, "/api/inquiries", map[string]string{
			"name":    "Jane",
			"email":   email,
			"message": "hello",
		}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, "email %q should be rejected", email)
		assert.Equal(t, "Invalid email format", decodeBody(w)["error"])
	}
	assert.Empty(t, env.inquiries.inquiries)
}

func TestListInquiriesRequiresAuth(t *testing.T) {
	env := newTestEnv()

	w := env.request(http.MethodGet, "/api/inquiries", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(http.MethodGet, "/api/inquiries", nil, adminToken())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListInquiriesStatusFilter(t *testing.T) {
	env := newTestEnv()
	env.inquiries.Create(nil, models.CreateInquiryRequest{Name: "A", Email: "a@x.com", Message: "m"})
	second, _ := env.inquiries.Create(nil, models.CreateInquiryRequest{Name: "B", Email: "b@x.com", Message: "m"})
	env.inquiries.SetStatus(nil, second.ID, models.InquiryStatusCompleted)

	w := env.request(http.MethodGet, "/api/inquiries?status=completed", nil, adminToken())
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(w)["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "B", data[0].(map[string]interface{})["name"])
}

func TestUpdateInquiryStatus(t *testing.T) {
	env := newTestEnv()
	created, _ := env.inquiries.Create(nil, models.CreateInquiryRequest{Name: "A", Email: "a@x.com", Message: "m"})

	w := env.request(http.MethodPut, "/api/inquiries/1/status", map[string]string{"status": "processing"}, adminToken())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.InquiryStatusProcessing, env.inquiries.inquiries[created.ID].Status)
}

func TestUpdateInquiryStatusInvalid(t *testing.T) {
	env := newTestEnv()
	created, _ := env.inquiries.Create(nil, models.CreateInquiryRequest{Name: "A", Email: "a@x.com", Message: "m"})

	w := env.request(http.MethodPut, "/api/inquiries/1/status", map[string]string{"status": "archived"}, adminToken())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid status. Must be: pending, processing, or completed", decodeBody(w)["error"])
	assert.Equal(t, models.InquiryStatusPending, env.inquiries.inquiries[created.ID].Status, "stored status must be untouched")
}

func TestDeleteInquiryForcesCompleted(t *testing.T) {
	env := newTestEnv()
	created, _ := env.inquiries.Create(nil, models.CreateInquiryRequest{Name: "A", Email: "a@x.com", Message: "m"})

	w := env.request(http.MethodDelete, "/api/inquiries/1", nil, superAdminToken())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Inquiry deleted successfully", decodeBody(w)["message"])

	// The row survives with status completed rather than being removed.
	assert.Equal(t, models.InquiryStatusCompleted, env.inquiries.inquiries[created.ID].Status)
}

func TestDeleteInquiryRequiresSuperAdmin(t *testing.T) {
	env := newTestEnv()
	env.inquiries.Create(nil, models.CreateInquiryRequest{Name: "A", Email: "a@x.com", Message: "m"})

	w := env.request(http.MethodDelete, "/api/inquiries/1", nil, adminToken())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetInquiryByID(t *testing.T) {
	env := newTestEnv()
	env.inquiries.Create(nil, models.CreateInquiryRequest{Name: "A", Email: "a@x.com", Message: "m"})

	w := env.request(http.MethodGet, "/api/inquiries/1", nil, adminToken())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "A", decodeBody(w)["data"].(map[string]interface{})["name"])

	w = env.request(http.MethodGet, "/api/inquiries/42", nil, adminToken())
	assert.Equal(t, http.StatusNotFound, w.Code)
}
