package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alok-CS-2022/import-export-site/app/models"
	"github.com/Alok-CS-2022/import-export-site/app/services"
	"github.com/Alok-CS-2022/import-export-site/app/utils/renderer"
)

type stubInquiryRepo struct {
	created []*models.Inquiry
}

func (s *stubInquiryRepo) Create(ctx context.Context, inquiry *models.Inquiry) error {
	s.created = append(s.created, inquiry)
	return nil
}

func (s *stubInquiryRepo) GetByID(ctx context.Context, id string) (*models.Inquiry, error) {
	return nil, nil
}

func (s *stubInquiryRepo) GetAll(ctx context.Context) ([]models.Inquiry, error) {
	return nil, nil
}

func (s *stubInquiryRepo) GetByUserID(ctx context.Context, userID string) ([]models.Inquiry, error) {
	return nil, nil
}

func (s *stubInquiryRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return nil
}

func newInquiryHandler(repo *stubInquiryRepo, requireAuth bool) *InquiryHandler {
	svc := services.NewInquiryService(repo, nil)
	return NewInquiryHandler(svc, validator.New(), renderer.New(), requireAuth)
}

func postInquiry(t *testing.T, h *InquiryHandler, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/inquiry", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.SubmitInquiry(rec, req)
	return rec
}

func TestSubmitInquiryStoresRow(t *testing.T) {
	repo := &stubInquiryRepo{}
	h := newInquiryHandler(repo, false)

	rec := postInquiry(t, h, map[string]interface{}{
		"customer_name":  "Pema Sherpa",
		"customer_email": "pema@example.com",
		"message":        "Do you ship singing bowls overseas?",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "General Inquiry", repo.created[0].ProductName)
	assert.Equal(t, models.InquiryStatusPending, repo.created[0].Status)
	assert.Nil(t, repo.created[0].UserID)
}

func TestSubmitInquiryRejectsInvalidEmail(t *testing.T) {
	repo := &stubInquiryRepo{}
	h := newInquiryHandler(repo, false)

	rec := postInquiry(t, h, map[string]interface{}{
		"customer_name":  "Pema Sherpa",
		"customer_email": "not-an-email",
		"message":        "Hello",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.created)
}

func TestSubmitInquiryRejectsMissingMessage(t *testing.T) {
	repo := &stubInquiryRepo{}
	h := newInquiryHandler(repo, false)

	rec := postInquiry(t, h, map[string]interface{}{
		"customer_name":  "Pema Sherpa",
		"customer_email": "pema@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.created)
}

func TestSubmitInquiryRequiresAuthWhenConfigured(t *testing.T) {
	repo := &stubInquiryRepo{}
	h := newInquiryHandler(repo, true)

	rec := postInquiry(t, h, map[string]interface{}{
		"customer_name":  "Pema Sherpa",
		"customer_email": "pema@example.com",
		"message":        "Hello",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, repo.created)
}
