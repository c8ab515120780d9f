package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dinebot/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDialogService struct {
	resp *models.IntentResponse
	err  error
}

func (s *stubDialogService) Dispatch(_ context.Context, _ *models.IntentRequest) (*models.IntentResponse, error) {
	return s.resp, s.err
}

func dialogRouter(svc *stubDialogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/dialog", NewDialogHandler(svc).HandleDialogEvent)
	return r
}

func TestHandleDialogEvent(t *testing.T) {
	svc := &stubDialogService{
		resp: &models.IntentResponse{
			SessionAttributes: map[string]string{},
			DialogAction: models.DialogAction{
				Type:  models.ActionDelegate,
				Slots: &models.ReservationSlots{Location: "New York"},
			},
		},
	}
	router := dialogRouter(svc)

	event := models.IntentRequest{
		UserID:           "user1",
		InvocationSource: models.SourceDialogCodeHook,
		CurrentIntent: models.CurrentIntent{
			Name:               models.IntentDiningSuggestions,
			ConfirmationStatus: models.ConfirmationNone,
		},
	}
	body, err := json.Marshal(event)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/dialog", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.IntentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.ActionDelegate, resp.DialogAction.Type)
	assert.Equal(t, "New York", resp.DialogAction.Slots.Location)
}

func TestHandleDialogEventRejectsBadJSON(t *testing.T) {
	router := dialogRouter(&stubDialogService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/dialog", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
