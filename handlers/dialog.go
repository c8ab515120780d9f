package handlers

import (
	"net/http"

	"dinebot/models"
	"dinebot/services/dialog"
	"dinebot/utils"

	"github.com/gin-gonic/gin"
)

// DialogHandler exposes the dialog controller as the NLU engine's code hook:
// one intent event in, one dialog action out.
type DialogHandler struct {
	Service dialog.Service
}

// NewDialogHandler constructs a DialogHandler.
func NewDialogHandler(svc dialog.Service) *DialogHandler {
	return &DialogHandler{Service: svc}
}

// HandleDialogEvent runs one conversational turn.
func (h *DialogHandler) HandleDialogEvent(c *gin.Context) {
	var req models.IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid dialog event", err.Error())
		return
	}

	resp, err := h.Service.Dispatch(c.Request.Context(), &req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to process dialog event", err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}
