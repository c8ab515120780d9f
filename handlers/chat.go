package handlers

import (
	"net/http"

	"dinebot/models"
	"dinebot/services/nlu"
	"dinebot/services/session"
	"dinebot/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler proxies free-text chat messages to the NLU engine, carrying the
// user's session attributes across turns.
type ChatHandler struct {
	NLU      *nlu.Client
	Sessions session.Store
	Logger   *zap.Logger
}

// NewChatHandler constructs a ChatHandler.
func NewChatHandler(nluClient *nlu.Client, sessions session.Store, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{NLU: nluClient, Sessions: sessions, Logger: logger}
}

// HandleChat accepts one unstructured message, forwards it to the NLU engine,
// and replies with the engine's message in the same envelope.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid chat request", err.Error())
		return
	}
	if len(req.Messages) == 0 || req.Messages[0].Unstructured.Text == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid chat request", "no message text provided")
		return
	}

	msg := req.Messages[0].Unstructured
	userID := msg.ID
	if userID == "" {
		// First turn of a new conversation: mint an ID and echo it back so
		// the client threads it through subsequent turns.
		userID = uuid.New().String()
	}

	attrs, err := h.Sessions.Get(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load session", err.Error())
		return
	}

	reply, err := h.NLU.PostText(c.Request.Context(), userID, msg.Text, attrs)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to reach the assistant", err.Error())
		return
	}

	if err := h.Sessions.Put(c.Request.Context(), userID, reply.SessionAttributes); err != nil {
		// The reply is still usable; the next turn just starts from an
		// older session snapshot.
		h.Logger.Warn("failed to persist session attributes",
			zap.String("userId", userID), zap.Error(err))
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		Messages: []models.ChatMessage{
			{
				Type: "unstructured",
				Unstructured: models.UnstructuredMessage{
					ID:   userID,
					Text: reply.Message,
				},
			},
		},
	})
}
