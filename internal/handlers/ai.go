package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rageblack12/BusinessGenAiBackend/internal/services"
)

// AIHandler exposes draft-reply generation for support staff. Nothing here
// touches storage; it's a stateless pass-through to the model.
type AIHandler struct {
	llm *services.LLMService
}

func NewAIHandler(llm *services.LLMService) *AIHandler {
	return &AIHandler{llm: llm}
}

type commentReplyRequest struct {
	Sentiment   string `json:"sentiment" binding:"required,oneof=Positive Neutral Negative"`
	Description string `json:"description" binding:"required,max=500"`
}

func (h *AIHandler) CommentReply(c *gin.Context) {
	var req commentReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	reply, err := h.llm.GenerateCommentReply(req.Sentiment, req.Description)
	if err != nil {
		fail(c, http.StatusBadGateway, "AI service failed")
		return
	}
	respond(c, http.StatusOK, gin.H{"reply": reply})
}

type complaintReplyRequest struct {
	Severity    string `json:"severity" binding:"required,oneof=Moderate High Urgent"`
	Description string `json:"description" binding:"required,max=1000"`
}

func (h *AIHandler) ComplaintReply(c *gin.Context) {
	var req complaintReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	reply, err := h.llm.GenerateComplaintReply(req.Severity, req.Description)
	if err != nil {
		fail(c, http.StatusBadGateway, "Complaint AI service failed")
		return
	}
	respond(c, http.StatusOK, gin.H{"reply": reply})
}
