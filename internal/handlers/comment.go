package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rageblack12/BusinessGenAiBackend/internal/middleware"
	"github.com/rageblack12/BusinessGenAiBackend/internal/services"
)

type CommentHandler struct {
	feedback *services.FeedbackService
}

func NewCommentHandler(feedback *services.FeedbackService) *CommentHandler {
	return &CommentHandler{feedback: feedback}
}

type createCommentRequest struct {
	Content string `json:"content" binding:"required,max=500"`
	PostID  uint   `json:"postId" binding:"required"`
}

func (h *CommentHandler) Create(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.feedback.CreateComment(actor.UserID, req.PostID, req.Content)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"comment": comment})
}

type createCommentReplyRequest struct {
	Content   string `json:"content" binding:"required,max=500"`
	CommentID uint   `json:"commentId" binding:"required"`
}

func (h *CommentHandler) CreateReply(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	var req createCommentReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	reply, err := h.feedback.CreateCommentReply(actor.UserID, req.CommentID, req.Content)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"reply": reply})
}
