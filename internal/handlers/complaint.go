package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rageblack12/BusinessGenAiBackend/internal/middleware"
	"github.com/rageblack12/BusinessGenAiBackend/internal/services"
	"github.com/rageblack12/BusinessGenAiBackend/internal/utils"
)

type ComplaintHandler struct {
	complaints *services.ComplaintService
}

func NewComplaintHandler(complaints *services.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaints: complaints}
}

type raiseComplaintRequest struct {
	OrderID     string `json:"orderId" binding:"required,min=3,max=50"`
	ProductType string `json:"productType" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"required,min=10,max=1000"`
}

func (h *ComplaintHandler) Raise(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	var req raiseComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	complaint, err := h.complaints.RaiseComplaint(actor.UserID, req.OrderID, req.ProductType, req.Description)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{
		"message":   "Complaint raised successfully",
		"complaint": complaint,
	})
}

func (h *ComplaintHandler) UserComplaints(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	page := utils.ParsePage(c.Query("page"), c.Query("limit"))

	complaints, meta, err := h.complaints.UserComplaints(actor.UserID, page)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{
		"complaints": complaints,
		"pagination": meta,
	})
}

func (h *ComplaintHandler) All(c *gin.Context) {
	complaints, err := h.complaints.AllComplaints()
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{
		"count":      len(complaints),
		"complaints": complaints,
	})
}

func (h *ComplaintHandler) Close(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	complaint, err := h.complaints.CloseComplaint(id, actor.UserID)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{
		"message":   "Complaint closed successfully",
		"complaint": complaint,
	})
}

type createComplaintReplyRequest struct {
	Content     string `json:"content" binding:"required,max=500"`
	ComplaintID uint   `json:"complaintId" binding:"required"`
}

func (h *ComplaintHandler) CreateReply(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	var req createComplaintReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	reply, err := h.complaints.CreateComplaintReply(actor.UserID, req.ComplaintID, req.Content)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"reply": reply})
}
