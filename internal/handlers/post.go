package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rageblack12/BusinessGenAiBackend/internal/middleware"
	"github.com/rageblack12/BusinessGenAiBackend/internal/models"
	"github.com/rageblack12/BusinessGenAiBackend/internal/services"
)

const maxImageSize = 10 << 20 // 10MB

type PostHandler struct {
	feedback *services.FeedbackService
}

func NewPostHandler(feedback *services.FeedbackService) *PostHandler {
	return &PostHandler{feedback: feedback}
}

type createPostForm struct {
	Title       string `form:"title" binding:"required,max=200"`
	Description string `form:"description" binding:"required,max=2000"`
}

type updatePostForm struct {
	Title       *string `form:"title" binding:"omitempty,max=200"`
	Description *string `form:"description" binding:"omitempty,max=2000"`
}

// receiveImage pulls the optional image out of the multipart form and
// uploads it. Returns (nil, true) when no file was sent.
func receiveImage(c *gin.Context, uploadedBy uint) (*models.Image, bool) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		return nil, true
	}
	defer file.Close()

	if header.Size > maxImageSize {
		fail(c, http.StatusBadRequest, "Image too large, max 10MB")
		return nil, false
	}
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		fail(c, http.StatusBadRequest, "Only image uploads are allowed")
		return nil, false
	}

	result, err := services.UploadImage(file, header)
	if err != nil {
		fail(c, http.StatusBadGateway, "Image upload failed")
		return nil, false
	}
	return &models.Image{
		URL:        result.URL,
		PublicID:   result.ID,
		DeleteHash: result.DeleteHash,
		UploadedBy: uploadedBy,
	}, true
}

func (h *PostHandler) Create(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	var form createPostForm
	if err := c.ShouldBind(&form); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	image, ok := receiveImage(c, actor.UserID)
	if !ok {
		return
	}

	post, err := h.feedback.CreatePost(actor.UserID, form.Title, form.Description, image)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"post": post})
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.feedback.ListPosts()
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{
		"count": len(posts),
		"posts": posts,
	})
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	post, err := h.feedback.GetPost(id)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"post": post})
}

func (h *PostHandler) Update(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form updatePostForm
	if err := c.ShouldBind(&form); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	image, ok := receiveImage(c, actor.UserID)
	if !ok {
		return
	}

	post, err := h.feedback.UpdatePost(id, actor.UserID, form.Title, form.Description, image)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{
		"message": "Post updated successfully",
		"post":    post,
	})
}

func (h *PostHandler) Delete(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.feedback.DeletePost(id, actor.UserID); err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func (h *PostHandler) ToggleLike(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	liked, likes, err := h.feedback.ToggleLike(id, actor.UserID)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{
		"liked": liked,
		"likes": likes,
	})
}
