package router

import (
	"github.com/gin-gonic/gin"

	"github.com/rageblack12/BusinessGenAiBackend/internal/handlers"
	"github.com/rageblack12/BusinessGenAiBackend/internal/middleware"
)

// RegisterRoutes wires the API surface. Everything sits behind auth; the
// write-side of posts and the complaint overview are admin only.
func RegisterRoutes(
	r *gin.Engine,
	posts *handlers.PostHandler,
	comments *handlers.CommentHandler,
	complaints *handlers.ComplaintHandler,
	ai *handlers.AIHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.RequestID(), middleware.AuthRequired())

	postGroup := api.Group("/posts")
	{
		postGroup.POST("", middleware.AdminRequired(), posts.Create)
		postGroup.GET("", posts.List)
		postGroup.GET("/:id", posts.Get)
		postGroup.PUT("/:id", middleware.AdminRequired(), posts.Update)
		postGroup.DELETE("/:id", middleware.AdminRequired(), posts.Delete)
		postGroup.PUT("/:id/like", posts.ToggleLike)
	}

	commentGroup := api.Group("/comments")
	{
		commentGroup.POST("", comments.Create)
		commentGroup.POST("/replies", comments.CreateReply)
	}

	complaintGroup := api.Group("/complaints")
	{
		complaintGroup.POST("", complaints.Raise)
		complaintGroup.GET("/user", complaints.UserComplaints)
		complaintGroup.GET("/all", middleware.AdminRequired(), complaints.All)
		complaintGroup.PATCH("/:id/close", complaints.Close)
		complaintGroup.POST("/replies", complaints.CreateReply)
	}

	aiGroup := api.Group("/ai")
	{
		aiGroup.POST("/comment-reply", ai.CommentReply)
		aiGroup.POST("/complaint-reply", ai.ComplaintReply)
	}
}
