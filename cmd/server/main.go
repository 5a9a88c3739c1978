package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/rageblack12/BusinessGenAiBackend/internal/db"
	"github.com/rageblack12/BusinessGenAiBackend/internal/handlers"
	"github.com/rageblack12/BusinessGenAiBackend/internal/router"
	"github.com/rageblack12/BusinessGenAiBackend/internal/services"
	"github.com/rageblack12/BusinessGenAiBackend/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	db.Init()

	store := storage.NewStorageService(db.DB)
	classifier := services.NewHFClassifier()
	feedback := services.NewFeedbackService(store, classifier)
	complaints := services.NewComplaintService(store, classifier)
	llm := services.NewLLMService()

	r := gin.Default()
	router.RegisterRoutes(r,
		handlers.NewPostHandler(feedback),
		handlers.NewCommentHandler(feedback),
		handlers.NewComplaintHandler(complaints),
		handlers.NewAIHandler(llm),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
