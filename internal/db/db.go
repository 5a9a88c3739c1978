package db

import (
	"log"
	"os"

	"github.com/rageblack12/BusinessGenAiBackend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=feedback port=5432 sslmode=disable"
	}

	var err error
	// Parent/child references are lookups, not DB-enforced ownership: a
	// deleted post deliberately leaves its comments in place, so no FK
	// constraints are generated.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.User{},
		&models.Image{},
		&models.Post{},
		&models.Comment{},
		&models.CommentReply{},
		&models.UserComplaint{},
		&models.ComplaintReply{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")
}
