// Package storage is the persistence boundary for the feedback entity
// graph. Lookups by id report absence as a (nil, nil) pair, never as an
// error; per-row writes are atomic but nothing here spans rows in a
// transaction.
package storage

import (
	"errors"

	"github.com/rageblack12/BusinessGenAiBackend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Storage interface {
	GetUserByID(id uint) (*models.User, error)

	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetPostDetail(id uint) (*models.Post, error)
	ListPosts() ([]models.Post, error)
	SavePost(post *models.Post) error
	DeletePost(post *models.Post) error
	HasLiked(postID, userID uint) (bool, error)
	AddLike(postID, userID uint) error
	RemoveLike(postID, userID uint) error

	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	CreateCommentReply(reply *models.CommentReply) error

	CreateComplaint(complaint *models.UserComplaint) error
	GetComplaintByID(id uint) (*models.UserComplaint, error)
	SaveComplaint(complaint *models.UserComplaint) error
	CountUserComplaints(userID uint) (int64, error)
	ListUserComplaints(userID uint, limit, offset int) ([]models.UserComplaint, error)
	ListAllComplaints() ([]models.UserComplaint, error)
	CreateComplaintReply(reply *models.ComplaintReply) error

	CreateImage(image *models.Image) error
	GetImageByID(id uint) (*models.Image, error)
	DeleteImage(image *models.Image) error
}

type Service struct {
	DB *gorm.DB
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

func (s *Service) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) CreatePost(post *models.Post) error {
	return s.DB.Create(post).Error
}

// GetPostByID returns the bare row, no relations loaded. Use GetPostDetail
// for the expanded graph.
func (s *Service) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	err := s.DB.First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// withPostRelations expands author, image, likers and the full comment
// thread with authors. Threads keep insertion order.
func withPostRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Image").
		Preload("LikedBy").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.User").
		Preload("Comments.Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("comment_replies.created_at ASC")
		}).
		Preload("Comments.Replies.User")
}

func (s *Service) GetPostDetail(id uint) (*models.Post, error) {
	var post models.Post
	err := withPostRelations(s.DB).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *Service) ListPosts() ([]models.Post, error) {
	var posts []models.Post
	err := withPostRelations(s.DB).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Service) SavePost(post *models.Post) error {
	return s.DB.Omit(clause.Associations).Save(post).Error
}

func (s *Service) DeletePost(post *models.Post) error {
	// Drop the like memberships first, then the row itself. Comments stay.
	if err := s.DB.Model(post).Association("LikedBy").Clear(); err != nil {
		return err
	}
	return s.DB.Delete(&models.Post{}, post.ID).Error
}

func (s *Service) HasLiked(postID, userID uint) (bool, error) {
	var count int64
	err := s.DB.Table("post_likes").
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Service) AddLike(postID, userID uint) error {
	return s.DB.Model(&models.Post{ID: postID}).
		Association("LikedBy").
		Append(&models.User{ID: userID})
}

func (s *Service) RemoveLike(postID, userID uint) error {
	return s.DB.Model(&models.Post{ID: postID}).
		Association("LikedBy").
		Delete(&models.User{ID: userID})
}

func (s *Service) CreateComment(comment *models.Comment) error {
	return s.DB.Create(comment).Error
}

func (s *Service) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := s.DB.First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *Service) CreateCommentReply(reply *models.CommentReply) error {
	return s.DB.Create(reply).Error
}

func (s *Service) CreateComplaint(complaint *models.UserComplaint) error {
	return s.DB.Create(complaint).Error
}

func (s *Service) GetComplaintByID(id uint) (*models.UserComplaint, error) {
	var complaint models.UserComplaint
	err := s.DB.First(&complaint, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (s *Service) SaveComplaint(complaint *models.UserComplaint) error {
	return s.DB.Omit(clause.Associations).Save(complaint).Error
}

func (s *Service) CountUserComplaints(userID uint) (int64, error) {
	var count int64
	err := s.DB.Model(&models.UserComplaint{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func withComplaintReplies(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("complaint_replies.created_at ASC")
		}).
		Preload("Replies.User")
}

func (s *Service) ListUserComplaints(userID uint, limit, offset int) ([]models.UserComplaint, error) {
	var complaints []models.UserComplaint
	err := withComplaintReplies(s.DB).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

func (s *Service) ListAllComplaints() ([]models.UserComplaint, error) {
	var complaints []models.UserComplaint
	err := withComplaintReplies(s.DB).
		Preload("User").
		Order("created_at DESC").
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

func (s *Service) CreateComplaintReply(reply *models.ComplaintReply) error {
	return s.DB.Create(reply).Error
}

func (s *Service) CreateImage(image *models.Image) error {
	return s.DB.Create(image).Error
}

func (s *Service) GetImageByID(id uint) (*models.Image, error) {
	var image models.Image
	err := s.DB.First(&image, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (s *Service) DeleteImage(image *models.Image) error {
	return s.DB.Delete(&models.Image{}, image.ID).Error
}
