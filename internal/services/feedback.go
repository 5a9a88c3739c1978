package services

import (
	"fmt"
	"log"

	"github.com/rageblack12/BusinessGenAiBackend/internal/models"
	"github.com/rageblack12/BusinessGenAiBackend/internal/storage"
	"github.com/rageblack12/BusinessGenAiBackend/internal/utils"
)

// FeedbackService owns posts, likes, comments and comment replies.
type FeedbackService struct {
	store      storage.Storage
	classifier Classifier
}

func NewFeedbackService(store storage.Storage, classifier Classifier) *FeedbackService {
	return &FeedbackService{store: store, classifier: classifier}
}

// CreatePost stores a new announcement. Image is optional and already
// uploaded by the handler.
func (s *FeedbackService) CreatePost(authorID uint, title, description string, image *models.Image) (*models.Post, error) {
	post := &models.Post{
		Title:       title,
		Description: description,
		AuthorID:    authorID,
	}
	if image != nil {
		if err := s.store.CreateImage(image); err != nil {
			return nil, err
		}
		post.ImageID = &image.ID
		post.Image = image
	}
	if err := s.store.CreatePost(post); err != nil {
		return nil, err
	}
	return s.GetPost(post.ID)
}

func (s *FeedbackService) ListPosts() ([]models.Post, error) {
	posts, err := s.store.ListPosts()
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].DescriptionHTML = utils.RenderMarkdown(posts[i].Description)
	}
	return posts, nil
}

func (s *FeedbackService) GetPost(id uint) (*models.Post, error) {
	post, err := s.store.GetPostDetail(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("post %w", ErrNotFound)
	}
	post.DescriptionHTML = utils.RenderMarkdown(post.Description)
	return post, nil
}

// UpdatePost applies a partial update. Only the author may edit; a nil
// field means "keep". A replacement image retires the previous one.
func (s *FeedbackService) UpdatePost(id, actorID uint, title, description *string, image *models.Image) (*models.Post, error) {
	post, err := s.store.GetPostByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("post %w", ErrNotFound)
	}
	if post.AuthorID != actorID {
		return nil, fmt.Errorf("%w: not the post author", ErrForbidden)
	}

	if title != nil {
		post.Title = *title
	}
	if description != nil {
		post.Description = *description
	}
	if image != nil {
		oldImageID := post.ImageID
		if err := s.store.CreateImage(image); err != nil {
			return nil, err
		}
		post.ImageID = &image.ID
		if oldImageID != nil {
			s.retireImage(*oldImageID)
		}
	}

	if err := s.store.SavePost(post); err != nil {
		return nil, err
	}
	return s.GetPost(post.ID)
}

// DeletePost removes the post and its attachment. Comments are left in
// place; nothing references them through the post after this.
func (s *FeedbackService) DeletePost(id, actorID uint) error {
	post, err := s.store.GetPostByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return fmt.Errorf("post %w", ErrNotFound)
	}
	if post.AuthorID != actorID {
		return fmt.Errorf("%w: not the post author", ErrForbidden)
	}
	if post.ImageID != nil {
		s.retireImage(*post.ImageID)
	}
	return s.store.DeletePost(post)
}

// ToggleLike flips the actor's like on a post and returns the new state
// plus the resulting count. Read-then-write: two racing toggles on the
// same pair can still double-count, matching the endpoint's best-effort
// contract.
func (s *FeedbackService) ToggleLike(id, actorID uint) (bool, int, error) {
	post, err := s.store.GetPostByID(id)
	if err != nil {
		return false, 0, err
	}
	if post == nil {
		return false, 0, fmt.Errorf("post %w", ErrNotFound)
	}

	liked, err := s.store.HasLiked(id, actorID)
	if err != nil {
		return false, 0, err
	}

	if liked {
		if err := s.store.RemoveLike(id, actorID); err != nil {
			return false, 0, err
		}
		post.Likes--
	} else {
		if err := s.store.AddLike(id, actorID); err != nil {
			return false, 0, err
		}
		post.Likes++
	}
	if post.Likes < 0 {
		post.Likes = 0
	}
	if err := s.store.SavePost(post); err != nil {
		return false, 0, err
	}
	return !liked, post.Likes, nil
}

// CreateComment tags the text with a sentiment and attaches it to the
// post. A degraded classification lands as Neutral so the column always
// holds a real label.
func (s *FeedbackService) CreateComment(actorID, postID uint, content string) (*models.Comment, error) {
	post, err := s.store.GetPostByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("post %w", ErrNotFound)
	}

	outcome := s.classifier.ClassifySentiment(content)
	sentiment := outcome.Label
	if outcome.Degraded || sentiment == models.SentimentUnknown {
		sentiment = models.SentimentNeutral
	}

	comment := &models.Comment{
		Content:   content,
		Sentiment: sentiment,
		UserID:    actorID,
		PostID:    postID,
	}
	if err := s.store.CreateComment(comment); err != nil {
		return nil, err
	}
	if user, err := s.store.GetUserByID(actorID); err == nil && user != nil {
		comment.User = *user
	}
	return comment, nil
}

func (s *FeedbackService) CreateCommentReply(actorID, commentID uint, content string) (*models.CommentReply, error) {
	comment, err := s.store.GetCommentByID(commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, fmt.Errorf("comment %w", ErrNotFound)
	}

	reply := &models.CommentReply{
		Content:   content,
		UserID:    actorID,
		CommentID: commentID,
	}
	if err := s.store.CreateCommentReply(reply); err != nil {
		return nil, err
	}
	if user, err := s.store.GetUserByID(actorID); err == nil && user != nil {
		reply.User = *user
	}
	return reply, nil
}

// retireImage drops the DB row and the remote file. Failures are logged
// and swallowed; attachment cleanup never blocks the write that caused it.
func (s *FeedbackService) retireImage(imageID uint) {
	image, err := s.store.GetImageByID(imageID)
	if err != nil || image == nil {
		return
	}
	if image.DeleteHash != "" {
		if err := DeleteFromImgur(image.DeleteHash); err != nil {
			log.Printf("[feedback] imgur delete failed for image %d: %v", imageID, err)
		}
	}
	if err := s.store.DeleteImage(image); err != nil {
		log.Printf("[feedback] image row delete failed for image %d: %v", imageID, err)
	}
}
