package services

import (
	"sort"
	"time"

	"github.com/rageblack12/BusinessGenAiBackend/internal/models"
)

// fakeStorage is an in-memory stand-in for the gorm-backed service so the
// engines can be exercised without a database.
type fakeStorage struct {
	nextID     uint
	users      map[uint]*models.User
	posts      map[uint]*models.Post
	likes      map[[2]uint]bool
	comments   map[uint]*models.Comment
	creplies   map[uint]*models.CommentReply
	complaints map[uint]*models.UserComplaint
	xreplies   map[uint]*models.ComplaintReply
	images     map[uint]*models.Image
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		nextID:     0,
		users:      make(map[uint]*models.User),
		posts:      make(map[uint]*models.Post),
		likes:      make(map[[2]uint]bool),
		comments:   make(map[uint]*models.Comment),
		creplies:   make(map[uint]*models.CommentReply),
		complaints: make(map[uint]*models.UserComplaint),
		xreplies:   make(map[uint]*models.ComplaintReply),
		images:     make(map[uint]*models.Image),
	}
}

func (f *fakeStorage) id() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeStorage) addUser(name, role string) *models.User {
	u := &models.User{ID: f.id(), Name: name, Role: role}
	f.users[u.ID] = u
	return u
}

func (f *fakeStorage) GetUserByID(id uint) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeStorage) CreatePost(post *models.Post) error {
	post.ID = f.id()
	post.CreatedAt = time.Now()
	f.posts[post.ID] = post
	return nil
}

func (f *fakeStorage) GetPostByID(id uint) (*models.Post, error) {
	return f.posts[id], nil
}

func (f *fakeStorage) GetPostDetail(id uint) (*models.Post, error) {
	post := f.posts[id]
	if post == nil {
		return nil, nil
	}
	post.Comments = nil
	for _, c := range f.comments {
		if c.PostID == id {
			post.Comments = append(post.Comments, *c)
		}
	}
	sort.Slice(post.Comments, func(i, j int) bool {
		return post.Comments[i].ID < post.Comments[j].ID
	})
	return post, nil
}

func (f *fakeStorage) ListPosts() ([]models.Post, error) {
	var posts []models.Post
	for _, p := range f.posts {
		posts = append(posts, *p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID > posts[j].ID })
	return posts, nil
}

func (f *fakeStorage) SavePost(post *models.Post) error {
	f.posts[post.ID] = post
	return nil
}

func (f *fakeStorage) DeletePost(post *models.Post) error {
	delete(f.posts, post.ID)
	for key := range f.likes {
		if key[0] == post.ID {
			delete(f.likes, key)
		}
	}
	return nil
}

func (f *fakeStorage) HasLiked(postID, userID uint) (bool, error) {
	return f.likes[[2]uint{postID, userID}], nil
}

func (f *fakeStorage) AddLike(postID, userID uint) error {
	f.likes[[2]uint{postID, userID}] = true
	return nil
}

func (f *fakeStorage) RemoveLike(postID, userID uint) error {
	delete(f.likes, [2]uint{postID, userID})
	return nil
}

func (f *fakeStorage) CreateComment(comment *models.Comment) error {
	comment.ID = f.id()
	comment.CreatedAt = time.Now()
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeStorage) GetCommentByID(id uint) (*models.Comment, error) {
	return f.comments[id], nil
}

func (f *fakeStorage) CreateCommentReply(reply *models.CommentReply) error {
	reply.ID = f.id()
	reply.CreatedAt = time.Now()
	f.creplies[reply.ID] = reply
	return nil
}

func (f *fakeStorage) CreateComplaint(complaint *models.UserComplaint) error {
	complaint.ID = f.id()
	complaint.CreatedAt = time.Now()
	f.complaints[complaint.ID] = complaint
	return nil
}

func (f *fakeStorage) GetComplaintByID(id uint) (*models.UserComplaint, error) {
	return f.complaints[id], nil
}

func (f *fakeStorage) SaveComplaint(complaint *models.UserComplaint) error {
	f.complaints[complaint.ID] = complaint
	return nil
}

func (f *fakeStorage) CountUserComplaints(userID uint) (int64, error) {
	var count int64
	for _, c := range f.complaints {
		if c.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeStorage) ListUserComplaints(userID uint, limit, offset int) ([]models.UserComplaint, error) {
	var all []models.UserComplaint
	for _, c := range f.complaints {
		if c.UserID == userID {
			all = append(all, *c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeStorage) ListAllComplaints() ([]models.UserComplaint, error) {
	var all []models.UserComplaint
	for _, c := range f.complaints {
		all = append(all, *c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return all, nil
}

func (f *fakeStorage) CreateComplaintReply(reply *models.ComplaintReply) error {
	reply.ID = f.id()
	reply.CreatedAt = time.Now()
	f.xreplies[reply.ID] = reply
	return nil
}

func (f *fakeStorage) CreateImage(image *models.Image) error {
	image.ID = f.id()
	f.images[image.ID] = image
	return nil
}

func (f *fakeStorage) GetImageByID(id uint) (*models.Image, error) {
	return f.images[id], nil
}

func (f *fakeStorage) DeleteImage(image *models.Image) error {
	delete(f.images, image.ID)
	return nil
}

// stubClassifier returns canned outcomes.
type stubClassifier struct {
	sentiment Outcome
	severity  Outcome
}

func (s *stubClassifier) ClassifySentiment(text string) Outcome { return s.sentiment }
func (s *stubClassifier) ClassifySeverity(text string) Outcome  { return s.severity }
