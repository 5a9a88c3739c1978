package services

import (
	"fmt"

	"github.com/rageblack12/BusinessGenAiBackend/internal/models"
	"github.com/rageblack12/BusinessGenAiBackend/internal/storage"
	"github.com/rageblack12/BusinessGenAiBackend/internal/utils"
)

// ComplaintService owns the complaint lifecycle and its reply threads.
type ComplaintService struct {
	store      storage.Storage
	classifier Classifier
}

func NewComplaintService(store storage.Storage, classifier Classifier) *ComplaintService {
	return &ComplaintService{store: store, classifier: classifier}
}

// RaiseComplaint files a new complaint. Severity comes from the zero-shot
// classifier over the description; a degraded call leaves it at Moderate.
func (s *ComplaintService) RaiseComplaint(actorID uint, orderID, productType, description string) (*models.UserComplaint, error) {
	severity := s.classifier.ClassifySeverity(description)

	complaint := &models.UserComplaint{
		OrderID:     orderID,
		ProductType: productType,
		Description: description,
		UserID:      actorID,
		Severity:    severity.Label,
		Status:      models.ComplaintOpen,
	}
	if err := s.store.CreateComplaint(complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// UserComplaints pages through the actor's own complaints, newest first.
func (s *ComplaintService) UserComplaints(actorID uint, page utils.PageParams) ([]models.UserComplaint, utils.PageMeta, error) {
	total, err := s.store.CountUserComplaints(actorID)
	if err != nil {
		return nil, utils.PageMeta{}, err
	}
	complaints, err := s.store.ListUserComplaints(actorID, page.Limit, page.Offset())
	if err != nil {
		return nil, utils.PageMeta{}, err
	}
	return complaints, utils.NewPageMeta(page, total), nil
}

// AllComplaints returns every complaint in the system, newest first.
func (s *ComplaintService) AllComplaints() ([]models.UserComplaint, error) {
	return s.store.ListAllComplaints()
}

// CloseComplaint moves an open complaint to resolved. Only the owner may
// close it, and a resolved complaint stays resolved.
func (s *ComplaintService) CloseComplaint(id, actorID uint) (*models.UserComplaint, error) {
	complaint, err := s.store.GetComplaintByID(id)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, fmt.Errorf("complaint %w", ErrNotFound)
	}
	if complaint.UserID != actorID {
		return nil, fmt.Errorf("%w: not the complaint owner", ErrForbidden)
	}
	if complaint.Status == models.ComplaintResolved {
		return nil, fmt.Errorf("complaint %w", ErrConflict)
	}

	complaint.Status = models.ComplaintResolved
	if err := s.store.SaveComplaint(complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// CreateComplaintReply adds a reply to a complaint thread. Any
// authenticated actor may reply; support staff answer on the same thread
// the owner writes to.
func (s *ComplaintService) CreateComplaintReply(actorID, complaintID uint, content string) (*models.ComplaintReply, error) {
	complaint, err := s.store.GetComplaintByID(complaintID)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, fmt.Errorf("complaint %w", ErrNotFound)
	}

	reply := &models.ComplaintReply{
		Content:     content,
		UserID:      actorID,
		ComplaintID: complaintID,
	}
	if err := s.store.CreateComplaintReply(reply); err != nil {
		return nil, err
	}
	if user, err := s.store.GetUserByID(actorID); err == nil && user != nil {
		reply.User = *user
	}
	return reply, nil
}
