package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rageblack12/BusinessGenAiBackend/internal/models"
	"github.com/rageblack12/BusinessGenAiBackend/internal/utils"
)

func newComplaintFixture() (*ComplaintService, *fakeStorage, *stubClassifier) {
	store := newFakeStorage()
	classifier := &stubClassifier{
		sentiment: Outcome{Label: models.SentimentNeutral},
		severity:  Outcome{Label: models.SeverityModerate},
	}
	return NewComplaintService(store, classifier), store, classifier
}

func TestRaiseComplaintUsesClassifiedSeverity(t *testing.T) {
	svc, store, classifier := newComplaintFixture()
	user := store.addUser("user", models.RoleUser)

	classifier.severity = Outcome{Label: models.SeverityUrgent}
	complaint, err := svc.RaiseComplaint(user.ID, "ORD-1", "Shoes", "Wrong size delivered")
	require.NoError(t, err)
	assert.Equal(t, models.SeverityUrgent, complaint.Severity)
	assert.Equal(t, models.ComplaintOpen, complaint.Status)
	assert.Equal(t, user.ID, complaint.UserID)
}

func TestRaiseComplaintDegradedFallsBackToModerate(t *testing.T) {
	svc, store, classifier := newComplaintFixture()
	user := store.addUser("user", models.RoleUser)

	classifier.severity = Outcome{Label: models.SeverityModerate, Degraded: true}
	complaint, err := svc.RaiseComplaint(user.ID, "ORD-2", "Laptop", "Battery drains too fast")
	require.NoError(t, err)
	assert.Equal(t, models.SeverityModerate, complaint.Severity)
}

func TestCloseComplaintLifecycle(t *testing.T) {
	svc, store, _ := newComplaintFixture()
	user := store.addUser("user", models.RoleUser)

	complaint, err := svc.RaiseComplaint(user.ID, "ORD-1", "Shoes", "Wrong size delivered")
	require.NoError(t, err)

	closed, err := svc.CloseComplaint(complaint.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintResolved, closed.Status)

	// Closing twice conflicts; resolved is terminal.
	_, err = svc.CloseComplaint(complaint.ID, user.ID)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestCloseComplaintForbiddenForNonOwner(t *testing.T) {
	svc, store, _ := newComplaintFixture()
	owner := store.addUser("owner", models.RoleUser)
	other := store.addUser("other", models.RoleUser)

	complaint, err := svc.RaiseComplaint(owner.ID, "ORD-3", "Phone", "Screen arrived cracked")
	require.NoError(t, err)

	_, err = svc.CloseComplaint(complaint.ID, other.ID)
	assert.True(t, errors.Is(err, ErrForbidden))
}

func TestCloseComplaintNotFound(t *testing.T) {
	svc, store, _ := newComplaintFixture()
	user := store.addUser("user", models.RoleUser)

	_, err := svc.CloseComplaint(404, user.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUserComplaintsPagination(t *testing.T) {
	svc, store, _ := newComplaintFixture()
	owner := store.addUser("owner", models.RoleUser)
	other := store.addUser("other", models.RoleUser)

	for i := 0; i < 25; i++ {
		_, err := svc.RaiseComplaint(owner.ID, fmt.Sprintf("ORD-%d", i), "Widget", "It stopped working after a week")
		require.NoError(t, err)
	}
	_, err := svc.RaiseComplaint(other.ID, "ORD-X", "Gadget", "Arrived with missing parts")
	require.NoError(t, err)

	complaints, meta, err := svc.UserComplaints(owner.ID, utils.PageParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, complaints, 10)
	assert.Equal(t, int64(25), meta.TotalItems)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNextPage)
	assert.False(t, meta.HasPrevPage)

	complaints, meta, err = svc.UserComplaints(owner.ID, utils.PageParams{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, complaints, 5)
	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)

	// Owner scoping: the other user's complaint never shows up.
	for _, c := range complaints {
		assert.Equal(t, owner.ID, c.UserID)
	}
}

func TestAllComplaints(t *testing.T) {
	svc, store, _ := newComplaintFixture()
	a := store.addUser("a", models.RoleUser)
	b := store.addUser("b", models.RoleUser)

	_, err := svc.RaiseComplaint(a.ID, "ORD-1", "Shoes", "Wrong size delivered")
	require.NoError(t, err)
	_, err = svc.RaiseComplaint(b.ID, "ORD-2", "Shirt", "Color faded after one wash")
	require.NoError(t, err)

	all, err := svc.AllComplaints()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreateComplaintReply(t *testing.T) {
	svc, store, _ := newComplaintFixture()
	owner := store.addUser("owner", models.RoleUser)
	agent := store.addUser("agent", models.RoleAdmin)

	complaint, err := svc.RaiseComplaint(owner.ID, "ORD-1", "Shoes", "Wrong size delivered")
	require.NoError(t, err)

	// Any authenticated actor may reply, not only the owner.
	reply, err := svc.CreateComplaintReply(agent.ID, complaint.ID, "Replacement is on its way")
	require.NoError(t, err)
	assert.Equal(t, complaint.ID, reply.ComplaintID)
	assert.Equal(t, agent.Name, reply.User.Name)
}

func TestCreateComplaintReplyMissingComplaint(t *testing.T) {
	svc, store, _ := newComplaintFixture()
	user := store.addUser("user", models.RoleUser)

	_, err := svc.CreateComplaintReply(user.ID, 999, "hello?")
	assert.True(t, errors.Is(err, ErrNotFound))
}
