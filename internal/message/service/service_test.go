package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/travel_together/internal/database/dbtest"
	groupModel "github.com/festy23/travel_together/internal/group/model"
	"github.com/festy23/travel_together/internal/message/model"
	"github.com/festy23/travel_together/internal/message/repository"
	userModel "github.com/festy23/travel_together/internal/user/model"
	"github.com/festy23/travel_together/internal/validation"
)

const (
	creatorID  uint64 = 1
	travelerID uint64 = 2
	groupID    uint64 = 10
)

type mockGroups struct {
	mock.Mock
}

func (m *mockGroups) GetByID(ctx context.Context, id uint64) (*groupModel.TravelGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*groupModel.TravelGroup), args.Error(1)
}

type staticProfiles map[uint64]userModel.Profile

func (p staticProfiles) GetProfiles(_ context.Context, ids []uint64) (map[uint64]userModel.Profile, error) {
	out := make(map[uint64]userModel.Profile, len(ids))
	for _, id := range ids {
		if profile, ok := p[id]; ok {
			out[id] = profile
		}
	}
	return out, nil
}

type failingProfiles struct{ err error }

func (p failingProfiles) GetProfiles(context.Context, []uint64) (map[uint64]userModel.Profile, error) {
	return nil, p.err
}

var profiles = staticProfiles{
	creatorID:  {ID: creatorID, Username: "creator1", FirstName: "Carla"},
	travelerID: {ID: travelerID, Username: "traveler", FirstName: "Tom"},
}

func setupService(t *testing.T) (Service, repository.Repository, *mockGroups) {
	t.Helper()
	logger := zap.NewNop().Sugar()
	repo := repository.New(dbtest.New(t), logger)
	groups := new(mockGroups)
	groups.On("GetByID", mock.Anything, groupID).
		Return(&groupModel.TravelGroup{ID: groupID, CreatorID: creatorID}, nil).Maybe()
	groups.On("GetByID", mock.Anything, mock.Anything).Return(nil, groupModel.ErrGroupNotFound).Maybe()
	return New(repo, groups, profiles, logger), repo, groups
}

func TestService_ContactCreator(t *testing.T) {
	ctx := context.Background()

	t.Run("sent to creator", func(t *testing.T) {
		svc, _, _ := setupService(t)

		view, err := svc.ContactCreator(ctx, groupID, travelerID, &model.SendRequest{
			Subject: "  Joining  ",
			Message: " Is there room for one more? ",
		})
		require.NoError(t, err)
		assert.Equal(t, creatorID, view.RecipientID)
		assert.Equal(t, travelerID, view.SenderID)
		require.NotNil(t, view.GroupID)
		assert.Equal(t, groupID, *view.GroupID)
		assert.Equal(t, "Joining", view.Subject)
		assert.Equal(t, "Is there room for one more?", view.Body)
		assert.False(t, view.IsRead)
		require.NotNil(t, view.Sender)
		assert.Equal(t, "traveler", view.Sender.Username)
		assert.Equal(t, "creator1", view.Recipient.Username)
	})

	t.Run("cannot message yourself", func(t *testing.T) {
		svc, _, _ := setupService(t)

		_, err := svc.ContactCreator(ctx, groupID, creatorID, &model.SendRequest{Subject: "Hi", Message: "Me"})
		assert.ErrorIs(t, err, model.ErrSelfMessage)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, repo, _ := setupService(t)

		_, err := svc.ContactCreator(ctx, groupID, travelerID, &model.SendRequest{Subject: "Hi", Message: "   "})
		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"Please fill in all fields"}, verr.Violations)

		received, err := repo.ListReceived(ctx, creatorID)
		require.NoError(t, err)
		assert.Empty(t, received)
	})

	t.Run("subject too long", func(t *testing.T) {
		svc, _, _ := setupService(t)

		_, err := svc.ContactCreator(ctx, groupID, travelerID, &model.SendRequest{
			Subject: strings.Repeat("s", 201),
			Message: "body",
		})
		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
	})

	t.Run("unknown group", func(t *testing.T) {
		svc, _, _ := setupService(t)

		_, err := svc.ContactCreator(ctx, 99, travelerID, &model.SendRequest{Subject: "Hi", Message: "There"})
		assert.ErrorIs(t, err, groupModel.ErrGroupNotFound)
	})
}

func TestService_Reply(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	original, err := svc.ContactCreator(ctx, groupID, travelerID, &model.SendRequest{Subject: "Hi", Message: "Question"})
	require.NoError(t, err)

	t.Run("recipient replies to sender", func(t *testing.T) {
		reply, err := svc.Reply(ctx, original.ID, creatorID, &model.SendRequest{Subject: "Re: Hi", Message: "Answer"})
		require.NoError(t, err)
		assert.Equal(t, creatorID, reply.SenderID)
		assert.Equal(t, travelerID, reply.RecipientID)
		require.NotNil(t, reply.GroupID)
		assert.Equal(t, groupID, *reply.GroupID)
	})

	t.Run("only recipient", func(t *testing.T) {
		_, err := svc.Reply(ctx, original.ID, travelerID, &model.SendRequest{Subject: "Re", Message: "Again"})
		assert.ErrorIs(t, err, model.ErrNotRecipient)
	})

	t.Run("missing message", func(t *testing.T) {
		_, err := svc.Reply(ctx, 999, creatorID, &model.SendRequest{Subject: "Re", Message: "Again"})
		assert.ErrorIs(t, err, model.ErrMessageNotFound)
	})
}

func TestService_Inbox(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := setupService(t)

	first, err := svc.ContactCreator(ctx, groupID, travelerID, &model.SendRequest{Subject: "One", Message: "First"})
	require.NoError(t, err)
	second, err := svc.ContactCreator(ctx, groupID, travelerID, &model.SendRequest{Subject: "Two", Message: "Second"})
	require.NoError(t, err)
	_, err = svc.Reply(ctx, first.ID, creatorID, &model.SendRequest{Subject: "Re: One", Message: "Reply"})
	require.NoError(t, err)

	inbox, err := svc.Inbox(ctx, creatorID)
	require.NoError(t, err)
	require.Len(t, inbox.Received, 2)
	assert.Equal(t, second.ID, inbox.Received[0].ID)
	assert.False(t, inbox.Received[0].IsRead, "inbox shows state before the visit")
	require.Len(t, inbox.Sent, 1)
	assert.Equal(t, "Re: One", inbox.Sent[0].Subject)

	received, err := repo.ListReceived(ctx, creatorID)
	require.NoError(t, err)
	for _, m := range received {
		assert.True(t, m.IsRead)
	}

	again, err := svc.Inbox(ctx, creatorID)
	require.NoError(t, err)
	assert.True(t, again.Received[0].IsRead)

	travelerInbox, err := svc.Inbox(ctx, travelerID)
	require.NoError(t, err)
	require.Len(t, travelerInbox.Received, 1)
	assert.False(t, travelerInbox.Received[0].IsRead)
}

func TestService_InboxEmpty(t *testing.T) {
	svc, _, _ := setupService(t)

	inbox, err := svc.Inbox(context.Background(), travelerID)
	require.NoError(t, err)
	assert.NotNil(t, inbox.Received)
	assert.NotNil(t, inbox.Sent)
	assert.Empty(t, inbox.Received)
}

func TestService_ProfileLookupFailure(t *testing.T) {
	logger := zap.NewNop().Sugar()
	repo := repository.New(dbtest.New(t), logger)
	require.NoError(t, repo.Create(context.Background(), &model.Message{
		SenderID: travelerID, RecipientID: creatorID, Subject: "Hi", Body: "There",
	}))

	lookupErr := errors.New("connection reset")
	svc := New(repo, new(mockGroups), failingProfiles{err: lookupErr}, logger)

	_, err := svc.Inbox(context.Background(), creatorID)
	assert.ErrorIs(t, err, lookupErr)

	received, err := repo.ListReceived(context.Background(), creatorID)
	require.NoError(t, err)
	assert.False(t, received[0].IsRead, "failed inbox must not mark messages read")
}
