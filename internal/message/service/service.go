// Package service provides business logic layer for message module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	groupModel "github.com/festy23/travel_together/internal/group/model"
	"github.com/festy23/travel_together/internal/message/model"
	"github.com/festy23/travel_together/internal/message/repository"
	userModel "github.com/festy23/travel_together/internal/user/model"
	"github.com/festy23/travel_together/internal/validation"
)

// GroupReader finds groups by id.
type GroupReader interface {
	GetByID(ctx context.Context, groupID uint64) (*groupModel.TravelGroup, error)
}

// ProfileReader resolves public user profiles.
type ProfileReader interface {
	GetProfiles(ctx context.Context, ids []uint64) (map[uint64]userModel.Profile, error)
}

// Service defines the interface for message business logic operations.
type Service interface {
	// ContactCreator sends a message about a group to its creator.
	ContactCreator(ctx context.Context, groupID, senderID uint64, req *model.SendRequest) (*model.MessageView, error)

	// Inbox returns received and sent messages, then marks received ones read.
	Inbox(ctx context.Context, userID uint64) (*model.InboxResponse, error)

	// Reply answers a received message, addressed to its sender.
	Reply(ctx context.Context, messageID, userID uint64, req *model.SendRequest) (*model.MessageView, error)
}

type service struct {
	repo     repository.Repository
	groups   GroupReader
	profiles ProfileReader
	logger   *zap.SugaredLogger
}

// New creates a new message service instance.
func New(
	repo repository.Repository,
	groups GroupReader,
	profiles ProfileReader,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:     repo,
		groups:   groups,
		profiles: profiles,
		logger:   logger,
	}
}

// ContactCreator sends a message about a group to its creator.
func (s *service) ContactCreator(
	ctx context.Context,
	groupID, senderID uint64,
	req *model.SendRequest,
) (*model.MessageView, error) {
	s.logger.Debugw("ContactCreator called", "group_id", groupID, "sender_id", senderID)

	group, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.CreatorID == senderID {
		return nil, model.ErrSelfMessage
	}

	id := group.ID
	return s.send(ctx, &model.Message{
		SenderID:    senderID,
		RecipientID: group.CreatorID,
		GroupID:     &id,
	}, req)
}

// Reply answers a received message in the same group thread.
func (s *service) Reply(
	ctx context.Context,
	messageID, userID uint64,
	req *model.SendRequest,
) (*model.MessageView, error) {
	s.logger.Debugw("Reply called", "message_id", messageID, "user_id", userID)

	original, err := s.repo.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if original.RecipientID != userID {
		return nil, model.ErrNotRecipient
	}

	return s.send(ctx, &model.Message{
		SenderID:    userID,
		RecipientID: original.SenderID,
		GroupID:     original.GroupID,
	}, req)
}

func (s *service) send(ctx context.Context, message *model.Message, req *model.SendRequest) (*model.MessageView, error) {
	if err := validation.NewError(validation.Message(req.Subject, req.Message)); err != nil {
		return nil, err
	}
	message.Subject = strings.TrimSpace(req.Subject)
	message.Body = strings.TrimSpace(req.Message)

	if err := s.repo.Create(ctx, message); err != nil {
		return nil, err
	}

	views, err := s.views(ctx, []model.Message{*message})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Inbox returns received and sent messages as they were before this visit,
// then marks the received ones read.
func (s *service) Inbox(ctx context.Context, userID uint64) (*model.InboxResponse, error) {
	s.logger.Debugw("Inbox called", "user_id", userID)

	received, err := s.repo.ListReceived(ctx, userID)
	if err != nil {
		return nil, err
	}
	sent, err := s.repo.ListSent(ctx, userID)
	if err != nil {
		return nil, err
	}

	receivedViews, err := s.views(ctx, received)
	if err != nil {
		return nil, err
	}
	sentViews, err := s.views(ctx, sent)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.MarkAllRead(ctx, userID); err != nil {
		return nil, err
	}

	return &model.InboxResponse{Received: receivedViews, Sent: sentViews}, nil
}

// views attaches sender and recipient profiles, keeping order.
func (s *service) views(ctx context.Context, messages []model.Message) ([]model.MessageView, error) {
	views := make([]model.MessageView, 0, len(messages))
	if len(messages) == 0 {
		return views, nil
	}

	seen := make(map[uint64]struct{}, len(messages)*2)
	ids := make([]uint64, 0, len(messages)*2)
	for _, m := range messages {
		for _, id := range []uint64{m.SenderID, m.RecipientID} {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	profiles, err := s.profiles.GetProfiles(ctx, ids)
	if err != nil {
		s.logger.Errorw("views failed to load profiles", "error", err)
		return nil, err
	}

	for _, m := range messages {
		view := model.MessageView{Message: m}
		if p, ok := profiles[m.SenderID]; ok {
			view.Sender = &p
		}
		if p, ok := profiles[m.RecipientID]; ok {
			view.Recipient = &p
		}
		views = append(views, view)
	}
	return views, nil
}
