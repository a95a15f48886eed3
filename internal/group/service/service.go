// Package service provides business logic layer for group module.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/travel_together/internal/group/model"
	"github.com/festy23/travel_together/internal/group/repository"
	userModel "github.com/festy23/travel_together/internal/user/model"
	"github.com/festy23/travel_together/internal/validation"
)

// ProfileReader resolves public user profiles.
type ProfileReader interface {
	GetProfiles(ctx context.Context, ids []uint64) (map[uint64]userModel.Profile, error)
}

// Service defines the interface for group business logic operations.
type Service interface {
	// Create validates the form and stores a new active group owned by creatorID.
	// Violations are returned as *validation.Error.
	Create(ctx context.Context, creatorID uint64, form *model.GroupForm) (*model.TravelGroup, error)

	// Edit validates the form against the current membership and overwrites the group.
	Edit(ctx context.Context, groupID, userID uint64, form *model.GroupForm) (*model.TravelGroup, error)

	// Delete removes a group owned by userID.
	Delete(ctx context.Context, groupID, userID uint64) error

	// Join adds userID as an approved member.
	Join(ctx context.Context, groupID, userID uint64) error

	// Index returns the most recently created groups.
	Index(ctx context.Context) ([]model.GroupSummary, error)

	// Browse returns every group, newest first.
	Browse(ctx context.Context) ([]model.GroupSummary, error)

	// View returns a group with members and similar groups. viewerID 0 means anonymous.
	View(ctx context.Context, groupID, viewerID uint64) (*model.GroupDetail, error)

	// Dashboard returns the groups a user created and joined.
	Dashboard(ctx context.Context, userID uint64) (*model.DashboardResponse, error)

	// Recommendations returns popular destinations and recent active groups.
	Recommendations(ctx context.Context) (*model.RecommendationsResponse, error)
}

type service struct {
	repo     repository.Repository
	db       *gorm.DB
	profiles ProfileReader
	logger   *zap.SugaredLogger
}

// New creates a new group service instance.
func New(
	repo repository.Repository,
	db *gorm.DB,
	profiles ProfileReader,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:     repo,
		db:       db,
		profiles: profiles,
		logger:   logger,
	}
}

// Create validates the form and stores a new group.
func (s *service) Create(ctx context.Context, creatorID uint64, form *model.GroupForm) (*model.TravelGroup, error) {
	s.logger.Debugw("Create called", "creator_id", creatorID)

	values, violations := validation.Group(form.Input(), validation.GroupRules{IsNew: true})
	if err := validation.NewError(violations); err != nil {
		s.logger.Debugw("Create rejected", "creator_id", creatorID, "violations", len(violations))
		return nil, err
	}

	group := &model.TravelGroup{CreatorID: creatorID, IsActive: true}
	apply(group, values)

	if err := s.repo.Create(ctx, group); err != nil {
		return nil, err
	}

	s.logger.Infow("Create completed", "group_id", group.ID, "creator_id", creatorID)
	return group, nil
}

// Edit validates the form and overwrites the group in a transaction.
func (s *service) Edit(
	ctx context.Context,
	groupID, userID uint64,
	form *model.GroupForm,
) (*model.TravelGroup, error) {
	s.logger.Debugw("Edit called", "group_id", groupID, "user_id", userID)

	var group *model.TravelGroup
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		var err error
		group, err = ownedGroup(ctx, txRepo, groupID, userID)
		if err != nil {
			return err
		}

		members, err := txRepo.CountMembers(ctx, groupID)
		if err != nil {
			return err
		}

		values, violations := validation.Group(form.Input(), validation.GroupRules{CurrentMembers: members})
		if err := validation.NewError(violations); err != nil {
			return err
		}

		apply(group, values)
		return txRepo.Update(ctx, group)
	})

	if err != nil {
		s.logger.Debugw("Edit failed", "group_id", groupID, "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Infow("Edit completed", "group_id", groupID)
	return group, nil
}

// Delete removes a group with its memberships in a transaction.
func (s *service) Delete(ctx context.Context, groupID, userID uint64) error {
	s.logger.Debugw("Delete called", "group_id", groupID, "user_id", userID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		if _, err := ownedGroup(ctx, txRepo, groupID, userID); err != nil {
			return err
		}
		return txRepo.Delete(ctx, groupID)
	})

	if err != nil {
		s.logger.Debugw("Delete failed", "group_id", groupID, "user_id", userID, "error", err)
		return err
	}

	s.logger.Infow("Delete completed", "group_id", groupID)
	return nil
}

// Join adds an approved membership when the group has room.
func (s *service) Join(ctx context.Context, groupID, userID uint64) error {
	s.logger.Debugw("Join called", "group_id", groupID, "user_id", userID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		group, err := txRepo.LockByID(ctx, groupID)
		if err != nil {
			return err
		}

		isMember, err := txRepo.IsMember(ctx, groupID, userID)
		if err != nil {
			return err
		}
		if isMember {
			return model.ErrAlreadyMember
		}

		count, err := txRepo.CountMembers(ctx, groupID)
		if err != nil {
			return err
		}
		if count >= int64(group.MaxMembers) {
			return model.ErrGroupFull
		}

		return txRepo.AddMember(ctx, &model.GroupMember{
			GroupID: groupID,
			UserID:  userID,
			Status:  model.MemberStatusApproved,
		})
	})

	if err != nil {
		s.logger.Debugw("Join failed", "group_id", groupID, "user_id", userID, "error", err)
		return err
	}

	s.logger.Infow("Join completed", "group_id", groupID, "user_id", userID)
	return nil
}

// Index returns the most recently created groups.
func (s *service) Index(ctx context.Context) ([]model.GroupSummary, error) {
	groups, err := s.repo.ListRecent(ctx, repository.ListOptions{Limit: model.IndexGroupsLimit})
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, groups)
}

// Browse returns every group, newest first.
func (s *service) Browse(ctx context.Context) ([]model.GroupSummary, error) {
	groups, err := s.repo.ListRecent(ctx, repository.ListOptions{})
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, groups)
}

// View returns the full view of a group.
func (s *service) View(ctx context.Context, groupID, viewerID uint64) (*model.GroupDetail, error) {
	s.logger.Debugw("View called", "group_id", groupID, "viewer_id", viewerID)

	group, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	summaries, err := s.summarize(ctx, []model.TravelGroup{*group})
	if err != nil {
		return nil, err
	}

	members, err := s.repo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	similar, err := s.repo.ListByDestination(ctx, group.Destination, groupID, model.SimilarGroupsLimit)
	if err != nil {
		return nil, err
	}
	similarSummaries, err := s.summarize(ctx, similar)
	if err != nil {
		return nil, err
	}

	detail := &model.GroupDetail{
		Group:         summaries[0],
		Members:       members,
		SimilarGroups: similarSummaries,
	}

	if viewerID != 0 {
		detail.IsMember, err = s.repo.IsMember(ctx, groupID, viewerID)
		if err != nil {
			return nil, err
		}
	}

	return detail, nil
}

// Dashboard returns the groups a user created and joined.
func (s *service) Dashboard(ctx context.Context, userID uint64) (*model.DashboardResponse, error) {
	s.logger.Debugw("Dashboard called", "user_id", userID)

	created, err := s.repo.ListByCreator(ctx, userID)
	if err != nil {
		return nil, err
	}
	joined, err := s.repo.ListJoined(ctx, userID)
	if err != nil {
		return nil, err
	}

	createdSummaries, err := s.summarize(ctx, created)
	if err != nil {
		return nil, err
	}
	joinedSummaries, err := s.summarize(ctx, joined)
	if err != nil {
		return nil, err
	}

	return &model.DashboardResponse{
		CreatedGroups: createdSummaries,
		JoinedGroups:  joinedSummaries,
	}, nil
}

// Recommendations returns popular destinations and recent active groups.
func (s *service) Recommendations(ctx context.Context) (*model.RecommendationsResponse, error) {
	destinations, err := s.repo.PopularDestinations(ctx, model.PopularDestinationsLimit)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.ListRecent(ctx, repository.ListOptions{
		Limit:      model.RecommendedGroupsLimit,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, err
	}
	summaries, err := s.summarize(ctx, recent)
	if err != nil {
		return nil, err
	}

	return &model.RecommendationsResponse{
		PopularDestinations: destinations,
		RecentGroups:        summaries,
	}, nil
}

// summarize attaches creator profiles and approved member counts, keeping order.
func (s *service) summarize(ctx context.Context, groups []model.TravelGroup) ([]model.GroupSummary, error) {
	summaries := make([]model.GroupSummary, 0, len(groups))
	if len(groups) == 0 {
		return summaries, nil
	}

	groupIDs := make([]uint64, 0, len(groups))
	creatorIDs := make([]uint64, 0, len(groups))
	for _, g := range groups {
		groupIDs = append(groupIDs, g.ID)
		creatorIDs = append(creatorIDs, g.CreatorID)
	}

	counts, err := s.repo.CountMembersByGroup(ctx, groupIDs)
	if err != nil {
		return nil, err
	}
	profiles, err := s.profiles.GetProfiles(ctx, creatorIDs)
	if err != nil {
		s.logger.Errorw("summarize failed to load creators", "error", err)
		return nil, err
	}

	for _, g := range groups {
		summary := model.GroupSummary{TravelGroup: g, MemberCount: counts[g.ID]}
		if p, ok := profiles[g.CreatorID]; ok {
			summary.Creator = &p
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// ownedGroup locks the group and checks that userID created it.
func ownedGroup(ctx context.Context, repo repository.Repository, groupID, userID uint64) (*model.TravelGroup, error) {
	group, err := repo.LockByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.CreatorID != userID {
		return nil, model.ErrNotGroupCreator
	}
	return group, nil
}

func apply(group *model.TravelGroup, values *validation.GroupValues) {
	group.Title = values.Title
	group.Description = values.Description
	group.Destination = values.Destination
	group.StartDate = values.StartDate
	group.EndDate = values.EndDate
	group.BudgetMin = values.BudgetMin
	group.BudgetMax = values.BudgetMax
	group.MaxMembers = values.MaxMembers
	group.Interests = values.Interests
}

