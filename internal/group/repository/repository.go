// Package repository provides data access layer for travel groups and memberships.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/travel_together/internal/database/database"
	"github.com/festy23/travel_together/internal/group/model"
	userModel "github.com/festy23/travel_together/internal/user/model"
)

// ListOptions narrows group listings.
type ListOptions struct {
	// Limit caps the result size, zero means no limit.
	Limit int
	// ActiveOnly skips inactive groups.
	ActiveOnly bool
}

// Repository defines the interface for group data access operations.
type Repository interface {
	// Create inserts a group.
	Create(ctx context.Context, group *model.TravelGroup) error

	// Update overwrites every editable column of a group.
	Update(ctx context.Context, group *model.TravelGroup) error

	// Delete removes a group and its memberships and detaches its messages.
	// Callers run it inside a transaction.
	Delete(ctx context.Context, groupID uint64) error

	// GetByID finds group by id.
	GetByID(ctx context.Context, groupID uint64) (*model.TravelGroup, error)

	// LockByID finds group by id and locks its row until the transaction ends.
	LockByID(ctx context.Context, groupID uint64) (*model.TravelGroup, error)

	// ListRecent returns groups newest first.
	ListRecent(ctx context.Context, opts ListOptions) ([]model.TravelGroup, error)

	// ListByCreator returns the active groups a user created, newest first.
	ListByCreator(ctx context.Context, creatorID uint64) ([]model.TravelGroup, error)

	// ListJoined returns active groups the user is an approved member of,
	// excluding groups the user created.
	ListJoined(ctx context.Context, userID uint64) ([]model.TravelGroup, error)

	// ListByDestination returns active groups with the same destination,
	// excluding excludeID.
	ListByDestination(ctx context.Context, destination string, excludeID uint64, limit int) ([]model.TravelGroup, error)

	// PopularDestinations ranks destinations by active group count.
	PopularDestinations(ctx context.Context, limit int) ([]model.DestinationCount, error)

	// CountMembers returns the approved member count of a group.
	CountMembers(ctx context.Context, groupID uint64) (int64, error)

	// CountMembersByGroup returns approved member counts keyed by group id.
	CountMembersByGroup(ctx context.Context, groupIDs []uint64) (map[uint64]int64, error)

	// ListMembers returns the profiles of approved members in join order.
	ListMembers(ctx context.Context, groupID uint64) ([]userModel.Profile, error)

	// IsMember reports whether the user has any membership in the group.
	IsMember(ctx context.Context, groupID, userID uint64) (bool, error)

	// AddMember inserts a membership. Returns ErrAlreadyMember on conflict.
	AddMember(ctx context.Context, member *model.GroupMember) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new group repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

const newestFirst = "created_at DESC, id DESC"

// Create inserts a group.
func (r *repository) Create(ctx context.Context, group *model.TravelGroup) error {
	r.logger.Debugw("Create called", "title", group.Title, "creator_id", group.CreatorID)

	if err := r.db.WithContext(ctx).Create(group).Error; err != nil {
		r.logger.Errorw("Create database error", "creator_id", group.CreatorID, "error", err)
		return err
	}

	r.logger.Infow("Create completed", "group_id", group.ID, "creator_id", group.CreatorID)
	return nil
}

// Update overwrites every editable column of a group.
func (r *repository) Update(ctx context.Context, group *model.TravelGroup) error {
	r.logger.Debugw("Update called", "group_id", group.ID)

	result := r.db.WithContext(ctx).
		Model(&model.TravelGroup{}).
		Where("id = ?", group.ID).
		Select("title", "description", "destination", "start_date", "end_date",
			"max_members", "budget_min", "budget_max", "interests").
		Updates(group)

	if result.Error != nil {
		r.logger.Errorw("Update database error", "group_id", group.ID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrGroupNotFound
	}

	r.logger.Infow("Update completed", "group_id", group.ID)
	return nil
}

// Delete removes a group with its memberships and detaches its messages.
func (r *repository) Delete(ctx context.Context, groupID uint64) error {
	r.logger.Debugw("Delete called", "group_id", groupID)
	db := r.db.WithContext(ctx)

	if err := db.Where("group_id = ?", groupID).Delete(&model.GroupMember{}).Error; err != nil {
		r.logger.Errorw("Delete members database error", "group_id", groupID, "error", err)
		return err
	}
	if err := db.Table("messages").Where("group_id = ?", groupID).Update("group_id", nil).Error; err != nil {
		r.logger.Errorw("Delete detach messages database error", "group_id", groupID, "error", err)
		return err
	}

	result := db.Delete(&model.TravelGroup{}, groupID)
	if result.Error != nil {
		r.logger.Errorw("Delete database error", "group_id", groupID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrGroupNotFound
	}

	r.logger.Infow("Delete completed", "group_id", groupID)
	return nil
}

// GetByID finds group by id.
func (r *repository) GetByID(ctx context.Context, groupID uint64) (*model.TravelGroup, error) {
	return r.first(r.db.WithContext(ctx), "GetByID", groupID)
}

// LockByID finds group by id with SELECT ... FOR UPDATE. SQLite has no row
// locks and its driver drops the clause; its writes are serialized anyway.
func (r *repository) LockByID(ctx context.Context, groupID uint64) (*model.TravelGroup, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), "LockByID", groupID)
}

func (r *repository) first(query *gorm.DB, op string, groupID uint64) (*model.TravelGroup, error) {
	r.logger.Debugw(op+" called", "group_id", groupID)

	var group model.TravelGroup
	err := query.First(&group, groupID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw(op+" group not found", "group_id", groupID)
			return nil, model.ErrGroupNotFound
		}
		r.logger.Errorw(op+" database error", "group_id", groupID, "error", err)
		return nil, err
	}

	return &group, nil
}

// ListRecent returns groups newest first.
func (r *repository) ListRecent(ctx context.Context, opts ListOptions) ([]model.TravelGroup, error) {
	r.logger.Debugw("ListRecent called", "limit", opts.Limit, "active_only", opts.ActiveOnly)

	query := r.db.WithContext(ctx).Order(newestFirst)
	if opts.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	return r.find(query, "ListRecent")
}

// ListByCreator returns the active groups a user created.
func (r *repository) ListByCreator(ctx context.Context, creatorID uint64) ([]model.TravelGroup, error) {
	r.logger.Debugw("ListByCreator called", "creator_id", creatorID)

	query := r.db.WithContext(ctx).
		Where("creator_id = ? AND is_active = ?", creatorID, true).
		Order(newestFirst)
	return r.find(query, "ListByCreator")
}

// ListJoined returns active groups the user joined but did not create.
func (r *repository) ListJoined(ctx context.Context, userID uint64) ([]model.TravelGroup, error) {
	r.logger.Debugw("ListJoined called", "user_id", userID)

	query := r.db.WithContext(ctx).
		Joins("JOIN group_members ON group_members.group_id = travel_groups.id").
		Where("group_members.user_id = ? AND group_members.status = ?", userID, model.MemberStatusApproved).
		Where("travel_groups.is_active = ? AND travel_groups.creator_id <> ?", true, userID).
		Order("group_members.joined_at DESC, travel_groups.id DESC")
	return r.find(query, "ListJoined")
}

// ListByDestination returns other active groups with the same destination.
func (r *repository) ListByDestination(
	ctx context.Context,
	destination string,
	excludeID uint64,
	limit int,
) ([]model.TravelGroup, error) {
	r.logger.Debugw("ListByDestination called", "destination", destination, "exclude_id", excludeID)

	query := r.db.WithContext(ctx).
		Where("destination = ? AND id <> ? AND is_active = ?", destination, excludeID, true).
		Order(newestFirst).
		Limit(limit)
	return r.find(query, "ListByDestination")
}

func (r *repository) find(query *gorm.DB, op string) ([]model.TravelGroup, error) {
	var groups []model.TravelGroup
	if err := query.Find(&groups).Error; err != nil {
		r.logger.Errorw(op+" database error", "error", err)
		return nil, err
	}
	if groups == nil {
		groups = []model.TravelGroup{}
	}
	r.logger.Debugw(op+" completed", "count", len(groups))
	return groups, nil
}

// PopularDestinations ranks destinations by active group count.
func (r *repository) PopularDestinations(ctx context.Context, limit int) ([]model.DestinationCount, error) {
	r.logger.Debugw("PopularDestinations called", "limit", limit)

	var rows []model.DestinationCount
	err := r.db.WithContext(ctx).
		Model(&model.TravelGroup{}).
		Select("destination, COUNT(id) AS group_count").
		Where("is_active = ?", true).
		Group("destination").
		Order("group_count DESC, destination ASC").
		Limit(limit).
		Scan(&rows).Error

	if err != nil {
		r.logger.Errorw("PopularDestinations database error", "error", err)
		return nil, err
	}
	if rows == nil {
		rows = []model.DestinationCount{}
	}
	return rows, nil
}

// CountMembers returns the approved member count of a group.
func (r *repository) CountMembers(ctx context.Context, groupID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.GroupMember{}).
		Where("group_id = ? AND status = ?", groupID, model.MemberStatusApproved).
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("CountMembers database error", "group_id", groupID, "error", err)
		return 0, err
	}
	return count, nil
}

// CountMembersByGroup returns approved member counts keyed by group id.
func (r *repository) CountMembersByGroup(ctx context.Context, groupIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(groupIDs))
	if len(groupIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		GroupID uint64
		Members int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.GroupMember{}).
		Select("group_id, COUNT(id) AS members").
		Where("group_id IN ? AND status = ?", groupIDs, model.MemberStatusApproved).
		Group("group_id").
		Scan(&rows).Error

	if err != nil {
		r.logger.Errorw("CountMembersByGroup database error", "error", err)
		return nil, err
	}
	for _, row := range rows {
		counts[row.GroupID] = row.Members
	}
	return counts, nil
}

// ListMembers returns the profiles of approved members in join order.
func (r *repository) ListMembers(ctx context.Context, groupID uint64) ([]userModel.Profile, error) {
	r.logger.Debugw("ListMembers called", "group_id", groupID)

	var members []userModel.Profile
	err := r.db.WithContext(ctx).
		Table("group_members").
		Select("users.id, users.username, users.first_name, users.last_name").
		Joins("JOIN users ON users.id = group_members.user_id").
		Where("group_members.group_id = ? AND group_members.status = ?", groupID, model.MemberStatusApproved).
		Order("group_members.joined_at ASC, group_members.id ASC").
		Scan(&members).Error

	if err != nil {
		r.logger.Errorw("ListMembers database error", "group_id", groupID, "error", err)
		return nil, err
	}
	if members == nil {
		members = []userModel.Profile{}
	}
	return members, nil
}

// IsMember reports whether the user has a membership in the group.
func (r *repository) IsMember(ctx context.Context, groupID, userID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("IsMember database error", "group_id", groupID, "user_id", userID, "error", err)
		return false, err
	}
	return count > 0, nil
}

// AddMember inserts a membership.
func (r *repository) AddMember(ctx context.Context, member *model.GroupMember) error {
	r.logger.Debugw("AddMember called", "group_id", member.GroupID, "user_id", member.UserID)

	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		if database.IsDuplicateError(err) {
			return model.ErrAlreadyMember
		}
		r.logger.Errorw("AddMember database error", "group_id", member.GroupID, "user_id", member.UserID, "error", err)
		return err
	}

	r.logger.Infow("AddMember completed", "group_id", member.GroupID, "user_id", member.UserID)
	return nil
}
