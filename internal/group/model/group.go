package model

import "time"

// MemberStatusApproved is the status of every membership created by joining.
const MemberStatusApproved = "approved"

// Listing sizes.
const (
	IndexGroupsLimit         = 6
	SimilarGroupsLimit       = 5
	PopularDestinationsLimit = 10
	RecommendedGroupsLimit   = 8
)

// TravelGroup is a planned trip that other users can join.
// Matches the travel_groups table schema.
type TravelGroup struct {
	ID          uint64    `gorm:"primaryKey;column:id"                                                 json:"id"`
	Title       string    `gorm:"column:title;type:varchar(200);not null"                              json:"title"`
	Description string    `gorm:"column:description;type:text;not null"                               json:"description"`
	Destination string    `gorm:"column:destination;type:varchar(100);not null;index:idx_groups_destination" json:"destination"`
	StartDate   time.Time `gorm:"column:start_date;type:date;not null"                                 json:"start_date"`
	EndDate     time.Time `gorm:"column:end_date;type:date;not null"                                   json:"end_date"`
	MaxMembers  int       `gorm:"column:max_members;not null"                                          json:"max_members"`
	BudgetMin   *float64  `gorm:"column:budget_min"                                                    json:"budget_min,omitempty"`
	BudgetMax   *float64  `gorm:"column:budget_max"                                                    json:"budget_max,omitempty"`
	Interests   *string   `gorm:"column:interests;type:text"                                           json:"interests,omitempty"`
	CreatorID   uint64    `gorm:"column:creator_id;not null;index:idx_groups_creator"                  json:"creator_id"`
	IsActive    bool      `gorm:"column:is_active;not null"                                            json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;index:idx_groups_created_at"               json:"created_at"`
}

// TableName specifies the table name for GORM.
func (TravelGroup) TableName() string {
	return "travel_groups"
}

// GroupMember records that a user joined a group.
// Matches the group_members table schema.
type GroupMember struct {
	ID       uint64    `gorm:"primaryKey;column:id"                                                   json:"id"`
	UserID   uint64    `gorm:"column:user_id;not null;uniqueIndex:idx_group_members_group_user,priority:2" json:"user_id"`
	GroupID  uint64    `gorm:"column:group_id;not null;uniqueIndex:idx_group_members_group_user,priority:1" json:"group_id"`
	JoinedAt time.Time `gorm:"column:joined_at;not null;autoCreateTime"                               json:"joined_at"`
	Status   string    `gorm:"column:status;type:varchar(20);not null"                                json:"status"`
}

// TableName specifies the table name for GORM.
func (GroupMember) TableName() string {
	return "group_members"
}
