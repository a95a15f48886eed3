package model

import (
	userModel "github.com/festy23/travel_together/internal/user/model"
	"github.com/festy23/travel_together/internal/validation"
)

// GroupForm is the group create and edit form. It binds from form or JSON
// bodies; every field is a string so malformed numbers and dates reach the
// validator instead of failing at binding.
type GroupForm struct {
	Title       string `form:"title"       json:"title"`
	Description string `form:"description" json:"description"`
	Destination string `form:"destination" json:"destination"`
	StartDate   string `form:"start_date"  json:"start_date"`
	EndDate     string `form:"end_date"    json:"end_date"`
	BudgetMin   string `form:"budget_min"  json:"budget_min"`
	BudgetMax   string `form:"budget_max"  json:"budget_max"`
	MaxMembers  string `form:"max_members" json:"max_members"`
	Interests   string `form:"interests"   json:"interests"`
}

// Input converts the form to validator input.
func (f *GroupForm) Input() validation.GroupInput {
	return validation.GroupInput{
		Title:       f.Title,
		Description: f.Description,
		Destination: f.Destination,
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		BudgetMin:   f.BudgetMin,
		BudgetMax:   f.BudgetMax,
		MaxMembers:  f.MaxMembers,
		Interests:   f.Interests,
	}
}

// GroupSummary is a group enriched with its creator and approved member count.
type GroupSummary struct {
	TravelGroup
	Creator     *userModel.Profile `json:"creator"`
	MemberCount int64              `json:"member_count"`
}

// GroupDetail is the full view of a single group.
type GroupDetail struct {
	Group         GroupSummary        `json:"group"`
	Members       []userModel.Profile `json:"members"`
	SimilarGroups []GroupSummary      `json:"similar_groups"`
	IsMember      bool                `json:"is_member"`
}

// GroupListResponse is a list of groups.
type GroupListResponse struct {
	Groups []GroupSummary `json:"groups"`
}

// DashboardResponse lists the groups a user created and joined.
type DashboardResponse struct {
	CreatedGroups []GroupSummary `json:"created_groups"`
	JoinedGroups  []GroupSummary `json:"joined_groups"`
}

// DestinationCount is the number of active groups heading to a destination.
type DestinationCount struct {
	Destination string `json:"destination"`
	GroupCount  int64  `json:"group_count"`
}

// RecommendationsResponse lists popular destinations and recent groups.
type RecommendationsResponse struct {
	PopularDestinations []DestinationCount `json:"popular_destinations"`
	RecentGroups        []GroupSummary     `json:"recent_groups"`
}

// GroupResponse is returned after a group is created or edited.
type GroupResponse struct {
	Group    TravelGroup `json:"group"`
	Message  string      `json:"message"`
	Redirect string      `json:"redirect"`
}

// ActionResponse is returned after join and delete.
type ActionResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}
