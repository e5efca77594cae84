package dto

import (
	"time"

	"counselconnect/internal/domain/entity"
	usecasecontract "counselconnect/internal/usecase/contract"
)

type CreateGroupRequest struct {
	Name        string   `json:"name" binding:"required,min=3,max=100"`
	Description string   `json:"description" binding:"omitempty,max=500"`
	Tags        []string `json:"tags" binding:"omitempty,max=10"`
	Image       string   `json:"image" binding:"omitempty,url"`
}

type GroupResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags"`
	CreatedBy   string   `json:"created_by"`
	Admins      []string `json:"admins"`
	Members     []string `json:"members"`
	MemberCount int      `json:"member_count"`
	IsBanned    bool     `json:"is_banned"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func ToGroupResponse(group entity.Group) GroupResponse {
	return GroupResponse{
		ID:          group.ID,
		Name:        group.Name,
		Image:       group.Image,
		Description: group.Description,
		Tags:        group.Tags,
		CreatedBy:   group.CreatedBy,
		Admins:      group.Admins,
		Members:     group.Members,
		MemberCount: len(group.Members),
		IsBanned:    group.IsBanned,
		CreatedAt:   group.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   group.UpdatedAt.Format(time.RFC3339),
	}
}

func ToGroupResponses(groups []*entity.Group) []GroupResponse {
	out := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, ToGroupResponse(*g))
	}
	return out
}

// RateUserRequest names the member being rated.
type RateUserRequest struct {
	RateeID string `json:"ratee_id" binding:"required"`
}

type RatingResponse struct {
	Rated bool  `json:"rated"`
	Total int64 `json:"total"`
}

func ToRatingResponse(result usecasecontract.RatingResult) RatingResponse {
	return RatingResponse{Rated: result.Rated, Total: result.Total}
}

type TagCountResponse struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}

func ToTagCountResponses(tags []entity.TagCount) []TagCountResponse {
	out := make([]TagCountResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, TagCountResponse{Tag: t.Tag, Count: t.Count})
	}
	return out
}
