package dto

import (
	"time"

	"counselconnect/internal/domain/entity"
)

// SetBanRequest toggles a ban flag on a user or group.
type SetBanRequest struct {
	Banned bool `json:"banned"`
}

type UpdatePageRequest struct {
	Description string `json:"description" binding:"required,min=1"`
}

type PageResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UpdatedAt   string `json:"updated_at"`
}

func ToPageResponse(page entity.Page) PageResponse {
	return PageResponse{
		ID:          page.ID,
		Title:       string(page.Title),
		Description: page.Description,
		UpdatedAt:   page.UpdatedAt.Format(time.RFC3339),
	}
}

func ToPageResponses(pages []*entity.Page) []PageResponse {
	out := make([]PageResponse, 0, len(pages))
	for _, p := range pages {
		out = append(out, ToPageResponse(*p))
	}
	return out
}

func ToUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(*u))
	}
	return out
}
