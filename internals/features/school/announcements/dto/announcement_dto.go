package dto

import (
	"time"

	"school_backend/internals/features/school/announcements/model"
)

type AnnouncementDTO struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// SaveAnnouncementRequest covers create and update; the creation
// timestamp is server-assigned and never client-writable.
type SaveAnnouncementRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category"`
}

func ToAnnouncementDTO(m model.AnnouncementModel) AnnouncementDTO {
	return AnnouncementDTO{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Category:  m.Category,
		CreatedAt: m.CreatedAt,
	}
}

func ToAnnouncementDTOs(ms []model.AnnouncementModel) []AnnouncementDTO {
	out := make([]AnnouncementDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToAnnouncementDTO(m))
	}
	return out
}
