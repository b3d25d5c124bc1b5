package model

import "time"

type AnnouncementModel struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Title     string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	Category  string    `gorm:"column:category;type:varchar(100)" json:"category"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}
