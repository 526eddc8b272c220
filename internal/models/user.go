package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Username string     `gorm:"uniqueIndex;not null" json:"username"`
	Email    string     `gorm:"uniqueIndex;not null" json:"email"`
	FullName string     `json:"full_name"`
	Avatar   string     `json:"avatar"`
	Bio      string     `gorm:"type:varchar(200)" json:"bio"`
	IsOnline bool       `gorm:"default:false" json:"is_online"`
	LastSeen *time.Time `json:"last_seen"`

	Comments      []Comment      `gorm:"foreignKey:AuthorID" json:"-"`
	Notifications []Notification `gorm:"foreignKey:RecipientID" json:"-"`
}

type UserResponse struct {
	ID       uint       `json:"id"`
	Username string     `json:"username"`
	FullName string     `json:"full_name"`
	Avatar   string     `json:"avatar"`
	Bio      string     `json:"bio"`
	IsOnline bool       `json:"is_online"`
	LastSeen *time.Time `json:"last_seen"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Avatar:   u.Avatar,
		Bio:      u.Bio,
		IsOnline: u.IsOnline,
		LastSeen: u.LastSeen,
	}
}
