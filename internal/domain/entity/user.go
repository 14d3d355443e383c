package entity

import "time"

type User struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	HashedPW  string    `json:"-" gorm:"column:hashed_pw;size:255;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
