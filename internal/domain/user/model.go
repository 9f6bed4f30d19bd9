package user

import (
	"time"

	chapterdomain "chapter-app-go/internal/domain/chapter"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Surname   string    `gorm:"not null" json:"surname"`
	Email     string    `gorm:"not null;uniqueIndex" json:"email"`
	DNI       string    `gorm:"column:dni;not null;uniqueIndex" json:"dni"`
	ChapterID uint      `gorm:"not null;index" json:"chapterId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	Chapter chapterdomain.Chapter `gorm:"foreignKey:ChapterID" json:"chapter"`
}

type CreateInput struct {
	Name      string
	Surname   string
	Email     string
	DNI       string
	ChapterID uint
}
