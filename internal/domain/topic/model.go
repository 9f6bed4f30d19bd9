package topic

import "time"

// Topic is a proposed discussion subject for a chapter. The table and wire
// names keep the original vocabulary: the label is "tematica", the used flag
// is "usada".
type Topic struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Label     string    `gorm:"column:tematica;not null" json:"tematica"`
	Used      bool      `gorm:"column:usada;not null;default:false" json:"usada"`
	ChapterID uint      `gorm:"not null;index" json:"chapterId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Topic) TableName() string {
	return "tematicas"
}

type ListFilter struct {
	Query string
	Take  int
	Skip  int
}
