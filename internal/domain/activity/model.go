package activity

import (
	"time"

	topicdomain "chapter-app-go/internal/domain/topic"
	userdomain "chapter-app-go/internal/domain/user"
)

// Status is the derived participation state of an activity. The persisted
// strings are the original enum values and double as the wire format and the
// `estado` filter vocabulary.
type Status string

const (
	// StatusPlanned is the explicit override set through PATCH.
	StatusPlanned Status = "FUE_PLANIFICADA"
	// StatusNotEnough covers fewer than three linked participants. There is
	// no separate zero-participant state; a recompute with an empty roster
	// lands here as well.
	StatusNotEnough Status = "HAY_GENTE_PERO_NO_NECESARIA"
	// StatusEnoughNotPlanned covers three or more linked participants.
	StatusEnoughNotPlanned Status = "YA_HAY_GENTE_PERO_NO_SE_PLANIFICO"
)

// Derive maps a participant count and the planned override to a status.
// Status is recomputed only by the linking and patch operations, never as a
// side effect of other participant changes.
func Derive(participantCount int64, planned bool) Status {
	if planned {
		return StatusPlanned
	}
	if participantCount >= 3 {
		return StatusEnoughNotPlanned
	}
	return StatusNotEnough
}

// Activity is a dated event within a chapter. The date carries a global
// unique constraint: the original schema declared the bare date column
// unique, not (chapter, date), and that scope is preserved.
type Activity struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"column:fecha;type:date;not null;uniqueIndex" json:"fecha"`
	Notes     *string   `gorm:"column:notas" json:"notas"`
	Status    Status    `gorm:"column:estado;not null" json:"estado"`
	ChapterID uint      `gorm:"not null;index" json:"chapterId"`

	Participants []ActivityUser  `gorm:"foreignKey:ActivityID" json:"participants"`
	Topics       []ActivityTopic `gorm:"foreignKey:ActivityID" json:"tematicas"`
}

type ActivityUser struct {
	ActivityID uint `gorm:"primaryKey" json:"activityId"`
	UserID     uint `gorm:"primaryKey" json:"userId"`
	ChapterID  uint `gorm:"not null;index" json:"chapterId"`

	User userdomain.User `gorm:"foreignKey:UserID" json:"user"`
}

type ActivityTopic struct {
	ActivityID uint `gorm:"primaryKey" json:"activityId"`
	TopicID    uint `gorm:"column:tematica_id;primaryKey" json:"tematicaId"`

	Topic topicdomain.Topic `gorm:"foreignKey:TopicID" json:"tematica"`
}

func (ActivityTopic) TableName() string {
	return "activity_tematicas"
}

type CreateInput struct {
	Date      time.Time
	Notes     string
	ChapterID uint
}

// OptionalString distinguishes "field omitted" from "field explicitly set",
// including set to the empty string.
type OptionalString struct {
	Set   bool
	Value string
}

type PatchInput struct {
	Planned *bool
	Notes   OptionalString
}

type ListFilter struct {
	From   *time.Time
	To     *time.Time
	Query  string
	Status string
	Take   int
	Skip   int
}
