package chapter

// Chapter is the tenant boundary: users, topics and activities all hang off
// one chapter. Chapters are reference data; this service never mutates them.
type Chapter struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"not null;uniqueIndex" json:"slug"`
}

// Ref identifies a chapter by numeric id or by slug. When both are present
// the id wins.
type Ref struct {
	ID   uint
	Slug string
}

func (r Ref) IsZero() bool {
	return r.ID == 0 && r.Slug == ""
}
