package models

// Group is a named topical category posts may belong to.
// The slug is the stable URL key; once linked it is never rewritten.
type Group struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Slug        string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text;not null" json:"description"`
}
