package models

import (
	"html/template"
	"time"

	"yatube/utils"
)

// previewRunes bounds the textual preview used in listings and logs.
const previewRunes = 15

// Post is an authored piece of content, optionally assigned to a group.
// Author is fixed at creation; PubDate never changes after insert.
type Post struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Text     string    `gorm:"type:text;not null" json:"text"`
	PubDate  time.Time `gorm:"index;autoCreateTime" json:"pub_date"`
	AuthorID uint      `gorm:"index;not null" json:"author_id"`
	GroupID  *uint     `gorm:"index" json:"group_id"`
	Author   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	Group    *Group    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"group,omitempty"`
}

// SafeText returns the post body ready for direct HTML rendering. Text is
// stored exactly as submitted; the markup policy is applied here, once, so
// plain text survives the round trip unmangled.
func (p Post) SafeText() template.HTML {
	return template.HTML(utils.Sanitize(p.Text))
}

// Preview returns the opening runes of the post text for compact display.
func (p Post) Preview() string {
	runes := []rune(p.Text)
	if len(runes) <= previewRunes {
		return p.Text
	}
	return string(runes[:previewRunes])
}
