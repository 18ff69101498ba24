// Package forms validates submitted field data before anything is persisted.
// Validation never saves: handlers attach the author themselves, so clients
// cannot spoof authorship through extra form fields.
package forms

import (
	"strconv"
	"strings"

	"gorm.io/gorm"

	"yatube/models"
)

// PostForm carries the raw submitted fields of the post editor.
type PostForm struct {
	Text  string `form:"text"`
	Group string `form:"group"`
}

// Errors maps field names to validation messages.
type Errors map[string]string

// Validate checks field rules against the store. On success the returned
// group id is ready to bind onto a Post (nil when no group was chosen).
func (f *PostForm) Validate(db *gorm.DB) (*uint, Errors) {
	errs := Errors{}

	if strings.TrimSpace(f.Text) == "" {
		errs["text"] = "Post text is required."
	}

	var groupID *uint
	if strings.TrimSpace(f.Group) != "" {
		id, err := strconv.ParseUint(strings.TrimSpace(f.Group), 10, 32)
		if err != nil {
			errs["group"] = "Select a valid group."
		} else {
			var group models.Group
			if err := db.First(&group, uint(id)).Error; err != nil {
				errs["group"] = "Select a valid group."
			} else {
				gid := group.ID
				groupID = &gid
			}
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return groupID, nil
}

// FromPost prefills the form with a post's current editable fields.
func FromPost(post *models.Post) PostForm {
	form := PostForm{Text: post.Text}
	if post.GroupID != nil {
		form.Group = strconv.FormatUint(uint64(*post.GroupID), 10)
	}
	return form
}
