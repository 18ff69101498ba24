package models

import "gorm.io/gorm"

// Query helpers keep relationship traversal explicit: handlers always call a
// named query instead of walking lazy associations.

// postOrder is the default read ordering, newest first with a stable tiebreak.
const postOrder = "pub_date DESC, id DESC"

// AllPosts returns every post, newest first, with author and group loaded.
func AllPosts(db *gorm.DB) ([]Post, error) {
	var posts []Post
	err := db.Preload("Author").Preload("Group").Order(postOrder).Find(&posts).Error
	return posts, err
}

// AllGroups returns every group ordered by title, for the form's group choices.
func AllGroups(db *gorm.DB) ([]Group, error) {
	var groups []Group
	err := db.Order("title").Find(&groups).Error
	return groups, err
}

// GroupBySlug resolves a group by its slug. Returns gorm.ErrRecordNotFound when absent.
func GroupBySlug(db *gorm.DB, slug string) (*Group, error) {
	var group Group
	if err := db.Where("slug = ?", slug).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// UserByUsername resolves a user by username. Returns gorm.ErrRecordNotFound when absent.
func UserByUsername(db *gorm.DB, username string) (*User, error) {
	var user User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// PostsByGroup returns the group's posts, newest first.
func PostsByGroup(db *gorm.DB, groupID uint) ([]Post, error) {
	var posts []Post
	err := db.Where("group_id = ?", groupID).Preload("Author").Preload("Group").Order(postOrder).Find(&posts).Error
	return posts, err
}

// PostsByAuthor returns the author's posts, newest first.
func PostsByAuthor(db *gorm.DB, authorID uint) ([]Post, error) {
	var posts []Post
	err := db.Where("author_id = ?", authorID).Preload("Author").Preload("Group").Order(postOrder).Find(&posts).Error
	return posts, err
}

// PostByID resolves a single post with author and group loaded.
// Returns gorm.ErrRecordNotFound when absent.
func PostByID(db *gorm.DB, id uint) (*Post, error) {
	var post Post
	if err := db.Preload("Author").Preload("Group").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePostContent rewrites only the editable columns. ID, author and
// pub_date stay untouched regardless of what the caller's struct holds.
func UpdatePostContent(db *gorm.DB, post *Post, text string, groupID *uint) error {
	if err := db.Model(post).Updates(map[string]interface{}{
		"text":     text,
		"group_id": groupID,
	}).Error; err != nil {
		return err
	}
	post.Text = text
	post.GroupID = groupID
	return nil
}

// DeleteGroup removes a group after clearing the reference on its posts, so
// posts survive their group (SET NULL semantics made explicit and portable).
func DeleteGroup(db *gorm.DB, group *Group) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Post{}).Where("group_id = ?", group.ID).Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(group).Error
	})
}
