package forms

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"yatube/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:forms_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Group{}, &models.Post{}))
	return db
}

func TestValidateRejectsEmptyText(t *testing.T) {
	db := openTestDB(t)

	for _, text := range []string{"", "   ", "\n\t"} {
		form := PostForm{Text: text}
		_, errs := form.Validate(db)
		require.NotNil(t, errs, "text %q should fail", text)
		assert.Contains(t, errs, "text")
	}
}

func TestValidateGroupIsOptional(t *testing.T) {
	db := openTestDB(t)

	form := PostForm{Text: "a post without a group"}
	groupID, errs := form.Validate(db)
	require.Nil(t, errs)
	assert.Nil(t, groupID)
}

func TestValidateResolvesExistingGroup(t *testing.T) {
	db := openTestDB(t)
	group := models.Group{Title: "Tech", Slug: "tech", Description: "tech talk"}
	require.NoError(t, db.Create(&group).Error)

	form := PostForm{Text: "grouped post", Group: strconv.Itoa(int(group.ID))}
	groupID, errs := form.Validate(db)
	require.Nil(t, errs)
	require.NotNil(t, groupID)
	assert.Equal(t, group.ID, *groupID)
}

func TestValidateRejectsUnknownOrMalformedGroup(t *testing.T) {
	db := openTestDB(t)

	for _, raw := range []string{"9999", "not-a-number", "-1"} {
		form := PostForm{Text: "some text", Group: raw}
		_, errs := form.Validate(db)
		require.NotNil(t, errs, "group %q should fail", raw)
		assert.Contains(t, errs, "group")
	}
}

func TestValidateCollectsBothFieldErrors(t *testing.T) {
	db := openTestDB(t)

	form := PostForm{Text: "", Group: "bogus"}
	_, errs := form.Validate(db)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "text")
	assert.Contains(t, errs, "group")
}

func TestFromPostPrefillsEditableFields(t *testing.T) {
	gid := uint(7)
	post := models.Post{Text: "existing", GroupID: &gid}

	form := FromPost(&post)
	assert.Equal(t, "existing", form.Text)
	assert.Equal(t, "7", form.Group)

	ungrouped := models.Post{Text: "loner"}
	form = FromPost(&ungrouped)
	assert.Empty(t, form.Group)
}
