package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"yatube/config"
	"yatube/forms"
	"yatube/middleware"
	"yatube/models"
	"yatube/utils"
)

// PostController serves the listing, detail, create and edit pages.
type PostController struct {
	db *gorm.DB
}

// NewPostController creates a new PostController instance.
func NewPostController(db *gorm.DB) *PostController {
	return &PostController{db: db}
}

// Index renders the front page with all posts, newest first.
func (p *PostController) Index(ctx *gin.Context) {
	posts, err := models.AllPosts(p.db)
	if err != nil {
		renderServerError(ctx, err)
		return
	}
	render(ctx, http.StatusOK, "index.html", gin.H{
		"PageObj": p.paginate(ctx, posts),
	})
}

// GroupPosts renders one group's posts.
func (p *PostController) GroupPosts(ctx *gin.Context) {
	group, err := models.GroupBySlug(p.db, ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderNotFound(ctx)
			return
		}
		renderServerError(ctx, err)
		return
	}

	posts, err := models.PostsByGroup(p.db, group.ID)
	if err != nil {
		renderServerError(ctx, err)
		return
	}
	render(ctx, http.StatusOK, "group_list.html", gin.H{
		"Group":   group,
		"PageObj": p.paginate(ctx, posts),
	})
}

// Profile renders one author's posts.
func (p *PostController) Profile(ctx *gin.Context) {
	author, err := models.UserByUsername(p.db, ctx.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderNotFound(ctx)
			return
		}
		renderServerError(ctx, err)
		return
	}

	posts, err := models.PostsByAuthor(p.db, author.ID)
	if err != nil {
		renderServerError(ctx, err)
		return
	}
	render(ctx, http.StatusOK, "profile.html", gin.H{
		"Author":  author,
		"PageObj": p.paginate(ctx, posts),
	})
}

// Detail renders a single post.
func (p *PostController) Detail(ctx *gin.Context) {
	post, ok := p.loadPost(ctx)
	if !ok {
		return
	}
	render(ctx, http.StatusOK, "post_detail.html", gin.H{
		"Post":   post,
		"Author": post.Author,
	})
}

// CreateForm renders an empty post editor.
func (p *PostController) CreateForm(ctx *gin.Context) {
	p.renderEditor(ctx, forms.PostForm{}, nil, false, nil)
}

// Create persists a new post. The author is always the session user; any
// submitted author field is ignored.
func (p *PostController) Create(ctx *gin.Context) {
	user, ok := middleware.GetCurrentUser(ctx)
	if !ok {
		ctx.Redirect(http.StatusFound, middleware.LoginURL+"?next="+ctx.Request.URL.Path)
		return
	}

	var form forms.PostForm
	_ = ctx.ShouldBind(&form)

	groupID, errs := form.Validate(p.db)
	if errs != nil {
		p.renderEditor(ctx, form, errs, false, nil)
		return
	}

	post := models.Post{
		Text:     form.Text,
		GroupID:  groupID,
		AuthorID: user.ID,
	}
	if err := p.db.Create(&post).Error; err != nil {
		renderServerError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

// EditForm renders the editor prefilled with the post's current fields.
// Only the author may edit; everyone else is sent back to the detail page.
func (p *PostController) EditForm(ctx *gin.Context) {
	post, ok := p.loadPost(ctx)
	if !ok {
		return
	}
	if !p.requireAuthor(ctx, post) {
		return
	}
	p.renderEditor(ctx, forms.FromPost(post), nil, true, post)
}

// Edit applies changes to text/group only. ID, author and pub_date never change.
func (p *PostController) Edit(ctx *gin.Context) {
	post, ok := p.loadPost(ctx)
	if !ok {
		return
	}
	if !p.requireAuthor(ctx, post) {
		return
	}

	var form forms.PostForm
	_ = ctx.ShouldBind(&form)

	groupID, errs := form.Validate(p.db)
	if errs != nil {
		p.renderEditor(ctx, form, errs, true, post)
		return
	}

	if err := models.UpdatePostContent(p.db, post, form.Text, groupID); err != nil {
		renderServerError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, detailPath(post.ID))
}

// paginate windows the post list according to ?page= and the configured size.
func (p *PostController) paginate(ctx *gin.Context, posts []models.Post) utils.Page[models.Post] {
	return utils.Paginate(posts, config.Get().PostsPerPage, utils.ParsePageParam(ctx.Query("page")))
}

// loadPost resolves the :id path parameter. A missing or malformed id renders
// the not-found page and returns ok=false.
func (p *PostController) loadPost(ctx *gin.Context) (*models.Post, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		renderNotFound(ctx)
		return nil, false
	}

	post, err := models.PostByID(p.db, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderNotFound(ctx)
			return nil, false
		}
		renderServerError(ctx, err)
		return nil, false
	}
	return post, true
}

// requireAuthor redirects non-authors to the detail page without surfacing an
// error, and reports whether the request may proceed.
func (p *PostController) requireAuthor(ctx *gin.Context, post *models.Post) bool {
	user, ok := middleware.GetCurrentUser(ctx)
	if !ok || user.ID != post.AuthorID {
		ctx.Redirect(http.StatusFound, detailPath(post.ID))
		return false
	}
	return true
}

func (p *PostController) renderEditor(ctx *gin.Context, form forms.PostForm, errs forms.Errors, isEdit bool, post *models.Post) {
	groups, err := models.AllGroups(p.db)
	if err != nil {
		renderServerError(ctx, err)
		return
	}
	render(ctx, http.StatusOK, "create_post.html", gin.H{
		"Form":   form,
		"Errors": errs,
		"IsEdit": isEdit,
		"Post":   post,
		"Groups": groups,
	})
}

func detailPath(id uint) string {
	return "/posts/" + strconv.FormatUint(uint64(id), 10) + "/"
}
