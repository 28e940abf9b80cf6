package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-content-site/internal/categories"
	"github.com/goliatone/go-content-site/internal/content"
	"github.com/goliatone/go-content-site/internal/exercises"
	"github.com/goliatone/go-content-site/internal/filter"
	"github.com/goliatone/go-content-site/internal/markup"
)

// postView is a post with its rendered body and plain-text excerpt.
type postView struct {
	content.Post
	HTML    markup.SafeHTML `json:"html"`
	Excerpt string          `json:"excerpt"`
	Tags    []string        `json:"tags,omitempty"`
}

type categoryPageView struct {
	Slug  string     `json:"slug"`
	Title string     `json:"title"`
	Posts []postView `json:"posts"`
}

type subscribePayload struct {
	Email string `json:"email"`
}

type renderPayload struct {
	Markdown string `json:"markdown"`
}

type renderResponse struct {
	HTML    markup.SafeHTML `json:"html"`
	Excerpt string          `json:"excerpt"`
}

func (api *SiteAPI) present(posts []content.Post) []postView {
	views := make([]postView, 0, len(posts))
	for _, post := range posts {
		views = append(views, api.presentOne(post))
	}
	return views
}

func (api *SiteAPI) presentOne(post content.Post) postView {
	meta, _ := markup.SplitFrontMatter(post.Content)
	return postView{
		Post:    post,
		HTML:    api.renderer.Render(post.Content),
		Excerpt: markup.Summary(post.Content, api.excerptLength),
		Tags:    meta.Tags,
	}
}

func (api *SiteAPI) listPosts(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))
	term := c.Query("term")
	category := c.Query("category")

	serve(api, c, http.StatusOK, func(ctx context.Context) ([]postView, error) {
		posts, err := api.content.ListPosts(ctx, limit)
		if err != nil {
			return nil, err
		}
		return api.present(filter.Items(posts, term, category)), nil
	})
}

func (api *SiteAPI) getPost(c *gin.Context) {
	id := c.Param("id")
	serve(api, c, http.StatusOK, func(ctx context.Context) (postView, error) {
		post, err := api.content.PostByID(ctx, id)
		if err != nil {
			return postView{}, err
		}
		return api.presentOne(*post), nil
	})
}

func (api *SiteAPI) createPost(c *gin.Context) {
	var payload content.NewPost
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.writeError(c, invalidBody(err))
		return
	}
	serve(api, c, http.StatusCreated, func(ctx context.Context) (postView, error) {
		post, err := api.content.CreatePost(ctx, payload)
		if err != nil {
			return postView{}, err
		}
		return api.presentOne(*post), nil
	})
}

func (api *SiteAPI) subscribe(c *gin.Context) {
	var payload subscribePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.writeError(c, invalidBody(err))
		return
	}
	ctx := c.Request.Context()
	result, err := api.content.Subscribe(ctx, payload.Email)
	if err != nil {
		api.writeError(c, err)
		return
	}
	status := http.StatusCreated
	if result.AlreadySubscribed {
		status = http.StatusOK
	}
	c.JSON(status, result)
}

func (api *SiteAPI) contact(c *gin.Context) {
	var payload content.ContactMessage
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.writeError(c, invalidBody(err))
		return
	}
	if err := api.content.SendContactMessage(c.Request.Context(), payload); err != nil {
		api.writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "sent"})
}

func (api *SiteAPI) listCategories(c *gin.Context) {
	serve(api, c, http.StatusOK, api.categories.ListCategories)
}

func (api *SiteAPI) categoryPage(c *gin.Context) {
	slug := c.Param("slug")
	serve(api, c, http.StatusOK, func(ctx context.Context) (categoryPageView, error) {
		page, err := api.categories.LoadPage(ctx, slug)
		if err != nil {
			return categoryPageView{}, withMessage(err, page.Error)
		}
		return api.presentPage(page), nil
	})
}

func (api *SiteAPI) presentPage(page categories.Page) categoryPageView {
	return categoryPageView{Slug: page.Slug, Title: page.Title, Posts: api.present(page.Posts)}
}

func (api *SiteAPI) listExercises(c *gin.Context) {
	term := c.Query("term")
	serve(api, c, http.StatusOK, func(ctx context.Context) ([]exercises.Entry, error) {
		entries, err := api.exercises.List(ctx)
		if err != nil {
			return nil, err
		}
		return filter.Items(entries, term, ""), nil
	})
}

func (api *SiteAPI) getExercise(c *gin.Context) {
	id := c.Param("id")
	serve(api, c, http.StatusOK, func(ctx context.Context) (exercises.Result, error) {
		result, err := api.exercises.Load(ctx, id)
		if err != nil {
			return result, withMessage(err, result.Error)
		}
		return result, nil
	})
}

func (api *SiteAPI) render(c *gin.Context) {
	var payload renderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.writeError(c, invalidBody(err))
		return
	}
	c.JSON(http.StatusOK, renderResponse{
		HTML:    api.renderer.Render(payload.Markdown),
		Excerpt: markup.Summary(payload.Markdown, api.excerptLength),
	})
}

func invalidBody(err error) error {
	message := "invalid request body"
	if detail := strings.TrimSpace(err.Error()); detail != "" {
		message += ": " + detail
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, message)
}

// messageError replaces the text of err with the message a page shows while
// keeping err in the chain for status mapping.
type messageError struct {
	message string
	err     error
}

func (e *messageError) Error() string { return e.message }

func (e *messageError) Unwrap() error { return e.err }

func withMessage(err error, message string) error {
	if strings.TrimSpace(message) == "" {
		return err
	}
	return &messageError{message: message, err: err}
}
