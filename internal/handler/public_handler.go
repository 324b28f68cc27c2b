package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/spacetraveling/internal/service"
	"github.com/spacetraveling/internal/view"
)

// postCardView is the index card shape the templates consume.
type postCardView struct {
	Slug        string
	Title       string
	Subtitle    string
	Author      string
	PublishedAt string
}

func postCards(posts []service.Post) []postCardView {
	cards := make([]postCardView, 0, len(posts))
	for _, post := range posts {
		cards = append(cards, postCardView{
			Slug:        post.Slug,
			Title:       post.Title,
			Subtitle:    post.Subtitle,
			Author:      post.Author,
			PublishedAt: formatPublicationDate(post.FirstPublishedAt),
		})
	}
	return cards
}

// ShowHome renders the index page: the first page of posts plus a load-more
// link carrying the encoded cursor.
func (a *API) ShowHome(c *gin.Context) {
	preview := previewFromSession(c)

	posts, cursor, err := a.posts.FirstPage(c.Request.Context(), preview)
	if err != nil {
		c.Error(err)
		a.renderHTML(c, http.StatusInternalServerError, "home.html", gin.H{
			"error":   "could not load posts",
			"preview": preview.Active,
		})
		return
	}

	nextCursor := ""
	if cursor != nil {
		nextCursor = cursor.Encode()
	}

	a.renderHTML(c, http.StatusOK, "home.html", gin.H{
		"posts":      postCards(posts),
		"nextCursor": nextCursor,
		"preview":    preview.Active,
	})
}

// LoadMorePosts returns the next index page as an HTML fragment. The page
// hides the load-more link while a fetch is in flight, so calls on one cursor
// chain arrive serialized.
func (a *API) LoadMorePosts(c *gin.Context) {
	cursor, err := service.DecodeCursor(strings.TrimSpace(c.Query("cursor")))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid cursor")
		return
	}

	posts, next, err := a.posts.NextPage(c.Request.Context(), cursor)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCursor) {
			respondError(c, http.StatusBadRequest, "invalid cursor")
			return
		}
		c.Error(err)
		c.String(http.StatusInternalServerError, "")
		return
	}

	nextCursor := ""
	if next != nil {
		nextCursor = next.Encode()
	}

	a.renderHTML(c, http.StatusOK, "post_cards.html", gin.H{
		"posts":      postCards(posts),
		"nextCursor": nextCursor,
	})
}

// ShowPostDetail renders a single post with reading time and chronological
// neighbors. Unpublished revisions are only reachable with an active preview
// session.
func (a *API) ShowPostDetail(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	preview := previewFromSession(c)

	post, err := a.posts.GetPost(c.Request.Context(), slug, preview)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, service.ErrMalformedRecord):
			c.Error(err)
			a.renderHTML(c, http.StatusInternalServerError, "error.html", gin.H{
				"message": "this post cannot be displayed",
			})
		default:
			c.Error(err)
			a.renderHTML(c, http.StatusInternalServerError, "error.html", gin.H{
				"message": "the content store is unavailable",
			})
		}
		return
	}

	// A never-published revision must not leak into normal reads.
	if post.FirstPublishedAt == nil && !preview.Active {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	blocks, err := view.RenderBlocks(post.Content)
	if err != nil {
		c.Error(err)
		a.renderHTML(c, http.StatusInternalServerError, "error.html", gin.H{
			"message": "this post cannot be displayed",
		})
		return
	}

	nav := service.NavigationResult{}
	if post.FirstPublishedAt != nil {
		nav, err = a.posts.ResolveNavigation(c.Request.Context(), post.ID, *post.FirstPublishedAt)
		if err != nil {
			c.Error(err)
			a.renderHTML(c, http.StatusInternalServerError, "error.html", gin.H{
				"message": "the content store is unavailable",
			})
			return
		}
	}

	a.renderHTML(c, http.StatusOK, "post_detail.html", gin.H{
		"title":       post.Title,
		"post":        post,
		"publishedAt": formatPublicationDate(post.FirstPublishedAt),
		"readingTime": service.EstimateReadingTime(post),
		"blocks":      blocks,
		"previous":    nav.Previous,
		"next":        nav.Next,
		"preview":     preview.Active,
	})
}
