package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/spacetraveling/internal/service"
)

const previewRefSessionKey = "preview_ref"

// previewFromSession builds the preview context for this request. Preview
// state lives only in the cookie session; nothing is read from process-wide
// state.
func previewFromSession(c *gin.Context) service.PreviewContext {
	session := sessions.Default(c)

	ref, _ := session.Get(previewRefSessionKey).(string)
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return service.PreviewContext{}
	}
	return service.PreviewContext{Active: true, Ref: ref}
}

// EnterPreview activates editorial preview for this browser session. The
// token is the revision ref issued by the content store's editor; it is only
// trusted after the store resolves it.
func (a *API) EnterPreview(c *gin.Context) {
	token := strings.TrimSpace(c.Query("token"))
	slug := strings.TrimSpace(c.Query("slug"))

	if token == "" {
		respondError(c, http.StatusBadRequest, "missing preview token")
		return
	}

	target := "/"
	if slug != "" {
		preview := service.PreviewContext{Active: true, Ref: token}
		if _, err := a.posts.GetPost(c.Request.Context(), slug, preview); err != nil {
			if errors.Is(err, service.ErrPostNotFound) {
				respondError(c, http.StatusNotFound, "preview target not found")
				return
			}
			c.Error(err)
			respondError(c, http.StatusBadGateway, "content store rejected the preview token")
			return
		}
		target = "/post/" + url.PathEscape(slug)
	}

	session := sessions.Default(c)
	session.Set(previewRefSessionKey, token)
	if err := session.Save(); err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "could not save preview session")
		return
	}

	c.Redirect(http.StatusFound, target)
}

// ExitPreview drops the preview session and returns to the published site.
func (a *API) ExitPreview(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(previewRefSessionKey)
	if err := session.Save(); err != nil {
		c.Error(err)
	}

	c.Redirect(http.StatusFound, "/")
}
