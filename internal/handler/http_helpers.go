package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

const publicationDateLayout = "02 Jan 2006"

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func formatPublicationDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(publicationDateLayout)
}
