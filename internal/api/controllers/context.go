package controllers

import (
	"github.com/gin-gonic/gin"

	"aura/pkg/utils"
)

// currentUserID is the user the JWT middleware authenticated.
func currentUserID(c *gin.Context) string {
	return c.GetString(utils.UserIDKey)
}
