package response

import "github.com/gin-gonic/gin"

// Error is the payload for every failed request. No stack traces or
// internal identifiers, just a message mirroring the violated constraint.
type Error struct {
	Message string `json:"message"`
}

func Fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Error{Message: msg})
}
