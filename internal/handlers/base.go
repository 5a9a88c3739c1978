package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rageblack12/BusinessGenAiBackend/internal/services"
)

// respond writes the success envelope with the given payload fields.
func respond(c *gin.Context, code int, payload gin.H) {
	payload["success"] = true
	c.JSON(code, payload)
}

func fail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"success": false,
		"message": message,
	})
}

// failErr maps engine errors onto HTTP statuses. Anything outside the
// taxonomy is a server error; the wrapped message carries the detail.
func failErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrForbidden):
		fail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrConflict):
		fail(c, http.StatusConflict, err.Error())
	default:
		fail(c, http.StatusInternalServerError, "Server Error")
	}
}

// pathID parses the :id segment. A malformed id is indistinguishable from
// a missing resource to the client, so it reads as 404.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		fail(c, http.StatusNotFound, "Resource not found")
		return 0, false
	}
	return uint(id), true
}
