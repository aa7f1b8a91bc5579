package httpHandler

import (
	"errors"
	"log"
	"net/http"

	"rental-server/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

// invalidTextRepresentation is raised by Postgres when text cannot be cast
// to the column type, e.g. a non-numeric id.
const invalidTextRepresentation = "22P02"

// writeError sends err as a {msg} response with the matching status.
func writeError(c *gin.Context, err error) {
	if appErr, ok := apperrors.As(err); ok {
		c.JSON(appErr.Status(), gin.H{"msg": appErr.Msg})
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Bad Request"})
		return
	}

	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"msg": "Bad Request"})
}

// PathNotFound handles any unmatched route.
func PathNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"msg": "Path not found"})
}

// MethodNotAllowed handles a matched path requested with the wrong method.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"msg": "Method not allowed"})
}
