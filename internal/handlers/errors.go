package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/developia-II/catalog-api/internal/core/domain"
	"github.com/developia-II/catalog-api/internal/middleware"
	"github.com/developia-II/catalog-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError maps catalog errors to client errors. Anything unclassified is
// logged and answered with failure, keeping internal detail out of the body.
func respondError(c *gin.Context, err error, resource, failure string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, utils.ErrorResponse(fmt.Sprintf("%s not found", resource)))
	case errors.Is(err, domain.ErrInvalidCategory):
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("categoryId does not reference an existing category"))
	case errors.Is(err, domain.ErrDuplicateName):
		c.JSON(http.StatusConflict, utils.ErrorResponse(fmt.Sprintf("a %s with this name already exists", resource)))
	default:
		logrus.WithFields(logrus.Fields{
			"requestId": c.GetString(middleware.ContextRequestID),
			"path":      c.FullPath(),
			"error":     err,
		}).Error(failure)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse(failure))
	}
}
