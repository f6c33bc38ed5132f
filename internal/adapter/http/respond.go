package http

import (
	"context"
	"errors"
	"net/http"

	domain "github.com/Calebyte11/Boqbox-landing/internal/entity"
	"github.com/Calebyte11/Boqbox-landing/internal/usecase"
	"github.com/gin-gonic/gin"
)

func ctxWithTimeout(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

// respondStep is the shared tail of every wizard operation: field
// errors render inline as 422 with the step unchanged, guard errors
// map to client statuses, and success returns the session snapshot.
func respondStep(c *gin.Context, s *usecase.FlowSession, fieldErrs domain.FieldErrors, err error) {
	if err != nil {
		fail(c, err)
		return
	}
	if !fieldErrs.OK() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs, "step": s.Step})
		return
	}
	c.JSON(http.StatusOK, s)
}

func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, usecase.ErrWrongStep):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrNoPreviousStep),
		errors.Is(err, domain.ErrNoItems),
		errors.Is(err, domain.ErrNoVendor),
		errors.Is(err, domain.ErrQuantityOutOfRange):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
