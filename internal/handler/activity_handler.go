package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/mergington_activities/internal/service"
)

const (
	detailActivityNotFound = "Activity not found"
	detailNotEnrolled      = "Student is not enrolled in this activity"
)

// ActivityHandler handles activity-related HTTP requests.
type ActivityHandler struct {
	activityService ActivityServiceInterface
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(activityService ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// ListActivities handles GET /activities.
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	c.JSON(http.StatusOK, h.activityService.ListActivities())
}

// SignUp handles POST /activities/:name/signup.
func (h *ActivityHandler) SignUp(c *gin.Context) {
	name := c.Param("name")
	email := c.Query("email")

	if err := h.activityService.SignUp(name, email); err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			NotFound(c, detailActivityNotFound)
			return
		}
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

// Drop handles POST /activities/:name/drop.
func (h *ActivityHandler) Drop(c *gin.Context) {
	name := c.Param("name")
	email := c.Query("email")

	if err := h.activityService.Drop(name, email); err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			NotFound(c, detailActivityNotFound)
			return
		}
		if errors.Is(err, service.ErrNotEnrolled) {
			BadRequest(c, detailNotEnrolled)
			return
		}
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Dropped %s from %s", email, name),
	})
}
