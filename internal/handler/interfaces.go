package handler

import (
	"github.com/mishasvintus/mergington_activities/internal/domain"
)

// ActivityServiceInterface defines the interface for activity operations.
type ActivityServiceInterface interface {
	ListActivities() map[string]domain.Activity
	SignUp(activityName, email string) error
	Drop(activityName, email string) error
}
