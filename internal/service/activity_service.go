package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mishasvintus/mergington_activities/internal/domain"
	"github.com/mishasvintus/mergington_activities/internal/observability"
	"github.com/mishasvintus/mergington_activities/internal/repository"
)

// ActivityStore is the storage contract the service depends on.
type ActivityStore interface {
	GetAll() map[string]domain.Activity
	AddParticipant(name, email string) error
	RemoveParticipant(name, email string) error
}

// ActivityService handles activity signup business logic.
type ActivityService struct {
	store   ActivityStore
	log     *zap.Logger
	metrics *observability.Metrics
}

// NewActivityService creates a new activity service.
// log and metrics may be nil.
func NewActivityService(store ActivityStore, log *zap.Logger, metrics *observability.Metrics) *ActivityService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ActivityService{
		store:   store,
		log:     log,
		metrics: metrics,
	}
}

// ListActivities returns all activities keyed by name.
func (s *ActivityService) ListActivities() map[string]domain.Activity {
	return s.store.GetAll()
}

// SignUp adds email to the roster of the named activity.
func (s *ActivityService) SignUp(activityName, email string) error {
	err := s.store.AddParticipant(activityName, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.metrics.RecordSignup(observability.ResultNotFound)
			return ErrActivityNotFound
		}
		s.metrics.RecordSignup(observability.ResultError)
		return fmt.Errorf("failed to add participant: %w", err)
	}

	s.metrics.RecordSignup(observability.ResultSuccess)
	s.log.Info("participant signed up",
		zap.String("activity", activityName),
		zap.String("email", email),
	)
	return nil
}

// Drop removes email from the roster of the named activity.
func (s *ActivityService) Drop(activityName, email string) error {
	err := s.store.RemoveParticipant(activityName, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.metrics.RecordDrop(observability.ResultNotFound)
			return ErrActivityNotFound
		}
		if errors.Is(err, repository.ErrNotEnrolled) {
			s.metrics.RecordDrop(observability.ResultNotEnrolled)
			return ErrNotEnrolled
		}
		s.metrics.RecordDrop(observability.ResultError)
		return fmt.Errorf("failed to remove participant: %w", err)
	}

	s.metrics.RecordDrop(observability.ResultSuccess)
	s.log.Info("participant dropped",
		zap.String("activity", activityName),
		zap.String("email", email),
	)
	return nil
}
