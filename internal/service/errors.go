package service

import "errors"

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrNotEnrolled      = errors.New("student is not enrolled in this activity")
)
