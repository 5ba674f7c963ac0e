package progress

import "errors"

// Operational failures surfaced to the HTTP layer with specific messages.
// Anything else coming out of the Manager is an unexpected storage error.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCourseNotFound   = errors.New("course not found")
	ErrChapterNotFound  = errors.New("chapter not found")
	ErrProgressNotFound = errors.New("no progress found for this course")
	ErrAlreadyEnrolled  = errors.New("already enrolled in this course")
	ErrNotEnrolled      = errors.New("not enrolled in this course")
)
