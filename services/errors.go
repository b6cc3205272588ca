package services

import (
	"errors"

	"github.com/sdas2004/job_portal/notifications"
)

// Typed failures returned by the services. Handlers map these onto HTTP
// statuses; none of them is fatal to the process.
var (
	ErrInvalidOrExpired     = errors.New("invalid or expired code or token")
	ErrDuplicateApplication = errors.New("an application with this email already exists for this advert")
	ErrForbidden            = errors.New("operation not permitted for this user")
	ErrNotFound             = errors.New("record not found")
	ErrEmailTaken           = errors.New("email already exists on the platform")
)

// sendEmail is swapped out in tests.
var sendEmail = notifications.SendTemplate
