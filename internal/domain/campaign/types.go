package campaign

import "festserve/internal/pkg/errs"

var (
	ErrInvalidStatus     = errs.New("invalid campaign status")
	ErrInvalidWindow     = errs.New("campaign end must be after start")
	ErrInvalidAllocation = errs.New("units allocated must be positive")
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusActive, StatusCompleted:
		return true
	default:
		return false
	}
}

// NewStatus validates the enum value only. Transitions between statuses are
// deliberately unconstrained: the owning advertiser may set any status at
// any time.
func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
