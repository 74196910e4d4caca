package model

import (
	"errors"
	"fmt"
	"strings"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

const soundCueDir = "/sounds/"

var ErrInvalidStatus = errors.New("invalid booking status")

func ParseStatus(raw string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}

	return status, nil
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) Terminal() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

func (s Status) String() string {
	return string(s)
}

// Change describes one status move. Any valid status may follow any other.
type Change struct {
	From     Status
	To       Status
	Reopened bool
}

func (c Change) Changed() bool {
	return c.From != c.To
}

func Transition(from, to Status) (Change, error) {
	if !from.Valid() {
		return Change{}, fmt.Errorf("%w: current %q", ErrInvalidStatus, from)
	}

	if !to.Valid() {
		return Change{}, fmt.Errorf("%w: requested %q", ErrInvalidStatus, to)
	}

	return Change{
		From:     from,
		To:       to,
		Reopened: from.Terminal() && to == StatusPending,
	}, nil
}

// SoundCue is the admin client sound for a status, or empty when there is none.
func SoundCue(status Status) string {
	if !status.Valid() {
		return ""
	}

	return soundCueDir + string(status) + ".mp3"
}
