package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPermissionDenied   = errors.New("permission denied")

	ErrTestNotFound     = errors.New("placement test not found or inactive")
	ErrRoadmapNotFound  = errors.New("no active roadmap found")
	ErrModuleNotFound   = errors.New("module not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrScenarioNotFound = errors.New("dialogue scenario not found or inactive")
	ErrSessionNotFound  = errors.New("dialogue session not found")

	// State conflicts: the request is well-formed but the target cannot
	// accept the operation.
	ErrSessionClosed    = errors.New("dialogue session is not active")
	ErrTurnLimitReached = errors.New("session has reached maximum turns")
)
