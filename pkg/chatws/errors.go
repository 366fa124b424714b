package chatws

import "errors"

var (
	ErrHubClosed    = errors.New("chat hub is not running")
	ErrInvalidFrame = errors.New("invalid chat frame")
	ErrSlowClient   = errors.New("client send buffer is full")
)
