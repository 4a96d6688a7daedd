package render

import "errors"

// Sentinel errors returned by Options validation in Render.
var (
	ErrEmptyOutDir          = errors.New("render: out dir is empty")
	ErrNonPositiveScale     = errors.New("render: scale must be positive")
	ErrNonPositiveStep      = errors.New("render: step must be positive")
	ErrNonPositiveMoveSpeed = errors.New("render: move speed must be positive")
	ErrEmptyPath            = errors.New("render: path has no points")
)
