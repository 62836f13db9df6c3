package engine

import (
	"errors"
)

var (
	ErrInvalidAmount   = errors.New("amount is invalid")
	ErrEmptyRoutes     = errors.New("route list is empty")
	ErrTooManyHops     = errors.New("route list has too many hops")
	ErrInvalidSwapPair = errors.New("swap pair is invalid")
)

var (
	ErrBotPaused            = errors.New("bot is paused")
	ErrExecutionTooFrequent = errors.New("execution is too frequent")
	ErrUnauthorized         = errors.New("unauthorized")
)

var (
	ErrAccountValidation = errors.New("account validation failed")
)

var (
	ErrInsufficientProfit = errors.New("insufficient profit")
	ErrArithmetic         = errors.New("arithmetic overflow")
)

var (
	ErrAlreadyInitialized = errors.New("bot state already exists")
	ErrStateNotFound      = errors.New("bot state is not found")
)
