package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrNotInitialized  = errors.New("registry not initialized")
)

// business logic errors
var (
	ErrAlreadyInitialized    = errors.New("registry already initialized")
	ErrUnauthorized          = errors.New("caller not authorized")
	ErrInvalidState          = errors.New("auction not in a valid state for this action")
	ErrNotStarted            = errors.New("auction has not started")
	ErrExpired               = errors.New("auction bidding window has closed")
	ErrInsufficientInventory = errors.New("requested quantity exceeds inventory")
	ErrBidTooLow             = errors.New("bid amount too low")
	ErrInvalidInput          = errors.New("invalid input")
	ErrNoWinningBid          = errors.New("no winning bid for auction")
	ErrNoOpenDispute         = errors.New("no open dispute for auction")
	ErrNoShippingInfo        = errors.New("no shipping information for auction")
)
