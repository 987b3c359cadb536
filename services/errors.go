package services

import "errors"

// Sentinel errors controllers use to pick a status code.
var (
	ErrStoreClosed        = errors.New("store is closed")
	ErrChannelDisabled    = errors.New("order channel is disabled")
	ErrCouponNotFound     = errors.New("coupon not found or inactive")
	ErrNoFreeSlot         = errors.New("no free slot available")
	ErrSlotFree           = errors.New("slot has no open order")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product is unavailable")
	ErrNotAllowed         = errors.New("action disabled by store settings")
	ErrItemIndex          = errors.New("item index out of range")
)
