package fileio

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// HintedHandler serves one pre-owned stream to the first open of the hint
// path and sends every other open to a fallback. With an empty hint the
// stream is never served and every open goes to the fallback.
type HintedHandler[S any] struct {
	stream    S
	fallback  func(path string) (S, error)
	hint      string
	hasHint   bool
	available atomic.Bool
}

// NewHintedHandler returns a handler holding stream for hint.
func NewHintedHandler[S any](stream S, hint string, fallback func(path string) (S, error)) *HintedHandler[S] {
	h := &HintedHandler[S]{
		stream:   stream,
		fallback: fallback,
		hint:     hint,
		hasHint:  hint != "",
	}
	h.available.Store(true)
	return h
}

func (h *HintedHandler[S]) Open(path string) (S, error) {
	if h.hasHint && path == h.hint && h.available.CompareAndSwap(true, false) {
		s := h.stream
		var zero S
		h.stream = zero
		Logger().Debug("hinted stream claimed", zap.String("path", path))
		return s, nil
	}
	Logger().Debug("hinted handler fallback", zap.String("path", path), zap.String("hint", h.hint))
	return h.fallback(path)
}

// Close closes the stream when it supports closing. Once claimed, the
// hinted stream is closed here like any other.
func (h *HintedHandler[S]) Close(stream S) error {
	return closeStream(stream)
}

// Claimed reports whether the hinted stream has been handed out.
func (h *HintedHandler[S]) Claimed() bool {
	return !h.available.Load()
}

// discard closes the hinted stream if nobody claimed it.
func (h *HintedHandler[S]) discard() error {
	if !h.available.CompareAndSwap(true, false) {
		return nil
	}
	s := h.stream
	var zero S
	h.stream = zero
	return closeStream(s)
}
