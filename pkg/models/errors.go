package models

import "errors"

var (
	// ErrEmptyContent rejects empty or whitespace-only submissions before
	// any network call is made.
	ErrEmptyContent = errors.New("content is empty")

	// ErrEmptyTitle rejects edits that would persist a note without a
	// title.
	ErrEmptyTitle = errors.New("title is empty")

	// ErrMissingCredential rejects AI submissions when no classification
	// credential is configured.
	ErrMissingCredential = errors.New("classification credential is not configured")

	// ErrUnauthenticated aborts store operations when no owner session is
	// active.
	ErrUnauthenticated = errors.New("no authenticated owner")

	// ErrNotFound is reported when the store has no row for the given id.
	ErrNotFound = errors.New("note not found")

	// ErrStore marks any other remote store failure.
	ErrStore = errors.New("store operation failed")

	// ErrBusy rejects a submission while another one is still in flight.
	ErrBusy = errors.New("a submission is already in flight")
)
