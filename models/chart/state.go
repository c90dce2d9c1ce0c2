// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"time"
)

// State is the lifecycle state of a chart object
type State int

const (
	// StateUnsaved charts exist only locally
	StateUnsaved State = iota
	// StateSaved charts have a remote id
	StateSaved
	// StatePublished charts also have a public URL
	StatePublished
	// StateDeleted charts were deleted remotely and need Reset before Create
	StateDeleted
)

var stateNames = map[State]string{
	StateUnsaved:   "unsaved",
	StateSaved:     "saved",
	StatePublished: "published",
	StateDeleted:   "deleted",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// Info holds the server managed, read only attributes of a chart
type Info struct {
	ID             string
	PublicID       string
	PublicURL      string
	PublicVersion  int
	AuthorID       int
	OrganizationID string
	FolderID       int
	CreatedAt      time.Time
	LastModifiedAt time.Time
	PublishedAt    time.Time
}

// ID returns the remote chart id, empty when unsaved
func (b *Base) ID() string {
	return b.Info.ID
}

// State returns the lifecycle state
func (b *Base) State() State {
	return b.state
}

// Reset makes a deleted chart creatable again. The configuration is kept,
// identity and server attributes are cleared.
func (b *Base) Reset() {
	b.Info = Info{}
	b.state = StateUnsaved
}

// CanCreate returns a StateError unless the chart may be created
func (b *Base) CanCreate() error {
	switch {
	case b.state == StateDeleted:
		return &StateError{Op: "create", State: b.state, Reason: "call Reset first"}
	case b.Info.ID != "":
		return &StateError{Op: "create", State: b.state, Reason: "chart already has id " + b.Info.ID}
	}
	return nil
}

// RequireID returns a StateError unless the chart has a remote id
func (b *Base) RequireID(op string) error {
	if b.Info.ID == "" {
		return &StateError{Op: op, State: b.state, Reason: "chart has no id"}
	}
	return nil
}

// MarkSaved records a successful create, update or fetch
func (b *Base) MarkSaved(id string) {
	b.Info.ID = id
	if b.state != StatePublished || b.Info.PublicURL == "" {
		b.state = StateSaved
	}
}

// MarkPublished records a successful publish
func (b *Base) MarkPublished(publicURL string, version int) {
	if publicURL != "" {
		b.Info.PublicURL = publicURL
	}
	if version > 0 {
		b.Info.PublicVersion = version
	}
	b.state = StatePublished
}

// MarkUnpublished records a successful unpublish
func (b *Base) MarkUnpublished() {
	b.Info.PublicURL = ""
	b.state = StateSaved
}

// MarkDeleted records a successful delete, the id is cleared
func (b *Base) MarkDeleted() {
	b.Info.ID = ""
	b.Info.PublicURL = ""
	b.state = StateDeleted
}
