// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"testing"
	"time"

	"github.com/chartkit/dwclient/modules/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle(t *testing.T) {
	c := &LineChart{}
	assert.Equal(t, StateUnsaved, c.State())
	assert.NoError(t, c.CanCreate())

	err := c.RequireID("publish")
	assert.True(t, IsStateError(err))
	assert.True(t, errors.Is(err, util.ErrInvalidState))

	c.MarkSaved("Ab3xZ")
	assert.Equal(t, StateSaved, c.State())
	assert.Equal(t, "Ab3xZ", c.ID())
	assert.NoError(t, c.RequireID("publish"))
	assert.True(t, IsStateError(c.CanCreate()))

	c.MarkPublished("https://datawrapper.dwcdn.net/Ab3xZ/1/", 1)
	assert.Equal(t, StatePublished, c.State())
	c.MarkSaved("Ab3xZ")
	assert.Equal(t, StatePublished, c.State())

	c.MarkUnpublished()
	assert.Equal(t, StateSaved, c.State())
	assert.Empty(t, c.Info.PublicURL)

	c.MarkDeleted()
	assert.Equal(t, StateDeleted, c.State())
	assert.Empty(t, c.ID())
	err = c.CanCreate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Reset")

	c.Reset()
	assert.Equal(t, StateUnsaved, c.State())
	assert.NoError(t, c.CanCreate())
}

func TestStateFromDocument(t *testing.T) {
	c := &BarChart{}
	require.NoError(t, c.FromWire([]byte(`{"type":"d3-bars","id":"Ab3xZ","authorId":12,"createdAt":"2024-05-01T10:00:00.000Z"}`)))
	assert.Equal(t, StateSaved, c.State())
	assert.Equal(t, "Ab3xZ", c.ID())
	assert.Equal(t, 12, c.Info.AuthorID)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), c.Info.CreatedAt.UTC())

	require.NoError(t, c.FromWire([]byte(`{
		"type": "d3-bars",
		"id": "Ab3xZ",
		"publicUrl": "https://datawrapper.dwcdn.net/Ab3xZ/2/",
		"publicVersion": 2
	}`)))
	assert.Equal(t, StatePublished, c.State())
	assert.Equal(t, 2, c.Info.PublicVersion)

	out, err := c.ToWire()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"d3-bars"}`, string(out))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "published", StatePublished.String())
	assert.Equal(t, "unknown", State(42).String())
}
