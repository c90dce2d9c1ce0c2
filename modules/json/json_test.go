// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package json

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalIndent(t *testing.T) {
	bs, err := MarshalIndent(map[string]any{"title": "x"}, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"title\": \"x\"\n}", string(bs))
}

func TestRawMessageIsVerbatim(t *testing.T) {
	bs, err := Marshal(map[string]any{"custom": RawMessage(`{"b":1,"a":2}`)})
	require.NoError(t, err)
	assert.Equal(t, `{"custom":{"b":1,"a":2}}`, string(bs))
}

func TestCompact(t *testing.T) {
	bs, err := Compact([]byte("{ \"a\" : [1, 2] }"))
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1,2]}`, string(bs))

	_, err = Compact([]byte("{"))
	assert.Error(t, err)
}

func TestDecoder(t *testing.T) {
	var v struct {
		ID string `json:"id"`
	}
	require.NoError(t, NewDecoder(bytes.NewBufferString(`{"id":"abcde"}`)).Decode(&v))
	assert.Equal(t, "abcde", v.ID)
}
