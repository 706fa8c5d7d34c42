package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentUpdateRequestOptionalFields(t *testing.T) {
	var req ContentUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"fileLink":null,"pinned":true}`), &req))

	assert.False(t, req.TMDBID.Set, "absent field stays unset")
	assert.True(t, req.FileLink.Set)
	assert.True(t, req.FileLink.Null)
	assert.False(t, req.FileLink.Present())
	assert.True(t, req.Pinned.Present())
	assert.True(t, req.Pinned.Value)
	assert.False(t, req.Position.Set)
}

func TestOptionalMarshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A Optional[int] `json:"a"`
		B Optional[int] `json:"b"`
	}{A: Some(3), B: Null[int]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":3,"b":null}`, string(out))
}
