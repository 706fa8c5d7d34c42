package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestParseContentID(t *testing.T) {
	cases := []struct {
		in       string
		external bool
		key      string
	}{
		{"603", true, "tmdb:603"},
		{" 42 ", true, "tmdb:42"},
		{"tmdb:7", true, "tmdb:7"},
		{"custom-abc", false, "local:custom-abc"},
		{"local:custom-abc", false, "local:custom-abc"},
	}
	for _, tc := range cases {
		id, err := ParseContentID(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.external, id.IsExternal(), tc.in)
		assert.Equal(t, tc.key, id.Key(), tc.in)
	}

	for _, bad := range []string{"", "0", "-3", "tmdb:x"} {
		_, err := ParseContentID(bad)
		assert.Error(t, err, bad)
	}
}

func TestContentIDEquality(t *testing.T) {
	assert.Equal(t, ExternalID(5), ExternalID(5))
	assert.NotEqual(t, ExternalID(5), LocalID("5"))
	assert.True(t, strings.HasPrefix(NewLocalID().String(), "custom-"))
}

func TestContentIDJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A ContentID `json:"a"`
		B ContentID `json:"b"`
	}{ExternalID(603), LocalID("custom-1")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":603,"b":"custom-1"}`, string(out))

	var in struct {
		A ContentID `json:"a"`
		B ContentID `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":603,"b":"custom-1"}`), &in))
	assert.Equal(t, ExternalID(603), in.A)
	assert.Equal(t, LocalID("custom-1"), in.B)

	var numeric ContentID
	require.NoError(t, json.Unmarshal([]byte(`"99"`), &numeric))
	assert.Equal(t, ExternalID(99), numeric)
}

func TestContentIDBSON(t *testing.T) {
	doc := Top10Entry{ContentID: LocalID("custom-xyz"), Rank: 3}
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	assert.Equal(t, "local:custom-xyz", m["_id"])

	var back Top10Entry
	require.NoError(t, bson.Unmarshal(raw, &back))
	assert.Equal(t, doc.ContentID, back.ContentID)

	// documents written with a bare numeric tmdbID still decode
	legacy, err := bson.Marshal(bson.M{"_id": int32(603), "rank": 1})
	require.NoError(t, err)
	require.NoError(t, bson.Unmarshal(legacy, &back))
	assert.Equal(t, ExternalID(603), back.ContentID)
}
