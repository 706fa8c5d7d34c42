package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

const (
	externalPrefix = "tmdb:"
	localPrefix    = "local:"
)

// ContentID identifies a catalog item. It is either an external (TMDB) id or
// a locally generated one for custom entries. The zero value is invalid.
type ContentID struct {
	external int
	local    string
}

func ExternalID(id int) ContentID { return ContentID{external: id} }

func LocalID(id string) ContentID { return ContentID{local: id} }

// NewLocalID mints an id for an entry that has no external source.
func NewLocalID() ContentID { return LocalID("custom-" + uuid.NewString()) }

// ParseContentID accepts what clients send: a bare number for external ids,
// anything else as a local id. Storage keys ("tmdb:603", "local:x") are also
// accepted.
func ParseContentID(s string) (ContentID, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return ContentID{}, fmt.Errorf("empty content id")
	case strings.HasPrefix(s, externalPrefix):
		n, err := strconv.Atoi(strings.TrimPrefix(s, externalPrefix))
		if err != nil || n <= 0 {
			return ContentID{}, fmt.Errorf("invalid external id %q", s)
		}
		return ExternalID(n), nil
	case strings.HasPrefix(s, localPrefix):
		return LocalID(strings.TrimPrefix(s, localPrefix)), nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n <= 0 {
			return ContentID{}, fmt.Errorf("invalid external id %q", s)
		}
		return ExternalID(n), nil
	}
	return LocalID(s), nil
}

func (c ContentID) IsZero() bool { return c.external == 0 && c.local == "" }

func (c ContentID) IsExternal() bool { return c.external != 0 }

// External returns the TMDB id when c is external.
func (c ContentID) External() (int, bool) { return c.external, c.external != 0 }

// Key is the storage form, unique across both variants.
func (c ContentID) Key() string {
	if c.external != 0 {
		return externalPrefix + strconv.Itoa(c.external)
	}
	return localPrefix + c.local
}

func (c ContentID) String() string {
	if c.external != 0 {
		return strconv.Itoa(c.external)
	}
	return c.local
}

func (c ContentID) MarshalJSON() ([]byte, error) {
	if c.external != 0 {
		return json.Marshal(c.external)
	}
	if c.local == "" {
		return []byte("null"), nil
	}
	return json.Marshal(c.local)
}

func (c *ContentID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = ContentID{}
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if n <= 0 {
			return fmt.Errorf("invalid external id %d", n)
		}
		*c = ExternalID(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("content id must be a number or string")
	}
	parsed, err := ParseContentID(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c ContentID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.TypeString, bsoncore.AppendString(nil, c.Key()), nil
}

func (c *ContentID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bson.TypeNull || t == bson.TypeUndefined {
		*c = ContentID{}
		return nil
	}
	raw := bson.RawValue{Type: t, Value: data}
	if n, ok := raw.Int32OK(); ok {
		*c = ExternalID(int(n))
		return nil
	}
	if n, ok := raw.Int64OK(); ok {
		*c = ExternalID(int(n))
		return nil
	}
	s, ok := raw.StringValueOK()
	if !ok {
		return fmt.Errorf("content id: unexpected bson type %s", t)
	}
	parsed, err := ParseContentID(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
