package ordering

import "strings"

type SortMode string

const (
	SortLatest SortMode = "latest"
	SortOldest SortMode = "oldest"
	SortPinned SortMode = "pinned"
)

// ParseSortMode falls back to latest for anything unknown.
func ParseSortMode(s string) SortMode {
	switch SortMode(strings.ToLower(strings.TrimSpace(s))) {
	case SortOldest:
		return SortOldest
	case SortPinned:
		return SortPinned
	}
	return SortLatest
}

// SortField is one key of a compound sort, in storage field names.
type SortField struct {
	Field string
	Desc  bool
}

// Fields is the catalog sort for m. latest/oldest follow the manual order
// with creation time as tie-break; pinned puts pinned records first.
func (m SortMode) Fields() []SortField {
	switch m {
	case SortOldest:
		return []SortField{{Field: "order", Desc: true}, {Field: "createdAt"}}
	case SortPinned:
		return []SortField{{Field: "pinned", Desc: true}, {Field: "order"}}
	default:
		return []SortField{{Field: "order"}, {Field: "createdAt", Desc: true}}
	}
}

// ChronoFields sorts on creation time only; genre listings use it.
func (m SortMode) ChronoFields() []SortField {
	switch m {
	case SortOldest:
		return []SortField{{Field: "createdAt"}}
	case SortPinned:
		return []SortField{{Field: "pinned", Desc: true}, {Field: "order"}}
	default:
		return []SortField{{Field: "createdAt", Desc: true}}
	}
}

// FlagFields is the active-list sort for a flag: manual order, then
// popularity, then recency.
func FlagFields(orderField string) []SortField {
	return []SortField{
		{Field: orderField},
		{Field: "clicks", Desc: true},
		{Field: "updatedAt", Desc: true},
	}
}
