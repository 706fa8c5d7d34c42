package models

import "time"

// FlagKind names a curated sub-list annotation stored on a ContentRecord.
type FlagKind string

const (
	FlagTrending FlagKind = "trending"
	FlagUpcoming FlagKind = "upcoming"
)

// Field paths of each flag inside the stored document.
func (k FlagKind) ActiveField() string {
	if k == FlagUpcoming {
		return "upcoming.isUpcoming"
	}
	return "trending.isTrending"
}

func (k FlagKind) OrderField() string {
	if k == FlagUpcoming {
		return "upcoming.upcomingOrder"
	}
	return "trending.trendingOrder"
}

// DateField is empty for flags without a date.
func (k FlagKind) DateField() string {
	if k == FlagUpcoming {
		return "upcoming.ott_release"
	}
	return ""
}

// FlagState is the full value written for a flag; nil pointers clear.
type FlagState struct {
	Active bool
	Order  *int
	Date   *time.Time
}

// Flag reads the current state of kind from rec.
func (rec *ContentRecord) Flag(kind FlagKind) FlagState {
	if kind == FlagUpcoming {
		return FlagState{Active: rec.Upcoming.IsUpcoming, Order: rec.Upcoming.UpcomingOrder, Date: rec.Upcoming.OTTRelease}
	}
	return FlagState{Active: rec.Trending.IsTrending, Order: rec.Trending.TrendingOrder}
}

// SetFlag writes state into rec in memory.
func (rec *ContentRecord) SetFlag(kind FlagKind, state FlagState) {
	if kind == FlagUpcoming {
		rec.Upcoming = Upcoming{IsUpcoming: state.Active, UpcomingOrder: state.Order, OTTRelease: state.Date}
		return
	}
	rec.Trending = Trending{IsTrending: state.Active, TrendingOrder: state.Order}
}
