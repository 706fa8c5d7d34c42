package models

import (
	"strings"
	"time"

	"github.com/mozillazg/go-unidecode"
)

// ContentPatch is a partial update of a ContentRecord. Nil pointers and
// unset Optionals leave the stored field alone. Clicks, flags and seasons
// are never touched by a patch; they have their own atomic writes.
type ContentPatch struct {
	Descriptor  *Descriptor
	TMDBID      Optional[int]
	IsCustom    *bool
	FileLink    Optional[string]
	Order       *int
	Pinned      *bool
	Placeholder *bool
	UpdatedAt   time.Time
}

// Apply writes p into rec in memory, mirroring what the store does.
func (p *ContentPatch) Apply(rec *ContentRecord) {
	if p.Descriptor != nil {
		rec.Descriptor = *p.Descriptor
		rec.TitleKey = TitleKey(p.Descriptor.Title)
	}
	if p.TMDBID.Set {
		if p.TMDBID.Null {
			rec.TMDBID = nil
		} else {
			v := p.TMDBID.Value
			rec.TMDBID = &v
		}
	}
	if p.IsCustom != nil {
		rec.IsCustom = *p.IsCustom
	}
	if p.FileLink.Set {
		rec.FileLink = p.FileLink.Value
	}
	if p.Order != nil {
		rec.Order = *p.Order
	}
	if p.Pinned != nil {
		rec.Pinned = *p.Pinned
	}
	if p.Placeholder != nil {
		rec.Placeholder = *p.Placeholder
	}
	if !p.UpdatedAt.IsZero() {
		rec.UpdatedAt = p.UpdatedAt
	}
}

// TitleKey folds a title for duplicate detection of custom entries:
// transliterated, lower-cased, whitespace collapsed.
func TitleKey(title string) string {
	folded := strings.ToLower(unidecode.Unidecode(title))
	return strings.Join(strings.Fields(folded), " ")
}
