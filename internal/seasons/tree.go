// Package seasons edits the season → version tree of a series. The tree is
// kept in a flat arena: every node is an index into one slice and children
// point at their parent by index. Seasons() flattens it back into the stored
// shape in insertion order.
package seasons

import (
	"strconv"
	"strings"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/models"
)

const root = -1

type node struct {
	parent   int
	removed  bool
	number   int
	language string
	quality  string
	fileLink string
}

func (n *node) isSeason() bool { return n.parent == root }

type Tree struct {
	nodes []node
}

// FromSeasons builds a tree from the stored array.
func FromSeasons(seasons []models.Season) *Tree {
	t := &Tree{}
	for _, s := range seasons {
		si := t.add(node{parent: root, number: s.SeasonNumber, language: s.Language})
		for _, v := range s.Versions {
			t.add(node{parent: si, quality: v.Quality, fileLink: v.FileLink})
		}
	}
	return t
}

func (t *Tree) add(n node) int {
	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1
}

// Seasons flattens the live nodes. Seasons with no versions are kept; only
// Delete prunes them.
func (t *Tree) Seasons() []models.Season {
	out := []models.Season{}
	pos := map[int]int{}
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.removed {
			continue
		}
		if n.isSeason() {
			pos[i] = len(out)
			out = append(out, models.Season{SeasonNumber: n.number, Language: n.language, Versions: []models.Version{}})
			continue
		}
		if p, ok := pos[n.parent]; ok {
			out[p].Versions = append(out[p].Versions, models.Version{Quality: n.quality, FileLink: n.fileLink})
		}
	}
	return out
}

func (t *Tree) findSeason(number int, language string) int {
	for i := range t.nodes {
		n := &t.nodes[i]
		if !n.removed && n.isSeason() && n.number == number && n.language == language {
			return i
		}
	}
	return root
}

func (t *Tree) findVersion(season int, quality string) int {
	for i := range t.nodes {
		n := &t.nodes[i]
		if !n.removed && n.parent == season && n.quality == quality {
			return i
		}
	}
	return root
}

// Languages and qualities are keys matched exactly, case included.

// UpsertLeaf sets the file link of one quality of one season/language,
// creating the season and the version as needed. Applying the same upsert
// twice leaves the tree unchanged.
func (t *Tree) UpsertLeaf(number int, language, quality, fileLink string) error {
	switch {
	case number < 0:
		return apperr.Validation("seasons.upsert", "seasonNumber must be >= 0")
	case strings.TrimSpace(language) == "":
		return apperr.Validation("seasons.upsert", "language is required")
	case strings.TrimSpace(quality) == "":
		return apperr.Validation("seasons.upsert", "quality is required")
	case strings.TrimSpace(fileLink) == "":
		return apperr.Validation("seasons.upsert", "fileLink is required")
	}

	si := t.findSeason(number, language)
	if si == root {
		si = t.add(node{parent: root, number: number, language: language})
	}
	if vi := t.findVersion(si, quality); vi != root {
		t.nodes[vi].fileLink = fileLink
		return nil
	}
	t.add(node{parent: si, quality: quality, fileLink: fileLink})
	return nil
}

// Selector picks nodes to delete. Language and Quality are optional.
type Selector struct {
	Number   int
	Language string
	Quality  string
}

// Delete removes the selected nodes. With a quality, matching versions are
// removed and any matched season left empty goes with them. Without one,
// the matched seasons are removed whole. It fails with NotFound when no
// season matches.
func (t *Tree) Delete(sel Selector) (removed int, err error) {
	var matched []int
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.removed || !n.isSeason() || n.number != sel.Number {
			continue
		}
		if sel.Language != "" && n.language != sel.Language {
			continue
		}
		matched = append(matched, i)
	}
	if len(matched) == 0 {
		return 0, apperr.NotFound("seasons.delete", seasonLabel(sel))
	}

	for _, si := range matched {
		if sel.Quality == "" {
			removed += t.removeSubtree(si)
			continue
		}
		if vi := t.findVersion(si, sel.Quality); vi != root {
			t.nodes[vi].removed = true
			removed++
		}
		if t.children(si) == 0 {
			t.nodes[si].removed = true
			removed++
		}
	}
	return removed, nil
}

func (t *Tree) removeSubtree(si int) int {
	n := 1
	t.nodes[si].removed = true
	for i := range t.nodes {
		if !t.nodes[i].removed && t.nodes[i].parent == si {
			t.nodes[i].removed = true
			n++
		}
	}
	return n
}

func (t *Tree) children(si int) int {
	n := 0
	for i := range t.nodes {
		if !t.nodes[i].removed && t.nodes[i].parent == si {
			n++
		}
	}
	return n
}

func seasonLabel(sel Selector) string {
	var b strings.Builder
	b.WriteString("season ")
	b.WriteString(strconv.Itoa(sel.Number))
	if sel.Language != "" {
		b.WriteString("/" + sel.Language)
	}
	if sel.Quality != "" {
		b.WriteString("/" + sel.Quality)
	}
	return b.String()
}
