package seasons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/models"
)

func sample() []models.Season {
	return []models.Season{
		{SeasonNumber: 1, Language: "en", Versions: []models.Version{{Quality: "720p", FileLink: "a"}, {Quality: "1080p", FileLink: "b"}}},
		{SeasonNumber: 1, Language: "hi", Versions: []models.Version{{Quality: "720p", FileLink: "c"}}},
		{SeasonNumber: 2, Language: "en", Versions: []models.Version{{Quality: "720p", FileLink: "d"}}},
	}
}

func TestRoundTrip(t *testing.T) {
	assert.Equal(t, sample(), FromSeasons(sample()).Seasons())
	assert.Equal(t, []models.Season{}, FromSeasons(nil).Seasons())
}

func TestUpsertLeafIsIdempotent(t *testing.T) {
	tree := FromSeasons(sample())
	require.NoError(t, tree.UpsertLeaf(3, "en", "480p", "e"))
	once := tree.Seasons()

	require.NoError(t, tree.UpsertLeaf(3, "en", "480p", "e"))
	assert.Equal(t, once, tree.Seasons())
	assert.Len(t, once, 4)
}

func TestUpsertLeafOverwritesAndAppends(t *testing.T) {
	tree := FromSeasons(sample())
	require.NoError(t, tree.UpsertLeaf(1, "en", "720p", "a2"))
	require.NoError(t, tree.UpsertLeaf(1, "en", "4k", "z"))

	got := tree.Seasons()
	require.Len(t, got, 3)
	assert.Equal(t, []models.Version{
		{Quality: "720p", FileLink: "a2"},
		{Quality: "1080p", FileLink: "b"},
		{Quality: "4k", FileLink: "z"},
	}, got[0].Versions)
}

func TestUpsertLeafValidation(t *testing.T) {
	tree := FromSeasons(nil)
	assert.ErrorIs(t, tree.UpsertLeaf(-1, "en", "720p", "x"), apperr.ErrValidation)
	assert.ErrorIs(t, tree.UpsertLeaf(1, "", "720p", "x"), apperr.ErrValidation)
	assert.ErrorIs(t, tree.UpsertLeaf(1, "en", " ", "x"), apperr.ErrValidation)
	assert.ErrorIs(t, tree.UpsertLeaf(1, "en", "720p", ""), apperr.ErrValidation)
}

func TestDeleteLastVersionCascades(t *testing.T) {
	tree := FromSeasons(sample())
	n, err := tree.Delete(Selector{Number: 2, Language: "en", Quality: "720p"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, s := range tree.Seasons() {
		assert.NotEqual(t, 2, s.SeasonNumber)
	}
}

func TestDeleteVersionKeepsNonEmptySeason(t *testing.T) {
	tree := FromSeasons(sample())
	_, err := tree.Delete(Selector{Number: 1, Language: "en", Quality: "1080p"})
	require.NoError(t, err)

	got := tree.Seasons()
	require.Len(t, got, 3)
	assert.Equal(t, []models.Version{{Quality: "720p", FileLink: "a"}}, got[0].Versions)
}

func TestDeleteQualityAcrossLanguages(t *testing.T) {
	tree := FromSeasons(sample())
	_, err := tree.Delete(Selector{Number: 1, Quality: "720p"})
	require.NoError(t, err)

	got := tree.Seasons()
	require.Len(t, got, 2, "the hi season lost its only version")
	assert.Equal(t, "en", got[0].Language)
	assert.Equal(t, []models.Version{{Quality: "1080p", FileLink: "b"}}, got[0].Versions)
}

func TestDeleteWholeSeason(t *testing.T) {
	tree := FromSeasons(sample())
	n, err := tree.Delete(Selector{Number: 1})
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []models.Season{sample()[2]}, tree.Seasons())
}

func TestDeleteMissingSeason(t *testing.T) {
	tree := FromSeasons(sample())
	_, err := tree.Delete(Selector{Number: 9})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = tree.Delete(Selector{Number: 2, Language: "fr"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, sample(), tree.Seasons(), "failed delete leaves the tree alone")
}

func TestKeysAreCaseSensitive(t *testing.T) {
	tree := FromSeasons(sample())
	require.NoError(t, tree.UpsertLeaf(1, "EN", "720p", "x"))
	require.NoError(t, tree.UpsertLeaf(1, "en", "720P", "y"))

	got := tree.Seasons()
	require.Len(t, got, 4, "EN is a season of its own")
	assert.Equal(t, "a", got[0].Versions[0].FileLink)
	assert.Equal(t, models.Version{Quality: "720P", FileLink: "y"}, got[0].Versions[2])

	_, err := tree.Delete(Selector{Number: 2, Language: "EN"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
