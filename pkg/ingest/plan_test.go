package ingest

import (
	"testing"

	"github.com/kasuboski/ingestz/pkg/qbittorrent"
	"github.com/kasuboski/ingestz/pkg/release"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanFiles_Movie(t *testing.T) {
	d, err := release.Classify("Some.Movie.2021.1080p")
	require.NoError(t, err)

	files := []qbittorrent.File{
		{Index: 0, Name: "Some.Movie.2021.1080p/sample.mkv", Size: 50},
		{Index: 1, Name: "Some.Movie.2021.1080p/Some.Movie.2021.1080p.MKV", Size: 5000},
		{Index: 2, Name: "Some.Movie.2021.1080p/Subs/English.srt", Size: 10},
		{Index: 3, Name: "Some.Movie.2021.1080p/info.nfo", Size: 1},
		{Index: 4, Name: "Some.Movie.2021.1080p/Subs/French.forced.srt", Size: 10},
	}

	plan, err := PlanFiles(files, d)
	require.NoError(t, err)

	assert.Equal(t, files[1], plan.Video)
	assert.Equal(t, []qbittorrent.File{files[2], files[4]}, plan.Subtitles)
	assert.Equal(t, []int{1, 2, 4}, plan.Keep)
	assert.Equal(t, []int{0, 3}, plan.Drop)
	assert.Equal(t, []Rename{
		{From: files[1].Name, To: "Some Movie (2021)/Some Movie (2021).mkv"},
		{From: files[2].Name, To: "Some Movie (2021)/Some Movie (2021).en.srt"},
		{From: files[4].Name, To: "Some Movie (2021)/Some Movie (2021).fr.forced.srt"},
	}, plan.Renames)
}

func TestPlanFiles_Episode(t *testing.T) {
	d, err := release.Classify("Show.Name.S02E05.1080p")
	require.NoError(t, err)

	files := []qbittorrent.File{
		{Index: 0, Name: "Show.Name.S02E05.1080p.mkv", Size: 900},
		{Index: 1, Name: "Subs/2_English.srt", Size: 10},
		{Index: 2, Name: "Subs/3_English.srt", Size: 10},
		{Index: 3, Name: "Subs/4_English.srt", Size: 10},
	}

	plan, err := PlanFiles(files, d)
	require.NoError(t, err)

	assert.Empty(t, plan.Drop)
	assert.Equal(t, []int{0, 1, 2, 3}, plan.Keep)
	assert.Equal(t, []Rename{
		{From: "Show.Name.S02E05.1080p.mkv", To: "Show Name/Season 02/Show Name - S02E05.mkv"},
		{From: "Subs/2_English.srt", To: "Show Name/Season 02/Show Name - S02E05.en.srt"},
		{From: "Subs/3_English.srt", To: "Show Name/Season 02/Show Name - S02E05.en.2.srt"},
		{From: "Subs/4_English.srt", To: "Show Name/Season 02/Show Name - S02E05.en.3.srt"},
	}, plan.Renames)
}

func TestPlanFiles_LargestVideoWins(t *testing.T) {
	d, err := release.Classify("Movie.2020")
	require.NoError(t, err)

	files := []qbittorrent.File{
		{Index: 0, Name: "a.mp4", Size: 100},
		{Index: 1, Name: "b.avi", Size: 300},
		{Index: 2, Name: "c.mkv", Size: 300},
		{Index: 3, Name: "huge.iso", Size: 9000},
	}

	plan, err := PlanFiles(files, d)
	require.NoError(t, err)
	assert.Equal(t, "b.avi", plan.Video.Name)
	assert.Equal(t, "Movie (2020)/Movie (2020).avi", plan.Renames[0].To)
	assert.Equal(t, []int{0, 2, 3}, plan.Drop)
}

func TestPlanFiles_NoVideo(t *testing.T) {
	d, err := release.Classify("Movie.2020")
	require.NoError(t, err)

	_, err = PlanFiles([]qbittorrent.File{
		{Index: 0, Name: "Movie.2020/movie.nfo", Size: 1},
		{Index: 1, Name: "Movie.2020/English.srt", Size: 1},
	}, d)
	assert.ErrorIs(t, err, ErrNoVideoFile)

	_, err = PlanFiles(nil, d)
	assert.ErrorIs(t, err, ErrNoVideoFile)
}

func TestResolveTarget(t *testing.T) {
	config := testConfig()

	tests := []struct {
		name       string
		kind       release.Kind
		categories map[string]qbittorrent.Category
		want       Target
	}{
		{
			name: "first preference present wins",
			kind: release.Movie,
			categories: map[string]qbittorrent.Category{
				"MOVIES": {Name: "MOVIES", SavePath: "/upper"},
				"Movies": {Name: "Movies", SavePath: "/title"},
			},
			want: Target{Category: "Movies", Location: "/title"},
		},
		{
			name:       "category without save path",
			kind:       release.TVEpisode,
			categories: map[string]qbittorrent.Category{"TV": {Name: "TV"}},
			want:       Target{Category: "TV"},
		},
		{
			name:       "name filled from key",
			kind:       release.TVEpisode,
			categories: map[string]qbittorrent.Category{"tv": {SavePath: "/tv"}},
			want:       Target{Category: "tv", Location: "/tv"},
		},
		{
			name:       "movie fallback",
			kind:       release.Movie,
			categories: map[string]qbittorrent.Category{"tv": {Name: "tv"}},
			want:       Target{Location: "D:/Movies"},
		},
		{
			name:       "tv fallback",
			kind:       release.TVEpisode,
			categories: nil,
			want:       Target{Location: "D:/TV"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, config.ResolveTarget(tt.kind, tt.categories))
		})
	}
}
