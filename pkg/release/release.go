package release

import (
	"errors"
	"fmt"
	"path"

	"github.com/oapi-codegen/nullable"
)

// Kind is the kind of media a release holds
type Kind string

const (
	Movie     Kind = "movie"
	TVEpisode Kind = "tv"
)

var (
	// ErrParse is returned when a name carries no reliable movie or episode signal
	ErrParse = errors.New("parse error")
)

func parseError(reason string) error {
	return fmt.Errorf("%w: %s", ErrParse, reason)
}

// Descriptor is the structured form of a release filename
type Descriptor struct {
	Kind  Kind                   `json:"kind"`
	Title string                 `json:"title"`
	Year  nullable.Nullable[int] `json:"year,omitempty"`

	// Folder is the library folder name, "{title} ({year})" or "{title}"
	Folder string `json:"folder"`

	// tv only
	Season     int    `json:"season,omitempty"`
	SeasonTag  string `json:"seasonTag,omitempty"`
	Episode    int    `json:"episode,omitempty"`
	EpisodeEnd int    `json:"episodeEnd,omitempty"`
	EpisodeTag string `json:"episodeTag,omitempty"`
}

func (d Descriptor) String() string {
	if d.Kind == TVEpisode {
		return fmt.Sprintf("%s - %s", d.Folder, d.EpisodeTag)
	}
	return d.Folder
}

// SeasonDirectory returns the "Season XX" directory for episodes
func (d Descriptor) SeasonDirectory() string {
	return fmt.Sprintf("Season %s", d.SeasonTag)
}

// VideoPath returns the library relative path for the main video file with the given extension
func (d Descriptor) VideoPath(ext string) string {
	if d.Kind == TVEpisode {
		return path.Join(d.Folder, d.SeasonDirectory(), fmt.Sprintf("%s - %s%s", d.Folder, d.EpisodeTag, ext))
	}

	return path.Join(d.Folder, d.Folder+ext)
}

// SubtitlePath returns the library relative path for a subtitle rendered with the given tag
func (d Descriptor) SubtitlePath(tag string) string {
	if d.Kind == TVEpisode {
		return path.Join(d.Folder, d.SeasonDirectory(), fmt.Sprintf("%s - %s.%s%s", d.Folder, d.EpisodeTag, tag, subtitleExtension))
	}

	return path.Join(d.Folder, fmt.Sprintf("%s.%s%s", d.Folder, tag, subtitleExtension))
}
