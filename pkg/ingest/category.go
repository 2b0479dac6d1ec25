package ingest

import (
	"github.com/kasuboski/ingestz/pkg/qbittorrent"
	"github.com/kasuboski/ingestz/pkg/release"
)

// Target is where a torrent is added: a category, or a plain save path when no category matched
type Target struct {
	Category string
	Location string
}

// SelectCategory returns the first preferred category the daemon knows about
func SelectCategory(preferences []string, categories map[string]qbittorrent.Category) (qbittorrent.Category, bool) {
	for _, name := range preferences {
		if c, ok := categories[name]; ok {
			if c.Name == "" {
				c.Name = name
			}
			return c, true
		}
	}

	return qbittorrent.Category{}, false
}

// ResolveTarget picks the category or fallback path for a kind of release
func (c Config) ResolveTarget(kind release.Kind, categories map[string]qbittorrent.Category) Target {
	preferences, fallback := c.MovieCategories, c.MovieSavePath
	if kind == release.TVEpisode {
		preferences, fallback = c.TVCategories, c.TVSavePath
	}

	if category, ok := SelectCategory(preferences, categories); ok {
		return Target{Category: category.Name, Location: category.SavePath}
	}

	return Target{Location: fallback}
}
