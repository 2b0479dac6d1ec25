package release

import (
	"path/filepath"
	"slices"
	"strings"
)

const subtitleExtension = ".srt"

var (
	videoExtensions    = []string{".mp4", ".avi", ".mkv", ".m4v", ".ts", ".m2ts", ".mov", ".wmv"}
	subtitleExtensions = []string{subtitleExtension}
)

// IsVideo reports whether the name has a recognized video extension
func IsVideo(name string) bool {
	return slices.Contains(videoExtensions, Ext(name))
}

// IsSubtitle reports whether the name has a recognized subtitle extension
func IsSubtitle(name string) bool {
	return slices.Contains(subtitleExtensions, Ext(name))
}

// Ext returns the lowercased extension of the name, including the dot
func Ext(name string) string {
	return strings.ToLower(filepath.Ext(name))
}
