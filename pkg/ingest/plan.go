package ingest

import (
	"errors"
	"fmt"
	"path"

	"github.com/kasuboski/ingestz/pkg/qbittorrent"
	"github.com/kasuboski/ingestz/pkg/release"
)

// ErrNoVideoFile is returned when a torrent has no file with a video extension
var ErrNoVideoFile = errors.New("no video file")

// Rename moves a file inside a torrent
type Rename struct {
	From string
	To   string
}

// Plan is what gets kept, dropped and renamed for one torrent
type Plan struct {
	Video     qbittorrent.File
	Subtitles []qbittorrent.File
	Keep      []int
	Drop      []int
	// Renames holds the video first, then subtitles in listing order
	Renames []Rename
}

// PlanFiles picks the main video and the subtitles of a torrent and computes their library paths
func PlanFiles(files []qbittorrent.File, d release.Descriptor) (Plan, error) {
	var plan Plan

	videoIndex := -1
	for i, f := range files {
		if !release.IsVideo(f.Name) {
			continue
		}
		if videoIndex == -1 || f.Size > files[videoIndex].Size {
			videoIndex = i
		}
	}

	if videoIndex == -1 {
		return plan, fmt.Errorf("%w among %d files", ErrNoVideoFile, len(files))
	}

	plan.Video = files[videoIndex]
	plan.Keep = make([]int, 0)
	plan.Drop = make([]int, 0)

	for i, f := range files {
		switch {
		case i == videoIndex:
			plan.Keep = append(plan.Keep, f.Index)
		case release.IsSubtitle(f.Name):
			plan.Subtitles = append(plan.Subtitles, f)
			plan.Keep = append(plan.Keep, f.Index)
		default:
			plan.Drop = append(plan.Drop, f.Index)
		}
	}

	plan.Renames = append(plan.Renames, Rename{
		From: plan.Video.Name,
		To:   d.VideoPath(release.Ext(plan.Video.Name)),
	})

	seen := make(map[string]int)
	for _, sub := range plan.Subtitles {
		tag := release.DetectSubTag(path.Base(sub.Name))
		seen[tag]++
		if n := seen[tag]; n > 1 {
			tag = fmt.Sprintf("%s.%d", tag, n)
		}

		plan.Renames = append(plan.Renames, Rename{
			From: sub.Name,
			To:   d.SubtitlePath(tag),
		})
	}

	return plan, nil
}
