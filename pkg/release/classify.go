package release

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/oapi-codegen/nullable"
	"golang.org/x/text/unicode/norm"
)

const (
	separatorPattern = `[._\[\]()\s]+`
	seasonEpisode    = `(?i)S(\d{1,2})E(\d{1,2})(?:E(\d{1,2}))?`
	crossEpisode     = `\b(\d{1,2})x(\d{1,2})\b`
	yearPattern      = `\b(?:19|20)\d{2}\b`
	illegalPathChars = `[<>:"/\\|?*]`
)

var (
	separatorRegex     = regexp.MustCompile(separatorPattern)
	seasonEpisodeRegex = regexp.MustCompile(seasonEpisode)
	crossEpisodeRegex  = regexp.MustCompile(crossEpisode)
	yearRegex          = regexp.MustCompile(yearPattern)
	illegalPathRegex   = regexp.MustCompile(illegalPathChars)
)

// Classify turns a raw release filename into a Descriptor.
// A name with a season/episode marker is always an episode, even when a year is present.
func Classify(raw string) (Descriptor, error) {
	if IsTV(raw) {
		return ParseTV(raw)
	}

	return ParseMovie(raw)
}

// IsTV reports whether the name carries an SxxEyy or NxM marker
func IsTV(raw string) bool {
	_, ok := findMarker(Clean(raw))
	return ok
}

// Clean collapses runs of separators into single spaces and trims the result
func Clean(raw string) string {
	s := norm.NFC.String(raw)
	s = separatorRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ParseMovie extracts the title and year of a movie release
func ParseMovie(raw string) (Descriptor, error) {
	var d Descriptor
	cleaned := Clean(raw)

	locs := yearRegex.FindAllStringIndex(cleaned, -1)
	if len(locs) == 0 {
		return d, parseError("no year found")
	}

	for _, loc := range locs {
		title := trimTitle(cleaned[:loc[0]])
		if title == "" {
			// a leading year is part of the title, e.g. "2012 2009"
			continue
		}

		year, _ := strconv.Atoi(cleaned[loc[0]:loc[1]])
		d = Descriptor{
			Kind:   Movie,
			Title:  title,
			Year:   nullable.NewNullableWithValue(year),
			Folder: fmt.Sprintf("%s (%d)", title, year),
		}
		return d, nil
	}

	return d, parseError("no title found")
}

// ParseTV extracts the show, season and episode of an episode release
func ParseTV(raw string) (Descriptor, error) {
	var d Descriptor
	cleaned := Clean(raw)

	m, ok := findMarker(cleaned)
	if !ok {
		return d, parseError("no season/episode detected")
	}

	cut := m.start
	var year int
	if loc := yearRegex.FindStringIndex(cleaned); loc != nil {
		year, _ = strconv.Atoi(cleaned[loc[0]:loc[1]])
		if loc[0] < cut {
			cut = loc[0]
		}
	}

	title := trimTitle(cleaned[:cut])
	if title == "" {
		return d, parseError("no title found")
	}

	d = Descriptor{
		Kind:       TVEpisode,
		Title:      title,
		Folder:     title,
		Season:     m.season,
		SeasonTag:  fmt.Sprintf("%02d", m.season),
		Episode:    m.episode,
		EpisodeEnd: m.episodeEnd,
		EpisodeTag: m.tag,
	}

	if year != 0 {
		d.Year = nullable.NewNullableWithValue(year)
		d.Folder = fmt.Sprintf("%s (%d)", title, year)
	}

	return d, nil
}

type marker struct {
	start      int
	season     int
	episode    int
	episodeEnd int
	tag        string
}

// findMarker locates the season/episode marker in a cleaned name. SxxEyy wins over NxM.
// SxxEyy may be glued to the title, NxM needs word boundaries so resolutions like 1920x1080 never match.
// Season 0 is kept so specials land in "Season 00".
func findMarker(cleaned string) (marker, bool) {
	if loc := seasonEpisodeRegex.FindStringSubmatchIndex(cleaned); loc != nil {
		m := marker{
			start: loc[0],
			tag:   strings.ToUpper(cleaned[loc[0]:loc[1]]),
		}

		m.season = atoiOr(cleaned, loc[2], loc[3], 1)
		m.episode = atoiOr(cleaned, loc[4], loc[5], 0)
		m.episodeEnd = atoiOr(cleaned, loc[6], loc[7], 0)

		return m, true
	}

	if loc := crossEpisodeRegex.FindStringSubmatchIndex(cleaned); loc != nil {
		season := atoiOr(cleaned, loc[2], loc[3], 1)
		episode := atoiOr(cleaned, loc[4], loc[5], 0)
		return marker{
			start:   loc[0],
			season:  season,
			episode: episode,
			tag:     fmt.Sprintf("S%02dE%02d", season, episode),
		}, true
	}

	return marker{}, false
}

func atoiOr(s string, start, end, fallback int) int {
	if start < 0 || end < 0 {
		return fallback
	}

	n, err := strconv.Atoi(s[start:end])
	if err != nil {
		return fallback
	}

	return n
}

func trimTitle(s string) string {
	s = illegalPathRegex.ReplaceAllString(s, "")
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), "-"))
}
