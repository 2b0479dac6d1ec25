package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/kasuboski/ingestz/pkg/ingest"
	mio "github.com/kasuboski/ingestz/pkg/io"
	"github.com/kasuboski/ingestz/pkg/release"
	"github.com/kasuboski/ingestz/pkg/torrentfile"
	"github.com/spf13/cobra"
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <name|torrent|dir>...",
	Short: "preview how releases would be classified",
	Long: `Preview how release names, .torrent files or folders of .torrent files would be
classified and where their video would be renamed to. Nothing is contacted.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fs := &mio.LocalFileSystem{}

		var names []string
		for _, arg := range args {
			found, err := previewNames(fs, arg)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", arg, err)
				continue
			}
			names = append(names, found...)
		}

		rows := classifyRows(fs, names)
		out := cmd.OutOrStdout()
		if isTerminal(out) {
			fmt.Fprintln(out, renderTable([]string{"Name", "Kind", "Target", "Detail"}, rows, nil))
			return
		}
		writeRows(out, rows)
	},
}

// previewNames expands a directory into its .torrent files, anything else is used as is
func previewNames(fs mio.FileIO, arg string) ([]string, error) {
	info, err := fs.Stat(arg)
	if err != nil || !info.IsDir() {
		return []string{arg}, nil
	}

	return ingest.Discover(fs, arg)
}

// classifyRows classifies each name the way ingest does. For a .torrent file the
// largest video inside it decides the target extension.
func classifyRows(fs mio.FileIO, names []string) [][]string {
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		base := filepath.Base(name)

		d, err := release.Classify(releaseName(base))
		if err != nil {
			rows = append(rows, []string{base, "", "", err.Error()})
			continue
		}

		ext := release.Ext(base)
		if !release.IsVideo(base) {
			ext = torrentVideoExt(fs, name)
		}

		rows = append(rows, []string{base, string(d.Kind), d.VideoPath(ext), ""})
	}
	return rows
}

// torrentVideoExt returns the extension of the largest video in a .torrent file, or ".mkv"
func torrentVideoExt(fs mio.FileIO, name string) string {
	const fallback = ".mkv"

	content, err := fs.ReadFile(name)
	if err != nil {
		return fallback
	}

	mi, err := torrentfile.Inspect(content)
	if err != nil {
		return fallback
	}

	var largest torrentfile.File
	for _, f := range mi.Files {
		if release.IsVideo(f.Path) && f.Length > largest.Length {
			largest = f
		}
	}
	if largest.Path == "" {
		return fallback
	}

	return release.Ext(largest.Path)
}

// releaseName strips a .torrent or media extension, other dots belong to the name
func releaseName(base string) string {
	ext := filepath.Ext(base)
	if strings.EqualFold(ext, ".torrent") || release.IsVideo(base) || release.IsSubtitle(base) {
		return strings.TrimSuffix(base, ext)
	}
	return base
}

func writeRows(w io.Writer, rows [][]string) {
	for _, r := range rows {
		fmt.Fprintln(w, strings.Join(r, "\t"))
	}
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
