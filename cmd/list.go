package cmd

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/kasuboski/ingestz/pkg/logger"
	"github.com/kasuboski/ingestz/pkg/qbittorrent"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list something",
	Long:  `list categories or torrents known to qBittorrent`,
}

// listCategoriesCmd represents the list categories command
var listCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "list qBittorrent categories",
	Long:  `list qBittorrent categories`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		client := loggedInClient(cmd.Context())

		categories, err := client.Categories(cmd.Context())
		if err != nil {
			log.Fatal("failed to list categories", zap.Error(err))
		}

		printTable([]string{"Name", "Save Path"}, categoryRows(categories), nil)
	},
}

// listTorrentsCmd represents the list torrents command
var listTorrentsCmd = &cobra.Command{
	Use:   "torrents",
	Short: "list torrents",
	Long:  `list torrents`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		client := loggedInClient(cmd.Context())

		torrents, err := client.Torrents(cmd.Context())
		if err != nil {
			log.Fatal("failed to list torrents", zap.Error(err))
		}

		printTable(
			[]string{"Hash", "Name", "Category", "Size", "Progress", "State", "Added"},
			torrentRows(torrents),
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
		)
	},
}

func loggedInClient(ctx context.Context) *qbittorrent.QBittorrentClient {
	log := logger.Get()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("failed to read configurations", zap.Error(err))
	}

	client, err := newClient(cfg)
	if err != nil {
		log.Fatal("failed to create qbittorrent client", zap.Error(err))
	}

	if err := client.Login(ctx); err != nil {
		log.Fatal("failed to login", zap.Error(err))
	}

	return client
}

func categoryRows(categories map[string]qbittorrent.Category) [][]string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	slices.Sort(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, categories[name].SavePath})
	}
	return rows
}

func torrentRows(torrents []qbittorrent.Torrent) [][]string {
	torrents = slices.Clone(torrents)
	slices.SortFunc(torrents, func(a, b qbittorrent.Torrent) int {
		return cmp.Compare(b.AddedOn, a.AddedOn)
	})

	rows := make([][]string, 0, len(torrents))
	for _, t := range torrents {
		rows = append(rows, []string{
			shortHash(t.Hash),
			t.Name,
			t.Category,
			humanize.Bytes(uint64(max(t.Size, 0))),
			strconv.FormatFloat(t.Progress*100, 'f', 1, 64) + "%",
			t.State,
			humanize.Time(time.Unix(t.AddedOn, 0)),
		})
	}
	return rows
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}

func printTable(headers []string, rows [][]string, aligns []columnAlignment) {
	if isTerminal(os.Stdout) {
		fmt.Println(renderTable(headers, rows, aligns))
		return
	}
	writeRows(os.Stdout, rows)
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listCategoriesCmd)
	listCmd.AddCommand(listTorrentsCmd)
}
