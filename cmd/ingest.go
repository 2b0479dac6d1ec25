package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kasuboski/ingestz/config"
	"github.com/kasuboski/ingestz/pkg/checkpoint"
	"github.com/kasuboski/ingestz/pkg/ingest"
	mio "github.com/kasuboski/ingestz/pkg/io"
	"github.com/kasuboski/ingestz/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const refusal = "refusing to touch qBittorrent without --unsafe, nothing was added"

var (
	unsafe  bool
	verbose bool
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest <torrent_folder>",
	Short: "add .torrent files to qBittorrent",
	Long: `Add every .torrent file in a folder to qBittorrent, keeping only the video and its
subtitles and renaming them into the library layout. Nothing is added without --unsafe.

Config keys are nested, e.g. qbittorrent.url, limits.download and checkpoint.processed.
The flat keys of the old config.txt format (qb_url, dl_limit, processed, ...) are rejected.`,
	Example: `  ingestz ingest ./torrents --unsafe
  ingestz ingest ./torrents --unsafe --verbose`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			_ = cmd.Usage()
			return
		}

		if !unsafe {
			fmt.Fprintln(cmd.OutOrStdout(), refusal)
			return
		}

		if verbose {
			logger.SetLevel(zapcore.DebugLevel)
		}
		log := logger.Get()

		cfg, err := loadConfig()
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		summary, err := runIngest(ctx, cfg, args[0])
		if err != nil {
			log.Errorw("ingest aborted", zap.Error(err))
		}

		if isTerminal(os.Stdout) && len(summary.Results) > 0 {
			fmt.Println(renderTable(summary.Headers(), summary.Rows(), nil))
		}
		log.Infow("ingest finished",
			"run", summary.RunID,
			"succeeded", summary.Succeeded(),
			"skipped", summary.Skipped(),
			"failed", summary.Failed(),
		)

		if err != nil {
			os.Exit(1)
		}
	},
}

func runIngest(ctx context.Context, cfg config.Config, dir string) (ingest.Summary, error) {
	target := cfg.Checkpoint.Processed
	if cfg.Checkpoint.Backend == checkpoint.BackendSQLite {
		target = cfg.Checkpoint.Database
	}

	lock, err := checkpoint.AcquireLock(checkpoint.LockPath(target))
	if err != nil {
		return ingest.Summary{}, err
	}
	defer lock.Release()

	store, err := checkpoint.Open(ctx, checkpoint.Options{
		Backend:   cfg.Checkpoint.Backend,
		Processed: cfg.Checkpoint.Processed,
		Failed:    cfg.Checkpoint.Failed,
		Database:  cfg.Checkpoint.Database,
	})
	if err != nil {
		return ingest.Summary{}, err
	}
	defer store.Close()

	client, err := newClient(cfg)
	if err != nil {
		return ingest.Summary{}, err
	}

	ingester := ingest.New(client, store, &mio.LocalFileSystem{}, ingestConfig(cfg),
		ingest.WithOutput(os.Stdout),
		ingest.WithVerbose(verbose),
	)

	return ingester.Run(ctx, dir)
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().BoolVar(&unsafe, "unsafe", false, "actually add torrents to qBittorrent")
	ingestCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print skipped files and debug logs")
}
