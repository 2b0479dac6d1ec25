package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/kasuboski/ingestz/pkg/checkpoint"
	mio "github.com/kasuboski/ingestz/pkg/io"
	"github.com/kasuboski/ingestz/pkg/logger"
	"github.com/kasuboski/ingestz/pkg/machine"
	"github.com/kasuboski/ingestz/pkg/qbittorrent"
	"github.com/kasuboski/ingestz/pkg/release"
	"github.com/kasuboski/ingestz/pkg/set"
	"github.com/kasuboski/ingestz/pkg/torrentfile"
)

const torrentExtension = ".torrent"

// ErrIdentificationTimeout is returned when a submitted torrent never shows up in the daemon
var ErrIdentificationTimeout = errors.New("identification timeout")

// Config is the immutable configuration of an Ingester
type Config struct {
	MovieCategories []string
	TVCategories    []string
	MovieSavePath   string
	TVSavePath      string

	// bytes per second
	DownloadLimit int64
	UploadLimit   int64

	IdentifyAttempts int
	IdentifyInterval time.Duration
}

// Ingester submits .torrent files to qBittorrent and lays them out for the library
type Ingester struct {
	client  qbittorrent.Client
	store   checkpoint.Store
	fs      mio.FileIO
	config  Config
	out     io.Writer
	verbose bool

	processed  *set.Set[string]
	categories map[string]qbittorrent.Category
}

type Option func(*Ingester)

// WithOutput sets where the per-file status lines are written
func WithOutput(w io.Writer) Option {
	return func(i *Ingester) {
		i.out = w
	}
}

// WithVerbose also prints a line for skipped files
func WithVerbose(verbose bool) Option {
	return func(i *Ingester) {
		i.verbose = verbose
	}
}

func New(client qbittorrent.Client, store checkpoint.Store, fs mio.FileIO, config Config, opts ...Option) *Ingester {
	i := &Ingester{
		client:     client,
		store:      store,
		fs:         fs,
		config:     config,
		out:        io.Discard,
		processed:  set.New[string](),
		categories: make(map[string]qbittorrent.Category),
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Discover lists the .torrent files directly inside dir, sorted by name
func Discover(fs mio.FileIO, dir string) ([]string, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	files := make([]string, 0)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), torrentExtension) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	slices.Sort(files)
	return files, nil
}

// Run processes every .torrent file in dir, one at a time. Per-file failures
// are reported in the Summary; only authentication failures and cancellation stop the run.
func (i *Ingester) Run(ctx context.Context, dir string) (Summary, error) {
	summary := Summary{RunID: uuid.NewString()}

	log := logger.FromCtx(ctx, "run", summary.RunID)
	ctx = logger.WithCtx(ctx, log)

	files, err := Discover(i.fs, dir)
	if err != nil {
		return summary, err
	}
	log.Infow("discovered torrent files", "dir", dir, "count", len(files))

	processed, err := i.store.Load(ctx)
	if err != nil {
		return summary, err
	}
	i.processed = processed

	if err := i.client.Login(ctx); err != nil {
		return summary, err
	}

	categories, err := i.client.Categories(ctx)
	if err != nil {
		return summary, err
	}
	i.categories = categories
	log.Debugw("loaded categories", "count", len(categories))

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result := i.Process(ctx, file)
		summary.add(result)
		i.report(result)

		if errors.Is(result.Err, qbittorrent.ErrAuthentication) {
			return summary, result.Err
		}
	}

	log.Infow("run finished",
		"succeeded", summary.Succeeded(),
		"skipped", summary.Skipped(),
		"failed", summary.Failed())

	return summary, nil
}

func (i *Ingester) report(r Result) {
	if r.Outcome == OutcomeSkipped && !i.verbose {
		return
	}
	fmt.Fprintln(i.out, r.Line())
}

// Process runs the full pipeline for one torrent file
func (i *Ingester) Process(ctx context.Context, file string) Result {
	result := Result{File: filepath.Base(file), State: StateNew}
	log := logger.FromCtx(ctx, "file", result.File)
	ctx = logger.WithCtx(ctx, log)

	content, err := i.fs.ReadFile(file)
	if err != nil {
		return i.fail(ctx, result, nil, fmt.Errorf("failed to read torrent file: %w", err))
	}

	result.Hash = checkpoint.Hash(content)
	if i.processed.Has(result.Hash) {
		log.Debugw("already processed", "hash", result.Hash)
		result.Outcome = OutcomeSkipped
		return result
	}

	p := &pipeline{
		Ingester: i,
		machine:  newPipeline(),
		result:   &result,
	}

	if err := p.run(ctx, content); err != nil {
		return i.fail(ctx, result, p.machine, err)
	}

	result.Outcome = OutcomeSucceeded
	return result
}

// fail records the failure and deletes the torrent from the daemon once it was identified
func (i *Ingester) fail(ctx context.Context, result Result, m *machine.StateMachine[State], cause error) Result {
	log := logger.FromCtx(ctx)

	result.Outcome = OutcomeFailed
	result.Err = cause

	if m != nil {
		result.State = m.Current()
		if err := m.Transition(StateFailed); err != nil {
			log.Errorw("failed to mark pipeline failed", "error", err)
		}

		if m.Visited(StateIdentified) && result.TorrentHash != "" {
			// cleanup still runs when the run itself was cancelled
			if err := i.client.Delete(context.WithoutCancel(ctx), result.TorrentHash, true); err != nil {
				log.Errorw("failed to delete torrent after failure", "hash", result.TorrentHash, "error", err)
				result.Err = fmt.Errorf("%w (cleanup failed: %w)", cause, err)
			} else {
				result.Compensated = true
				log.Debugw("deleted torrent after failure", "hash", result.TorrentHash)
			}
		}
	}

	log.Warnw("failed to ingest torrent", "state", result.State, "error", result.Err)

	failure := checkpoint.Failure{Filename: result.File, Reason: reason(result.Err)}
	if err := i.store.RecordFailure(ctx, failure); err != nil {
		log.Errorw("failed to record failure", "error", err)
	}

	return result
}

// pipeline carries one file through the states
type pipeline struct {
	*Ingester
	machine *machine.StateMachine[State]
	result  *Result
}

func (p *pipeline) transition(s State) error {
	if err := p.machine.Transition(s); err != nil {
		return err
	}
	p.result.State = s
	return nil
}

func (p *pipeline) run(ctx context.Context, content []byte) error {
	log := logger.FromCtx(ctx)

	name := strings.TrimSuffix(p.result.File, filepath.Ext(p.result.File))
	descriptor, err := release.Classify(name)
	if err != nil {
		return err
	}
	p.result.Descriptor = descriptor

	meta, err := torrentfile.Inspect(content)
	if err != nil {
		return err
	}
	p.result.Size = meta.TotalLength()

	target := p.config.ResolveTarget(descriptor.Kind, p.categories)
	log.Debugw("classified",
		"kind", descriptor.Kind,
		"target", descriptor.String(),
		"category", target.Category,
		"location", target.Location,
		"size", humanize.Bytes(uint64(p.result.Size)))

	snapshot, err := p.snapshot(ctx)
	if err != nil {
		return err
	}

	request := qbittorrent.AddRequest{
		Filename: p.result.File,
		Data:     content,
		Category: target.Category,
	}
	if target.Category == "" {
		request.SavePath = target.Location
	}

	if err := p.client.Add(ctx, request); err != nil {
		return err
	}
	if err := p.transition(StateSubmitted); err != nil {
		return err
	}

	hash, err := p.identify(ctx, snapshot, meta.InfoHash)
	if err != nil {
		return err
	}
	p.result.TorrentHash = hash
	if err := p.transition(StateIdentified); err != nil {
		return err
	}
	log = log.With("hash", hash)
	ctx = logger.WithCtx(ctx, log)

	if err := p.configure(ctx, hash, target); err != nil {
		return err
	}
	if err := p.transition(StateConfigured); err != nil {
		return err
	}

	files, err := p.client.Files(ctx, hash)
	if err != nil {
		return err
	}

	plan, err := PlanFiles(files, descriptor)
	if err != nil {
		return err
	}
	log.Debugw("planned files",
		"video", plan.Video.Name,
		"video_size", humanize.Bytes(uint64(plan.Video.Size)),
		"subtitles", len(plan.Subtitles),
		"dropped", len(plan.Drop))

	if err := p.client.SetFilePriority(ctx, hash, plan.Keep, qbittorrent.PriorityNormal); err != nil {
		return err
	}
	if err := p.client.SetFilePriority(ctx, hash, plan.Drop, qbittorrent.PrioritySkip); err != nil {
		return err
	}

	video, subtitles := plan.Renames[0], plan.Renames[1:]
	if err := p.rename(ctx, hash, video); err != nil {
		return err
	}
	if err := p.transition(StateRenamedVideo); err != nil {
		return err
	}

	for _, r := range subtitles {
		if err := p.rename(ctx, hash, r); err != nil {
			return err
		}
	}
	if err := p.transition(StateRenamedSubs); err != nil {
		return err
	}

	if err := p.client.Resume(ctx, hash); err != nil {
		return err
	}
	if err := p.transition(StateResumed); err != nil {
		return err
	}

	if err := p.store.Record(ctx, p.result.Hash); err != nil {
		return err
	}
	p.processed.Add(p.result.Hash)

	return p.transition(StateDone)
}

func (p *pipeline) snapshot(ctx context.Context) (*set.Set[string], error) {
	torrents, err := p.client.Torrents(ctx)
	if err != nil {
		return nil, err
	}

	ids := set.New[string]()
	for _, t := range torrents {
		ids.Add(t.Hash)
	}
	return ids, nil
}

// identify waits for a torrent that was not in the snapshot to appear
func (p *pipeline) identify(ctx context.Context, snapshot *set.Set[string], infoHash string) (string, error) {
	var hash string

	err := Await(ctx, p.config.IdentifyAttempts, p.config.IdentifyInterval, func(ctx context.Context) (bool, error) {
		torrents, err := p.client.Torrents(ctx)
		if err != nil {
			return false, err
		}

		hash = pickNew(torrents, snapshot, infoHash)
		return hash != "", nil
	})
	if errors.Is(err, ErrAwaitTimeout) {
		return "", fmt.Errorf("%w: torrent did not appear after %d attempts", ErrIdentificationTimeout, p.config.IdentifyAttempts)
	}
	if err != nil {
		return "", err
	}

	return hash, nil
}

// pickNew prefers the new torrent matching the file's info hash, then the most recently added one
func pickNew(torrents []qbittorrent.Torrent, snapshot *set.Set[string], infoHash string) string {
	var newest *qbittorrent.Torrent
	for idx := range torrents {
		t := &torrents[idx]
		if snapshot.Has(t.Hash) {
			continue
		}

		if infoHash != "" && strings.EqualFold(t.Hash, infoHash) {
			return t.Hash
		}

		if newest == nil || t.AddedOn >= newest.AddedOn {
			newest = t
		}
	}

	if newest == nil {
		return ""
	}
	return newest.Hash
}

func (p *pipeline) configure(ctx context.Context, hash string, target Target) error {
	log := logger.FromCtx(ctx)

	if target.Location != "" {
		if err := p.client.SetLocation(ctx, hash, target.Location); err != nil {
			return err
		}
	}

	if err := p.client.SetDownloadLimit(ctx, hash, p.config.DownloadLimit); err != nil {
		return err
	}
	if err := p.client.SetUploadLimit(ctx, hash, p.config.UploadLimit); err != nil {
		return err
	}

	log.Debugw("configured torrent",
		"location", target.Location,
		"download_limit", humanize.Bytes(uint64(p.config.DownloadLimit))+"/s",
		"upload_limit", humanize.Bytes(uint64(p.config.UploadLimit))+"/s")
	return nil
}

func (p *pipeline) rename(ctx context.Context, hash string, r Rename) error {
	if r.From == r.To {
		return nil
	}

	logger.FromCtx(ctx).Debugw("renaming file", "from", r.From, "to", r.To)
	return p.client.RenameFile(ctx, hash, r.From, r.To)
}
