package qbittorrent

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuthentication is returned when the daemon rejects the credentials
	ErrAuthentication = errors.New("qbittorrent authentication failed")
	// ErrRemoteCall is returned when a Web API call fails
	ErrRemoteCall = errors.New("qbittorrent call failed")
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the subset of the qBittorrent Web API v2 used for ingestion
type Client interface {
	Login(ctx context.Context) error
	Categories(ctx context.Context) (map[string]Category, error)
	Torrents(ctx context.Context) ([]Torrent, error)
	Add(ctx context.Context, request AddRequest) error
	SetLocation(ctx context.Context, hash, location string) error
	SetDownloadLimit(ctx context.Context, hash string, bytesPerSecond int64) error
	SetUploadLimit(ctx context.Context, hash string, bytesPerSecond int64) error
	Files(ctx context.Context, hash string) ([]File, error)
	SetFilePriority(ctx context.Context, hash string, ids []int, priority int) error
	RenameFile(ctx context.Context, hash, oldPath, newPath string) error
	Resume(ctx context.Context, hash string) error
	Delete(ctx context.Context, hash string, deleteFiles bool) error
}

// Category is a torrent category configured in the daemon
type Category struct {
	Name     string `json:"name"`
	SavePath string `json:"savePath"`
}

// Torrent is an entry from the torrent list
type Torrent struct {
	Hash     string  `json:"hash"`
	Name     string  `json:"name"`
	AddedOn  int64   `json:"added_on"`
	Category string  `json:"category"`
	SavePath string  `json:"save_path"`
	Size     int64   `json:"size"`
	Progress float64 `json:"progress"`
	State    string  `json:"state"`
}

// File is a file inside a torrent. Name is the path relative to the torrent root.
type File struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	Priority int    `json:"priority"`
}

// AddRequest submits a .torrent file. The torrent is always added paused.
type AddRequest struct {
	Filename string
	Data     []byte
	Category string
	SavePath string
}

// File priorities understood by filePrio
const (
	PrioritySkip   = 0
	PriorityNormal = 1
)

// StatusError is returned for a non-2xx response
type StatusError struct {
	Endpoint   string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s: unexpected status %s", ErrRemoteCall, e.Endpoint, e.Status)
}

func (e *StatusError) Unwrap() error {
	return ErrRemoteCall
}

// IsStatus reports whether err is a StatusError with the given code
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}
