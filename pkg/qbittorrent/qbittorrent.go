package qbittorrent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"sync"

	"github.com/kasuboski/ingestz/pkg/logger"
)

const (
	loginEndpoint            = "/api/v2/auth/login"
	categoriesEndpoint       = "/api/v2/torrents/categories"
	torrentsEndpoint         = "/api/v2/torrents/info"
	addEndpoint              = "/api/v2/torrents/add"
	setLocationEndpoint      = "/api/v2/torrents/setLocation"
	setDownloadLimitEndpoint = "/api/v2/torrents/setDownloadLimit"
	setUploadLimitEndpoint   = "/api/v2/torrents/setUploadLimit"
	filesEndpoint            = "/api/v2/torrents/files"
	filePrioEndpoint         = "/api/v2/torrents/filePrio"
	renameFileEndpoint       = "/api/v2/torrents/renameFile"
	resumeEndpoint           = "/api/v2/torrents/resume"
	startEndpoint            = "/api/v2/torrents/start"
	deleteEndpoint           = "/api/v2/torrents/delete"

	okBody    = "Ok."
	failsBody = "Fails."
)

var _ Client = (*QBittorrentClient)(nil)

type QBittorrentClient struct {
	http     HTTPClient
	baseURL  *url.URL
	username string
	password string

	mutex    *sync.Mutex
	loggedIn bool
}

// New creates a client for the daemon at baseURL. The http client must keep
// cookies, the session id is a cookie set by Login.
func New(http HTTPClient, baseURL, username, password string) (*QBittorrentClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid qbittorrent url: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid qbittorrent url: %q", baseURL)
	}

	return &QBittorrentClient{
		http:     http,
		baseURL:  u,
		username: username,
		password: password,
		mutex:    new(sync.Mutex),
	}, nil
}

// call describes a single Web API request so it can be replayed after a re-login
type call struct {
	method      string
	endpoint    string
	query       url.Values
	body        []byte
	contentType string
}

func get(endpoint string, query url.Values) call {
	return call{method: http.MethodGet, endpoint: endpoint, query: query}
}

func postForm(endpoint string, form url.Values) call {
	return call{
		method:      http.MethodPost,
		endpoint:    endpoint,
		body:        []byte(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	}
}

// Login authenticates with the configured credentials
func (c *QBittorrentClient) Login(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	form := url.Values{}
	form.Set("username", c.username)
	form.Set("password", c.password)

	b, err := c.send(ctx, postForm(loginEndpoint, form))
	if err != nil {
		if IsStatus(err, http.StatusForbidden) {
			return fmt.Errorf("%w: client is banned after too many failed attempts", ErrAuthentication)
		}
		return err
	}

	if strings.TrimSpace(string(b)) != okBody {
		return fmt.Errorf("%w: unexpected response %q", ErrAuthentication, strings.TrimSpace(string(b)))
	}

	c.setLoggedIn(true)
	log.Debugw("logged in to qbittorrent", "url", c.baseURL.String())
	return nil
}

// Categories lists the configured categories keyed by name
func (c *QBittorrentClient) Categories(ctx context.Context) (map[string]Category, error) {
	b, err := c.do(ctx, get(categoriesEndpoint, nil))
	if err != nil {
		return nil, err
	}

	categories := make(map[string]Category)
	if err := decode(categoriesEndpoint, b, &categories); err != nil {
		return nil, err
	}

	for name, category := range categories {
		if category.Name == "" {
			category.Name = name
			categories[name] = category
		}
	}

	return categories, nil
}

// Torrents lists every torrent known to the daemon
func (c *QBittorrentClient) Torrents(ctx context.Context) ([]Torrent, error) {
	b, err := c.do(ctx, get(torrentsEndpoint, nil))
	if err != nil {
		return nil, err
	}

	torrents := make([]Torrent, 0)
	if err := decode(torrentsEndpoint, b, &torrents); err != nil {
		return nil, err
	}

	return torrents, nil
}

// Add submits a .torrent file in the paused state
func (c *QBittorrentClient) Add(ctx context.Context, request AddRequest) error {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("torrents", request.Filename)
	if err != nil {
		return err
	}

	if _, err := part.Write(request.Data); err != nil {
		return err
	}

	fields := [][2]string{
		// paused for api < 2.11, stopped for qBittorrent 5
		{"paused", "true"},
		{"stopped", "true"},
	}
	if request.Category != "" {
		fields = append(fields, [2]string{"category", request.Category})
	}
	if request.SavePath != "" {
		fields = append(fields, [2]string{"savepath", request.SavePath})
	}

	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return err
		}
	}

	if err := w.Close(); err != nil {
		return err
	}

	b, err := c.do(ctx, call{
		method:      http.MethodPost,
		endpoint:    addEndpoint,
		body:        body.Bytes(),
		contentType: w.FormDataContentType(),
	})
	if err != nil {
		return err
	}

	if strings.TrimSpace(string(b)) == failsBody {
		return fmt.Errorf("%w: %s: torrent was rejected", ErrRemoteCall, addEndpoint)
	}

	return nil
}

// SetLocation moves the torrent's save path
func (c *QBittorrentClient) SetLocation(ctx context.Context, hash, location string) error {
	form := url.Values{}
	form.Set("hashes", hash)
	form.Set("location", location)

	_, err := c.do(ctx, postForm(setLocationEndpoint, form))
	return err
}

// SetDownloadLimit caps the torrent's download rate in bytes per second
func (c *QBittorrentClient) SetDownloadLimit(ctx context.Context, hash string, bytesPerSecond int64) error {
	return c.setLimit(ctx, setDownloadLimitEndpoint, hash, bytesPerSecond)
}

// SetUploadLimit caps the torrent's upload rate in bytes per second
func (c *QBittorrentClient) SetUploadLimit(ctx context.Context, hash string, bytesPerSecond int64) error {
	return c.setLimit(ctx, setUploadLimitEndpoint, hash, bytesPerSecond)
}

func (c *QBittorrentClient) setLimit(ctx context.Context, endpoint, hash string, bytesPerSecond int64) error {
	form := url.Values{}
	form.Set("hashes", hash)
	form.Set("limit", strconv.FormatInt(bytesPerSecond, 10))

	_, err := c.do(ctx, postForm(endpoint, form))
	return err
}

// Files lists the files of a torrent
func (c *QBittorrentClient) Files(ctx context.Context, hash string) ([]File, error) {
	query := url.Values{}
	query.Set("hash", hash)

	b, err := c.do(ctx, get(filesEndpoint, query))
	if err != nil {
		return nil, err
	}

	var raw []struct {
		Index    *int   `json:"index"`
		Name     string `json:"name"`
		Size     int64  `json:"size"`
		Priority int    `json:"priority"`
	}
	if err := decode(filesEndpoint, b, &raw); err != nil {
		return nil, err
	}

	files := make([]File, 0, len(raw))
	for i, f := range raw {
		// daemons before api 2.8.2 omit the index, it is the list position
		index := i
		if f.Index != nil {
			index = *f.Index
		}

		files = append(files, File{
			Index:    index,
			Name:     f.Name,
			Size:     f.Size,
			Priority: f.Priority,
		})
	}

	return files, nil
}

// SetFilePriority sets the priority of several files in one call. No ids is a no-op.
func (c *QBittorrentClient) SetFilePriority(ctx context.Context, hash string, ids []int, priority int) error {
	if len(ids) == 0 {
		return nil
	}

	idStrings := make([]string, 0, len(ids))
	for _, id := range ids {
		idStrings = append(idStrings, strconv.Itoa(id))
	}

	form := url.Values{}
	form.Set("hash", hash)
	form.Set("id", strings.Join(idStrings, "|"))
	form.Set("priority", strconv.Itoa(priority))

	_, err := c.do(ctx, postForm(filePrioEndpoint, form))
	return err
}

// RenameFile moves a file inside the torrent. Missing directories are created by the daemon.
func (c *QBittorrentClient) RenameFile(ctx context.Context, hash, oldPath, newPath string) error {
	form := url.Values{}
	form.Set("hash", hash)
	form.Set("oldPath", oldPath)
	form.Set("newPath", newPath)

	_, err := c.do(ctx, postForm(renameFileEndpoint, form))
	return err
}

// Resume starts a paused torrent
func (c *QBittorrentClient) Resume(ctx context.Context, hash string) error {
	form := url.Values{}
	form.Set("hashes", hash)

	_, err := c.do(ctx, postForm(resumeEndpoint, form))
	if IsStatus(err, http.StatusNotFound) {
		// qBittorrent 5 renamed resume to start
		logger.FromCtx(ctx).Debugw("resume endpoint not found, using start", "hash", hash)
		_, err = c.do(ctx, postForm(startEndpoint, form))
	}

	return err
}

// Delete removes the torrent and optionally its downloaded data
func (c *QBittorrentClient) Delete(ctx context.Context, hash string, deleteFiles bool) error {
	form := url.Values{}
	form.Set("hashes", hash)
	form.Set("deleteFiles", strconv.FormatBool(deleteFiles))

	_, err := c.do(ctx, postForm(deleteEndpoint, form))
	return err
}

// do sends the call. A 403 after a successful login means the session expired,
// so the client logs in again and replays the call once.
func (c *QBittorrentClient) do(ctx context.Context, call call) ([]byte, error) {
	b, err := c.send(ctx, call)
	if err == nil || !IsStatus(err, http.StatusForbidden) || !c.isLoggedIn() {
		return b, err
	}

	log := logger.FromCtx(ctx)
	log.Debugw("session expired, logging in again", "endpoint", call.endpoint)

	c.setLoggedIn(false)
	if err := c.Login(ctx); err != nil {
		return nil, err
	}

	return c.send(ctx, call)
}

func (c *QBittorrentClient) send(ctx context.Context, call call) ([]byte, error) {
	if c.http == nil {
		return nil, errors.New("http client is nil")
	}

	log := logger.FromCtx(ctx)

	u := *c.baseURL
	u.Path = path.Join(u.Path, call.endpoint)
	if len(call.query) > 0 {
		u.RawQuery = call.query.Encode()
	}

	var body io.Reader
	if call.body != nil {
		body = bytes.NewReader(call.body)
	}

	req, err := http.NewRequestWithContext(ctx, call.method, u.String(), body)
	if err != nil {
		return nil, err
	}

	// the web ui rejects requests whose referer does not match its own origin
	req.Header.Set("Referer", c.baseURL.String())
	if call.contentType != "" {
		req.Header.Set("Content-Type", call.contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRemoteCall, call.endpoint, err)
	}
	defer resp.Body.Close()

	log.Debugw("qbittorrent call", "method", call.method, "endpoint", call.endpoint, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Endpoint:   call.endpoint,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: failed to read response: %w", ErrRemoteCall, call.endpoint, err)
	}

	return b, nil
}

func decode(endpoint string, b []byte, v any) error {
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%w: %s: failed to decode response: %w", ErrRemoteCall, endpoint, err)
	}
	return nil
}

func (c *QBittorrentClient) setLoggedIn(loggedIn bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.loggedIn = loggedIn
}

func (c *QBittorrentClient) isLoggedIn() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.loggedIn
}
