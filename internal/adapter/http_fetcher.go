package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-lang-sync/internal/config"
	"github.com/MKhiriev/go-lang-sync/internal/logger"
	"github.com/MKhiriev/go-lang-sync/internal/utils"
	"github.com/MKhiriev/go-lang-sync/models"
)

const (
	commitsPerPage = 100
	maxCommitPages = 1000
)

type httpRemoteFetcher struct {
	client *utils.HTTPClient

	apiBase string
	rawBase string
	prefix  string

	logger *logger.Logger
}

type commitListItem struct {
	SHA string `json:"sha"`
}

type commitDetail struct {
	SHA   string `json:"sha"`
	Files []struct {
		Filename string  `json:"filename"`
		Status   string  `json:"status"`
		Patch    *string `json:"patch"`
	} `json:"files"`
}

// NewHTTPRemoteFetcher constructs a resty-backed [RemoteChangeFetcher] for a
// GitHub-shaped repository API.
//
// Returns an error if either base URL is empty or not an absolute URL.
func NewHTTPRemoteFetcher(remote config.Remote, adapterCfg config.Adapter, logger *logger.Logger) (RemoteChangeFetcher, error) {
	apiBase, err := normalizeBaseURL(remote.APIBase)
	if err != nil {
		return nil, fmt.Errorf("invalid remote api base: %w", err)
	}
	rawBase, err := normalizeBaseURL(remote.RawBase)
	if err != nil {
		return nil, fmt.Errorf("invalid remote raw base: %w", err)
	}

	client := utils.NewConfiguredHTTPClient(utils.HTTPClientOptions{
		Timeout:    adapterCfg.RequestTimeout,
		RetryCount: adapterCfg.Retries(),
		RetryWait:  adapterCfg.RetryWait,
		UserAgent:  adapterCfg.UserAgent,
		Token:      adapterCfg.Token,
	})

	f := &httpRemoteFetcher{
		client:  client,
		apiBase: apiBase,
		rawBase: rawBase,
		prefix:  normalizePrefix(remote.PathPrefix),
		logger:  logger,
	}

	f.logger.Debug().
		Str("func", "NewHTTPRemoteFetcher").
		Str("api_base", f.apiBase).
		Str("raw_base", f.rawBase).
		Str("prefix", f.prefix).
		Int("retry_count", adapterCfg.Retries()).
		Msg("remote fetcher configured")

	return f, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// normalizePrefix turns "lang", "/lang/" or "lang/" into "lang/"; empty stays empty.
func normalizePrefix(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return p + "/"
}

func (h *httpRemoteFetcher) FetchSnapshotFile(ctx context.Context, ref, name string) ([]byte, error) {
	log := logger.FromContext(ctx)

	fileURL, err := url.JoinPath(h.rawBase, ref, h.prefix+name)
	if err != nil {
		return nil, fmt.Errorf("build raw url for %q: %w", name, err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Get(fileURL)
	if err != nil {
		log.Err(err).
			Str("func", "httpRemoteFetcher.FetchSnapshotFile").
			Str("ref", ref).
			Str("path", name).
			Msg("raw file request failed")
		return nil, transportError("fetch "+name, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().
			Str("func", "httpRemoteFetcher.FetchSnapshotFile").
			Str("ref", ref).
			Str("path", name).
			Int("status", resp.StatusCode()).
			Msg("raw file request rejected")
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpRemoteFetcher) ListCommitsSince(ctx context.Context, since time.Time, track string) ([]string, error) {
	log := logger.FromContext(ctx)

	commitsURL := h.apiBase + "/commits"
	ids := make([]string, 0, commitsPerPage)

	for page := 1; page <= maxCommitPages; page++ {
		req := h.client.R().
			SetContext(ctx).
			SetHeader("Accept", "application/json").
			SetQueryParam("sha", track).
			SetQueryParam("since", since.UTC().Format(time.RFC3339)).
			SetQueryParam("per_page", strconv.Itoa(commitsPerPage)).
			SetQueryParam("page", strconv.Itoa(page))
		if h.prefix != "" {
			req.SetQueryParam("path", strings.TrimSuffix(h.prefix, "/"))
		}

		resp, err := req.Get(commitsURL)
		if err != nil {
			log.Err(err).
				Str("func", "httpRemoteFetcher.ListCommitsSince").
				Int("page", page).
				Msg("commit list request failed")
			return nil, transportError("list commits", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, err
		}

		var items []commitListItem
		if err = json.Unmarshal(resp.Body(), &items); err != nil {
			return nil, fmt.Errorf("%w: decode commit list page %d: %v", ErrMalformedResponse, page, err)
		}

		for _, item := range items {
			if item.SHA == "" {
				return nil, fmt.Errorf("%w: commit without sha on page %d", ErrMalformedResponse, page)
			}
			ids = append(ids, item.SHA)
		}

		if len(items) < commitsPerPage {
			log.Debug().
				Str("func", "httpRemoteFetcher.ListCommitsSince").
				Int("commits", len(ids)).
				Int("pages", page).
				Msg("commit list fetched")
			return ids, nil
		}
	}

	return nil, fmt.Errorf("%w: commit list exceeds %d pages", ErrMalformedResponse, maxCommitPages)
}

func (h *httpRemoteFetcher) FetchCommitDetail(ctx context.Context, id string) (models.RemoteCommit, error) {
	log := logger.FromContext(ctx)

	detailURL, err := url.JoinPath(h.apiBase, "commits", id)
	if err != nil {
		return models.RemoteCommit{}, fmt.Errorf("build commit url for %q: %w", id, err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(detailURL)
	if err != nil {
		log.Err(err).
			Str("func", "httpRemoteFetcher.FetchCommitDetail").
			Str("commit", id).
			Msg("commit detail request failed")
		return models.RemoteCommit{}, transportError("fetch commit "+id, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteCommit{}, err
	}

	var detail commitDetail
	if err = json.Unmarshal(resp.Body(), &detail); err != nil {
		return models.RemoteCommit{}, fmt.Errorf("%w: decode commit %s: %v", ErrMalformedResponse, id, err)
	}

	commit := models.RemoteCommit{ID: detail.SHA, Files: make([]models.RemoteFileChange, 0, len(detail.Files))}
	if commit.ID == "" {
		commit.ID = id
	}

	for _, f := range detail.Files {
		path, ok := h.localPath(f.Filename)
		if !ok {
			continue
		}
		commit.Files = append(commit.Files, models.RemoteFileChange{
			Path:   path,
			Status: models.ChangeStatus(f.Status),
			Patch:  f.Patch,
		})
	}

	log.Debug().
		Str("func", "httpRemoteFetcher.FetchCommitDetail").
		Str("commit", commit.ID).
		Int("files", len(commit.Files)).
		Int("skipped", len(detail.Files)-len(commit.Files)).
		Msg("commit detail fetched")

	return commit, nil
}

// localPath strips the remote prefix from a repository path. Paths outside
// the prefix are not ours.
func (h *httpRemoteFetcher) localPath(remotePath string) (string, bool) {
	if remotePath == "" {
		return "", false
	}
	if h.prefix == "" {
		return remotePath, true
	}
	if !strings.HasPrefix(remotePath, h.prefix) {
		return "", false
	}

	p := strings.TrimPrefix(remotePath, h.prefix)
	return p, p != ""
}
