package adapters

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/APoniatowski/awscli-local/internal/shared"
	"github.com/APoniatowski/awscli-local/internal/types"
)

const defaultIndexTimeout = 60 * time.Second
const defaultIndexBaseURL = "https://pypi.org"

// sourceDistType is the canonical source distribution artifact type on
// the index. Wheels are never used for checksum verification.
const sourceDistType = "sdist"

// PyPIIndexAdapter queries the PyPI JSON API. Every call is a single
// unauthenticated request attempt with no retry.
type PyPIIndexAdapter struct {
	BaseURL string
	client  *http.Client
}

func NewPyPIIndexAdapter(baseURL string, timeoutSec int) PyPIIndexAdapter {
	timeout := time.Duration(timeoutSec) * time.Second
	if timeout <= 0 {
		timeout = defaultIndexTimeout
	}
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = defaultIndexBaseURL
	}
	return PyPIIndexAdapter{
		BaseURL: base,
		client:  &http.Client{Timeout: timeout},
	}
}

type releaseResponse struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
	URLs []struct {
		PackageType string `json:"packagetype"`
		URL         string `json:"url"`
		Digests     struct {
			SHA256 string `json:"sha256"`
		} `json:"digests"`
	} `json:"urls"`
}

// LatestVersion returns the latest published version of a package.
func (a PyPIIndexAdapter) LatestVersion(ctx context.Context, name string) (string, error) {
	url := fmt.Sprintf("%s/pypi/%s/json", a.BaseURL, name)
	resp, err := a.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("failed to fetch latest version from index").
			WithCause(shared.HTTPStatusError(resp.StatusCode, url))
	}
	var payload releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("failed to decode index response").
			WithCause(err)
	}
	version := strings.TrimSpace(payload.Info.Version)
	if version == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("index returned no version for " + name)
	}
	log.Debug().Str("package", name).Str("version", version).Msg("latest version fetched")
	return version, nil
}

// ReleaseRecord returns the source distribution entry of a specific
// version. A version record without a source distribution is a fatal
// lookup failure, not a fallback to another artifact type.
func (a PyPIIndexAdapter) ReleaseRecord(ctx context.Context, name string, version string) (types.ReleaseRecord, error) {
	url := fmt.Sprintf("%s/pypi/%s/%s/json", a.BaseURL, name, version)
	resp, err := a.get(ctx, url)
	if err != nil {
		return types.ReleaseRecord{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return types.ReleaseRecord{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("version " + version + " not found on index")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return types.ReleaseRecord{}, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("failed to fetch release record").
			WithCause(shared.HTTPStatusError(resp.StatusCode, url))
	}
	var payload releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return types.ReleaseRecord{}, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("failed to decode release record").
			WithCause(err)
	}
	for _, artifact := range payload.URLs {
		if artifact.PackageType != sourceDistType {
			continue
		}
		log.Debug().
			Str("package", name).
			Str("version", version).
			Str("url", artifact.URL).
			Msg("source distribution located")
		return types.ReleaseRecord{
			Version:   version,
			SourceURL: artifact.URL,
			SHA256:    artifact.Digests.SHA256,
		}, nil
	}
	return types.ReleaseRecord{}, errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("no source distribution found for version " + version)
}

// DownloadDigest downloads an artifact and returns the sha256 of its
// content as a hex string.
func (a PyPIIndexAdapter) DownloadDigest(ctx context.Context, url string) (string, error) {
	resp, err := a.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("failed to download artifact").
			WithCause(shared.HTTPStatusError(resp.StatusCode, url))
	}
	hasher := sha256.New()
	written, err := io.Copy(hasher, resp.Body)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("failed to read artifact body").
			WithCause(err)
	}
	digest := hex.EncodeToString(hasher.Sum(nil))
	log.Debug().Str("url", url).Int64("bytes", written).Str("sha256", digest).Msg("artifact downloaded")
	return digest, nil
}

func (a PyPIIndexAdapter) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to build index request").
			WithCause(err)
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("failed to reach package index").
			WithCause(err)
	}
	return resp, nil
}
