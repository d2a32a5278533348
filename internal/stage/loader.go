package stage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Loader fetches stage data by stage identifier.
type Loader interface {
	Load(ctx context.Context, stageID string) (*Stage, error)
}

// Parse decodes and validates a raw stage document. The returned stage
// carries the given ID. Decode failures wrap ErrUnavailable; structural
// violations wrap ErrInvalidStage.
func Parse(stageID string, raw []byte) (*Stage, error) {
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var st Stage
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("%w: decode stage %q: %v", ErrUnavailable, stageID, err)
	}
	st.ID = stageID

	if err := Validate(&st); err != nil {
		return nil, err
	}
	return &st, nil
}

// FileLoader reads stage files named <stageID>.json from a directory.
type FileLoader struct {
	dir string
}

// NewFileLoader creates a FileLoader rooted at dir.
func NewFileLoader(dir string) *FileLoader {
	return &FileLoader{dir: dir}
}

func (l *FileLoader) Load(_ context.Context, stageID string) (*Stage, error) {
	raw, err := os.ReadFile(filepath.Join(l.dir, stageID+".json"))
	if err != nil {
		return nil, fmt.Errorf("%w: read stage %q: %v", ErrUnavailable, stageID, err)
	}
	return Parse(stageID, raw)
}

// StageIDs lists the stage identifiers available in the directory,
// sorted by file name. Files that fail to parse are still listed; they
// surface their errors on load.
func (l *FileLoader) StageIDs() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read stage dir %q: %v", ErrUnavailable, l.dir, err)
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}

// HTTPLoader fetches stage documents from <baseURL>/<stageID>.json.
type HTTPLoader struct {
	baseURL string
	client  *http.Client
}

// NewHTTPLoader creates an HTTPLoader. A nil client uses http.DefaultClient.
// No timeout is imposed here; callers bound the fetch via ctx.
func NewHTTPLoader(baseURL string, client *http.Client) *HTTPLoader {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPLoader{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

func (l *HTTPLoader) Load(ctx context.Context, stageID string) (*Stage, error) {
	url := l.baseURL + "/" + stageID + ".json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request for stage %q: %v", ErrUnavailable, stageID, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch stage %q: %v", ErrUnavailable, stageID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: fetch stage %q: status %d", ErrUnavailable, stageID, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read stage %q: %v", ErrUnavailable, stageID, err)
	}
	return Parse(stageID, raw)
}
