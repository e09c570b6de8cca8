package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/goliatone/go-mhdb/pkg/workbook"
)

// sheetExportURL is the hosted-sheet export endpoint; %s is the document id.
const sheetExportURL = "https://docs.google.com/spreadsheets/d/%s/export?format=xlsx"

// loadRemote fetches the latest export of a hosted sheet and refreshes the
// local cache with it. Any fetch failure falls back to the cached copy
// without failing the load; a missing cache after a failed fetch is fatal.
func (l *Loader) loadRemote(ctx context.Context, src workbook.Source) ([]byte, error) {
	remote, ok := src.(workbook.RemoteSource)
	if !ok {
		return nil, errors.New("workbook loader: remote source missing doc id")
	}

	if !l.allowRemote || remote.DocID() == "" {
		return loadFile(ctx, remote.Location())
	}

	data, err := l.fetch(ctx, remote.DocID())
	if err != nil {
		l.logger.Warn("remote fetch failed, using cached workbook",
			slog.String("doc_id", remote.DocID()),
			slog.String("cache", remote.Location()),
			slog.String("error", err.Error()))
		return loadFile(ctx, remote.Location())
	}

	if err := l.refreshCache(remote.Location(), data); err != nil {
		l.logger.Warn("could not refresh workbook cache",
			slog.String("cache", remote.Location()),
			slog.String("error", err.Error()))
	}
	return data, nil
}

func (l *Loader) fetch(ctx context.Context, docID string) ([]byte, error) {
	if l.http == nil {
		return nil, errors.New("workbook loader: http client is not configured")
	}

	reqCtx := ctx
	var cancel context.CancelFunc
	if l.timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, fmt.Sprintf(sheetExportURL, docID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("workbook loader: unexpected status " + resp.Status)
	}

	return io.ReadAll(resp.Body)
}

func (l *Loader) refreshCache(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
