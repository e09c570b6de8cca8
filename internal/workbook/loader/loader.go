// Package loader implements the workbook.Loader contract on top of excelize,
// with file, fs.FS, and remote-sheet strategies.
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/goliatone/go-mhdb/pkg/workbook"
)

// Loader implements workbook.Loader by delegating to file, fs.FS, or remote
// strategies. Construction helpers live in the top-level mhdb package.
type Loader struct {
	fs          fs.FS
	http        *http.Client
	allowRemote bool
	timeout     time.Duration
	logger      *slog.Logger
}

// Ensure the implementation satisfies the public interface.
var _ workbook.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options workbook.LoaderOptions) workbook.Loader {
	timeout := options.RequestTimeout

	var client *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		client = &clone
	case options.AllowRemote:
		client = &http.Client{Timeout: timeout}
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Loader{
		fs:          options.FileSystem,
		http:        client,
		allowRemote: client != nil,
		timeout:     timeout,
		logger:      logger,
	}
}

// Load fetches the workbook bytes for the source and parses them into named
// sheets. Remote fetch failures are recovered from the local cache; parse
// failures propagate.
func (l *Loader) Load(ctx context.Context, src workbook.Source) (*workbook.Workbook, error) {
	if src == nil {
		return nil, errors.New("workbook loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case workbook.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case workbook.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case workbook.SourceKindRemote:
		data, err = l.loadRemote(ctx, src)
	default:
		err = errors.New("workbook loader: unsupported source kind")
	}
	if err != nil {
		return nil, err
	}

	sheets, err := parseSheets(data)
	if err != nil {
		return nil, fmt.Errorf("workbook loader: parse %s: %w", src.Location(), err)
	}

	return workbook.New(src, sheets)
}

func parseSheets(data []byte) ([]*workbook.Sheet, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	var sheets []*workbook.Sheet
	for _, name := range file.GetSheetList() {
		rows, err := file.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		sheets = append(sheets, workbook.NewSheet(name, rows))
	}
	return sheets, nil
}
