// Package loader reads workload files listing the processes to simulate.
// The format mirrors the classic scheduling assignment layout: one process
// per line with tab or space separated columns
//
//	Process  Priority  Burst  Arrival
//
// optionally preceded by a header row and a dashed underline.
package loader

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/url"

	"github.com/viant/afs/storage"
	"github.com/viant/schedly/model"
)

// ErrMalformedRecord indicates a workload line that could not be parsed.
var ErrMalformedRecord = errors.New("loader: malformed record")

// Service loads workloads from any location the storage layer understands
// (plain paths, file://, embed://, ...).
type Service struct {
	fs      afs.Service
	baseURL string
	options []storage.Option
}

// New creates a loader. A non-empty baseURL is prepended to relative
// locations; options are passed through to the storage layer (e.g. an
// embedded file system).
func New(baseURL string, options ...storage.Option) *Service {
	return &Service{fs: afs.New(), baseURL: baseURL, options: options}
}

// Load reads and parses the workload at the supplied location, returning the
// processes in file order. File order is significant: it decides how
// simultaneous arrivals are admitted.
func (s *Service) Load(ctx context.Context, location string) ([]*model.Process, error) {
	URL := location
	if s.baseURL != "" && !strings.Contains(location, "://") {
		URL = url.Join(s.baseURL, location)
	}
	data, err := s.fs.DownloadWithURL(ctx, URL, s.options...)
	if err != nil {
		return nil, fmt.Errorf("failed to open workload %v: %w", location, err)
	}
	return Parse(data)
}

// Parse decodes workload bytes into processes, skipping an optional header
// block. Any malformed line aborts the parse.
func Parse(data []byte) ([]*model.Process, error) {
	var ret []*model.Process
	seen := map[string]bool{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if isHeader(fields[0]) {
			continue
		}
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: line %d: expected 4 columns, got %d", ErrMalformedRecord, lineNo, len(fields))
		}
		id := fields[0]
		if seen[id] {
			return nil, fmt.Errorf("%w: line %d: duplicate process id %q", ErrMalformedRecord, lineNo, id)
		}
		seen[id] = true

		priority, err := parseField(fields[1], "priority", lineNo)
		if err != nil {
			return nil, err
		}
		burst, err := parseField(fields[2], "burst", lineNo)
		if err != nil {
			return nil, err
		}
		arrival, err := parseField(fields[3], "arrival", lineNo)
		if err != nil {
			return nil, err
		}
		if burst <= 0 {
			return nil, fmt.Errorf("%w: line %d: burst must be > 0, got %d", ErrMalformedRecord, lineNo, burst)
		}
		if arrival < 0 {
			return nil, fmt.Errorf("%w: line %d: arrival must be >= 0, got %d", ErrMalformedRecord, lineNo, arrival)
		}
		ret = append(ret, model.NewProcess(id, priority, burst, arrival))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read workload: %w", err)
	}
	return ret, nil
}

func parseField(value, name string, lineNo int) (int, error) {
	ret, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: non-numeric %s %q", ErrMalformedRecord, lineNo, name, value)
	}
	return ret, nil
}

// isHeader flags the optional header row and its dashed underline.
func isHeader(first string) bool {
	if strings.EqualFold(first, "process") {
		return true
	}
	return strings.Trim(first, "-") == ""
}
