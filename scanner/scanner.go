// Package scanner ties file access, parsing, classification and reporting
// into per-file pipelines and multi-file scans.
package scanner

import (
	"context"
	"errors"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/viant/identscan/classifier"
	"github.com/viant/identscan/parser"
	"github.com/viant/identscan/report"
	"github.com/viant/identscan/repository"
)

// Scanner classifies identifier occurrences in JavaScript-family sources.
// Files are independent: each scan builds its own annotated tree and shares
// no mutable state, so files may be processed concurrently.
type Scanner struct {
	config   *Config
	parser   *parser.Parser
	detector *repository.Detector
	logger   *slog.Logger
}

// New creates a Scanner with the provided configuration.
func New(config *Config) *Scanner {
	if config == nil {
		config = DefaultConfig()
	}
	return &Scanner{
		config:   config,
		parser:   parser.New(),
		detector: repository.NewDetector(),
		logger:   slog.Default(),
	}
}

// ScanSource classifies one in-memory source and emits every record to
// reporter. An Unknown classification never fails the scan; only a parse
// rejection does.
func (s *Scanner) ScanSource(ctx context.Context, content []byte, filename string, reporter report.Reporter) error {
	root, err := s.parser.Parse(ctx, content, filename)
	if err != nil {
		return err
	}
	source := classifier.NewSource(filename, content)
	classifier.Walk(root, source, classifier.Options{Debug: s.config.Debug}, reporter.Report)
	return nil
}

// ScanFile reads and classifies one file. With RelativePaths set, records
// carry the path relative to the detected project root.
func (s *Scanner) ScanFile(ctx context.Context, path string, reporter report.Reporter) error {
	content, err := repository.ReadSource(ctx, path)
	if err != nil {
		return err
	}
	name := path
	if s.config.RelativePaths {
		if project, err := s.detector.DetectProject(path); err == nil {
			name = project.Relativize(path)
		}
	}
	return s.ScanSource(ctx, content, name, reporter)
}

// fileResult buffers one file's outcome so concurrent scans emit in input
// order and stay byte-identical to serial runs.
type fileResult struct {
	path    string
	hash    uint64
	records []classifier.Record
	err     error
}

// ScanPaths expands paths into source files and classifies them with
// bounded concurrency. Results are emitted in discovery order. A read
// failure always aborts the run; a syntax error aborts unless KeepGoing is
// configured, in which case it is reported and the file skipped. Files with
// identical content are classified once.
func (s *Scanner) ScanPaths(ctx context.Context, paths []string, reporter report.Reporter) error {
	sources, err := repository.DiscoverSources(paths...)
	if err != nil {
		return err
	}

	workers := s.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]*fileResult, len(sources))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, path := range sources {
		i, path := i, path
		group.Go(func() error {
			result := &fileResult{path: path}
			results[i] = result

			content, err := repository.ReadSource(groupCtx, path)
			if err != nil {
				// read failures are fatal for the whole run
				return err
			}
			result.hash, _ = contentHash(content)

			name := path
			if s.config.RelativePaths {
				if project, err := s.detector.DetectProject(path); err == nil {
					name = project.Relativize(path)
				}
			}
			root, err := s.parser.Parse(groupCtx, content, name)
			if err != nil {
				var syntaxErr *parser.SyntaxError
				if errors.As(err, &syntaxErr) && s.config.KeepGoing {
					result.err = err
					return nil
				}
				return err
			}
			source := classifier.NewSource(name, content)
			options := classifier.Options{Debug: s.config.Debug}
			classifier.Walk(root, source, options, func(record classifier.Record) {
				result.records = append(result.records, record)
			})
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	seen := map[uint64]string{}
	for _, result := range results {
		if result == nil {
			continue
		}
		if result.err != nil {
			reportError(reporter, s.logger, result.err)
			continue
		}
		if first, ok := seen[result.hash]; ok {
			s.logger.Debug("skipping duplicate content",
				"path", result.path, "first", first)
			continue
		}
		seen[result.hash] = result.path
		for _, record := range result.records {
			reporter.Report(record)
		}
	}
	return nil
}

// reportError routes a per-file failure to the reporter's error channel
// when it has one.
func reportError(reporter report.Reporter, logger *slog.Logger, err error) {
	type errorReporter interface {
		ReportError(error)
	}
	if sink, ok := reporter.(errorReporter); ok {
		sink.ReportError(err)
		return
	}
	logger.Error("scan failed", "error", err)
}
