// Package scan walks a directory tree (or a freshly cloned repository),
// computes a fuzzy hash for every file under it, and reports which
// target files are near-duplicates of files in a known corpus. It is
// the thin, file-I/O-aware collaborator the engine package
// (github.com/byRen2002/tlsh-go/pkg/tlsh) explicitly stays free of.
package scan

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/byRen2002/tlsh-go/internal/common/logger"
	"github.com/byRen2002/tlsh-go/pkg/tlsh"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Match is a single known-corpus file found within Threshold distance
// of a target file.
type Match struct {
	File     string `json:"file"`
	Distance int    `json:"distance"`
}

// Result is the per-target-file outcome of a scan.
type Result struct {
	TargetFile string  `json:"target_file"`
	Hash       string  `json:"hash"`
	Matches    []Match `json:"matches"`
}

// Options configures a Scanner.
type Options struct {
	Workers    int
	Threshold  int
	Extensions []string
	CacheSize  int
}

// Scanner walks a known-files corpus and a target tree, hashing every
// file with pkg/tlsh and reporting near-duplicates.
type Scanner struct {
	opts    Options
	cache   *hashCache
	monitor *monitor
}

// New creates a Scanner. A zero or negative Workers defaults to 4
// workers, and a zero or negative CacheSize to 1000 entries.
func New(opts Options) *Scanner {
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = 1000
	}
	return &Scanner{
		opts:    opts,
		cache:   newHashCache(opts.CacheSize),
		monitor: newMonitor(5 * time.Second),
	}
}

// Scan hashes every eligible file under knownDir (the corpus) and every
// eligible file under targetDir, then reports, for each target file,
// which corpus files lie within opts.Threshold distance.
func (s *Scanner) Scan(ctx context.Context, targetDir, knownDir string) ([]*Result, error) {
	s.monitor.Start()
	defer s.monitor.Stop()

	known, err := s.hashTree(ctx, knownDir)
	if err != nil {
		return nil, fmt.Errorf("hashing known files: %w", err)
	}

	targets, err := s.listFiles(targetDir)
	if err != nil {
		return nil, fmt.Errorf("listing target files: %w", err)
	}

	var (
		results   []*Result
		resultsMu sync.Mutex
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)

	for _, targetFile := range targets {
		targetFile := targetFile
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			h, err := s.hashFile(targetFile)
			if err != nil {
				logger.Warn("skipping file", zap.String("file", targetFile), zap.Error(err))
				return nil
			}
			s.monitor.IncrementFilesHashed()

			var matches []Match
			for path, kh := range known {
				d := tlsh.Compare(h, kh, tlsh.WithLengthPenalty)
				if d <= s.opts.Threshold {
					matches = append(matches, Match{File: path, Distance: d})
				}
			}
			sort.Slice(matches, func(i, j int) bool { return matches[i].Distance < matches[j].Distance })

			resultsMu.Lock()
			results = append(results, &Result{TargetFile: targetFile, Hash: h.String(), Matches: matches})
			resultsMu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan aborted: %w", err)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].TargetFile < results[j].TargetFile })
	return results, nil
}

// hashTree hashes every eligible file under dir, using the cache to
// skip files unchanged since the last run, and returns a path->hash map.
func (s *Scanner) hashTree(ctx context.Context, dir string) (map[string]tlsh.FuzzyHash, error) {
	files, err := s.listFiles(dir)
	if err != nil {
		return nil, err
	}

	out := make(map[string]tlsh.FuzzyHash, len(files))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)

	for _, path := range files {
		path := path
		g.Go(func() error {
			h, err := s.hashFile(path)
			if err != nil {
				logger.Warn("skipping known file", zap.String("file", path), zap.Error(err))
				return nil
			}
			mu.Lock()
			out[path] = h
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// hashFile hashes a single file, consulting and populating the LRU
// cache keyed by path, size and modification time.
func (s *Scanner) hashFile(path string) (tlsh.FuzzyHash, error) {
	info, err := os.Stat(path)
	if err != nil {
		return tlsh.FuzzyHash{}, err
	}

	key := cacheKey(path, info)
	if h, ok := s.cache.Get(key); ok {
		return h, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return tlsh.FuzzyHash{}, err
	}
	defer f.Close()

	h, err := tlsh.HashReader(f, tlsh.DefaultGeneratorOptions())
	if err != nil {
		return tlsh.FuzzyHash{}, err
	}

	s.cache.Set(key, h)
	return h, nil
}

// listFiles walks dir and returns every regular file whose extension
// is in opts.Extensions (or every regular file, if Extensions is empty).
func (s *Scanner) listFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if len(s.opts.Extensions) > 0 && !s.hasEligibleExt(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	return files, err
}

func (s *Scanner) hasEligibleExt(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range s.opts.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// SaveResults writes results as indented JSON to outputPath, creating
// any missing parent directories.
func SaveResults(results []*Result, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}
