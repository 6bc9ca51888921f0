// Package corpus reads documents from a directory tree on the local
// filesystem. The tree is re-scanned on every load; nothing is cached
// between queries, so concurrent loads need no coordination.
package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/docpilot/docsearch/internal/domain"
	"github.com/docpilot/docsearch/internal/domain/document"
)

const (
	defaultExtension = ".md"
	defaultWorkers   = 8
)

// Repository loads the document corpus from disk.
type Repository struct {
	root      string
	extension string
	workers   int
	logger    *zap.Logger
	scanned   prometheus.Counter
	failures  prometheus.Counter
}

// New creates a repository rooted at dir.
func New(dir string, logger *zap.Logger) *Repository {
	return &Repository{
		root:      filepath.Clean(dir),
		extension: defaultExtension,
		workers:   defaultWorkers,
		logger:    logger,
	}
}

// WithExtension overrides the document file extension.
func (r *Repository) WithExtension(ext string) *Repository {
	if ext != "" {
		r.extension = ext
	}
	return r
}

// WithWorkers overrides the parallel read width.
func (r *Repository) WithWorkers(n int) *Repository {
	if n > 0 {
		r.workers = n
	}
	return r
}

// WithMetrics attaches scan counters. Either counter may be nil.
func (r *Repository) WithMetrics(scanned, failures prometheus.Counter) *Repository {
	r.scanned = scanned
	r.failures = failures
	return r
}

// Load reads and parses every document under the root. Unreadable or
// malformed files are skipped and counted; only an unreachable root fails
// the load. Files are read on a bounded worker pool, so the returned order
// is unspecified and the caller re-establishes ordering by sorting.
func (r *Repository) Load(ctx context.Context) ([]document.Document, error) {
	paths, err := listDocuments(r.root, r.extension)
	if err != nil {
		return nil, err
	}
	if r.scanned != nil {
		r.scanned.Add(float64(len(paths)))
	}

	workers := r.workers
	if workers > len(paths) {
		workers = len(paths)
	}

	var (
		mu   sync.Mutex
		docs = make([]document.Document, 0, len(paths))
		wg   sync.WaitGroup
		work = make(chan string)
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rel := range work {
				doc, ok := r.loadOne(rel)
				if !ok {
					continue
				}
				mu.Lock()
				docs = append(docs, doc)
				mu.Unlock()
			}
		}()
	}

	for _, rel := range paths {
		if ctx.Err() != nil {
			break
		}
		work <- rel
	}
	close(work)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

// loadOne reads and parses a single document. A false return means the file
// was skipped; per-document failures never abort a load.
func (r *Repository) loadOne(rel string) (document.Document, bool) {
	data, err := os.ReadFile(filepath.Join(r.root, filepath.FromSlash(rel)))
	if err != nil {
		r.skip(rel, err)
		return document.Document{}, false
	}

	title, body, err := parseDocument(rel, data)
	if err != nil {
		r.skip(rel, err)
		return document.Document{}, false
	}

	return document.New(rel, title, body), true
}

func (r *Repository) skip(rel string, err error) {
	if r.failures != nil {
		r.failures.Inc()
	}
	r.logger.Debug("skipping document", zap.String("path", rel), zap.Error(err))
}

// Ping reports whether the corpus root is reachable. Used by health checks.
func (r *Repository) Ping(_ context.Context) error {
	info, err := os.Stat(r.root)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCorpusUnavailable, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", domain.ErrCorpusUnavailable, r.root)
	}
	return nil
}
