// Package cachestore implements the Persistent Cache (§4.8): an
// embedded badger key-value store under a project's .ucn-cache
// directory, keyed by project-relative path with each entry carrying
// the file's mtime+size so a reload can detect staleness without
// re-parsing, plus the short-lived
// "expandable items" cache the `context` query populates (§5, §6).
package cachestore

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/mleoca/ucn/model"
)

// cacheVersion is bumped whenever the on-disk encoding changes
// incompatibly. A stored blob with a different version is never an
// error — it's simply treated as a miss so the caller rebuilds (§6).
const cacheVersion = 1

const cacheDirName = ".ucn-cache"

// fileEntry is the unit Store persists per FileRecord: the staleness
// header (mtime+size) plus the parsed artifacts themselves.
type fileEntry struct {
	ModTimeUnixMilli int64
	Size             int64
	Record           model.FileRecord
}

// discardLogger implements badger.Logger by dropping everything below
// Warning; badger is chatty at Info/Debug and this cache has no
// interactive console to spam (the index's own output.Logger covers
// user-facing progress).
type discardLogger struct{ *log.Logger }

func (l discardLogger) Errorf(f string, v ...interface{})   { l.Printf(f, v...) }
func (l discardLogger) Warningf(f string, v ...interface{}) { l.Printf(f, v...) }
func (discardLogger) Infof(string, ...interface{})          {}
func (discardLogger) Debugf(string, ...interface{})         {}

// Store wraps one badger database rooted at <project root>/.ucn-cache.
type Store struct {
	db   *badger.DB
	path string
}

// Open creates or opens the cache directory for root.
func Open(root string) (*Store, error) {
	dir := filepath.Join(root, cacheDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cachestore: create %s: %w", dir, err)
	}
	logFile, err := os.OpenFile(filepath.Join(dir, "badger.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cachestore: open log file: %w", err)
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = discardLogger{log.New(logFile, "", log.LstdFlags)}
	opts.NumMemtables = 2
	opts.NumLevelZeroTables = 2
	opts.NumLevelZeroTablesStall = 3
	opts.ValueLogFileSize = 10 << 20
	opts.BaseTableSize = 20 << 20

	db, err := badger.Open(opts)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("cachestore: open %s: %w", dir, err)
	}
	return &Store{db: db, path: dir}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func fileKey(relPath string) []byte { return []byte("file:" + relPath) }

var versionKey = []byte("meta:version")
var fileListKey = []byte("meta:filelist")

// SaveFile persists one FileRecord's cache entry.
func (s *Store) SaveFile(rec *model.FileRecord) error {
	entry := fileEntry{ModTimeUnixMilli: rec.ModTime.UnixMilli(), Size: rec.Size, Record: *rec}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("cachestore: marshal %s: %w", rec.RelPath, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(fileKey(rec.RelPath), data)
	})
}

// SaveManifest records the project's discovered file list and the
// current cache format version, both consulted by Load to decide
// whether the cache is still usable.
func (s *Store) SaveManifest(relPaths []string) error {
	listData, err := json.Marshal(relPaths)
	if err != nil {
		return fmt.Errorf("cachestore: marshal manifest: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(versionKey, []byte(fmt.Sprintf("%d", cacheVersion))); err != nil {
			return err
		}
		return txn.Set(fileListKey, listData)
	})
}

// LoadResult is what a successful Load returns: every cached
// FileRecord, keyed by project-relative path, ready to seed an Index
// without re-parsing.
type LoadResult struct {
	Files map[string]*model.FileRecord
}

// Load validates the cache against the freshly discovered file list
// and the on-disk mtime+size of each file, returning ok=false on any
// mismatch (§4.8: "a single mismatch triggers a full rebuild"). A
// cache written by a newer format version is likewise treated as a
// miss rather than an error (§6).
func (s *Store) Load(root string, discoveredRelPaths []string) (LoadResult, bool) {
	var result LoadResult
	ok := true

	err := s.db.View(func(txn *badger.Txn) error {
		versionItem, err := txn.Get(versionKey)
		if err != nil {
			ok = false
			return nil
		}
		var versionStr string
		_ = versionItem.Value(func(val []byte) error { versionStr = string(val); return nil })
		if versionStr != fmt.Sprintf("%d", cacheVersion) {
			ok = false
			return nil
		}

		listItem, err := txn.Get(fileListKey)
		if err != nil {
			ok = false
			return nil
		}
		var storedList []string
		if verr := listItem.Value(func(val []byte) error { return json.Unmarshal(val, &storedList) }); verr != nil {
			ok = false
			return nil
		}
		if !sameFileSet(storedList, discoveredRelPaths) {
			ok = false
			return nil
		}

		files := make(map[string]*model.FileRecord, len(discoveredRelPaths))
		for _, rel := range discoveredRelPaths {
			abs := filepath.Join(root, filepath.FromSlash(rel))
			info, statErr := os.Stat(abs)
			if statErr != nil {
				ok = false
				return nil
			}
			item, getErr := txn.Get(fileKey(rel))
			if getErr != nil {
				ok = false
				return nil
			}
			var entry fileEntry
			if verr := item.Value(func(val []byte) error { return json.Unmarshal(val, &entry) }); verr != nil {
				ok = false
				return nil
			}
			if entry.ModTimeUnixMilli != info.ModTime().UnixMilli() || entry.Size != info.Size() {
				ok = false
				return nil
			}
			rec := entry.Record
			files[rel] = &rec
		}
		result.Files = files
		return nil
	})
	if err != nil {
		return LoadResult{}, false
	}
	return result, ok
}

func sameFileSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]bool, len(a))
	for _, p := range a {
		seen[p] = true
	}
	for _, p := range b {
		if !seen[p] {
			return false
		}
	}
	return true
}
