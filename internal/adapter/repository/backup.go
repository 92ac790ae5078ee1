package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"
)

// backupStampLayout keeps the fractional second fixed-width. RFC3339Nano
// trims trailing zeros, which breaks lexical chronological ordering
// ("...00.1Z" sorts after "...00.15Z"); listing and pruning both sort the
// stamps as strings.
const backupStampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// CreateBackup snapshots the full export envelope under a timestamped key and
// evicts the oldest snapshots beyond the retention limit. Returns the
// snapshot's timestamp id.
func (s *Service) CreateBackup(ctx context.Context) (string, error) {
	env := s.Export(ctx)
	raw, err := json.Marshal(env)
	if err != nil {
		return "", err
	}
	// Nanosecond precision so rapid snapshots get distinct keys.
	ts := time.Now().UTC().Format(backupStampLayout)
	if err := s.store.Set(ctx, backupPrefix+ts, raw); err != nil {
		return "", err
	}
	if err := s.pruneBackups(ctx); err != nil {
		slog.Warn("backup pruning failed", "error", err)
	}
	return ts, nil
}

// ListBackups returns the snapshot timestamps, newest first.
func (s *Service) ListBackups(ctx context.Context) ([]string, error) {
	keys, err := s.store.Keys(ctx, backupPrefix)
	if err != nil {
		return nil, err
	}
	stamps := make([]string, 0, len(keys))
	for _, k := range keys {
		stamps = append(stamps, strings.TrimPrefix(k, backupPrefix))
	}
	// Fixed-width UTC stamps sort chronologically as strings.
	sort.Sort(sort.Reverse(sort.StringSlice(stamps)))
	return stamps, nil
}

// RestoreBackup re-imports the named snapshot. Entities that fail validation
// are skipped exactly as with a file import.
func (s *Service) RestoreBackup(ctx context.Context, timestamp string) (*ImportResult, error) {
	raw, ok, err := s.store.Get(ctx, backupPrefix+timestamp)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no backup at %s", timestamp)
	}
	return s.Import(ctx, raw)
}

// DeleteBackup removes one snapshot.
func (s *Service) DeleteBackup(ctx context.Context, timestamp string) error {
	return s.store.Delete(ctx, backupPrefix+timestamp)
}

func (s *Service) pruneBackups(ctx context.Context) error {
	keys, err := s.store.Keys(ctx, backupPrefix)
	if err != nil {
		return err
	}
	if len(keys) <= s.backupLimit {
		return nil
	}
	sort.Strings(keys)
	for _, k := range keys[:len(keys)-s.backupLimit] {
		if err := s.store.Delete(ctx, k); err != nil {
			return err
		}
		slog.Info("evicted oldest backup", "key", k)
	}
	return nil
}
