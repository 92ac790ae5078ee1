package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"
)

// IntegrityRecord is what the dataIntegrity key holds.
type IntegrityRecord struct {
	Hash      string    `json:"hash"`
	Timestamp time.Time `json:"timestamp"`
}

// integrityKeys lists the entities covered by the checksum, in the fixed
// order they are concatenated.
var integrityKeys = []string{KeyAssessment, KeyCareerGoals, KeyRoadmap, KeyStudyPlan}

// rollingHash is the tamper-evidence checksum:
// hash = ((hash << 5) - hash) + byte, wrapping at 32 bits. It detects
// accidental corruption probabilistically; it is not a security control.
func rollingHash(data []byte) int32 {
	var h int32
	for _, c := range data {
		h = (h << 5) - h + int32(c)
	}
	return h
}

func (s *Service) computeHash(ctx context.Context) (string, error) {
	var combined []byte
	for _, key := range integrityKeys {
		raw, ok, err := s.store.Get(ctx, key)
		if err != nil {
			return "", err
		}
		if ok {
			combined = append(combined, raw...)
		}
	}
	return strconv.FormatInt(int64(rollingHash(combined)), 10), nil
}

// UpdateIntegrity recomputes the checksum over the stored entities and writes
// it under the dataIntegrity key.
func (s *Service) UpdateIntegrity(ctx context.Context) error {
	hash, err := s.computeHash(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(IntegrityRecord{Hash: hash, Timestamp: time.Now()})
	if err != nil {
		return err
	}
	return s.store.Set(ctx, KeyIntegrity, raw)
}

// VerifyIntegrity compares the stored checksum against a fresh computation.
// With no record on file there is nothing to contradict, so it reports ok.
func (s *Service) VerifyIntegrity(ctx context.Context) (bool, error) {
	raw, ok, err := s.store.Get(ctx, KeyIntegrity)
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}
	var rec IntegrityRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return false, err
	}
	current, err := s.computeHash(ctx)
	if err != nil {
		return false, err
	}
	return current == rec.Hash, nil
}
