// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lang-sync/internal/logger"
	"github.com/MKhiriev/go-lang-sync/models"
)

// DefaultMarkerHistory is how many version entries the manifest keeps when
// no explicit limit is configured.
const DefaultMarkerHistory = 10

type manifestVersionStore struct {
	files        LocalFiles
	historyLimit int
	logger       *logger.Logger
}

// NewVersionStore returns a [VersionStore] backed by the manifest file
// (models.ManifestFileName) inside files. historyLimit caps the number of
// version entries kept; values below 1 fall back to DefaultMarkerHistory.
func NewVersionStore(files LocalFiles, historyLimit int, logger *logger.Logger) VersionStore {
	if historyLimit < 1 {
		historyLimit = DefaultMarkerHistory
	}
	return &manifestVersionStore{files: files, historyLimit: historyLimit, logger: logger}
}

func (s *manifestVersionStore) ReadMarker() (models.SyncMarker, error) {
	m, err := s.load()
	if err != nil {
		return models.SyncMarker{}, err
	}

	marker := MarkerOf(m)
	if marker.IsZero() && len(m.Versions) > 0 {
		s.logger.Warn().
			Str("func", "manifestVersionStore.ReadMarker").
			Str("date", m.Versions[0].Date).
			Msg("manifest version date is empty or unparseable")
	}
	return marker, nil
}

func (s *manifestVersionStore) ReadLocales() ([]models.LocaleDescriptor, error) {
	m, err := s.load()
	if err != nil {
		return nil, err
	}
	return LocalesOf(m), nil
}

// WriteMarker prepends a version entry for t and rewrites the manifest
// atomically. Language entries are kept as they are.
func (s *manifestVersionStore) WriteMarker(t time.Time) error {
	m, err := s.load()
	if err != nil && !errors.Is(err, ErrConfigMissing) {
		return fmt.Errorf("load manifest before writing marker: %w", err)
	}

	versions := make([]models.ManifestVersion, 0, len(m.Versions)+1)
	versions = append(versions, models.ManifestVersion{Date: FormatMarker(t)})
	versions = append(versions, m.Versions...)
	if len(versions) > s.historyLimit {
		versions = versions[:s.historyLimit]
	}
	m.Versions = versions

	data, err := EncodeManifest(m)
	if err != nil {
		return err
	}
	if err = s.files.WriteFile(models.ManifestFileName, data); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	s.logger.Debug().
		Str("func", "manifestVersionStore.WriteMarker").
		Str("date", versions[0].Date).
		Msg("sync marker written")
	return nil
}

func (s *manifestVersionStore) load() (models.Manifest, error) {
	data, err := s.files.ReadFile(models.ManifestFileName)
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			return models.Manifest{}, ErrConfigMissing
		}
		return models.Manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	return ParseManifest(data)
}
