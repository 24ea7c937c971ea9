package store

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-lang-sync/models"
)

// ParseManifest decodes a <config> manifest document.
func ParseManifest(data []byte) (models.Manifest, error) {
	var m models.Manifest
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&m); err != nil {
		return models.Manifest{}, fmt.Errorf("%w: %v", ErrManifestMalformed, err)
	}
	return m, nil
}

// EncodeManifest renders m as an indented XML document with a header.
func EncodeManifest(m models.Manifest) ([]byte, error) {
	body, err := xml.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// LocalesOf returns the tracked locales of m: unique, non-empty, and
// without the default locale, in document order.
func LocalesOf(m models.Manifest) []models.LocaleDescriptor {
	seen := make(map[string]struct{}, len(m.Languages))
	locales := make([]models.LocaleDescriptor, 0, len(m.Languages))

	for _, lang := range m.Languages {
		code := strings.TrimSpace(lang.Code)
		if code == "" || code == models.DefaultLocale {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		locales = append(locales, models.LocaleDescriptor{Code: code})
	}

	return locales
}

// MarkerOf returns the marker held by the first version entry of m.
func MarkerOf(m models.Manifest) models.SyncMarker {
	if len(m.Versions) == 0 {
		return models.SyncMarker{}
	}

	date := strings.TrimSpace(m.Versions[0].Date)
	if date == "" {
		return models.SyncMarker{}
	}

	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return models.SyncMarker{}
	}
	t = t.UTC()
	return models.SyncMarker{LastSyncedAt: &t}
}

// FormatMarker renders t in the manifest date format (UTC, second precision).
func FormatMarker(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(time.RFC3339)
}
