// ABOUTME: Packaging service assembling extraction results into a zip archive
// ABOUTME: Partial success by design; one failed download never aborts the batch

package export

import (
	"archive/zip"
	"context"
	"io"

	"golang.org/x/time/rate"

	"notegrab-api/core/domain"
	"notegrab-api/core/errors"
	"notegrab-api/core/interfaces"
)

// Progress status values reported through the callback
const (
	StatusDownloading = "downloading"
	StatusComplete    = "complete"
	StatusError       = "error"
)

// Config tunes the export service
type Config struct {
	// RequestHeaders are sent with every media download
	RequestHeaders map[string]string

	// DownloadsPerSecond paces media downloads; zero disables pacing
	DownloadsPerSecond float64
}

// Service implements interfaces.ExportService
type Service struct {
	deps    interfaces.Dependencies
	cfg     Config
	limiter *rate.Limiter
}

// NewService creates the packaging service
func NewService(deps interfaces.Dependencies, cfg Config) *Service {
	var limiter *rate.Limiter
	if cfg.DownloadsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.DownloadsPerSecond), 1)
	}
	return &Service{
		deps:    deps,
		cfg:     cfg,
		limiter: limiter,
	}
}

// PackageAsArchive writes a zip archive of the bundle to w.
// Every media item is fetched independently; a failed fetch is logged
// and skipped. Textual content, when present, is serialized as a
// human-readable report plus a JSON data dump and counts as one unit of
// work. Only a fatal assembly failure yields false, reported through
// the callback as {0, 0, error}.
func (s *Service) PackageAsArchive(ctx context.Context, w io.Writer, bundle interfaces.ExportBundle, onProgress func(interfaces.ExportProgress)) bool {
	report := func(current, total int, status string) {
		if onProgress != nil {
			onProgress(interfaces.ExportProgress{Current: current, Total: total, Status: status})
		}
	}
	fatal := func(err error) bool {
		s.deps.Logger.Error("archive assembly failed", map[string]interface{}{
			"archive": bundle.ArchiveName,
			"error":   err.Error(),
		})
		report(0, 0, StatusError)
		return false
	}

	hasText := bundle.Extended != nil || bundle.Note != nil
	total := len(bundle.Media)
	if hasText {
		total++
	}

	zw := zip.NewWriter(w)
	current := 0

	for _, item := range bundle.Media {
		data, err := s.fetchMedia(ctx, item)
		if err != nil {
			s.deps.Logger.Warn("skipping media item", map[string]interface{}{
				"url":   item.URL,
				"file":  item.Filename,
				"error": err.Error(),
			})
		} else {
			entry, err := zw.Create(item.Filename)
			if err != nil {
				return fatal(err)
			}
			if _, err := entry.Write(data); err != nil {
				return fatal(err)
			}
		}
		current++
		report(current, total, StatusDownloading)
	}

	if hasText {
		if err := s.addTextEntries(zw, bundle); err != nil {
			return fatal(err)
		}
		current++
		report(current, total, StatusDownloading)
	}

	if err := zw.Close(); err != nil {
		return fatal(err)
	}

	report(total, total, StatusComplete)
	return true
}

// fetchMedia downloads one media item
func (s *Service) fetchMedia(ctx context.Context, item domain.MediaItem) ([]byte, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	resp, err := s.deps.HTTPClient.GetWithHeaders(ctx, item.URL, s.cfg.RequestHeaders)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &errors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "media download failed",
			API:        "cdn",
		}
	}

	return io.ReadAll(resp.Body())
}

// addTextEntries writes the report and the data dump
func (s *Service) addTextEntries(zw *zip.Writer, bundle interfaces.ExportBundle) error {
	entry, err := zw.Create("report.md")
	if err != nil {
		return err
	}
	if _, err := entry.Write([]byte(BuildReport(bundle.Note, bundle.Extended))); err != nil {
		return err
	}

	dump, err := buildDataDump(bundle)
	if err != nil {
		return err
	}
	entry, err = zw.Create("data.json")
	if err != nil {
		return err
	}
	_, err = entry.Write(dump)
	return err
}
