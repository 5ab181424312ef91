package remnant

import (
	"bytes"
	"context"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"apo-analyzer/core/database"
	"apo-analyzer/core/logger"
	"apo-analyzer/core/reconcile"
	"apo-analyzer/core/storage"
	"apo-analyzer/feature/remnant/analyze"
	"apo-analyzer/feature/remnant/models"
	"apo-analyzer/feature/remnant/segment"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNoDatabase is returned by operations that need the database when
	// none is connected.
	ErrNoDatabase = errors.New("database not connected")
	// ErrNotFound is returned when an upload or run does not exist.
	ErrNotFound = errors.New("not found")
)

// Options tunes a Service.
type Options struct {
	// UploadsPrefix is the object key prefix of stored logs.
	UploadsPrefix string
	// Sites maps WASON node addresses to site names.
	Sites map[string]string
	// CacheTTL keeps analyses in memory, keyed by content digest.
	CacheTTL time.Duration
}

// Service analyzes raw logs and manages stored uploads and runs.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
	db     *gorm.DB
	sites  map[string]string
	cache  *reconcile.Cache[*Analysis]
	now    func() time.Time
}

// NewService creates a new remnant service. db may be nil, in which case
// uploads are listed from storage and runs cannot be saved.
func NewService(client storage.Client, bucket string, log *zap.Logger, db *gorm.DB, opts Options) *Service {
	prefix := strings.Trim(opts.UploadsPrefix, "/")
	if prefix == "" {
		prefix = "uploads"
	}
	return &Service{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: log.Named("remnant"),
		db:     db,
		sites:  opts.Sites,
		cache:  reconcile.NewCache[*Analysis](opts.CacheTTL),
		now:    time.Now,
	}
}

// Sites returns the site table in use.
func (s *Service) Sites() map[string]string {
	return s.sites
}

// EnsureSchema migrates the feature tables and checks the uploads table,
// which may predate this service, for the columns it relies on.
func (s *Service) EnsureSchema() error {
	if s.db == nil {
		return ErrNoDatabase
	}
	if err := database.Migrate(s.db, models.Tables()...); err != nil {
		return err
	}
	missing, err := database.MissingColumns(s.db, models.Upload{}.TableName(),
		[]string{"upload_date", "orig_filename", "stored_path", "size", "md5"})
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("uploads table is missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Analyze segments and reconciles raw. Results are cached by the sha256 of
// raw when caching is enabled.
func (s *Service) Analyze(ctx context.Context, raw []byte) (*Analysis, error) {
	sum := sha256.Sum256(raw)
	digest := hex.EncodeToString(sum[:])

	return s.cache.GetOrBuild(ctx, digest, func(ctx context.Context) (*Analysis, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		buckets := segment.Parse(string(raw), s.sites)
		a := analyze.New(s.sites)
		results := a.Analyze(buckets)

		for _, r := range results {
			if r.HasMismatch {
				logger.ForSite(s.logger, r.Address, r.Name).Debug("Remnant found",
					zap.String("digest", digest),
					zap.String("outcome", string(r.Outcome)),
				)
			}
		}
		s.logger.Debug("Analysis finished",
			zap.String("digest", digest),
			zap.Int("sites", len(results)),
			zap.Duration("took", time.Since(start)),
		)
		return &Analysis{Digest: digest, Results: results, Links: a.Links()}, nil
	})
}

// Report analyzes raw and renders it under view.
func (s *Service) Report(ctx context.Context, raw []byte, view View) (Report, error) {
	a, err := s.Analyze(ctx, raw)
	if err != nil {
		return Report{}, err
	}
	return BuildReport(a, s.sites, view), nil
}

// SaveRun persists a as a run. uploadID is nil for logs that were not
// stored.
func (s *Service) SaveRun(ctx context.Context, a *Analysis, source string, uploadID *uint) (*models.AnalysisRun, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}

	kpi := Summarize(a.Results)
	run := &models.AnalysisRun{
		Digest:       a.Digest,
		Source:       source,
		UploadID:     uploadID,
		TotalSites:   kpi.TotalSites,
		RemnantSites: kpi.RemnantSites,
		Status:       kpi.Status,
	}
	for _, r := range a.Results {
		run.Sites = append(run.Sites, models.SiteRecord{
			Address:              r.Address,
			Name:                 r.Name,
			Scheme:               string(r.Scheme),
			Outcome:              string(r.Outcome),
			HasMismatch:          r.HasMismatch,
			HighlightedCall:      strings.Join(r.HighlightedCall(), "\n"),
			HighlightedInventory: strings.Join(r.HighlightedInventory(), "\n"),
		})
	}
	for _, lc := range analyze.SortedLinks(a.Links) {
		run.Links = append(run.Links, models.LinkRecord{
			Source: lc.Link.Source,
			Dest:   lc.Link.Dest,
			Count:  lc.Count,
		})
	}

	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return nil, fmt.Errorf("failed to save run: %w", err)
	}
	return run, nil
}

// ListRuns returns the newest runs first, without their site records.
func (s *Service) ListRuns(ctx context.Context, limit int) ([]models.AnalysisRun, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	if limit <= 0 {
		limit = 50
	}
	var runs []models.AnalysisRun
	if err := s.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// GetRun returns one run with its site and link records.
func (s *Service) GetRun(ctx context.Context, id uint) (*models.AnalysisRun, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	var run models.AnalysisRun
	err := s.db.WithContext(ctx).Preload("Sites").Preload("Links").First(&run, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run %d: %w", id, err)
	}
	return &run, nil
}

// Upload stores a raw log under <prefix>/<date>/<uuid>-<name> and records it
// when a database is connected.
func (s *Service) Upload(ctx context.Context, filename string, r io.Reader) (*models.Upload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	sum := md5.Sum(data)
	date := s.now().Format("2006-01-02")
	name := cleanName(filename)
	key := path.Join(s.prefix, date, uuid.NewString()+"-"+name)

	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "text/plain",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	up := &models.Upload{
		UploadDate:   date,
		OrigFilename: name,
		StoredPath:   key,
		Size:         int64(len(data)),
		MD5:          hex.EncodeToString(sum[:]),
	}
	if s.db == nil {
		return up, nil
	}
	if err := s.db.WithContext(ctx).Create(up).Error; err != nil {
		// Keep storage and table in step.
		if rmErr := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); rmErr != nil {
			s.logger.Warn("Failed to remove orphaned upload", zap.String("key", key), zap.Error(rmErr))
		}
		return nil, fmt.Errorf("failed to record upload: %w", err)
	}
	return up, nil
}

// ListUploads returns the uploads of date (YYYY-MM-DD), newest first. An
// empty date lists every upload. Without a database the listing comes from
// object storage and carries no ids or checksums.
func (s *Service) ListUploads(ctx context.Context, date string) ([]models.Upload, error) {
	if s.db == nil {
		return s.listStoredUploads(ctx, date)
	}

	q := s.db.WithContext(ctx).Order("id DESC")
	if date != "" {
		q = q.Where("upload_date = ?", date)
	}
	var uploads []models.Upload
	if err := q.Find(&uploads).Error; err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}
	return uploads, nil
}

func (s *Service) listStoredUploads(ctx context.Context, date string) ([]models.Upload, error) {
	prefix := s.prefix + "/"
	if date != "" {
		prefix += date + "/"
	}

	var uploads []models.Upload
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list stored uploads: %w", obj.Err)
		}
		rel := strings.TrimPrefix(obj.Key, s.prefix+"/")
		day, file, ok := strings.Cut(rel, "/")
		if !ok {
			continue
		}
		// Strip the uuid and its dash.
		if len(file) > 37 && file[36] == '-' {
			file = file[37:]
		}
		uploads = append(uploads, models.Upload{
			UploadDate:   day,
			OrigFilename: file,
			StoredPath:   obj.Key,
			Size:         obj.Size,
			CreatedAt:    obj.LastModified,
		})
	}
	sort.SliceStable(uploads, func(i, j int) bool {
		return uploads[i].CreatedAt.After(uploads[j].CreatedAt)
	})
	return uploads, nil
}

// GetUpload returns the upload record with id.
func (s *Service) GetUpload(ctx context.Context, id uint) (*models.Upload, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	var up models.Upload
	err := s.db.WithContext(ctx).First(&up, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get upload %d: %w", id, err)
	}
	return &up, nil
}

// LatestUpload returns the most recent upload.
func (s *Service) LatestUpload(ctx context.Context) (*models.Upload, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	var up models.Upload
	err := s.db.WithContext(ctx).Order("id DESC").First(&up).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest upload: %w", err)
	}
	return &up, nil
}

// DeleteUpload removes the stored object and its record.
func (s *Service) DeleteUpload(ctx context.Context, id uint) error {
	up, err := s.GetUpload(ctx, id)
	if err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucket, up.StoredPath, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove %s: %w", up.StoredPath, err)
	}
	if err := s.db.WithContext(ctx).Delete(&models.Upload{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete upload %d: %w", id, err)
	}
	return nil
}

// AnalyzeUpload fetches a stored upload and analyzes it.
func (s *Service) AnalyzeUpload(ctx context.Context, id uint) (*Analysis, *models.Upload, error) {
	up, err := s.GetUpload(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	a, err := s.analyzeStored(ctx, up)
	if err != nil {
		return nil, nil, err
	}
	return a, up, nil
}

func (s *Service) analyzeStored(ctx context.Context, up *models.Upload) (*Analysis, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, up.StoredPath, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", up.StoredPath, err)
	}
	defer obj.Close()

	raw, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", up.StoredPath, err)
	}
	return s.Analyze(ctx, raw)
}

// cleanName reduces a client file name to its base name.
func cleanName(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "log.txt"
	}
	return name
}
