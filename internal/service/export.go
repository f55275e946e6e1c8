package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strconv"
	"time"

	"github.com/google/uuid"

	"farmacia/internal/model"
	"farmacia/internal/repository"
	"farmacia/internal/storage"
)

var ErrStorageNil = errors.New("object storage is not configured")

const (
	exportBatchSize = 500
	cleanupTimeout  = 5 * time.Second
)

// ExportResult describes an inventory snapshot written to object storage.
type ExportResult struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Count     int       `json:"count"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ExportService writes point-in-time inventory snapshots to object storage.
type ExportService interface {
	// ExportInventory dumps every producto as JSON and returns a pre-signed download URL.
	ExportInventory(ctx context.Context) (*ExportResult, error)
}

type exportService struct {
	store     storage.Storage
	productos repository.ProductoRepository
	urlTTL    time.Duration
	batchSize int
	now       func() time.Time
}

// NewExportService constructs a new ExportService.
func NewExportService(store storage.Storage, productos repository.ProductoRepository, urlTTL time.Duration) ExportService {
	return &exportService{
		store:     store,
		productos: productos,
		urlTTL:    urlTTL,
		batchSize: exportBatchSize,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

type inventorySnapshot struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Count       int              `json:"count"`
	Productos   []model.Producto `json:"productos"`
}

func (s *exportService) ExportInventory(ctx context.Context) (*ExportResult, error) {
	if s.store == nil {
		return nil, ErrStorageNil
	}

	items, err := s.collect(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	body, err := json.Marshal(inventorySnapshot{
		GeneratedAt: now,
		Count:       len(items),
		Productos:   items,
	})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	name := fmt.Sprintf("inventario-%s-%s.json", now.Format("20060102T150405Z"), uuid.NewString()[:8])
	key := path.Join("exports", name)

	info, err := s.store.Put(ctx, key, bytes.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: "application/json",
		Metadata: map[string]string{
			"row-count": strconv.Itoa(len(items)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	url, err := s.store.PresignGet(ctx, info.Key, s.urlTTL)
	if err != nil {
		// Drop the unreachable snapshot. ctx may already be cancelled.
		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
		defer cancel()
		_ = s.store.Delete(dctx, info.Key)
		return nil, fmt.Errorf("presign: %w", err)
	}

	return &ExportResult{
		Key:       info.Key,
		URL:       url,
		Count:     len(items),
		ExpiresAt: now.Add(s.urlTTL),
	}, nil
}

// collect pages through the producto table in primary key order.
func (s *exportService) collect(ctx context.Context) ([]model.Producto, error) {
	items := make([]model.Producto, 0)
	for offset := 0; ; offset += s.batchSize {
		page, err := s.productos.List(ctx, repository.PageQuery{Limit: s.batchSize, Offset: offset})
		if err != nil {
			return nil, fmt.Errorf("list productos: %w", err)
		}
		items = append(items, page.Items...)
		if len(page.Items) < s.batchSize || len(items) >= page.Total {
			return items, nil
		}
	}
}
