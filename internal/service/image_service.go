package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"fashion-buddy-be/internal/entity"
	"fashion-buddy-be/internal/pkg/logger"
	"fashion-buddy-be/internal/repository/unitofwork"
	"fashion-buddy-be/pkg/apperrors"
	"fashion-buddy-be/pkg/storage"
)

type StoredImage struct {
	Id          uuid.UUID
	StoragePath string
	URL         string
}

type IImageService interface {
	StoreBytes(ctx context.Context, data []byte, userId, sessionId uuid.UUID, imageType string) (*StoredImage, error)
	// StoreFromURL downloads the source first; transport media URLs are
	// short-lived, so the bytes must be copied out before they vanish.
	StoreFromURL(ctx context.Context, srcURL string, userId, sessionId uuid.UUID, imageType string) (*StoredImage, error)
	ResolveURL(ctx context.Context, storagePath string) (string, error)
	// ReclaimExpired removes every stored image past its expiry and
	// returns how many rows were reclaimed. Safe to run repeatedly.
	ReclaimExpired(ctx context.Context) (int, error)
	StartReclaimLoop(ctx context.Context, interval time.Duration)
}

type imageService struct {
	uowFactory    unitofwork.RepositoryFactory
	store         storage.ObjectStore
	log           logger.ILogger
	ttl           time.Duration
	client        *http.Client
	fetchUser     string
	fetchPassword string
}

func NewImageService(
	uowFactory unitofwork.RepositoryFactory,
	store storage.ObjectStore,
	log logger.ILogger,
	ttl time.Duration,
	fetchUser, fetchPassword string,
) IImageService {
	return &imageService{
		uowFactory:    uowFactory,
		store:         store,
		log:           log,
		ttl:           ttl,
		client:        &http.Client{Timeout: 30 * time.Second},
		fetchUser:     fetchUser,
		fetchPassword: fetchPassword,
	}
}

func (s *imageService) StoreBytes(ctx context.Context, data []byte, userId, sessionId uuid.UUID, imageType string) (*StoredImage, error) {
	if len(data) == 0 {
		return nil, apperrors.Validation("image data is empty")
	}

	ext := sniffExtension(data)
	key := fmt.Sprintf("%s/%s/%s.%s", userId, imageType, uuid.New(), ext)

	if err := s.store.Put(ctx, key, data, contentTypeFor(ext)); err != nil {
		return nil, apperrors.UploadFailed("failed to store image", err)
	}

	image := entity.Image{
		Id:          uuid.New(),
		UserId:      userId,
		SessionId:   sessionId,
		StoragePath: key,
		ImageType:   imageType,
		ExpiresAt:   time.Now().Add(s.ttl),
		CreatedAt:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ImageRepository().Create(ctx, &image); err != nil {
		return nil, err
	}

	url, err := s.store.PresignedURL(ctx, key)
	if err != nil {
		return nil, apperrors.UploadFailed("failed to resolve image url", err)
	}

	return &StoredImage{Id: image.Id, StoragePath: key, URL: url}, nil
}

func (s *imageService) StoreFromURL(ctx context.Context, srcURL string, userId, sessionId uuid.UUID, imageType string) (*StoredImage, error) {
	data, err := s.fetch(ctx, srcURL)
	if err != nil {
		return nil, err
	}
	return s.StoreBytes(ctx, data, userId, sessionId, imageType)
}

func (s *imageService) ResolveURL(ctx context.Context, storagePath string) (string, error) {
	return s.store.PresignedURL(ctx, storagePath)
}

func (s *imageService) ReclaimExpired(ctx context.Context) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	expired, err := uow.ImageRepository().FindExpired(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	if len(expired) == 0 {
		return 0, nil
	}

	ids := make([]uuid.UUID, 0, len(expired))
	for _, img := range expired {
		// Object deletion is best effort; the row goes regardless so the
		// next sweep does not retry forever.
		if err := s.store.Delete(ctx, img.StoragePath); err != nil {
			s.log.Warn("image", "Failed to delete stored object", map[string]interface{}{
				"path":  img.StoragePath,
				"error": err.Error(),
			})
		}
		ids = append(ids, img.Id)
	}

	if err := uow.ImageRepository().DeleteAllByIds(ctx, ids); err != nil {
		return 0, err
	}

	s.log.Info("image", "Reclaimed expired images", map[string]interface{}{
		"count": len(ids),
	})
	return len(ids), nil
}

func (s *imageService) StartReclaimLoop(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.ReclaimExpired(ctx); err != nil {
					s.log.Error("image", "Scheduled image reclaim failed", map[string]interface{}{
						"error": err.Error(),
					})
				}
			}
		}
	}()
}

func (s *imageService) fetch(ctx context.Context, srcURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, nil)
	if err != nil {
		return nil, apperrors.FetchFailed("failed to create image fetch request", err)
	}
	// Transport media endpoints require the account credentials.
	if s.fetchUser != "" {
		req.SetBasicAuth(s.fetchUser, s.fetchPassword)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperrors.FetchFailed("failed to fetch image", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.FetchFailed(fmt.Sprintf("image fetch returned status %d", resp.StatusCode), nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.FetchFailed("failed to read image body", err)
	}
	return data, nil
}

// sniffExtension inspects leading bytes rather than trusting the sender's
// content type. Unknown formats fall back to jpg.
func sniffExtension(data []byte) string {
	switch {
	case len(data) >= 3 && bytes.Equal(data[:3], []byte{0xFF, 0xD8, 0xFF}):
		return "jpg"
	case len(data) >= 4 && bytes.Equal(data[:4], []byte{0x89, 'P', 'N', 'G'}):
		return "png"
	case len(data) >= 4 && bytes.Equal(data[:4], []byte("GIF8")):
		return "gif"
	case len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return "webp"
	default:
		return "jpg"
	}
}

func contentTypeFor(ext string) string {
	switch ext {
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
