package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fashion-buddy-be/internal/constant"
	"fashion-buddy-be/internal/entity"
	"fashion-buddy-be/pkg/apperrors"
)

func TestStoreBytes(t *testing.T) {
	factory := newFakeUowFactory()
	store := newFakeObjectStore()
	svc := NewImageService(factory, store, nopLogger{}, 4*time.Hour, "", "")

	userId := uuid.New()
	sessionId := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

	stored, err := svc.StoreBytes(context.Background(), png, userId, sessionId, constant.ImageTypeFace)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored.StoragePath, userId.String()+"/face/"))
	assert.True(t, strings.HasSuffix(stored.StoragePath, ".png"))
	assert.Equal(t, "https://store.test/"+stored.StoragePath, stored.URL)
	assert.Contains(t, store.objects, stored.StoragePath)

	rows, err := factory.uow.images.FindBySessionAndType(context.Background(), sessionId, constant.ImageTypeFace)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.WithinDuration(t, time.Now().Add(4*time.Hour), rows[0].ExpiresAt, time.Minute)
}

func TestStoreBytesRejectsEmpty(t *testing.T) {
	svc := NewImageService(newFakeUowFactory(), newFakeObjectStore(), nopLogger{}, time.Hour, "", "")
	_, err := svc.StoreBytes(context.Background(), nil, uuid.New(), uuid.New(), constant.ImageTypeFace)
	assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
}

func TestStoreFromURL(t *testing.T) {
	t.Run("fetches and stores", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte{0xFF, 0xD8, 0xFF, 0xE0})
		}))
		defer server.Close()

		svc := NewImageService(newFakeUowFactory(), newFakeObjectStore(), nopLogger{}, time.Hour, "", "")
		stored, err := svc.StoreFromURL(context.Background(), server.URL, uuid.New(), uuid.New(), constant.ImageTypeBody)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(stored.StoragePath, ".jpg"))
	})

	t.Run("non-2xx is a fetch error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		svc := NewImageService(newFakeUowFactory(), newFakeObjectStore(), nopLogger{}, time.Hour, "", "")
		_, err := svc.StoreFromURL(context.Background(), server.URL, uuid.New(), uuid.New(), constant.ImageTypeBody)
		assert.True(t, apperrors.Is(err, apperrors.CodeFetch))
	})
}

func seedImage(factory *fakeUowFactory, store *fakeObjectStore, path string, expiresAt time.Time) {
	store.objects[path] = []byte{0xFF, 0xD8, 0xFF}
	factory.uow.images.images = append(factory.uow.images.images, &entity.Image{
		Id:          uuid.New(),
		UserId:      uuid.New(),
		SessionId:   uuid.New(),
		StoragePath: path,
		ImageType:   constant.ImageTypeFace,
		ExpiresAt:   expiresAt,
		CreatedAt:   time.Now().Add(-5 * time.Hour),
	})
}

func TestReclaimExpired(t *testing.T) {
	factory := newFakeUowFactory()
	store := newFakeObjectStore()
	svc := NewImageService(factory, store, nopLogger{}, 4*time.Hour, "", "")

	seedImage(factory, store, "a/face/1.jpg", time.Now().Add(-time.Hour))
	seedImage(factory, store, "a/face/2.jpg", time.Now().Add(-time.Minute))
	seedImage(factory, store, "a/face/3.jpg", time.Now().Add(time.Hour))

	count, err := svc.ReclaimExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	remaining, err := factory.uow.images.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "a/face/3.jpg", remaining[0].StoragePath)
	assert.ElementsMatch(t, []string{"a/face/1.jpg", "a/face/2.jpg"}, store.deleted)

	// A second sweep finds nothing left.
	count, err = svc.ReclaimExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestReclaimExpiredSurvivesObjectDeleteFailure(t *testing.T) {
	factory := newFakeUowFactory()
	store := newFakeObjectStore()
	store.failDel = true
	svc := NewImageService(factory, store, nopLogger{}, 4*time.Hour, "", "")

	seedImage(factory, store, "a/face/1.jpg", time.Now().Add(-time.Hour))

	count, err := svc.ReclaimExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	remaining, err := factory.uow.images.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
