package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu      sync.Mutex
	objects map[string]string
	failOn  string
}

func (m *memStore) Upload(_ context.Context, r io.Reader, name, folder string) (string, error) {
	if name == m.failOn {
		return "", errors.New("store rejected " + name)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.objects == nil {
		m.objects = map[string]string{}
	}
	key := folder + "/" + name
	m.objects[key] = string(data)
	return "https://cdn.test/" + key, nil
}

func source(name, body string) UploadSource {
	return UploadSource{
		Name: name,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader(body)), nil },
	}
}

func TestUploadFilesKeepsInputOrder(t *testing.T) {
	store := &memStore{}
	svc := NewUploadService(store)

	files := []UploadSource{
		source("Hex Bolt M8.PNG", "a"),
		source("zinc.jpg", "b"),
		source("drawing.svg", "c"),
		source("black oxide.webp", "d"),
		source("nut.png", "e"),
	}
	urls, err := svc.UploadFiles(ctx(), "products", files)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://cdn.test/products/hex-bolt-m8",
		"https://cdn.test/products/zinc",
		"https://cdn.test/products/drawing",
		"https://cdn.test/products/black-oxide",
		"https://cdn.test/products/nut",
	}, urls)
	assert.Equal(t, "a", store.objects["products/hex-bolt-m8"])
}

func TestUploadFilesErrors(t *testing.T) {
	t.Run("no store configured", func(t *testing.T) {
		_, err := NewUploadService(nil).UploadFiles(ctx(), "products", []UploadSource{source("a.png", "a")})
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})

	t.Run("unknown folder", func(t *testing.T) {
		_, err := NewUploadService(&memStore{}).UploadFiles(ctx(), "secrets", []UploadSource{source("a.png", "a")})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("no files", func(t *testing.T) {
		_, err := NewUploadService(&memStore{}).UploadFiles(ctx(), "gallery", nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("one failure fails the batch", func(t *testing.T) {
		svc := NewUploadService(&memStore{failOn: "bad"})
		urls, err := svc.UploadFiles(ctx(), "gallery", []UploadSource{source("good.png", "a"), source("bad.png", "b")})
		assert.Error(t, err)
		assert.Nil(t, urls)
	})
}
