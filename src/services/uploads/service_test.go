package uploads

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	mu      sync.Mutex
	fail    map[Kind]error
	folders map[Kind]string
}

func (h *fakeHost) Upload(_ context.Context, folder string, kind Kind, file File) (Asset, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.folders == nil {
		h.folders = map[Kind]string{}
	}
	h.folders[kind] = folder
	if err := h.fail[kind]; err != nil {
		return Asset{}, err
	}
	return Asset{
		URL:      "https://media.example/" + folder + "/" + file.Name,
		PublicID: folder + "/" + file.Name,
		Kind:     kind,
	}, nil
}

func (h *fakeHost) Delete(context.Context, Asset) error { return nil }

type recordingPurger struct {
	mu     sync.Mutex
	purged []Asset
}

func (p *recordingPurger) Purge(_ context.Context, assets ...Asset) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.purged = append(p.purged, assets...)
}

func newFile(name, body string) *File {
	return &File{Name: name, Size: int64(len(body)), Body: strings.NewReader(body)}
}

func TestUploadAll(t *testing.T) {
	t.Run("no files", func(t *testing.T) {
		svc := NewService(&fakeHost{}, nil, "Uploads", "Images", nil)
		res, err := svc.UploadAll(context.Background(), nil, nil)
		require.NoError(t, err)
		assert.Nil(t, res.CV)
		assert.Nil(t, res.Image)
		assert.Empty(t, res.Assets())
	})

	t.Run("both files go to their folders", func(t *testing.T) {
		host := &fakeHost{}
		svc := NewService(host, nil, "Uploads", "Images", nil)

		res, err := svc.UploadAll(context.Background(), newFile("cv.pdf", "%PDF"), newFile("me.png", "png"))
		require.NoError(t, err)
		require.NotNil(t, res.CV)
		require.NotNil(t, res.Image)
		assert.Equal(t, "https://media.example/Uploads/cv.pdf", res.CV.URL)
		assert.Equal(t, KindRaw, res.CV.Kind)
		assert.Equal(t, "https://media.example/Images/me.png", res.Image.URL)
		assert.Equal(t, KindImage, res.Image.Kind)
		assert.Equal(t, map[Kind]string{KindRaw: "Uploads", KindImage: "Images"}, host.folders)
	})

	t.Run("failed image purges uploaded cv", func(t *testing.T) {
		host := &fakeHost{fail: map[Kind]error{KindImage: errors.New("rejected")}}
		purger := &recordingPurger{}
		svc := NewService(host, purger, "Uploads", "Images", nil)

		res, err := svc.UploadAll(context.Background(), newFile("cv.pdf", "%PDF"), newFile("me.png", "png"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "upload image")
		assert.Nil(t, res.CV)
		require.Len(t, purger.purged, 1)
		assert.Equal(t, "Uploads/cv.pdf", purger.purged[0].PublicID)
	})

	t.Run("empty file is rejected", func(t *testing.T) {
		svc := NewService(&fakeHost{}, nil, "Uploads", "Images", nil)
		_, err := svc.UploadAll(context.Background(), newFile("cv.pdf", ""), nil)
		assert.ErrorIs(t, err, ErrEmptyFile)
	})
}

func TestPurgeWithoutPurgerDoesNotPanic(t *testing.T) {
	svc := NewService(&fakeHost{}, nil, "Uploads", "Images", nil)
	assert.NotPanics(t, func() {
		svc.Purge(context.Background(), Asset{URL: "https://media.example/x", Kind: KindRaw})
	})
}
