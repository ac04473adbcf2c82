package storage

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// uploadRequest builds a multipart request carrying one file part with the
// given content type, the way Echo hands it to the store.
func uploadRequest(t *testing.T, filename, contentType string, payload []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		t.Fatalf("creating part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("writing payload: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("parsing form: %v", err)
	}
	return req.MultipartForm.File["image"][0]
}

func newStore(t *testing.T, maxBytes int64) *LocalImageStore {
	t.Helper()
	store, err := NewLocalImageStore(t.TempDir(), maxBytes)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	return store
}

func TestSaveStoresFileUnderGeneratedName(t *testing.T) {
	store := newStore(t, 1<<20)
	file := uploadRequest(t, "photo.png", "image/png", []byte("png-bytes"))

	image, err := store.Save(context.Background(), file)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(image.URL, "/uploads/") {
		t.Errorf("url = %q, want /uploads/ prefix", image.URL)
	}
	if !strings.HasSuffix(image.URL, ".png") {
		t.Errorf("url = %q, want extension from the mime type", image.URL)
	}
	if strings.Contains(image.URL, "photo") {
		t.Errorf("url = %q, original filename must not reach the filesystem", image.URL)
	}
	if image.OriginalName != "photo.png" {
		t.Errorf("original name = %q, want photo.png", image.OriginalName)
	}

	stored := filepath.Join(store.Dir(), strings.TrimPrefix(image.URL, "/uploads/"))
	data, err := os.ReadFile(stored)
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("stored content = %q", data)
	}
}

func TestSaveRejectsUnsupportedType(t *testing.T) {
	store := newStore(t, 1<<20)
	file := uploadRequest(t, "script.sh", "application/x-sh", []byte("#!/bin/sh"))

	_, err := store.Save(context.Background(), file)
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("got %v, want ErrUnsupportedType", err)
	}
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	store := newStore(t, 4)
	file := uploadRequest(t, "big.png", "image/png", []byte("way too large"))

	_, err := store.Save(context.Background(), file)
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("got %v, want ErrFileTooLarge", err)
	}
}

func TestRemoveDeletesStoredFile(t *testing.T) {
	store := newStore(t, 1<<20)
	file := uploadRequest(t, "photo.png", "image/png", []byte("png-bytes"))

	image, err := store.Save(context.Background(), file)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := store.Remove(context.Background(), image.URL); err != nil {
		t.Fatalf("remove: %v", err)
	}

	stored := filepath.Join(store.Dir(), strings.TrimPrefix(image.URL, "/uploads/"))
	if _, err := os.Stat(stored); !os.IsNotExist(err) {
		t.Error("expected the file to be gone")
	}

	// Second removal is a no-op.
	if err := store.Remove(context.Background(), image.URL); err != nil {
		t.Fatalf("second remove: %v", err)
	}
}

func TestRemoveRejectsPathEscape(t *testing.T) {
	store := newStore(t, 1<<20)

	for _, url := range []string{"/uploads/../etc/passwd", "/uploads/", "/uploads/a/b.png"} {
		if err := store.Remove(context.Background(), url); err == nil {
			t.Errorf("url %q: expected rejection", url)
		}
	}
}
