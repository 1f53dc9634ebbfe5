package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewStoredFilename(t *testing.T) {
	name, err := NewStoredFilename("photo.PNG")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("Expected lowercase .png suffix, got %s", name)
	}
	// 16 random bytes hex-encoded plus ".png"
	if len(name) != 32+4 {
		t.Errorf("Expected 36 characters, got %d (%s)", len(name), name)
	}

	other, err := NewStoredFilename("photo.png")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if other == name {
		t.Error("Two stored filenames should not collide")
	}
}

func TestNewStoredFilename_RejectsUnknownExtensions(t *testing.T) {
	for _, original := range []string{"malware.exe", "doc.pdf", "noextension", "archive.tar.gz"} {
		if _, err := NewStoredFilename(original); !errors.Is(err, ErrUnsupportedImage) {
			t.Errorf("Expected ErrUnsupportedImage for %s, got %v", original, err)
		}
	}
}

func TestDiskStore(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "http://localhost:8080/")

	url, err := store.Store("abc123.png", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if url != "http://localhost:8080/uploads/abc123.png" {
		t.Errorf("Unexpected public url: %s", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "abc123.png"))
	if err != nil {
		t.Fatalf("Expected stored file, got %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("Stored file content mismatch: %q", data)
	}

	if err := store.Remove("abc123.png"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "abc123.png")); !os.IsNotExist(err) {
		t.Error("Expected file to be gone after Remove")
	}
}

func TestRemoteStore(t *testing.T) {
	var gotFilename string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		gotFilename = header.Filename
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"url": "https://cdn.test/abc123.png"}`))
	}))
	defer srv.Close()

	store := NewRemoteStore(srv.URL, "us-west-1")
	url, err := store.Store("abc123.png", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if url != "https://cdn.test/abc123.png" {
		t.Errorf("Unexpected url: %s", url)
	}
	if gotFilename != "abc123.png" {
		t.Errorf("Expected multipart filename abc123.png, got %s", gotFilename)
	}
}

func TestRemoteStore_Remove(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	store := NewRemoteStore(srv.URL, "us-west-1")
	if err := store.Remove("abc123.png"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/abc123.png" {
		t.Errorf("Expected DELETE /abc123.png, got %s %s", gotMethod, gotPath)
	}
}

func TestRemoteStore_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := NewRemoteStore(srv.URL, "us-west-1")
	if _, err := store.Store("abc123.png", strings.NewReader("bytes")); err == nil {
		t.Error("Expected error for upstream failure, got nil")
	}
}
