package services

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var allowedImageExtensions = map[string]bool{
	"png":  true,
	"jpeg": true,
	"jpg":  true,
}

// FileStore persists an uploaded image and returns the public URL it will be
// served from. Remove discards a stored file again when the listing write that
// needed it fails. Origin and Region feed the files audit table.
type FileStore interface {
	Store(filename string, r io.Reader) (string, error)
	Remove(filename string) error
	Origin() string
	Region() string
}

// NewStoredFilename picks a collision-free name for an upload: random hex
// plus the original extension. Extensions outside the image allow-list are
// rejected before anything touches the store.
func NewStoredFilename(original string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(original), "."))
	if !allowedImageExtensions[ext] {
		return "", ErrUnsupportedImage
	}
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate filename: %w", err)
	}
	return hex.EncodeToString(b) + "." + ext, nil
}

// DiskStore writes uploads under a local directory that the router serves
// statically at /uploads.
type DiskStore struct {
	Dir     string
	BaseURL string
}

func NewDiskStore(dir, baseURL string) *DiskStore {
	return &DiskStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (d *DiskStore) Store(filename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	fullpath := filepath.Join(d.Dir, filename)
	f, err := os.Create(fullpath)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(fullpath)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return d.BaseURL + "/uploads/" + filename, nil
}

func (d *DiskStore) Remove(filename string) error {
	return os.Remove(filepath.Join(d.Dir, filename))
}

func (d *DiskStore) Origin() string { return "local" }
func (d *DiskStore) Region() string { return "" }

// RemoteStore posts uploads to an external image host that answers with
// {"url": "..."}.
type RemoteStore struct {
	Endpoint string
	RegionID string
	Client   *http.Client
}

func NewRemoteStore(endpoint, region string) *RemoteStore {
	return &RemoteStore{
		Endpoint: endpoint,
		RegionID: region,
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *RemoteStore) Store(filename string, r io.Reader) (string, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, r); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequest(http.MethodPost, s.Endpoint, pr)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	res, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read upload response: %w", err)
	}
	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("upload failed with status %d: %s", res.StatusCode, raw)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("parse upload response: %w", err)
	}
	if out.URL == "" {
		return "", errors.New("upload response missing url")
	}
	return out.URL, nil
}

func (s *RemoteStore) Remove(filename string) error {
	req, err := http.NewRequest(http.MethodDelete, s.Endpoint+"/"+filename, nil)
	if err != nil {
		return fmt.Errorf("build remove request: %w", err)
	}

	res, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("remove request: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		return nil
	}
	return fmt.Errorf("remove failed with status %d", res.StatusCode)
}

func (s *RemoteStore) Origin() string { return s.Endpoint }
func (s *RemoteStore) Region() string { return s.RegionID }
