// Package asset builds deterministic zip assets and publishes them to S3
// under content-addressed keys.
package asset

import (
	"archive/zip"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// epoch is the modification time stamped on every entry so that identical
// inputs produce byte-identical archives.
var epoch = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

// File is one entry of a zip asset.
type File struct {
	// Name is the slash-separated path inside the archive.
	Name string
	// Source is the local file to copy.
	Source string
	// Mode is the permission stored for the entry. Zero means 0644.
	Mode os.FileMode
}

// Asset is a built archive on disk.
type Asset struct {
	Path string
	// Hash is the hex sha256 of the archive bytes.
	Hash string
}

// Key returns the object key for the asset under prefix.
func (a Asset) Key(prefix string) string {
	return Key(prefix, a.Hash)
}

// Key joins prefix and a content hash into an S3 object key.
func Key(prefix, hash string) string {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix + hash + ".zip"
}

// Zip writes files to output as a deterministic archive: entries sorted by
// name, fixed timestamps, directories implied.
func Zip(output string, files []File) (Asset, error) {
	if len(files) == 0 {
		return Asset{}, fmt.Errorf("no files to archive")
	}

	sorted := make([]File, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Name == sorted[i-1].Name {
			return Asset{}, fmt.Errorf("duplicate entry %q", sorted[i].Name)
		}
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return Asset{}, fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(output)
	if err != nil {
		return Asset{}, fmt.Errorf("creating %s: %w", output, err)
	}

	h := sha256.New()
	zw := zip.NewWriter(io.MultiWriter(f, h))

	// Partial archives are removed.
	fail := func(err error) (Asset, error) {
		f.Close()
		os.Remove(output)
		return Asset{}, err
	}
	for _, file := range sorted {
		if err := addFile(zw, file); err != nil {
			return fail(err)
		}
	}

	if err := zw.Close(); err != nil {
		return fail(fmt.Errorf("finishing archive: %w", err))
	}
	if err := f.Close(); err != nil {
		os.Remove(output)
		return Asset{}, fmt.Errorf("closing %s: %w", output, err)
	}

	return Asset{Path: output, Hash: hex.EncodeToString(h.Sum(nil))}, nil
}

func addFile(zw *zip.Writer, file File) error {
	name := strings.TrimPrefix(filepath.ToSlash(file.Name), "/")
	if name == "" || strings.Contains(name, "..") {
		return fmt.Errorf("invalid entry name %q", file.Name)
	}

	src, err := os.Open(file.Source)
	if err != nil {
		return fmt.Errorf("opening %s: %w", file.Source, err)
	}
	defer src.Close()

	mode := file.Mode
	if mode == 0 {
		mode = 0644
	}

	hdr := &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: epoch,
	}
	hdr.SetMode(mode)

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("adding %s: %w", name, err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// Entry describes a file inside an existing archive.
type Entry struct {
	Name string
	Mode os.FileMode
	Size uint64
}

// List returns the file entries of the archive at path in archive order.
func List(path string) ([]Entry, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer r.Close()

	var entries []Entry
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		entries = append(entries, Entry{
			Name: f.Name,
			Mode: f.Mode(),
			Size: f.UncompressedSize64,
		})
	}
	return entries, nil
}

// Hash returns the hex sha256 of the file at path.
func Hash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Open hashes an existing archive.
func Open(path string) (Asset, error) {
	hash, err := Hash(path)
	if err != nil {
		return Asset{}, err
	}
	return Asset{Path: path, Hash: hash}, nil
}
