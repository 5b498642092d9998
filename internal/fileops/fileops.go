// Package fileops implements the copy, move and rename operations behind paste and rename.
package fileops

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrDestinationExists = errors.New("a file or folder with that name already exists")
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrInvalidName       = errors.New("name cannot contain a path separator")
	ErrSameLocation      = errors.New("source and destination are the same")
	ErrIntoItself        = errors.New("cannot copy a folder into itself")
)

// Copy copies a file or a whole directory tree to dst. dst must not exist.
func Copy(src, dst string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return err
	}
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("%s: %w", dst, ErrDestinationExists)
	}
	if info.IsDir() {
		if within(dst, src) {
			return ErrIntoItself
		}
		return copyDir(src, dst)
	}
	return copyEntry(src, dst, info)
}

func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		info, err := d.Info()
		if err != nil {
			return err
		}
		if d.IsDir() {
			return os.MkdirAll(target, info.Mode().Perm()|0o700)
		}
		return copyEntry(path, target, info)
	})
}

func copyEntry(src, dst string, info fs.FileInfo) error {
	if info.Mode()&os.ModeSymlink != 0 {
		link, err := os.Readlink(src)
		if err != nil {
			return err
		}
		return os.Symlink(link, dst)
	}
	return copyFile(src, dst, info.Mode().Perm())
}

func copyFile(src, dst string, perm fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Move renames src to dst. When the rename crosses devices it copies and
// then removes the source.
func Move(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("%s: %w", dst, ErrDestinationExists)
	}
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) || !crossDevice(linkErr.Err) {
		return err
	}
	if err := Copy(src, dst); err != nil {
		return err
	}
	return os.RemoveAll(src)
}

// PasteTarget returns where src lands when pasted into dir. Copying into the
// source's own directory picks a free "name copy" variant; any other clash is refused.
func PasteTarget(dir, src string, cut bool) (string, error) {
	dst := filepath.Join(dir, filepath.Base(src))
	if filepath.Clean(dst) == filepath.Clean(src) {
		if cut {
			return "", ErrSameLocation
		}
		return freeCopyName(dir, filepath.Base(src), isDir(src)), nil
	}
	if _, err := os.Lstat(dst); err == nil {
		return "", fmt.Errorf("%s: %w", dst, ErrDestinationExists)
	}
	return dst, nil
}

func freeCopyName(dir, base string, folder bool) string {
	stem, ext := base, ""
	if !folder {
		ext = filepath.Ext(base)
		stem = strings.TrimSuffix(base, ext)
	}
	for n := 1; ; n++ {
		suffix := " copy"
		if n > 1 {
			suffix = fmt.Sprintf(" copy %d", n)
		}
		candidate := filepath.Join(dir, stem+suffix+ext)
		if _, err := os.Lstat(candidate); errors.Is(err, fs.ErrNotExist) {
			return candidate
		}
	}
}

// Rename gives path a new base name and returns the new path. For files the
// old extension is kept when newName does not already end with it.
func Rename(path, newName string) (string, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return "", ErrEmptyName
	}
	if strings.ContainsAny(newName, `/\`) || newName == "." || newName == ".." {
		return "", ErrInvalidName
	}

	info, err := os.Lstat(path)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		if ext := filepath.Ext(path); ext != "" && ext != filepath.Base(path) && !strings.HasSuffix(strings.ToLower(newName), strings.ToLower(ext)) {
			newName += ext
		}
	}

	dst := filepath.Join(filepath.Dir(path), newName)
	if dst == filepath.Clean(path) {
		return dst, nil
	}
	if _, err := os.Lstat(dst); err == nil && !sameFile(path, dst) {
		return "", ErrDestinationExists
	}
	if err := os.Rename(path, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// sameFile covers case-only renames on case-insensitive filesystems
func sameFile(a, b string) bool {
	ia, err := os.Lstat(a)
	if err != nil {
		return false
	}
	ib, err := os.Lstat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ia, ib)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// within reports whether path is root or lies below it
func within(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
