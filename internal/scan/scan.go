// Package scan discovers source media and pairs stills with companion live
// videos by shared base name.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind classifies a source file by extension.
type Kind int

const (
	KindOther Kind = iota
	KindImage
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	default:
		return "other"
	}
}

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".heic": true,
	".heif": true,
}

var videoExts = map[string]bool{
	".mov": true,
	".mp4": true,
	".m4v": true,
}

// KindForExt returns the media kind for a file extension (with leading dot,
// any case).
func KindForExt(ext string) Kind {
	ext = strings.ToLower(ext)
	switch {
	case imageExts[ext]:
		return KindImage
	case videoExts[ext]:
		return KindVideo
	default:
		return KindOther
	}
}

// SourceFile is one discovered top-level file in the source directory.
type SourceFile struct {
	Path string
	Name string
	Stem string
	Ext  string
	Kind Kind
	Size int64
}

// Scan lists the top-level regular files of dir in name order and classifies
// each by extension. Subdirectories are never descended into; the source
// layout is flat by contract.
func Scan(dir string) ([]SourceFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan source directory: %w", err)
	}

	files := make([]SourceFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", name, err)
		}
		ext := filepath.Ext(name)
		files = append(files, SourceFile{
			Path: filepath.Join(dir, name),
			Name: name,
			Stem: strings.TrimSuffix(name, ext),
			Ext:  ext,
			Kind: KindForExt(ext),
			Size: info.Size(),
		})
	}
	return files, nil
}
