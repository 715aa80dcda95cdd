package derive

import (
	"path/filepath"
	"strings"
)

// Derived filename prefixes. Together with the identity token they form the
// idempotency cache index, so they are a stable contract.
const (
	imagePrefix  = "img_"
	thumbPrefix  = "thumb_"
	videoPrefix  = "vid_"
	posterPrefix = "poster_"
)

func (d *Deriver) imagePath(token string) string {
	return filepath.Join(d.cfg.ImageDir(), imagePrefix+token+".jpg")
}

func (d *Deriver) thumbPath(token string) string {
	return filepath.Join(d.cfg.ThumbDir(), thumbPrefix+token+".jpg")
}

func (d *Deriver) videoPath(token string) string {
	return filepath.Join(d.cfg.VideoDir(), videoPrefix+token+".mp4")
}

func (d *Deriver) posterPath(token string) string {
	return filepath.Join(d.cfg.PosterDir(), posterPrefix+token+".jpg")
}

// siteRel converts an absolute path under the site root into the
// forward-slash relative form the manifest references.
func (d *Deriver) siteRel(path string) (string, error) {
	rel, err := filepath.Rel(d.cfg.Paths.SiteDir, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// scratchPath places a tool's output beside its final location, keeping the
// final extension so extension-sniffing tools pick the right format, while
// staying invisible to completion checks.
func scratchPath(final string) string {
	dir := filepath.Dir(final)
	base := filepath.Base(final)
	ext := filepath.Ext(base)
	return filepath.Join(dir, "."+strings.TrimSuffix(base, ext)+".scratch"+ext)
}
