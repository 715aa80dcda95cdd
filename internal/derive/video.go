package derive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"travelog/internal/fileutil"
	"travelog/internal/logging"
	"travelog/internal/services"
)

// VideoAssets holds the site-relative paths of a video's derived set.
type VideoAssets struct {
	Src    string
	Poster string
	Mime   string
}

// posterSeek is where the poster frame is grabbed; clips shorter than a
// second fall back to their first frame.
const posterSeek = "00:00:01.000"

// DeriveVideo extracts a poster frame and, under the transcode policy,
// produces a web-delivery MP4. Under the passthrough policy the original
// file is referenced directly via a relative path escaping the site root.
// Poster extraction is best effort; transcode failure is fatal.
func (d *Deriver) DeriveVideo(ctx context.Context, path, token string) (VideoAssets, error) {
	poster, err := d.ensurePoster(ctx, path, token)
	if err != nil {
		return VideoAssets{}, err
	}

	if d.cfg.Video.Transcode {
		out := d.videoPath(token)
		if !outputExists(out) {
			if err := d.transcode(ctx, path, out); err != nil {
				return VideoAssets{}, services.Wrap(services.ErrExternalTool, "derive", "transcode video", path, err)
			}
		}
		src, err := d.siteRel(out)
		if err != nil {
			return VideoAssets{}, err
		}
		return VideoAssets{Src: src, Poster: poster, Mime: "video/mp4"}, nil
	}

	// Passthrough keeps builds fast for local use: reference the original
	// via a relative path that escapes the site root.
	src, err := d.siteRel(path)
	if err != nil {
		return VideoAssets{}, err
	}
	return VideoAssets{Src: src, Poster: poster, Mime: mimeForVideoExt(path)}, nil
}

// ensurePoster returns the site-relative poster path, empty when extraction
// failed. A missing poster degrades the entry, not the run.
func (d *Deriver) ensurePoster(ctx context.Context, path, token string) (string, error) {
	out := d.posterPath(token)
	if !outputExists(out) {
		if err := d.extractPoster(ctx, path, out); err != nil {
			d.logger.Warn("poster extraction failed, entry will have no poster",
				logging.String(logging.FieldSourceFile, path),
				logging.Error(err),
			)
			return "", nil
		}
	}
	return d.siteRel(out)
}

func (d *Deriver) extractPoster(ctx context.Context, path, output string) error {
	seek := posterSeek
	if result, err := probeMedia(ctx, d.cfg.Tools.FFprobe, path); err == nil {
		if duration := result.DurationSeconds(); duration > 0 && duration < 1.1 {
			seek = "00:00:00.000"
		}
	}

	scratch := scratchPath(output)
	err := d.runNamedTool(ctx, "extract poster", d.cfg.Tools.FFmpeg,
		"-y", "-ss", seek, "-i", path,
		"-vframes", "1", "-q:v", "2",
		scratch,
	)
	if err != nil {
		os.Remove(scratch)
		return err
	}
	return fileutil.PromoteFile(scratch, output)
}

func (d *Deriver) transcode(ctx context.Context, path, output string) error {
	scratch := scratchPath(output)
	err := d.runNamedTool(ctx, "transcode video", d.cfg.Tools.FFmpeg,
		"-y", "-i", path,
		"-vf", fmt.Sprintf("scale='min(%d,iw)':-2", d.cfg.Video.MaxWidth),
		"-c:v", "libx264", "-preset", d.cfg.Video.Preset, "-crf", strconv.Itoa(d.cfg.Video.CRF),
		"-c:a", "aac", "-b:a", d.cfg.Video.AudioBitrate,
		"-movflags", "+faststart",
		scratch,
	)
	if err != nil {
		os.Remove(scratch)
		return err
	}
	return fileutil.PromoteFile(scratch, output)
}

func mimeForVideoExt(path string) string {
	if strings.ToLower(filepath.Ext(path)) == ".mov" {
		return "video/quicktime"
	}
	return "video/mp4"
}
