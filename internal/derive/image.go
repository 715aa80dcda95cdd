package derive

import (
	"context"

	"travelog/internal/logging"
	"travelog/internal/services"
)

// ImageAssets holds the site-relative paths of an image's derived set.
type ImageAssets struct {
	Src   string
	Thumb string
	Mime  string
}

// DeriveImage produces the bounded full-size derivative and the thumbnail
// for a still, both re-encoded to JPEG. Existing outputs are never
// regenerated. HEIC/HEIF sources pass through a scratch decode first; if the
// decode tool fails, the resizer is given the original as a best effort
// before the failure is treated as fatal.
func (d *Deriver) DeriveImage(ctx context.Context, path, token string) (ImageAssets, error) {
	outImg := d.imagePath(token)
	outThumb := d.thumbPath(token)

	needImg := !outputExists(outImg)
	needThumb := !outputExists(outThumb)

	if needImg || needThumb {
		input := path
		var cleanup func()
		if isHeif(path) {
			decoded, done, err := d.decodeHeif(ctx, path, token)
			if err != nil {
				d.logger.Warn("HEIF scratch decode failed, resizing original directly",
					logging.String(logging.FieldSourceFile, path),
					logging.Error(err),
				)
			} else {
				input = decoded
				cleanup = done
			}
		}
		if cleanup != nil {
			defer cleanup()
		}

		if needImg {
			if err := d.resizeImage(ctx, input, outImg, d.cfg.Images.MaxEdge); err != nil {
				return ImageAssets{}, services.Wrap(services.ErrExternalTool, "derive", "resize image", path, err)
			}
		}
		if needThumb {
			if err := d.resizeImage(ctx, input, outThumb, d.cfg.Images.ThumbMaxEdge); err != nil {
				return ImageAssets{}, services.Wrap(services.ErrExternalTool, "derive", "resize thumbnail", path, err)
			}
		}
	}

	src, err := d.siteRel(outImg)
	if err != nil {
		return ImageAssets{}, err
	}
	thumb, err := d.siteRel(outThumb)
	if err != nil {
		return ImageAssets{}, err
	}
	return ImageAssets{Src: src, Thumb: thumb, Mime: "image/jpeg"}, nil
}
