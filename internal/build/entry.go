package build

import (
	"context"

	"travelog/internal/catalog"
	"travelog/internal/identity"
	"travelog/internal/logging"
	"travelog/internal/scan"
	"travelog/internal/services"
)

// buildEntry derives the asset set for one group and assembles its manifest
// record. The primary file is the image when the group has one; a live pair
// is an image entry carrying its companion's derived reference.
func (r *Runner) buildEntry(ctx context.Context, group scan.Group) (catalog.Entry, error) {
	primary := group.Image
	if primary == nil {
		primary = group.Video
	}

	ctx = services.WithSourceFile(ctx, primary.Path)
	token := identity.Token(primary.Path)
	moment := r.resolver.Resolve(ctx, primary.Path)

	logger := logging.WithContext(ctx, r.logger)
	logger.Debug("building entry",
		logging.String(logging.FieldEntryID, token),
		logging.String("date", moment.Date()),
	)

	if group.Image != nil {
		return r.buildImageEntry(ctx, group, token, moment.Date(), moment.Clock())
	}
	return r.buildVideoEntry(ctx, group, token, moment.Date(), moment.Clock())
}

func (r *Runner) buildImageEntry(ctx context.Context, group scan.Group, token, date, clock string) (catalog.Entry, error) {
	assets, err := r.deriver.DeriveImage(ctx, group.Image.Path, token)
	if err != nil {
		return catalog.Entry{}, err
	}

	entry := catalog.Entry{
		ID:    token,
		Type:  catalog.TypeImage,
		Date:  date,
		Time:  clock,
		Src:   assets.Src,
		Thumb: assets.Thumb,
		Mime:  assets.Mime,
		Size:  group.Image.Size,
		Orig:  group.Image.Name,
	}

	if group.Video != nil {
		companion, err := r.deriver.DeriveVideo(ctx, group.Video.Path, identity.Token(group.Video.Path))
		if err != nil {
			return catalog.Entry{}, err
		}
		entry.LiveVideo = companion.Src
		entry.LiveMime = companion.Mime
	}
	return entry, nil
}

func (r *Runner) buildVideoEntry(ctx context.Context, group scan.Group, token, date, clock string) (catalog.Entry, error) {
	assets, err := r.deriver.DeriveVideo(ctx, group.Video.Path, token)
	if err != nil {
		return catalog.Entry{}, err
	}

	entry := catalog.Entry{
		ID:    token,
		Type:  catalog.TypeVideo,
		Date:  date,
		Time:  clock,
		Src:   assets.Src,
		Thumb: assets.Poster,
		Mime:  assets.Mime,
		Size:  group.Video.Size,
		Orig:  group.Video.Name,
	}
	if assets.Poster != "" {
		entry.Poster = pointerTo(assets.Poster)
	}
	return entry, nil
}

func pointerTo(v string) *string { return &v }
