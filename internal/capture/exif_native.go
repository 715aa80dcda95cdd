package capture

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// readNativeEXIF decodes DateTimeOriginal in-process for formats goexif
// understands (JPEG and TIFF containers). Any failure falls through to the
// exiftool query, which also covers HEIC and video containers.
func readNativeEXIF(path string) (time.Time, bool) {
	file, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer file.Close()

	meta, err := exif.Decode(file)
	if err != nil {
		return time.Time{}, false
	}

	tag, err := meta.Get(exif.DateTimeOriginal)
	if err != nil {
		return time.Time{}, false
	}
	value, err := tag.StringVal()
	if err != nil {
		return time.Time{}, false
	}
	return parseTimestamp(value)
}
