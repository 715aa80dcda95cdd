//go:build !linux && !darwin

package capture

import "time"

func birthTime(string) (time.Time, bool) {
	return time.Time{}, false
}
