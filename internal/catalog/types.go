// Package catalog assembles and serializes the day-grouped site manifest.
package catalog

import "encoding/json"

// Entry is one logical capture in the manifest. Field names are a stable
// contract with the site front end.
type Entry struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Date      string          `json:"date"`
	Time      string          `json:"time"`
	Src       string          `json:"src"`
	Thumb     string          `json:"thumb"`
	Poster    *string         `json:"poster"`
	Mime      string          `json:"mime"`
	Size      int64           `json:"size"`
	Orig      string          `json:"orig"`
	LiveVideo string          `json:"live_video,omitempty"`
	LiveMime  string          `json:"live_mime,omitempty"`
}

// Entry types.
const (
	TypeImage = "image"
	TypeVideo = "video"
)

// Live reports whether the entry carries a companion live video.
func (e Entry) Live() bool { return e.LiveVideo != "" }

// Day is one date's entries plus its annotation object.
type Day struct {
	Date  string          `json:"date"`
	Items []Entry         `json:"items"`
	Notes json.RawMessage `json:"notes"`
}

// Counts aggregates entry kinds across the whole run. Live pairs count once
// as images and once in Live.
type Counts struct {
	Images int `json:"images"`
	Videos int `json:"videos"`
	Live   int `json:"live"`
}

// Manifest is the full catalog document emitted per build.
type Manifest struct {
	GeneratedAt string `json:"generated_at"`
	Days        []Day  `json:"days"`
	Portfolio   []Day  `json:"portfolio"`
	Counts      Counts `json:"counts"`
}
