package ytdlp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const uploadDateLayout = "20060102"

// VideoInfo mirrors the subset of the yt-dlp --dump-json document the UI uses.
type VideoInfo struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Uploader   string   `json:"uploader"`
	WebpageURL string   `json:"webpage_url"`
	Duration   *float64 `json:"duration"`
	UploadDate string   `json:"upload_date"`
	Formats    []Format `json:"formats"`
}

// Format describes one downloadable encoding of a video.
type Format struct {
	ID             string   `json:"format_id"`
	Ext            string   `json:"ext"`
	Note           string   `json:"format_note"`
	Resolution     string   `json:"resolution"`
	FileSize       *float64 `json:"filesize"`
	FileSizeApprox *float64 `json:"filesize_approx"`
}

// DecodeInfo parses a single metadata document. Empty output, invalid JSON
// and documents without a title are reported as ErrParse.
func DecodeInfo(data []byte) (VideoInfo, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return VideoInfo{}, fmt.Errorf("%w: empty output", ErrParse)
	}
	var info VideoInfo
	if err := json.Unmarshal(trimmed, &info); err != nil {
		return VideoInfo{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	info.Title = strings.TrimSpace(info.Title)
	if info.Title == "" {
		return VideoInfo{}, fmt.Errorf("%w: document has no title", ErrParse)
	}
	return info, nil
}

// Clone returns a copy whose format slice is independent of v.
func (v VideoInfo) Clone() VideoInfo {
	dup := v
	if v.Formats != nil {
		dup.Formats = make([]Format, len(v.Formats))
		copy(dup.Formats, v.Formats)
	}
	return dup
}

// Length returns the reported duration, if any.
func (v VideoInfo) Length() (time.Duration, bool) {
	if v.Duration == nil || *v.Duration < 0 {
		return 0, false
	}
	return time.Duration(*v.Duration * float64(time.Second)), true
}

// Uploaded parses the upload date, if one was reported.
func (v VideoInfo) Uploaded() (time.Time, bool) {
	raw := strings.TrimSpace(v.UploadDate)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(uploadDateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Size returns the format's size in bytes. approx is true when only yt-dlp's
// estimate is known.
func (f Format) Size() (size uint64, approx bool, ok bool) {
	if f.FileSize != nil && *f.FileSize > 0 {
		return uint64(*f.FileSize), false, true
	}
	if f.FileSizeApprox != nil && *f.FileSizeApprox > 0 {
		return uint64(*f.FileSizeApprox), true, true
	}
	return 0, false, false
}
