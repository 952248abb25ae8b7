// Package probe runs ffprobe against a media file and parses its JSON
// output into typed wire structures. Probing is read-only: no subprocess
// launched here ever writes a file.
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Result is the parsed output of a single ffprobe call.
type Result struct {
	Format  Format   `json:"format"`
	Streams []Stream `json:"streams"`
}

// Format holds container-level metadata from ffprobe's format section.
type Format struct {
	Filename       string            `json:"filename"`
	NbStreams      int               `json:"nb_streams"`
	FormatName     string            `json:"format_name"`
	FormatLongName string            `json:"format_long_name"`
	Duration       string            `json:"duration"`
	Size           string            `json:"size"`
	BitRate        string            `json:"bit_rate"`
	Tags           map[string]string `json:"tags"`
}

// Stream holds one elementary stream entry. Type-specific fields are only
// populated for the matching codec_type; ffprobe reports numbers as
// strings, so callers use the parse helpers below.
type Stream struct {
	Index         int               `json:"index"`
	CodecType     string            `json:"codec_type"`
	CodecName     string            `json:"codec_name"`
	CodecLongName string            `json:"codec_long_name"`
	Profile       string            `json:"profile"`
	Width         int               `json:"width"`
	Height        int               `json:"height"`
	RFrameRate    string            `json:"r_frame_rate"`
	Channels      int               `json:"channels"`
	ChannelLayout string            `json:"channel_layout"`
	SampleRate    string            `json:"sample_rate"`
	Disposition   map[string]int    `json:"disposition"`
	Tags          map[string]string `json:"tags"`
}

// Language returns the stream's language tag, or "" when absent.
func (s *Stream) Language() string { return s.Tags["language"] }

// Title returns the stream's title tag, or "" when absent.
func (s *Stream) Title() string { return s.Tags["title"] }

// SizeBytes returns the container size in bytes (0 when unknown).
func (f *Format) SizeBytes() int64 { return parseInt64(f.Size) }

// DurationSeconds returns the container duration (0 when unknown).
func (f *Format) DurationSeconds() float64 { return parseFloat(f.Duration) }

// Probe runs one ffprobe JSON call against path and parses the result.
func Probe(ctx context.Context, ffprobeBin, path string) (*Result, error) {
	cmd := exec.CommandContext(ctx, ffprobeBin,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}
	return ParseJSON(out)
}

// ParseJSON converts raw ffprobe JSON output into a Result.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*Result, error) {
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return &r, nil
}

// ParseFrameRate converts an ffprobe rational ("24000/1001") into a float.
// Returns 0 for empty, malformed, or zero-denominator input.
func ParseFrameRate(r string) float64 {
	r = strings.TrimSpace(r)
	if r == "" {
		return 0
	}
	num, den, found := strings.Cut(r, "/")
	if !found {
		return parseFloat(num)
	}
	n := parseFloat(num)
	d := parseFloat(den)
	if d == 0 {
		return 0
	}
	return n / d
}

// Numeric parsing helpers (ffprobe returns numbers as strings).

func parseInt64(s string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}
