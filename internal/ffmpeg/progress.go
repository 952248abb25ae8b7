package ffmpeg

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jesse-kaufman/video-edit/internal/display"
)

// Progress is one parsed batch of the encoder's -progress emission.
// ffmpeg writes key=value lines terminated by a "progress=continue" or
// "progress=end" marker; values it cannot compute arrive as "N/A".
type Progress struct {
	Frame     int64
	FPS       float64
	OutTimeUs int64
	TotalSize int64
	Speed     float64 // encoder-reported realtime multiple, e.g. 1.04
	Done      bool
}

// SpeedRatio returns current encode fps divided by the source frame rate,
// or 0 when either is unknown.
func (p Progress) SpeedRatio(sourceFPS float64) float64 {
	if p.FPS <= 0 || sourceFPS <= 0 {
		return 0
	}
	return p.FPS / sourceFPS
}

// Status renders the single-line human status for a batch:
//
//	fps=23.9 size=1.2 GiB time=00:42:10 speed=1.04x (0.99x source)
//
// The source ratio is omitted when the source frame rate is unknown.
// There is no history and no ETA computation.
func (p Progress) Status(sourceFPS float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "fps=%.1f size=%s time=%s speed=%.2fx",
		p.FPS, display.FormatBytes(p.TotalSize), formatOutTime(p.OutTimeUs), p.Speed)
	if ratio := p.SpeedRatio(sourceFPS); ratio > 0 {
		fmt.Fprintf(&b, " (%.2fx source)", ratio)
	}
	return b.String()
}

// parseProgress consumes key=value batches from r until EOF, invoking
// onProgress after each batch marker, and returns the last batch seen.
func parseProgress(r io.Reader, onProgress ProgressFunc) Progress {
	scanner := bufio.NewScanner(r)

	var batch, last Progress
	for scanner.Scan() {
		line := scanner.Text()

		if marker, ok := strings.CutPrefix(line, "progress="); ok {
			batch.Done = marker == "end"
			last = batch
			if onProgress != nil {
				onProgress(batch)
			}
			batch = Progress{}
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.TrimSpace(key) {
		case "frame":
			if n, err := strconv.ParseInt(value, 10, 64); err == nil {
				batch.Frame = n
			}
		case "fps":
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				batch.FPS = f
			}
		case "total_size":
			if n, err := strconv.ParseInt(value, 10, 64); err == nil {
				batch.TotalSize = n
			}
		case "out_time_us":
			if n, err := strconv.ParseInt(value, 10, 64); err == nil {
				batch.OutTimeUs = n
			}
		case "out_time_ms":
			// Older builds emit out_time_ms with microsecond values;
			// only use it when out_time_us was not seen in this batch.
			if batch.OutTimeUs == 0 {
				if n, err := strconv.ParseInt(value, 10, 64); err == nil {
					batch.OutTimeUs = n
				}
			}
		case "speed":
			if f, err := strconv.ParseFloat(strings.TrimSuffix(value, "x"), 64); err == nil {
				batch.Speed = f
			}
		}
	}
	return last
}

// formatOutTime renders microseconds as HH:MM:SS.
func formatOutTime(us int64) string {
	if us < 0 {
		us = 0
	}
	secs := us / 1_000_000
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
}
