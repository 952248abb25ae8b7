package display

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/jesse-kaufman/video-edit/internal/classify"
	"github.com/jesse-kaufman/video-edit/internal/probe"
)

func TestPrintReport(t *testing.T) {
	color.NoColor = true // plain text for assertions
	t.Cleanup(func() { color.NoColor = false })

	f := &probe.Format{
		FormatLongName: "Matroska / WebM",
		Size:           "4294967296",
	}
	st := &classify.Streams{
		Video: []classify.VideoStream{
			{Index: 0, Codec: "h264", CodecLabel: "H.264", Width: 1920, Height: 1080, FrameRate: 23.98},
		},
		Audio: []classify.AudioStream{
			{Index: 0, Codec: "ac3", CodecLabel: "AC3", Language: "eng", Layout: "5.1 Surround", Title: "5.1 Surround - Default"},
			{Index: 1, Codec: "aac", CodecLabel: "AAC", Language: "fre", Layout: "Stereo", Title: "VFF"},
		},
		Subtitle: []classify.SubtitleStream{
			{Index: 0, Codec: "subrip", CodecLabel: "SubRip subtitle", Language: "eng", TextBased: true},
			{Index: 1, Codec: "hdmv_pgs_subtitle", CodecLabel: "HDMV PGS subtitles", Language: "eng"},
		},
	}

	var buf bytes.Buffer
	PrintReport(&buf, "in.mkv", f, st)
	out := buf.String()

	assert.Contains(t, out, "=== in.mkv ===")
	assert.Contains(t, out, "Matroska / WebM")
	assert.Contains(t, out, "4.0 GiB")
	assert.Contains(t, out, "1920x1080")
	assert.Contains(t, out, "5.1 Surround - Default")

	// Markers: non-English audio, non-AAC audio, extractable text subs.
	assert.Contains(t, out, "fre [!lang]")
	assert.Contains(t, out, "[!AC3]")
	assert.Contains(t, out, "[extract]")

	// The image subtitle carries no extract marker.
	assert.Contains(t, out, "Subtitle 1: HDMV PGS subtitles (image)")
}
