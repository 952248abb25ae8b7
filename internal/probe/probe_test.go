package probe

import "testing"

// sampleJSON is a trimmed capture of ffprobe output for a typical release:
// one H.264 video, AC3 5.1 English audio, AAC French audio, SubRip subs.
const sampleJSON = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "h264",
      "codec_long_name": "H.264 / AVC / MPEG-4 AVC / MPEG-4 part 10",
      "codec_type": "video",
      "profile": "High",
      "width": 1920,
      "height": 1080,
      "r_frame_rate": "24000/1001",
      "disposition": {"default": 1, "attached_pic": 0},
      "tags": {"language": "eng", "title": "Movie.2024.1080p.WEB"}
    },
    {
      "index": 1,
      "codec_name": "ac3",
      "codec_long_name": "ATSC A/52A (AC-3)",
      "codec_type": "audio",
      "channels": 6,
      "channel_layout": "5.1(side)",
      "sample_rate": "48000",
      "tags": {"language": "eng"}
    },
    {
      "index": 2,
      "codec_name": "aac",
      "codec_long_name": "AAC (Advanced Audio Coding)",
      "codec_type": "audio",
      "channels": 2,
      "channel_layout": "stereo",
      "sample_rate": "48000",
      "tags": {"language": "fre", "title": "VFF"}
    },
    {
      "index": 3,
      "codec_name": "subrip",
      "codec_long_name": "SubRip subtitle",
      "codec_type": "subtitle",
      "tags": {"language": "eng"}
    }
  ],
  "format": {
    "filename": "Movie.2024.mkv",
    "nb_streams": 4,
    "format_name": "matroska,webm",
    "format_long_name": "Matroska / WebM",
    "duration": "7216.416000",
    "size": "4294967296",
    "bit_rate": "4761520",
    "tags": {"encoder": "libebml v1.4.2"}
  }
}`

func TestParseJSON(t *testing.T) {
	r, err := ParseJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}

	if len(r.Streams) != 4 {
		t.Fatalf("got %d streams, want 4", len(r.Streams))
	}
	if r.Format.FormatName != "matroska,webm" {
		t.Errorf("FormatName = %q", r.Format.FormatName)
	}
	if got := r.Format.SizeBytes(); got != 4294967296 {
		t.Errorf("SizeBytes() = %d", got)
	}
	if got := r.Format.DurationSeconds(); got != 7216.416 {
		t.Errorf("DurationSeconds() = %v", got)
	}

	v := r.Streams[0]
	if v.CodecType != "video" || v.Width != 1920 || v.Height != 1080 {
		t.Errorf("video stream parsed wrong: %+v", v)
	}
	if v.Title() != "Movie.2024.1080p.WEB" {
		t.Errorf("Title() = %q", v.Title())
	}

	a := r.Streams[1]
	if a.ChannelLayout != "5.1(side)" || a.Channels != 6 || a.Language() != "eng" {
		t.Errorf("audio stream parsed wrong: %+v", a)
	}

	// Absent tags read as empty strings, not panics.
	if got := r.Streams[1].Title(); got != "" {
		t.Errorf("missing title = %q, want empty", got)
	}
}

func TestParseJSON_Invalid(t *testing.T) {
	if _, err := ParseJSON([]byte("not json")); err == nil {
		t.Fatal("expected error for malformed input")
	}
}

func TestParseFrameRate(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"24000/1001", 24000.0 / 1001.0},
		{"25/1", 25},
		{"30", 30},
		{"0/0", 0},
		{"", 0},
		{"garbage", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseFrameRate(tt.in); got != tt.want {
				t.Errorf("ParseFrameRate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
