package classify

// Index on each record is the zero-based position within its type class,
// assigned at classification time as the current list length before
// insertion. It is never mutated afterward; ffmpeg per-type stream
// selectors (0:a:N, 0:s:N) address streams the same way.

// VideoStream describes one classified video stream.
type VideoStream struct {
	Index      int
	Language   string
	Codec      string // ffprobe codec_name, e.g. "h264"
	CodecLabel string // cleaned codec_long_name, e.g. "H.264 / AVC"
	Width      int
	Height     int
	FrameRate  float64 // frames per second, 0 when unknown
	Title      string  // source title tag, verbatim
}

// AudioStream describes one classified audio stream. Title is derived once
// during classification (see DeriveAudioTitle) and reused by the policy
// and report layers.
type AudioStream struct {
	Index       int
	Language    string
	Codec       string
	CodecLabel  string
	Channels    int
	Layout      string // formatted label, e.g. "5.1 Surround"
	Title       string // derived
	SourceTitle string // raw title tag, may be empty
}

// SubtitleStream describes one classified subtitle stream. TextBased
// streams can be converted to a text subtitle file; the rest are bitmap
// subtitles that are either muxed as-is or handed to the OCR tool.
type SubtitleStream struct {
	Index      int
	Language   string
	Codec      string
	CodecLabel string
	Title      string
	TextBased  bool
}

// Streams is the classified view of one container, one ordered list per
// type class.
type Streams struct {
	Video    []VideoStream
	Audio    []AudioStream
	Subtitle []SubtitleStream
}

// TextSubtitles returns the text-based subtitle streams in order.
func (s *Streams) TextSubtitles() []SubtitleStream {
	var out []SubtitleStream
	for _, sub := range s.Subtitle {
		if sub.TextBased {
			out = append(out, sub)
		}
	}
	return out
}

// ImageSubtitles returns the image-based subtitle streams in order.
func (s *Streams) ImageSubtitles() []SubtitleStream {
	var out []SubtitleStream
	for _, sub := range s.Subtitle {
		if !sub.TextBased {
			out = append(out, sub)
		}
	}
	return out
}

// IsEnglish reports whether a language tag selects a stream for the
// output. An absent tag counts as English: single-language releases
// routinely omit it, and dropping the only audio track on that basis
// would be worse than keeping an occasional mislabeled one.
func IsEnglish(lang string) bool {
	return lang == "eng" || lang == ""
}
