package policy

import "github.com/jesse-kaufman/video-edit/internal/classify"

// Target codecs for the normalized output. The encoder names differ from
// the codec names ffprobe reports, hence both.
const (
	TargetVideoCodec   = "hevc"
	TargetAudioCodec   = "aac"
	videoEncoder       = "libx265"
	audioEncoderFdk    = "libfdk_aac"
	audioEncoderNative = "aac"
)

// Plan holds the complete decision set for one invocation: the ffmpeg
// argument list for the primary transcode and the stream subsets needed
// for reporting and out-of-band extraction.
type Plan struct {
	InputPath  string
	OutputPath string

	// Args is the complete ffmpeg argument list (binary name excluded).
	// Empty when the command is extract-only.
	Args []string

	// Streams that appear in the muxed output.
	Video    []classify.VideoStream
	Audio    []classify.AudioStream
	Subtitle []classify.SubtitleStream

	// English text subtitles routed to out-of-band extraction.
	Extract []classify.SubtitleStream

	// English image subtitles eligible for OCR (extract-subs command).
	OCR []classify.SubtitleStream

	ConvertingVideo bool
	ConvertingAudio bool

	// SourceFPS is the primary video frame rate, for progress speed ratio.
	SourceFPS float64
}
