// Package policy decides per-stream keep/drop/convert/copy and builds the
// corresponding ffmpeg argument list. It is pure mapping over classified
// streams: no subprocess is launched and no filesystem state is touched.
package policy

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jesse-kaufman/video-edit/internal/classify"
	"github.com/jesse-kaufman/video-edit/internal/config"
)

// Errors for required stream classes that came up empty.
var (
	ErrNoVideoStream  = errors.New("no video streams found")
	ErrNoEnglishAudio = errors.New("No English audio streams")
)

// Build produces the full plan for one invocation. command names the CLI
// command and is embedded in the output filename. fdkAvailable selects the
// AAC encoder: the higher-quality libfdk_aac when the local ffmpeg build
// has it, the native encoder otherwise.
func Build(st *classify.Streams, opts config.ConversionOptions, inputPath, command string, fdkAvailable bool) (*Plan, error) {
	plan := &Plan{
		InputPath:  inputPath,
		OutputPath: OutputPath(inputPath, command),
	}

	// Text-based English subtitles are always routed out-of-band when
	// extraction is on; image-based English subtitles are muxed (or OCR'd
	// in extract-only mode).
	for _, s := range st.Subtitle {
		if !classify.IsEnglish(s.Language) {
			continue
		}
		if s.TextBased {
			if opts.ExtractSubs {
				plan.Extract = append(plan.Extract, s)
			}
			continue
		}
		if opts.ExtractOnly {
			plan.OCR = append(plan.OCR, s)
		} else {
			plan.Subtitle = append(plan.Subtitle, s)
		}
	}

	if opts.ExtractOnly {
		if len(plan.Extract) == 0 && len(plan.OCR) == 0 {
			return plan, nil // callers warn and skip, not fail
		}
		return plan, nil
	}

	if len(st.Video) == 0 {
		return nil, ErrNoVideoStream
	}
	plan.Video = st.Video[:1]
	plan.SourceFPS = st.Video[0].FrameRate

	for _, a := range st.Audio {
		if classify.IsEnglish(a.Language) {
			plan.Audio = append(plan.Audio, a)
		}
	}
	if len(plan.Audio) == 0 {
		return nil, ErrNoEnglishAudio
	}

	plan.ConvertingVideo = opts.ConvertVideo &&
		(plan.Video[0].Codec != TargetVideoCodec || opts.ForceConvert)
	plan.ConvertingAudio = opts.ConvertAudio

	plan.Args = buildArgs(plan, opts, fdkAvailable)
	return plan, nil
}

// OutputPath derives the output filename: input basename suffixed with the
// command name, always in a Matroska container, beside the input.
func OutputPath(inputPath, command string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(filepath.Dir(inputPath), base+"_"+command+".mkv")
}

// buildArgs assembles the encoder invocation. Skeleton: preamble, input,
// per-stream maps with codecs and metadata, global metadata strip, fixed
// matroska output.
func buildArgs(plan *Plan, opts config.ConversionOptions, fdkAvailable bool) []string {
	args := make([]string, 0, 64)

	args = append(args,
		"-hide_banner", "-nostdin", "-y",
		"-loglevel", "error",
		"-progress", "pipe:1",
		"-i", plan.InputPath,
	)

	args = appendVideo(args, plan, opts)
	args = appendAudio(args, plan, fdkAvailable)
	args = appendSubtitles(args, plan)

	// Strip container-level metadata; release names and encoder banners
	// from the source have no business in the output.
	args = append(args, "-map_metadata", "-1")

	args = append(args, "-f", "matroska", plan.OutputPath)
	return args
}

func appendVideo(args []string, plan *Plan, opts config.ConversionOptions) []string {
	args = append(args, "-map", "0:v:0")

	if plan.ConvertingVideo {
		args = append(args,
			"-c:v", videoEncoder,
			"-preset", opts.Preset,
			"-crf", strconv.Itoa(opts.CRF),
			"-pix_fmt", "yuv420p10le",
			"-profile:v", "main10",
		)
	} else {
		args = append(args, "-c:v", "copy")
	}

	// Blank the title so source-release naming does not leak through.
	args = append(args,
		"-metadata:s:v:0", "title=",
		"-metadata:s:v:0", "language=eng",
	)
	return args
}

func appendAudio(args []string, plan *Plan, fdkAvailable bool) []string {
	encoder := audioEncoderNative
	if fdkAvailable {
		encoder = audioEncoderFdk
	}

	for n, a := range plan.Audio {
		args = append(args, "-map", fmt.Sprintf("0:a:%d", a.Index))

		if plan.ConvertingAudio && a.Codec != TargetAudioCodec {
			args = append(args, fmt.Sprintf("-c:a:%d", n), encoder)
		} else {
			args = append(args, fmt.Sprintf("-c:a:%d", n), "copy")
		}

		args = append(args,
			fmt.Sprintf("-metadata:s:a:%d", n), "title="+a.Title,
			fmt.Sprintf("-metadata:s:a:%d", n), "language=eng",
		)
	}
	return args
}

func appendSubtitles(args []string, plan *Plan) []string {
	if len(plan.Subtitle) == 0 {
		return args
	}

	for n, s := range plan.Subtitle {
		args = append(args, "-map", fmt.Sprintf("0:s:%d", s.Index))
		// Re-tag existing titles explicitly so the global metadata strip
		// does not blank them.
		if s.Title != "" {
			args = append(args, fmt.Sprintf("-metadata:s:s:%d", n), "title="+s.Title)
		}
		args = append(args, fmt.Sprintf("-metadata:s:s:%d", n), "language=eng")
	}
	args = append(args, "-c:s", "copy")
	return args
}
