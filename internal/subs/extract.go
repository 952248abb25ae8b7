// Package subs extracts text subtitles to sidecar files and drives the
// external OCR tool for bitmap subtitles.
package subs

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jesse-kaufman/video-edit/internal/classify"
	"github.com/jesse-kaufman/video-edit/internal/config"
	"github.com/jesse-kaufman/video-edit/internal/ffmpeg"
)

// ExtractArgs builds the encoder invocation for one subtitle stream.
// ASS sources are copied bit-for-bit into an .ass sidecar; everything
// else is converted to SubRip.
func ExtractArgs(inputPath string, s classify.SubtitleStream, outPath string) []string {
	codec := "srt"
	if s.Codec == "ass" {
		codec = "copy"
	}
	return []string{
		"-hide_banner", "-nostdin", "-y",
		"-loglevel", "error",
		"-i", inputPath,
		"-map", fmt.Sprintf("0:s:%d", s.Index),
		"-c:s", codec,
		outPath,
	}
}

// ExtractAll launches one extraction subprocess per stream. The processes
// run concurrently with no inter-stream ordering: each one has read-only
// access to the input and writes its own uniquely named sidecar. Returns
// the first failure, after all subprocesses have exited.
func ExtractAll(ctx context.Context, log zerolog.Logger, cfg *config.Config, inputPath string, streams []classify.SubtitleStream) error {
	multi := len(streams) > 1

	var wg sync.WaitGroup
	errs := make([]error, len(streams))

	for i, s := range streams {
		outPath := classify.SidecarPath(inputPath, s, multi)
		log.Info().
			Int("stream", s.Index).
			Str("codec", s.Codec).
			Str("out", outPath).
			Msg("extracting subtitle")

		wg.Add(1)
		go func(i int, s classify.SubtitleStream, outPath string) {
			defer wg.Done()
			res := ffmpeg.RunSilent(ctx, cfg.FFmpegPath, ExtractArgs(inputPath, s, outPath))
			if res.Failed() {
				errs[i] = fmt.Errorf("extract subtitle %d: %w: %s", s.Index, res.Err, res.Stderr)
			}
		}(i, s, outPath)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// OCRArgs builds the OCR tool invocation for bitmap subtitles: fixed
// English language, configured worker count, overwrite existing output,
// and language-tagged filenames. The tool writes its own files beside the
// input; nothing here tracks them.
func OCRArgs(cfg *config.Config, inputPath string) []string {
	return []string{
		"--language", "en",
		"--max-workers", strconv.Itoa(cfg.OCRWorkers),
		"--force",
		"--tag",
		inputPath,
	}
}

// RunOCR invokes the OCR tool over the input container's bitmap
// subtitles. Failures are terminal, like any other subprocess failure.
func RunOCR(ctx context.Context, log zerolog.Logger, cfg *config.Config, inputPath string) error {
	log.Info().
		Str("tool", cfg.OCRPath).
		Int("workers", cfg.OCRWorkers).
		Msg("running subtitle OCR")

	res := ffmpeg.RunSilent(ctx, cfg.OCRPath, OCRArgs(cfg, inputPath))
	if res.Failed() {
		return fmt.Errorf("subtitle OCR: %w: %s", res.Err, res.Stderr)
	}
	return nil
}
