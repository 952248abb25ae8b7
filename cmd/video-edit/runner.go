package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/jesse-kaufman/video-edit/internal/check"
	"github.com/jesse-kaufman/video-edit/internal/classify"
	"github.com/jesse-kaufman/video-edit/internal/config"
	"github.com/jesse-kaufman/video-edit/internal/display"
	"github.com/jesse-kaufman/video-edit/internal/ffmpeg"
	"github.com/jesse-kaufman/video-edit/internal/logging"
	"github.com/jesse-kaufman/video-edit/internal/policy"
	"github.com/jesse-kaufman/video-edit/internal/probe"
	"github.com/jesse-kaufman/video-edit/internal/subs"
)

// runCommand is the shared action behind every subcommand:
// validate → check tools → probe → classify → report → plan → execute.
func runCommand(c *cli.Context, command string) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log := logging.New(cfg.Verbose)

	input := c.Args().First()
	if input == "" {
		return fmt.Errorf("%s: missing required <input-file> argument", command)
	}
	if c.Args().Len() > 1 {
		return fmt.Errorf("%s: expected exactly one input file", command)
	}
	if _, err := os.Stat(input); err != nil {
		return fmt.Errorf("input file not found: %s", input)
	}

	opts, err := config.ProfileFor(command, &cfg)
	if err != nil {
		return err
	}

	// Fail fast on missing tools; the OCR binary is only required when
	// this command can reach the OCR stage.
	if err := check.Tools(&cfg, opts.ExtractOnly); err != nil {
		return err
	}

	// Cancel in-flight subprocesses on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pr, err := probe.Probe(ctx, cfg.FFprobePath, input)
	if err != nil {
		return err
	}
	st := classify.Classify(pr)
	display.PrintReport(os.Stdout, input, &pr.Format, st)

	if command == config.CmdInfo {
		return nil
	}
	if opts.ExtractOnly {
		return runExtract(ctx, log, &cfg, st, opts, input, command)
	}
	return runTranscode(ctx, log, &cfg, st, opts, input, command)
}

// runExtract handles the extract-subs command: text subtitles to sidecar
// files, bitmap subtitles through the OCR tool. Nothing is transcoded.
func runExtract(ctx context.Context, log zerolog.Logger, cfg *config.Config, st *classify.Streams, opts config.ConversionOptions, input, command string) error {
	plan, err := policy.Build(st, opts, input, command, false)
	if err != nil {
		return err
	}

	if len(plan.Extract) == 0 && len(plan.OCR) == 0 {
		log.Warn().Msg("no English subtitle streams to extract, skipping")
		return nil
	}

	if len(plan.Extract) > 0 {
		if err := subs.ExtractAll(ctx, log, cfg, input, plan.Extract); err != nil {
			return err
		}
	} else {
		log.Warn().Msg("no English text subtitles to extract")
	}

	if len(plan.OCR) > 0 {
		if err := subs.RunOCR(ctx, log, cfg, input); err != nil {
			return err
		}
	}

	log.Info().Msg("subtitle extraction finished")
	return nil
}

// runTranscode handles every transcoding command: build the plan, run the
// primary encoder invocation with live progress, extract text subtitles,
// and print the after report.
func runTranscode(ctx context.Context, log zerolog.Logger, cfg *config.Config, st *classify.Streams, opts config.ConversionOptions, input, command string) error {
	fdk := false
	if opts.ConvertAudio {
		fdk = check.HasLibFdk(cfg.FFmpegPath)
		log.Debug().Bool("libfdk_aac", fdk).Msg("AAC encoder selection")
	}

	plan, err := policy.Build(st, opts, input, command, fdk)
	if err != nil {
		return err
	}

	log.Info().
		Str("out", plan.OutputPath).
		Bool("convert_video", plan.ConvertingVideo).
		Bool("convert_audio", plan.ConvertingAudio).
		Int("audio_streams", len(plan.Audio)).
		Int("muxed_subtitles", len(plan.Subtitle)).
		Msg("starting transcode")
	log.Debug().Strs("args", plan.Args).Msg("encoder invocation")

	// Text subtitle extraction runs alongside the transcode: independent
	// subprocesses with read-only access to the input.
	extractErr := make(chan error, 1)
	go func() {
		if len(plan.Extract) == 0 {
			if opts.ExtractSubs {
				log.Warn().Msg("no English text subtitles to extract, skipping")
			}
			extractErr <- nil
			return
		}
		extractErr <- subs.ExtractAll(ctx, log, cfg, input, plan.Extract)
	}()

	res := ffmpeg.Run(ctx, cfg.FFmpegPath, plan.Args, func(p ffmpeg.Progress) {
		fmt.Fprintf(os.Stderr, "\r%s\033[K", p.Status(plan.SourceFPS))
	})
	fmt.Fprintln(os.Stderr)

	if res.Failed() {
		os.Remove(plan.OutputPath)
		return fmt.Errorf("transcode failed: %w\n%s", res.Err, res.Stderr)
	}
	if err := <-extractErr; err != nil {
		return err
	}

	log.Info().
		Str("size", display.FormatBytes(res.Progress.TotalSize)).
		Float64("speed", res.Progress.Speed).
		Msg("transcode finished")

	// After report: probe the file we just wrote.
	out, err := probe.Probe(ctx, cfg.FFprobePath, plan.OutputPath)
	if err != nil {
		return fmt.Errorf("probe output: %w", err)
	}
	display.PrintReport(os.Stdout, plan.OutputPath, &out.Format, classify.Classify(out))
	return nil
}
