// Command video-edit normalizes a downloaded video file by driving an
// external encoder toolchain: it probes the container, classifies streams,
// decides which to keep/convert/extract, and runs the resulting encoder
// invocations. All media work happens in subprocesses; exit code is 1 on
// any unrecoverable error and 0 otherwise.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jesse-kaufman/video-edit/internal/config"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	app := newApp()
	if err := app.Run(args); err != nil {
		fmt.Fprintf(os.Stderr, "video-edit: %v\n", err)
		return 1
	}
	return 0
}

func newApp() *cli.App {
	return &cli.App{
		Name:            "video-edit",
		Usage:           "normalize downloaded video files via ffmpeg/ffprobe",
		Version:         version + " (" + commit + ")",
		ArgsUsage:       "<input-file>",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "config file `PATH`",
				Value: config.FilePath(),
			},
			&cli.StringFlag{
				Name:  "preset",
				Usage: "x265 `PRESET` override",
			},
			&cli.IntFlag{
				Name:  "crf",
				Usage: "x265 CRF override",
				Value: -1,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "debug output",
			},
		},
		Commands: []*cli.Command{
			command(config.CmdInfo, "probe the file and print a stream report (no side effects)"),
			command(config.CmdClean, "remux: drop non-English streams and strip metadata"),
			command(config.CmdConvertAudio, "clean + convert non-AAC English audio to AAC"),
			command(config.CmdConvertVideo, "clean + convert video to HEVC"),
			command(config.CmdFull, "convert audio and video, extract text subtitles"),
			command(config.CmdForceFull, "full with forced re-encode (medium preset, CRF 26)"),
			command(config.CmdExtractSubs, "extract text subtitles and OCR bitmap subtitles"),
		},
	}
}

// command wires one CLI subcommand to the shared action with its name as
// the profile key.
func command(name, usage string) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<input-file>",
		Action: func(c *cli.Context) error {
			return runCommand(c, name)
		},
	}
}

// loadConfig resolves defaults, the YAML file, and flag overrides.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if err := config.LoadFile(&cfg, c.String("config")); err != nil {
		return cfg, fmt.Errorf("config file: %w", err)
	}
	if p := c.String("preset"); p != "" {
		cfg.Preset = p
	}
	if crf := c.Int("crf"); crf >= 0 {
		cfg.CRF = crf
	}
	cfg.Verbose = c.Bool("verbose")
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
