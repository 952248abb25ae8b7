package config

import "fmt"

// ConversionOptions is the explicit switch set one command invocation runs
// under. It replaces the legacy free-form option bag: every recognized
// switch is enumerated here with a documented default, and nothing is
// persisted between runs.
type ConversionOptions struct {
	ConvertAudio bool // Re-encode non-AAC English audio to AAC.
	ConvertVideo bool // Re-encode non-HEVC video to HEVC.
	ForceConvert bool // Re-encode even when the codec already matches.
	ExtractSubs  bool // Extract English text subtitles to sidecar files.
	ExtractOnly  bool // Skip the transcode entirely (extract-subs command).
	Preset       string
	CRF          int
}

// Command names accepted on the CLI. Each maps to exactly one profile.
const (
	CmdInfo         = "info"
	CmdClean        = "clean"
	CmdConvertAudio = "convert-audio"
	CmdConvertVideo = "convert-video"
	CmdFull         = "full"
	CmdForceFull    = "force-full"
	CmdExtractSubs  = "extract-subs"
)

// Force-full is a first-class named profile rather than a flag pile:
// a faster preset and a higher CRF, since a forced re-encode of an
// already-compliant source only needs a space win, not a quality win.
const (
	forcePreset = "medium"
	forceCRF    = 26
)

// ProfileFor returns the ConversionOptions for a command name, seeded with
// the config's preset and CRF. Unknown commands return an error so the CLI
// layer can turn it into a usage failure.
func ProfileFor(command string, cfg *Config) (ConversionOptions, error) {
	opts := ConversionOptions{
		Preset: cfg.Preset,
		CRF:    cfg.CRF,
	}

	switch command {
	case CmdInfo, CmdClean:
		// Probe/report and remux-only respectively; all switches off.
	case CmdConvertAudio:
		opts.ConvertAudio = true
	case CmdConvertVideo:
		opts.ConvertVideo = true
	case CmdFull:
		opts.ConvertAudio = true
		opts.ConvertVideo = true
		opts.ExtractSubs = true
	case CmdForceFull:
		opts.ConvertAudio = true
		opts.ConvertVideo = true
		opts.ExtractSubs = true
		opts.ForceConvert = true
		opts.Preset = forcePreset
		opts.CRF = forceCRF
	case CmdExtractSubs:
		opts.ExtractSubs = true
		opts.ExtractOnly = true
	default:
		return ConversionOptions{}, fmt.Errorf("unknown command %q", command)
	}
	return opts, nil
}
