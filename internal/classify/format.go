package classify

import (
	"regexp"
	"strings"
	"unicode"
)

// ac3LongName is the verbose name ffprobe reports for the ATSC A/52B
// codec; it gets a short label instead of the generic cleanup.
const ac3LongName = "ATSC A/52B (AC-3, E-AC-3)"

// parenthetical matches one parenthesized qualifier including any leading
// whitespace, e.g. the " (Advanced Audio Coding)" in
// "AAC (Advanced Audio Coding)".
var parenthetical = regexp.MustCompile(`\s*\([^()]*\)`)

// CleanCodecName formats an ffprobe codec_long_name for display: the ATSC
// A/52B long name maps to "AC3", every other name has exactly one
// parenthetical qualifier removed and surrounding whitespace trimmed.
func CleanCodecName(longName string) string {
	name := strings.TrimSpace(longName)
	if name == ac3LongName {
		return "AC3"
	}
	if loc := parenthetical.FindStringIndex(name); loc != nil {
		name = name[:loc[0]] + name[loc[1]:]
	}
	return strings.TrimSpace(name)
}

// surroundLabels maps cleaned channel-layout strings (and bare channel
// counts, which some containers report instead) to their display names.
var surroundLabels = map[string]string{
	"5.1": "5.1 Surround",
	"6":   "5.1 Surround",
	"7.1": "7.1 Surround",
	"8":   "7.1 Surround",
	"5.0": "5.0 Surround",
	"5":   "5.0 Surround",
}

// FormatChannelLayout turns a raw ffprobe channel_layout into a display
// label: parenthesized qualifiers ("5.1(side)") are stripped, surround
// layouts get their named label, and anything else is returned with only
// the first letter capitalized.
func FormatChannelLayout(raw string) string {
	layout := strings.TrimSpace(parenthetical.ReplaceAllString(raw, ""))
	if label, ok := surroundLabels[layout]; ok {
		return label
	}
	return capitalizeFirst(layout)
}

// DeriveAudioTitle produces the output title for an audio stream. A
// non-first stream keeps its source title verbatim when it has one;
// otherwise the channel-layout label is used, marked " - Default" on the
// first stream. Later streams get a single trailing space because the
// encoder's metadata parser rejects empty title values.
func DeriveAudioTitle(index int, sourceTitle, layoutLabel string) string {
	if index > 0 && sourceTitle != "" {
		return sourceTitle
	}
	if index == 0 {
		return layoutLabel + " - Default"
	}
	return layoutLabel + " "
}

func capitalizeFirst(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
