package classify

import (
	"path/filepath"
	"strconv"
	"strings"
)

// textSubtitleCodecs is the fixed set of codec names that can be converted
// to a text subtitle file. Everything else (hdmv_pgs_subtitle,
// dvd_subtitle, ...) is image-based and must be copied or OCR'd.
var textSubtitleCodecs = map[string]bool{
	"mov_text": true,
	"subrip":   true,
	"ass":      true,
	"ssa":      true,
}

// SidecarPath returns the output path for an extracted text subtitle,
// written beside the input file:
//
//	<base>[.<label>].<lang>.<ext>
//
// The disambiguating label is only inserted when more than one stream of
// the class is being extracted: the stream title when present, "default"
// for the first stream, else the numeric index. The extension is "ass"
// when the source codec is ass, otherwise "srt".
func SidecarPath(inputPath string, s SubtitleStream, multi bool) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	parts := []string{base}
	if multi {
		parts = append(parts, sidecarLabel(s))
	}
	parts = append(parts, sidecarLang(s), sidecarExt(s))

	return filepath.Join(filepath.Dir(inputPath), strings.Join(parts, "."))
}

func sidecarLabel(s SubtitleStream) string {
	if s.Title != "" {
		return s.Title
	}
	if s.Index == 0 {
		return "default"
	}
	return strconv.Itoa(s.Index)
}

func sidecarLang(s SubtitleStream) string {
	if s.Language == "" {
		return "eng"
	}
	return s.Language
}

func sidecarExt(s SubtitleStream) string {
	if s.Codec == "ass" {
		return "ass"
	}
	return "srt"
}
