// Package check validates the external toolchain before any work starts:
// prober and encoder must exist, and the available AAC encoders decide
// which one the policy layer selects.
package check

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/jesse-kaufman/video-edit/internal/config"
)

// Sentinel errors for missing external tools.
var (
	ErrFFmpegNotFound  = errors.New("ffmpeg not found")
	ErrFFprobeNotFound = errors.New("ffprobe not found")
	ErrOCRNotFound     = errors.New("subtitle OCR tool not found")
)

// Tools verifies that the prober and encoder binaries resolve. The OCR
// tool is only required when the invoked command can reach the OCR stage.
func Tools(cfg *config.Config, needOCR bool) error {
	if _, err := exec.LookPath(cfg.FFmpegPath); err != nil {
		return ErrFFmpegNotFound
	}
	if _, err := exec.LookPath(cfg.FFprobePath); err != nil {
		return ErrFFprobeNotFound
	}
	if needOCR {
		if _, err := exec.LookPath(cfg.OCRPath); err != nil {
			return ErrOCRNotFound
		}
	}
	return nil
}

// HasLibFdk reports whether the local encoder build carries libfdk_aac,
// scanning the -encoders listing. Any failure to list encoders is
// treated as "not available" so the native AAC encoder is used.
func HasLibFdk(ffmpegBin string) bool {
	out, err := exec.Command(ffmpegBin, "-hide_banner", "-encoders").Output()
	if err != nil {
		return false
	}
	return ParseEncoderList(string(out), "libfdk_aac")
}

// ParseEncoderList reports whether name appears as an encoder entry in
// the -encoders output. Exported for testing without a real binary.
func ParseEncoderList(listing, name string) bool {
	for _, line := range strings.Split(listing, "\n") {
		fields := strings.Fields(line)
		// Encoder lines look like " A....D aac  AAC (Advanced Audio Coding)".
		if len(fields) >= 2 && fields[1] == name {
			return true
		}
	}
	return false
}
