package subs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jesse-kaufman/video-edit/internal/classify"
	"github.com/jesse-kaufman/video-edit/internal/config"
)

func TestExtractArgs(t *testing.T) {
	srt := classify.SubtitleStream{Index: 1, Codec: "subrip", Language: "eng", TextBased: true}
	args := ExtractArgs("/media/in.mkv", srt, "/media/in.1.eng.srt")

	assert.Contains(t, args, "-i")
	assert.Equal(t, "/media/in.1.eng.srt", args[len(args)-1])
	assert.Subset(t, args, []string{"-map", "0:s:1", "-c:s", "srt"})
}

func TestExtractArgs_AssCopied(t *testing.T) {
	ass := classify.SubtitleStream{Index: 0, Codec: "ass", Language: "eng", TextBased: true}
	args := ExtractArgs("/media/in.mkv", ass, "/media/in.eng.ass")

	assert.Subset(t, args, []string{"-c:s", "copy"})
	assert.NotContains(t, args, "srt")
}

func TestOCRArgs(t *testing.T) {
	cfg := config.Default()
	cfg.OCRWorkers = 4

	args := OCRArgs(&cfg, "/media/in.mkv")

	assert.Equal(t, "/media/in.mkv", args[len(args)-1])
	assert.Subset(t, args, []string{"--language", "en", "--max-workers", "4", "--force", "--tag"})
}
