package ffmpeg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const progressEmission = `frame=240
fps=48.02
bitrate=1843.2kbits/s
total_size=2301952
out_time_us=10010000
out_time_ms=10010000
out_time=00:00:10.010000
dup_frames=0
speed=2.01x
progress=continue
frame=480
fps=47.50
bitrate=N/A
total_size=4603904
out_time_us=20020000
speed=1.98x
progress=end
`

func TestParseProgress(t *testing.T) {
	var batches []Progress
	last := parseProgress(strings.NewReader(progressEmission), func(p Progress) {
		batches = append(batches, p)
	})

	require.Len(t, batches, 2)

	first := batches[0]
	assert.Equal(t, int64(240), first.Frame)
	assert.InDelta(t, 48.02, first.FPS, 0.001)
	assert.Equal(t, int64(2301952), first.TotalSize)
	assert.Equal(t, int64(10010000), first.OutTimeUs)
	assert.InDelta(t, 2.01, first.Speed, 0.001)
	assert.False(t, first.Done)

	assert.True(t, last.Done)
	assert.Equal(t, int64(480), last.Frame)
	assert.Equal(t, int64(20020000), last.OutTimeUs)
}

func TestParseProgress_NilCallback(t *testing.T) {
	last := parseProgress(strings.NewReader(progressEmission), nil)
	assert.True(t, last.Done)
	assert.Equal(t, int64(480), last.Frame)
}

func TestParseProgress_IgnoresNoise(t *testing.T) {
	in := "garbage line\nfps=notanumber\nspeed=N/A\nprogress=continue\n"
	var got []Progress
	parseProgress(strings.NewReader(in), func(p Progress) { got = append(got, p) })

	require.Len(t, got, 1)
	assert.Zero(t, got[0].FPS)
	assert.Zero(t, got[0].Speed)
}

func TestSpeedRatio(t *testing.T) {
	p := Progress{FPS: 48}
	assert.InDelta(t, 2.0, p.SpeedRatio(24), 0.001)
	assert.Zero(t, p.SpeedRatio(0))
	assert.Zero(t, Progress{}.SpeedRatio(24))
}

func TestStatus(t *testing.T) {
	p := Progress{
		FPS:       47.5,
		TotalSize: 4603904,
		OutTimeUs: 3730_000_000, // 1h02m10s
		Speed:     1.98,
	}

	got := p.Status(23.976)
	assert.Contains(t, got, "fps=47.5")
	assert.Contains(t, got, "size=4.4 MiB")
	assert.Contains(t, got, "time=01:02:10")
	assert.Contains(t, got, "speed=1.98x")
	assert.Contains(t, got, "1.98x source") // 47.5 / 23.976 ≈ 1.98

	// Without a known source rate the ratio is omitted.
	assert.NotContains(t, p.Status(0), "source")
}
