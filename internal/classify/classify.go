// Package classify turns raw ffprobe stream records into typed
// audio/video/subtitle descriptors, applying the naming and formatting
// heuristics the rest of the pipeline relies on. Classification is pure:
// descriptors are built once per invocation and never mutated afterward.
package classify

import (
	"github.com/jesse-kaufman/video-edit/internal/probe"
)

// Classify builds the typed stream lists from a probe result. Streams of
// unknown codec_type (data, attachments) are ignored; the policy layer
// never maps them.
func Classify(pr *probe.Result) *Streams {
	st := &Streams{}

	for i := range pr.Streams {
		s := &pr.Streams[i]
		switch s.CodecType {
		case "video":
			st.Video = append(st.Video, newVideo(s, len(st.Video)))
		case "audio":
			st.Audio = append(st.Audio, newAudio(s, len(st.Audio)))
		case "subtitle":
			st.Subtitle = append(st.Subtitle, newSubtitle(s, len(st.Subtitle)))
		}
	}
	return st
}

func newVideo(s *probe.Stream, index int) VideoStream {
	return VideoStream{
		Index:      index,
		Language:   s.Language(),
		Codec:      s.CodecName,
		CodecLabel: CleanCodecName(s.CodecLongName),
		Width:      s.Width,
		Height:     s.Height,
		FrameRate:  probe.ParseFrameRate(s.RFrameRate),
		Title:      s.Title(),
	}
}

func newAudio(s *probe.Stream, index int) AudioStream {
	layout := FormatChannelLayout(s.ChannelLayout)
	return AudioStream{
		Index:       index,
		Language:    s.Language(),
		Codec:       s.CodecName,
		CodecLabel:  CleanCodecName(s.CodecLongName),
		Channels:    s.Channels,
		Layout:      layout,
		Title:       DeriveAudioTitle(index, s.Title(), layout),
		SourceTitle: s.Title(),
	}
}

func newSubtitle(s *probe.Stream, index int) SubtitleStream {
	return SubtitleStream{
		Index:      index,
		Language:   s.Language(),
		Codec:      s.CodecName,
		CodecLabel: CleanCodecName(s.CodecLongName),
		Title:      s.Title(),
		TextBased:  textSubtitleCodecs[s.CodecName],
	}
}
