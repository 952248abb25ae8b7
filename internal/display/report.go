package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/jesse-kaufman/video-edit/internal/classify"
	"github.com/jesse-kaufman/video-edit/internal/probe"
)

// Styles for report rendering. color respects NO_COLOR and non-TTY
// output on its own, so plain pipes get plain text.
var (
	headingStyle = color.New(color.Bold, color.FgCyan)
	valueStyle   = color.New(color.Bold)
	flagStyle    = color.New(color.FgYellow)
)

// PrintReport writes a table-like listing of the container and its
// classified streams. Streams that will need attention are flagged:
// non-English language tags, audio not yet in the target codec, and
// text-based subtitles that get extracted rather than muxed.
func PrintReport(w io.Writer, heading string, f *probe.Format, st *classify.Streams) {
	headingStyle.Fprintf(w, "=== %s ===\n", heading)

	fmt.Fprint(w, "Container: ")
	valueStyle.Fprint(w, f.FormatLongName)
	fmt.Fprint(w, " | ")
	valueStyle.Fprintln(w, FormatBytes(f.SizeBytes()))

	for _, v := range st.Video {
		fmt.Fprintf(w, "  Video %d: %s | %dx%d", v.Index, v.CodecLabel, v.Width, v.Height)
		if v.FrameRate > 0 {
			fmt.Fprintf(w, " | %.2f fps", v.FrameRate)
		}
		printLang(w, v.Language)
		printTitle(w, v.Title)
		fmt.Fprintln(w)
	}

	for _, a := range st.Audio {
		fmt.Fprintf(w, "  Audio %d: %s | %s", a.Index, a.CodecLabel, a.Layout)
		printLang(w, a.Language)
		printTitle(w, a.Title)
		if a.Codec != "aac" {
			flagStyle.Fprintf(w, " [!%s]", a.CodecLabel)
		}
		fmt.Fprintln(w)
	}

	for _, s := range st.Subtitle {
		kind := "image"
		if s.TextBased {
			kind = "text"
		}
		fmt.Fprintf(w, "  Subtitle %d: %s (%s)", s.Index, s.CodecLabel, kind)
		printLang(w, s.Language)
		printTitle(w, s.Title)
		if s.TextBased {
			flagStyle.Fprint(w, " [extract]")
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
}

func printLang(w io.Writer, lang string) {
	if classify.IsEnglish(lang) {
		if lang == "" {
			lang = "und"
		}
		fmt.Fprintf(w, " | %s", lang)
		return
	}
	fmt.Fprint(w, " | ")
	flagStyle.Fprintf(w, "%s [!lang]", lang)
}

func printTitle(w io.Writer, title string) {
	if title != "" {
		fmt.Fprintf(w, " | %q", title)
	}
}
