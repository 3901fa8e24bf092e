package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	`              _                        _`,
	`   __ _ _   _| |_ ___  _ __ ___   __ _| |_ __ _`,
	`  / _' | | | | __/ _ \| '_ ' _ \ / _' | __/ _' |`,
	` | (_| | |_| | || (_) | | | | | | (_| | || (_| |`,
	`  \__,_|\__,_|\__\___/|_| |_| |_|\__,_|\__\__,_|`,
}

// Indigo to rose, one color per line.
var bannerColors = []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6"}

// PrintBanner writes the ASCII art banner followed by the version.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)

	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, out.String(line).Foreground(out.Color(bannerColors[i])))
	}
	if v := strings.TrimSpace(version); v != "" {
		fmt.Fprintln(w, out.String("  v"+v).Faint())
	}
	fmt.Fprintln(w)
}
