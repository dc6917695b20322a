package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"maestro/internal/library"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	artistStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	discStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the album with resolved metadata and file status",
		RunE: func(cmd *cobra.Command, args []string) error {
			album, err := ctx.loadAlbum()
			if err != nil {
				return err
			}
			cmd.Print(renderAlbum(album))
			return nil
		},
	}
}

func renderAlbum(album *library.Album) string {
	var b strings.Builder

	header := titleStyle.Render(album.Title().Value())
	if album.Title().HasOverriddenASCII() {
		header += dimStyle.Render(fmt.Sprintf(" (%s)", album.Title().ASCII()))
	}
	b.WriteString(header + "\n")
	b.WriteString(artistStyle.Render(album.Artist().Value()))
	if detail := albumDetail(album); detail != "" {
		b.WriteString(dimStyle.Render("  " + detail))
	}
	b.WriteString("\n")

	for _, disc := range album.Discs() {
		if !disc.IsOnlyDisc() {
			b.WriteString("\n" + discStyle.Render(disc.Folder()) + "\n")
		} else {
			b.WriteString("\n")
		}
		for _, track := range disc.Tracks() {
			b.WriteString(renderTrack(track) + "\n")
		}
	}

	return b.String()
}

func albumDetail(album *library.Album) string {
	var parts []string
	if year := album.Year(); year != nil {
		parts = append(parts, fmt.Sprintf("%d", *year))
	}
	if genre := album.Genre(); genre != nil {
		parts = append(parts, genre.Value())
	}
	return strings.Join(parts, ", ")
}

func renderTrack(track *library.Track) string {
	line := fmt.Sprintf("  %2d  %s", track.Number(), track.Title().Value())

	var notes []string
	if track.AlbumArtists() != nil {
		notes = append(notes, "by "+track.Artist().Value())
	}
	if track.Filename() != track.CanonicalFilename() {
		notes = append(notes, "at "+track.Filename())
	}
	if len(notes) > 0 {
		line += dimStyle.Render(" [" + strings.Join(notes, "; ") + "]")
	}
	if !track.Exists() {
		line += missingStyle.Render(" missing")
	}
	return line
}
