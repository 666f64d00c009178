package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/olivierh59500/generative-gallery/internal/gallery"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	slugStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the artworks in the gallery",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printCatalog(cmd.OutOrStdout(), gallery.DefaultCatalog())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func printCatalog(w io.Writer, c gallery.Catalog) {
	if len(c) == 0 {
		fmt.Fprintln(w, "No artworks")
		return
	}
	for _, e := range c {
		fmt.Fprintf(w, "%s %s\n    %s\n", titleStyle.Render(e.Title), slugStyle.Render("("+e.Slug+")"), e.Description)
	}
}
