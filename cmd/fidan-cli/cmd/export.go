package cmd

import (
	"fmt"
	"os"

	"github.com/sifiratik/fidan/internal/accordion"
	"github.com/sifiratik/fidan/internal/config"
	"github.com/sifiratik/fidan/internal/donation"
	"github.com/sifiratik/fidan/internal/export"
	"github.com/sifiratik/fidan/internal/handlers"
	"github.com/sifiratik/fidan/internal/rendering"
	"github.com/sifiratik/fidan/internal/storage"
	"github.com/sifiratik/fidan/web"
	"github.com/sifiratik/fidan/web/src/templates/pages"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	exportOut     string
	exportLocale  string
	exportHTMXSrc string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the initial page and assets to a directory",
	Long: `Write index.html in its freshly mounted state (first question open,
default donation amount) and copy the static assets under static/.
The FAQ is rendered as native disclosure elements so it opens and closes
on any file server. The donation and newsletter forms still post to the
app's routes.

Examples:
  fidan-cli export --out dist
  fidan-cli export --out dist --content site.yaml --htmx ""`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadContent()
		if err != nil {
			return err
		}
		site := store.Current().Site

		home := handlers.NewHomeHandler(handlers.HomeDependencies{
			Content: store,
			Locale:  exportLocale,
			HTMXSrc: exportHTMXSrc,
		})
		props := home.Props(site, accordion.Initial(), nil, donation.Clamp(site.Hero.DefaultAmount))
		props.Static = true

		dst := storage.NewAferoStore(afero.NewBasePathFs(appFs, exportOut))
		x := export.New(rendering.NewUniversalRenderer(), dst)
		manifest, err := x.Export(cmd.Context(), pages.Home(props), web.Static())
		if err != nil {
			return err
		}

		for _, f := range manifest.Files {
			fmt.Fprintf(cmd.OutOrStdout(), "%8d  %s\n", f.Size, f.Path)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d files, %d bytes written to %s\n", len(manifest.Files), manifest.Total(), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "Output directory")
	exportCmd.Flags().StringVar(&exportLocale, "locale", envOr("SITE_LOCALE", "tr"), "Page locale")
	exportCmd.Flags().StringVar(&exportHTMXSrc, "htmx", envOr("HTMX_SRC", config.DefaultHTMXSrc), "htmx script URL, empty to omit")
	rootCmd.AddCommand(exportCmd)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
