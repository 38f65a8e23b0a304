package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bookshelf/backend/internal/cache"
	"bookshelf/backend/internal/catalog"
	"bookshelf/backend/internal/config"
	"bookshelf/backend/internal/model"
	"bookshelf/backend/internal/service"
	"bookshelf/backend/internal/service/translator"
)

// CreateRootCommand builds the bookshelfctl command tree. Flag defaults can be
// overridden by a .bookshelf.yaml file or BOOKSHELF_<SECTION>_<KEY> variables.
func CreateRootCommand() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "bookshelfctl",
		Short: "Inspect the book catalog and translation proxy from the shell",
		Long: `bookshelfctl runs the catalog generator and translation pipeline
without the HTTP server.

Examples:
  bookshelfctl catalog --seed demo --page 3 --region de
  bookshelfctl regions
  bookshelfctl translate --source en --target fr "Good morning"`,
		Version:      config.AppVersion,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return InitConfig(v, cfgFile)
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.bookshelf.yaml)")

	rootCmd.AddCommand(newCatalogCommand(v), newRegionsCommand(), newTranslateCommand(v))
	return rootCmd
}

// InitConfig reads cfgFile, or ./.bookshelf.yaml when cfgFile is empty.
// A missing default file is not an error.
func InitConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(".bookshelf")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("BOOKSHELF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func newCatalogCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print generated book pages as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := service.CatalogQuery{
				Seed:    v.GetString("catalog.seed"),
				Page:    v.GetInt("catalog.page"),
				Region:  v.GetString("catalog.region"),
				Likes:   v.GetFloat64("catalog.likes"),
				Reviews: v.GetFloat64("catalog.reviews"),
			}.Normalize()
			pages := max(v.GetInt("catalog.pages"), 1)

			svc := service.NewCatalogService()
			books := make([]model.BookRecord, 0, pages*catalog.PageSize)
			for i := 0; i < pages; i++ {
				page := q
				page.Page = q.Page + i
				batch, err := svc.Page(cmd.Context(), page)
				if err != nil {
					return err
				}
				books = append(books, batch...)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(books)
		},
	}

	f := cmd.Flags()
	f.String("seed", service.DefaultSeed, "Seed string")
	f.Int("page", 1, "First page (1-based)")
	f.Int("pages", 1, "Number of consecutive pages")
	f.String("region", catalog.DefaultRegion, "Region code")
	f.Float64("likes", 0, "Average likes per book")
	f.Float64("reviews", 0, "Average reviews per book")
	for _, name := range []string{"seed", "page", "pages", "region", "likes", "reviews"} {
		_ = v.BindPFlag("catalog."+name, f.Lookup(name))
	}
	return cmd
}

func newRegionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List supported catalog regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, r := range service.NewCatalogService().Regions() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", r.Code, r.Name)
			}
			return nil
		},
	}
}

// newTranslateCommand translates its arguments through the configured upstream,
// one output line per argument.
func newTranslateCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate [text...]",
		Short: "Translate texts through the configured provider",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			provider, err := translator.FromConfig(cfg.Translate)
			if err != nil {
				return err
			}

			svc := service.NewTranslationService(
				cache.NewMemoryCache(cfg.Cache.TTL),
				provider,
				translator.NewRateLimiter(cfg.Translate.QPS),
				cfg.Translate.Concurrency,
			)
			res, err := svc.Translate(cmd.Context(), model.TranslationBatch{
				Texts:  args,
				Source: v.GetString("translate.source"),
				Target: v.GetString("translate.target"),
			})
			if err != nil {
				return err
			}
			for _, text := range res.Texts {
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.String("source", "en", "Source language")
	f.String("target", "", "Target language")
	for _, name := range []string{"source", "target"} {
		_ = v.BindPFlag("translate."+name, f.Lookup(name))
	}
	return cmd
}
