package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/pkg/locale"
	astroUsecase "github.com/admin/jyotish/vedic-client/internal/usecases/astro"
	"github.com/admin/jyotish/vedic-client/internal/usecases/conversation"
	"github.com/admin/jyotish/vedic-client/internal/usecases/places"
	"github.com/admin/jyotish/vedic-client/internal/usecases/report"
)

// AstroService операции над отчётами, доступные из терминала
type AstroService interface {
	CalculateBirthChart(ctx context.Context, subject domain.BirthSubject) (*domain.ChartResult, error)
	KundliMatching(ctx context.Context, req domain.MatchingRequest) (*domain.MatchingResult, error)
	DailyHoroscope(ctx context.Context, rashi, date string) (*domain.DailyHoroscope, error)
	ExportPDF(ctx context.Context, chartID string) (*astroUsecase.PDFExport, error)
}

// CatalogLoader источник списка городов
type CatalogLoader interface {
	Load(ctx context.Context) ([]string, error)
}

// SessionOpener открывает и восстанавливает сессии чата
type SessionOpener interface {
	Create(ctx context.Context, chartID *string, lang domain.Language) *conversation.Session
	Resume(ctx context.Context, id string, lang domain.Language) (*conversation.Session, error)
}

type Deps struct {
	Astro    AstroService
	Catalog  CatalogLoader
	Sessions SessionOpener
	Switcher *locale.Switcher
}

// NewRootCommand собирает дерево команд vedic
func NewRootCommand(deps Deps) *cobra.Command {
	var lang string

	root := &cobra.Command{
		Use:           "vedic",
		Short:         "Vedic astrology client: birth charts, Kundli matching, daily horoscopes and AI astrologer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if lang != "" && domain.ParseLanguage(lang) != deps.Switcher.Language() {
				deps.Switcher.Toggle()
			}
		},
	}
	root.PersistentFlags().StringVar(&lang, "lang", "", "interface language: en or hi")

	root.AddCommand(
		newPlacesCommand(deps),
		newChartCommand(deps),
		newMatchCommand(deps),
		newHoroscopeCommand(deps),
		newRashisCommand(deps),
		newChatCommand(deps),
	)
	return root
}

func newPlacesCommand(deps Deps) *cobra.Command {
	var pick int

	cmd := &cobra.Command{
		Use:   "places QUERY",
		Short: "Suggest places of birth matching a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := deps.Catalog.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load places: %w", err)
			}

			f := places.NewField(catalog)
			f.Input(args[0])
			suggestions := f.Suggestions()

			if pick == 0 {
				_, err = io.WriteString(cmd.OutOrStdout(), RenderSuggestions(suggestions))
				return err
			}
			if pick < 0 || pick > len(suggestions) {
				return fmt.Errorf("pick %d is out of range, %d suggestions", pick, len(suggestions))
			}

			// выбор подсказки идёт тем же порядком событий, что и клик в поле ввода
			f.PointerDown()
			f.Blur()
			f.Select(suggestions[pick-1])
			_, err = fmt.Fprintln(cmd.OutOrStdout(), f.Value())
			return err
		},
	}
	cmd.Flags().IntVar(&pick, "pick", 0, "print only the N-th suggestion (1-based)")
	return cmd
}

type subjectFlags struct {
	name, gender, dob, tob, place string
}

func (f *subjectFlags) bind(cmd *cobra.Command, suffix, who string) {
	cmd.Flags().StringVar(&f.name, "name"+suffix, "", who+" name")
	cmd.Flags().StringVar(&f.gender, "gender"+suffix, string(domain.GenderMale), who+" gender: Male, Female or Other")
	cmd.Flags().StringVar(&f.dob, "dob"+suffix, "", who+" date of birth, DD-MM-YYYY")
	cmd.Flags().StringVar(&f.tob, "tob"+suffix, "", who+" time of birth, HH:MM")
	cmd.Flags().StringVar(&f.place, "place"+suffix, "", who+" place of birth")
}

func (f *subjectFlags) subject() domain.BirthSubject {
	return domain.BirthSubject{
		Name:         f.name,
		Gender:       domain.Gender(f.gender),
		DateOfBirth:  f.dob,
		TimeOfBirth:  f.tob,
		PlaceOfBirth: f.place,
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newChartCommand(deps Deps) *cobra.Command {
	var (
		subject          subjectFlags
		svgPath, pdfPath string
		asJSON           bool
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Calculate a birth chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			result, err := deps.Astro.CalculateBirthChart(ctx, subject.subject())
			if err != nil {
				return err
			}

			lc := deps.Switcher.Context()
			view := report.BuildChartView(lc, *result)
			out := cmd.OutOrStdout()
			if asJSON {
				err = printJSON(out, view)
			} else {
				_, err = io.WriteString(out, RenderChart(lc, view))
			}
			if err != nil {
				return err
			}

			if svgPath != "" {
				if err := os.WriteFile(svgPath, RenderDiagram(view), 0o644); err != nil {
					return fmt.Errorf("write chart svg: %w", err)
				}
				fmt.Fprintln(out, styleSystem.Render("chart saved to "+svgPath))
			}

			if pdfPath != "" {
				export, err := deps.Astro.ExportPDF(ctx, result.ID)
				if err != nil {
					return err
				}
				target := pdfPath
				if info, statErr := os.Stat(pdfPath); statErr == nil && info.IsDir() {
					target = filepath.Join(pdfPath, export.FileName)
				}
				if err := os.WriteFile(target, export.Data, 0o644); err != nil {
					return fmt.Errorf("write pdf: %w", err)
				}
				fmt.Fprintln(out, styleSystem.Render("report saved to "+target))
				if export.URL != "" {
					fmt.Fprintln(out, styleSystem.Render("archived copy: "+export.URL))
				}
			}
			return nil
		},
	}
	subject.bind(cmd, "", "subject")
	cmd.Flags().StringVar(&svgPath, "svg", "", "write the North Indian chart diagram to this SVG file")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "download the PDF report to this file or directory")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func newMatchCommand(deps Deps) *cobra.Command {
	var (
		person1, person2 subjectFlags
		asJSON           bool
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Calculate Kundli matching (Gun Milan) for two people",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := deps.Astro.KundliMatching(cmd.Context(), domain.MatchingRequest{
				Person1: person1.subject(),
				Person2: person2.subject(),
			})
			if err != nil {
				return err
			}

			lc := deps.Switcher.Context()
			view := report.BuildMatchingView(lc, *result)
			if asJSON {
				return printJSON(cmd.OutOrStdout(), view)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), RenderMatching(lc, view))
			return err
		},
	}
	person1.bind(cmd, "1", "first person")
	person2.bind(cmd, "2", "second person")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func newHoroscopeCommand(deps Deps) *cobra.Command {
	var (
		date   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "horoscope RASHI",
		Short: "Show the daily horoscope for a rashi (name or number 1-12)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rashi := args[0]
			if num, err := strconv.Atoi(strings.TrimSpace(rashi)); err == nil {
				name, _, ok := domain.RashiName(num)
				if !ok {
					return fmt.Errorf("rashi number %d: %w", num, domain.ErrUnknownRashi)
				}
				rashi = name
			}

			result, err := deps.Astro.DailyHoroscope(cmd.Context(), rashi, date)
			if err != nil {
				return err
			}

			view := report.BuildHoroscopeView(deps.Switcher.Context(), *result)
			if asJSON {
				return printJSON(cmd.OutOrStdout(), view)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), RenderHoroscope(view))
			return err
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD, today (UTC) when empty")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the horoscope as JSON")
	return cmd
}

func newRashisCommand(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "rashis",
		Short: "List the twelve rashis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), RenderRashis(deps.Switcher.Context()))
			return err
		},
	}
}

func newChatCommand(deps Deps) *cobra.Command {
	var chartID, sessionID, history string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the AI astrologer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lang := deps.Switcher.Language()

			var session *conversation.Session
			if sessionID != "" {
				var err error
				session, err = deps.Sessions.Resume(ctx, sessionID, lang)
				if err != nil {
					return err
				}
			} else {
				var chart *string
				if id := strings.TrimSpace(chartID); id != "" {
					chart = &id
				}
				session = deps.Sessions.Create(ctx, chart, lang)
			}

			rl, err := newReadline(history, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer rl.Close()

			return NewREPL(session, deps.Switcher, rl, cmd.OutOrStdout()).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&chartID, "chart-id", "", "attach a computed birth chart to the conversation")
	cmd.Flags().StringVar(&sessionID, "session", "", "resume an existing session")
	cmd.Flags().StringVar(&history, "history-file", defaultHistoryFile(), "readline history file")
	return cmd
}
