package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"cattalk-v0/internal/bench"
	"cattalk-v0/internal/benchstore"
	"cattalk-v0/internal/config"
	"cattalk-v0/internal/export"
	"cattalk-v0/internal/ollama"
	"cattalk-v0/internal/pet"
	"cattalk-v0/internal/plan"
	"cattalk-v0/internal/prompt"
	"cattalk-v0/internal/score"
	"cattalk-v0/internal/ui"
)

const Version = "v0.2.0"

var cfg config.Config

func main() {
	rootCmd := &cobra.Command{
		Use:   "catdev",
		Short: "cattalk - behavior planner and response scoring tools",
		Run: func(cmd *cobra.Command, args []string) {
			if version, _ := cmd.Flags().GetBool("version"); version {
				fmt.Println(Version)
				return
			}
			cmd.Help()
		},
	}
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(serveCmd)

	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var (
	stateFlags struct {
		hunger, energy, stress, fun, affection, trust float64
		ageDays, hour                                 int
		last                                          string
	}
)

func flagState() pet.State {
	return pet.State{
		Hunger:    stateFlags.hunger,
		Energy:    stateFlags.energy,
		Stress:    stateFlags.stress,
		Fun:       stateFlags.fun,
		Affection: stateFlags.affection,
		Trust:     stateFlags.trust,
		AgeDays:   stateFlags.ageDays,
	}.Clamped()
}

func addStateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&stateFlags.hunger, "hunger", 50, "Hunger drive 0..100")
	f.Float64Var(&stateFlags.energy, "energy", 50, "Energy drive 0..100")
	f.Float64Var(&stateFlags.stress, "stress", 20, "Stress drive 0..100")
	f.Float64Var(&stateFlags.fun, "fun", 50, "Fun drive 0..100")
	f.Float64Var(&stateFlags.affection, "affection", 50, "Affection drive 0..100")
	f.Float64Var(&stateFlags.trust, "trust", 50, "Trust drive 0..100")
	f.IntVar(&stateFlags.ageDays, "age-days", 200, "Age in days")
	f.IntVar(&stateFlags.hour, "hour", 12, "Hour of day 0..23")
	f.StringVar(&stateFlags.last, "last", "none", "Last interaction: none|pet|play|talk|feed")
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Run the behavior planner for a state and print the plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := flagState()
		p := plan.Plan(st, stateFlags.hour, stateFlags.last)
		ctl := score.BuildControl(st, stateFlags.hour, stateFlags.last, p)

		showPrompt, _ := cmd.Flags().GetBool("prompt")
		if showPrompt {
			name := cfg.CatName
			if name == "" {
				name = prompt.DefaultCatName
			}
			fmt.Println(prompt.Build(name, ctl, p, ""))
			return nil
		}
		return printJSON(struct {
			Plan    plan.BehaviorPlan `json:"plan"`
			Control score.Control     `json:"control"`
		}{p, ctl})
	},
}

func init() {
	addStateFlags(planCmd)
	planCmd.Flags().Bool("prompt", false, "Print the rendered prompt instead of the plan")
}

var scoreCmd = &cobra.Command{
	Use:   "score [response]",
	Short: "Grade a response against the planned behavior",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userText, _ := cmd.Flags().GetString("user-text")
		c := bench.Case{
			Key:      "adhoc",
			UserText: userText,
			Hour:     stateFlags.hour,
			AgeDays:  stateFlags.ageDays,
			LastType: stateFlags.last,
			Hunger:   stateFlags.hunger,
			Energy:   stateFlags.energy,
			Stress:   stateFlags.stress,
			Fun:      stateFlags.fun,
			Affect:   stateFlags.affection,
			Trust:    stateFlags.trust,
		}
		return printJSON(bench.ScoreResponse(c, args[0]))
	},
}

func init() {
	addStateFlags(scoreCmd)
	scoreCmd.Flags().String("user-text", "", "User line the response answers")
}

var tagsCmd = &cobra.Command{
	Use:   "tags [tag...]",
	Short: "Show the keyword families behind response tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			st := flagState()
			p := plan.Plan(st, stateFlags.hour, stateFlags.last)
			fmt.Println("tags:     ", p.Tags)
			fmt.Println("required: ", p.RequiredTags)
			fmt.Println("forbidden:", p.ForbiddenTags)
			return nil
		}
		for _, tag := range args {
			syn := score.TagSynonyms(tag)
			if len(syn) == 0 {
				fmt.Printf("%s: (no keyword family, matched verbatim)\n", tag)
				continue
			}
			fmt.Printf("%s: %v\n", tag, syn)
		}
		return nil
	},
}

func init() {
	addStateFlags(tagsCmd)
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run and export model benchmarks",
}

var benchRunCmd = &cobra.Command{
	Use:   "run [suite.toml]",
	Short: "Run a benchmark suite against the model server",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		suitePath := cfg.SuitePath
		if len(args) == 1 {
			suitePath = args[0]
		}
		suite, err := bench.LoadSuite(suitePath)
		if err != nil {
			return err
		}
		if suite.CatName == "" {
			suite.CatName = cfg.CatName
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		client := ollama.New(cfg.OllamaURL)
		if err := client.Ping(ctx); err != nil {
			return fmt.Errorf("model server at %s: %w", cfg.OllamaURL, err)
		}
		if missing, err := client.MissingModels(ctx, suite.Models); err != nil {
			return err
		} else if len(missing) > 0 {
			return fmt.Errorf("models not installed: %v", missing)
		}

		db, err := benchstore.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		runID, err := db.BeginRun(suite.Name, suite.Models)
		if err != nil {
			return err
		}

		runner := bench.NewRunner(client, cfg.Workers, cfg.RequestRPS)
		runner.Store = db.Writer(runID)

		log.Printf("bench: run %d, %d models x %d cases", runID, len(suite.Models), len(suite.Cases))
		rows, err := runner.Run(ctx, suite)
		if err != nil {
			return err
		}
		fmt.Print(bench.Report(suite.Name, rows))
		return nil
	},
}

var benchExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a stored benchmark run as JSON and CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := benchstore.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		runID, _ := cmd.Flags().GetInt64("run")
		if runID == 0 {
			runID, err = db.LatestRunID()
			if err != nil {
				return err
			}
		}
		rows, err := db.RowsForRun(runID)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return fmt.Errorf("run %d has no rows", runID)
		}

		if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
			return err
		}
		d := export.Build(fmt.Sprintf("run-%d", runID), modelsOf(rows), rows)
		jsonPath, csvPath := export.Paths(cfg.ExportDir, d.RunInfo.Timestamp)
		if err := export.WriteJSON(jsonPath, d); err != nil {
			return err
		}
		if err := export.WriteCSV(csvPath, d); err != nil {
			return err
		}
		fmt.Println(jsonPath)
		fmt.Println(csvPath)
		return nil
	},
}

func init() {
	benchExportCmd.Flags().Int64("run", 0, "Run ID to export (default: latest)")
	benchCmd.AddCommand(benchRunCmd)
	benchCmd.AddCommand(benchExportCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the local plan/score debug UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := ui.New(cfg.ListenAddr, cfg.CatName)
		if db, err := benchstore.Open(cfg.DBPath); err == nil {
			defer db.Close()
			srv.LatestRows = func() ([]bench.Row, error) {
				id, err := db.LatestRunID()
				if err != nil {
					return nil, err
				}
				return db.RowsForRun(id)
			}
			srv.Status = func() (any, error) {
				id, err := db.LatestRunID()
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"version":   Version,
					"db":        cfg.DBPath,
					"latestRun": id,
				}, nil
			}
		} else {
			log.Printf("store %s unavailable: %v", cfg.DBPath, err)
		}

		log.Printf("serving on %s", cfg.ListenAddr)
		if err := srv.Run(ctx); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func modelsOf(rows []bench.Row) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range rows {
		if !seen[r.Model] {
			seen[r.Model] = true
			out = append(out, r.Model)
		}
	}
	sort.Strings(out)
	return out
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
