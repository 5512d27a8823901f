// Command lexema-archive analyzes a corpus and saves the run to a
// SQLite archive, or lists previously archived runs when no input
// directory is given.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/tundralab/lexema/pkg/lexema"
	"github.com/tundralab/lexema/pkg/lexema/config"
	"github.com/tundralab/lexema/pkg/lexema/report"
	"github.com/tundralab/lexema/pkg/lexema/store"
	"github.com/tundralab/lexema/pkg/lexema/store/sqlite"
)

func main() {
	var (
		db        = flag.String("db", "", "Path to SQLite archive database (required)")
		input     = flag.String("input", "", "Directory of corpus documents; omit to list archived runs")
		label     = flag.String("label", "", "Optional label for the archived run")
		stoplist  = flag.String("stoplist", "", "Optional stoplist YAML replacing the built-in stopwords")
		pipeline  = flag.String("pipeline", "", "Optional pipeline YAML tuning normalization")
		top       = flag.Int("top", 10, "Number of top terms to report per document")
		threshold = flag.Int("threshold", 1, "Combined count a term must exceed to be listed as frequent")
		limit     = flag.Int("limit", 20, "Number of terms to show when listing archived runs")
	)
	flag.Parse()

	if *db == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()

	st, err := sqlite.OpenSQLite(ctx, *db)
	if err != nil {
		log.Fatalf("open archive: %v", err)
	}

	if *input == "" {
		defer st.Close()
		listRuns(ctx, st, *limit)
		return
	}

	loader := config.Loader{
		StoplistPath: *stoplist,
		PipelinePath: *pipeline,
	}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load configs: %v", err)
	}

	engine := lexema.New(lexema.Options{
		Normalizer: components.Normalizer,
		Store:      st,
	})
	defer engine.Close()

	res, err := engine.AnalyzeDir(*input)
	if err != nil {
		log.Fatalf("analyze corpus: %v", err)
	}

	rep := report.New().Build(res.Table, *top, *threshold, *input)
	if err := engine.Archive(ctx, res, rep.RunID, *label, *input); err != nil {
		log.Fatalf("archive run: %v", err)
	}

	fmt.Print(rep.Summary())
	fmt.Printf("\narchived run %s\n", rep.RunID)
}

func listRuns(ctx context.Context, st store.Store, limit int) {
	summaries, err := st.ListRuns(ctx)
	if err != nil {
		log.Fatalf("list runs: %v", err)
	}
	if len(summaries) == 0 {
		fmt.Println("no archived runs")
		return
	}

	for _, sum := range summaries {
		label := sum.Label
		if label == "" {
			label = "-"
		}
		fmt.Printf("%s  %s  %d docs  %d terms  %s  %s\n",
			sum.ID,
			sum.CreatedAt.Format("2006-01-02 15:04:05"),
			sum.Docs,
			sum.Terms,
			label,
			sum.InputPath,
		)
	}

	// Show the most recent run's combined top terms.
	newest := summaries[0]
	counts, err := st.TopTerms(ctx, newest.ID, limit)
	if err != nil {
		log.Fatalf("top terms for run %s: %v", newest.ID, err)
	}
	fmt.Printf("\ntop terms of run %s\n", newest.ID)
	for _, tc := range counts {
		fmt.Printf("%6d  %s\n", tc.Count, tc.Term)
	}
}
