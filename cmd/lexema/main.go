// Command lexema analyzes a directory of text documents and prints a
// JSON report of term frequencies and lexical statistics.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/tundralab/lexema/pkg/lexema"
	"github.com/tundralab/lexema/pkg/lexema/report"
)

func main() {
	var (
		input     = flag.String("input", "", "Directory of corpus documents (required)")
		threshold = flag.Int("threshold", 1, "Combined count a term must exceed to be listed as frequent")
		top       = flag.Int("top", 10, "Number of top terms to report per document")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}

	engine := lexema.New(lexema.Options{})
	defer engine.Close()

	res, err := engine.AnalyzeDir(*input)
	if err != nil {
		log.Fatalf("analyze corpus: %v", err)
	}

	rep := report.New().Build(res.Table, *top, *threshold, *input)

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Fatalf("marshal report: %v", err)
	}
	fmt.Println(string(out))
}
