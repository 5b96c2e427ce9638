// Command import loads phrase pairs from a CSV file into the lexicon.
// Expected columns: english_text, marshallese_text, and optionally
// category, context, usage_count. Rows whose pair already exists are
// skipped.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jvai/lily/internal/store"
)

func main() {
	dbPath := flag.String("db", "translations.db", "path to the sqlite database")
	csvPath := flag.String("csv", "Translation_data.csv", "path to the CSV file")
	flag.Parse()

	st, err := store.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("Failed to open CSV: %v", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		log.Fatalf("Failed to read CSV header: %v", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"english_text", "marshallese_text"} {
		if _, ok := col[required]; !ok {
			log.Fatalf("CSV is missing required column %q", required)
		}
	}

	ctx := context.Background()
	imported, skipped := 0, 0

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("Failed to read CSV row: %v", err)
		}

		entry := store.Entry{
			English:     field(row, col, "english_text"),
			Marshallese: field(row, col, "marshallese_text"),
			Category:    field(row, col, "category"),
			Context:     field(row, col, "context"),
		}
		if entry.English == "" || entry.Marshallese == "" {
			skipped++
			continue
		}
		if entry.Category == "" {
			entry.Category = "general"
		}
		if v := field(row, col, "usage_count"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				entry.UsageCount = n
			}
		}

		// Skip pairs that are already in the lexicon.
		existing, err := st.ExactLookup(ctx, entry.English)
		if err != nil {
			log.Fatalf("Lookup failed: %v", err)
		}
		if existing != nil && strings.EqualFold(existing.Marshallese, entry.Marshallese) {
			skipped++
			continue
		}

		if _, err := st.Insert(ctx, entry); err != nil {
			log.Fatalf("Insert failed: %v", err)
		}
		imported++
		if imported%100 == 0 {
			log.Printf("Imported %d translations...", imported)
		}
	}

	log.Printf("Done. Imported %d, skipped %d.", imported, skipped)
}

func field(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
