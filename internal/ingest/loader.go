// Package ingest loads the DDInter-style drug interaction CSV exports into
// the corpus table. It is an offline tool; the interaction resolver only
// ever reads the result.
package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pillsafe/pillsafe/internal/domain/interaction"
)

const defaultBatchSize = 450

// Result summarizes one import run.
type Result struct {
	Files    int
	Imported int
	Skipped  int
}

// Loader parses interaction CSV files and writes them through a
// CorpusWriter in batches.
type Loader struct {
	writer    interaction.CorpusWriter
	batchSize int
	// Progress, when set, is called after each written batch with the
	// number of records written so far.
	Progress func(written int)
}

func NewLoader(writer interaction.CorpusWriter) *Loader {
	return &Loader{writer: writer, batchSize: defaultBatchSize}
}

// LoadDir imports every .csv file in dir, in lexical order.
func (l *Loader) LoadDir(ctx context.Context, dir string) (*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read csv directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	if len(files) == 0 {
		return nil, fmt.Errorf("no .csv files in %s", dir)
	}

	total := &Result{}
	for _, path := range files {
		res, err := l.LoadFile(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("import %s: %w", path, err)
		}
		total.Files++
		total.Imported += res.Imported
		total.Skipped += res.Skipped
	}
	return total, nil
}

// LoadFile imports a single CSV file. Rows without both drug names are
// counted as skipped rather than aborting the run; the DDInter exports
// contain the occasional dirty row.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, skipped, err := parse(f)
	if err != nil {
		return nil, err
	}

	res := &Result{Files: 1, Skipped: skipped}
	for start := 0; start < len(records); start += l.batchSize {
		end := start + l.batchSize
		if end > len(records) {
			end = len(records)
		}
		n, err := l.writer.BulkInsert(ctx, records[start:end])
		res.Imported += n
		if err != nil {
			return res, err
		}
		if l.Progress != nil {
			l.Progress(res.Imported)
		}
	}
	return res, nil
}

// parse reads a DDInter export: a header row naming at least Drug_A and
// Drug_B (column order varies between the per-letter export files), then
// data rows. Level and the DDInterID columns are optional.
func parse(r io.Reader) ([]*interaction.Record, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	if _, ok := cols["Drug_A"]; !ok {
		return nil, 0, fmt.Errorf("missing Drug_A column")
	}
	if _, ok := cols["Drug_B"]; !ok {
		return nil, 0, fmt.Errorf("missing Drug_B column")
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []*interaction.Record
	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			skipped++
			continue
		}
		if err != nil {
			return nil, skipped, fmt.Errorf("read row: %w", err)
		}

		drugA := field(row, "Drug_A")
		drugB := field(row, "Drug_B")
		if drugA == "" || drugB == "" {
			skipped++
			continue
		}

		rec := &interaction.Record{
			DrugA: drugA,
			DrugB: drugB,
			Level: field(row, "Level"),
		}
		if id := field(row, "DDInterID_A"); id != "" {
			rec.SourceIDA = &id
		}
		if id := field(row, "DDInterID_B"); id != "" {
			rec.SourceIDB = &id
		}
		records = append(records, rec)
	}
	return records, skipped, nil
}
