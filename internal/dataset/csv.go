package dataset

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"caredash/internal/core"
)

// CSVSource reads the dataset from a delimited text file. This is the
// default backend.
type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Load(ctx context.Context) (core.Table, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return core.Table{}, fmt.Errorf("open dataset %s: %w", s.path, err)
	}
	defer file.Close()

	bufReader := bufio.NewReaderSize(file, 256*1024)

	// Skip UTF-8 BOM if present
	if bom, err := bufReader.Peek(3); err == nil && len(bom) >= 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		_, _ = bufReader.Discard(3)
	}

	reader := csv.NewReader(bufReader)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return core.Table{}, fmt.Errorf("read header of %s: %w", s.path, err)
	}
	idx, err := headerIndex(header)
	if err != nil {
		return core.Table{}, fmt.Errorf("%s: %w", s.path, err)
	}

	var records []core.Record
	for rowNum := 2; ; rowNum++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return core.Table{}, fmt.Errorf("read %s row %d: %w", s.path, rowNum, err)
		}
		records = append(records, coerceRecord(rowCell(idx, row)))
	}

	table := core.NewTable(records)
	logLoad(ctx, "csv", table)
	return table, nil
}
