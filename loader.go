package bidtree

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/anacrolix/log"
	"github.com/pkg/errors"
)

type LoadStats struct {
	// Data rows read, excluding any header.
	Rows     int
	Inserted int
	// Rows whose Id was already present. The newer bid replaced the older.
	Replaced int
	Skipped  int
	Elapsed  time.Duration
}

// A row that couldn't be turned into a Bid.
type RowError struct {
	Line int
	Err  error
}

func (me RowError) Error() string {
	return fmt.Sprintf("line %v: %v", me.Line, me.Err)
}

func (me RowError) Unwrap() error {
	return me.Err
}

func LoadBidsFile(path string, idx Index, cfg *LoaderConfig) (LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadStats{}, errors.Wrap(err, "opening bids file")
	}
	defer f.Close()
	stats, err := LoadBids(f, idx, cfg)
	if err != nil {
		return stats, errors.Wrapf(err, "loading %q", path)
	}
	return stats, nil
}

// Reads delimited bid rows from r and inserts each into idx in source order. Malformed rows are
// never inserted. They're skipped and logged, or with cfg.Strict, end the load with a RowError.
// Rows inserted before an error stay in idx.
func LoadBids(r io.Reader, idx Index, cfg *LoaderConfig) (stats LoadStats, err error) {
	if cfg == nil {
		cfg = NewDefaultLoaderConfig()
	}
	started := time.Now()
	defer func() {
		stats.Elapsed = time.Since(started)
	}()
	cr := csv.NewReader(r)
	cr.Comma = cfg.Comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true
	first := true
	for {
		record, readErr := cr.Read()
		if readErr == io.EOF {
			break
		}
		var pe *csv.ParseError
		if readErr != nil && !errors.As(readErr, &pe) {
			err = errors.Wrap(readErr, "reading bids")
			return
		}
		var line int
		if readErr == nil {
			line, _ = cr.FieldPos(0)
		}
		if first {
			first = false
			if cfg.HasHeader && readErr == nil {
				continue
			}
		}
		stats.Rows++
		var bid Bid
		if readErr == nil {
			bid, readErr = cfg.parseRow(record)
		} else {
			line = pe.Line
		}
		if readErr != nil {
			rowErr := RowError{Line: line, Err: readErr}
			if cfg.Strict {
				err = rowErr
				return
			}
			stats.Skipped++
			cfg.Logger.Levelf(log.Warning, "skipping bid row: %v", rowErr)
			continue
		}
		if idx.Insert(bid).Ok {
			stats.Replaced++
			cfg.Logger.Levelf(log.Debug, "line %v: bid %q replaced an earlier row", line, bid.Id)
		} else {
			stats.Inserted++
		}
	}
	cfg.Logger.Levelf(
		log.Info,
		"read %v bid rows: %v inserted, %v replaced, %v skipped",
		stats.Rows, stats.Inserted, stats.Replaced, stats.Skipped)
	return
}

const utf8Bom = "\ufeff"

func (cfg *LoaderConfig) parseRow(record []string) (bid Bid, err error) {
	if len(record) < cfg.minColumns() {
		err = errors.Errorf("have %v columns, need at least %v", len(record), cfg.minColumns())
		return
	}
	field := func(i int) string {
		return strings.TrimSpace(strings.TrimPrefix(record[i], utf8Bom))
	}
	id := field(cfg.IdColumn)
	if id == "" {
		err = errors.New("empty bid id")
		return
	}
	amount, err := parseAmount(field(cfg.AmountColumn), cfg.CurrencySymbol)
	if err != nil {
		return
	}
	// Fully built only once every field has parsed.
	bid = Bid{
		Id:     id,
		Title:  field(cfg.TitleColumn),
		Fund:   field(cfg.FundColumn),
		Amount: amount,
	}
	return
}
