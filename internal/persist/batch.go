package persist

import (
	"context"
	"fmt"

	"github.com/vmunix/movieshelf/internal/library"
)

// SeasonUnit is a confirmed subdirectory: one season and its episodes.
type SeasonUnit struct {
	Directory string
	Season    *library.Season
	Episodes  []*library.Episode
}

// Batch holds everything confirmed during one run.
type Batch struct {
	Movies  []*library.Movie
	Seasons []SeasonUnit
}

// Empty reports whether neither channel has records.
func (b Batch) Empty() bool {
	return len(b.Movies) == 0 && len(b.Seasons) == 0
}

// Inserted lists the ids written to one table.
type Inserted struct {
	Table library.Table
	IDs   []int64
}

// Failure is a unit that was rolled back.
type Failure struct {
	Unit string
	Err  error
}

// Report summarises a persisted batch.
type Report struct {
	Inserted []Inserted
	Failures []Failure
}

func (r *Report) add(table library.Table, ids ...int64) {
	for i := range r.Inserted {
		if r.Inserted[i].Table == table {
			r.Inserted[i].IDs = append(r.Inserted[i].IDs, ids...)
			return
		}
	}
	r.Inserted = append(r.Inserted, Inserted{Table: table, IDs: ids})
}

// Rows returns the number of rows written.
func (r *Report) Rows() int {
	n := 0
	for _, in := range r.Inserted {
		n += len(in.IDs)
	}
	return n
}

// OK reports whether every unit was committed.
func (r *Report) OK() bool { return len(r.Failures) == 0 }

// flatUnit names the loose-file unit in failures.
const flatUnit = "files"

// Persist writes a batch. The loose files form one transaction and every
// season with its episodes forms another. A failed unit is rolled back and
// recorded in the report; the remaining units are still written.
func (c *Coordinator) Persist(ctx context.Context, store *library.Store, b Batch) (*Report, error) {
	report := &Report{}

	if len(b.Movies) > 0 {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		err := c.inTx(store, func(tx *library.Tx) error {
			ids, err := c.InsertFlat(tx, b.Movies, 0)
			if err != nil {
				return err
			}
			report.add(c.category.MovieTable(), ids...)
			return nil
		})
		if err != nil {
			c.log.Error("files rolled back", "error", err)
			report.Failures = append(report.Failures, Failure{Unit: flatUnit, Err: err})
		}
	}

	documentary := c.category == library.CategoryDocumentary
	for _, unit := range b.Seasons {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		var unitReport Report
		err := c.inTx(store, func(tx *library.Tx) error {
			seasonID, err := c.InsertSeason(tx, unit.Season, documentary)
			if err != nil {
				return err
			}
			unitReport.add(c.category.SeasonTable(), seasonID)

			var ids []int64
			if documentary {
				ids, err = c.InsertDocumentaryEpisodes(tx, unit.Season, unit.Episodes, seasonID)
			} else {
				ids, err = c.InsertEpisodes(tx, unit.Episodes, seasonID)
			}
			if err != nil {
				return err
			}
			if documentary {
				unitReport.add(library.TableDocumentaries, ids...)
			} else {
				unitReport.add(library.TableEpisodes, ids...)
			}
			return nil
		})
		if err != nil {
			c.log.Error("season rolled back", "directory", unit.Directory, "error", err)
			report.Failures = append(report.Failures, Failure{Unit: unit.Directory, Err: err})
			continue
		}
		for _, in := range unitReport.Inserted {
			report.add(in.Table, in.IDs...)
		}
	}

	c.log.Info("batch persisted", "rows", report.Rows(), "failures", len(report.Failures))
	return report, nil
}

func (c *Coordinator) inTx(store *library.Store, fn func(tx *library.Tx) error) error {
	tx, err := store.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
