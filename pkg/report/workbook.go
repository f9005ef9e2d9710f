// Package report renders reconciliation results into an XLSX workbook.
//
// Each run appends one sheet named after the run timestamp; earlier sheets
// are never modified. The header row is bold with an autofilter over the
// used range, columns are sized to their longest value, and the STATUS
// column is filled by severity.
package report

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/newtron-network/bgprecon/pkg/recon"
	"github.com/newtron-network/bgprecon/pkg/settings"
	"github.com/newtron-network/bgprecon/pkg/util"
)

// Headers are the sheet's column titles. STATUS is column 9.
var Headers = []string{
	"Neighbor",
	"AS",
	"Up/Down",
	"State/PfxRcd",
	"Interface",
	"VRF",
	"Migrated Up/Down",
	"Migrated State/PfxRcd",
	"STATUS",
}

const statusColumn = 9

// maxColWidth is the widest column excelize (and Excel) accepts.
const maxColWidth = 255

// Fill colours (ARGB without alpha) for the STATUS column.
const (
	colorRed    = "FF0000"
	colorYellow = "FFFF00"
	colorGreen  = "008000"
)

// ErrSheetExists is returned when the workbook already holds a sheet for the
// run timestamp, e.g. two runs in the same second.
var ErrSheetExists = errors.New("sheet already exists")

// Writer appends run sheets to one workbook file.
type Writer struct {
	path      string
	threshold int
}

// NewWriter returns a Writer for the workbook at path. threshold is the
// |delta| at which numeric statuses turn red; <= 0 selects the default.
func NewWriter(path string, threshold int) *Writer {
	if threshold <= 0 {
		threshold = settings.DefaultReviewThreshold
	}
	return &Writer{path: path, threshold: threshold}
}

// Path returns the workbook path.
func (w *Writer) Path() string {
	return w.path
}

// Row flattens a neighbor into the sheet's column order.
func Row(n recon.EnrichedNeighbor) []string {
	return []string{
		n.IP,
		n.AS,
		n.UpDown,
		n.StateOrCount,
		n.Interface,
		n.VRF,
		n.NewUpDown,
		n.NewStateOrCount,
		n.Status,
	}
}

// Append writes result as a new sheet named result.Timestamp, creating the
// workbook if it does not exist. Any failure is a *util.OutputWriteError.
func (w *Writer) Append(result *recon.Result) error {
	if err := w.append(result); err != nil {
		return util.NewOutputWriteError(w.path, result.Timestamp, err)
	}
	util.WithRun(result.Timestamp).WithFields(map[string]interface{}{
		"path": w.path,
		"rows": len(result.Neighbors),
	}).Info("report sheet written")
	return nil
}

func (w *Writer) append(result *recon.Result) error {
	lock, err := lockWorkbook(w.path)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	f, err := w.open(result.Timestamp)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := w.render(f, result); err != nil {
		return err
	}
	return f.SaveAs(w.path)
}

// open loads the workbook and adds an empty sheet for this run. A new
// workbook's default sheet is renamed rather than left behind.
func (w *Writer) open(sheet string) (*excelize.File, error) {
	if _, err := os.Stat(w.path); errors.Is(err, os.ErrNotExist) {
		f := excelize.NewFile()
		if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
			f.Close()
			return nil, err
		}
		util.WithRun(sheet).Infof("creating workbook %s", w.path)
		return f, nil
	} else if err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		f.Close()
		return nil, err
	}
	if idx != -1 {
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrSheetExists, sheet)
	}
	if _, err := f.NewSheet(sheet); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func (w *Writer) render(f *excelize.File, result *recon.Result) error {
	sheet := result.Timestamp

	rows := make([][]string, 0, len(result.Neighbors)+1)
	rows = append(rows, Headers)
	for _, n := range result.Neighbors {
		rows = append(rows, Row(n))
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := setColumnWidths(f, sheet, rows); err != nil {
		return err
	}
	if err := w.styleHeader(f, sheet, len(rows)); err != nil {
		return err
	}
	return w.styleStatus(f, sheet, result.Neighbors)
}

// setColumnWidths sizes each column to its longest value plus two, capped at
// maxColWidth.
func setColumnWidths(f *excelize.File, sheet string, rows [][]string) error {
	for col := 1; col <= len(Headers); col++ {
		longest := 0
		for _, row := range rows {
			if n := utf8.RuneCountInString(row[col-1]); n > longest {
				longest = n
			}
		}
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, float64(min(longest+2, maxColWidth))); err != nil {
			return err
		}
	}
	return nil
}

// styleHeader bolds row 1 and puts an autofilter over the used range.
func (w *Writer) styleHeader(f *excelize.File, sheet string, usedRows int) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(Headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return err
	}

	bottomRight, err := excelize.CoordinatesToCellName(len(Headers), usedRows)
	if err != nil {
		return err
	}
	return f.AutoFilter(sheet, "A1:"+bottomRight, nil)
}

// styleStatus fills each STATUS cell by severity, in bold.
func (w *Writer) styleStatus(f *excelize.File, sheet string, neighbors []recon.EnrichedNeighbor) error {
	styles := make(map[Severity]int, 3)
	for sev, color := range map[Severity]string{
		SeverityRed:    colorRed,
		SeverityYellow: colorYellow,
		SeverityGreen:  colorGreen,
	} {
		id, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return err
		}
		styles[sev] = id
	}

	for i, n := range neighbors {
		cell, err := excelize.CoordinatesToCellName(statusColumn, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, styles[StatusSeverity(n.Status, w.threshold)]); err != nil {
			return err
		}
	}
	return nil
}
