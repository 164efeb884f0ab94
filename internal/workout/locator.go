package workout

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=$GOFILE -destination=sheet_mocks_test.go -package=workout_test

// Sheet is the part of a spreadsheet client the locator needs.
type Sheet interface {
	ReadRows(ctx context.Context, worksheet string) ([][]string, error)
	WriteCell(ctx context.Context, worksheet string, row, col int, value string) error
}

// SetUpdate carries new values for one set. Empty values are left untouched.
type SetUpdate struct {
	Day       string `json:"day"`
	Exercise  string `json:"exercise"`
	SetIndex  int    `json:"setIndex"`
	Load      string `json:"carico"`
	Reps      string `json:"ripetizioni"`
	Intensity string `json:"intensity"`
}

// LocateExercise returns the 0-based index of the row holding the exercise.
// The search starts after the first row labeled with the day and is not
// bounded by the next day header.
func LocateExercise(rows [][]string, day, exercise string) (int, bool) {
	dayRow := -1
	for i, row := range rows {
		if cell(row, 0) == day {
			if dayRow == -1 {
				dayRow = i
			}
			continue
		}
		if dayRow != -1 && len(row) > 1 && row[colName] == exercise {
			return i, true
		}
	}
	return -1, false
}

// UpdateSet writes the non-empty values of upd into the worksheet, one cell at a time.
// It reports false if the exercise could not be found under the day. Client errors are
// returned as is, cells written before the failure stay written.
func UpdateSet(ctx context.Context, sheet Sheet, worksheet string, upd SetUpdate) (bool, error) {
	rows, err := sheet.ReadRows(ctx, worksheet)
	if err != nil {
		return false, fmt.Errorf("read rows [%s]: %w", worksheet, err)
	}

	rowIdx, ok := LocateExercise(rows, upd.Day, upd.Exercise)
	if !ok {
		return false, nil
	}

	rowNum := rowIdx + 1
	cols := ColumnsForSet(upd.SetIndex)
	writes := []struct {
		col   int
		value string
	}{
		{cols.Load, upd.Load},
		{cols.Reps, upd.Reps},
		{cols.Intensity, upd.Intensity},
	}

	for _, w := range writes {
		if w.value == "" {
			continue
		}
		if err := sheet.WriteCell(ctx, worksheet, rowNum, w.col, w.value); err != nil {
			return true, fmt.Errorf("write cell [%s] R%dC%d: %w", worksheet, rowNum, w.col, err)
		}
	}

	return true, nil
}
