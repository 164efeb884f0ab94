package workout

// Worksheet layout. Indexes are 0-based positions inside a row as returned by
// the spreadsheet client; columns are the 1-based numbers used for writes.
const (
	DayPrefix         = "DAY "
	HeaderRowLabel    = "GRUPPO MUSCOLARE"
	MinExerciseCells  = 7
	MaxSets           = 4
	firstSetLoadIndex = 8
	setWidth          = 4
)

const (
	colGroup = iota
	colName
	colTechnique
	colNotes
	colRest
	colPlannedSets
	colPlannedReps
)

// SetBaseIndex is the row index of the load cell of set s. The increase note
// sits right before it, reps and intensity right after.
func SetBaseIndex(s int) int {
	return firstSetLoadIndex + setWidth*s
}

// SetColumns holds the 1-based sheet columns written for one set.
type SetColumns struct {
	Load      int
	Reps      int
	Intensity int
}

func ColumnsForSet(s int) SetColumns {
	base := SetBaseIndex(s) + 1
	return SetColumns{
		Load:      base,
		Reps:      base + 1,
		Intensity: base + 2,
	}
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
