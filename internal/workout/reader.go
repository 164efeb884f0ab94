package workout

import "strings"

// ParseRows groups the raw rows of a worksheet into days of exercises.
// Rows that do not fit the layout are skipped, it never fails.
func ParseRows(rows [][]string) *Plan {
	plan := &Plan{Days: []Day{}}
	current := -1

	for _, row := range rows {
		first := cell(row, 0)

		if strings.HasPrefix(first, DayPrefix) {
			current = plan.startDay(first)
			continue
		}

		if first == HeaderRowLabel {
			continue
		}

		if current < 0 || len(row) < MinExerciseCells || row[colGroup] == "" || row[colName] == "" {
			continue
		}

		plan.Days[current].Exercises = append(plan.Days[current].Exercises, parseExercise(row))
	}

	return plan
}

// startDay returns the index of the day with the label, resetting its
// exercises when the label shows up again.
func (p *Plan) startDay(label string) int {
	for i := range p.Days {
		if p.Days[i].Label == label {
			p.Days[i].Exercises = []Exercise{}
			return i
		}
	}
	p.Days = append(p.Days, Day{Label: label, Exercises: []Exercise{}})
	return len(p.Days) - 1
}

func parseExercise(row []string) Exercise {
	ex := Exercise{
		MuscleGroup: row[colGroup],
		Name:        row[colName],
		Technique:   row[colTechnique],
		Notes:       row[colNotes],
		Rest:        row[colRest],
		PlannedSets: row[colPlannedSets],
		PlannedReps: row[colPlannedReps],
		Sets:        []Set{},
	}

	for s := 0; s < MaxSets; s++ {
		// only the load cell is bounds checked, trailing cells default to empty
		base := SetBaseIndex(s)
		if base >= len(row) {
			continue
		}
		ex.Sets = append(ex.Sets, Set{
			Increase:  cell(row, base-1),
			Load:      cell(row, base),
			Reps:      cell(row, base+1),
			Intensity: cell(row, base+2),
		})
	}

	return ex
}
