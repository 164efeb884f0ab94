package workout

type Set struct {
	Increase  string `json:"increase"`
	Load      string `json:"carico"`
	Reps      string `json:"ripetizioni"`
	Intensity string `json:"intensity"`
}

type Exercise struct {
	MuscleGroup string `json:"gruppo"`
	Name        string `json:"nome"`
	Technique   string `json:"tecnica"`
	Notes       string `json:"note"`
	Rest        string `json:"rest"`
	PlannedSets string `json:"serie"`
	PlannedReps string `json:"reps"`
	Sets        []Set  `json:"serie_dati"`
}

type Day struct {
	Label     string     `json:"label"`
	Exercises []Exercise `json:"exercises"`
}

// Plan is one parsed worksheet. Days keep the order of their first header row.
type Plan struct {
	Days []Day `json:"days"`
}

func (p *Plan) Day(label string) (*Day, bool) {
	for i := range p.Days {
		if p.Days[i].Label == label {
			return &p.Days[i], true
		}
	}
	return nil, false
}

func (p *Plan) Labels() []string {
	labels := make([]string, 0, len(p.Days))
	for _, d := range p.Days {
		labels = append(labels, d.Label)
	}
	return labels
}

// Map returns the day label -> exercises view of the plan.
func (p *Plan) Map() map[string][]Exercise {
	m := make(map[string][]Exercise, len(p.Days))
	for _, d := range p.Days {
		m[d.Label] = d.Exercises
	}
	return m
}

// Exercise returns the first exercise of the day with the given name.
func (d *Day) Exercise(name string) (*Exercise, bool) {
	for i := range d.Exercises {
		if d.Exercises[i].Name == name {
			return &d.Exercises[i], true
		}
	}
	return nil, false
}

// ApplyUpdate patches the cached set the same way UpdateSet patches the sheet:
// empty values leave the field as it was. Returns false if the set is not in the plan.
func (p *Plan) ApplyUpdate(upd SetUpdate) bool {
	day, ok := p.Day(upd.Day)
	if !ok {
		return false
	}
	ex, ok := day.Exercise(upd.Exercise)
	if !ok || upd.SetIndex < 0 || upd.SetIndex >= len(ex.Sets) {
		return false
	}

	set := &ex.Sets[upd.SetIndex]
	if upd.Load != "" {
		set.Load = upd.Load
	}
	if upd.Reps != "" {
		set.Reps = upd.Reps
	}
	if upd.Intensity != "" {
		set.Intensity = upd.Intensity
	}
	return true
}
