package schedule

// Localized maps a language code to display text.
type Localized map[Language]string

// Get returns the text for lang, or "" when it is missing. There is no
// fallback to another language.
func (l Localized) Get(lang Language) string {
	return l[lang]
}

func (l Localized) clone() Localized {
	if l == nil {
		return nil
	}
	out := make(Localized, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// TaskRecord is one schedule entry.
type TaskRecord struct {
	Title       Localized `json:"title"`
	Time        string    `json:"time"`
	Description Localized `json:"description"`
	Status      Status    `json:"status"`
}

func (t TaskRecord) clone() TaskRecord {
	t.Title = t.Title.clone()
	t.Description = t.Description.clone()
	return t
}

// Display is a task resolved for one language, ready to render.
type Display struct {
	Title       string `json:"title"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	Tier        Tier   `json:"tier"`
}

// ResolveDisplay flattens task for lang. Time and status pass through.
func ResolveDisplay(task TaskRecord, lang Language) Display {
	return Display{
		Title:       task.Title.Get(lang),
		Time:        task.Time,
		Description: task.Description.Get(lang),
		Status:      task.Status,
		Tier:        ColorFor(task.Status),
	}
}

// ClockLine is the time-log projection of a task.
type ClockLine struct {
	Title string `json:"title"`
	Time  string `json:"time"`
}

// ClockEntry projects task onto the clock view.
func ClockEntry(task TaskRecord, lang Language) ClockLine {
	return ClockLine{
		Title: task.Title.Get(lang),
		Time:  task.Time,
	}
}
