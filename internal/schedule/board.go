package schedule

// DefaultDay is the day selected before the user picks one.
const DefaultDay Day = "2024-12-12"

// Selection is the caller-owned choice of day and language.
type Selection struct {
	Day      Day
	Language Language
}

// DefaultSelection returns the initial selection.
func DefaultSelection() Selection {
	return Selection{Day: DefaultDay, Language: DefaultLanguage}
}

// DayCell is one entry of the day selector.
type DayCell struct {
	Day      Day
	HasTasks bool
	Selected bool
}

// Board is everything the task view renders for one selection.
type Board struct {
	Year        int
	Month       int
	Days        []DayCell
	Selection   Selection
	Tasks       []Display
	Heading     string
	Placeholder string
}

// Empty reports whether the selected day has no tasks.
func (b Board) Empty() bool {
	return len(b.Tasks) == 0
}

// SelectedIndex returns the position of the selected day in Days, or -1.
func (b Board) SelectedIndex() int {
	for i, cell := range b.Days {
		if cell.Selected {
			return i
		}
	}
	return -1
}

// BuildBoard resolves the day selector for (year, month) and the tasks of the
// selected day in the selected language.
func BuildBoard(repo Repository, sel Selection, year, month int) Board {
	days := GenerateDays(year, month)
	cells := make([]DayCell, 0, len(days))
	for _, day := range days {
		cells = append(cells, DayCell{
			Day:      day,
			HasTasks: len(TasksFor(repo, day)) > 0,
			Selected: day == sel.Day,
		})
	}

	tasks := TasksFor(repo, sel.Day)
	displays := make([]Display, 0, len(tasks))
	for _, task := range tasks {
		displays = append(displays, ResolveDisplay(task, sel.Language))
	}

	board := Board{
		Year:      year,
		Month:     month,
		Days:      cells,
		Selection: sel,
		Tasks:     displays,
		Heading:   Text(sel.Language, MsgTaskHeading),
	}
	if board.Empty() {
		board.Placeholder = Text(sel.Language, MsgNoTasks)
	}
	return board
}
