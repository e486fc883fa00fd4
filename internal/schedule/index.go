package schedule

import "sort"

// Repository supplies the tasks scheduled on a day, in stored order.
type Repository interface {
	Get(day Day) []TaskRecord
}

// Index is an immutable Repository built once from seed data.
type Index struct {
	days map[Day][]TaskRecord
}

// NewIndex copies entries into a new Index. Later changes to entries do not
// affect the index.
func NewIndex(entries map[Day][]TaskRecord) *Index {
	days := make(map[Day][]TaskRecord, len(entries))
	for day, tasks := range entries {
		if len(tasks) == 0 {
			continue
		}
		days[day] = cloneTasks(tasks)
	}
	return &Index{days: days}
}

// Get returns a copy of the tasks stored for day, or nil.
func (ix *Index) Get(day Day) []TaskRecord {
	if ix == nil {
		return nil
	}
	tasks, ok := ix.days[day]
	if !ok {
		return nil
	}
	return cloneTasks(tasks)
}

// Has reports whether any task is stored for day.
func (ix *Index) Has(day Day) bool {
	if ix == nil {
		return false
	}
	_, ok := ix.days[day]
	return ok
}

// Days lists the days carrying tasks in ascending order.
func (ix *Index) Days() []Day {
	if ix == nil {
		return nil
	}
	days := make([]Day, 0, len(ix.days))
	for day := range ix.days {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i] < days[j]
	})
	return days
}

// Len returns the number of days carrying tasks.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.days)
}

// TasksFor returns the tasks for day. A nil repository or a day without
// tasks yields an empty result.
func TasksFor(repo Repository, day Day) []TaskRecord {
	if repo == nil {
		return nil
	}
	return repo.Get(day)
}

func cloneTasks(tasks []TaskRecord) []TaskRecord {
	out := make([]TaskRecord, len(tasks))
	for i, task := range tasks {
		out[i] = task.clone()
	}
	return out
}
