package store

import (
	"strings"

	"github.com/tgienger/taskdesk/internal/models"
)

// Filter returns the tasks whose title, description or status contains query,
// ignoring case. An empty query returns tasks unchanged.
func Filter(tasks []models.Task, query string) []models.Task {
	if query == "" {
		return tasks
	}
	q := strings.ToLower(query)
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Description), q) ||
			strings.Contains(strings.ToLower(string(t.Status)), q) {
			out = append(out, t)
		}
	}
	return out
}

// StatusCount is the number of tasks in one status
type StatusCount struct {
	Status models.Status
	Count  int
}

// CountByStatus groups tasks by status, one entry per enumeration value in
// enumeration order. Statuses with no tasks are reported with a zero count.
func CountByStatus(tasks []models.Task) []StatusCount {
	counts := make(map[models.Status]int, 3)
	for _, t := range tasks {
		counts[t.Status]++
	}
	statuses := models.Statuses()
	out := make([]StatusCount, len(statuses))
	for i, st := range statuses {
		out[i] = StatusCount{Status: st, Count: counts[st]}
	}
	return out
}
