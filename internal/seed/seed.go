// Package seed loads the demo tasks a session starts with.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/tgienger/taskdesk/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demo []byte

type record struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Status      string `yaml:"status"`
	Due         string `yaml:"due"`
}

type file struct {
	Tasks []record `yaml:"tasks"`
}

// Default returns the built-in demo tasks
func Default() ([]models.Task, error) {
	return Parse(demo)
}

// Load reads seed tasks from a YAML file
func Load(path string) ([]models.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	tasks, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tasks, nil
}

// Parse decodes seed YAML. Status names are matched case-insensitively and due
// dates use the YYYY-MM-DD form; field-level validation is left to the store.
func Parse(data []byte) ([]models.Task, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	tasks := make([]models.Task, 0, len(f.Tasks))
	for i, r := range f.Tasks {
		status, ok := models.ParseStatus(r.Status)
		if !ok {
			return nil, fmt.Errorf("task %d (%q): unknown status %q", i+1, r.ID, r.Status)
		}
		due, err := models.ParseDate(r.Due)
		if err != nil {
			return nil, fmt.Errorf("task %d (%q): due date: %w", i+1, r.ID, err)
		}
		tasks = append(tasks, models.Task{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Status:      status,
			DueDate:     due,
		})
	}
	return tasks, nil
}
