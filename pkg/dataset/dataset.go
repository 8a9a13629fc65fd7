// Package dataset loads and saves optimizer inputs. A project file holds
// tasks, employees and the calendar together; the three can also live in
// separate files. JSON and YAML are chosen by file extension.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/taskalloc/core/model"
)

// ErrFormat is returned for unsupported file extensions.
var ErrFormat = errors.New("unsupported dataset format")

// Dataset is the complete input of an optimization run.
type Dataset struct {
	Tasks     []model.Task     `json:"tasks" yaml:"tasks"`
	Employees []model.Employee `json:"employees" yaml:"employees"`
	Calendar  model.Calendar   `json:"calendar" yaml:"calendar"`
}

// Normalize fills the fields the input files may leave out: a missing task
// priority becomes medium and a calendar without a work_days_per_week key gets
// Monday to Friday. An explicit empty list is kept so Validate rejects it.
func (d *Dataset) Normalize() {
	for i := range d.Tasks {
		if d.Tasks[i].Priority == "" {
			d.Tasks[i].Priority = model.PriorityMedium
		}
	}
	if d.Calendar.WorkDays == nil {
		d.Calendar.WorkDays = append([]int(nil), model.DefaultWorkDays...)
	}
}

// Validate checks tasks, employees and the calendar.
func (d Dataset) Validate() error {
	return errors.Join(
		model.ValidateTasks(d.Tasks),
		model.ValidateEmployees(d.Employees),
		d.Calendar.Validate(),
	)
}

// Stats summarizes the dataset before optimization.
func (d Dataset) Stats() model.ProjectStats {
	return model.ComputeProjectStats(d.Tasks, d.Employees)
}

// Load reads a project file and normalizes it.
func Load(path string) (*Dataset, error) {
	var d Dataset
	if err := readFile(path, &d); err != nil {
		return nil, err
	}
	d.Normalize()
	return &d, nil
}

// LoadFiles reads tasks, employees and calendar from three files. An empty
// calendar path leaves the calendar unset.
func LoadFiles(tasksPath, employeesPath, calendarPath string) (*Dataset, error) {
	var d Dataset
	if err := readFile(tasksPath, &d.Tasks); err != nil {
		return nil, err
	}
	if err := readFile(employeesPath, &d.Employees); err != nil {
		return nil, err
	}
	if calendarPath != "" {
		if err := readFile(calendarPath, &d.Calendar); err != nil {
			return nil, err
		}
	}
	d.Normalize()
	return &d, nil
}

// Save writes v to path in the format given by its extension.
func Save(path string, v any) error {
	var (
		b   []byte
		err error
	)
	switch ext(path) {
	case ".json":
		b, err = json.MarshalIndent(v, "", "  ")
	case ".yaml", ".yml":
		b, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("%w: %s", ErrFormat, path)
	}
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, b, 0o644)
}

func readFile(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch ext(path) {
	case ".json":
		err = json.Unmarshal(b, out)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, out)
	default:
		return fmt.Errorf("%w: %s", ErrFormat, path)
	}
	if err != nil {
		return fmt.Errorf("%w: decode %s: %w", model.ErrConfiguration, path, err)
	}
	return nil
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
