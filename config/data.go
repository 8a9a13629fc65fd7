package config

// DataConfig locates the input files used when the CLI gets no explicit
// paths. Project holds tasks, employees and calendar together; otherwise the
// three separate files are read.
type DataConfig struct {
	Project   string `json:"project"`
	Tasks     string `json:"tasks"`
	Employees string `json:"employees"`
	Calendar  string `json:"calendar"`
}

// Empty reports whether no input location is configured.
func (d DataConfig) Empty() bool {
	return d.Project == "" && d.Tasks == "" && d.Employees == ""
}
