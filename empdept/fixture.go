package empdept

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	rel "github.com/DimkaBraginskiy/apbd15-tut05"
	"github.com/DimkaBraginskiy/apbd15-tut05/internal/logging"
)

//go:embed empdept.yaml
var defaultYAML []byte

// Dataset is a set of the three tables.  A Dataset is never modified after it
// is loaded; its accessors return copies.
type Dataset struct {
	employees    []Employee
	departments  []Department
	salaryGrades []SalaryGrade
}

// file is the YAML layout of a dataset
type file struct {
	Employees    []Employee    `yaml:"employees"`
	Departments  []Department  `yaml:"departments"`
	SalaryGrades []SalaryGrade `yaml:"salgrades"`
}

// Load decodes a dataset from YAML.  Unknown fields are rejected, so only
// the three record shapes are accepted.
func Load(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}

	for _, d := range f.Departments {
		logging.Debug().Object("department", d).Msg("loaded department")
	}
	logging.Debug().
		Int("employees", len(f.Employees)).
		Int("departments", len(f.Departments)).
		Int("salgrades", len(f.SalaryGrades)).
		Msg("loaded dataset")

	return &Dataset{f.Employees, f.Departments, f.SalaryGrades}, nil
}

var defaultDataset = sync.OnceValue(func() *Dataset {
	d, err := Load(bytes.NewReader(defaultYAML))
	if err != nil {
		panic(fmt.Sprintf("empdept: embedded dataset is invalid: %v", err))
	}
	return d
})

// Default returns the embedded sample dataset.
func Default() *Dataset {
	return defaultDataset()
}

// Employees returns a copy of the sample employees.
func Employees() []Employee { return Default().Employees() }

// Departments returns a copy of the sample departments.
func Departments() []Department { return Default().Departments() }

// SalaryGrades returns a copy of the sample salary grades.
func SalaryGrades() []SalaryGrade { return Default().SalaryGrades() }

// Employees returns a copy of the employees of the dataset
func (d *Dataset) Employees() []Employee {
	return slices.Clone(d.employees)
}

// Departments returns a copy of the departments of the dataset
func (d *Dataset) Departments() []Department {
	return slices.Clone(d.departments)
}

// SalaryGrades returns a copy of the salary grades of the dataset
func (d *Dataset) SalaryGrades() []SalaryGrade {
	return slices.Clone(d.salaryGrades)
}

// Relations returns the three tables of the dataset as relations.
func (d *Dataset) Relations() (rel.Relation[Employee], rel.Relation[Department], rel.Relation[SalaryGrade]) {
	return rel.New(d.employees), rel.New(d.departments), rel.New(d.salaryGrades)
}
