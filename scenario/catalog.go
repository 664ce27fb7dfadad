package scenario

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	rel "github.com/DimkaBraginskiy/apbd15-tut05"
	"github.com/DimkaBraginskiy/apbd15-tut05/internal/logging"
)

// Scenario is one of the canonical queries, with the sql it mirrors.
type Scenario struct {
	Name string
	SQL  string

	// Render runs the query and returns its result as a table
	Render func(q *Queries) string

	// Check runs the query and verifies the shape and values of the result
	Check func(q *Queries) error
}

var scenarios = []Scenario{
	{
		Name:   "salesmen",
		SQL:    "SELECT * FROM Emp WHERE Job = 'SALESMAN'",
		Render: func(q *Queries) string { return rel.PrettyPrint(q.Salesmen()) },
		Check:  checkSalesmen,
	},
	{
		Name:   "dept30-by-salary",
		SQL:    "SELECT * FROM Emp WHERE DeptNo = 30 ORDER BY Sal DESC",
		Render: func(q *Queries) string { return rel.PrettyPrint(q.Dept30BySalaryDesc()) },
		Check:  checkDept30BySalaryDesc,
	},
	{
		Name:   "chicago",
		SQL:    "SELECT * FROM Emp WHERE DeptNo IN (SELECT DeptNo FROM Dept WHERE Loc = 'CHICAGO')",
		Render: func(q *Queries) string { return rel.PrettyPrint(q.ChicagoEmployees()) },
		Check:  checkChicagoEmployees,
	},
	{
		Name:   "names-salaries",
		SQL:    "SELECT EName, Sal FROM Emp",
		Render: func(q *Queries) string { return rel.PrettyPrint(q.NamesAndSalaries()) },
		Check:  checkNamesAndSalaries,
	},
	{
		Name:   "emp-dept",
		SQL:    "SELECT E.EName, D.DName FROM Emp E JOIN Dept D ON E.DeptNo = D.DeptNo",
		Render: func(q *Queries) string { return rel.PrettyPrint(q.EmployeeDepartments()) },
		Check:  checkEmployeeDepartments,
	},
	{
		Name:   "headcount",
		SQL:    "SELECT DeptNo, COUNT(*) FROM Emp GROUP BY DeptNo",
		Render: func(q *Queries) string { return rel.PrettyPrint(q.HeadcountByDept()) },
		Check:  checkHeadcountByDept,
	},
	{
		Name:   "commissions",
		SQL:    "SELECT EName, Comm FROM Emp WHERE Comm IS NOT NULL",
		Render: func(q *Queries) string { return rel.PrettyPrint(q.Commissions()) },
		Check:  checkCommissions,
	},
	{
		Name:   "salary-grades",
		SQL:    "SELECT E.EName, S.Grade FROM Emp E JOIN Salgrade S ON E.Sal BETWEEN S.Losal AND S.Hisal",
		Render: func(q *Queries) string { return rel.PrettyPrint(q.SalaryGrades()) },
		Check:  checkSalaryGrades,
	},
	{
		Name:   "avg-salary",
		SQL:    "SELECT DeptNo, AVG(Sal) FROM Emp GROUP BY DeptNo",
		Render: func(q *Queries) string { return rel.PrettyPrint(q.AverageSalaryByDept()) },
		Check:  checkAverageSalaryByDept,
	},
	{
		Name:   "above-dept-avg",
		SQL:    "SELECT E.EName FROM Emp E WHERE E.Sal > (SELECT AVG(Sal) FROM Emp WHERE DeptNo = E.DeptNo)",
		Render: func(q *Queries) string { return rel.PrettyPrint(q.AboveDeptAverage()) },
		Check:  checkAboveDeptAverage,
	},
}

// All returns the scenarios in order.
func All() []Scenario {
	return slices.Clone(scenarios)
}

// Lookup finds a scenario by name.
func Lookup(name string) (Scenario, bool) {
	for _, s := range scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

// Names returns the names of all scenarios.
func Names() []string {
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	return names
}

// VerifyAll runs the check of every scenario and joins their failures.
func VerifyAll(q *Queries) error {
	var errs []error
	for _, s := range scenarios {
		if err := s.Check(q); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name, err))
		}
	}
	return errors.Join(errs...)
}

func checkSalesmen(q *Queries) error {
	r := q.Salesmen()
	if err := r.Err(); err != nil {
		return err
	}
	res := rel.Slice(r)
	if len(res) != 2 {
		return fmt.Errorf("got %d salesmen, want 2", len(res))
	}
	for _, e := range res {
		if e.Job != "SALESMAN" {
			logging.Debug().Object("employee", e).Msg("restrict kept an employee of another job")
			return fmt.Errorf("%s has job %s, want SALESMAN", e.EName, e.Job)
		}
	}
	return nil
}

func checkDept30BySalaryDesc(q *Queries) error {
	r := q.Dept30BySalaryDesc()
	if err := r.Err(); err != nil {
		return err
	}
	res := rel.Slice(r)
	if len(res) != 2 {
		return fmt.Errorf("got %d employees, want 2", len(res))
	}
	if res[0].Sal.LessThan(res[1].Sal) {
		return fmt.Errorf("salaries %v, %v are not in descending order", res[0].Sal, res[1].Sal)
	}
	return nil
}

func checkChicagoEmployees(q *Queries) error {
	r := q.ChicagoEmployees()
	if err := r.Err(); err != nil {
		return err
	}
	for e := range r.Tuples() {
		if e.DeptNo != 30 {
			logging.Debug().Object("employee", e).Msg("semijoin kept an employee outside chicago")
			return fmt.Errorf("%s is in department %d, want 30", e.EName, e.DeptNo)
		}
	}
	return nil
}

func checkNamesAndSalaries(q *Queries) error {
	r := q.NamesAndSalaries()
	if err := r.Err(); err != nil {
		return err
	}
	if n, want := rel.Card(r), rel.Card(q.emps); n != want {
		return fmt.Errorf("got %d tuples, want one per employee (%d)", n, want)
	}
	for t := range r.Tuples() {
		if strings.TrimSpace(t.EName) == "" {
			return errors.New("blank employee name")
		}
		if !t.Sal.IsPositive() {
			return fmt.Errorf("%s has salary %v, want > 0", t.EName, t.Sal)
		}
	}
	return nil
}

func checkEmployeeDepartments(q *Queries) error {
	return contains(q.EmployeeDepartments(), EmpDept{"ALLEN", "SALES"})
}

func checkHeadcountByDept(q *Queries) error {
	return contains(q.HeadcountByDept(), DeptCount{30, 2})
}

func checkCommissions(q *Queries) error {
	r := q.Commissions()
	if err := r.Err(); err != nil {
		return err
	}
	// every tuple has a commission, so every employee with one has a tuple
	want := 0
	for e := range q.emps.Tuples() {
		if e.Comm.IsPresent() {
			want++
		}
	}
	if n := rel.Card(r); n != want {
		return fmt.Errorf("got %d commissions, want %d", n, want)
	}
	return nil
}

func checkSalaryGrades(q *Queries) error {
	return contains(q.SalaryGrades(), NameGrade{"ALLEN", 3})
}

func checkAverageSalaryByDept(q *Queries) error {
	r := q.AverageSalaryByDept()
	if err := r.Err(); err != nil {
		return err
	}
	for t := range r.Tuples() {
		if t.DeptNo == 30 && t.AvgSal.GreaterThan(decimal.NewFromInt(1000)) {
			return nil
		}
	}
	return errors.New("no department 30 with an average salary above 1000")
}

func checkAboveDeptAverage(q *Queries) error {
	return contains(q.AboveDeptAverage(), "ALLEN")
}

// contains checks membership of a comparable tuple, ignoring order.
func contains[T comparable](r rel.Relation[T], want T) error {
	if err := r.Err(); err != nil {
		return err
	}
	for t := range r.Tuples() {
		if t == want {
			return nil
		}
	}
	return fmt.Errorf("result does not contain %+v", want)
}
