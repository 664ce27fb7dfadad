// Package scenario holds ten canonical queries over the employee database,
// each written as a composition of relational operators, and the checks
// which verify their results.
package scenario

import (
	"iter"

	"github.com/shopspring/decimal"

	rel "github.com/DimkaBraginskiy/apbd15-tut05"
	"github.com/DimkaBraginskiy/apbd15-tut05/att"
	"github.com/DimkaBraginskiy/apbd15-tut05/empdept"
	"github.com/DimkaBraginskiy/apbd15-tut05/opt"
)

// Queries runs the scenario queries against one dataset.
type Queries struct {
	emps   rel.Relation[empdept.Employee]
	depts  rel.Relation[empdept.Department]
	grades rel.Relation[empdept.SalaryGrade]
}

// New returns the queries over a dataset.
func New(d *empdept.Dataset) *Queries {
	emps, depts, grades := d.Relations()
	return &Queries{emps, depts, grades}
}

// NameSal is the projection {EName, Sal} of an employee.
type NameSal struct {
	EName string
	Sal   decimal.Decimal
}

// EmpDept pairs an employee with the name of their department.
type EmpDept struct {
	EName string
	DName string
}

// DeptCount is the number of employees of a department.
type DeptCount struct {
	DeptNo int
	Count  int
}

// NameComm is an employee with a commission.
type NameComm struct {
	EName string
	Comm  decimal.Decimal
}

// NameGrade is an employee with their salary grade.
type NameGrade struct {
	EName string
	Grade int
}

// DeptAvg is the average salary of a department.
type DeptAvg struct {
	DeptNo int
	AvgSal decimal.Decimal
}

// gradedEmp is an employee paired with any salary grade, before the range
// restriction.
type gradedEmp struct {
	EName string
	Sal   decimal.Decimal
	Grade int
	Losal decimal.Decimal
	Hisal decimal.Decimal
}

func empDeptNo(e empdept.Employee) int { return e.DeptNo }

func deptDeptNo(d empdept.Department) int { return d.DeptNo }

func empSal(e empdept.Employee) decimal.Decimal { return e.Sal }

// Salesmen is
//
//	SELECT * FROM Emp WHERE Job = 'SALESMAN'
func (q *Queries) Salesmen() rel.Relation[empdept.Employee] {
	return rel.Restrict(q.emps, att.Attribute("Job").EQ("SALESMAN"))
}

// Dept30BySalaryDesc is
//
//	SELECT * FROM Emp WHERE DeptNo = 30 ORDER BY Sal DESC
func (q *Queries) Dept30BySalaryDesc() rel.Relation[empdept.Employee] {
	return rel.OrderBy(rel.Restrict(q.emps, att.Attribute("DeptNo").EQ(30)), "Sal", true)
}

// ChicagoEmployees is
//
//	SELECT * FROM Emp WHERE DeptNo IN (SELECT DeptNo FROM Dept WHERE Loc = 'CHICAGO')
func (q *Queries) ChicagoEmployees() rel.Relation[empdept.Employee] {
	chicago := rel.Restrict(q.depts, att.Attribute("Loc").EQ("CHICAGO"))
	return rel.SemiJoin(q.emps, chicago, empDeptNo, deptDeptNo)
}

// NamesAndSalaries is
//
//	SELECT EName, Sal FROM Emp
func (q *Queries) NamesAndSalaries() rel.Relation[NameSal] {
	return rel.Project[NameSal](q.emps)
}

// EmployeeDepartments is
//
//	SELECT E.EName, D.DName FROM Emp E JOIN Dept D ON E.DeptNo = D.DeptNo
func (q *Queries) EmployeeDepartments() rel.Relation[EmpDept] {
	return rel.Join(q.emps, q.depts, empDeptNo, deptDeptNo, func(e empdept.Employee, d empdept.Department) EmpDept {
		return EmpDept{e.EName, d.DName}
	})
}

// HeadcountByDept is
//
//	SELECT DeptNo, COUNT(*) FROM Emp GROUP BY DeptNo
func (q *Queries) HeadcountByDept() rel.Relation[DeptCount] {
	return rel.Map(rel.GroupBy(q.emps, empDeptNo), func(g rel.Group[int, empdept.Employee]) DeptCount {
		return DeptCount{g.Key, g.Count()}
	})
}

// Commissions is
//
//	SELECT EName, Comm FROM Emp WHERE Comm IS NOT NULL
//
// An employee without a commission expands to no tuples.
func (q *Queries) Commissions() rel.Relation[NameComm] {
	return rel.Flatten(q.emps, func(e empdept.Employee) iter.Seq[NameComm] {
		return opt.Map(e.Comm, func(c decimal.Decimal) NameComm {
			return NameComm{e.EName, c}
		}).All()
	})
}

// SalaryGrades is
//
//	SELECT E.EName, S.Grade FROM Emp E JOIN Salgrade S ON E.Sal BETWEEN S.Losal AND S.Hisal
func (q *Queries) SalaryGrades() rel.Relation[NameGrade] {
	pairs := rel.CrossJoin(q.emps, q.grades, func(e empdept.Employee, g empdept.SalaryGrade) gradedEmp {
		return gradedEmp{e.EName, e.Sal, g.Grade, g.Losal, g.Hisal}
	})
	inRange := rel.Restrict(pairs, att.Attribute("Sal").Between(att.Attribute("Losal"), att.Attribute("Hisal")))
	return rel.Project[NameGrade](inRange)
}

// AverageSalaryByDept is
//
//	SELECT DeptNo, AVG(Sal) FROM Emp GROUP BY DeptNo
func (q *Queries) AverageSalaryByDept() rel.Relation[DeptAvg] {
	return rel.Map(rel.GroupBy(q.emps, empDeptNo), func(g rel.Group[int, empdept.Employee]) DeptAvg {
		// groups always have at least one member
		avg, _ := g.Average(empSal)
		return DeptAvg{g.Key, avg}
	})
}

// AboveDeptAverage is
//
//	SELECT E.EName FROM Emp E WHERE E.Sal > (SELECT AVG(Sal) FROM Emp WHERE DeptNo = E.DeptNo)
func (q *Queries) AboveDeptAverage() rel.Relation[string] {
	above := rel.RestrictCorrelated(q.emps, q.emps,
		func(e, e2 empdept.Employee) bool { return e.DeptNo == e2.DeptNo },
		func(r rel.Relation[empdept.Employee]) (decimal.Decimal, error) { return rel.Average(r, empSal) },
		func(e empdept.Employee, avg decimal.Decimal) bool { return e.Sal.GreaterThan(avg) },
	)
	return rel.Map(above, func(e empdept.Employee) string { return e.EName })
}
