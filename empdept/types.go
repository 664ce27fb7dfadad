// Package empdept holds the employee / department / salary grade sample
// database that the scenario queries run against.
package empdept

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/DimkaBraginskiy/apbd15-tut05/opt"
)

// Employee is a row of EMP.  DeptNo refers to a Department by value; it is
// not enforced.
type Employee struct {
	EmpNo  int                         `yaml:"empno"`
	EName  string                      `yaml:"ename"`
	Job    string                      `yaml:"job"`
	DeptNo int                         `yaml:"deptno"`
	Sal    decimal.Decimal             `yaml:"sal"`
	Comm   opt.Option[decimal.Decimal] `yaml:"comm"`
}

func (e Employee) MarshalZerologObject(ev *zerolog.Event) {
	ev.Int("empno", e.EmpNo).Str("ename", e.EName).Int("deptno", e.DeptNo).Stringer("sal", e.Sal)
}

// Department is a row of DEPT, keyed by DeptNo.
type Department struct {
	DeptNo int    `yaml:"deptno"`
	DName  string `yaml:"dname"`
	Loc    string `yaml:"loc"`
}

func (d Department) MarshalZerologObject(ev *zerolog.Event) {
	ev.Int("deptno", d.DeptNo).Str("dname", d.DName).Str("loc", d.Loc)
}

// SalaryGrade is a row of SALGRADE.  A salary s has the grade when
// Losal <= s <= Hisal.
type SalaryGrade struct {
	Grade int             `yaml:"grade"`
	Losal decimal.Decimal `yaml:"losal"`
	Hisal decimal.Decimal `yaml:"hisal"`
}

func (g SalaryGrade) MarshalZerologObject(ev *zerolog.Event) {
	ev.Int("grade", g.Grade).Stringer("losal", g.Losal).Stringer("hisal", g.Hisal)
}
