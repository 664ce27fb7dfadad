package empdept

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/DimkaBraginskiy/apbd15-tut05/opt"
)

func TestMarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := Employee{7499, "ALLEN", "SALESMAN", 30, decimal.NewFromInt(1600), opt.Some(decimal.NewFromInt(300))}
	log.Log().Object("employee", e).Send()
	require.JSONEq(t, `{"employee":{"empno":7499,"ename":"ALLEN","deptno":30,"sal":"1600"}}`, buf.String())

	buf.Reset()
	log.Log().Object("department", Department{30, "SALES", "CHICAGO"}).Send()
	require.JSONEq(t, `{"department":{"deptno":30,"dname":"SALES","loc":"CHICAGO"}}`, buf.String())

	buf.Reset()
	g := SalaryGrade{3, decimal.NewFromInt(1401), decimal.NewFromInt(2000)}
	log.Log().Object("grade", g).Send()
	require.JSONEq(t, `{"grade":{"grade":3,"losal":"1401","hisal":"2000"}}`, buf.String())
}
