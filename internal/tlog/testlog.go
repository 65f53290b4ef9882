// Package tlog вывод ошибок со структурированным контекстом в тестах.
package tlog

import (
	"fmt"
	"strings"

	"github.com/sirkon/errors"
)

const (
	bold  = "\033[1m"
	red   = "\033[1;31m"
	reset = "\033[0m"
)

// TestingPrinter подмножество методов *testing.T нужное для вывода.
type TestingPrinter interface {
	Helper()
	Log(a ...any)
	Error(a ...any)
}

// Log вывод ошибки без провала теста.
func Log(t TestingPrinter, err error) {
	t.Helper()
	t.Log(render(err, bold))
}

// Error вывод ошибки с провалом теста.
func Error(t TestingPrinter, err error) {
	t.Helper()
	t.Error(render(err, red))
}

// Check ничего не делает и возвращает false для nil.
// Иначе проваливает тест с выводом ошибки и возвращает true.
func Check(t TestingPrinter, err error) bool {
	if err == nil {
		return false
	}

	t.Helper()
	t.Error(render(err, red))
	return true
}

// Context контекст ошибки по именам. Для повторяющихся имён остаётся последнее значение.
func Context(err error) map[string]any {
	res := map[string]any{}
	d := errors.GetContextDeliverer(err)
	if d == nil {
		return res
	}

	var c contextCollector
	d.Deliver(&c)
	for _, v := range c.vars {
		res[v.name] = v.value
	}

	return res
}

func render(err error, highlight string) string {
	if err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(highlight)
	b.WriteString(err.Error())
	b.WriteString(reset)
	b.WriteByte('\n')

	d := errors.GetContextDeliverer(err)
	if d == nil {
		return b.String()
	}

	var c contextCollector
	d.Deliver(&c)

	var width int
	for _, v := range c.vars {
		width = max(width, len(v.name))
	}

	for _, v := range c.vars {
		_, _ = fmt.Fprintf(&b, "    %s%s%s: %s%v\n", bold, v.name, reset, strings.Repeat(" ", width-len(v.name)), v.value)
	}

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
