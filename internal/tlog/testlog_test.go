package tlog_test

import (
	stderrs "errors"
	"testing"

	"github.com/sirkon/errors"

	"github.com/sirkon/dllist/internal/tlog"
)

func TestLogging(t *testing.T) {
	t.Run("log-std-error", func(t *testing.T) {
		tlog.Log(t, stderrs.New("not an error"))
	})

	t.Run("log-ctxed-error", func(t *testing.T) {
		tlog.Log(t, errors.New("ctx error").Int("index", 12).Int("size", 3).Str("op", "insert"))
	})

	t.Run("context", func(t *testing.T) {
		ctx := tlog.Context(errors.Wrap(errors.New("inner").Int("index", 1), "outer").Int("size", 3))
		if ctx["index"] != 1 || ctx["size"] != 3 {
			t.Errorf("unexpected context %v", ctx)
		}
		if len(tlog.Context(stderrs.New("plain"))) != 0 {
			t.Error("plain error must have no context")
		}
	})

	t.Run("check-nil", func(t *testing.T) {
		if tlog.Check(t, nil) {
			t.Error("nil error must not be reported")
		}
	})
}
