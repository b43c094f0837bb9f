package domainfn_test

import (
	"context"
	"testing"

	"github.com/fnlab/domainfn"
	"github.com/fnlab/domainfn/pkg/log"
)

type recordingLogger struct {
	debugs, warns int
}

func (l *recordingLogger) Debug(string, ...log.Field) { l.debugs++ }

func (l *recordingLogger) Info(string, ...log.Field) {}

func (l *recordingLogger) Warn(string, ...log.Field) { l.warns++ }

func (l *recordingLogger) Error(string, ...log.Field) {}

func TestObserveLogsOutcome(t *testing.T) {
	logger := &recordingLogger{}

	ok := domainfn.Observe(succeedWith("fine"), logger, "ok")
	if r := ok(context.Background(), nil, nil); !r.Success {
		t.Fatalf("expected success, got %+v", r)
	}
	if logger.debugs != 1 || logger.warns != 0 {
		t.Fatalf("expected one debug line, got %+v", logger)
	}

	bad := domainfn.Observe(failWithInputError("bad", "x"), logger, "bad")
	if r := bad(context.Background(), nil, nil); r.Success {
		t.Fatal("expected failure")
	}
	if logger.warns != 1 {
		t.Fatalf("expected one warn line, got %+v", logger)
	}
}

func TestObserveNilLoggerIsTransparent(t *testing.T) {
	df := domainfn.Observe(succeedWith(1), nil, "noop")
	if r := df(context.Background(), nil, nil); !r.Success {
		t.Fatalf("expected passthrough, got %+v", r)
	}
}
