package app

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/bft-labs/hexport/internal/domain"
)

func johnDoe() domain.User {
	return domain.User{
		Name:        "John Doe",
		Email:       "john.doe@mail.com",
		DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestExportUser_CallsExporterOnceWithUnchangedUser(t *testing.T) {
	for _, format := range []string{"csv", "pdf"} {
		t.Run(format, func(t *testing.T) {
			exp := &fakeExporter{format: format}
			uc := NewExportUser(exp)

			if err := uc.Execute(context.Background(), johnDoe()); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if len(exp.users) != 1 {
				t.Fatalf("exporter called %d times, want 1", len(exp.users))
			}
			if exp.users[0] != johnDoe() {
				t.Errorf("exporter got %+v, want %+v", exp.users[0], johnDoe())
			}
		})
	}
}

func TestExportUser_ExporterErrorPassesThrough(t *testing.T) {
	exp := &fakeExporter{format: "csv", err: io.ErrShortWrite}
	logger := &recordingLogger{}
	uc := NewExportUser(exp, WithLogger(logger))

	err := uc.Execute(context.Background(), johnDoe())

	var ee *domain.ExportError
	if !errors.As(err, &ee) {
		t.Fatalf("error = %v, want *domain.ExportError", err)
	}
	if ee.Format != "csv" || !errors.Is(err, io.ErrShortWrite) {
		t.Errorf("ExportError = %+v, want csv wrapping short write", ee)
	}
	if len(exp.users) != 1 {
		t.Errorf("exporter called %d times, want 1 (no retries)", len(exp.users))
	}
	if msgs := logger.Messages(); len(msgs) != 1 || msgs[0] != "export failed" {
		t.Errorf("logged %v, want [export failed]", msgs)
	}
}

func TestWithLogger_NilKeepsDefault(t *testing.T) {
	uc := NewExportUser(&fakeExporter{}, WithLogger(nil))
	if uc.logger == nil {
		t.Fatal("logger is nil after WithLogger(nil)")
	}
	if err := uc.Execute(context.Background(), johnDoe()); err != nil {
		t.Errorf("Execute() error = %v", err)
	}
}
