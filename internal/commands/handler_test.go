package commands

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

type noopMessage struct {
	invalid bool
}

func (noopMessage) Type() string { return "sitegen.test.noop" }

func (m noopMessage) Validate() error {
	if m.invalid {
		return errors.New("invalid")
	}
	return nil
}

func TestHandlerExecutesWrappedFunction(t *testing.T) {
	ran := false
	h := NewHandler(func(ctx context.Context, msg noopMessage) error {
		ran = true
		return nil
	})

	if err := h.Execute(context.Background(), noopMessage{}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !ran {
		t.Fatalf("wrapped function did not run")
	}
}

func TestHandlerWrapsValidationFailures(t *testing.T) {
	h := NewHandler(func(ctx context.Context, msg noopMessage) error {
		t.Fatalf("exec must not run for invalid messages")
		return nil
	})

	err := h.Execute(context.Background(), noopMessage{invalid: true})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !goerrors.HasCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if !strings.Contains(err.Error(), "sitegen.test.noop") {
		t.Fatalf("wrap message should name the command, got %v", err)
	}
}

func TestHandlerWrapMessagesPreferOperation(t *testing.T) {
	execErr := errors.New("boom")
	h := NewHandler(func(ctx context.Context, msg noopMessage) error {
		return execErr
	}, WithOperation[noopMessage]("site.generate"))

	err := h.Execute(context.Background(), noopMessage{})
	if err == nil {
		t.Fatalf("expected execution error")
	}
	if !strings.Contains(err.Error(), "site.generate") {
		t.Fatalf("wrap message should carry the operation, got %v", err)
	}
}

func TestHandlerWrapsExecutionFailures(t *testing.T) {
	execErr := errors.New("boom")
	h := NewHandler(func(ctx context.Context, msg noopMessage) error {
		return execErr
	})

	err := h.Execute(context.Background(), noopMessage{})
	if err == nil {
		t.Fatalf("expected execution error")
	}
	if !goerrors.HasCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if !errors.Is(err, execErr) {
		t.Fatalf("wrapped error should preserve the cause")
	}
}

func TestHandlerEnforcesTimeout(t *testing.T) {
	h := NewHandler(func(ctx context.Context, msg noopMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
			return nil
		}
	}, WithTimeout[noopMessage](10*time.Millisecond))

	err := h.Execute(context.Background(), noopMessage{})
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if !goerrors.HasCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestGenerateSiteCommandValidation(t *testing.T) {
	msg := GenerateSiteCommand{}
	if err := msg.Validate(); err == nil {
		t.Fatalf("missing profile should fail validation")
	}

	msg.Workers = -1
	if err := msg.Validate(); err == nil {
		t.Fatalf("negative workers should fail validation")
	}
}
