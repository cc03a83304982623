package commands

import (
	"context"
	"fmt"

	command "github.com/goliatone/go-command"
	goerrors "github.com/goliatone/go-errors"
)

const (
	commandValidationCode   = "COMMAND_VALIDATION_FAILED"
	commandContextCanceled  = "COMMAND_CONTEXT_CANCELED"
	commandContextTimeout   = "COMMAND_CONTEXT_TIMEOUT"
	commandContextErrorCode = "COMMAND_CONTEXT_ERROR"
	commandExecuteFailed    = "COMMAND_EXECUTION_FAILED"
)

// describe names the failing command in wrap messages, preferring the
// configured operation over the raw message type.
func (h *Handler[T]) describe(msg T) string {
	if h.operation != "" {
		return h.operation
	}
	if msgType := command.GetMessageType(msg); msgType != "" {
		return msgType
	}
	return "command"
}

func (h *Handler[T]) wrapValidation(msg T, err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation,
		fmt.Sprintf("%s: message validation failed", h.describe(msg))).
		WithTextCode(commandValidationCode)
}

func (h *Handler[T]) wrapContext(msg T, err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch err {
	case context.Canceled:
		return goerrors.Wrap(err, goerrors.CategoryCommand,
			fmt.Sprintf("%s: cancelled", h.describe(msg))).
			WithTextCode(commandContextCanceled)
	case context.DeadlineExceeded:
		reason := fmt.Sprintf("%s: deadline exceeded", h.describe(msg))
		if h.timeout > 0 {
			reason += " after " + h.timeout.String()
		}
		return goerrors.Wrap(err, goerrors.CategoryCommand, reason).
			WithTextCode(commandContextTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand,
			fmt.Sprintf("%s: context error", h.describe(msg))).
			WithTextCode(commandContextErrorCode)
	}
}

func (h *Handler[T]) wrapExecute(msg T, err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand,
		fmt.Sprintf("%s: execution failed", h.describe(msg))).
		WithTextCode(commandExecuteFailed)
}
