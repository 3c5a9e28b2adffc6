package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to wrapped command errors so hosts can branch on
// failure class without string matching.
const (
	codeMessageInvalid  = "ENGINE_COMMAND_MESSAGE_INVALID"
	codeCanceled        = "ENGINE_COMMAND_CANCELED"
	codeTimedOut        = "ENGINE_COMMAND_TIMED_OUT"
	codeContextFailed   = "ENGINE_COMMAND_CONTEXT_FAILED"
	codeExecutionFailed = "ENGINE_COMMAND_EXECUTION_FAILED"
)

func wrapValidationError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command message rejected").
		WithTextCode(codeMessageInvalid)
}

func wrapContextError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}

	category := goerrors.CategoryCommand
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, category, "command canceled").
			WithTextCode(codeCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, category, "command timed out").
			WithTextCode(codeTimedOut)
	default:
		return goerrors.Wrap(err, category, "command context failed").
			WithTextCode(codeContextFailed)
	}
}

func wrapExecuteError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
		WithTextCode(codeExecutionFailed)
}
