package main

import (
	"errors"

	"github.com/alexisbeaulieu97/reliefpage/internal/domain/page"
	relieferrors "github.com/alexisbeaulieu97/reliefpage/pkg/errors"
)

func newCommandError(command, action string, cause error, suggestion string) error {
	return relieferrors.NewCommandError(command, action, cause, suggestion)
}

// contentSuggestion picks a remediation hint for a content loading failure.
func contentSuggestion(err error) string {
	switch page.CodeOf(err) {
	case page.ErrCodeNotFound:
		return "Check the --content path, or omit it to use the built-in page."
	case page.ErrCodeValidation, page.ErrCodeMissing:
		return "Run 'reliefpage validate <file>' to see which field is invalid."
	case page.ErrCodeCancelled:
		return "The command was interrupted; run it again."
	}
	var cmdErr *relieferrors.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Suggestion != "" {
		return cmdErr.Suggestion
	}
	return "Re-run with --verbose for details."
}
