package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// FormatForCLI formats an error for CLI output.
// Uses a concise format suitable for terminal display.
func FormatForCLI(err error) string {
	if err == nil {
		return ""
	}

	me := asMaamarim(err)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Error: %s\n", me.Message))

	if me.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  Hint: %s\n", me.Suggestion))
	}

	sb.WriteString(fmt.Sprintf("  Code: %s\n", me.Code))

	return sb.String()
}

// FormatForLog formats an error for structured logging.
// Returns key-value pairs suitable for slog attributes.
func FormatForLog(err error) map[string]any {
	if err == nil {
		return nil
	}

	var me *MaamarimError
	if !stderrors.As(err, &me) {
		return map[string]any{
			"error": err.Error(),
		}
	}

	result := map[string]any{
		"error_code": me.Code,
		"message":    me.Message,
		"category":   string(me.Category),
		"severity":   string(me.Severity),
	}

	if me.Cause != nil {
		result["cause"] = me.Cause.Error()
	}
	if me.Suggestion != "" {
		result["suggestion"] = me.Suggestion
	}
	for k, v := range me.Details {
		result["detail_"+k] = v
	}

	return result
}
