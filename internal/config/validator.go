package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "tui.mouse_mode")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidMouseModes returns the list of valid tui.mouse_mode values
func ValidMouseModes() []string {
	return []string{"cell_motion", "all_motion"}
}

// ValidDismissButtons returns the list of valid attention.dismiss_buttons entries
func ValidDismissButtons() []string {
	return []string{"left", "middle", "right"}
}

// ValidWidgets returns the names of the demo widgets, in default order
func ValidWidgets() []string {
	return []string{"delete", "archive", "rename", "share", "help"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateAttention()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateAttention() []ValidationError {
	var errors []ValidationError

	if len(c.Attention.DismissButtons) == 0 {
		errors = append(errors, ValidationError{
			Field:   "attention.dismiss_buttons",
			Value:   c.Attention.DismissButtons,
			Message: "must list at least one button",
		})
	}

	for i, name := range c.Attention.DismissButtons {
		if !slices.Contains(ValidDismissButtons(), strings.ToLower(name)) {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("attention.dismiss_buttons[%d]", i),
				Value:   name,
				Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidDismissButtons(), ", ")),
			})
		}
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidMouseModes(), c.TUI.MouseMode) {
		errors = append(errors, ValidationError{
			Field:   "tui.mouse_mode",
			Value:   c.TUI.MouseMode,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidMouseModes(), ", ")),
		})
	}

	seen := make(map[string]bool)
	for i, name := range c.TUI.Widgets {
		field := fmt.Sprintf("tui.widgets[%d]", i)
		if !slices.Contains(ValidWidgets(), name) {
			errors = append(errors, ValidationError{
				Field:   field,
				Value:   name,
				Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidWidgets(), ", ")),
			})
			continue
		}
		if seen[name] {
			errors = append(errors, ValidationError{
				Field:   field,
				Value:   name,
				Message: "duplicate widget",
			})
		}
		seen[name] = true
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
