package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateSceneName validates a scene name for safety and correctness.
// It rejects names that could be used for path traversal or injection attacks.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateSceneName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidScene, "scene name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidScene, "scene name too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidScene, "scene name contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidScene, "scene name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateFormat validates an output format name.
func ValidateFormat(format string) error {
	switch format {
	case "svg", "json":
		return nil
	case "":
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	default:
		return New(ErrCodeInvalidFormat, "unsupported format %q (supported: svg, json)", format)
	}
}

// cssColorRegex matches hex colors and simple CSS identifiers.
var cssColorRegex = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|#[0-9a-fA-F]{8}|[a-zA-Z][a-zA-Z-]*)$`)

// ValidateColor validates a decoration color: a hex value or a CSS color
// keyword. Full CSS color parsing is left to the rendering side.
func ValidateColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidStyle, "color cannot be empty")
	}
	if !cssColorRegex.MatchString(color) {
		return New(ErrCodeInvalidStyle, "invalid color: %q", color)
	}
	return nil
}

// ValidatePath validates a file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Must not be absolute path
	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
