package core

// ValidationResult reports whether a buffer is ready for submission.
type ValidationResult int

const (
	// ValidationComplete lets the submit go through.
	ValidationComplete ValidationResult = iota
	// ValidationIncomplete turns the submit into a newline insertion
	// (multi-line continuation).
	ValidationIncomplete
)

// Validator decides whether the buffer is a finished input. It is the sole
// gate on when a submit produces a Signal.
type Validator interface {
	Validate(line string) ValidationResult
}

// DefaultValidator treats a line as incomplete while brackets or quotes
// remain unbalanced.
type DefaultValidator struct{}

func (DefaultValidator) Validate(line string) ValidationResult {
	var stack []rune
	var quote rune

	for _, r := range line {
		if quote != 0 {
			if r == quote {
				quote = 0
			}
			continue
		}
		switch r {
		case '"', '\'', '`':
			quote = r
		case '(', '[', '{':
			stack = append(stack, r)
		case ')', ']', '}':
			if len(stack) == 0 {
				// Unbalanced closers are the caller's problem, not a
				// continuation.
				continue
			}
			open := stack[len(stack)-1]
			if (r == ')' && open == '(') || (r == ']' && open == '[') || (r == '}' && open == '{') {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) > 0 || quote != 0 {
		return ValidationIncomplete
	}
	return ValidationComplete
}
