package spirv

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind categorizes encoder errors.
type ErrorKind uint8

const (
	// ErrEncoding indicates an operand could not be converted to words.
	ErrEncoding ErrorKind = iota

	// ErrInstructionTooLarge indicates the word count overflows its 16-bit field.
	ErrInstructionTooLarge

	// ErrInvalidUsage indicates an encoder call made out of protocol order.
	ErrInvalidUsage

	// ErrUnknownInstruction indicates a name or opcode missing from the table.
	ErrUnknownInstruction

	// ErrMalformedModule indicates a binary module the decoder cannot parse.
	ErrMalformedModule
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrEncoding:
		return "EncodingError"
	case ErrInstructionTooLarge:
		return "InstructionTooLarge"
	case ErrInvalidUsage:
		return "InvalidUsage"
	case ErrUnknownInstruction:
		return "UnknownInstruction"
	case ErrMalformedModule:
		return "MalformedModule"
	default:
		return "Unknown"
	}
}

// Error represents a failed encoder or decoder operation.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Op is the instruction mnemonic, empty for protocol errors.
	Op string

	// Operand is the index of the failing operand, or -1.
	Operand int

	// Offset is the word offset inside a decoded module, or -1.
	Offset int

	// Message provides details about the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("spirv ")
	b.WriteString(e.Kind.String())
	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
	}
	if e.Operand >= 0 {
		fmt.Fprintf(&b, " operand %d", e.Operand)
	}
	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at word %d", e.Offset)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// NewError creates a new error that is not tied to an instruction.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{
		Kind:    kind,
		Operand: -1,
		Offset:  -1,
		Message: message,
	}
}

func operandError(kind ErrorKind, op string, operand int, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Op:      op,
		Operand: operand,
		Offset:  -1,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsEncoding returns true if the error is ErrEncoding.
func (e *Error) IsEncoding() bool {
	return e.Kind == ErrEncoding
}

// IsInstructionTooLarge returns true if the error is ErrInstructionTooLarge.
func (e *Error) IsInstructionTooLarge() bool {
	return e.Kind == ErrInstructionTooLarge
}

// IsInvalidUsage returns true if the error is ErrInvalidUsage.
func (e *Error) IsInvalidUsage() bool {
	return e.Kind == ErrInvalidUsage
}

// KindOf extracts the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
