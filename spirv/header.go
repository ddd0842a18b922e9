package spirv

import (
	"fmt"
	"strings"
)

// headerState is the one-shot module metadata shared by every encoder.
// Both representations go through it, so protocol errors are identical.
type headerState struct {
	header Header
	set    bool
}

func (h *headerState) add(magic, version, generator, bound, schema uint32) error {
	if h.set {
		return NewError(ErrInvalidUsage, "module metadata already set")
	}
	h.header = Header{
		Magic:     magic,
		Version:   version,
		Generator: generator,
		Bound:     bound,
		Schema:    schema,
	}
	h.set = true
	return nil
}

func (h *headerState) setBound(bound uint32) error {
	if !h.set {
		return NewError(ErrInvalidUsage, "bound set before module metadata")
	}
	h.header.Bound = bound
	return nil
}

func (h *headerState) get() (Header, error) {
	if !h.set {
		return Header{}, NewError(ErrInvalidUsage, "module metadata never set")
	}
	return h.header, nil
}

// Comment renders the header as the comment lines that open a text module.
func (h Header) Comment() string {
	var b strings.Builder
	fmt.Fprintf(&b, "; Magic: 0x%08x\n", h.Magic)
	fmt.Fprintf(&b, "; Version: %s\n", VersionFromWord(h.Version))
	fmt.Fprintf(&b, "; Generator: 0x%08x\n", h.Generator)
	fmt.Fprintf(&b, "; Bound: %d\n", h.Bound)
	fmt.Fprintf(&b, "; Schema: %d\n", h.Schema)
	return b.String()
}
