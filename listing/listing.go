// Package listing loads human-written SPIR-V instruction listings.
//
// A listing is a YAML document with an optional header mapping and a
// sequence of instructions. Each instruction is a flow sequence holding an
// optional "%N" result id, the mnemonic, and the remaining operands in
// signature order:
//
//	header: {version: 1.3, bound: 8}
//	instructions:
//	  - [Capability, Shader]
//	  - [MemoryModel, Logical, GLSL450]
//	  - ["%1", TypeVoid]
//	  - ["%3", Constant, "%2", !f64 2.5]
//	  - [Switch, "%5", "%6", [1, "%7", 2, "%8"]]
//
// Scalars are interpreted by the slot they land in. Enumerant parameters
// follow their enumerant inline, a nested sequence fills a variadic or
// paired tail, and ~ marks an absent optional operand. Numbers default to
// 32 bits; the tags !i64, !u64, !f32 and !f64 select an explicit width.
package listing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/spvgen/spirv"
)

// Listing is a decoded instruction listing.
type Listing struct {
	Header       spirv.Header
	Instructions []spirv.Instruction
}

// Error reports a listing entry that could not be converted.
type Error struct {
	Entry   int // index into the instructions sequence, -1 for the header
	Operand int // index of the offending item within the entry, -1 if none
	Line    int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	where := "header"
	if e.Entry >= 0 {
		where = fmt.Sprintf("entry %d", e.Entry)
	}
	if e.Operand >= 0 {
		where += fmt.Sprintf(" operand %d", e.Operand)
	}
	if e.Line > 0 {
		where += fmt.Sprintf(" (line %d)", e.Line)
	}
	return "listing: " + where + ": " + e.Message
}

type document struct {
	Header struct {
		Magic     yaml.Node `yaml:"magic"`
		Version   yaml.Node `yaml:"version"`
		Generator yaml.Node `yaml:"generator"`
		Bound     yaml.Node `yaml:"bound"`
		Schema    yaml.Node `yaml:"schema"`
	} `yaml:"header"`
	Instructions []yaml.Node `yaml:"instructions"`
}

// Parse decodes a YAML listing. A missing bound is computed as one past the
// highest id the listing mentions.
func Parse(data []byte) (*Listing, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("listing: %w", err)
	}

	l := &Listing{Header: spirv.NewHeader(spirv.Version1_0, 0)}
	if err := l.parseHeader(&doc); err != nil {
		return nil, err
	}

	var maxID spirv.ID
	for i := range doc.Instructions {
		node := &doc.Instructions[i]
		inst, err := parseInstruction(node)
		if err != nil {
			var le *Error
			if errors.As(err, &le) {
				le.Entry = i
			}
			return nil, err
		}
		maxID = max(maxID, spirv.HighestID(inst.Operands...))
		l.Instructions = append(l.Instructions, inst)
	}

	if doc.Header.Bound.Kind == 0 {
		l.Header.Bound = uint32(maxID) + 1
	}
	return l, nil
}

func (l *Listing) parseHeader(doc *document) error {
	fields := []struct {
		node *yaml.Node
		dst  *uint32
	}{
		{&doc.Header.Magic, &l.Header.Magic},
		{&doc.Header.Generator, &l.Header.Generator},
		{&doc.Header.Bound, &l.Header.Bound},
		{&doc.Header.Schema, &l.Header.Schema},
	}
	for _, f := range fields {
		if f.node.Kind == 0 {
			continue
		}
		v, err := strconv.ParseUint(f.node.Value, 0, 32)
		if err != nil {
			return &Error{Entry: -1, Operand: -1, Line: f.node.Line, Message: fmt.Sprintf("bad header value %q", f.node.Value)}
		}
		*f.dst = uint32(v)
	}

	if n := &doc.Header.Version; n.Kind != 0 {
		w, err := parseVersion(n.Value)
		if err != nil {
			return &Error{Entry: -1, Operand: -1, Line: n.Line, Message: err.Error()}
		}
		l.Header.Version = w
	}
	return nil
}

// parseVersion accepts "major.minor" or a raw header word.
func parseVersion(s string) (uint32, error) {
	if major, minor, ok := strings.Cut(s, "."); ok {
		hi, err1 := strconv.ParseUint(major, 10, 8)
		lo, err2 := strconv.ParseUint(minor, 10, 8)
		if err1 != nil || err2 != nil {
			return 0, fmt.Errorf("bad version %q", s)
		}
		return spirv.Version{Major: uint8(hi), Minor: uint8(lo)}.Word(), nil
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("bad version %q", s)
	}
	return uint32(v), nil
}

// cursor walks the items of one entry. A cursor over a nested tail reports
// every error at the index of the tail itself.
type cursor struct {
	items  []*yaml.Node
	pos    int
	line   int // reported when an operand is missing
	nested bool
	base   int
}

func (c *cursor) done() bool {
	return c.pos >= len(c.items)
}

func (c *cursor) next() *yaml.Node {
	n := c.items[c.pos]
	c.pos++
	return n
}

func (c *cursor) errorf(n *yaml.Node, format string, args ...any) *Error {
	idx := c.pos
	line := c.line
	if n != nil {
		idx--
		line = n.Line
	}
	if c.nested {
		idx = c.base
	}
	return &Error{Operand: idx, Line: line, Message: fmt.Sprintf(format, args...)}
}

func parseInstruction(node *yaml.Node) (spirv.Instruction, error) {
	var items []*yaml.Node
	switch node.Kind {
	case yaml.ScalarNode:
		items = []*yaml.Node{node}
	case yaml.SequenceNode:
		items = node.Content
	default:
		return spirv.Instruction{}, &Error{Operand: -1, Line: node.Line, Message: "instruction must be a sequence"}
	}
	if len(items) == 0 {
		return spirv.Instruction{}, &Error{Operand: -1, Line: node.Line, Message: "empty instruction"}
	}

	c := &cursor{items: items, line: node.Line}
	var result *spirv.ID
	if first := items[0]; first.Kind == yaml.ScalarNode && strings.HasPrefix(first.Value, "%") {
		c.next()
		id, err := parseID(first.Value)
		if err != nil {
			return spirv.Instruction{}, c.errorf(first, "%v", err)
		}
		result = &id
	}
	if c.done() {
		return spirv.Instruction{}, &Error{Operand: -1, Line: node.Line, Message: "missing mnemonic"}
	}

	nameNode := c.next()
	spec, ok := spirv.Lookup(nameNode.Value)
	if !ok {
		return spirv.Instruction{}, c.errorf(nameNode, "unknown instruction %q", nameNode.Value)
	}

	inst := spirv.Instruction{Name: spec.Name}
	for _, p := range spec.Params {
		if p.Kind == spirv.KindIDResult {
			if result == nil {
				return spirv.Instruction{}, &Error{Operand: -1, Line: node.Line,
					Message: fmt.Sprintf("%s defines a result: write it as \"%%N\" before the mnemonic", spec.Mnemonic())}
			}
			inst.Operands = append(inst.Operands, spirv.Ref(*result))
			continue
		}
		op, present, err := c.slot(p)
		if err != nil {
			return spirv.Instruction{}, err
		}
		if present {
			inst.Operands = append(inst.Operands, op)
		}
	}
	if result != nil && !spec.HasResult() {
		return spirv.Instruction{}, &Error{Operand: 0, Line: node.Line,
			Message: fmt.Sprintf("%s has no result id", spec.Mnemonic())}
	}
	if !c.done() {
		extra := c.next()
		return spirv.Instruction{}, c.errorf(extra, "unexpected operand %q", extra.Value)
	}
	return inst, nil
}

// slot converts the items for one signature slot. present is false when an
// optional or variadic slot has nothing left to consume.
func (c *cursor) slot(p spirv.Param) (spirv.Operand, bool, error) {
	switch p.Quant {
	case spirv.Optional:
		if c.done() {
			return spirv.Operand{}, false, nil
		}
		if n := c.items[c.pos]; n.Tag == "!!null" {
			c.next()
			return spirv.None(), true, nil
		}
		op, err := c.single(p)
		if err != nil {
			return spirv.Operand{}, false, err
		}
		return spirv.Opt(op), true, nil

	case spirv.Variadic:
		if c.done() {
			return spirv.Operand{}, false, nil
		}
		tail := c
		if n := c.items[c.pos]; n.Kind == yaml.SequenceNode {
			c.next()
			tail = &cursor{items: n.Content, line: n.Line, nested: true, base: c.pos - 1}
		}
		if p.Kind == spirv.KindPair {
			op, err := tail.pairs(p)
			return op, true, err
		}
		var elems []spirv.Operand
		for !tail.done() {
			op, err := tail.single(p)
			if err != nil {
				return spirv.Operand{}, false, err
			}
			elems = append(elems, op)
		}
		return spirv.List(elems...), true, nil

	default:
		if c.done() {
			return spirv.Operand{}, false, c.errorf(nil, "missing %s operand", p)
		}
		op, err := c.single(p)
		return op, true, err
	}
}

func (c *cursor) pairs(p spirv.Param) (spirv.Operand, error) {
	var out []spirv.Pair
	for !c.done() {
		first, err := c.scalar(p.Pair[0])
		if err != nil {
			return spirv.Operand{}, err
		}
		if c.done() {
			return spirv.Operand{}, c.errorf(nil, "odd number of %s elements", p)
		}
		second, err := c.scalar(p.Pair[1])
		if err != nil {
			return spirv.Operand{}, err
		}
		out = append(out, spirv.P(first, second))
	}
	return spirv.Pairs(out...), nil
}

// single converts one value of the slot's kind, including any enumerant
// parameters that follow it.
func (c *cursor) single(p spirv.Param) (spirv.Operand, error) {
	if p.Kind != spirv.KindEnumerant {
		return c.scalar(p.Kind)
	}
	return c.enumerant(p.Enum)
}

func (c *cursor) enumerant(kind spirv.EnumKind) (spirv.Operand, error) {
	n := c.next()
	if n.Kind != yaml.ScalarNode {
		return spirv.Operand{}, c.errorf(n, "expected %s enumerant", kind)
	}
	v, err := spirv.ParseEnumerant(kind, n.Value)
	if err != nil {
		return spirv.Operand{}, c.errorf(n, "%v", err)
	}
	params, _ := spirv.EnumerantParams(kind, v)
	args := make([]spirv.Operand, 0, len(params))
	for _, param := range params {
		if c.done() {
			return spirv.Operand{}, c.errorf(n, "%s %s is missing its %s parameter", kind, n.Value, param)
		}
		arg, err := c.single(param)
		if err != nil {
			return spirv.Operand{}, err
		}
		args = append(args, arg)
	}
	return spirv.EnumValue(kind, v, args...), nil
}

func (c *cursor) scalar(kind spirv.OperandKind) (spirv.Operand, error) {
	n := c.next()
	if n.Kind != yaml.ScalarNode {
		return spirv.Operand{}, c.errorf(n, "expected a %s scalar", kind)
	}

	switch kind {
	case spirv.KindIDResultType, spirv.KindIDResult, spirv.KindIDRef:
		id, err := parseID(n.Value)
		if err != nil {
			return spirv.Operand{}, c.errorf(n, "%v", err)
		}
		return spirv.Ref(id), nil

	case spirv.KindLiteralString:
		return spirv.Str(n.Value), nil

	case spirv.KindLiteralSpecConstantOpInteger:
		if spec, ok := spirv.Lookup(n.Value); ok {
			return spirv.Lit(uint32(spec.Code)), nil
		}
		return c.integer(n)

	case spirv.KindLiteralContextDependentNumber:
		return c.number(n)

	default:
		return c.integer(n)
	}
}

func (c *cursor) integer(n *yaml.Node) (spirv.Operand, error) {
	if v, err := strconv.ParseUint(n.Value, 0, 32); err == nil {
		return spirv.Lit(uint32(v)), nil
	}
	if v, err := strconv.ParseInt(n.Value, 0, 32); err == nil {
		return spirv.LitInt(int32(v)), nil
	}
	return spirv.Operand{}, c.errorf(n, "bad 32-bit literal %q", n.Value)
}

// number converts a context-dependent literal. The YAML tag picks the width.
func (c *cursor) number(n *yaml.Node) (spirv.Operand, error) {
	switch n.Tag {
	case "!f32", "!f64":
		v, err := parseFloat(n.Value)
		if err != nil {
			return spirv.Operand{}, c.errorf(n, "bad float %q", n.Value)
		}
		if n.Tag == "!f64" {
			return spirv.LitF64(v), nil
		}
		if math.Abs(v) > math.MaxFloat32 && !math.IsInf(v, 0) {
			return spirv.Operand{}, c.errorf(n, "%q overflows a 32-bit float", n.Value)
		}
		return spirv.LitF32(float32(v)), nil
	case "!i64":
		v, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return spirv.Operand{}, c.errorf(n, "bad 64-bit integer %q", n.Value)
		}
		return spirv.LitI64(v), nil
	case "!u64":
		v, err := strconv.ParseUint(n.Value, 0, 64)
		if err != nil {
			return spirv.Operand{}, c.errorf(n, "bad 64-bit integer %q", n.Value)
		}
		return spirv.LitU64(v), nil
	case "!!float":
		v, err := parseFloat(n.Value)
		if err != nil {
			return spirv.Operand{}, c.errorf(n, "bad float %q", n.Value)
		}
		return spirv.LitF32(float32(v)), nil
	}
	if op, err := c.integer(n); err == nil {
		return op, nil
	}
	// Too wide for one word: promote to a 64-bit literal.
	if v, err := strconv.ParseUint(n.Value, 0, 64); err == nil {
		return spirv.LitU64(v), nil
	}
	if v, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
		return spirv.LitI64(v), nil
	}
	return spirv.Operand{}, c.errorf(n, "bad number %q", n.Value)
}

// parseFloat understands the YAML spellings of infinity and NaN.
func parseFloat(s string) (float64, error) {
	switch strings.ToLower(s) {
	case ".inf", "+.inf":
		return math.Inf(1), nil
	case "-.inf":
		return math.Inf(-1), nil
	case ".nan":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseID(s string) (spirv.ID, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "%"), 10, 32)
	if err != nil || !strings.HasPrefix(s, "%") {
		return 0, fmt.Errorf("bad id %q: want %%N", s)
	}
	return spirv.ID(v), nil
}
