package dumpfmt

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a line that did not match its expected shape. The
// dump is produced by a single trusted kernel writer, so a mismatch is
// format drift and aborts the decode rather than being skipped.
type ParseError struct {
	What string // expected shape, e.g. "size: <uint>"
	Line string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dumpfmt: parse error scanning %q: expected %q", strings.TrimRight(e.Line, "\n"), e.What)
}

// fieldText extracts the value text for "key:" from an indented line,
// tolerating a leading "- " list marker.
func fieldText(line, key string) (string, bool) {
	s := strings.TrimLeft(line, " ")
	s = strings.TrimPrefix(s, "- ")
	rest, ok := strings.CutPrefix(s, key+":")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// UintField parses a decimal "key: <uint>" line.
func UintField(line, key string) (uint64, error) {
	text, ok := fieldText(line, key)
	if ok {
		if v, err := strconv.ParseUint(text, 10, 64); err == nil {
			return v, nil
		}
	}
	return 0, &ParseError{What: key + ": <uint>", Line: line}
}

// IntField parses a decimal "key: <int>" line.
func IntField(line, key string) (int, error) {
	text, ok := fieldText(line, key)
	if ok {
		if v, err := strconv.Atoi(text); err == nil {
			return v, nil
		}
	}
	return 0, &ParseError{What: key + ": <int>", Line: line}
}

// HexField parses a hexadecimal "key: <hex>" line, with or without a 0x
// prefix.
func HexField(line, key string) (uint64, error) {
	text, ok := fieldText(line, key)
	if ok {
		t := strings.TrimPrefix(text, "0x")
		if v, err := strconv.ParseUint(t, 16, 64); err == nil && t != "" {
			return v, nil
		}
	}
	return 0, &ParseError{What: key + ": <hex>", Line: line}
}

// StringField parses a "key: <string>" line, returning the first
// whitespace-delimited token of the value.
func StringField(line, key string) (string, error) {
	text, ok := fieldText(line, key)
	if ok && text != "" {
		return strings.Fields(text)[0], nil
	}
	return "", &ParseError{What: key + ": <string>", Line: line}
}

// RegLine parses a "- { offset: <hex>, value: <hex> }" register line.
func RegLine(line string) (offset, value uint32, err error) {
	fail := func() (uint32, uint32, error) {
		return 0, 0, &ParseError{What: "- { offset: <hex>, value: <hex> }", Line: line}
	}
	s := strings.TrimLeft(line, " ")
	s = strings.TrimPrefix(s, "- ")
	s, ok := strings.CutPrefix(s, "{")
	if !ok {
		return fail()
	}
	s, ok = strings.CutSuffix(strings.TrimRight(s, " \n"), "}")
	if !ok {
		return fail()
	}
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return fail()
	}
	off, err := HexField(parts[0], "offset")
	if err != nil {
		return fail()
	}
	val, err := HexField(parts[1], "value")
	if err != nil {
		return fail()
	}
	return uint32(off), uint32(val), nil
}
