package inference

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hupe1980/nilfacts/model"
)

// RecordKind identifies what a store record encodes.
type RecordKind int

const (
	// ReturnRecord is a counter for an inferred-nullable procedure return.
	ReturnRecord RecordKind = iota
	// ParameterRecord is a per-parameter bit-vector for a procedure.
	ParameterRecord
	// FieldRecord is a counter for an inferred-nullable field.
	FieldRecord
)

var recordKindStrings = []string{"return", "parameters", "field"}

func (k RecordKind) String() string { return recordKindStrings[k] }

const (
	retSuffix   = ".ret"
	argSuffix   = ".arg"
	fieldSuffix = ".field"
)

func returnKey(proc model.ProcedureID) string {
	return url.QueryEscape(string(proc)) + retSuffix
}

func paramKey(proc model.ProcedureID) string {
	return url.QueryEscape(string(proc)) + argSuffix
}

func fieldKey(field model.FieldID) string {
	return url.QueryEscape(string(field)) + fieldSuffix
}

// DecodeKey splits a record file name into the identifier it was created
// from and its record kind. It is the inverse of the key encoding and is
// used by tooling that walks a store directory.
func DecodeKey(key string) (string, RecordKind, error) {
	var kind RecordKind
	var escaped string
	switch {
	case strings.HasSuffix(key, retSuffix):
		kind, escaped = ReturnRecord, strings.TrimSuffix(key, retSuffix)
	case strings.HasSuffix(key, argSuffix):
		kind, escaped = ParameterRecord, strings.TrimSuffix(key, argSuffix)
	case strings.HasSuffix(key, fieldSuffix):
		kind, escaped = FieldRecord, strings.TrimSuffix(key, fieldSuffix)
	default:
		return "", 0, fmt.Errorf("unrecognized record key %q", key)
	}
	id, err := url.QueryUnescape(escaped)
	if err != nil {
		return "", 0, fmt.Errorf("undecodable record key %q: %w", key, err)
	}
	return id, kind, nil
}
