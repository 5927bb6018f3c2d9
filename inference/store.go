package inference

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/nilfacts/kvstore"
	"github.com/hupe1980/nilfacts/model"
)

// Store is the fact store shared by all analyzer workers of a project.
// It layers the record codecs over an explicit kvstore handle, so tests can
// point it at an isolated temporary directory.
type Store struct {
	kv *kvstore.Store
}

// New creates a Store over kv.
func New(kv *kvstore.Store) *Store {
	return &Store{kv: kv}
}

// MarkFieldNullable records one more independent observation that field may
// be null, creating the counter at 1 if absent. Durable once it returns.
func (s *Store) MarkFieldNullable(field model.FieldID) error {
	return s.increment(fieldKey(field))
}

// FieldMarked reports whether field has ever been marked nullable.
func (s *Store) FieldMarked(field model.FieldID) (bool, error) {
	return s.counterExists(fieldKey(field))
}

// MarkReturnNullable records one more observation that proc's return value
// may be null.
func (s *Store) MarkReturnNullable(proc model.ProcedureID) error {
	return s.increment(returnKey(proc))
}

// ReturnMarked reports whether proc's return has ever been marked nullable.
func (s *Store) ReturnMarked(proc model.ProcedureID) (bool, error) {
	return s.counterExists(returnKey(proc))
}

// MarkParameterNullable sets bit index of proc's parameter bit-vector,
// allocating an all-zero vector of length total on the first mark.
// index >= total fails fast with ErrIndexOutOfRange; arity is assumed stable
// for the analyzed project's lifetime.
func (s *Store) MarkParameterNullable(proc model.ProcedureID, index, total int) error {
	if index < 0 || total < 1 || index >= total {
		return &ErrIndexOutOfRange{Proc: proc, Index: index, Total: total}
	}
	key := paramKey(proc)
	return s.kv.Update(key, func(cur string, ok bool) (string, error) {
		vec := []byte(strings.Repeat("0", total))
		if ok {
			if len(cur) != total {
				return "", &ErrCorruptRecord{
					Key:     key,
					Content: cur,
					cause:   fmt.Errorf("vector length %d does not match arity %d", len(cur), total),
				}
			}
			if err := checkVector(key, cur); err != nil {
				return "", err
			}
			copy(vec, cur)
		}
		vec[index] = '1'
		return string(vec), nil
	})
}

// ParametersMarked returns proc's decoded parameter flags in declaration
// order, or ok=false if no bit-vector record exists.
func (s *Store) ParametersMarked(proc model.ProcedureID) ([]bool, bool, error) {
	key := paramKey(proc)
	cur, ok, err := s.kv.Read(key)
	if err != nil || !ok {
		return nil, false, err
	}
	if err := checkVector(key, cur); err != nil {
		return nil, false, err
	}
	flags := make([]bool, len(cur))
	for i := 0; i < len(cur); i++ {
		flags[i] = cur[i] == '1'
	}
	return flags, true, nil
}

func (s *Store) increment(key string) error {
	return s.kv.Update(key, func(cur string, ok bool) (string, error) {
		if !ok {
			return "1", nil
		}
		n, err := parseCounter(key, cur)
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(n+1, 10), nil
	})
}

func (s *Store) counterExists(key string) (bool, error) {
	cur, ok, err := s.kv.Read(key)
	if err != nil || !ok {
		return false, err
	}
	if _, err := parseCounter(key, cur); err != nil {
		return false, err
	}
	return true, nil
}

// parseCounter decodes a canonical non-negative decimal. Leading zeros are
// rejected along with non-digits: either means the record was not written by
// this codec.
func parseCounter(key, content string) (uint64, error) {
	if len(content) > 1 && content[0] == '0' {
		return 0, &ErrCorruptRecord{Key: key, Content: content}
	}
	n, err := strconv.ParseUint(content, 10, 64)
	if err != nil {
		return 0, &ErrCorruptRecord{Key: key, Content: content, cause: err}
	}
	return n, nil
}

func checkVector(key, content string) error {
	for i := 0; i < len(content); i++ {
		if content[i] != '0' && content[i] != '1' {
			return &ErrCorruptRecord{Key: key, Content: content}
		}
	}
	return nil
}
