package inference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/nilfacts/kvstore"
	"github.com/hupe1980/nilfacts/model"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	kv, err := kvstore.New(dir)
	require.NoError(t, err)
	return New(kv), dir
}

func TestFieldCounterExistence(t *testing.T) {
	s, _ := newTestStore(t)
	field := model.FieldID("com.example.Foo#bar")

	marked, err := s.FieldMarked(field)
	require.NoError(t, err)
	assert.False(t, marked)

	require.NoError(t, s.MarkFieldNullable(field))
	marked, err = s.FieldMarked(field)
	require.NoError(t, err)
	assert.True(t, marked)

	// Further marks only bump the counter; the fact stays true.
	for i := 0; i < 5; i++ {
		require.NoError(t, s.MarkFieldNullable(field))
	}
	marked, err = s.FieldMarked(field)
	require.NoError(t, err)
	assert.True(t, marked)
}

func TestReturnCounter(t *testing.T) {
	s, _ := newTestStore(t)
	proc := model.ProcedureID("Map.get(Object)")

	marked, err := s.ReturnMarked(proc)
	require.NoError(t, err)
	assert.False(t, marked)

	require.NoError(t, s.MarkReturnNullable(proc))
	marked, err = s.ReturnMarked(proc)
	require.NoError(t, err)
	assert.True(t, marked)
}

func TestParameterBitVectorRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	proc := model.ProcedureID("f(a,b,c)")

	flags, ok, err := s.ParametersMarked(proc)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, flags)

	require.NoError(t, s.MarkParameterNullable(proc, 2, 3))
	require.NoError(t, s.MarkParameterNullable(proc, 0, 3))

	flags, ok, err = s.ParametersMarked(proc)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []bool{true, false, true}, flags)
}

func TestMarkParameterNullable_IndexOutOfRange(t *testing.T) {
	s, _ := newTestStore(t)
	proc := model.ProcedureID("g(a)")

	for _, tc := range []struct{ index, total int }{
		{1, 1},
		{3, 2},
		{-1, 2},
		{0, 0},
	} {
		err := s.MarkParameterNullable(proc, tc.index, tc.total)
		var oor *ErrIndexOutOfRange
		require.ErrorAs(t, err, &oor, "index=%d total=%d", tc.index, tc.total)
	}

	// Nothing was written by the failed marks.
	_, ok, err := s.ParametersMarked(proc)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCorruptCounterSurfaced(t *testing.T) {
	s, dir := newTestStore(t)
	field := model.FieldID("f")

	for _, content := range []string{"x3", "", "007", "-1"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, fieldKey(field)), []byte(content), 0o644))

		_, err := s.FieldMarked(field)
		var corrupt *ErrCorruptRecord
		require.ErrorAs(t, err, &corrupt, "content=%q", content)
		assert.Equal(t, content, corrupt.Content)

		// Incrementing over garbage must not repair it silently either.
		err = s.MarkFieldNullable(field)
		require.ErrorAs(t, err, &corrupt, "content=%q", content)
	}
}

func TestCorruptVectorSurfaced(t *testing.T) {
	s, dir := newTestStore(t)
	proc := model.ProcedureID("h(a,b)")
	path := filepath.Join(dir, paramKey(proc))

	// Non-flag byte.
	require.NoError(t, os.WriteFile(path, []byte("0x"), 0o644))
	_, _, err := s.ParametersMarked(proc)
	var corrupt *ErrCorruptRecord
	require.ErrorAs(t, err, &corrupt)

	// Length disagreeing with the declared arity.
	require.NoError(t, os.WriteFile(path, []byte("01"), 0o644))
	err = s.MarkParameterNullable(proc, 0, 3)
	require.ErrorAs(t, err, &corrupt)
}

func TestConcurrentFieldMarks(t *testing.T) {
	dir := t.TempDir()
	field := model.FieldID("shared")

	var g errgroup.Group
	for w := 0; w < 6; w++ {
		kv, err := kvstore.New(dir)
		require.NoError(t, err)
		s := New(kv)
		g.Go(func() error {
			for i := 0; i < 10; i++ {
				if err := s.MarkFieldNullable(field); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	kv, err := kvstore.New(dir)
	require.NoError(t, err)
	marked, err := New(kv).FieldMarked(field)
	require.NoError(t, err)
	assert.True(t, marked)

	// No lost update: the counter reflects every mark.
	data, err := os.ReadFile(filepath.Join(dir, fieldKey(field)))
	require.NoError(t, err)
	assert.Equal(t, "60", string(data))
}

func TestDecodeKeyRoundTrip(t *testing.T) {
	tests := []struct {
		key  string
		id   string
		kind RecordKind
	}{
		{returnKey("Map.get(Object)"), "Map.get(Object)", ReturnRecord},
		{paramKey("a/b c"), "a/b c", ParameterRecord},
		{fieldKey("Foo#bar"), "Foo#bar", FieldRecord},
	}
	for _, tc := range tests {
		id, kind, err := DecodeKey(tc.key)
		require.NoError(t, err, tc.key)
		assert.Equal(t, tc.id, id)
		assert.Equal(t, tc.kind, kind)
	}

	_, _, err := DecodeKey("nosuffix")
	assert.Error(t, err)
}
