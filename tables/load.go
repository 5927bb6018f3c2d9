package tables

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/nilfacts/model"
)

// File names of a serialized table set. Each may carry an additional ".zst"
// or ".lz4" extension for compressed payloads.
const (
	NullableFile = "nullable.yaml"
	PresentFile  = "present.yaml"
	StrictFile   = "strict.yaml"
	CheckersFile = "checkers.yaml"
	LibraryFile  = "library.yaml"
)

type markEntry struct {
	ID     string `yaml:"id"`
	Ret    bool   `yaml:"ret"`
	Params []bool `yaml:"params"`
}

type marksDoc struct {
	Procedures []markEntry `yaml:"procedures"`
}

type setDoc struct {
	Procedures []string `yaml:"procedures"`
}

type checkerEntry struct {
	ID    string `yaml:"id"`
	Param *int   `yaml:"param"`
}

type checkersDoc struct {
	NullChecks         []checkerEntry `yaml:"null_checks"`
	PreconditionChecks []string       `yaml:"precondition_checks"`
	OptionalPresence   []string       `yaml:"optional_presence"`
	MapContainment     []string       `yaml:"map_containment"`
}

// Load reads a curated table set from dir. A missing file is not an error:
// it simply contributes no opinion. The files load concurrently.
func Load(dir string) (*Tables, error) {
	var (
		nullable, present map[model.ProcedureID]model.Mark
		strict            setDoc
		checkers          checkersDoc
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		nullable, err = loadMarks(filepath.Join(dir, NullableFile))
		return err
	})
	g.Go(func() (err error) {
		present, err = loadMarks(filepath.Join(dir, PresentFile))
		return err
	})
	g.Go(func() error {
		_, err := readTable(filepath.Join(dir, StrictFile), &strict)
		return err
	})
	g.Go(func() error {
		_, err := readTable(filepath.Join(dir, CheckersFile), &checkers)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	nullChecks := make(map[model.ProcedureID]int, len(checkers.NullChecks))
	for _, e := range checkers.NullChecks {
		idx := 0
		if e.Param != nil {
			idx = *e.Param
		}
		nullChecks[model.ProcedureID(e.ID)] = idx
	}

	return New(Data{
		Nullable:           nullable,
		Present:            present,
		Strict:             toIDs(strict.Procedures),
		NullChecks:         nullChecks,
		PreconditionChecks: toIDs(checkers.PreconditionChecks),
		OptionalPresence:   toIDs(checkers.OptionalPresence),
		MapContainment:     toIDs(checkers.MapContainment),
	}), nil
}

// LoadLibrary reads the precomputed library table from dir. An absent file
// yields an empty table.
func LoadLibrary(dir string) (LibraryTable, error) {
	var doc setDoc
	if _, err := readTable(filepath.Join(dir, LibraryFile), &doc); err != nil {
		return nil, err
	}
	table := make(LibraryTable, len(doc.Procedures))
	for _, id := range doc.Procedures {
		table[model.ProcedureID(id)] = struct{}{}
	}
	return table, nil
}

func loadMarks(path string) (map[model.ProcedureID]model.Mark, error) {
	var doc marksDoc
	if _, err := readTable(path, &doc); err != nil {
		return nil, err
	}
	marks := make(map[model.ProcedureID]model.Mark, len(doc.Procedures))
	for _, e := range doc.Procedures {
		marks[model.ProcedureID(e.ID)] = model.Mark{Ret: e.Ret, Params: e.Params}
	}
	return marks, nil
}

// readTable unmarshals the YAML document at path into v, trying the plain
// file first, then the compressed variants. Returns false if none exists.
func readTable(path string, v any) (bool, error) {
	data, ok, err := readMaybeCompressed(path)
	if err != nil || !ok {
		return ok, err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("tables: parse %s: %w", path, err)
	}
	return true, nil
}

func readMaybeCompressed(path string) ([]byte, bool, error) {
	for _, variant := range []string{"", ".zst", ".lz4"} {
		name := path + variant
		f, err := os.Open(name)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, false, err
		}
		defer f.Close()

		var r io.Reader = f
		switch variant {
		case ".zst":
			zr, err := zstd.NewReader(f)
			if err != nil {
				return nil, false, fmt.Errorf("tables: open %s: %w", name, err)
			}
			defer zr.Close()
			r = zr
		case ".lz4":
			r = lz4.NewReader(f)
		}

		data, err := io.ReadAll(r)
		if err != nil {
			return nil, false, fmt.Errorf("tables: read %s: %w", name, err)
		}
		return data, true, nil
	}
	return nil, false, nil
}

func toIDs(ids []string) []model.ProcedureID {
	out := make([]model.ProcedureID, len(ids))
	for i, id := range ids {
		out[i] = model.ProcedureID(id)
	}
	return out
}
