package nilfacts_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/nilfacts"
	"github.com/hupe1980/nilfacts/model"
	"github.com/hupe1980/nilfacts/tables"
)

func Example() {
	tbls := tables.New(tables.Data{
		Nullable: map[model.ProcedureID]model.Mark{
			"Map.get(Object)": {Ret: true, Params: []bool{false}},
		},
	})

	engine, err := nilfacts.New(
		nilfacts.WithCuratedTables(tbls),
		nilfacts.WithLogger(nilfacts.NoopLogger()),
	)
	if err != nil {
		log.Fatal(err)
	}

	sig, err := engine.Resolve("Map.get(Object)", model.NewSignature(1))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("return:", sig.Ret)
	fmt.Println("param0:", sig.Params[0])
	// Output:
	// return: nullable
	// param0: none
}
