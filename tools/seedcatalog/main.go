// seedcatalog converts a JSON catalog fixture into the SQLite snapshot
// database the service loads at startup.
//
//	seedcatalog -in testdata/catalog.json -out catalog.db
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"screenfeed/internal/database"
	"screenfeed/services/catalog"
)

func main() {
	in := flag.String("in", "", "JSON catalog fixture to read")
	out := flag.String("out", "catalog.db", "SQLite snapshot database to write")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: seedcatalog -in <fixture.json> [-out <catalog.db>]")
		os.Exit(1)
	}

	snap, err := catalog.LoadFile(afero.NewOsFs(), *in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seedcatalog: %v\n", err)
		os.Exit(1)
	}

	db, err := database.NewDB(database.Config{DatabasePath: *out})
	if err != nil {
		fmt.Fprintf(os.Stderr, "seedcatalog: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Repository.SaveAll(context.Background(), snap); err != nil {
		fmt.Fprintf(os.Stderr, "seedcatalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("seeded %d records into %s\n", snap.Len(), *out)
}
