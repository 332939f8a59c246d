package comatrix_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/scimetric/comatrix"
)

func ExampleBuild() {
	docs := comatrix.ParseDocuments([]string{
		"ecology,genetics",
		"ecology,statistics",
		"genetics,statistics,ecology",
	})
	res, err := comatrix.Build(docs)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Categories, res.Counts)
	_ = comatrix.WriteCSV(os.Stdout, res.Frequency)
	// Output:
	// [ecology genetics statistics] [3 2 2]
	// index,ecology,genetics,statistics
	// ecology,0,2,2
	// genetics,2,0,1
	// statistics,2,1,0
}
