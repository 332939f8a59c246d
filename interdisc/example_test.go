package interdisc_test

import (
	"fmt"

	"github.com/katalvlaran/scimetric/interdisc"
)

func ExampleRaoStirling() {
	sim := interdisc.MapMatrix{
		"biology":   {"chemistry": 0.6, "physics": 0.2},
		"chemistry": {"physics": 0.4},
	}
	fields := interdisc.Shares([]interdisc.Field{
		{Category: "biology", Weight: 2},
		{Category: "chemistry", Weight: 1},
		{Category: "physics", Weight: 1},
	})

	res, err := interdisc.RaoStirling(fields, sim, interdisc.Similarity)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("RS=%.4f TD=%.4f\n", res.RaoStirling, res.TrueDiversity)
	// Output: RS=0.1875 TD=8.0000
}
