package periodic_test

import (
	"fmt"

	"github.com/katalvlaran/quasitile/periodic"
)

// ExampleGenerate lays out a small grid; the layout is exact integer-like
// arithmetic, so the count is stable.
func ExampleGenerate() {
	tiles, err := periodic.Generate(100, 90, 25, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("tiles:", len(tiles))
	fmt.Println("kind:", tiles[0].Kind)
	// Output:
	// tiles: 60
	// kind: cell
}
