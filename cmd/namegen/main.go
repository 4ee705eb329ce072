// Command namegen demonstrates the generator by printing a numbered batch
// of food names followed by a batch of sci-fi names.
package main

import (
	"fmt"

	"github.com/tastylab/namegen"
)

func main() {
	gen := namegen.New()

	fmt.Println("Food combinations:")
	for i := 1; i <= 20; i++ {
		fmt.Printf("%02d. %s\n", i, gen.FoodName())
	}

	fmt.Println()
	fmt.Println("Sci-Fi combinations:")
	for i := 1; i <= 24; i++ {
		fmt.Printf("%02d. %s\n", i, gen.SciFiName())
	}
}
