package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vadiminshakov/factorial/math"
	"github.com/vadiminshakov/factorial/ui"
)

func main() {
	var version = flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *version {
		fmt.Println("Factorial v0.1.0")
		os.Exit(0)
	}

	runDemo()
}

func runDemo() {
	for _, num := range []int{5, 0, -1} {
		result, err := math.Factorial(num)
		if err != nil {
			fmt.Println(ui.Error(err.Error()))
			continue
		}

		fmt.Println(ui.Success(fmt.Sprintf("The factorial of %d is %d", num, result)))
	}
}
