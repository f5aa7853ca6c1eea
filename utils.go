package gpcollapse

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//ReadLine is like the Python readline() and readlines()
func ReadLine(path string) (ln []string) {
	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Println(err)
		fmt.Println("There was an error when reading in the file:", path, ". Are you sure that it exists?")
		os.Exit(0)
	}
	ss := string(b)
	ln = strings.Split(ss, "\n")
	return
}

//ReadCounts will read a file of whitespace-separated nonnegative integers,
//one observation per field, in any line arrangement
func ReadCounts(path string) (counts []uint64) {
	for _, l := range ReadLine(path) {
		for _, f := range strings.Fields(l) {
			v, err := strconv.ParseUint(f, 10, 64)
			if err != nil {
				fmt.Println("couldn't parse", f, "as a nonnegative count in", path)
				os.Exit(0)
			}
			counts = append(counts, v)
		}
	}
	return
}

func matPrint(X mat.Matrix) {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	fmt.Printf("%v\n", fa)
}
