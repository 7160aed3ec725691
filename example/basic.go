package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/scalecode-solutions/smchash-go"
)

// This program hashes either a 16,000 byte test buffer, a single file,
// or 2 files for comparison, depending on the number of args.

func main() {
	flag.Usage = func() {
		fmt.Println("Usage:")
		fmt.Printf("%s - hash a test buffer\n", os.Args[0])
		fmt.Printf("%s [filename] - hash the contents of [filename]\n", os.Args[0])
		fmt.Printf("%s [filename0] [filename1] - hash the contents of [filename0] and [filename1] and compare them\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	start := time.Now()
	switch len(os.Args) {
	case 1:
		hashBuffer()
	case 2:
		hashFile(os.Args[1])
	case 3:
		compareTwoFiles(os.Args[1], os.Args[2])
	default:
		flag.Usage()
	}
	fmt.Printf("\ntook %s\n", time.Since(start))
}

// hashBuffer creates and hashes a repeating 16,000 byte buffer.
func hashBuffer() {
	const size = 16000
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i)
	}
	fmt.Printf("Hash of a test buffer:\n\t%016x\n", smchash.Hash(data))
}

// hashFile hashes a single file's contents.
func hashFile(filename string) {
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Printf("Hash of %q:\n\t%016x\n", filename, smchash.Hash(data))
}

// compareTwoFiles hashes and compares the contents of two files.
func compareTwoFiles(filenameA, filenameB string) {
	dataA, err := os.ReadFile(filenameA)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	dataB, err := os.ReadFile(filenameB)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	hashA := smchash.Hash(dataA)
	hashB := smchash.Hash(dataB)

	filesMatch := bytes.Equal(dataA, dataB)
	hashesMatch := hashA == hashB

	switch {
	case filesMatch && hashesMatch:
		fmt.Printf("Files %q and %q are the same:\n\t%016x\n", filenameA, filenameB, hashA)

	case filesMatch:
		fmt.Println("SMCHASH FAILURE: Files match but hashes don't!")
		fmt.Printf("\tHash of %q:\n\t %016x\n", filenameA, hashA)
		fmt.Printf("\tHash of %q:\n\t %016x\n", filenameB, hashB)

	case hashesMatch:
		fmt.Printf("Hash collision: files %q and %q differ but both hash to:\n\t%016x\n",
			filenameA, filenameB, hashA)

	default:
		fmt.Printf("Files %q and %q are different:\n", filenameA, filenameB)
		fmt.Printf("\tHash of %q:\n\t %016x\n", filenameA, hashA)
		fmt.Printf("\tHash of %q:\n\t %016x\n", filenameB, hashB)
	}
}
