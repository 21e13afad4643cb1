package main

import (
	"fmt"
	"log"
	"os"

	"evlite/pkg/core/btree"
)

func main() {
	idx, err := btree.New[int, string](2)
	if err != nil {
		log.Fatalf("Failed to create index: %v", err)
	}

	names := []string{"evie", "rex", "fido", "bella", "max", "luna", "coco", "milo"}
	for i, k := range []int{10, 20, 5, 6, 12, 30, 7, 17} {
		idx.Put(k, names[i])
		fmt.Printf("Put %2d -> %-6s height=%d len=%d\n", k, names[i], idx.Height(), idx.Len())
	}

	fmt.Println("\nLayout:")
	if _, err := idx.WriteTo(os.Stdout); err != nil {
		log.Fatal(err)
	}

	if v, ok := idx.Get(17); ok {
		fmt.Printf("\nGet 17 -> %s\n", v)
	}
	if _, err := btree.New[int, string](1); err != nil {
		fmt.Printf("Degree 1 rejected: %v\n", err)
	}
	if err := idx.Check(); err != nil {
		log.Fatalf("Check failed: %v", err)
	}
}
