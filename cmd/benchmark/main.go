package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"evlite/pkg/common"
	"evlite/pkg/config"
	"evlite/pkg/core"
	"evlite/pkg/table"
)

func main() {
	nReq := flag.Int("n", 50000, "Number of rows per run")
	degree := flag.Int("degree", 16, "Degree for the btree and memtable engines")
	seed := flag.Int64("seed", 1, "Seed for the random key order")
	flag.Parse()

	fmt.Printf("EVLite Index Benchmark (N=%d, degree=%d)\n", *nReq, *degree)
	fmt.Println("---------------------------------------------------")

	keys := rand.New(rand.NewSource(*seed)).Perm(*nReq)
	results := make(map[string]time.Duration)
	for _, engine := range []string{core.EngineBTree, core.EngineMemTable, core.EngineSQLite} {
		fmt.Printf(">> %s\n", engine)
		write, read := run(config.IndexConfig{Engine: engine, Degree: *degree}, keys)
		fmt.Printf("   Insert: %v | QPS: %.0f\n", write, float64(*nReq)/write.Seconds())
		fmt.Printf("   Get:    %v | QPS: %.0f\n\n", read, float64(*nReq)/read.Seconds())
		results[engine] = write + read
	}

	fmt.Println("---------------------------------------------------")
	base := results[core.EngineBTree].Seconds()
	for _, engine := range []string{core.EngineMemTable, core.EngineSQLite} {
		fmt.Printf("btree vs %s: %.2fx\n", engine, results[engine].Seconds()/base)
	}
}

func run(cfg config.IndexConfig, keys []int) (write, read time.Duration) {
	idx, err := core.Open(cfg)
	if err != nil {
		log.Fatalf("Open %s failed: %v", cfg.Engine, err)
	}
	tbl := table.New(table.DefaultName, idx)
	defer tbl.Close()

	start := time.Now()
	for _, k := range keys {
		row := common.Row{ID: common.KeyType(k), Name: "bench", Breed: "mutt"}
		if err := tbl.Insert(row); err != nil {
			log.Fatalf("Insert failed: %v", err)
		}
	}
	write = time.Since(start)

	start = time.Now()
	for _, k := range keys {
		if _, ok, err := tbl.Get(common.KeyType(k)); err != nil || !ok {
			log.Fatalf("Get %d failed: ok=%v err=%v", k, ok, err)
		}
	}
	read = time.Since(start)

	if tree, ok := idx.(core.Tree); ok {
		fmt.Printf("   Height: %d\n", tree.Height())
	}
	return write, read
}
