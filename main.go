package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/LIAMBB/chess-compute-core/components"
	"github.com/LIAMBB/chess-compute-core/explorer"
	"github.com/LIAMBB/chess-compute-core/store"
	"github.com/davecgh/go-spew/spew"
)

type settings struct {
	dbPath        string
	maxDepth      int
	maxSizeGB     float64
	workers       int
	browse        bool
	dump          bool
	pawnStructure bool
}

func main() {
	var s settings
	flag.StringVar(&s.dbPath, "db", "./chess.db", "SQLite database path")
	flag.IntVar(&s.maxDepth, "depth", 4, "number of plies to explore")
	flag.Float64Var(&s.maxSizeGB, "max-gb", 10, "maximum database size in GB")
	flag.IntVar(&s.workers, "workers", 0, "move generation workers (0 = number of CPUs)")
	flag.BoolVar(&s.browse, "browse", false, "browse the explored tree after the run")
	flag.BoolVar(&s.dump, "dump", false, "dump the starting board structure")
	flag.BoolVar(&s.pawnStructure, "pawns", false, "include the pawn structure term when browsing")
	flag.Parse()

	if err := run(s); err != nil {
		log.Fatal(err)
	}
}

func run(s settings) error {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	available, total, err := getDiskSpace()
	if err != nil {
		logger.Printf("Error getting disk space: %v", err)
	} else {
		logger.Printf("Disk space: total %.2f GB, available %.2f GB",
			float64(total)/1024/1024/1024, float64(available)/1024/1024/1024)
	}

	db, err := store.Open(s.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	startingBoard := components.NewStandardBoard()
	if s.dump {
		logger.Print(spew.Sdump(startingBoard))
	}

	ex := explorer.New(db, explorer.Options{
		MaxDepth:     s.maxDepth,
		Workers:      s.workers,
		MaxSizeBytes: int64(s.maxSizeGB * 1024 * 1024 * 1024),
		Logger:       logger,
	})
	result, err := ex.Run(ctx, startingBoard)
	switch {
	case errors.Is(err, explorer.ErrSizeLimit):
		logger.Println("Database size limit reached, stopping simulation")
	case errors.Is(err, context.Canceled):
		logger.Println("Simulation cancelled")
		return nil
	case err != nil:
		return err
	default:
		logger.Println("Simulation complete")
	}
	logger.Printf("Lines at each depth: %v", result.Nodes)
	logger.Printf("Distinct positions at each depth: %v", result.Distinct)

	if !s.browse {
		return nil
	}
	var opts []components.EvaluatorOption
	if s.pawnStructure {
		opts = append(opts, components.WithPawnStructure())
	}
	return explorer.Browse(db, result.RootID, components.NewEvaluator(opts...), os.Stdin, os.Stdout)
}

func getDiskSpace() (uint64, uint64, error) {
	var stat syscall.Statfs_t
	err := syscall.Statfs("/", &stat)
	if err != nil {
		return 0, 0, err
	}

	// Available bytes = blocks * size
	available := stat.Bavail * uint64(stat.Bsize)
	total := stat.Blocks * uint64(stat.Bsize)

	return available, total, nil
}
