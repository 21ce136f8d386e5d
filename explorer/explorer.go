// Package explorer expands every legal line from a position, level by level,
// and records the positions it reaches in a store. It counts the lines it
// walks but never picks a move.
package explorer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"runtime"
	"sync"

	"github.com/LIAMBB/chess-compute-core/components"
	"github.com/LIAMBB/chess-compute-core/store"
	"golang.org/x/sync/errgroup"
)

// ErrSizeLimit stops a run once the database reaches its size limit.
var ErrSizeLimit = errors.New("database size limit reached")

type Options struct {
	MaxDepth     int
	Workers      int
	MaxSizeBytes int64 // zero disables the check
	Logger       *log.Logger
}

// Result holds the number of lines (perft count) at each depth, starting
// with 1 for the root, and the ids of the stored positions.
type Result struct {
	RunID    string
	RootID   int64
	Nodes    []int64
	Distinct []int
}

type Explorer struct {
	store *store.Store
	opts  Options
}

func New(s *store.Store, opts Options) *Explorer {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	return &Explorer{store: s, opts: opts}
}

// node is a stored position on the frontier. paths counts the distinct move
// sequences from the root that reach it.
type node struct {
	id    int64
	board *components.ChessBoard
	paths int64
}

type expansion struct {
	parent   node
	children []store.Child
}

// Run explores from root to MaxDepth. When the size limit is hit, the
// counts gathered so far are returned together with ErrSizeLimit.
func (e *Explorer) Run(ctx context.Context, root *components.ChessBoard) (Result, error) {
	var result Result

	runID, err := e.store.StartRun(e.opts.MaxDepth)
	if err != nil {
		return result, err
	}
	rootID, err := e.store.SaveBoard(root)
	if err != nil {
		return result, err
	}
	result.RunID = runID
	result.RootID = rootID
	result.Nodes = []int64{1}
	result.Distinct = []int{1}
	e.opts.Logger.Printf("run %s: root state %d", runID, rootID)

	frontier := []node{{id: rootID, board: root, paths: 1}}
	for depth := 0; depth < e.opts.MaxDepth && len(frontier) > 0; depth++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		exceeded, err := e.store.Exceeds(e.opts.MaxSizeBytes)
		if err != nil {
			return result, err
		}
		if exceeded {
			e.opts.Logger.Printf("database size limit reached, stopping at depth %d", depth)
			return result, ErrSizeLimit
		}

		e.opts.Logger.Printf("processing depth %d with %d nodes", depth, len(frontier))
		next, lines, err := e.expandLevel(ctx, frontier)
		if err != nil {
			return result, err
		}
		result.Nodes = append(result.Nodes, lines)
		result.Distinct = append(result.Distinct, len(next))
		e.opts.Logger.Printf("depth %d complete: %d lines, %d distinct positions", depth+1, lines, len(next))
		frontier = next
	}
	return result, nil
}

// expandLevel fans the frontier out to the workers, which only compute
// moves; a single writer stores the children and builds the next frontier.
func (e *Explorer) expandLevel(ctx context.Context, frontier []node) ([]node, int64, error) {
	g, ctx := errgroup.WithContext(ctx)

	jobs := make(chan node, e.opts.Workers)
	results := make(chan expansion, e.opts.Workers)

	g.Go(func() error {
		defer close(jobs)
		for _, n := range frontier {
			select {
			case jobs <- n:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < e.opts.Workers; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for n := range jobs {
				children, err := Children(n.board)
				if err != nil {
					return fmt.Errorf("expand state %d: %w", n.id, err)
				}
				select {
				case results <- expansion{parent: n, children: children}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	var (
		next  []node
		index = make(map[int64]int)
		lines int64
	)
	g.Go(func() error {
		for exp := range results {
			ids, err := e.store.SaveChildren(exp.parent.id, exp.children)
			if err != nil {
				return err
			}
			for i, id := range ids {
				lines += exp.parent.paths
				if at, ok := index[id]; ok {
					next[at].paths += exp.parent.paths
					continue
				}
				index[id] = len(next)
				next = append(next, node{id: id, board: exp.children[i].Board, paths: exp.parent.paths})
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return next, lines, nil
}

// Children applies every legal move of the side to move, one command per
// promotion choice.
func Children(board *components.ChessBoard) ([]store.Child, error) {
	moves := components.ExpandPromotions(board.AllLegalMoves())
	children := make([]store.Child, 0, len(moves))
	for _, move := range moves {
		next, err := board.Apply(move)
		if err != nil {
			return nil, fmt.Errorf("apply %v: %w", move, err)
		}
		children = append(children, store.Child{Move: move, Board: next})
	}
	return children, nil
}

// Perft counts the legal move sequences of length depth from board.
func Perft(board *components.ChessBoard, depth int) int64 {
	if depth == 0 {
		return 1
	}
	moves := components.ExpandPromotions(board.AllLegalMoves())
	if depth == 1 {
		return int64(len(moves))
	}
	var nodes int64
	for _, move := range moves {
		next, err := board.Apply(move)
		if err != nil {
			continue
		}
		nodes += Perft(next, depth-1)
	}
	return nodes
}
