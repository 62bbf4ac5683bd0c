// Package perft walks the legal-move tree to a fixed depth and counts leaf
// nodes, the standard correctness and performance harness for a move
// generator. See https://www.chessprogramming.org/Perft_Results.
package perft

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/avrelii/chesscore/movegen"
	"github.com/avrelii/chesscore/position"
)

// Count walks depth plies of legal moves from p and returns the number of
// leaf positions reached. Count(p, 0) is 1 by convention: the position
// itself is the single leaf.
func Count(p position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var list position.MoveList
	movegen.GenerateLegalMoves(&p, &list)

	if depth == 1 {
		return uint64(list.Count)
	}

	var total uint64
	for _, mv := range list.Slice() {
		child := p
		child.MakeMove(mv)
		total += Count(child, depth-1)
	}
	return total
}

// Divide returns the leaf count contributed by each of p's legal root
// moves, keyed by move, mirroring the "perft divide" tool chess engines use
// to bisect a move-generation bug down to the offending branch.
func Divide(p position.Position, depth int) map[position.Move]uint64 {
	var list position.MoveList
	movegen.GenerateLegalMoves(&p, &list)

	result := make(map[position.Move]uint64, list.Count)
	for _, mv := range list.Slice() {
		child := p
		child.MakeMove(mv)
		if depth <= 1 {
			result[mv] = 1
		} else {
			result[mv] = Count(child, depth-1)
		}
	}
	return result
}

// ParallelCount is Count distributed across workers goroutines, one per
// root move. It fans out only at the root: each worker walks its own
// subtree sequentially, since a Position is a value type and splitting
// deeper would multiply scheduling overhead for little benefit at the
// branching factors perft trees have near the leaves.
//
// Callers should call attack.Init() before ParallelCount so the workers
// don't race to build the global attack table on first use.
func ParallelCount(ctx context.Context, p position.Position, depth int, workers int) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}

	var list position.MoveList
	movegen.GenerateLegalMoves(&p, &list)

	if depth == 1 {
		return uint64(list.Count), nil
	}

	moves := list.Slice()
	partials := make([]uint64, len(moves))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, mv := range moves {
		i, mv := i, mv
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			child := p
			child.MakeMove(mv)
			partials[i] = Count(child, depth-1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total uint64
	for _, n := range partials {
		total += n
	}
	return total, nil
}
