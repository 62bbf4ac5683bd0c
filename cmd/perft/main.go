// Command perft runs the move generator's leaf-counting harness against a
// FEN position and reports the node count and elapsed time, optionally
// broken down by capture/en-passant/castle/promotion/check counts.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/avrelii/chesscore/attack"
	"github.com/avrelii/chesscore/bitboard"
	"github.com/avrelii/chesscore/fen"
	"github.com/avrelii/chesscore/format"
	"github.com/avrelii/chesscore/movegen"
	"github.com/avrelii/chesscore/perft"
	"github.com/avrelii/chesscore/position"
)

var out = message.NewPrinter(language.English)

// verboseResult tallies the move-category breakdown a verbose run reports,
// gathered by inspecting each root move before descending into it.
type verboseResult struct {
	captures     int
	epCaptures   int
	castles      int
	promotions   int
	checks       int
	doubleChecks int
}

func perftVerbose(p position.Position, depth int, r *verboseResult, isRoot bool) uint64 {
	var list position.MoveList
	movegen.GenerateLegalMoves(&p, &list)

	if depth == 0 {
		return 1
	}
	if depth == 1 {
		return uint64(list.Count)
	}

	var nodes uint64
	for _, mv := range list.Slice() {
		isCapture := p.PieceAt(mv.To) != position.PieceNone
		isEnPassant := p.PieceAt(mv.From) == position.Pawn &&
			p.PieceAt(mv.To) == position.PieceNone &&
			mv.To == p.EPSquare
		isCastle := p.PieceAt(mv.From) == position.King &&
			bitboard.ChebyshevDistance(mv.From, mv.To) > 1

		child := p
		child.MakeMove(mv)

		switch movegen.CheckerCount(&child) {
		case 1:
			r.checks++
		case 2:
			r.checks++
			r.doubleChecks++
		}

		cnt := perftVerbose(child, depth-1, r, false)
		if isRoot {
			log.Printf("%s: %d", mv, cnt)
		}
		nodes += cnt

		if depth == 2 {
			// Only tally captures/special moves once, at the ply that
			// actually performs them as its leaf-producing step.
			if isCapture {
				r.captures++
			}
			if isEnPassant {
				r.epCaptures++
			}
			if isCastle {
				r.castles++
			}
			if mv.IsPromotion() {
				r.promotions++
			}
		}
	}
	return nodes
}

// applyConfigDefaults fills in fen/depth/workers from cfg wherever the
// corresponding flag was not passed explicitly on the command line and the
// config value is non-empty. flag.Visit only reports flags that were actually set,
// so an explicit -depth=5 always wins even if it matches the flag default.
func applyConfigDefaults(cfg runConfig, fenFlag *string, depth, workers *int) {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if cfg.FEN != "" && !set["fen"] {
		*fenFlag = cfg.FEN
	}
	if cfg.Depth != 0 && !set["depth"] {
		*depth = cfg.Depth
	}
	if cfg.Workers != 0 && !set["workers"] {
		*workers = cfg.Workers
	}
}

func main() {
	fenFlag := flag.String("fen", fen.StartPos, "FEN of the position to search")
	depth := flag.Int("depth", 5, "perft depth")
	verbose := flag.Bool("verbose", false, "print per-root-move node counts and a move-type breakdown")
	workers := flag.Int("workers", 1, "number of goroutines to split the root move list across")
	configPath := flag.String("config", "", "optional TOML file of {fen, depth, workers} defaults, overridden by any flag given explicitly")
	cpuprofile := flag.String("cpuprofile", "", "file to write a CPU profile to")
	memprofile := flag.String("memprofile", "", "file to write a heap profile to")
	flag.Parse()

	if *configPath != "" {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			log.Fatalf("loading config %s: %v", *configPath, err)
		}
		applyConfigDefaults(cfg, fenFlag, depth, workers)
	}

	attack.Init()
	p := fen.Parse(*fenFlag)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	start := time.Now()
	var nodes uint64

	switch {
	case *verbose:
		log.Printf("\nRoot position:\n%s\n%s\n", format.Position(p), *fenFlag)
		r := &verboseResult{}
		nodes = perftVerbose(p, *depth, r, true)
		out.Printf("depth=%d nodes=%d captures=%d ep=%d castles=%d promotions=%d checks=%d doubleChecks=%d\n",
			*depth, nodes, r.captures, r.epCaptures, r.castles, r.promotions, r.checks, r.doubleChecks)
	case *workers > 1:
		var err error
		nodes, err = perft.ParallelCount(context.Background(), p, *depth, *workers)
		if err != nil {
			log.Fatal(err)
		}
	default:
		nodes = perft.Count(p, *depth)
	}

	elapsed := time.Since(start)
	out.Printf("Nodes reached: %d\n", nodes)
	log.Printf("Elapsed: %s", elapsed)

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal(err)
		}
	}
}
