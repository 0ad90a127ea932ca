/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/ReversiGo/config"
	"github.com/frankkopp/ReversiGo/evaluator"
	"github.com/frankkopp/ReversiGo/franky_logging"
	"github.com/frankkopp/ReversiGo/internal/multiplayer"
	"github.com/frankkopp/ReversiGo/internal/notation"
	"github.com/frankkopp/ReversiGo/openingbook"
	"github.com/frankkopp/ReversiGo/position"
	"github.com/frankkopp/ReversiGo/search"
	. "github.com/frankkopp/ReversiGo/types"
	"github.com/frankkopp/ReversiGo/util"
)

var out = message.NewPrinter(language.German)
var log = franky_logging.GetLog("main")

func main() {
	apiURL := flag.String("api_url", "", "multiplayer server base url; non-empty enables multiplayer mode")
	playerUUID := flag.String("player_uuid", "", "player id used on the multiplayer channel")
	searchDepth := flag.Uint("search_depth", 8, "fixed search depth in plies")
	bookPath := flag.String("book_path", "", "path to the opening book file; non-empty enables load/save")
	generateBook := flag.Bool("generate_book", false, "generate an opening book instead of playing")
	compareConfigs := flag.Bool("compare_configs", false, "run the default vs standard weight comparison instead of playing")
	fullDepth := flag.Uint("full_depth", 5, "book generation: plies fully explored (every legal child enqueued)")
	kPartialDepth := flag.Uint("k_partial_depth", 7, "book generation: plies explored along the main line only")
	configFile := flag.String("config", "./config/config.toml", "path to configuration settings file")
	cpuProfile := flag.Bool("profile", false, "enable CPU profiling for this run")
	versionInfo := flag.Bool("version", false, "prints version and environment info and exits")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.Setup(*configFile)
	if *bookPath != "" {
		if resolved, err := util.ResolveFile(*bookPath); err == nil {
			config.Settings.Search.BookPath = resolved
		} else {
			// not found yet is fine for generate_book, which creates it
			config.Settings.Search.BookPath = *bookPath
		}
	}
	config.Settings.Search.Depth = int(*searchDepth)

	eval := evaluator.FromConfig()
	s := search.New(eval)

	switch {
	case *generateBook:
		runGenerateBook(s, eval, int(*fullDepth), int(*kPartialDepth))
	case *compareConfigs:
		runCompareConfigs()
	case *apiURL != "":
		runMultiplayer(s, *apiURL, *playerUUID)
	default:
		runLocal(s)
	}
}

// runLocal plays a single search from the starting position and prints the
// result - the minimal non-interactive "does it work" path.
func runLocal(s *search.Search) {
	p := position.New()
	limits := search.NewLimits(config.Settings.Search.Depth)
	result := s.Run(p, limits)
	fmt.Println(notation.BoardString(p.Black, p.White))
	out.Printf("Best move: %s, eval: %d\n", notation.MoveToAlgebraic(result.BestMove), result.BestValue)
}

// runGenerateBook builds an opening book from the starting position using
// the search core as its SearchFunc, then persists it to the configured
// book path.
func runGenerateBook(s *search.Search, eval *evaluator.Evaluator, fullDepth, partialDepth int) {
	book := openingbook.NewBook()
	searchFn := func(p *position.Position, depth int) (Move, Value) {
		result := s.Run(p, search.Limits{Depth: depth, RootParallel: true})
		return result.BestMove, result.BestValue
	}
	book.Generate(position.New(), config.Settings.Search.Depth, fullDepth, partialDepth, searchFn, config.Settings.Search.BookPath)
	log.Infof("Book generation complete: %d entries", book.Len())
}

// runCompareConfigs searches the starting position once with each of the
// two built-in weight sets and prints both evaluations side by side.
func runCompareConfigs() {
	p := position.New()
	for _, w := range []struct {
		name string
		w    evaluator.Weights
	}{
		{"default", evaluator.DefaultWeights},
		{"standard", evaluator.StandardWeights},
	} {
		e := evaluator.New(w.w)
		s := search.New(e)
		result := s.Run(p, search.NewLimits(config.Settings.Search.Depth))
		out.Printf("%s weights: move=%s eval=%d\n", w.name, notation.MoveToAlgebraic(result.BestMove), result.BestValue)
	}
}

// runMultiplayer joins (or creates) one game on the multiplayer server and
// plays it to completion using the local search engine for every move. It
// keeps its own copy of the board, advancing it by the opponent's reported
// last move before searching each of our own moves in turn.
func runMultiplayer(s *search.Search, apiURL, playerUUID string) {
	client := multiplayer.New(apiURL, playerUUID)

	var gameID, myColor string
	if ids := client.GameList(); len(ids) > 0 {
		joined := client.Join(ids[0])
		gameID, myColor = joined.GameID, joined.Color
	} else {
		created := client.CreateGame()
		gameID = created.GameID
		myColor = multiplayer.StatusBlack
		log.Infof("Created game %s, waiting for an opponent", gameID)
		client.WaitForOpponent(gameID)
	}

	p := position.New()

	for {
		status := client.WaitForOurTurn(gameID, myColor)
		if status.Status == multiplayer.StatusBlackWon || status.Status == multiplayer.StatusWhiteWon {
			log.Infof("Game %s finished: %s", gameID, status.Status)
			return
		}

		if status.LastMove != "" {
			if mv, err := notation.MoveFromToken(status.LastMove); err != nil {
				log.Warningf("multiplayer: ignoring unparsable last move %q: %v", status.LastMove, err)
			} else if mv == MoveAllOnes {
				p.MakePass()
			} else if _, err := p.MakeMove(mv.Bb()); err != nil {
				log.Warningf("multiplayer: opponent move %q illegal on local board: %v", status.LastMove, err)
			}
		}

		result := s.Run(p, search.NewLimits(config.Settings.Search.Depth))
		move := notation.MoveToAlgebraic(result.BestMove)
		if result.BestMove == MoveAllOnes {
			p.MakePass()
		} else if _, err := p.MakeMove(result.BestMove.Bb()); err != nil {
			log.Warningf("multiplayer: our own move %q illegal on local board: %v", move, err)
		}
		client.Move(gameID, move)
	}
}

func printVersionInfo() {
	out.Println("ReversiGo")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, err := util.ResolveFolder(".")
	if err != nil {
		cwd, _ = os.Getwd()
	}
	out.Printf("  Working directory: %s\n", cwd)
}
