// Command npuzzle is the command-line front end of the sliding-tile
// solver: check solvability, solve a scramble, generate scrambles, or
// run the playback server that streams solution frames to renderers.
//
// Board arguments are comma-separated row-major tile lists with 0 as
// the blank, e.g. --start 1,2,3,4,0,6,7,5,8.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/karalvik/npuzzle/astar"
	"github.com/karalvik/npuzzle/board"
	"github.com/karalvik/npuzzle/playback"
	"github.com/karalvik/npuzzle/scramble"
)

const version = "1.0.0"

var log = logrus.New()

func main() {
	// Load .env if present; absence is not an error.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithField("err", err).Warn("loading .env")
	}

	root := &cobra.Command{
		Use:           "npuzzle",
		Short:         "Sliding-tile puzzle solver",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCheckCmd(), newSolveCmd(), newScrambleCmd(), newServeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// parseTiles turns "1,2,3,4,0,6,7,5,8" into a tile slice.
func parseTiles(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	tiles := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid tile %q: %w", p, err)
		}
		tiles = append(tiles, v)
	}
	return tiles, nil
}

// parseBoards builds the (start, goal) pair shared by check and solve.
func parseBoards(size int, startArg, goalArg string) (board.Board, board.Board, error) {
	tiles, err := parseTiles(startArg)
	if err != nil {
		return board.Board{}, board.Board{}, err
	}
	start, err := board.New(size, tiles)
	if err != nil {
		return board.Board{}, board.Board{}, err
	}

	goal := board.Goal(size)
	if goalArg != "" {
		gt, err := parseTiles(goalArg)
		if err != nil {
			return board.Board{}, board.Board{}, err
		}
		if goal, err = board.New(size, gt); err != nil {
			return board.Board{}, board.Board{}, err
		}
	}
	return start, goal, nil
}

func newCheckCmd() *cobra.Command {
	var (
		size     int
		startArg string
		goalArg  string
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether a configuration can reach the goal",
		Example: `  npuzzle check --start 1,2,3,4,0,6,7,5,8
  npuzzle check --size 4 --start 1,2,3,4,5,6,7,8,9,10,11,12,13,15,14,0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, goal, err := parseBoards(size, startArg, goalArg)
			if err != nil {
				return err
			}
			ok, err := board.Solvable(start, goal)
			if err != nil {
				return err
			}
			if ok {
				fmt.Println("solvable")
				return nil
			}
			fmt.Println("unsolvable")
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 3, "grid width")
	cmd.Flags().StringVar(&startArg, "start", "", "start configuration (required)")
	cmd.Flags().StringVar(&goalArg, "goal", "", "goal configuration (default: canonical)")
	cmd.MarkFlagRequired("start")
	return cmd
}

func newSolveCmd() *cobra.Command {
	var (
		size          int
		startArg      string
		goalArg       string
		heuristicArg  string
		maxExpansions int
		asJSON        bool
		quiet         bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a shortest move sequence and print the frames",
		Example: `  npuzzle solve --start 1,2,3,4,0,6,7,5,8
  npuzzle solve --start 8,6,7,2,5,4,3,0,1 --heuristic misplaced --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, goal, err := parseBoards(size, startArg, goalArg)
			if err != nil {
				return err
			}

			opts := []astar.Option{astar.WithContext(cmd.Context())}
			switch heuristicArg {
			case "", "manhattan":
			case "misplaced":
				opts = append(opts, astar.WithHeuristic(astar.Misplaced))
			default:
				return fmt.Errorf("unknown heuristic %q", heuristicArg)
			}
			if maxExpansions > 0 {
				opts = append(opts, astar.WithMaxExpansions(maxExpansions))
			}

			res, err := astar.Solve(start, goal, opts...)
			if err != nil {
				return err
			}

			if asJSON {
				frames := make([][]int, len(res.Path))
				for i, b := range res.Path {
					frames[i] = b.Tiles()
				}
				return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
					"cost":     res.Cost,
					"expanded": res.Expanded,
					"frames":   frames,
				})
			}

			fmt.Printf("solved in %d moves (%d expansions)\n", res.Cost, res.Expanded)
			if quiet {
				return nil
			}
			fmt.Println(start)
			for _, frame := range res.Path {
				fmt.Println(frame)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 3, "grid width")
	cmd.Flags().StringVar(&startArg, "start", "", "start configuration (required)")
	cmd.Flags().StringVar(&goalArg, "goal", "", "goal configuration (default: canonical)")
	cmd.Flags().StringVar(&heuristicArg, "heuristic", "manhattan", "manhattan or misplaced")
	cmd.Flags().IntVar(&maxExpansions, "max-expansions", 0, "abort after this many expansions (0 = unlimited)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit machine-readable output")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "print only the summary line")
	cmd.MarkFlagRequired("start")
	return cmd
}

func newScrambleCmd() *cobra.Command {
	var (
		size       int
		seed       int64
		walk       bool
		walkLength int
	)
	cmd := &cobra.Command{
		Use:   "scramble",
		Short: "Generate a solvable scrambled configuration",
		Example: `  npuzzle scramble --size 4
  npuzzle scramble --walk --walk-length 12 --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < board.MinSize || size > board.MaxSize {
				return fmt.Errorf("size %d out of range [%d, %d]", size, board.MinSize, board.MaxSize)
			}
			opts := []scramble.Option{scramble.WithSeed(seed)}
			if walk {
				opts = append(opts, scramble.WithMode(scramble.Walk))
				if walkLength > 0 {
					opts = append(opts, scramble.WithWalkLength(walkLength))
				}
			}
			b, err := scramble.Scramble(board.Goal(size), opts...)
			if err != nil {
				return err
			}
			tiles := make([]string, 0, b.Cells())
			for _, t := range b.Tiles() {
				tiles = append(tiles, strconv.Itoa(t))
			}
			fmt.Println(strings.Join(tiles, ","))
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 3, "grid width")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = clock)")
	cmd.Flags().BoolVar(&walk, "walk", false, "use a random walk instead of a uniform shuffle")
	cmd.Flags().IntVar(&walkLength, "walk-length", 0, "walk length in moves (0 = default)")
	return cmd
}

func newServeCmd() *cobra.Command {
	var (
		addr          string
		frameInterval time.Duration
		maxExpansions int
		debug         bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the playback server (REST + WebSocket frame streaming)",
		Example: `  npuzzle serve --addr :8080
  npuzzle serve --frame-interval 250ms --max-expansions 500000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				log.SetLevel(logrus.DebugLevel)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			hub := playback.NewHub(log)
			go hub.Run(ctx)

			srv := playback.NewServer(hub, playback.ServerConfig{
				FrameInterval: frameInterval,
				MaxExpansions: maxExpansions,
				Log:           log,
			})
			httpSrv := &http.Server{Addr: addr, Handler: srv}

			errCh := make(chan error, 1)
			go func() {
				log.WithField("addr", addr).Info("playback server listening")
				errCh <- httpSrv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpSrv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().DurationVar(&frameInterval, "frame-interval", playback.DefaultFrameInterval, "pace of streamed playback")
	cmd.Flags().IntVar(&maxExpansions, "max-expansions", 0, "server-side search budget (0 = unlimited)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	return cmd
}
