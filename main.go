package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gookit/color"

	"twinmaze/pkg/engine/input"
	"twinmaze/pkg/engine/terminal"
	"twinmaze/pkg/game/config"
	"twinmaze/pkg/game/devtools"
	"twinmaze/pkg/game/gameplay"
	"twinmaze/pkg/game/menu"
	"twinmaze/pkg/game/renderer"
	"twinmaze/pkg/game/renderer/tui"
	"twinmaze/pkg/game/setup"
	"twinmaze/pkg/game/state"
	"twinmaze/pkg/logger"
)

type options struct {
	seed       uint64
	configPath string
	maze       int
	view       renderer.View
	dump       bool
	screenshot bool
	play       bool
	bindings   bool
}

func main() {
	seed := flag.Uint64("seed", 0, "puzzle seed (room id); 0 picks one from the clock")
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	maze := flag.Int("maze", 1, "chamber the explorer view starts on (1-based)")
	view := flag.String("view", "both", "which screen to draw: explorer, navigator or both")
	dump := flag.Bool("dump", false, "write a full debug dump to map.txt")
	screenshot := flag.Bool("screenshot", false, "save the explorer view as an HTML file")
	noColor := flag.Bool("no-color", false, "disable colored output")
	play := flag.Bool("play", false, "read commands from stdin until the exit opens")
	bindings := flag.Bool("bindings", false, "print the command bindings and exit")
	flag.Parse()

	v, ok := renderer.ParseView(*view)
	if !ok {
		fmt.Fprintf(os.Stderr, "twinmaze: unknown view %q\n", *view)
		os.Exit(2)
	}

	if *noColor || !terminal.IsTerminal() {
		color.Disable()
	}

	opts := options{
		seed:       *seed,
		configPath: *configPath,
		maze:       *maze,
		view:       v,
		dump:       *dump,
		screenshot: *screenshot,
		play:       *play,
		bindings:   *bindings,
	}
	if opts.seed == 0 {
		opts.seed = uint64(time.Now().UnixNano()) | 1
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "twinmaze: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	logConfig, err := logger.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("logging config: %w", err)
	}
	if err := logger.Initialize(logConfig); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := menu.Apply(cfg.Bindings); err != nil {
		return fmt.Errorf("config bindings: %w", err)
	}
	if opts.bindings {
		for _, line := range menu.HelpLines() {
			fmt.Println(line)
		}
		return nil
	}

	p, err := state.Generate(opts.seed, state.Options{Config: cfg})
	if err != nil {
		return err
	}
	if err := setup.CheckSolvability(p); err != nil {
		return err
	}

	s := gameplay.NewSession(p)
	if err := s.Explorer.SelectMaze(opts.maze - 1); err != nil {
		return fmt.Errorf("-maze %d: %w", opts.maze, err)
	}

	renderer.SetRenderer(tui.New())
	renderer.Init()

	if opts.dump {
		if err := writeDump(s); err != nil {
			return err
		}
	}
	if opts.screenshot {
		path, err := devtools.SaveScreenshotHTML(s, ".")
		if err != nil {
			return fmt.Errorf("screenshot: %w", err)
		}
		fmt.Printf("Screenshot written to %s\n", path)
	}

	if !opts.play {
		renderer.RenderFrame(os.Stdout, s, opts.view)
		fmt.Println()
		return nil
	}
	return play(s, opts.view)
}

// play runs the command loop until the exit opens, the player quits, or
// stdin closes
func play(s *gameplay.Session, view renderer.View) error {
	interactive := terminal.IsTerminal()

	frame := view
	for !s.Quit {
		if interactive {
			renderer.Clear()
		}
		renderer.RenderFrame(os.Stdout, s, frame)

		intent, err := renderer.GetInput()
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		s.ProcessIntent(intent)
		logger.Debug("intent processed", "action", input.ActionName(intent.Action), "position", s.Navigator.Position().String())

		if s.DumpRequested {
			if err := writeDump(s); err != nil {
				s.Navigator.AddMessage(fmt.Sprintf("Dump failed: %v", err))
			}
		}

		frame = view
		if s.ShowMap {
			frame = renderer.ViewBoth
		}
	}

	for _, msg := range s.Navigator.Messages {
		fmt.Println(msg)
	}
	return nil
}

func writeDump(s *gameplay.Session) error {
	pos := s.Navigator.Position()
	path, err := devtools.DumpToFile(s.Puzzle, &pos, ".")
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	s.Navigator.AddMessage(fmt.Sprintf("Map dumped to %s", path))
	logger.Info("map dumped", "path", path)
	return nil
}
