package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/gookit/color"

	"github.com/lawnchairsociety/dungeongen/internal/dice"
	"github.com/lawnchairsociety/dungeongen/internal/dungeon"
	"github.com/lawnchairsociety/dungeongen/internal/items"
	"github.com/lawnchairsociety/dungeongen/internal/logger"
	"github.com/lawnchairsociety/dungeongen/internal/room"
	"github.com/lawnchairsociety/dungeongen/internal/settings"
	"github.com/lawnchairsociety/dungeongen/internal/trap"
)

const (
	modeItems   = "items"
	modeRooms   = "rooms"
	modeDungeon = "dungeon"
)

// options holds the parsed command line
type options struct {
	mode         string
	settingsPath string
	loggingPath  string
	itemsPath    string
	trapsPath    string
	seed         int64
	out          string
	showMap      bool
	noColor      bool
	overrides    knobFlags
}

// knobFlags collects repeated -set key=value flags
type knobFlags map[string]string

func (k knobFlags) String() string {
	keys := make([]string, 0, len(k))
	for key := range k {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+k[key])
	}
	return strings.Join(parts, ",")
}

func (k knobFlags) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	k[strings.TrimSpace(key)] = strings.TrimSpace(val)
	return nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	if err := run(opts, os.Stdout); err != nil {
		logger.Errorf("Generation failed: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Close()
		os.Exit(1)
	}
	logger.Close()
}

// parseFlags reads the command line into options
func parseFlags(args []string, errOut io.Writer) (options, error) {
	opts := options{overrides: knobFlags{}}

	fs := flag.NewFlagSet("dungeongen", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&opts.mode, "mode", modeDungeon, "What to generate: items, rooms or dungeon")
	fs.StringVar(&opts.settingsPath, "settings", "dungeongen.yaml", "Path to settings YAML (missing file uses defaults)")
	fs.StringVar(&opts.loggingPath, "logging", "", "Path to YAML with a logging section (default: the settings file)")
	fs.StringVar(&opts.itemsPath, "items", "", "Path to an item tables YAML (default: built-in tables)")
	fs.StringVar(&opts.trapsPath, "traps", "", "Path to a trap table YAML (default: built-in table)")
	fs.Int64Var(&opts.seed, "seed", 0, "Random seed (0 picks one from the clock)")
	fs.StringVar(&opts.out, "out", "", "Output file (empty for stdout)")
	fs.BoolVar(&opts.showMap, "map", false, "Print an ASCII map and legend (dungeon mode; stderr when YAML goes to stdout)")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable colored map output")
	fs.Var(opts.overrides, "set", "Override a settings knob, e.g. -set room_count=20 (repeatable)")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch opts.mode {
	case modeItems, modeRooms, modeDungeon:
	default:
		err := fmt.Errorf("invalid -mode %q: want %s, %s or %s", opts.mode, modeItems, modeRooms, modeDungeon)
		fmt.Fprintln(errOut, "Error:", err)
		return opts, err
	}
	if opts.loggingPath == "" {
		opts.loggingPath = opts.settingsPath
	}

	return opts, nil
}

// run generates and writes the requested output
func run(opts options, stdout io.Writer) error {
	logConfig, err := logger.LoadConfig(opts.loggingPath)
	if err != nil {
		return err
	}
	if err := logger.Initialize(logConfig); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	s, err := settings.LoadSettings(opts.settingsPath)
	if err != nil {
		return err
	}
	if len(opts.overrides) > 0 {
		if s, err = s.Apply(opts.overrides); err != nil {
			return err
		}
	}

	populator, rooms, err := loadTables(opts)
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := dice.NewSeededRoller(seed)

	logger.Info("Generating",
		"mode", opts.mode,
		"seed", seed,
		"room_count", s.RoomCount,
		"room_size", s.RoomSize,
		"room_type", s.RoomType,
	)

	out := stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	header := outputHeader{Mode: opts.mode, Seed: seed, Settings: s}

	switch opts.mode {
	case modeItems:
		list := populator.PopulateItems(s, r)
		for _, item := range list {
			logger.Debugf("Rolled %s (%s)", item.Label(), item.Rarity)
		}
		logger.Info("Generated items", "count", items.TotalCount(list))
		return WriteItemsYAML(out, header, list)

	case modeRooms:
		generated, err := rooms.GenerateRooms(s, r)
		if err != nil {
			return err
		}
		room.AssignRoomNumbers(generated)
		logger.Info("Generated rooms", "count", len(generated))
		return WriteRoomsYAML(out, header, generated, r)
	}

	d, err := dungeon.NewGenerator(rooms, nil).Generate(s, r)
	if err != nil {
		return err
	}
	logger.Info("Generated dungeon",
		"rooms", len(d.Rooms),
		"requested", s.RoomCount,
		"doors", len(d.Doors.All()),
		"grid_width", d.MapDimensions.GridWidth,
		"grid_height", d.MapDimensions.GridHeight,
	)
	if len(d.Rooms) < s.RoomCount {
		logger.Warningf("Grid filled after %d of %d rooms", len(d.Rooms), s.RoomCount)
	}

	if err := WriteDungeonYAML(out, header, d, r); err != nil {
		return err
	}

	if opts.showMap {
		// Keep stdout clean when it carries the YAML
		mapOut := stdout
		if opts.out == "" {
			mapOut = os.Stderr
		}
		color.Enable = !opts.noColor
		fmt.Fprint(mapOut, RenderMap(d))
	}

	if opts.out != "" {
		logger.Infof("Output written to %s", opts.out)
	}
	return nil
}

// loadTables builds the item populator and room generator, replacing the
// built-in item and trap tables with files when given.
func loadTables(opts options) (*items.Populator, *room.Generator, error) {
	populator := items.DefaultPopulator()
	if opts.itemsPath != "" {
		tables, err := items.LoadTables(opts.itemsPath)
		if err != nil {
			return nil, nil, err
		}
		populator = items.NewPopulator(tables)
		logger.Debugf("Loaded %d item entries from %s", len(tables.Entries()), opts.itemsPath)
	}

	traps := trap.DefaultTable()
	if opts.trapsPath != "" {
		table, err := trap.LoadTable(opts.trapsPath)
		if err != nil {
			return nil, nil, err
		}
		traps = table
		logger.Debugf("Loaded %d traps from %s", len(traps.Traps), opts.trapsPath)
	}

	return populator, room.NewGenerator(populator, traps), nil
}
