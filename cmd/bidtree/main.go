// Loads a monthly sales export into an ordered bid index and queries it.
//
// Example run:
// $ go run ./cmd/bidtree --csv eBid_Monthly_Sales_Dec_2016.csv find 98104
// Loading CSV file eBid_Monthly_Sales_Dec_2016.csv (2.1 MB)
// 12,023 bids read
// time: 31.870542ms
// 98104: Hoover Steam Vac | 27.00 | General Fund
// time: 1.041µs

package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/envpprof"
	"github.com/anacrolix/log"
	"github.com/davecgh/go-spew/spew"

	"github.com/bidtree/bidtree"
	"github.com/bidtree/bidtree/bst"
)

type args struct {
	Csv     string `default:"eBid_Monthly_Sales_Dec_2016.csv" help:"bids file to load"`
	Backend string `default:"bst" help:"index implementation: bst, tidwall, google or ajwerner"`
	Key     string `default:"98104" help:"bid Id the menu finds and removes"`
	Strict  bool   `help:"fail on the first malformed row instead of skipping it"`
	Debug   bool

	*MenuCmd   `arg:"subcommand:menu"`
	*FindCmd   `arg:"subcommand:find"`
	*ListCmd   `arg:"subcommand:list"`
	*RemoveCmd `arg:"subcommand:remove"`
	*StatsCmd  `arg:"subcommand:stats"`
}

// Takes the bids file and key positionally, like the menu program always has. Either falls back
// to the corresponding global flag.
type MenuCmd struct {
	CsvPath string `arg:"positional" help:"bids file to load"`
	Key     string `arg:"positional" help:"bid Id used by find and remove"`
}

type FindCmd struct {
	Key  string `arg:"positional,required"`
	Spew bool   `help:"dump the bid with go-spew"`
}

type ListCmd struct {
	Order bst.Order `default:"in" help:"traversal order: in, pre or post"`
}

type RemoveCmd struct {
	Keys  []string  `arg:"positional,required"`
	Order bst.Order `default:"in" help:"order to list the remaining bids in"`
}

type StatsCmd struct {
	Check bool `help:"verify the tree ordering invariant"`
}

func main() {
	defer envpprof.Stop()
	if err := mainErr(); err != nil {
		log.Printf("error in main: %v", err)
		os.Exit(1)
	}
}

func newApp(flags *args) *app {
	level := log.Warning
	if flags.Debug {
		level = log.Debug
	}
	cfg := bidtree.NewDefaultLoaderConfig()
	cfg.Strict = flags.Strict
	cfg.Logger = log.Default.WithNames("bidtree").WithFilterLevel(level)
	return &app{
		out:       os.Stdout,
		csvPath:   flags.Csv,
		backend:   flags.Backend,
		loaderCfg: cfg,
	}
}

func mainErr() error {
	var flags args
	p := arg.MustParse(&flags)
	a := newApp(&flags)
	switch {
	case flags.MenuCmd != nil || p.Subcommand() == nil:
		// The interactive menu is also what you get with no subcommand.
		var key string
		a.csvPath, key = menuArgs(&flags)
		return a.menu(os.Stdin, key)
	case flags.FindCmd != nil:
		return runFind(a, flags.FindCmd)
	case flags.ListCmd != nil:
		if _, err := a.load(); err != nil {
			return err
		}
		return a.display(flags.ListCmd.Order)
	case flags.RemoveCmd != nil:
		if _, err := a.load(); err != nil {
			return err
		}
		for _, key := range flags.RemoveCmd.Keys {
			a.remove(key)
		}
		return a.display(flags.RemoveCmd.Order)
	case flags.StatsCmd != nil:
		stats, err := a.load()
		if err != nil {
			return err
		}
		return a.stats(stats, flags.StatsCmd.Check)
	default:
		p.Fail(fmt.Sprintf("unexpected subcommand: %v", p.Subcommand()))
		panic("unreachable")
	}
}

// Returns the bids file and key for the menu.
func menuArgs(flags *args) (csvPath, key string) {
	csvPath, key = flags.Csv, flags.Key
	if cmd := flags.MenuCmd; cmd != nil {
		if cmd.CsvPath != "" {
			csvPath = cmd.CsvPath
		}
		if cmd.Key != "" {
			key = cmd.Key
		}
	}
	return
}

func runFind(a *app, cmd *FindCmd) error {
	if _, err := a.load(); err != nil {
		return err
	}
	if !cmd.Spew {
		a.find(cmd.Key)
		return nil
	}
	found := a.idx.Search(cmd.Key)
	if !found.Ok {
		return fmt.Errorf("bid %q not found", cmd.Key)
	}
	spew.Fdump(a.out, found.Value)
	return nil
}
