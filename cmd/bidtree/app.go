package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/bidtree/bidtree"
	"github.com/bidtree/bidtree/bst"
)

// Shared state for the subcommands and the menu.
type app struct {
	out       io.Writer
	csvPath   string
	backend   string
	loaderCfg *bidtree.LoaderConfig
	// Nil until bids have been loaded.
	idx bidtree.Index
}

func (me *app) printf(format string, args ...any) {
	fmt.Fprintf(me.out, format, args...)
}

func (me *app) printTime(d time.Duration) {
	me.printf("time: %v\n", d)
}

// Replaces any existing index with a fresh one holding the contents of the bids file.
func (me *app) load() (stats bidtree.LoadStats, err error) {
	idx, err := bidtree.NewIndex(me.backend)
	if err != nil {
		return
	}
	if fi, statErr := os.Stat(me.csvPath); statErr == nil {
		me.printf("Loading CSV file %s (%s)\n", me.csvPath, humanize.Bytes(uint64(fi.Size())))
	} else {
		me.printf("Loading CSV file %s\n", me.csvPath)
	}
	stats, err = bidtree.LoadBidsFile(me.csvPath, idx, me.loaderCfg)
	if err != nil {
		return
	}
	me.idx = idx
	me.printf("%s bids read\n", humanize.Comma(int64(stats.Inserted+stats.Replaced)))
	if stats.Skipped != 0 {
		me.printf("%s malformed rows skipped\n", humanize.Comma(int64(stats.Skipped)))
	}
	me.printTime(stats.Elapsed)
	return
}

func (me *app) display(order bst.Order) error {
	seq, err := bidtree.Traverse(me.idx, order)
	if err != nil {
		return err
	}
	for b := range seq {
		me.printf("%v\n", b)
	}
	return nil
}

func (me *app) find(key string) {
	started := time.Now()
	found := me.idx.Search(key)
	elapsed := time.Since(started)
	if found.Ok {
		me.printf("%v\n", found.Value)
	} else {
		me.printf("Bid Id %s not found.\n", key)
	}
	me.printTime(elapsed)
}

func (me *app) remove(key string) {
	if !me.idx.Remove(key).Ok {
		me.printf("Bid Id %s not found.\n", key)
		return
	}
	me.printf("Bid Id %s removed.\n", key)
}

// Prints size and shape information for the loaded index.
func (me *app) stats(stats bidtree.LoadStats, check bool) error {
	me.printf("backend: %s\n", me.backend)
	me.printf("rows: %s\n", humanize.Comma(int64(stats.Rows)))
	me.printf("bids: %s\n", humanize.Comma(int64(me.idx.Len())))
	me.printf("replaced: %s\n", humanize.Comma(int64(stats.Replaced)))
	me.printf("skipped: %s\n", humanize.Comma(int64(stats.Skipped)))
	t, ok := me.idx.(interface {
		Tree() *bst.Tree[string, bidtree.Bid]
	})
	if !ok {
		return nil
	}
	me.printf("height: %s\n", humanize.Comma(int64(t.Tree().Height())))
	if lo, hi := t.Tree().Min(), t.Tree().Max(); lo.Ok {
		me.printf("ids: %s .. %s\n", lo.Value.Key, hi.Value.Key)
	}
	if check {
		if err := t.Tree().Check(); err != nil {
			return fmt.Errorf("checking tree: %w", err)
		}
		me.printf("tree ok\n")
	}
	return nil
}
