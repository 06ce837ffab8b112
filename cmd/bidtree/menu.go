package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/bidtree/bidtree/bst"
)

const (
	menuLoad    = 1
	menuDisplay = 2
	menuFind    = 3
	menuRemove  = 4
	menuExit    = 9
)

// Menu choice to traversal order, in the order they're offered.
var displayChoices = []struct {
	label string
	order bst.Order
}{
	{"Inorder Traversal", bst.InOrder},
	{"Postorder Traversal", bst.PostOrder},
	{"Preorder Traversal", bst.PreOrder},
}

// Runs the interactive menu until the exit choice or the end of input. find and remove act on
// key.
func (me *app) menu(in io.Reader, key string) error {
	scanner := bufio.NewScanner(in)
	readChoice := func() (int, bool) {
		me.printf("Enter choice: ")
		for scanner.Scan() {
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}
			choice, err := strconv.Atoi(text)
			if err != nil {
				return 0, true
			}
			return choice, true
		}
		me.printf("\n")
		return 0, false
	}
loop:
	for {
		me.printf("Menu:\n")
		me.printf("  1. Load Bids\n")
		me.printf("  2. Display All Bids\n")
		me.printf("  3. Find Bid\n")
		me.printf("  4. Remove Bid\n")
		me.printf("  9. Exit\n")
		choice, ok := readChoice()
		if !ok || choice == menuExit {
			break loop
		}
		if choice != menuLoad && me.idx == nil {
			switch choice {
			case menuDisplay, menuFind, menuRemove:
				me.printf("No bids loaded.\n")
			}
			continue
		}
		switch choice {
		case menuLoad:
			if _, err := me.load(); err != nil {
				me.printf("error loading bids: %v\n", err)
			}
		case menuDisplay:
			for i, dc := range displayChoices {
				me.printf("%d. %s\n", i+1, dc.label)
			}
			sub, ok := readChoice()
			if !ok {
				break loop
			}
			if sub < 1 || sub > len(displayChoices) {
				continue
			}
			if err := me.display(displayChoices[sub-1].order); err != nil {
				me.printf("%v\n", err)
			}
		case menuFind:
			me.find(key)
		case menuRemove:
			me.remove(key)
		}
	}
	me.printf("Good bye.\n")
	return scanner.Err()
}
