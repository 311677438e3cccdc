// Command blockdump is a read-only inspection tool for a single serialized
// block. It never writes a block; it exists to exercise pkg/block's Handle
// and Cursor against files produced by an external kevo-compatible writer.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kevoblock/sstblock/pkg/block"
	"github.com/kevoblock/sstblock/pkg/common/log"
	"github.com/kevoblock/sstblock/pkg/config"
)

const helpText = `
blockdump - inspect a single LSM-tree block file.

Usage:
  blockdump [options] <block-file>

Options:
  -config PATH    load a JSON config (see pkg/config.Config)
  -seek KEY       seek to the first key >= KEY instead of a full scan
  -reverse        walk the block backward with Prev instead of Next
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("blockdump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a JSON config file")
	seekKey := fs.String("seek", "", "seek to the first key >= KEY")
	reverse := fs.Bool("reverse", false, "iterate backward with Prev")
	fs.Usage = func() { fmt.Fprint(stderr, helpText) }

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	cfg := config.NewDefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "blockdump: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	logger := log.Component("blockdump")
	switch cfg.LogLevel {
	case "debug":
		logger.SetLevel(log.LevelDebug)
	case "warn":
		logger.SetLevel(log.LevelWarn)
	case "error":
		logger.SetLevel(log.LevelError)
	default:
		logger.SetLevel(log.LevelInfo)
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "blockdump: %v\n", err)
		return 1
	}

	cmp := block.BytewiseComparator
	if cfg.Comparator == config.Reverse {
		cmp = block.ReverseComparator(cmp)
	}

	h := block.NewHandle(data, true)
	defer h.Release()
	logger.Info("opened block: %d restart points", h.Len())

	cursor := h.NewCursor(cmp)
	w := bufio.NewWriter(stdout)
	defer w.Flush()

	if *seekKey != "" {
		cursor.Seek([]byte(*seekKey))
	} else if *reverse {
		cursor.SeekToLast()
	} else {
		cursor.SeekToFirst()
	}

	step := cursor.Next
	if *reverse {
		step = cursor.Prev
	}

	count := 0
	for cursor.Valid() {
		fmt.Fprintf(w, "%s\t%s\n", cursor.Key(), cursor.Value())
		count++
		if *seekKey != "" {
			break
		}
		step()
	}

	if err := cursor.Status(); err != nil {
		logger.Error("cursor corruption: %v", err)
		if cfg.StrictMode {
			return 1
		}
	}

	logger.Debug("printed %d entries", count)
	return 0
}
