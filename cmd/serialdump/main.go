package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/averbraeck/djutils-sub014/dump"
	"github.com/averbraeck/djutils-sub014/serial"
	"github.com/averbraeck/djutils-sub014/serial/endian"
)

func main() {
	var (
		file        = flag.String("file", "", "Path to a binary wire stream ('-' for stdin)")
		hexStr      = flag.String("hex", "", "Inline hex string input (spaces allowed)")
		endianFlag  = flag.String("endian", "big", "Byte order: big or little")
		catalogFile = flag.String("catalog", "", "YAML catalog extension file (optional)")
		verbose     = flag.Bool("v", false, "Verbose decode logging to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *file == "" && *hexStr == "" {
		fmt.Fprintln(os.Stderr, "Usage: serialdump -file <stream.bin> [-endian big|little] [-catalog cat.yaml]")
		fmt.Fprintln(os.Stderr, "       serialdump -hex '02 00 00 00 2a'")
		fmt.Fprintln(os.Stderr, "       serialdump -file <stream.bin> -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*file, *hexStr, *endianFlag, *catalogFile, *verbose, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(file, hexStr, endianFlag, catalogFile string, verbose, interactive bool) error {
	data, err := readInput(file, hexStr)
	if err != nil {
		return err
	}

	var num endian.Decoder
	switch endianFlag {
	case "big":
		num = endian.Big
	case "little":
		num = endian.Little
	default:
		return fmt.Errorf("unknown byte order %q (want big or little)", endianFlag)
	}

	var catalog serial.Catalog = serial.Standard()
	if catalogFile != "" {
		f, err := os.Open(catalogFile)
		if err != nil {
			return fmt.Errorf("open catalog: %w", err)
		}
		fc, err := serial.LoadCatalog(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		catalog = fc
	}

	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer logger.Sync()
		dump.SetLogger(logger)
	}

	if interactive {
		return runInteractive(data, catalog, num)
	}

	d := dump.New(os.Stdout, catalog, num)
	// Narrow terminals get a compact hex column.
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width < 140 {
			d.WithBytesPerRow(8)
		}
	}

	if _, err := d.Write(data); err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	if err := d.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	fmt.Printf("\n%d bytes, %d fields\n", len(data), d.Fields())
	return nil
}

func readInput(file, hexStr string) ([]byte, error) {
	if hexStr != "" {
		cleaned := strings.Map(func(r rune) rune {
			switch r {
			case ' ', '\t', '\n', '\r':
				return -1
			}
			return r
		}, hexStr)
		data, err := hex.DecodeString(cleaned)
		if err != nil {
			return nil, fmt.Errorf("parse hex input: %w", err)
		}
		return data, nil
	}

	if file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}
