// Command bsaextract extracts every file from a BSA archive to an output
// directory, rendering a progress spinner when stdout is a terminal.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bgrewell/usage"
	"github.com/forgekit/bsa-kit"
	"github.com/forgekit/bsa-kit/pkg/logging"
	"github.com/forgekit/bsa-kit/pkg/option"
	"github.com/theckman/yacspin"
	"golang.org/x/term"
)

func main() {
	u := usage.NewUsage(
		usage.WithApplicationVersion("0.1.0"),
		usage.WithApplicationName("bsaextract"),
		usage.WithApplicationDescription("bsaextract extracts every file from a Bethesda Softworks Archive to an output directory."),
	)

	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	debug := u.AddBooleanOption("v", "verbose", false, "Enable verbose (debug) logging", "", nil)
	trace := u.AddBooleanOption("vv", "trace", false, "Enable trace logging", "", nil)
	archivePath := u.AddArgument(1, "archive-path", "Path to the .bsa file to extract", "")
	outputDir := u.AddArgument(2, "output-dir", "Output directory for extracted files", "./extracted")
	parsed := u.Parse()

	if !parsed {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(1)
	}
	if *help {
		u.PrintUsage()
		os.Exit(0)
	}
	if archivePath == nil || *archivePath == "" {
		u.PrintError(fmt.Errorf("path to the archive must be provided"))
		os.Exit(1)
	}

	var logOpts []option.OpenOption
	if *trace {
		logOpts = append(logOpts, option.WithLogger(logging.NewLogger(logging.NewSimpleLogger(os.Stderr, logging.LEVEL_TRACE, true))))
	} else if *debug {
		logOpts = append(logOpts, option.WithLogger(logging.NewLogger(logging.NewSimpleLogger(os.Stderr, logging.LEVEL_DEBUG, true))))
	}

	var spinner *yacspin.Spinner
	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if interactive {
		cfg := yacspin.Config{
			Frequency:       100 * time.Millisecond,
			CharSet:         yacspin.CharSets[9],
			Suffix:          " extracting",
			SuffixAutoColon: true,
			Message:         "starting",
			StopCharacter:   "✓",
			StopColors:      []string{"fgGreen"},
		}
		s, err := yacspin.New(cfg)
		if err == nil {
			spinner = s
			spinner.Start()
		}
	}

	progress := func(name string, written, total int64, fileNumber, totalFiles int) {
		if spinner == nil {
			return
		}
		spinner.Message(fmt.Sprintf("%s (%d/%d bytes)", name, written, total))
	}
	logOpts = append(logOpts, option.WithExtractionProgress(progress))

	f, err := os.Open(*archivePath)
	if err != nil {
		u.PrintError(err)
		os.Exit(1)
	}
	defer f.Close()

	a, err := bsa.Open(f, logOpts...)
	if err != nil {
		u.PrintError(err)
		os.Exit(1)
	}

	dirs, err := a.List()
	if err != nil {
		u.PrintError(err)
		os.Exit(1)
	}

	for _, d := range dirs {
		destDir := filepath.Join(*outputDir, d.Name)
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			u.PrintError(err)
			os.Exit(1)
		}
		for _, fe := range d.Files {
			destPath := filepath.Join(destDir, filepath.Base(fe.Name))
			out, err := os.Create(destPath)
			if err != nil {
				u.PrintError(err)
				os.Exit(1)
			}
			err = a.Extract(fe, out)
			out.Close()
			if err != nil {
				u.PrintError(fmt.Errorf("extract %s: %w", fe.Name, err))
				os.Exit(1)
			}
		}
	}

	if spinner != nil {
		spinner.Stop()
	}

	fmt.Printf("Extraction completed successfully to '%s'.\n", *outputDir)
}
