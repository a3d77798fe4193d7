// Command bsalist prints the directory and file tree of a BSA archive,
// one entry per line.
package main

import (
	"fmt"
	"os"

	"github.com/bgrewell/usage"
	"github.com/forgekit/bsa-kit"
)

func main() {
	u := usage.NewUsage(
		usage.WithApplicationVersion("0.1.0"),
		usage.WithApplicationName("bsalist"),
		usage.WithApplicationDescription("bsalist prints the directory and file tree of a Bethesda Softworks Archive."),
	)

	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	hashes := u.AddBooleanOption("H", "hashes", false, "Print each entry's name hash alongside its name", "", nil)
	path := u.AddArgument(1, "archive-path", "Path to the .bsa file to list", "")
	parsed := u.Parse()

	if !parsed {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(1)
	}
	if *help {
		u.PrintUsage()
		os.Exit(0)
	}
	if path == nil || *path == "" {
		u.PrintError(fmt.Errorf("path to the archive must be provided"))
		os.Exit(1)
	}

	f, err := os.Open(*path)
	if err != nil {
		u.PrintError(err)
		os.Exit(1)
	}
	defer f.Close()

	a, err := bsa.Open(f)
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
		name := d.Name
		if name == "" {
			name = "(root)"
		}
		if *hashes {
			fmt.Printf("%s/ [%016x]\n", name, uint64(d.Hash))
		} else {
			fmt.Printf("%s/\n", name)
		}
		for _, fe := range d.Files {
			if *hashes {
				fmt.Printf("  %s [%016x]\n", fe.Name, uint64(fe.Hash))
			} else {
				fmt.Printf("  %s\n", fe.Name)
			}
		}
	}
}
