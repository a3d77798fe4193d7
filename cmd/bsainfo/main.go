// Command bsainfo prints summary metadata about a BSA archive: its
// version, directory and file counts, and the total of the file sizes
// stored in its file records (on-disk sizes, not decompressed sizes).
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
		usage.WithApplicationName("bsainfo"),
		usage.WithApplicationDescription("bsainfo prints summary metadata about a Bethesda Softworks Archive: its version, directory and file counts, and total size."),
	)

	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	verbose := u.AddBooleanOption("v", "verbose", false, "List each directory and file", "", nil)
	path := u.AddArgument(1, "archive-path", "Path to the .bsa file to inspect", "")
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

	var fileCount int
	var totalSize uint64
	for _, d := range dirs {
		fileCount += len(d.Files)
		for _, fe := range d.Files {
			totalSize += uint64(fe.Size)
		}
	}

	fmt.Println("=== Archive Information ===")
	fmt.Printf("Version: %s\n", a.Version())
	fmt.Printf("Directories: %d\n", len(dirs))
	fmt.Printf("Files: %d\n", fileCount)
	fmt.Printf("Total Size: %d bytes (%.2f MB)\n", totalSize, float64(totalSize)/1024/1024)

	if *verbose {
		fmt.Println("\n=== Contents ===")
		for _, d := range dirs {
			name := d.Name
			if name == "" {
				name = "(root)"
			}
			fmt.Printf("%s/\n", name)
			for _, fe := range d.Files {
				compressed := ""
				if fe.Compressed {
					compressed = " [compressed]"
				}
				fmt.Printf("  %s (%d bytes)%s\n", fe.Name, fe.Size, compressed)
			}
		}
	}
}
