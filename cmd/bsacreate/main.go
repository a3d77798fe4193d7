// Command bsacreate packs a directory tree into a BSA archive. Each
// immediate subdirectory of the source tree becomes one archive directory;
// files directly inside those subdirectories become its members.
package main

import (
	"fmt"
	"os"

	"github.com/bgrewell/usage"
	"github.com/forgekit/bsa-kit"
	"github.com/forgekit/bsa-kit/pkg/archive"
	"github.com/forgekit/bsa-kit/pkg/consts"
	"github.com/forgekit/bsa-kit/pkg/logging"
	"github.com/forgekit/bsa-kit/pkg/option"
	"github.com/forgekit/bsa-kit/pkg/version"
)

func main() {
	u := usage.NewUsage(
		usage.WithApplicationVersion("0.1.0"),
		usage.WithApplicationName("bsacreate"),
		usage.WithApplicationDescription("bsacreate packs a directory tree into a Bethesda Softworks Archive. Each immediate subdirectory of the source tree becomes one archive directory."),
	)

	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	verbose := u.AddBooleanOption("v", "verbose", false, "Enable verbose (debug) logging", "", nil)
	compress := u.AddBooleanOption("c", "compress", false, "Set the CompressedArchive flag (v10X only)", "", nil)
	embedNames := u.AddBooleanOption("e", "embed-names", false, "Set the EmbedFileNames flag (v10X only)", "", nil)
	sourceDir := u.AddArgument(1, "source-directory", "Directory tree to pack", "")
	outputPath := u.AddArgument(2, "output-path", "Output archive path", "out.bsa")
	variantArg := u.AddArgument(3, "variant", "Archive variant: v001, v103, v104, or v105", "v105")
	parsed := u.Parse()

	if !parsed {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(1)
	}
	if *help {
		u.PrintUsage()
		os.Exit(0)
	}
	if sourceDir == nil || *sourceDir == "" {
		u.PrintError(fmt.Errorf("source directory must be provided"))
		os.Exit(1)
	}

	var v version.Version
	switch *variantArg {
	case "v001":
		v = version.V001()
	case "v103":
		v = version.NewV10X(version.V103)
	case "v104":
		v = version.NewV10X(version.V104)
	case "v105":
		v = version.NewV10X(version.V105)
	default:
		u.PrintError(fmt.Errorf("unknown variant %q", *variantArg))
		os.Exit(1)
	}

	archiveFlags := consts.DefaultArchiveFlags
	if *compress {
		archiveFlags |= consts.CompressedArchive
	}
	if *embedNames {
		archiveFlags |= consts.EmbedFileNames
	}

	var logger *logging.Logger
	if *verbose {
		logger = logging.NewLogger(logging.NewSimpleLogger(os.Stderr, logging.LEVEL_DEBUG, true))
	}

	entries, err := os.ReadDir(*sourceDir)
	if err != nil {
		u.PrintError(err)
		os.Exit(1)
	}

	var dirs []archive.DirSource
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		d, err := archive.DirSourceFromFS(*sourceDir+string(os.PathSeparator)+e.Name(), e.Name())
		if err != nil {
			u.PrintError(err)
			os.Exit(1)
		}
		if len(d.Files) == 0 {
			continue
		}
		dirs = append(dirs, d)
	}

	out, err := os.Create(*outputPath)
	if err != nil {
		u.PrintError(err)
		os.Exit(1)
	}
	defer out.Close()

	err = bsa.WriteArchive(out, dirs,
		option.WithVariant(v),
		option.WithArchiveFlags(archiveFlags),
		option.WithCreateLogger(logger),
	)
	if err != nil {
		u.PrintError(err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d directories) to '%s'.\n", v, len(dirs), *outputPath)
}
