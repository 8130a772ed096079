// Command aiview imports a 3D asset and prints what the importer found.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/assimp"
	"github.com/wippyai/assimp/archive"
	"github.com/wippyai/assimp/fileio"
	"github.com/wippyai/assimp/formats"
)

func main() {
	if err := loadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: load .env: %v\n", err)
		os.Exit(1)
	}
	cfg, err := configFromEnv(os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var (
		file        = flag.String("file", "", "Model file, archive (.zip, .7z, .rar) or compressed asset (.gz, .zst, .xz, .lz4, .br)")
		member      = flag.String("member", "", "Archive member to import (default: first importable)")
		post        = flag.String("post", cfg.postProcess.String(), "Post-process steps, e.g. Triangulate|GenNormals or TargetRealtimeFast")
		bridge      = flag.Bool("bridge", false, "Read plain files through the Go I/O bridge")
		verbose     = flag.Bool("v", cfg.verbose, "Forward native debug logging")
		listFormats = flag.Bool("formats", false, "List importable formats and exit")
		probe       = flag.Bool("probe", false, "Read the model through the I/O bridge without importing it")
		interactive = flag.Bool("i", false, "Interactive scene browser")
	)
	flag.Parse()

	log, err := newLogger(cfg.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	assimp.SetLogger(log.Named("assimp"))
	fileio.SetLogger(log.Named("fileio"))
	archive.SetLogger(log.Named("archive"))

	if *listFormats {
		printFormats(os.Stdout)
		return
	}

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: aiview -file <model> [-post steps] [-member name] [-bridge] [-v]")
		fmt.Fprintln(os.Stderr, "       aiview -file <model> -probe")
		fmt.Fprintln(os.Stderr, "       aiview -file <model> -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "       aiview -formats")
		os.Exit(1)
	}

	flags, err := assimp.ParsePostProcess(*post)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	assimp.AttachLogger(log)
	defer assimp.DetachLoggers()
	assimp.SetVerboseLogging(*verbose)

	if err := run(*file, *member, flags, *bridge, *probe, *interactive, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(file, member string, flags assimp.PostProcess, useBridge, probeOnly, interactive bool, log *zap.Logger) error {
	src, err := openSource(file, member, useBridge || probeOnly, log)
	if err != nil {
		return fmt.Errorf("open %s: %w", file, err)
	}
	defer src.Close()

	if probeOnly {
		return probe(os.Stdout, src)
	}

	if interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode needs a terminal on stdout")
		}
		return runInteractive(src, file, flags)
	}

	scene, err := src.importScene(flags)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	defer scene.Close()

	printSummary(os.Stdout, scene)
	return nil
}

// probe reads the model through the bridge the importer would use and
// reports what came back, along with the bridge's C allocations.
func probe(w io.Writer, src *source) error {
	before := fileio.Stats()
	data, err := fileio.ReadFile(src.io, src.name)
	if err != nil {
		return fmt.Errorf("probe: %w", err)
	}
	after := fileio.Stats()

	fmt.Fprintf(w, "Path: %s\n", src.name)
	fmt.Fprintf(w, "Read: %d bytes\n", len(data))
	if fs := formats.ForPath(src.name); len(fs) > 0 {
		names := make([]string, len(fs))
		for i, f := range fs {
			names[i] = f.Name
		}
		fmt.Fprintf(w, "Format: %s\n", strings.Join(names, " or "))
	}
	fmt.Fprintf(w, "Records: %d created, %d live\n", after.RecordsCreated-before.RecordsCreated, after.Records)
	return nil
}

func printFormats(w io.Writer) {
	fmt.Fprintf(w, "assimp %s\n\n", assimp.Version())
	for _, f := range formats.ImportFormats() {
		mark := ""
		if f.Partial {
			mark = " (partial)"
		}
		supported := false
		for _, ext := range f.Extensions {
			if assimp.IsExtensionSupported(ext) {
				supported = true
				break
			}
		}
		if !supported {
			mark += " (not in this build)"
		}
		fmt.Fprintf(w, "  %-40s %-8s .%s%s\n", f.Name, f.Category, strings.Join(f.Extensions, " ."), mark)
	}
}
