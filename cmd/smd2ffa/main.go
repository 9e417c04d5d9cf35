// Command smd2ffa converts SMD skeletal animations into FFA files.
//
//	smd2ffa [-chunks 10,35,3] [-config profile.yaml] [-sidecar zstd] [-dump] [-q] file.smd...
//
// Without -chunks and without chunk_sizes in the profile the chunk lengths
// are read from stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/arloliu/ffaconv/config"
	"github.com/arloliu/ffaconv/convert"
	"github.com/arloliu/ffaconv/internal/trace"
)

const chunkPrompt = "Enter chunk lengths, separated by commas (e.g., 10,35,3): "

func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	fs := flag.NewFlagSet("smd2ffa", flag.ContinueOnError)
	fs.SetOutput(stdout)

	var (
		chunks        = fs.String("chunks", "", "comma separated chunk lengths in frames, e.g. 10,35,3")
		profilePath   = fs.String("config", "", "YAML conversion profile")
		sidecar       = fs.String("sidecar", "", "also write a compressed copy: none, zstd, s2 or lz4")
		skipUnchanged = fs.Bool("skip-unchanged", false, "leave outputs whose content would not change")
		dump          = fs.Bool("dump", false, "dump the layout of every written file")
		quiet         = fs.Bool("q", false, "only report errors")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	files := existingFiles(fs.Args())
	if len(files) == 0 {
		fmt.Fprintln(stdout, "Usage: smd2ffa [flags] file.smd...")
		fs.PrintDefaults()

		return 1
	}

	profile := config.Default()
	if *profilePath != "" {
		p, err := config.Load(*profilePath)
		if err != nil {
			log.Printf("Invalid profile: %v", err)
			return 1
		}
		profile = p
	}
	if *sidecar != "" {
		profile.Sidecar = *sidecar
	}
	if *skipUnchanged {
		profile.SkipUnchanged = true
	}

	if *chunks == "" && len(profile.ChunkSizes) == 0 {
		fmt.Fprint(stdout, chunkPrompt)
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && line == "" {
			log.Printf("Invalid input: %v", err)
			return 1
		}
		*chunks = strings.TrimSpace(line)
	}
	if *chunks != "" {
		sizes, err := config.ParseChunkSizes(*chunks)
		if err != nil {
			log.Printf("Invalid input: %v. Please enter positive, comma-separated numbers.", err)
			return 1
		}
		profile.ChunkSizes = sizes
	}

	logger := trace.New(stdout)
	if *quiet {
		logger = nil
	}

	opts := []convert.Option{convert.WithLogger(logger)}
	if *dump {
		opts = append(opts, convert.WithLayoutDump(stdout))
	}

	c, err := convert.New(profile, opts...)
	if err != nil {
		log.Printf("Invalid settings: %v", err)
		return 1
	}

	sum := c.Run(files)
	if !sum.OK() {
		for path, err := range sum.Errors {
			log.Printf("%s: %v", path, err)
		}

		return 1
	}

	return 0
}

// existingFiles keeps the arguments naming regular files.
func existingFiles(args []string) []string {
	files := make([]string, 0, len(args))
	for _, arg := range args {
		if st, err := os.Stat(arg); err == nil && st.Mode().IsRegular() {
			files = append(files, arg)
		}
	}

	return files
}
