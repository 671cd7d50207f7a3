// Command huffstream compresses or decompresses a byte stream with Huffman
// coding, writing the result to standard output.
//
// Usage:
//
//     huffstream [-c | -d] [-config file.yaml] [-b] [file]
//
// Without -c or -d, the mode comes from the name the command was invoked
// as: a name ending in "uncompress" decompresses, anything else compresses.
// The input is the named file, or standard input if none is given.
//
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/chronos-tachyon/huffstream"
	"github.com/chronos-tachyon/huffstream/internal/config"
	"github.com/chronos-tachyon/huffstream/internal/logger"
)

type mode int

const (
	modeCompress mode = iota
	modeDecompress
)

func (m mode) String() string {
	if m == modeDecompress {
		return "decompress"
	}
	return "compress"
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(filepath.Base(args[0]), flag.ContinueOnError)
	fs.SetOutput(stderr)
	compress := fs.Bool("c", false, "compress the input")
	decompress := fs.Bool("d", false, "decompress the input")
	configPath := fs.String("config", "", "optional YAML config file")
	_ = fs.Bool("b", false, "accepted for compatibility; the input is always treated as binary")
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}

	if *compress && *decompress {
		fmt.Fprintln(stderr, "-c and -d are mutually exclusive")
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "at most one input file may be given")
		return 2
	}

	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	log, err := logger.NewWithWriter(conf, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	m := modeFromName(args[0])
	switch {
	case *compress:
		m = modeCompress
	case *decompress:
		m = modeDecompress
	}

	codec := huffstream.Codec{
		Logger:     log,
		BufferSize: conf.Int("codec.buffer-size"),
	}

	if err := execute(codec, m, fs.Arg(0), stdin, stdout, log); err != nil {
		log.Error().Err(err).Stringer("mode", m).Msg("failed")
		return 1
	}
	return 0
}

func modeFromName(argv0 string) mode {
	if strings.HasSuffix(filepath.Base(argv0), "uncompress") {
		return modeDecompress
	}
	return modeCompress
}

func execute(codec huffstream.Codec, m mode, path string, stdin io.Reader, stdout io.Writer, log zerolog.Logger) error {
	in := stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "failed to open input")
		}
		defer f.Close()
		in = f
	}

	var n int64
	var err error
	switch m {
	case modeCompress:
		n, err = codec.Compress(stdout, in)
	case modeDecompress:
		n, err = codec.Decompress(stdout, in)
	}
	if err != nil {
		return err
	}

	log.Debug().Stringer("mode", m).Str("input", displayName(path)).Int64("bytes_written", n).Msg("done")
	return nil
}

func displayName(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}
