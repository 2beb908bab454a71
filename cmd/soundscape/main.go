// SPDX-License-Identifier: EPL-2.0

// Command soundscape plays, renders and inspects the intro soundscape.
//
// Usage:
//
//	soundscape play    [-duration d] [-open-at d] [-rate hz] [-log-level level]
//	soundscape render  -o out.{wav,aiff} [-duration d] [-open-at d] [-rate hz] [-seed n]
//	soundscape probe   file ...
//	soundscape convert [-rate hz] in.{wav,aiff,mp3,ogg} out.{wav,aiff}
//
// play unmutes the scene on the audio device and opens the door after
// -open-at. render produces the same sequence offline. probe decodes audio
// files and prints level and spectrum figures. convert resamples a file to
// mono 16-bit PCM.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	var err error
	switch args[0] {
	case "play":
		err = cmdPlay(args[1:], stderr)
	case "render":
		err = cmdRender(args[1:], stdout, stderr)
	case "probe":
		err = cmdProbe(args[1:], stdout, stderr)
	case "convert":
		err = cmdConvert(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintln(stderr, "soundscape:", err)
		return 1
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Usage: soundscape <command> [flags]

Commands:
  play     play the intro scene on the audio device
  render   render the intro scene to a WAV or AIFF file
  probe    print duration, level and spectral centroid of audio files
  convert  resample an audio file to mono 16-bit WAV or AIFF

Run "soundscape <command> -h" for the flags of a command.
`)
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// parse reports flag errors as usage errors; the FlagSet has already
// printed them.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	return nil
}
