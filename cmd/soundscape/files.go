// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/soundscape"
	"github.com/ik5/soundscape/analysis"
	"github.com/ik5/soundscape/audio"
	"github.com/ik5/soundscape/formats"
)

func open(reg *audio.Registry, path string) (audio.Source, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	src, err := reg.Decode(formats.FromPath(path), f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return src, f, nil
}

func cmdProbe(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("probe", stderr)
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "usage: soundscape probe file ...")
		return errUsage
	}

	reg := formats.Registry()
	var errs []error
	for _, path := range fs.Args() {
		src, f, err := open(reg, path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rep, err := analysis.Analyze(src)
		src.Close()
		f.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		fmt.Fprintf(stdout, "%s: %s\n", path, rep)
	}
	return errors.Join(errs...)
}

func cmdConvert(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("convert", stderr)
	rate := fs.Int("rate", 8000, "output sample rate in Hz")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(stderr, "usage: soundscape convert [-rate hz] in out")
		return errUsage
	}
	in, out := fs.Arg(0), fs.Arg(1)

	write, err := formats.WriterFor(formats.FromPath(out))
	if err != nil {
		return err
	}

	src, f, err := open(formats.Registry(), in)
	if err != nil {
		return err
	}
	defer f.Close()
	defer src.Close()

	pcm, err := soundscape.RenderMono16(src, 0, *rate, 0)
	if err != nil {
		return err
	}

	dst, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := write(dst, *rate, pcm); err != nil {
		dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "wrote %s: %d samples at %d Hz\n", out, len(pcm), *rate)
	return nil
}
