// This file is part of zxpreview.
//
// zxpreview is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// zxpreview is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with zxpreview.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/zxpreview/assets"
	"github.com/jetsetilly/zxpreview/core"
	"github.com/jetsetilly/zxpreview/logger"
	"github.com/jetsetilly/zxpreview/modalflag"
	"github.com/jetsetilly/zxpreview/preview"
	"github.com/jetsetilly/zxpreview/snapshot"
	"github.com/jetsetilly/zxpreview/statsview"
	"github.com/jetsetilly/zxpreview/tape"
	"github.com/jetsetilly/zxpreview/tape/soundload"
	"github.com/jetsetilly/zxpreview/tapeloader"
	"github.com/jetsetilly/zxpreview/version"
	"github.com/jetsetilly/zxpreview/wavwriter"
)

// exit values
const (
	exitParseError = 10
	exitModeError  = 20
)

// sample rate of audio recorded with the -wav flag
const wavSampleRate = 44100

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("GIF", "SNAPSHOT", "TAPE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "GIF":
		err = gif(ctx, md)

	case "SNAPSHOT":
		err = snap(md)

	case "TAPE":
		err = tapeInfo(md)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return 0
}

// loadTape loads the tape data from the named file. sound recordings are
// decoded and converted to TAP data.
func loadTape(filename string) ([]byte, tapeloader.Loader, error) {
	ld := tapeloader.NewLoader(filename)
	if err := ld.Load(); err != nil {
		return nil, ld, err
	}

	if !ld.IsSoundData {
		return ld.Data, ld, nil
	}

	blocks, err := soundload.Decode(ld)
	if err != nil {
		return nil, ld, err
	}

	data, err := tape.Encode(blocks)
	if err != nil {
		return nil, ld, err
	}

	return data, ld, nil
}

func machineType(m int) (core.MachineType, error) {
	switch core.MachineType(m) {
	case core.Machine48K, core.Machine128K, core.MachinePentagon:
		return core.MachineType(m), nil
	}
	return 0, fmt.Errorf("unsupported machine type (%d)", m)
}

func gif(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	defaults := preview.DefaultOptions()

	maxMinutes := md.AddFloat64("maxMinutes", 3, "maximum duration of the preview in minutes")
	staleThreshold := md.AddInt("staleThreshold", 1500, "number of unchanging frames that end the preview")
	ignore := md.AddInt("ignore", defaults.IgnoreInitialFrames, "number of frames at the start of the preview to leave out")
	mach := md.AddInt("machine", int(core.Machine128K), "machine type (48, 128 or 5 for Pentagon)")
	scale := md.AddInt("scale", defaults.Scale, "output scale")
	wav := md.AddString("wav", "", "record audio to WAV file")
	stallLimit := md.AddInt("stallLimit", 0, "number of tape traps with no block available before the load fails (0 is no limit)")
	assetsDir := md.AddString("assets", "", "base directory of ROMs, tape loaders and core module")
	log := md.AddBool("log", false, "echo log to stdout")
	verbose := md.AddBool("verbose", false, "include tape trap entries in the log")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	md.AdditionalHelp("The output filename defaults to the tape filename with a .gif extension.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var outFile string

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("tape required for %s mode", md)
	case 1:
	case 2:
		outFile = md.GetArg(1)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(md.Output)
	}
	logger.SetVerbose(*verbose)

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("stats server not available in this build")
		}
		svctx, cancel := context.WithCancel(ctx)
		defer cancel()
		statsview.Launch(svctx, md.Output)
	}

	m, err := machineType(*mach)
	if err != nil {
		return err
	}

	data, ld, err := loadTape(md.GetArg(0))
	if err != nil {
		return err
	}

	if outFile == "" {
		outFile = ld.ShortName() + ".gif"
	}

	opts := preview.Options{
		MaxDurationMs:       int(*maxMinutes * 60 * 1000),
		StaleFrameThreshold: *staleThreshold,
		IgnoreInitialFrames: *ignore,
		Scale:               *scale,
	}

	gen, err := preview.NewFromAssets(ctx, assets.New(*assetsDir), opts)
	if err != nil {
		return err
	}
	defer gen.Close()

	gen.Driver().TrapStallLimit = *stallLimit

	var ww *wavwriter.WavWriter
	if *wav != "" {
		ww, err = wavwriter.New(*wav, wavSampleRate)
		if err != nil {
			return err
		}
		if err := gen.Driver().AttachAudio(ww); err != nil {
			return err
		}
	}

	b, sum, err := gen.GenerateFromTAP(data, m)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outFile, b, 0644); err != nil {
		return err
	}

	if ww != nil {
		if err := ww.EndMixing(); err != nil {
			return err
		}
	}

	fmt.Fprintf(md.Output, "%s: %s\n", filepath.Base(outFile), sum)
	fmt.Fprintf(md.Output, "digest: %s\n", sum.Digest)

	return nil
}

func snap(md *modalflag.Modes) error {
	md.NewMode()

	dot := md.AddBool("dot", false, "output memviz graph of the snapshot in dot format")
	strict := md.AddBool("strict", false, "compressed pages must decompress to exactly one page")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("snapshot file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(md.Output)
	}

	d, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	parse := snapshot.Parse
	if *strict {
		parse = snapshot.ParseStrict
	}

	s, err := parse(d)
	if err != nil {
		return err
	}

	if *dot {
		// memory pages are left out of the graph. a graph of every byte of
		// every page is too large to be useful
		g := *s
		g.MemoryPages = nil
		memviz.Map(md.Output, &g)
		return nil
	}

	fmt.Fprintln(md.Output, s)

	return nil
}

func tapeInfo(md *modalflag.Modes) error {
	md.NewMode()

	tapFile := md.AddString("tap", "", "write the blocks to a TAP file")
	log := md.AddBool("log", false, "echo log to stdout")

	md.AdditionalHelp("Lists the blocks in a TAP file or in a WAV or MP3 recording of a tape.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("tape required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(md.Output)
	}

	data, ld, err := loadTape(md.GetArg(0))
	if err != nil {
		return err
	}

	if !tape.IsValid(data) {
		fmt.Fprintln(md.Output, "tape data is damaged. listing the blocks that can be read")
	}

	tap := tape.NewTAP(data)
	for i, b := range tap.Blocks() {
		fmt.Fprintf(md.Output, "%3d: %s\n", i, b)
	}
	fmt.Fprintf(md.Output, "%s: %d blocks (sha1 %s)\n", ld.ShortName(), tap.Len(), ld.Hash)

	if *tapFile != "" {
		d, err := tape.Encode(tap.Blocks())
		if err != nil {
			return err
		}
		if err := os.WriteFile(*tapFile, d, 0644); err != nil {
			return err
		}
	}

	return nil
}
