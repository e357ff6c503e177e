// Command vteterm spawns a shell under a real PTY and drives the vte
// parser and grid handler against its output, demonstrating the full
// pipeline end to end: creack/pty for the child process, the vte package
// for parsing, the grid package for cell storage, and the key package to
// re-encode held-Ctrl keystrokes the way a GUI frontend would.
package main

import (
	"bufio"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/coreterm/vte"
	"github.com/coreterm/vte/grid"
	"github.com/coreterm/vte/key"
	"github.com/creack/pty"
	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type options struct {
	Shell           string `short:"s" long:"shell" description:"shell to run" default:"/bin/sh"`
	Cols            int    `short:"c" long:"cols" description:"initial column count" default:"80"`
	Rows            int    `short:"r" long:"rows" description:"initial row count" default:"24"`
	ModifyOtherKeys bool   `long:"modify-other-keys" description:"encode keys as if xterm modifyOtherKeys were set"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		log.Fatal(err)
	}

	if err := run(opts); err != nil {
		log.Fatalf("vteterm: %v", err)
	}
}

func run(opts options) error {
	cmd := exec.Command(opts.Shell)
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: uint16(opts.Cols), Rows: uint16(opts.Rows)})
	if err != nil {
		return errors.Wrap(err, "starting pty")
	}
	defer ptmx.Close()

	g := grid.NewGrid(opts.Cols, opts.Rows)
	g.Out = ptmx

	stdinFD := int(os.Stdin.Fd())
	prevState, err := term.MakeRaw(stdinFD)
	if err != nil {
		return errors.Wrap(err, "entering raw mode")
	}
	defer term.Restore(stdinFD, prevState)

	resize := make(chan os.Signal, 1)
	signal.Notify(resize, syscall.SIGWINCH)
	go watchResize(resize, ptmx)
	resize <- syscall.SIGWINCH // prime initial size from the real terminal

	done := make(chan struct{})
	go pumpOutput(ptmx, g, done)
	go pumpInput(os.Stdin, ptmx, opts.ModifyOtherKeys)

	<-done
	return nil
}

// watchResize keeps the pty's window size in sync with the controlling
// terminal's, the way creack/pty's own InheritSize helper does.
func watchResize(sig <-chan os.Signal, ptmx *os.File) {
	for range sig {
		ws, err := unix.IoctlGetWinsize(int(os.Stdin.Fd()), unix.TIOCGWINSZ)
		if err != nil {
			continue
		}
		pty.Setsize(ptmx, &pty.Winsize{Rows: ws.Row, Cols: ws.Col, X: ws.Xpixel, Y: ws.Ypixel})
	}
}

// pumpOutput feeds PTY output through the parser in whatever chunk sizes
// Read happens to return, relying on spec.md §8's chunking invariance.
func pumpOutput(ptmx io.Reader, h vte.Handler, done chan<- struct{}) {
	defer close(done)
	p := vte.NewParser()
	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			p.Advance(h, buf[:n])
		}
		if p.SyncTimeout() {
			p.StopSync(h)
		}
		if err != nil {
			return
		}
	}
}

// pumpInput relays keystrokes to the PTY. Raw control bytes below 0x20
// (other than the ones with their own terminal meaning) are re-synthesized
// as held-Ctrl KeyEvents and pushed through key.Encoder, demonstrating the
// encoder half of the pipeline; everything else passes through untouched
// since the kernel tty driver already delivered byte-accurate input.
func pumpInput(r io.Reader, w io.Writer, modifyOtherKeys bool) {
	enc := key.Encoder{ModifyOtherKeysState2: modifyOtherKeys}
	br := bufio.NewReader(r)

	for {
		b, err := br.ReadByte()
		if err != nil {
			return
		}

		if b < 0x20 && b != '\t' && b != '\r' && b != '\n' && b != 0x1b {
			if seq, ok := encodeCtrlByte(enc, b); ok {
				w.Write(seq)
				continue
			}
		}

		w.Write([]byte{b})
	}
}

// encodeCtrlByte reverses a C0 byte back to the letter that, held with
// Ctrl, would have produced it (Ctrl+A -> 0x01 -> 'a'), then re-encodes
// through key.Encoder so the byte that reaches the PTY is the encoder's
// own output rather than a hand-copied one.
func encodeCtrlByte(enc key.Encoder, b byte) ([]byte, bool) {
	letter := b | 0x60 // 0x01 -> 'a', 0x1a -> 'z'
	k, ok := key.FromASCII(letter)
	if !ok {
		return nil, false
	}
	event := key.KeyEvent{
		Action: key.ActionPress,
		Key:    k,
		Mods:   key.LeftCtrlMod,
	}
	return enc.Encode(event)
}
