// Package pager pipes interactive output through the user's pager, so
// long decode transcripts land in less instead of scrolling away.
package pager

import (
	"io"
	"os"
	"os/exec"
)

// Pager is a running pager child process accepting output on Writer.
type Pager struct {
	cmd *exec.Cmd
	w   io.WriteCloser
}

// Open starts the pager ($PAGER, default "less -R") with its output on
// stdout. Callers must Close once all output has been written.
func Open() (*Pager, error) {
	name := os.Getenv("PAGER")
	args := []string{"-R"}
	if name == "" {
		name = "less"
	} else {
		args = nil
	}

	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	w, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &Pager{cmd: cmd, w: w}, nil
}

// Writer returns the stream the decode transcript should be written to.
func (p *Pager) Writer() io.Writer { return p.w }

// Close flushes remaining output and waits for the pager to exit.
func (p *Pager) Close() error {
	p.w.Close()
	return p.cmd.Wait()
}
