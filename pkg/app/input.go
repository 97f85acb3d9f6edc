package app

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// InputMode selects how stdin is split into payloads.
const (
	InputModeLine = "line"
	InputModeFull = "full"
)

// ReadInput streams payloads from r on out, one per line or a single one
// holding all of r. A read failure is sent on errCh before out is closed,
// and errCh is closed last, so a receive from errCh after draining out
// yields the failure or nil. errCh must have room for one error.
func ReadInput(r io.Reader, mode string, out chan<- []byte, errCh chan<- error, bufferSize int) {
	defer close(errCh)
	defer close(out)

	var err error
	switch mode {
	case InputModeFull:
		err = readFull(r, out)
	default:
		err = readLines(r, out, bufferSize)
	}
	if err != nil {
		errCh <- err
	}
}

// Drain discards what is left on out so the reader goroutine can finish.
func Drain(out <-chan []byte) {
	for range out {
	}
}

func readLines(reader io.Reader, out chan<- []byte, bufferSize int) error {
	scanner := bufio.NewScanner(reader)
	if bufferSize > 0 {
		scanner.Buffer(make([]byte, bufferSize), bufferSize)
	}
	for scanner.Scan() {
		out <- bytes.Clone(scanner.Bytes())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanning input failed: %w", err)
	}
	return nil
}

func readFull(reader io.Reader, out chan<- []byte) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("unable to read data: %w", err)
	}
	out <- data
	return nil
}
