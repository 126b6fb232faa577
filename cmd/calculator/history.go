package main

import (
	"io"
	"os"
)

// loadHistory opens the history file at path and passes it to read.
func loadHistory(path string, read func(r io.Reader) (int, error)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// saveHistory truncates the history file at path and passes it to write.
func saveHistory(path string, write func(w io.Writer) (int, error)) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
