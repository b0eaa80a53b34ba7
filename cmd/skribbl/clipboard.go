package main

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
)

// Read a PNG from the X11 clipboard
func readClipboard() (io.Reader, error) {
	out, err := exec.Command("xclip", "-selection", "clipboard", "-target", "image/png", "-o").Output()
	if err != nil {
		return nil, fmt.Errorf("reading clipboard: %w", err)
	}
	return bytes.NewReader(out), nil
}
