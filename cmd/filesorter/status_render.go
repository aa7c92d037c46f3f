package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 20
	statusIndent     = "  "
)

type statusStyle struct {
	tag   string
	color string
}

var statusStyles = map[statusKind]statusStyle{
	statusInfo:  {tag: "INFO", color: ansiBlue},
	statusOK:    {tag: "OK", color: ansiGreen},
	statusWarn:  {tag: "WARN", color: ansiYellow},
	statusError: {tag: "ERROR", color: ansiRed},
}

// renderStatusLine formats "  Label:   [TAG] message", padded so tags line up.
func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	style, ok := statusStyles[kind]
	if !ok {
		style = statusStyles[statusInfo]
	}
	line := fmt.Sprintf("%s%-*s [%s]", statusIndent, statusLabelWidth, label+":", style.tag)
	if message != "" {
		line += " " + message
	}
	if colorize {
		line = style.color + line + ansiReset
	}
	return line
}

// shouldColorize honours NO_COLOR and only colours real terminals.
func shouldColorize(writer io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
