package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

const Version = "0.1.0"

// debugLog is nil unless -debug is given; the terminal itself belongs to
// the renderer, so diagnostics go to a file or nowhere.
var debugLog *log.Logger

func debugf(format string, args ...any) {
	if debugLog != nil {
		debugLog.Printf(format, args...)
	}
}

func main() {
	debugPath := flag.String("debug", "", "write a debug log to this file")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("vigo " + Version)
		return
	}

	if *debugPath != "" {
		f, err := os.OpenFile(*debugPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "vigo: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		debugLog = log.New(f, "", log.LstdFlags)
	}

	app := NewApp()
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "vigo: %v\n", err)
		os.Exit(1)
	}
}
