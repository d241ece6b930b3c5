package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/viant/seqology"
	"github.com/viant/seqology/render"
)

// Version information set by build flags
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

var (
	fixtureFlag = flag.String("f", "", "YAML fixture with containers to dump, built-in sample is used if empty")
	formatFlag  = flag.String("format", "", "element format tag, i.e. format:\"caseFormat=upper,dateFormat=yyyy-MM-dd\"")
	reverseFlag = flag.Bool("reverse", false, "also print elements in reverse order when supported")
	debugFlag   = flag.Bool("debug", false, "log container registration")
	versionFlag = flag.Bool("version", false, "Show version information")
)

func main() {
	flag.Parse()
	if *versionFlag {
		fmt.Printf("seqdump version %s\n", Version)
		fmt.Printf("Git commit: %s\n", GitCommit)
		os.Exit(0)
	}
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	renderer, err := render.Parse(*formatFlag, render.WithUnknown("<Unknown>"))
	if err != nil {
		return err
	}
	fixture, err := loadFixture(*fixtureFlag)
	if err != nil {
		return err
	}
	fd := os.Stdout.Fd()
	aDumper := &dumper{
		registry: seqology.NewRegistry(seqology.WithLogger(logger)),
		renderer: renderer,
		reverse:  *reverseFlag,
		color:    isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
	return aDumper.dump(os.Stdout, fixture)
}
