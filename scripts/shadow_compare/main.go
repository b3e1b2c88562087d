package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

func main() {
	var (
		goBase      string
		legacyBase  string
		targetsPath string
		timezone    string
		timeout     time.Duration
	)

	flag.StringVar(&goBase, "go-base", "http://localhost:8080", "Go API base URL")
	flag.StringVar(&legacyBase, "legacy-base", "http://localhost:5000", "Legacy API base URL")
	flag.StringVar(&targetsPath, "targets", "", "JSON targets file; defaults to the built-in read endpoints")
	flag.StringVar(&timezone, "tz", "Local", "timezone the legacy server ran in, for comparing lesson dates")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	targets, err := loadTargets(targetsPath)
	if err != nil {
		log.Fatalf("failed to load targets: %v", err)
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		log.Fatalf("unknown timezone %q: %v", timezone, err)
	}

	c := &comparer{client: &http.Client{Timeout: timeout}, goBase: goBase, legacyBase: legacyBase, loc: loc}
	var (
		comparisons  []comparison
		breaking     int
		optionalDiff int
	)
	for _, t := range targets {
		comp := c.compare(context.Background(), t)
		switch {
		case comp.breaking():
			breaking++
		case comp.Error != nil || !comp.StatusMatch || !comp.BodyMatch:
			optionalDiff++
		}
		comparisons = append(comparisons, comp)
	}

	printReport(os.Stdout, comparisons)

	fmt.Printf("Breaking diffs: %d, Optional diffs: %d\n", breaking, optionalDiff)
	if breaking > 0 {
		os.Exit(1)
	}
}
