package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/noah-isme/class-schedule-api/internal/timetable"
)

type target struct {
	Method   string `json:"method"`
	Path     string `json:"path"`
	Critical bool   `json:"critical"`
}

type targetFile struct {
	Targets []target `json:"targets"`
}

// defaultTargets are the read endpoints both servers expose.
var defaultTargets = []target{
	{Method: http.MethodGet, Path: "/api/subjects", Critical: true},
	{Method: http.MethodGet, Path: "/api/schedule", Critical: true},
	{Method: http.MethodGet, Path: "/api/lesson-times", Critical: true},
	{Method: http.MethodGet, Path: "/api/lessons"},
	{Method: http.MethodGet, Path: "/api/rooms"},
}

type comparison struct {
	Target         target
	LegacyStatus   int
	GoStatus       int
	StatusMatch    bool
	BodyMatch      bool
	Error          error
	DurationGo     time.Duration
	DurationLegacy time.Duration
}

func (c comparison) breaking() bool {
	return c.Target.Critical && (c.Error != nil || !c.StatusMatch || !c.BodyMatch)
}

func loadTargets(path string) ([]target, error) {
	if path == "" {
		return defaultTargets, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file targetFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return file.Targets, nil
}

// comparer fetches each target from both servers. Lesson dates are compared
// as calendar days in loc, since the legacy server serializes DATE columns as
// UTC timestamps.
type comparer struct {
	client     *http.Client
	goBase     string
	legacyBase string
	loc        *time.Location
}

func (c *comparer) compare(ctx context.Context, tgt target) comparison {
	comp := comparison{Target: tgt}
	goBody, goStatus, goDur, goErr := c.fetch(ctx, c.goBase, tgt)
	legacyBody, legacyStatus, legacyDur, legacyErr := c.fetch(ctx, c.legacyBase, tgt)
	comp.DurationGo, comp.DurationLegacy = goDur, legacyDur

	if goErr != nil {
		comp.Error = fmt.Errorf("go request failed: %w", goErr)
		return comp
	}
	if legacyErr != nil {
		comp.Error = fmt.Errorf("legacy request failed: %w", legacyErr)
		return comp
	}

	comp.GoStatus, comp.LegacyStatus = goStatus, legacyStatus
	comp.StatusMatch = goStatus == legacyStatus
	comp.BodyMatch = c.bodiesEqual(goBody, legacyBody)
	return comp
}

func (c *comparer) fetch(ctx context.Context, base string, tgt target) ([]byte, int, time.Duration, error) {
	if c.client == nil {
		return nil, 0, 0, errors.New("nil client")
	}
	method := strings.ToUpper(strings.TrimSpace(tgt.Method))
	if method == "" {
		method = http.MethodGet
	}
	path := tgt.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(base, "/")+path, nil)
	if err != nil {
		return nil, 0, 0, err
	}
	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("read body: %w", err)
	}
	return body, resp.StatusCode, time.Since(start), nil
}

func (c *comparer) bodiesEqual(a, b []byte) bool {
	if bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b)) {
		return true
	}

	var aj, bj interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false
	}
	c.normalize(&aj, "")
	c.normalize(&bj, "")
	return reflect.DeepEqual(aj, bj)
}

func (c *comparer) normalize(v *interface{}, key string) {
	switch val := (*v).(type) {
	case map[string]interface{}:
		for k, v2 := range val {
			c.normalize(&v2, k)
			val[k] = v2
		}
	case []interface{}:
		for i, v2 := range val {
			c.normalize(&v2, key)
			val[i] = v2
		}
	case float64:
		if val == float64(int64(val)) {
			*v = int64(val)
		}
	case string:
		if key == "date" {
			if day, err := timetable.NormalizeDate(val, c.loc); err == nil {
				*v = day
			}
		}
	}
}

func printReport(w io.Writer, results []comparison) {
	fmt.Fprintln(w, "Shadow Compare Report")
	fmt.Fprintln(w, "======================")
	for _, res := range results {
		status := "OK"
		if res.Error != nil {
			status = "ERROR"
		} else if !res.StatusMatch || !res.BodyMatch {
			status = "DIFF"
		}
		fmt.Fprintf(w, "[%s] %s %s\n", status, res.Target.Method, res.Target.Path)
		fmt.Fprintf(w, "  Go Status: %d (%s)\n", res.GoStatus, res.DurationGo)
		fmt.Fprintf(w, "  Legacy Status: %d (%s)\n", res.LegacyStatus, res.DurationLegacy)
		if res.Error != nil {
			fmt.Fprintf(w, "  Error: %v\n", res.Error)
		} else {
			fmt.Fprintf(w, "  Status match: %t | Body match: %t | Critical: %t\n", res.StatusMatch, res.BodyMatch, res.Target.Critical)
		}
	}
}
