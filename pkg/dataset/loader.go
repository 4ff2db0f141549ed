package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"
)

// DefaultMinDegree is the minimum number of interactions an author needs to
// stay in the network. Drive-by posters add noise without structure.
const DefaultMinDegree = 3

// Options controls dataset loading.
type Options struct {
	// MinDegree drops authors with fewer interactions. Zero keeps everyone.
	MinDegree int
}

// Column names recognized in the CSV header.
const (
	colAuthor    = "author"
	colSubreddit = "subreddit"
	colCreated   = "created_utc"
	colPermalink = "permalink"
)

// Load reads the interaction dataset at path in one pass. The file must be a
// CSV with a header naming at least the author and subreddit columns;
// created_utc (Unix seconds) and permalink are optional.
func Load(path string, opts Options) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFoundError(path, err)
		}
		return nil, &DatasetError{Op: "open", Path: path, Cause: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		return nil, formatError("header", path, 1, fmt.Errorf("missing header: %v", err))
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{colAuthor, colSubreddit} {
		if _, ok := cols[required]; !ok {
			return nil, formatError("header", path, 1, fmt.Errorf("missing required column %q", required))
		}
	}
	createdIdx, hasCreated := cols[colCreated]
	permalinkIdx, hasPermalink := cols[colPermalink]

	records := make([]Record, 0, 1024)
	line := 1
	for {
		row, err := r.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, formatError("row", path, line, err)
		}

		author := row[cols[colAuthor]]
		subreddit := row[cols[colSubreddit]]
		if author == "" || subreddit == "" {
			return nil, formatError("row", path, line, errors.New("empty author or subreddit"))
		}

		rec := Record{
			Author:    author,
			Subreddit: subreddit,
			Group:     GroupOf(subreddit),
			Platform:  PlatformOf(subreddit),
		}
		if hasCreated && row[createdIdx] != "" {
			ts, err := parseTimestamp(row[createdIdx])
			if err != nil {
				return nil, formatError("row", path, line, fmt.Errorf("bad created_utc %q", row[createdIdx]))
			}
			rec.Created = ts
		}
		if hasPermalink {
			rec.Permalink = row[permalinkIdx]
		}
		records = append(records, rec)
	}

	if opts.MinDegree > 0 {
		records = filterMinDegree(records, opts.MinDegree)
	}
	return records, nil
}

// parseTimestamp accepts Unix seconds, integral or fractional, as Reddit
// dumps commonly carry either.
func parseTimestamp(s string) (time.Time, error) {
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(secs), 0).UTC(), nil
}

// filterMinDegree keeps records whose author appears at least n times in the
// full dataset. Counting happens before filtering, so an author is either
// fully kept or fully dropped.
func filterMinDegree(records []Record, n int) []Record {
	counts := make(map[string]int, len(records))
	for _, rec := range records {
		counts[rec.Author]++
	}

	kept := records[:0]
	for _, rec := range records {
		if counts[rec.Author] >= n {
			kept = append(kept, rec)
		}
	}
	return kept
}

// Authors returns the number of distinct authors in records.
func Authors(records []Record) int {
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		seen[rec.Author] = struct{}{}
	}
	return len(seen)
}

// Subreddits returns the number of distinct subreddits in records.
func Subreddits(records []Record) int {
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		seen[rec.Subreddit] = struct{}{}
	}
	return len(seen)
}
