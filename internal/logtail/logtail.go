package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Entry is one operator log record.
type Entry struct {
	Time    time.Time
	Level   string
	Message string
	Attrs   map[string]string
	Raw     string
}

// Read returns at most maxLines from the end of the file at path.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = file.Close() }()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// ReadEntries is Read followed by Parse on every line.
func ReadEntries(path string, maxLines int) ([]Entry, error) {
	lines, err := Read(path, maxLines)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, Parse(line))
	}
	return entries, nil
}

// Parse decodes a slog JSON record. Lines that are not JSON (for example
// output of the standard logger) come back with only Raw and Message set.
func Parse(line string) Entry {
	entry := Entry{Raw: line, Message: line}
	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		return entry
	}
	if v, ok := rec["time"].(string); ok {
		if ts, err := time.Parse(time.RFC3339Nano, v); err == nil {
			entry.Time = ts
		}
	}
	if v, ok := rec["level"].(string); ok {
		entry.Level = v
	}
	if v, ok := rec["msg"].(string); ok {
		entry.Message = v
	}
	for k, v := range rec {
		switch k {
		case "time", "level", "msg":
			continue
		}
		if entry.Attrs == nil {
			entry.Attrs = make(map[string]string)
		}
		entry.Attrs[k] = fmt.Sprint(v)
	}
	return entry
}
