package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/tui-stalls/internal/core"
)

// Record is one journal line.
type Record struct {
	Time    time.Time      `json:"time"`
	Session string         `json:"session"`
	Game    string         `json:"game"`
	Kind    core.EventKind `json:"kind"`
	Tick    uint64         `json:"tick"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// Journal writes the events of one play session. A nil *Journal discards
// everything, so callers need no journaling checks.
type Journal struct {
	w       *Writer
	owned   bool // Close closes w
	session string
	game    string
}

// Open creates a journal under dir for the given session and game.
func Open(dir, session, game string) *Journal {
	return &Journal{
		w:       NewWriter(dir, "session"),
		owned:   true,
		session: session,
		game:    game,
	}
}

// Session returns a journal for one session that shares this writer.
// Closing it leaves the writer open.
func (w *Writer) Session(session, game string) *Journal {
	return &Journal{w: w, session: session, game: game}
}

// Record appends a game event.
func (j *Journal) Record(ev core.Event) error {
	if j == nil {
		return nil
	}
	return j.w.Write(Record{
		Time:    j.w.now().UTC(),
		Session: j.session,
		Game:    j.game,
		Kind:    ev.Kind,
		Tick:    ev.Tick,
		Fields:  ev.Fields,
	})
}

// Close flushes the journal. Shared writers stay open.
func (j *Journal) Close() error {
	if j == nil || !j.owned {
		return nil
	}
	return j.w.Close()
}

// Files lists the journal files in dir, oldest first.
func Files(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.jsonl.zst"))
	if err != nil {
		return nil, fmt.Errorf("journal: list %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// ReadFile decodes every record of a journal file.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("journal: open: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("journal: decompress: %w", err)
	}
	defer dec.Close()

	var records []Record
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		var r Record
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			return nil, fmt.Errorf("journal: %s line %d: %w", path, len(records)+1, err)
		}
		records = append(records, r)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("journal: read %s: %w", path, err)
	}
	return records, nil
}
