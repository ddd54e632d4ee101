package morph

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cognicore/nlp100/pkg/nlp100/internalerr"
)

const maxLineSize = 1 << 20

// Visitor receives each decoded sentence.
type Visitor func(Sentence)

// Filter decides from the raw NDJSON line whether it is decoded at all.
type Filter func(line string) bool

// All accepts every line.
func All(string) bool { return true }

// ContainsFilter keeps lines whose raw text contains target.
func ContainsFilter(target string) Filter {
	return func(line string) bool {
		return strings.Contains(line, target)
	}
}

// Walk decodes each accepted line of r and hands it to visit. A nil filter
// accepts everything. Decoding failures abort the walk.
func Walk(r io.Reader, filter Filter, visit Visitor) error {
	if filter == nil {
		filter = All
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || !filter(line) {
			continue
		}
		var sentence Sentence
		if err := json.Unmarshal([]byte(line), &sentence); err != nil {
			return fmt.Errorf("%w: token line %d: %v", internalerr.ErrParse, lineNo, err)
		}
		visit(sentence)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("morph: read tokens: %w", err)
	}
	return nil
}

// WalkFile opens path and walks it.
func WalkFile(path string, filter Filter, visit Visitor) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if err := Walk(f, filter, visit); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
