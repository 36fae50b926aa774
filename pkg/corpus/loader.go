package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// LoadFile reads a plain-text word list where each line is
// "word<whitespace>frequency". Lines that are empty, start with '#', or fail
// parsing are skipped with a debug log rather than aborting the load; a word
// list scraped from frequency dumps always has a few junk rows.
func LoadFile(path string) (*Corpus, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	pairs := make(map[string]int)
	skipped := 0
	lineNo := 0

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			skipped++
			log.Debugf("word list %s:%d: expected \"word frequency\", got %q", path, lineNo, line)
			continue
		}
		freq, err := strconv.Atoi(fields[1])
		if err != nil || freq <= 0 {
			skipped++
			log.Debugf("word list %s:%d: bad frequency %q", path, lineNo, fields[1])
			continue
		}
		word, err := NormalizeWord(fields[0])
		if err != nil {
			skipped++
			log.Debugf("word list %s:%d: %v", path, lineNo, err)
			continue
		}
		pairs[word] += freq
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed reading word list %s: %w", path, err)
	}
	if skipped > 0 {
		log.Warnf("word list %s: skipped %d unparsable lines", path, skipped)
	}

	c := New(pairs)
	log.Debugf("loaded %d words (total frequency %d) from %s", c.Len(), c.TotalFrequency(), path)
	return c, nil
}
