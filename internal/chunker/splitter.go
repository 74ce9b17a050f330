// ABOUTME: Recursive character text splitter with configurable size and overlap
// ABOUTME: Prefers paragraph, then line, sentence, word, and finally raw character boundaries
package chunker

import (
	"strings"
	"unicode/utf8"

	"docqa/internal/models"
)

// defaultSeparators orders boundaries from coarse to fine. The empty
// string is the raw-character fallback and must stay last.
var defaultSeparators = []string{"\n\n", "\n", ". ", " ", ""}

// Splitter breaks text into overlapping chunks no longer than
// chunkSize runes. Splitting is deterministic: identical input and
// parameters always produce the identical chunk sequence.
type Splitter struct {
	chunkSize    int
	chunkOverlap int
	separators   []string
}

// NewSplitter creates a Splitter. Invalid parameters fall back to the
// 1024/256 defaults.
func NewSplitter(chunkSize, chunkOverlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = 1024
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		chunkOverlap = chunkSize / 4
	}
	return &Splitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		separators:   defaultSeparators,
	}
}

// SplitPages splits each page in order and concatenates the results,
// so chunk order follows document order.
func (s *Splitter) SplitPages(pages []models.Page) []string {
	var chunks []string
	for _, page := range pages {
		chunks = append(chunks, s.SplitText(page.Text)...)
	}
	return chunks
}

// SplitText splits one text into chunks of at most chunkSize runes,
// breaking on the coarsest boundary available within the budget.
func (s *Splitter) SplitText(text string) []string {
	return s.split(text, s.separators)
}

func (s *Splitter) split(text string, separators []string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	if runeLen(trimmed) <= s.chunkSize {
		return []string{trimmed}
	}

	sep, rest := pickSeparator(text, separators)
	if sep == "" {
		return s.splitCharacters(text)
	}

	// Separators stay attached to the preceding piece so that joining
	// with "" reconstructs the original text.
	parts := strings.SplitAfter(text, sep)

	var chunks []string
	var pending []string
	for _, part := range parts {
		if runeLen(part) > s.chunkSize {
			chunks = append(chunks, s.merge(pending)...)
			pending = nil
			chunks = append(chunks, s.split(part, rest)...)
			continue
		}
		pending = append(pending, part)
	}
	return append(chunks, s.merge(pending)...)
}

// merge greedily packs pieces into chunks up to chunkSize runes,
// retaining a tail of pieces within the overlap budget when a chunk
// is emitted.
func (s *Splitter) merge(parts []string) []string {
	var out []string
	var window []string
	total := 0

	for _, part := range parts {
		length := runeLen(part)
		if total+length > s.chunkSize && len(window) > 0 {
			if chunk := joinTrim(window); chunk != "" {
				out = append(out, chunk)
			}
			for total > s.chunkOverlap || (total+length > s.chunkSize && total > 0) {
				total -= runeLen(window[0])
				window = window[1:]
			}
		}
		window = append(window, part)
		total += length
	}

	if chunk := joinTrim(window); chunk != "" {
		out = append(out, chunk)
	}
	return out
}

// splitCharacters is the raw fallback for text with no usable
// boundary: fixed-size rune windows advancing by chunkSize−overlap,
// so consecutive chunks share exactly chunkOverlap runes.
func (s *Splitter) splitCharacters(text string) []string {
	runes := []rune(text)
	step := s.chunkSize - s.chunkOverlap
	if step < 1 {
		step = 1
	}

	var out []string
	for start := 0; start < len(runes); start += step {
		end := start + s.chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return out
}

// pickSeparator returns the first separator present in the text plus
// the finer separators after it. The trailing "" always matches.
func pickSeparator(text string, separators []string) (string, []string) {
	for i, sep := range separators {
		if sep == "" {
			return "", nil
		}
		if strings.Contains(text, sep) {
			return sep, separators[i+1:]
		}
	}
	return "", nil
}

func joinTrim(parts []string) string {
	return strings.TrimSpace(strings.Join(parts, ""))
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
