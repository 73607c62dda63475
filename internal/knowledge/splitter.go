package knowledge

import "strings"

// Default chunking parameters for the knowledge corpus, in bytes.
const (
	// DefaultChunkSize is the target maximum size of one chunk.
	DefaultChunkSize = 300

	// DefaultChunkOverlap is how much of the end of one chunk is repeated
	// at the start of the next, to keep context across boundaries.
	DefaultChunkOverlap = 50
)

// separators, most to least preferred: paragraph break, line break, word
// boundary, then a hard character split as last resort.
var separators = []string{"\n\n", "\n", " ", ""}

// SplitText splits s into chunks of at most chunkSize bytes, preferring to
// break at paragraph, line, and word boundaries in that order. Adjacent
// chunks overlap by up to overlap bytes. Whitespace-only fragments are
// dropped.
func SplitText(s string, chunkSize, overlap int) []string {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = DefaultChunkOverlap
	}

	splits := splitRecursive(s, chunkSize, separators)
	return mergeSplits(splits, chunkSize, overlap)
}

// splitRecursive breaks s on the first separator that applies, recursing
// with finer separators into any piece still larger than chunkSize.
func splitRecursive(s string, chunkSize int, seps []string) []string {
	if len(s) <= chunkSize {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		return []string{s}
	}

	sep := seps[len(seps)-1]
	var rest []string
	for i, candidate := range seps {
		if candidate == "" || strings.Contains(s, candidate) {
			sep = candidate
			rest = seps[i+1:]
			break
		}
	}

	var pieces []string
	if sep == "" {
		// Hard split: no structural boundary left.
		for i := 0; i < len(s); i += chunkSize {
			end := min(i+chunkSize, len(s))
			pieces = append(pieces, s[i:end])
		}
	} else {
		pieces = strings.Split(s, sep)
	}

	var out []string
	for _, p := range pieces {
		if strings.TrimSpace(p) == "" {
			continue
		}
		if len(p) <= chunkSize {
			out = append(out, p)
		} else {
			out = append(out, splitRecursive(p, chunkSize, rest)...)
		}
	}
	return out
}

// mergeSplits packs small fragments back together up to chunkSize, carrying
// an overlap from the end of each emitted chunk into the next.
func mergeSplits(splits []string, chunkSize, overlap int) []string {
	var chunks []string
	var current strings.Builder
	seedOnly := false // current holds only the overlap seed, not real content

	flush := func() {
		text := strings.TrimSpace(current.String())
		current.Reset()
		seedOnly = false
		if text == "" {
			return
		}
		chunks = append(chunks, text)

		// Seed the next chunk with the tail of this one.
		if overlap > 0 && len(text) > overlap {
			tail := text[len(text)-overlap:]
			// Start the overlap at a word boundary when possible.
			if idx := strings.IndexByte(tail, ' '); idx >= 0 && idx+1 < len(tail) {
				tail = tail[idx+1:]
			}
			current.WriteString(tail)
			seedOnly = true
		}
	}

	for _, split := range splits {
		if current.Len() > 0 && current.Len()+len(split)+1 > chunkSize {
			if seedOnly {
				// The seed alone leaves no room: drop it rather than
				// emitting an overlap-only chunk.
				current.Reset()
				seedOnly = false
			} else {
				flush()
			}
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(split)
		seedOnly = false
	}
	if !seedOnly {
		flush()
	}

	return chunks
}
