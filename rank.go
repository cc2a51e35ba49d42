package tothepoint

import (
	"math"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Ranking parameters.
const (
	maxMatches     = 10
	maxWindowSize  = 3
	maxOverlap     = 0.6
	bm25K1         = 1.2
	bm25B          = 0.75
	bigramBonus    = 0.35
	phraseBonus    = 1.2
	headingBonus   = 0.2
	minPhraseRunes = 8
	snippetLimit   = 180
)

// RankedMatch is one accepted passage match. Block indices are inclusive;
// Score is rounded to 4 decimals; Snippet is at most snippetLimit
// characters.
type RankedMatch struct {
	StartBlock int     `json:"startBlock"`
	EndBlock   int     `json:"endBlock"`
	Score      float64 `json:"score"`
	Text       string  `json:"text"`
	Snippet    string  `json:"snippet"`
}

// RankingResult is what Rank returns to the presentation layer.
type RankingResult struct {
	QueryTokenCount int           `json:"queryTokenCount"`
	ChunkCount      int           `json:"chunkCount"`
	Matches         []RankedMatch `json:"matches"`
}

// chunk is a contiguous window of 1-3 blocks considered as a unit for
// ranking. Chunks are built once and never mutated.
type chunk struct {
	start      int
	end        int
	text       string
	normalized string
	tokens     []string
	tf         map[string]int
	length     int
	heading    bool
}

// Rank builds overlapping multi-block windows over blocks, scores each
// against the title with a BM25-derived relevance function plus phrase and
// adjacency boosts, and returns a diversified list of up to maxMatches
// non-redundant matches, sorted by descending score.
//
// Rank is deterministic: the same (blocks, title) pair always yields
// byte-identical output. Absence of signal yields an empty match list,
// never an error.
func Rank(blocks []Block, title string) RankingResult {
	queryTokens := Tokenize(title)
	if len(queryTokens) == 0 || len(blocks) == 0 {
		return RankingResult{QueryTokenCount: len(queryTokens)}
	}

	chunks := buildChunks(blocks)
	result := RankingResult{
		QueryTokenCount: len(queryTokens),
		ChunkCount:      len(chunks),
	}
	if len(chunks) == 0 {
		return result
	}

	scores := scoreChunks(chunks, queryTokens, title)

	type scored struct {
		order int // enumeration order, for stable ties
		c     *chunk
		score float64
	}
	var kept []scored
	for i := range chunks {
		if scores[i] > 0 {
			kept = append(kept, scored{order: i, c: &chunks[i], score: scores[i]})
		}
	}

	// Collapse candidates sharing an identical block range to the highest
	// scoring one. Ranges are unique under the current windowing scheme, so
	// this is a safety invariant rather than load-bearing logic.
	byRange := make(map[[2]int]int, len(kept))
	deduped := kept[:0]
	for _, s := range kept {
		key := [2]int{s.c.start, s.c.end}
		if idx, ok := byRange[key]; ok {
			if s.score > deduped[idx].score {
				deduped[idx] = s
			}
			continue
		}
		byRange[key] = len(deduped)
		deduped = append(deduped, s)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].score > deduped[j].score
	})

	var accepted []scored
	for _, s := range deduped {
		if len(accepted) == maxMatches {
			break
		}
		redundant := false
		for _, a := range accepted {
			if overlapRatio(s.c.start, s.c.end, a.c.start, a.c.end) > maxOverlap {
				redundant = true
				break
			}
		}
		if !redundant {
			accepted = append(accepted, s)
		}
	}

	for _, s := range accepted {
		result.Matches = append(result.Matches, RankedMatch{
			StartBlock: s.c.start,
			EndBlock:   s.c.end,
			Score:      math.Round(s.score*10000) / 10000,
			Text:       s.c.text,
			Snippet:    snippet(s.c.text),
		})
	}
	return result
}

// buildChunks slides windows of 1 to maxWindowSize blocks across the
// sequence, one step at a time. Windows whose concatenation tokenizes to
// nothing are skipped.
func buildChunks(blocks []Block) []chunk {
	var chunks []chunk
	for size := 1; size <= maxWindowSize && size <= len(blocks); size++ {
		for start := 0; start+size <= len(blocks); start++ {
			texts := make([]string, size)
			for i := 0; i < size; i++ {
				texts[i] = blocks[start+i].Text
			}
			text := strings.Join(texts, " ")
			tokens := Tokenize(text)
			if len(tokens) == 0 {
				continue
			}
			tf := make(map[string]int, len(tokens))
			for _, tok := range tokens {
				tf[tok]++
			}
			chunks = append(chunks, chunk{
				start:      blocks[start].Index,
				end:        blocks[start+size-1].Index,
				text:       text,
				normalized: NormalizePhrase(text),
				tokens:     tokens,
				tf:         tf,
				length:     len(tokens),
				heading:    blocks[start].Kind == KindHeading,
			})
		}
	}
	return chunks
}

// scoreChunks computes every chunk's relevance score against the query.
// Corpus statistics are computed and frozen first; the per-chunk scoring is
// then fanned out across workers, each writing only its own slot, so the
// result is deterministic.
func scoreChunks(chunks []chunk, queryTokens []string, title string) []float64 {
	df := make(map[string]int)
	totalLen := 0
	for i := range chunks {
		for term := range chunks[i].tf {
			df[term]++
		}
		totalLen += chunks[i].length
	}
	avgLen := float64(totalLen) / float64(len(chunks))

	qf := make(map[string]int, len(queryTokens))
	for _, tok := range queryTokens {
		qf[tok]++
	}

	phrase := NormalizePhrase(title)
	if len([]rune(phrase)) < minPhraseRunes {
		phrase = ""
	}

	scores := make([]float64, len(chunks))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range chunks {
		g.Go(func() error {
			scores[i] = scoreChunk(&chunks[i], queryTokens, qf, df, avgLen, len(chunks), phrase)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	return scores
}

// scoreChunk combines four signals: BM25-style term relevance, a bigram
// adjacency boost, an exact-phrase boost, and a flat boost for chunks led
// by a heading.
func scoreChunk(c *chunk, queryTokens []string, qf, df map[string]int, avgLen float64, total int, phrase string) float64 {
	score := 0.0

	for term, freq := range qf {
		tf := c.tf[term]
		d := df[term]
		if tf == 0 || d == 0 {
			continue
		}
		idf := math.Log(1 + (float64(total)-float64(d)+0.5)/(float64(d)+0.5))
		tfWeight := bm25TermWeight(tf, c.length, avgLen)
		queryWeight := 1 + math.Log(1+float64(freq))
		score += idf * tfWeight * queryWeight
	}

	if len(queryTokens) >= 2 && len(c.tokens) >= 2 {
		pairs := make(map[string]struct{}, len(c.tokens)-1)
		for i := 0; i+1 < len(c.tokens); i++ {
			pairs[c.tokens[i]+" "+c.tokens[i+1]] = struct{}{}
		}
		for i := 0; i+1 < len(queryTokens); i++ {
			if _, ok := pairs[queryTokens[i]+" "+queryTokens[i+1]]; ok {
				score += bigramBonus
			}
		}
	}

	if phrase != "" && strings.Contains(c.normalized, phrase) {
		score += phraseBonus
	}

	if c.heading {
		score += headingBonus
	}
	return score
}

// bm25TermWeight is the saturating, length-normalized term frequency
// weight. It is strictly increasing in tf with strictly diminishing
// marginal gain.
func bm25TermWeight(tf, chunkLen int, avgLen float64) float64 {
	f := float64(tf)
	return f * (bm25K1 + 1) / (f + bm25K1*(1-bm25B+bm25B*float64(chunkLen)/avgLen))
}

// overlapRatio is the size of the intersecting block index range divided by
// the length of the shorter range.
func overlapRatio(aStart, aEnd, bStart, bEnd int) float64 {
	inter := min(aEnd, bEnd) - max(aStart, bStart) + 1
	if inter <= 0 {
		return 0
	}
	shorter := min(aEnd-aStart+1, bEnd-bStart+1)
	return float64(inter) / float64(shorter)
}

// snippet collapses and truncates text for display: the first 177
// characters plus an ellipsis when the text exceeds snippetLimit.
func snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= snippetLimit {
		return text
	}
	return string(runes[:snippetLimit-3]) + "..."
}
