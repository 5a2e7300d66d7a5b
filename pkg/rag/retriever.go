package rag

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"property-assistant-be/internal/constant"
	"property-assistant-be/pkg/embedding"
)

const maxPassageLength = 700

// Document is a single knowledge-base entry loaded from disk. The embedding
// vector is filled in lazily on first lookup so startup never blocks on the
// model server.
type Document struct {
	Name    string
	Content string
	Vector  []float32
}

// Retriever selects the most relevant knowledge-base passage for a query.
// It prefers embedding similarity and falls back to keyword overlap when the
// embedding backend is unavailable.
type Retriever struct {
	provider embedding.EmbeddingProvider

	mu   sync.Mutex
	docs []*Document
}

func NewRetriever(provider embedding.EmbeddingProvider) *Retriever {
	return &Retriever{provider: provider}
}

// LoadDir reads every .txt file under dir into the document store. Missing or
// empty directories are not an error; the retriever simply has nothing to
// ground on.
func (r *Retriever) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read rag docs dir: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("read rag doc %s: %w", entry.Name(), err)
		}
		text := strings.TrimSpace(string(content))
		if text == "" {
			continue
		}
		r.docs = append(r.docs, &Document{
			Name:    entry.Name(),
			Content: text,
		})
	}
	return nil
}

// AddDocument registers an in-memory passage. Used by tests and by callers
// that source knowledge from somewhere other than the docs directory.
func (r *Retriever) AddDocument(name, content string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs = append(r.docs, &Document{Name: name, Content: content})
}

// Lookup returns the passage most relevant to the query, truncated so the
// prompt stays small. When nothing is loaded it returns a fixed placeholder
// the prompt template can still frame.
func (r *Retriever) Lookup(query string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.docs) == 0 {
		return constant.NoRagContextPassage
	}

	best := r.lookupByEmbedding(query)
	if best == nil {
		best = r.lookupByKeywords(query)
	}
	if best == nil {
		best = r.docs[0]
	}

	passage := best.Content
	if len(passage) > maxPassageLength {
		passage = passage[:maxPassageLength]
	}
	return passage
}

func (r *Retriever) lookupByEmbedding(query string) *Document {
	if r.provider == nil {
		return nil
	}

	queryResp, err := r.provider.Generate(query, "retrieval_query")
	if err != nil {
		return nil
	}
	queryVec := queryResp.Embedding.Values

	var best *Document
	bestScore := float32(-2)
	for _, doc := range r.docs {
		if doc.Vector == nil {
			docResp, err := r.provider.Generate(doc.Content, "retrieval_document")
			if err != nil {
				return nil
			}
			doc.Vector = docResp.Embedding.Values
		}
		score := dotProduct(queryVec, doc.Vector)
		if score > bestScore {
			bestScore = score
			best = doc
		}
	}
	return best
}

func (r *Retriever) lookupByKeywords(query string) *Document {
	queryWords := tokenize(query)
	if len(queryWords) == 0 {
		return nil
	}

	type scored struct {
		doc   *Document
		score int
	}
	results := make([]scored, 0, len(r.docs))
	for _, doc := range r.docs {
		docWords := tokenize(doc.Content)
		overlap := 0
		for word := range queryWords {
			if docWords[word] {
				overlap++
			}
		}
		if overlap > 0 {
			results = append(results, scored{doc: doc, score: overlap})
		}
	}
	if len(results) == 0 {
		return nil
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})
	return results[0].doc
}

func tokenize(text string) map[string]bool {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]bool, len(words))
	for _, word := range words {
		word = strings.Trim(word, ".,!?;:\"'()")
		if len(word) > 2 {
			set[word] = true
		}
	}
	return set
}

// dotProduct works as cosine similarity because vectors are normalized at
// generation time.
func dotProduct(a, b []float32) float32 {
	if len(a) != len(b) {
		return -1
	}
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
