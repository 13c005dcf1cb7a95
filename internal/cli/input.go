// Package cli handles cmd line input for testing the search pipeline.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spellserve/spellserve/internal/logger"
	"github.com/spellserve/spellserve/pkg/engine"
)

var clog = logger.New("cli")

// InputHandler reads queries from stdin and prints ranked matches.
type InputHandler struct {
	eng          *engine.Engine
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler.
func NewInputHandler(eng *engine.Engine) *InputHandler {
	return &InputHandler{eng: eng}
}

// Start begins the interface loop. It continuously prompts for input,
// reads a line from stdin, and passes the trimmed query to the engine.
// The loop terminates if an error occurs while reading from stdin.
func (h *InputHandler) Start() error {
	clog.Print("SpellServe CLI")
	reader := bufio.NewReader(os.Stdin)
	clog.Print("type a word and press Enter to see the matches (Ctrl+C to exit):")

	for {
		clog.Print("> ")
		query, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		h.handleInput(query)
	}
}

// handleInput runs a single query and prints the results with timing.
func (h *InputHandler) handleInput(query string) {
	h.requestCount++

	start := time.Now()
	results := h.eng.Search(query)
	elapsed := time.Since(start)
	clog.Debugf("Took [ %v ] for query '%s'", elapsed, query)

	if len(results) == 0 {
		clog.Warnf("No matches found for query: '%s'", query)
		return
	}

	clog.Printf("Found %d matches for query '%s':", len(results), query)
	for i, r := range results {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", r.Word)
		clog.Printf("%2d. %-40s (%s)", i+1, clWord, r.Source)
	}
}
