package server

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/spellserve/spellserve/internal/logger"
	"github.com/spellserve/spellserve/pkg/engine"
)

var ilog = logger.New("ipc")

// Server handles the IPC for word lookups.
type Server struct {
	eng     *engine.Engine
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
}

// NewServer creates a lookup server using stdin/stdout for IPC.
func NewServer(eng *engine.Engine) *Server {
	return newServerWithIO(eng, os.Stdin, os.Stdout)
}

func newServerWithIO(eng *engine.Engine, r io.Reader, w io.Writer) *Server {
	return &Server{
		eng:     eng,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
	}
}

// Start reads requests until EOF. Requests are processed strictly in
// order; every request produces exactly one response.
func (s *Server) Start() error {
	ilog.Debug("Starting server")
	s.send(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			ilog.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

func (s *Server) handleRequest(request Request) {
	switch request.Action {
	case "", "query":
		s.handleQuery(request)
	case "configure":
		s.handleConfigure(request)
	case "ping":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.send(StatusResponse{ID: request.ID, Status: "error", Error: "unknown action: " + request.Action})
	}
}

// handleQuery runs the query through the engine. The engine never
// errors outward: malformed queries come back as the prompt placeholder
// and internal failures as empty result lists.
func (s *Server) handleQuery(request Request) {
	start := time.Now()
	results := s.eng.Search(request.Query)
	elapsed := time.Since(start)

	entries := make([]ResultEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, ResultEntry{Word: r.Word, Source: r.Source})
	}
	s.send(QueryResponse{
		ID:        request.ID,
		Results:   entries,
		Count:     len(entries),
		TimeTaken: elapsed.Milliseconds(),
	})
}

// handleConfigure applies new settings synchronously, so the next query
// already sees the new vocabulary and a cold cache.
func (s *Server) handleConfigure(request Request) {
	settings := s.eng.Settings()
	if request.Method != "" {
		settings.Method = request.Method
	}
	if request.Vocab != "" {
		settings.Vocabulary = request.Vocab
	}

	if err := s.eng.Reconfigure(settings); err != nil {
		ilog.Errorf("Reconfigure failed: %v", err)
		s.send(StatusResponse{ID: request.ID, Status: "error", Error: err.Error()})
		return
	}
	s.send(StatusResponse{ID: request.ID, Status: "ok"})
}

func (s *Server) send(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		ilog.Errorf("Encoding response: %v", err)
	}
}
