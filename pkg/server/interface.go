/*
Package server implements msgpack IPC for the search engine.

The server speaks a request/response protocol over stdin/stdout using
binary msgpack encoding. Each message carries an ID the response echoes
back. Three actions exist: "query" (the default when the field is
empty), "configure" and "ping".

A query request and its response:

	{"id": "req_001", "q": "hllo"}
	{"id": "req_001", "r": [{"w": "hello", "s": "english"}], "c": 1, "t": 2}

A configure request swaps the matching method and the active word lists
in one step; the engine reloads the vocabulary, drops its cache and
rebuilds the delete index as needed before the response is sent:

	{"id": "cfg_001", "action": "configure", "method": "symspell", "vocab": "english,english_uk"}
	{"id": "cfg_001", "status": "ok"}

Responses to one request are always exactly one message, so the stream
stays in lockstep with the client.
*/
package server

// Request is an incoming message from the host.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"`
	Query  string `msgpack:"q,omitempty"`
	Method string `msgpack:"method,omitempty"`
	Vocab  string `msgpack:"vocab,omitempty"`
}

// ResultEntry is one ranked match in a query response.
type ResultEntry struct {
	Word   string `msgpack:"w"`
	Source string `msgpack:"s"`
}

// QueryResponse carries the ranked matches for one query.
type QueryResponse struct {
	ID        string        `msgpack:"id"`
	Results   []ResultEntry `msgpack:"r"`
	Count     int           `msgpack:"c"`
	TimeTaken int64         `msgpack:"t"`
}

// StatusResponse answers configure and ping requests.
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Error  string `msgpack:"error,omitempty"`
}
