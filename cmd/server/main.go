// Command server exposes the Latin scansion engine as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/scan?sentence=<normalized sentence>
//	POST /api/scan/text   body: {"text":"..."}
//	GET  /api/health
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"

	"github.com/rs/cors"

	scansion "github.com/kylepjohnson/ScansionPublic"
)

// ---- JSON response types ------------------------------------------------

type sentenceJSON struct {
	Sentence  string `json:"sentence"`
	Scansion  string `json:"scansion"`
	Syllables int    `json:"syllables"`
}

type scanTextResponse struct {
	Results []sentenceJSON `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleScanSentence(sc *scansion.Scanner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		sentence := r.URL.Query().Get("sentence")
		if sentence == "" {
			writeError(w, http.StatusBadRequest, "missing 'sentence' query parameter")
			return
		}
		scanned := sc.ScanSentence(sentence)
		writeJSON(w, http.StatusOK, sentenceJSON{
			Sentence:  sentence,
			Scansion:  scanned,
			Syllables: len([]rune(scanned)),
		})
	}
}

func handleScanText(sc *scansion.Scanner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}

		results := sc.Scan(body.Text)
		out := make([]sentenceJSON, 0, len(results))
		for _, res := range results {
			out = append(out, sentenceJSON{
				Sentence:  res.Sentence,
				Scansion:  res.Scansion,
				Syllables: res.Syllables,
			})
		}
		writeJSON(w, http.StatusOK, scanTextResponse{Results: out})
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---- main ---------------------------------------------------------------

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	noElideM := flag.Bool("no-elide-m", false, "do not elide word-final vowel+m")
	muteLiquid := flag.Bool("mute-liquid-long", false, "let mute+liquid clusters lengthen by position")
	flag.Parse()

	cfg := scansion.DefaultConfig()
	cfg.ElideFinalM = !*noElideM
	cfg.MuteLiquidLengthens = *muteLiquid
	sc := scansion.NewWithConfig(cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/scan/text", handleScanText(sc))
	mux.HandleFunc("/api/scan", handleScanSentence(sc))
	mux.HandleFunc("/api/health", handleHealth)

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
