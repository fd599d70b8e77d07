// Command bountyd runs the payout authorization ledger with a
// read-only HTTP query surface. Transactions enter the ledger through
// the deliver endpoint; the authenticated actor is taken from a
// header, so a real deployment is expected to put an authenticating
// proxy in front.
package main

import (
	"encoding/hex"
	"encoding/json"
	"io/ioutil"
	stdlog "log"
	"net/http"
	"os"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/app"
)

type configuration struct {
	HTTP    string
	Genesis string
}

func main() {
	stdlog.SetOutput(os.Stdout)
	stdlog.SetFlags(stdlog.LUTC | stdlog.Lshortfile)

	conf := configuration{
		HTTP:    env("HTTP", ":8000"),
		Genesis: env("GENESIS", "genesis.json"),
	}

	if err := run(conf); err != nil {
		stdlog.Fatal(err)
	}
}

func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

func run(conf configuration) error {
	raw, err := ioutil.ReadFile(conf.Genesis)
	if err != nil {
		return err
	}
	var opts bounty.Options
	if err := json.Unmarshal(raw, &opts); err != nil {
		return err
	}

	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout))
	ledger, err := app.NewLedger(opts, logger)
	if err != nil {
		return err
	}

	srv := &server{ledger: ledger}
	mux := http.NewServeMux()
	mux.HandleFunc("/reports/", srv.report)
	mux.HandleFunc("/payouts/", srv.payout)
	mux.HandleFunc("/disputes/", srv.dispute)
	mux.HandleFunc("/pool", srv.pool)
	mux.HandleFunc("/status", srv.status)
	mux.HandleFunc("/tx", srv.deliver)

	stdlog.Printf("listening on %s", conf.HTTP)
	return http.ListenAndServe(conf.HTTP, mux)
}

type server struct {
	ledger *app.Ledger
}

func (s *server) report(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "/reports/")
	if !ok {
		return
	}
	rep, err := s.ledger.Report(id)
	respond(w, rep, err)
}

func (s *server) payout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "/payouts/")
	if !ok {
		return
	}
	p, err := s.ledger.Payout(id)
	respond(w, p, err)
}

func (s *server) dispute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "/disputes/")
	if !ok {
		return
	}
	d, err := s.ledger.Dispute(id)
	respond(w, d, err)
}

func (s *server) pool(w http.ResponseWriter, r *http.Request) {
	balance, err := s.ledger.PoolBalance()
	respond(w, balance, err)
}

func (s *server) status(w http.ResponseWriter, r *http.Request) {
	paused, err := s.ledger.Paused()
	if err != nil {
		respond(w, nil, err)
		return
	}
	admin, err := s.ledger.Admin()
	if err != nil {
		respond(w, nil, err)
		return
	}
	threshold, err := s.ledger.Threshold()
	if err != nil {
		respond(w, nil, err)
		return
	}
	respond(w, map[string]interface{}{
		"paused":    paused,
		"admin":     admin,
		"threshold": threshold,
	}, nil)
}

// deliver executes a transaction. The request body is a JSON envelope
// of the message path and payload, the actor is the X-Actor header set
// by the authenticating proxy.
func (s *server) deliver(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}
	actor, err := hex.DecodeString(r.Header.Get("X-Actor"))
	if err != nil {
		http.Error(w, "malformed X-Actor header", http.StatusBadRequest)
		return
	}
	var envelope struct {
		Path    string          `json:"path"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	msg, err := decodeMsg(envelope.Path, envelope.Payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := s.ledger.DeliverTx(app.NewTx(msg), bounty.Address(actor))
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	respond(w, map[string]interface{}{
		"data": res.Data,
		"log":  res.Log,
	}, nil)
}

func pathID(w http.ResponseWriter, r *http.Request, prefix string) ([]byte, bool) {
	raw := r.URL.Path[len(prefix):]
	id, err := hex.DecodeString(raw)
	if err != nil || len(id) != 8 {
		http.Error(w, "ID must be 8 hex encoded bytes", http.StatusBadRequest)
		return nil, false
	}
	return id, true
}

func respond(w http.ResponseWriter, payload interface{}, err error) {
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		stdlog.Printf("cannot encode response: %s", err)
	}
}
