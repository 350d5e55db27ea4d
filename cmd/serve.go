package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/chordmark/chord"
	"github.com/jsphweid/chordmark/constants"
	"github.com/jsphweid/chordmark/grammar"
	"github.com/jsphweid/chordmark/logging"
	"github.com/jsphweid/chordmark/metrics"
	"github.com/jsphweid/chordmark/model"
	"github.com/jsphweid/chordmark/parser"
	"github.com/jsphweid/chordmark/sheet"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

// nil until serve starts, every method on it is a no-op then
var sentryMetrics *metrics.SentryMetrics

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "address to listen on (defaults to $CHORDMARK_LISTEN_ADDR or :8080)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the parser and renderer over HTTP",
	Long:  `Serves POST /parse, POST /render and GET /healthz`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = constants.GetListenAddr()
		}
		return serve(cmd.Context(), addr)
	},
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/parse", HandleParse).Methods("POST")
	router.HandleFunc("/render", HandleRender).Methods("POST")
	router.HandleFunc("/healthz", HandleHealth).Methods("GET")
	router.Use(logging.RequestIDMiddleware, logging.LoggingMiddleware)

	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", logging.RequestIDHeader},
		ExposedHeaders: []string{logging.RequestIDHeader},
	}).Handler(router)
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func HandleParse(w http.ResponseWriter, r *http.Request) {
	ctx, finish := sentryMetrics.StartTransaction(r.Context(), "POST /parse")
	defer finish()

	var input model.ParseRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, r, http.StatusBadRequest, err, 0)
		return
	}

	opts := []parser.Option{}
	if input.TimeSignature != "" {
		ts, err := model.ParseTimeSignature(input.TimeSignature)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err, 0)
			return
		}
		opts = append(opts, parser.WithTimeSignature(ts))
	}

	start := time.Now()
	line, err := parser.ParseChordLine(input.Line, opts...)
	sentryMetrics.RecordParse(ctx, "line", 1, time.Since(start), err)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err, 0)
		return
	}

	writeJSON(w, r, http.StatusOK, chord.AssignSymbols(line, grammar.Default()))
}

func HandleRender(w http.ResponseWriter, r *http.Request) {
	ctx, finish := sentryMetrics.StartTransaction(r.Context(), "POST /render")
	defer finish()

	var input model.RenderRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, r, http.StatusBadRequest, err, 0)
		return
	}

	opts, err := renderOptions(input.Options)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err, 0)
		return
	}

	start := time.Now()
	text, err := sheet.RenderText(ctx, input.Sheet, opts)
	sentryMetrics.RecordParse(ctx, "sheet", countLines(input.Sheet), time.Since(start), err)

	var lineErr *sheet.LineError
	switch {
	case errors.As(err, &lineErr):
		writeError(w, r, http.StatusUnprocessableEntity, err, lineErr.Number)
		return
	case err != nil:
		sentryMetrics.CaptureError(err)
		writeError(w, r, http.StatusInternalServerError, err, 0)
		return
	}

	writeJSON(w, r, http.StatusOK, model.RenderResponse{Text: text})
}

func renderOptions(in model.RenderOptions) (sheet.Options, error) {
	flags := renderFlags{
		alignBars:      in.AlignBars,
		alignLyrics:    in.AlignChordsWithLyrics,
		printDurations: in.PrintChordsDuration,
		timeSignature:  in.TimeSignature,
		display:        in.Display,
	}
	if flags.timeSignature == "" {
		flags.timeSignature = model.DefaultTimeSignature.String()
	}
	if in.PrintBarSeparators != nil {
		flags.noBarSeparators = !*in.PrintBarSeparators
	}
	return flags.options()
}

func countLines(text string) int {
	n := 1
	for _, r := range text {
		if r == '\n' {
			n++
		}
	}
	return n
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.LoggerFromContext(r.Context()).Error("could not encode response",
			"path", r.URL.Path,
			"error", err,
		)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error, line int) {
	requestID := logging.GetRequestID(r.Context())
	logging.LoggerFromContext(r.Context()).Warn("request failed",
		"path", r.URL.Path,
		"status_code", status,
		"error", err,
	)
	writeJSON(w, r, status, model.ErrorResponse{Error: err.Error(), Line: line, RequestID: requestID})
}

func serve(ctx context.Context, addr string) error {
	m, err := metrics.Init(constants.GetSentryDSN(), version)
	if err != nil {
		return err
	}
	sentryMetrics = m
	defer m.Flush(2 * time.Second)

	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logging.GetLogger().Info("listening", "addr", addr, "sentry", m.Enabled())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
