// Package rpc exposes the node over HTTP JSON-RPC and a websocket
// event feed. Requests use the {"method": ..., "params": [{...}]} shape
// and responses carry a result object with a status field.
package rpc

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/openfrac/gofracd/internal/config"
	"github.com/openfrac/gofracd/internal/core/service"
	"github.com/openfrac/gofracd/internal/core/tx"
	"github.com/openfrac/gofracd/internal/events"

	// Register all transaction types for FromJSON.
	_ "github.com/openfrac/gofracd/internal/core/tx/all"
)

const shutdownTimeout = 10 * time.Second

// Server handles HTTP JSON-RPC requests and websocket subscriptions.
type Server struct {
	log     zerolog.Logger
	node    *service.Node
	methods map[string]Handler
	txCache *lru.Cache[string, tx.ApplyResult]
	ws      *WebsocketServer
	pub     *Publisher
	httpSrv *http.Server
}

// NewServer builds a server for the given node. The websocket feed is
// mounted at /ws when enabled in the config.
func NewServer(cfg config.RPCConfig, node *service.Node, bus *events.Bus, log zerolog.Logger) (*Server, error) {
	cache, err := lru.New[string, tx.ApplyResult](cfg.TxCacheSize)
	if err != nil {
		return nil, err
	}

	s := &Server{
		log:     log.With().Str("component", "rpc").Logger(),
		node:    node,
		methods: make(map[string]Handler),
		txCache: cache,
	}
	s.registerAllMethods()

	mux := http.NewServeMux()
	mux.Handle("/", s)
	if cfg.EnableWebsocket {
		s.ws = NewWebsocketServer(s.log)
		s.pub = NewPublisher(s.ws, bus, s.log)
		if err := s.pub.Start(); err != nil {
			return nil, err
		}
		mux.Handle("/ws", s.ws)
	}

	s.httpSrv = &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}
	return s, nil
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info().Str("addr", s.httpSrv.Addr).Msg("rpc server listening")
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if s.ws != nil {
			s.ws.CloseAll()
		}
		return s.httpSrv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// ServeHTTP implements http.Handler for the JSON-RPC endpoint.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeResult(w, nil, ErrorInternal("Failed to read request body"))
		return
	}
	defer r.Body.Close()

	var request Request
	if err := json.Unmarshal(body, &request); err != nil {
		s.writeResult(w, nil, ErrorInvalidParams("Invalid JSON: "+err.Error()))
		return
	}
	if request.Method == "" {
		s.writeResult(w, nil, NewError(CodeInvalidParams, "missingCommand", "Missing method field"))
		return
	}

	var params json.RawMessage
	if len(request.Params) > 0 {
		params = request.Params[0]
	}

	result, rpcErr := s.executeMethod(r.Context(), request.Method, params)
	s.writeResult(w, result, rpcErr)
}

func (s *Server) executeMethod(ctx context.Context, method string, params json.RawMessage) (map[string]any, *Error) {
	handler, ok := s.methods[method]
	if !ok {
		return nil, ErrorMethodNotFound(method)
	}
	return handler(ctx, params)
}

// writeResult writes the response envelope. Errors travel inside the
// result object with status "error".
func (s *Server) writeResult(w http.ResponseWriter, result map[string]any, rpcErr *Error) {
	if rpcErr != nil {
		result = map[string]any{
			"status":        "error",
			"error":         rpcErr.ErrorString,
			"error_code":    rpcErr.Code,
			"error_message": rpcErr.Message,
		}
	} else {
		if result == nil {
			result = make(map[string]any)
		}
		result["status"] = "success"
	}

	data, err := json.Marshal(map[string]any{"result": result})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to marshal rpc response")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
