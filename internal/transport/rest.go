package transport

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/goodnatureofminers/minicoin/internal/ledger"
	"github.com/goodnatureofminers/minicoin/internal/mempool"
	"github.com/goodnatureofminers/minicoin/internal/node"
	"github.com/goodnatureofminers/minicoin/internal/peer"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Node is what the REST API reads from and acts on.
type Node interface {
	Self() peer.Address
	Role() node.Role
	State() node.State
	Mining() bool
	Summary() ledger.Summary
	ChainSnapshot() []ledger.Block
	Block(index uint64) (ledger.Block, bool)
	Peers() []peer.Address
	Pending() []mempool.Transaction
	StopMining() bool
	SubmitTransaction(ctx context.Context, data string) (mempool.Transaction, error)
}

type (
	StatusResponse struct {
		Address     string `json:"address"`
		Role        string `json:"role"`
		State       string `json:"state"`
		Mining      bool   `json:"mining"`
		ChainLength uint64 `json:"chain_length"`
		Peers       int    `json:"peers"`
		Pending     int    `json:"pending"`
	}

	ChainResponse struct {
		Blocks []ledger.Record `json:"blocks"`
	}

	SummaryResponse struct {
		Length  uint64 `json:"length"`
		Tip     string `json:"tip"`
		Genesis string `json:"genesis"`
	}

	PeersResponse struct {
		Peers []string `json:"peers"`
	}

	StopMiningResponse struct {
		Stopped bool `json:"stopped"`
	}

	SubmitTransactionRequest struct {
		Data string `json:"data"`
	}
)

type restHandler struct {
	logger    *zap.Logger
	node      Node
	mux       *gwruntime.ServeMux
	marshaler gwruntime.Marshaler
}

// NewRESTHandler routes the operator API and /metrics, wrapped in CORS.
func NewRESTHandler(logger *zap.Logger, n Node) (http.Handler, error) {
	h := &restHandler{
		logger:    logger.Named("rest"),
		node:      n,
		mux:       gwruntime.NewServeMux(),
		marshaler: &gwruntime.JSONBuiltin{},
	}

	routes := []struct {
		method, pattern string
		handler         gwruntime.HandlerFunc
	}{
		{http.MethodGet, "/v1/status", h.status},
		{http.MethodGet, "/v1/chain", h.chain},
		{http.MethodGet, "/v1/chain/summary", h.summary},
		{http.MethodGet, "/v1/chain/blocks/{index}", h.block},
		{http.MethodGet, "/v1/peers", h.peers},
		{http.MethodPost, "/v1/mining/stop", h.stopMining},
		{http.MethodPost, "/v1/transactions", h.submitTransaction},
	}
	for _, rt := range routes {
		if err := h.mux.HandlePath(rt.method, rt.pattern, rt.handler); err != nil {
			return nil, err
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/", h.mux)
	mux.Handle("/metrics", promhttp.Handler())
	return cors.Default().Handler(mux), nil
}

// MetricsHandler serves only /metrics, for processes without an operator API.
func MetricsHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// NewHTTPServer returns a server with the timeouts used for the operator API.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
}

// ServeHTTP runs s until ctx is cancelled, then shuts it down.
func ServeHTTP(ctx context.Context, logger *zap.Logger, s *http.Server) error {
	stop := context.AfterFunc(ctx, func() {
		logger.Info("shutting down HTTP server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shut down HTTP server", zap.Error(err))
		}
	})
	defer stop()

	logger.Info("starting HTTP server", zap.String("addr", s.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *restHandler) status(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	h.write(w, r, http.StatusOK, StatusResponse{
		Address:     string(h.node.Self()),
		Role:        string(h.node.Role()),
		State:       h.node.State().String(),
		Mining:      h.node.Mining(),
		ChainLength: h.node.Summary().Length,
		Peers:       len(h.node.Peers()),
		Pending:     len(h.node.Pending()),
	})
}

func (h *restHandler) chain(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	h.write(w, r, http.StatusOK, ChainResponse{Blocks: ledger.NewRecords(h.node.ChainSnapshot())})
}

func (h *restHandler) summary(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	s := h.node.Summary()
	h.write(w, r, http.StatusOK, SummaryResponse{
		Length:  s.Length,
		Tip:     s.Tip.String(),
		Genesis: s.Genesis.String(),
	})
}

func (h *restHandler) block(w http.ResponseWriter, r *http.Request, params map[string]string) {
	index, err := strconv.ParseUint(params["index"], 10, 64)
	if err != nil {
		h.fail(w, r, status.Errorf(codes.InvalidArgument, "bad block index %q", params["index"]))
		return
	}
	b, ok := h.node.Block(index)
	if !ok {
		h.fail(w, r, status.Errorf(codes.NotFound, "block %d not found", index))
		return
	}
	h.write(w, r, http.StatusOK, ledger.NewRecord(b))
}

func (h *restHandler) peers(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	h.write(w, r, http.StatusOK, PeersResponse{Peers: peer.Strings(h.node.Peers())})
}

func (h *restHandler) stopMining(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	stopped := h.node.StopMining()
	if stopped {
		h.logger.Info("mining stopped by operator")
	}
	h.write(w, r, http.StatusOK, StopMiningResponse{Stopped: stopped})
}

func (h *restHandler) submitTransaction(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req SubmitTransactionRequest
	if err := h.marshaler.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, status.Errorf(codes.InvalidArgument, "decode request: %v", err))
		return
	}
	if req.Data == "" {
		h.fail(w, r, status.Error(codes.InvalidArgument, "data is required"))
		return
	}

	tx, err := h.node.SubmitTransaction(r.Context(), req.Data)
	if err != nil {
		h.fail(w, r, status.Errorf(codes.Internal, "submit transaction: %v", err))
		return
	}
	h.write(w, r, http.StatusCreated, tx)
}

func (h *restHandler) write(w http.ResponseWriter, r *http.Request, code int, v any) {
	body, err := h.marshaler.Marshal(v)
	if err != nil {
		h.fail(w, r, status.Errorf(codes.Internal, "marshal response: %v", err))
		return
	}
	w.Header().Set("Content-Type", h.marshaler.ContentType(v))
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		h.logger.Debug("write response", zap.Error(err))
	}
}

func (h *restHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	gwruntime.HTTPError(r.Context(), h.mux, h.marshaler, w, r, err)
}
