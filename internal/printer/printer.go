// Package printer periodically writes a human-readable view of a node's
// ledger, peers and mempool.
package printer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/minicoin/internal/clock"
	"github.com/goodnatureofminers/minicoin/internal/ledger"
	"github.com/goodnatureofminers/minicoin/internal/mempool"
	"github.com/goodnatureofminers/minicoin/internal/peer"
)

// DefaultInterval is how often the printing role dumps the ledger.
const DefaultInterval = 10 * time.Second

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Source is the read-only view of a node the printer renders.
type Source interface {
	Self() peer.Address
	Peers() []peer.Address
	ChainSnapshot() []ledger.Block
	Pending() []mempool.Transaction
}

// PeerPrinter asks the rest of the network to print as well.
type PeerPrinter interface {
	RequestPeersPrint(ctx context.Context)
}

type palette struct {
	header  *color.Color
	label   *color.Color
	hash    *color.Color
	payload *color.Color
	empty   *color.Color
}

// Printer renders a Source to an io.Writer.
type Printer struct {
	logger *zap.Logger
	source Source
	out    io.Writer
	colors palette
	peers  PeerPrinter
}

// New returns a printer writing to out. Colors are dropped when colorize is
// false.
func New(logger *zap.Logger, source Source, out io.Writer, colorize bool) *Printer {
	p := palette{
		header:  color.New(color.FgCyan, color.Bold),
		label:   color.New(color.FgYellow),
		hash:    color.New(color.FgGreen),
		payload: color.New(color.FgWhite),
		empty:   color.New(color.FgHiBlack),
	}
	if !colorize {
		for _, c := range []*color.Color{p.header, p.label, p.hash, p.payload, p.empty} {
			c.DisableColor()
		}
	}
	return &Printer{
		logger: logger.Named("printer"),
		source: source,
		out:    out,
		colors: p,
	}
}

// AskPeers makes Run follow every local dump with a print request to peers.
func (p *Printer) AskPeers(peers PeerPrinter) *Printer {
	p.peers = peers
	return p
}

// Run prints every interval until ctx is cancelled.
func (p *Printer) Run(ctx context.Context, interval time.Duration) {
	p.logger.Info("printing started", zap.Duration("interval", interval))
	clock.Every(ctx, interval, func(ctx context.Context) {
		if err := p.Print(); err != nil {
			p.logger.Warn("print failed", zap.Error(err))
		}
		if p.peers != nil {
			p.peers.RequestPeersPrint(ctx)
		}
	})
}

// Print writes one dump.
func (p *Printer) Print() error {
	w := &errWriter{w: p.out}
	chain := p.source.ChainSnapshot()
	peers := p.source.Peers()
	pending := p.source.Pending()

	p.colors.header.Fprintf(w, "==== node %s ====\n", p.source.Self())

	p.colors.label.Fprintf(w, "peers (%d)\n", len(peers))
	if len(peers) == 0 {
		p.colors.empty.Fprintln(w, "  none")
	}
	for _, addr := range peers {
		fmt.Fprintf(w, "  %s\n", addr)
	}

	p.colors.label.Fprintf(w, "chain (%d blocks)\n", len(chain))
	for _, b := range chain {
		fmt.Fprintf(w, "  #%-4d ", b.Index)
		p.colors.hash.Fprintf(w, "%s", b.Hash)
		fmt.Fprintf(w, " nonce=%d prev=%s\n", b.Nonce, short(b.PreviousHash))
		p.colors.payload.Fprintf(w, "        %s\n", describePayload(b.Payload))
	}

	p.colors.label.Fprintf(w, "mempool (%d)\n", len(pending))
	if len(pending) == 0 {
		p.colors.empty.Fprintln(w, "  empty")
	}
	for _, tx := range pending {
		fmt.Fprintf(w, "  %s %q\n", tx.ID, tx.Data)
	}
	return w.err
}

func describePayload(payload []byte) string {
	if txs, ok := mempool.DecodePayload(payload); ok {
		return fmt.Sprintf("%d transaction(s)", len(txs))
	}
	return fmt.Sprintf("%q", payload)
}

func short(h ledger.Hash) string {
	s := h.String()
	return s[:12]
}

// errWriter remembers the first write error so Print can report it once.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(b)
	e.err = err
	return n, err
}
