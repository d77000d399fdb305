package network

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/ttacon/chalk"

	"github.com/lixenwraith/fruit-fighter/core"
	"github.com/lixenwraith/fruit-fighter/engine"
	"github.com/lixenwraith/fruit-fighter/status"
	"github.com/lixenwraith/fruit-fighter/vmath"
)

// Hub serves a running game over websocket
// Clients steer the blade with points or hand landmarks and receive one frame per game update
// Hub is the game's gesture source: points reach the game only between Start and Stop
type Hub struct {
	config   *Config
	peers    *PeerManager
	status   *status.Registry
	upgrader websocket.Upgrader

	sink atomic.Pointer[func(vmath.Point)]

	vpMu     sync.RWMutex
	viewport engine.Viewport

	onReset  func()
	onResize func(width, height float64)

	accessLog io.Writer
	server    *http.Server
	listener  net.Listener
	running   atomic.Bool
	wg        sync.WaitGroup

	statPeers    *atomic.Int64
	statFrames   *atomic.Int64
	statMessages *atomic.Int64
	statDropped  *atomic.Int64
}

// NewHub creates a hub; nil cfg uses DefaultConfig
func NewHub(cfg *Config, reg *status.Registry) (*Hub, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "network config")
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Hub{
		config: cfg,
		peers:  NewPeerManager(cfg.MaxPeers),
		status: reg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		viewport:     engine.Viewport{Width: cfg.Width, Height: cfg.Height},
		accessLog:    os.Stdout,
		statPeers:    reg.Ints.Get("bridge.peers"),
		statFrames:   reg.Ints.Get("bridge.frames"),
		statMessages: reg.Ints.Get("bridge.messages"),
		statDropped:  reg.Ints.Get("bridge.dropped"),
	}, nil
}

// SetHandlers configures reset and resize callbacks, either may be nil
// Must be called before Listen
func (h *Hub) SetHandlers(onReset func(), onResize func(width, height float64)) {
	h.onReset = onReset
	h.onResize = onResize
}

// SetAccessLog redirects the HTTP access log, must be called before Listen
func (h *Hub) SetAccessLog(w io.Writer) {
	h.accessLog = w
}

// Start implements engine.GestureSource
func (h *Hub) Start(sink func(vmath.Point)) error {
	if sink == nil {
		return errors.New("nil gesture sink")
	}
	h.sink.Store(&sink)
	return nil
}

// Stop implements engine.GestureSource
func (h *Hub) Stop() {
	h.sink.Store(nil)
}

// Viewport returns the viewport used for landmark mirroring
func (h *Hub) Viewport() engine.Viewport {
	h.vpMu.RLock()
	defer h.vpMu.RUnlock()
	return h.viewport
}

// PeerCount returns connected peer count
func (h *Hub) PeerCount() int {
	return h.peers.PeerCount()
}

// Router returns the HTTP handler serving /ws and /status
func (h *Hub) Router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/ws", h.serveWebsocket).Methods("GET")
	r.HandleFunc("/status", h.serveStatus).Methods("GET")
	return handlers.CombinedLoggingHandler(h.accessLog, r)
}

// Listen binds the configured address and serves in the background
func (h *Hub) Listen() error {
	if !h.running.CompareAndSwap(false, true) {
		return nil
	}

	ln, err := net.Listen("tcp", h.config.Address)
	if err != nil {
		h.running.Store(false)
		return errors.Wrapf(err, "listen on %s", h.config.Address)
	}
	h.listener = ln
	h.server = &http.Server{
		Handler:           h.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	h.wg.Add(1)
	core.Go(func() {
		defer h.wg.Done()
		if err := h.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Printf("bridge: serve: %v", err)
		}
	})

	log.Print(chalk.Green.Color("bridge listening on " + ln.Addr().String()))
	return nil
}

// Addr returns the bound address, empty before Listen
func (h *Hub) Addr() string {
	if h.listener == nil {
		return ""
	}
	return h.listener.Addr().String()
}

// Shutdown stops accepting peers and disconnects the connected ones
func (h *Hub) Shutdown(ctx context.Context) error {
	if !h.running.CompareAndSwap(true, false) {
		return nil
	}

	err := h.server.Shutdown(ctx)
	// Hijacked websocket connections are not tracked by the server
	h.peers.Close()
	h.wg.Wait()

	log.Print(chalk.Yellow.Color("bridge stopped"))
	return errors.Wrap(err, "shutdown")
}

// Pump broadcasts a snapshot for every update signal until stop closes
func (h *Hub) Pump(updates <-chan struct{}, snapshot func() engine.Snapshot, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case _, ok := <-updates:
			if !ok {
				return
			}
			if err := h.BroadcastSnapshot(snapshot()); err != nil {
				log.Printf("bridge: %v", err)
			}
		}
	}
}

// BroadcastSnapshot encodes snap once and queues it on every peer
func (h *Hub) BroadcastSnapshot(snap engine.Snapshot) error {
	peers := h.peers.PeerCount()
	if peers == 0 {
		return nil
	}
	data, err := EncodeFrame(snap)
	if err != nil {
		return err
	}
	sent := h.peers.Broadcast(data)
	h.statFrames.Add(1)
	if sent < peers {
		h.statDropped.Add(int64(peers - sent))
	}
	return nil
}

func (h *Hub) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Print("upgrade:", err)
		return
	}

	peer := newPeer(conn, h.config)
	if err := h.peers.Add(peer); err != nil {
		msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error())
		conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		conn.Close()
		log.Printf("bridge: rejected %s: %v", peer.Addr, err)
		return
	}
	h.statPeers.Add(1)
	log.Print(chalk.Cyan.Color("peer connected " + peer.ID.String() + " " + peer.Addr))

	core.Go(peer.writeLoop)
	core.Go(func() { peer.readLoop(h.handleMessage) })
	core.Go(func() {
		<-peer.Done()
		h.statPeers.Add(-1)
		h.peers.Remove(peer.ID)
		log.Print(chalk.Cyan.Color("peer disconnected " + peer.ID.String()))
	})
}

func (h *Hub) serveStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.status.Export()); err != nil {
		log.Printf("bridge: status: %v", err)
	}
}

// handleMessage applies one client message, called from peer read loops
func (h *Hub) handleMessage(p *Peer, msg *ClientMessage) {
	h.statMessages.Add(1)

	switch msg.Type {
	case MsgPoint:
		h.emit(vmath.Pt(msg.X, msg.Y))

	case MsgLandmarks:
		if len(msg.Landmarks) <= IndexFingerTip {
			return
		}
		h.emit(MirrorLandmark(msg.Landmarks[IndexFingerTip], h.Viewport()))

	case MsgResize:
		if msg.Width <= 0 || msg.Height <= 0 {
			return
		}
		h.vpMu.Lock()
		h.viewport = engine.Viewport{Width: msg.Width, Height: msg.Height}
		h.vpMu.Unlock()
		if h.onResize != nil {
			h.onResize(msg.Width, msg.Height)
		}

	case MsgReset:
		if h.onReset != nil {
			h.onReset()
		}
	}
}

func (h *Hub) emit(pt vmath.Point) {
	if sink := h.sink.Load(); sink != nil {
		(*sink)(pt)
	}
}
