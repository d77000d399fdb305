package network

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// PeerID uniquely identifies a connected peer
type PeerID = uuid.UUID

// Peer is one websocket client
type Peer struct {
	ID       PeerID
	Addr     string
	LastSeen atomic.Int64 // UnixNano
	Dropped  atomic.Uint64

	conn *websocket.Conn
	cfg  *Config

	// Send queue
	sendCh chan []byte

	// Lifecycle
	closeCh   chan struct{}
	closeOnce sync.Once
}

// newPeer wraps an upgraded connection
func newPeer(conn *websocket.Conn, cfg *Config) *Peer {
	p := &Peer{
		ID:      uuid.NewV4(),
		Addr:    conn.RemoteAddr().String(),
		conn:    conn,
		cfg:     cfg,
		sendCh:  make(chan []byte, cfg.SendQueueSize),
		closeCh: make(chan struct{}),
	}
	p.LastSeen.Store(time.Now().UnixNano())
	if cfg.ReadLimit > 0 {
		conn.SetReadLimit(cfg.ReadLimit)
	}
	return p
}

// Send queues a frame for transmission
// Returns false if the peer is closed or its queue is full; slow peers lose frames, never stall the game
func (p *Peer) Send(frame []byte) bool {
	select {
	case <-p.closeCh:
		return false
	default:
	}

	select {
	case p.sendCh <- frame:
		return true
	default:
		p.Dropped.Add(1)
		return false
	}
}

// Close initiates shutdown, safe to call repeatedly
// The write loop owns the socket and closes it after the close frame
func (p *Peer) Close() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
	})
}

// Done is closed once the peer has shut down
func (p *Peer) Done() <-chan struct{} {
	return p.closeCh
}

// readLoop decodes client messages until the connection fails
func (p *Peer) readLoop(handler func(*Peer, *ClientMessage)) {
	defer p.Close()

	for {
		if p.cfg.ReadTimeout > 0 {
			p.conn.SetReadDeadline(time.Now().Add(p.cfg.ReadTimeout))
		}
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			return
		}
		p.LastSeen.Store(time.Now().UnixNano())

		msg, err := DecodeClientMessage(data)
		if err != nil {
			// Malformed input is dropped, the peer stays connected
			continue
		}
		handler(p, msg)
	}
}

// writeLoop sends queued frames
func (p *Peer) writeLoop() {
	defer p.conn.Close()
	defer p.Close()

	for {
		select {
		case <-p.closeCh:
			p.writeClose()
			return
		case frame := <-p.sendCh:
			if err := p.write(websocket.BinaryMessage, frame); err != nil {
				return
			}
		}
	}
}

func (p *Peer) write(messageType int, data []byte) error {
	if p.cfg.WriteTimeout > 0 {
		p.conn.SetWriteDeadline(time.Now().Add(p.cfg.WriteTimeout))
	}
	return errors.Wrap(p.conn.WriteMessage(messageType, data), "write")
}

func (p *Peer) writeClose() {
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "")
	p.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
}

// PeerManager tracks connected peers
type PeerManager struct {
	mu       sync.RWMutex
	peers    map[PeerID]*Peer
	maxPeers int
}

// NewPeerManager creates a peer manager
func NewPeerManager(maxPeers int) *PeerManager {
	return &PeerManager{
		peers:    make(map[PeerID]*Peer),
		maxPeers: maxPeers,
	}
}

// Add registers a peer, failing when the manager is full
func (pm *PeerManager) Add(p *Peer) error {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if len(pm.peers) >= pm.maxPeers {
		return errors.New("max peers reached")
	}
	pm.peers[p.ID] = p
	return nil
}

// Remove forgets a peer
func (pm *PeerManager) Remove(id PeerID) {
	pm.mu.Lock()
	delete(pm.peers, id)
	pm.mu.Unlock()
}

// Broadcast queues a frame on every peer, returning how many accepted it
func (pm *PeerManager) Broadcast(frame []byte) int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	n := 0
	for _, peer := range pm.peers {
		if peer.Send(frame) {
			n++
		}
	}
	return n
}

// Get retrieves a peer by ID
func (pm *PeerManager) Get(id PeerID) (*Peer, bool) {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	p, ok := pm.peers[id]
	return p, ok
}

// PeerCount returns current connected peer count
func (pm *PeerManager) PeerCount() int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return len(pm.peers)
}

// Close disconnects all peers
func (pm *PeerManager) Close() {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	for _, peer := range pm.peers {
		peer.Close()
	}
	pm.peers = make(map[PeerID]*Peer)
}
