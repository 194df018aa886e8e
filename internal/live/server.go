package live

import (
	"context"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 1 * time.Second
	// Pending updates per subscriber before slow peers start dropping frames.
	subscriberBacklog = 4
)

var upgrader = websocket.Upgrader{}

// Server pushes EleUpdate batches to every connected browser. Batches arrive
// on the updates channel (one per engine move); the most recent batch is
// replayed to newly connected peers so they start from the current state.
type Server struct {
	addr string
	rows int
	cols int

	updates <-chan []EleUpdate

	mu   sync.Mutex
	last []EleUpdate
	subs map[chan []EleUpdate]struct{}
}

// NewServer returns a server for a rows×cols grid fed by updates.
func NewServer(addr string, rows, cols int, updates <-chan []EleUpdate) *Server {
	return &Server{
		addr:    addr,
		rows:    rows,
		cols:    cols,
		updates: updates,
		subs:    map[chan []EleUpdate]struct{}{},
	}
}

// ListenAndServe runs the fanout loop and the HTTP server until ctx is
// canceled or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	go s.fanout(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveIndex)
	mux.HandleFunc("/ws", s.serveWS)

	srv := &http.Server{Addr: s.addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeWait)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// fanout distributes every incoming batch to all subscribers, remembering the
// latest one for replay. Subscribers that cannot keep up lose frames rather
// than stalling the hunt.
func (s *Server) fanout(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case batch, ok := <-s.updates:
			if !ok {
				return
			}
			s.mu.Lock()
			s.last = batch
			for sub := range s.subs {
				select {
				case sub <- batch:
				default:
				}
			}
			s.mu.Unlock()
		}
	}
}

func (s *Server) subscribe() chan []EleUpdate {
	sub := make(chan []EleUpdate, subscriberBacklog)
	s.mu.Lock()
	if s.last != nil {
		sub <- s.last
	}
	s.subs[sub] = struct{}{}
	s.mu.Unlock()
	return sub
}

func (s *Server) unsubscribe(sub chan []EleUpdate) {
	s.mu.Lock()
	delete(s.subs, sub)
	s.mu.Unlock()
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	sub := s.subscribe()
	defer s.unsubscribe(sub)

	// Reads are only used to observe the close handshake.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case batch := <-sub:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(batch); err != nil {
				return
			}
		}
	}
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	type indexData struct {
		Rows, Cols int
		CellSize   int
	}
	if err := indexTemplate.Execute(w, indexData{
		Rows:     s.rows,
		Cols:     s.cols,
		CellSize: 42,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

var indexTemplate = template.Must(template.New("index").
	Funcs(template.FuncMap{
		"mult": func(i, j int) int { return i * j },
		"add":  func(i, j int) int { return i + j },
		"seq": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i
			}
			return out
		},
	}).
	Parse(`
<html>
	<body style="background:#1b1d21;color:#ccc;font-family:monospace">
	<div>aircraft hunt — live heatmap (entropy &times; 100)</div>
	{{ $cs := .CellSize }}
	{{ $cols := .Cols }}
	<svg width="{{ mult .Cols $cs }}px" height="{{ mult .Rows $cs }}px">
	{{ range $x := seq .Rows }}
		{{ range $y := seq $cols }}
		<g>
			<rect id="cell-{{ $x }}-{{ $y }}"
				x="{{ mult $y $cs }}px" y="{{ mult $x $cs }}px"
				width="{{ $cs }}px" height="{{ $cs }}px"
				fill="#2e3138" stroke="none" stroke-width="3px"/>
			<text id="txt-{{ $x }}-{{ $y }}"
				x="{{ add (mult $y $cs) 6 }}px" y="{{ add (mult $x $cs) 26 }}px"
				fill="#ddd" font-size="11px"></text>
		</g>
		{{ end }}
	{{ end }}
	</svg>
	<script>
		const ws = new WebSocket("ws://" + location.host + "/ws");
		ws.onmessage = (msg) => {
			for (const update of JSON.parse(msg.data)) {
				const ele = document.getElementById(update.eleId);
				if (!ele) continue;
				for (const op of update.ops) {
					if (op.key === "text") {
						ele.textContent = op.value;
					} else {
						ele.setAttribute(op.key, op.value);
					}
				}
			}
		};
	</script>
	</body>
</html>
`))
