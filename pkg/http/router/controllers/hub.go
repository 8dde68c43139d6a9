package controllers

import (
	"encoding/json"
	"io"
	"net"
	"sort"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
)

// User is one open search visualization stream.
type User struct {
	io   sync.Mutex
	conn io.ReadWriteCloser

	id  uint
	hub *Hub
}

func (u *User) write(x interface{}) error {
	w := wsutil.NewWriter(u.conn, ws.StateServerSide, ws.OpText)
	encoder := json.NewEncoder(w)

	u.io.Lock()
	defer u.io.Unlock()

	if err := encoder.Encode(x); err != nil {
		return err
	}

	return w.Flush()
}

// close sends a normal closure frame and closes the connection.
func (u *User) close() error {
	u.io.Lock()
	defer u.io.Unlock()

	body := ws.NewCloseFrameBody(ws.StatusNormalClosure, "")
	werr := wsutil.WriteServerMessage(u.conn, ws.OpClose, body)
	cerr := u.conn.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

// Hub keeps the open websocket connections so they can be closed on shutdown.
type Hub struct {
	mu  sync.RWMutex
	seq uint
	us  []*User
	ns  map[uint]*User
}

func NewHub() *Hub {
	return &Hub{
		ns: make(map[uint]*User),
		us: make([]*User, 0),
	}
}

func (h *Hub) Register(conn net.Conn) *User {
	user := &User{
		hub:  h,
		conn: conn,
	}

	h.mu.Lock()
	user.id = h.seq
	h.ns[user.id] = user
	h.us = append(h.us, user)

	h.seq++
	h.mu.Unlock()

	return user
}

func (h *Hub) Remove(user *User) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.ns[user.id]; !ok {
		return
	}
	delete(h.ns, user.id)

	// ids are assigned in increasing order, so us stays sorted
	i := sort.Search(len(h.us), func(i int) bool {
		return h.us[i].id >= user.id
	})

	newUs := make([]*User, len(h.us)-1)
	copy(newUs[:i], h.us[:i])
	copy(newUs[i:], h.us[i+1:])
	h.us = newUs
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.us)
}

// RemoveAllUser closes every open connection.
func (h *Hub) RemoveAllUser() {
	h.mu.RLock()
	users := make([]*User, len(h.us))
	copy(users, h.us)
	h.mu.RUnlock()

	for _, user := range users {
		_ = user.conn.Close()
		h.Remove(user)
	}
}
