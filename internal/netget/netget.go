// Package netget performs asynchronous HTTP downloads for the console.
//
// Requests run on their own goroutine; every event is handed to the caller
// through the post function supplied at construction, so callbacks never run
// concurrently with console logic.
package netget

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// EventType discriminates Get progress events.
type EventType uint8

const (
	// Progress reports bytes received so far.
	Progress EventType = iota
	// Error reports a failed transfer. No Done follows.
	Error
	// Done reports a completed transfer with the full body.
	Done
)

// Event is one step of an asynchronous GET. Exactly one Error or Done event
// terminates every request, even when the transport fails.
type Event struct {
	Type     EventType
	URL      string
	Received int64
	Total    int64
	Data     []byte
	Err      error
}

const progressChunk = 64 * 1024

// Client downloads from a fixed base URL.
type Client struct {
	base string
	hc   *http.Client
	post func(func())
}

// New creates a client. post delivers callbacks to the consumer's event
// loop; if nil, callbacks run directly on the transfer goroutine.
func New(base string, post func(func())) *Client {
	if post == nil {
		post = func(fn func()) { fn() }
	}
	return &Client{
		base: strings.TrimSuffix(base, "/"),
		hc:   &http.Client{Timeout: 2 * time.Minute},
		post: post,
	}
}

// Get fetches base+url on a new goroutine, reporting progress, then either
// an error or the complete body.
func (c *Client) Get(url string, fn func(Event)) {
	full := c.base + url

	emit := func(ev Event) {
		ev.URL = url
		c.post(func() { fn(ev) })
	}

	go func() {
		resp, err := c.hc.Get(full)
		if err != nil {
			emit(Event{Type: Error, Err: err})
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			emit(Event{Type: Error, Err: fmt.Errorf("unexpected status %s", resp.Status)})
			return
		}

		var body []byte
		buf := make([]byte, progressChunk)
		for {
			n, err := resp.Body.Read(buf)
			if n > 0 {
				body = append(body, buf[:n]...)
				emit(Event{
					Type:     Progress,
					Received: int64(len(body)),
					Total:    resp.ContentLength,
				})
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				emit(Event{Type: Error, Err: err})
				return
			}
		}

		emit(Event{Type: Done, Received: int64(len(body)), Total: int64(len(body)), Data: body})
	}()
}
