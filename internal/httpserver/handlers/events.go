package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sulemanahsancui/quran-pak/internal/httpserver/deps"
	"github.com/sulemanahsancui/quran-pak/internal/logger"
	"github.com/sulemanahsancui/quran-pak/internal/notify"
)

// Events streams notifier events to a UI surface as server-sent events.
// There is no replay: the stream starts with whatever happens next, so a
// surface attaching late must query current state through the paired GET
// endpoints. An optional ?channels=a,b query narrows the subscription.
func Events(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			writeError(w, http.StatusInternalServerError, "streaming not supported")
			return
		}

		filter, err := parseChannels(r.URL.Query().Get("channels"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		events, unsubscribe := d.Notifier.Subscribe(filter...)
		defer unsubscribe()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		flusher.Flush()

		d.Logger.Debug("event stream attached",
			logger.String("remote_ip", r.RemoteAddr))

		for {
			select {
			case <-r.Context().Done():
				d.Logger.Debug("event stream detached",
					logger.String("remote_ip", r.RemoteAddr))
				return
			case ev, open := <-events:
				if !open {
					return
				}
				if err := writeSSE(w, ev); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}

func writeSSE(w http.ResponseWriter, ev notify.Event) error {
	data, err := json.Marshal(ev.Payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Channel, data)
	return err
}

// parseChannels validates a comma-separated channel list against the closed
// channel enumeration. Subscribing to an unlisted channel is a caller bug
// worth failing loudly on.
func parseChannels(raw string) ([]notify.Channel, error) {
	if raw == "" {
		return nil, nil
	}
	known := make(map[notify.Channel]bool)
	for _, c := range notify.Channels() {
		known[c] = true
	}
	var out []notify.Channel
	for _, name := range strings.Split(raw, ",") {
		c := notify.Channel(strings.TrimSpace(name))
		if !known[c] {
			return nil, fmt.Errorf("unknown channel %q", c)
		}
		out = append(out, c)
	}
	return out, nil
}
