// Package notify fans state-changed events out from the authoritative shell
// process to attached UI surfaces. Delivery is fire-and-forget: there is no
// buffering or replay, so a late subscriber must query current state instead
// of relying on missed events.
package notify

import (
	"sync"

	"github.com/google/uuid"

	"github.com/sulemanahsancui/quran-pak/internal/logger"
)

// Channel is the closed enumeration of event channels. Only the constants
// below are published; handlers subscribing by name cannot invent new ones.
type Channel string

const (
	BookmarkAdded    Channel = "bookmark-added"
	BookmarkRemoved  Channel = "bookmark-removed"
	BookmarkUpdated  Channel = "bookmark-updated"
	BookmarksCleared Channel = "bookmarks-cleared"

	RecitationSettingsUpdated  Channel = "recitation-settings-updated"
	TranslationSettingsUpdated Channel = "translation-settings-updated"

	ReadingHistoryUpdated Channel = "reading-history-updated"
	ReadingHistoryCleared Channel = "reading-history-cleared"

	PlayAyah       Channel = "play-ayah"
	PlaySurah      Channel = "play-surah"
	PausePlayback  Channel = "pause-playback"
	ResumePlayback Channel = "resume-playback"
	StopPlayback   Channel = "stop-playback"

	PrayerTime Channel = "prayer-time"
)

// Channels lists every known channel, in a stable order.
func Channels() []Channel {
	return []Channel{
		BookmarkAdded, BookmarkRemoved, BookmarkUpdated, BookmarksCleared,
		RecitationSettingsUpdated, TranslationSettingsUpdated,
		ReadingHistoryUpdated, ReadingHistoryCleared,
		PlayAyah, PlaySurah, PausePlayback, ResumePlayback, StopPlayback,
		PrayerTime,
	}
}

// Event is one published state change. Payload is the created/removed/updated
// record or command body, never a full-collection dump.
type Event struct {
	Channel Channel `json:"channel"`
	Payload any     `json:"payload,omitempty"`
}

// subscriberBufferSize is the channel buffer for each subscriber. A slow
// subscriber that falls more than this far behind starts losing events.
const subscriberBufferSize = 64

type subscriber struct {
	ch     chan Event
	filter map[Channel]bool // nil => all channels
}

// Notifier is an in-memory fan-out of events to attached subscribers.
// It is constructed once at bootstrap and injected into every manager;
// there is no ambient global instance.
type Notifier struct {
	mu     sync.RWMutex
	subs   map[string]*subscriber
	logger logger.Logger
}

func New(log logger.Logger) *Notifier {
	return &Notifier{
		subs:   make(map[string]*subscriber),
		logger: log,
	}
}

// Subscribe registers a handler channel. With no filter arguments the
// subscriber receives every event; otherwise only the listed channels.
// The returned func removes the subscription and closes the channel.
func (n *Notifier) Subscribe(channels ...Channel) (<-chan Event, func()) {
	id := uuid.NewString()
	sub := &subscriber{ch: make(chan Event, subscriberBufferSize)}
	if len(channels) > 0 {
		sub.filter = make(map[Channel]bool, len(channels))
		for _, c := range channels {
			sub.filter[c] = true
		}
	}

	n.mu.Lock()
	n.subs[id] = sub
	n.mu.Unlock()

	n.logger.Debug("subscriber added", logger.String("sub_id", id))

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			n.mu.Lock()
			if s, ok := n.subs[id]; ok {
				delete(n.subs, id)
				close(s.ch)
			}
			n.mu.Unlock()
			n.logger.Debug("subscriber removed", logger.String("sub_id", id))
		})
	}
	return sub.ch, unsubscribe
}

// Publish delivers an event to all current subscribers of its channel.
// With no subscribers the event is dropped. Sends are non-blocking: a
// subscriber whose buffer is full loses the event rather than stalling the
// authoritative process.
func (n *Notifier) Publish(channel Channel, payload any) {
	ev := Event{Channel: channel, Payload: payload}

	n.mu.RLock()
	defer n.mu.RUnlock()

	for id, sub := range n.subs {
		if sub.filter != nil && !sub.filter[channel] {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			n.logger.Debug("dropped event for slow subscriber",
				logger.String("channel", string(channel)),
				logger.String("sub_id", id))
		}
	}
}

// Close removes all subscribers and closes their channels.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for id, sub := range n.subs {
		close(sub.ch)
		delete(n.subs, id)
	}
}
