package notify

import (
	"testing"
	"time"

	"github.com/sulemanahsancui/quran-pak/internal/logger"
)

func recvOne(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestSubscribeReceivesPublished(t *testing.T) {
	n := New(logger.Nop())
	defer n.Close()

	ch, unsub := n.Subscribe()
	defer unsub()

	n.Publish(BookmarkAdded, "payload")

	ev := recvOne(t, ch)
	if ev.Channel != BookmarkAdded {
		t.Errorf("Channel = %q, want %q", ev.Channel, BookmarkAdded)
	}
	if ev.Payload != "payload" {
		t.Errorf("Payload = %v, want %q", ev.Payload, "payload")
	}
}

func TestSubscribeFilter(t *testing.T) {
	n := New(logger.Nop())
	defer n.Close()

	ch, unsub := n.Subscribe(PrayerTime)
	defer unsub()

	n.Publish(BookmarkAdded, nil)
	n.Publish(PrayerTime, nil)

	ev := recvOne(t, ch)
	if ev.Channel != PrayerTime {
		t.Errorf("filtered subscriber got %q, want %q", ev.Channel, PrayerTime)
	}
	select {
	case extra := <-ch:
		t.Errorf("filtered subscriber got unexpected event %q", extra.Channel)
	default:
	}
}

func TestPublishWithoutSubscribersDoesNotBlock(t *testing.T) {
	n := New(logger.Nop())
	defer n.Close()
	done := make(chan struct{})
	go func() {
		n.Publish(StopPlayback, nil)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked with no subscribers")
	}
}

func TestSlowSubscriberLosesEventsInsteadOfStalling(t *testing.T) {
	n := New(logger.Nop())
	defer n.Close()

	ch, unsub := n.Subscribe()
	defer unsub()

	// overfill the buffer; the publisher must never block
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBufferSize*2; i++ {
			n.Publish(ReadingHistoryUpdated, i)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish stalled on a full subscriber buffer")
	}

	if got := len(ch); got != subscriberBufferSize {
		t.Errorf("buffered events = %d, want %d", got, subscriberBufferSize)
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	n := New(logger.Nop())
	defer n.Close()

	ch, unsub := n.Subscribe()
	unsub()
	unsub() // second call must be a no-op

	if _, ok := <-ch; ok {
		t.Error("channel still open after unsubscribe")
	}

	// events published after unsubscribe go nowhere
	n.Publish(BookmarkRemoved, nil)
}

func TestCloseClosesAllSubscribers(t *testing.T) {
	n := New(logger.Nop())
	ch1, _ := n.Subscribe()
	ch2, _ := n.Subscribe(PlayAyah)

	n.Close()

	if _, ok := <-ch1; ok {
		t.Error("subscriber 1 channel still open after Close()")
	}
	if _, ok := <-ch2; ok {
		t.Error("subscriber 2 channel still open after Close()")
	}
}

func TestChannelsListsEveryConstant(t *testing.T) {
	all := Channels()
	seen := make(map[Channel]bool, len(all))
	for _, c := range all {
		if seen[c] {
			t.Errorf("duplicate channel %q", c)
		}
		seen[c] = true
	}
	for _, c := range []Channel{
		BookmarkAdded, BookmarkRemoved, BookmarkUpdated, BookmarksCleared,
		RecitationSettingsUpdated, TranslationSettingsUpdated,
		ReadingHistoryUpdated, ReadingHistoryCleared,
		PlayAyah, PlaySurah, PausePlayback, ResumePlayback, StopPlayback,
		PrayerTime,
	} {
		if !seen[c] {
			t.Errorf("Channels() missing %q", c)
		}
	}
}
