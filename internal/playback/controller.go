// Package playback relays recitation commands from the shell to the UI's
// audio engine. The shell does not decode audio; it resolves the current
// reciter, snapshots the recitation settings and publishes a command event
// the UI surfaces act on.
package playback

import (
	"github.com/sulemanahsancui/quran-pak/internal/domain"
	"github.com/sulemanahsancui/quran-pak/internal/logger"
	"github.com/sulemanahsancui/quran-pak/internal/notify"
	"github.com/sulemanahsancui/quran-pak/internal/settings"
)

// AyahRequest is the payload of a play-ayah event.
type AyahRequest struct {
	SurahNumber int                       `json:"surahNumber"`
	AyahNumber  int                       `json:"ayahNumber"`
	Reciter     string                    `json:"reciter"`
	Settings    domain.RecitationSettings `json:"settings"`
}

// SurahRequest is the payload of a play-surah event.
type SurahRequest struct {
	SurahNumber int                       `json:"surahNumber"`
	Reciter     string                    `json:"reciter"`
	Settings    domain.RecitationSettings `json:"settings"`
}

type Controller struct {
	recitation *settings.RecitationManager
	notifier   *notify.Notifier
	logger     logger.Logger
}

func NewController(recitation *settings.RecitationManager, notifier *notify.Notifier, log logger.Logger) *Controller {
	return &Controller{
		recitation: recitation,
		notifier:   notifier,
		logger:     log,
	}
}

// PlayAyah asks the UI to start recitation of one ayah with the current
// reciter and settings.
func (c *Controller) PlayAyah(surahNumber, ayahNumber int) {
	reciter := c.recitation.CurrentReciter()
	snap := c.recitation.SetPlaying(true)
	c.logger.Debug("play ayah",
		logger.Int("surah", surahNumber),
		logger.Int("ayah", ayahNumber),
		logger.String("reciter", reciter.ID))
	c.notifier.Publish(notify.PlayAyah, AyahRequest{
		SurahNumber: surahNumber,
		AyahNumber:  ayahNumber,
		Reciter:     reciter.ID,
		Settings:    snap,
	})
}

// PlaySurah asks the UI to start recitation of a whole surah.
func (c *Controller) PlaySurah(surahNumber int) {
	reciter := c.recitation.CurrentReciter()
	snap := c.recitation.SetPlaying(true)
	c.logger.Debug("play surah",
		logger.Int("surah", surahNumber),
		logger.String("reciter", reciter.ID))
	c.notifier.Publish(notify.PlaySurah, SurahRequest{
		SurahNumber: surahNumber,
		Reciter:     reciter.ID,
		Settings:    snap,
	})
}

// Pause suspends playback.
func (c *Controller) Pause() {
	c.recitation.SetPlaying(false)
	c.notifier.Publish(notify.PausePlayback, nil)
}

// Resume continues suspended playback.
func (c *Controller) Resume() {
	c.recitation.SetPlaying(true)
	c.notifier.Publish(notify.ResumePlayback, nil)
}

// Stop ends playback.
func (c *Controller) Stop() {
	c.recitation.SetPlaying(false)
	c.notifier.Publish(notify.StopPlayback, nil)
}
