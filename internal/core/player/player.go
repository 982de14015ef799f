// Package player holds the client-side playback state machine: which
// episode is loaded, transport state, position and volume. It drives a
// Transport and is in turn updated only by the transport's own events, so
// the transport stays the single source of truth for actual playback.
package player

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/spoonstory/podcast-platform/internal/core/domain"
)

// Transport is the underlying audio-playback primitive the player drives.
// Play blocks for the duration of the start attempt and returns an error
// when the environment refuses playback (e.g. blocked autoplay).
// Implementations report progress by calling the player's OnTimeUpdate,
// OnDurationLoaded and OnEnded hooks.
type Transport interface {
	// SetSource binds the transport to an audio URL. An empty URL
	// unloads the current source.
	SetSource(url string)
	Play(ctx context.Context) error
	Pause()
	// Seek moves the position; clamping is the transport's concern.
	Seek(seconds float64)
	SetVolume(level float64)
}

// Snapshot is an observable copy of the player state.
type Snapshot struct {
	Episode     *domain.Episode
	Series      *domain.Series
	Playing     bool
	CurrentTime float64
	Duration    float64
	Volume      float64
}

// ProgressFunc receives every observed time update for the loaded episode.
type ProgressFunc func(episodeID string, position float64)

// Player is the playback state machine. All mutations funnel through its
// methods; a mutex makes it safe for transport event callbacks and UI
// calls arriving on different goroutines.
type Player struct {
	mu        sync.Mutex
	transport Transport
	logger    zerolog.Logger

	episode     *domain.Episode
	series      *domain.Series
	playing     bool
	currentTime float64
	duration    float64
	volume      float64

	// generation guards the async auto-play attempt: a completion whose
	// generation no longer matches was superseded by a later load and is
	// discarded instead of clobbering fresh state.
	generation uint64

	onProgress ProgressFunc
}

func New(transport Transport, logger zerolog.Logger) *Player {
	return &Player{transport: transport, logger: logger, volume: 1}
}

// SetProgressFunc installs the consumer of time-update events. Pass nil to
// stop forwarding progress.
func (p *Player) SetProgressFunc(fn ProgressFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onProgress = fn
}

// LoadEpisode replaces the current episode. A nil episode clears the
// player: transport stopped, source unloaded, position and duration zeroed.
// Otherwise the source is bound and an auto-play attempt starts; on failure
// the player simply stays paused; the error is logged, never raised.
func (p *Player) LoadEpisode(ctx context.Context, episode *domain.Episode, series *domain.Series) {
	p.mu.Lock()
	p.generation++
	gen := p.generation

	if episode == nil {
		p.transport.Pause()
		p.transport.SetSource("")
		p.episode = nil
		p.series = nil
		p.playing = false
		p.currentTime = 0
		p.duration = 0
		p.mu.Unlock()
		return
	}

	p.episode = episode
	if series != nil {
		p.series = series
	}
	p.playing = false
	p.currentTime = 0
	p.duration = 0

	if episode.AudioURL == "" {
		// Nothing to bind; state carries the episode but the transport
		// is left untouched.
		p.mu.Unlock()
		return
	}

	p.transport.SetSource(episode.AudioURL)
	p.mu.Unlock()

	go p.autoPlay(ctx, gen, episode.ID)
}

func (p *Player) autoPlay(ctx context.Context, gen uint64, episodeID string) {
	err := p.transport.Play(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		// A later load superseded this attempt; its outcome no longer
		// describes the current source.
		return
	}
	if err != nil {
		p.logger.Warn().Err(err).Str("episode_id", episodeID).Msg("auto-play failed")
		return
	}
	p.playing = true
}

// TogglePlayPause flips between playing and paused. No-op when nothing is
// loaded.
func (p *Player) TogglePlayPause(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.episode == nil {
		return
	}

	if p.playing {
		p.transport.Pause()
		p.playing = false
		return
	}

	if err := p.transport.Play(ctx); err != nil {
		p.logger.Warn().Err(err).Str("episode_id", p.episode.ID).Msg("play failed")
		return
	}
	p.playing = true
}

// SeekTo moves the transport position and reflects it in CurrentTime
// immediately, without waiting for the next time-update tick.
func (p *Player) SeekTo(seconds float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.transport.Seek(seconds)
	p.currentTime = seconds
}

// SetVolume clamps level to [0, 1] before applying it.
func (p *Player) SetVolume(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.transport.SetVolume(level)
	p.volume = level
}

// OnTimeUpdate is called by the transport as playback advances. It is the
// only path that moves CurrentTime during playback, and it forwards the
// position to the progress consumer.
func (p *Player) OnTimeUpdate(seconds float64) {
	p.mu.Lock()
	p.currentTime = seconds
	fn := p.onProgress
	var episodeID string
	if p.episode != nil {
		episodeID = p.episode.ID
	}
	p.mu.Unlock()

	if fn != nil && episodeID != "" {
		fn(episodeID, seconds)
	}
}

// OnDurationLoaded is called by the transport once the source's metadata
// is known.
func (p *Player) OnDurationLoaded(seconds float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.duration = seconds
}

// OnEnded is called by the transport when playback reaches the natural end
// of the track. The episode stays loaded, paused.
func (p *Player) OnEnded() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
}

// Snapshot returns a copy of the observable state.
func (p *Player) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		Episode:     p.episode,
		Series:      p.series,
		Playing:     p.playing,
		CurrentTime: p.currentTime,
		Duration:    p.duration,
		Volume:      p.volume,
	}
}
