package engine

import (
	"bytes"
	"io"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Hendrin-Mckay/odingame/assets"
)

// audioSampleRate is the output sample rate all streams are decoded to.
const audioSampleRate = 44100

// audioStream is what the mp3 and vorbis decoders return: a seekable PCM
// stream that knows its total length, which the infinite loop needs.
type audioStream interface {
	io.ReadSeeker
	Length() int64
}

// AudioPlayer plays background music and one-shot sounds. File data comes
// from the asset cache; decoding happens here, where the output sample rate
// is known. There is one audio context per process, so create one player
// and share it.
type AudioPlayer struct {
	ctx       *audio.Context
	cache     *assets.Cache
	log       *zap.Logger
	music     *audio.Player
	musicPath string // cache key held while music plays, released on stop
	volume    float64
}

// NewAudioPlayer creates the process's audio player.
func NewAudioPlayer(cache *assets.Cache, log *zap.Logger) *AudioPlayer {
	if log == nil {
		log = zap.NewNop()
	}
	return &AudioPlayer{
		ctx:    audio.NewContext(audioSampleRate),
		cache:  cache,
		log:    log,
		volume: 1.0,
	}
}

// PlayMusic starts looping background music from an mp3 or ogg file,
// replacing whatever was playing.
func (a *AudioPlayer) PlayMusic(path string) error {
	a.StopMusic()

	data, err := a.cache.AcquireAudio(path)
	if err != nil {
		return err
	}

	var stream audioStream
	switch filepath.Ext(path) {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(audioSampleRate, bytes.NewReader(data))
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(audioSampleRate, bytes.NewReader(data))
	default:
		a.cache.Release(path)
		return errors.Errorf("unsupported audio format: %s", path)
	}
	if err != nil {
		a.cache.Release(path)
		return errors.Wrapf(err, "decode %s", path)
	}

	loop := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := a.ctx.NewPlayer(loop)
	if err != nil {
		a.cache.Release(path)
		return errors.Wrapf(err, "create player for %s", path)
	}
	player.SetVolume(a.volume)
	player.Play()

	a.music = player
	a.musicPath = path
	a.log.Info("music started", zap.String("file", path))
	return nil
}

// StopMusic stops the current background music, if any, and releases its
// cache reference so the file can be pruned.
func (a *AudioPlayer) StopMusic() {
	if a.music != nil {
		a.music.Close()
		a.music = nil
	}
	if a.musicPath != "" {
		a.cache.Release(a.musicPath)
		a.musicPath = ""
	}
}

// PlaySound plays a one-shot mp3 or ogg effect. The decoded player is fire
// and forget; ebiten disposes it when the stream ends.
func (a *AudioPlayer) PlaySound(path string) error {
	data, err := a.cache.AcquireAudio(path)
	if err != nil {
		return err
	}
	defer a.cache.Release(path)

	var player *audio.Player
	switch filepath.Ext(path) {
	case ".mp3":
		stream, derr := mp3.DecodeWithSampleRate(audioSampleRate, bytes.NewReader(data))
		if derr != nil {
			return errors.Wrapf(derr, "decode %s", path)
		}
		player, err = a.ctx.NewPlayer(stream)
	case ".ogg":
		stream, derr := vorbis.DecodeWithSampleRate(audioSampleRate, bytes.NewReader(data))
		if derr != nil {
			return errors.Wrapf(derr, "decode %s", path)
		}
		player, err = a.ctx.NewPlayer(stream)
	default:
		return errors.Errorf("unsupported audio format: %s", path)
	}
	if err != nil {
		return errors.Wrapf(err, "create player for %s", path)
	}
	player.SetVolume(a.volume)
	player.Play()
	return nil
}

// SetVolume sets the volume for future playback, clamped to [0,1]. The
// current music player picks it up immediately.
func (a *AudioPlayer) SetVolume(v float64) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	a.volume = v
	if a.music != nil {
		a.music.SetVolume(v)
	}
}
