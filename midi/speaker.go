package midi

import (
	"sync"
	"time"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Speaker plays streamers on the default audio device. The device is opened on first use.
type Speaker struct {
	sr   beep.SampleRate
	once sync.Once
	err  error
}

func NewSpeaker(sr beep.SampleRate) *Speaker {
	return &Speaker{sr: sr}
}

// Play queues s and blocks until it has drained.
func (sp *Speaker) Play(s beep.Streamer) error {
	sp.once.Do(func() {
		// Bigger -> less CPU, slower response
		// Lower -> more CPU, faster response
		bufLen := sp.sr.N(time.Millisecond * 20)
		sp.err = speaker.Init(sp.sr, bufLen)
	})
	if sp.err != nil {
		return fault.Wrap(sp.err, fmsg.WithDesc("init speaker", "No audio device is available"))
	}

	done := make(chan bool)
	speaker.Play(beep.Seq(s, beep.Callback(func() {
		done <- true
	})))
	<-done
	return nil
}
