package skribbl

import (
	"context"
	"time"

	"github.com/bodgit/skribbl/picker"
	"github.com/bodgit/skribbl/pointer"
	"github.com/bodgit/skribbl/queue"
	"github.com/sirupsen/logrus"
)

// Draw runs one drawing session: it converts src, builds the passes and
// draws them with p.
//
// The session stops early when stop is set, when ctx is done or when the
// configured timeout elapses, and reports how much was drawn. stop may be
// nil; if not, it is reset as soon as Draw is called, before the picture
// is converted, and can be handed to anything else that should be able to
// end the session.
//
// Configuration problems are returned as a *ConfigError before p is used.
func (b *Bot) Draw(ctx context.Context, p pointer.Pointer, src Source, cfg Config, stop *Flag) (Result, error) {
	if stop == nil {
		stop = new(Flag)
	}
	stop.Reset()

	// From here on a stop request ends the session, even while converting
	unregister := context.AfterFunc(ctx, stop.Cancel)
	defer unregister()

	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	colors, err := picker.Build(cfg.Picker)
	if err != nil {
		return Result{}, configError(err)
	}

	m, err := b.Convert(src, cfg.Picture())
	if err != nil {
		return Result{}, err
	}

	passes := queue.Build(m, cfg.Queue())

	logger := b.logger.WithField("sha1", src.SHA1)
	logger.WithFields(logrus.Fields{
		"size":   m.Bounds().Size(),
		"passes": len(passes),
		"total":  queue.Total(passes),
	}).Info("drawing")

	e := &Executor{
		Pointer: p,
		Colors:  colors,
		Canvas:  cfg.Canvas,
		Delay:   cfg.Delay,
		Timeout: cfg.Timeout,
		Stop:    stop,
		Logger:  logger,
	}

	started := time.Now()
	res, err := e.Run(passes...)
	if err != nil {
		return res, err
	}

	logger.WithFields(logrus.Fields{
		"drawn":     res.Drawn,
		"total":     res.Total,
		"cancelled": res.Cancelled,
		"timed_out": res.TimedOut,
		"elapsed":   time.Since(started),
	}).Info("drawing finished")

	if b.cache != nil {
		if err := b.cache.AddRecord(Record{
			SHA1:     src.SHA1,
			Started:  started,
			Duration: time.Since(started),
			Result:   res,
		}); err != nil {
			logger.WithError(err).Warn("unable to record session")
		}
	}

	return res, nil
}
