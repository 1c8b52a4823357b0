package scheduler

import (
	"math/rand"
	"sync"
	"time"

	"github.com/color-palette/api/datastore"
	"github.com/color-palette/api/models"
	"github.com/color-palette/api/palette"
	log "github.com/sirupsen/logrus"
)

type Scheduler struct {
	DailyColorRepo datastore.DailyColorRepository
	Now            func() time.Time
	Rand           *rand.Rand

	mu       sync.Mutex
	timer    *time.Timer
	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
}

func NewScheduler(repo datastore.DailyColorRepository) *Scheduler {
	return &Scheduler{
		DailyColorRepo: repo,
		Now:            time.Now,
		Rand:           rand.New(rand.NewSource(time.Now().UnixNano())),
		done:           make(chan struct{}),
	}
}

// Start makes sure today has a color, then picks a new one every midnight
func (s *Scheduler) Start() {
	if _, _, err := s.GenerateDailyColor(); err != nil {
		log.WithError(err).Error("Could not generate today's color at startup")
	}

	wait := durationUntilMidnight(s.Now())
	log.WithField("next_run_in", wait.String()).Info("Scheduler started")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer = time.AfterFunc(wait, func() {
		s.runAndLog()

		s.mu.Lock()
		s.ticker = time.NewTicker(24 * time.Hour)
		ticker := s.ticker
		s.mu.Unlock()

		for {
			select {
			case <-ticker.C:
				s.runAndLog()
			case <-s.done:
				return
			}
		}
	})
}

// Stop stops the scheduler. Calling it more than once is safe.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		if s.timer != nil {
			s.timer.Stop()
		}
		if s.ticker != nil {
			s.ticker.Stop()
		}
		s.mu.Unlock()

		close(s.done)
		log.Info("Scheduler stopped")
	})
}

func (s *Scheduler) runAndLog() {
	if _, _, err := s.GenerateDailyColor(); err != nil {
		log.WithError(err).Error("Daily color generation failed")
	}
}

// GenerateDailyColor stores a random base color for today unless one is
// already there. The bool reports whether a new color was created.
func (s *Scheduler) GenerateDailyColor() (models.DailyColor, bool, error) {
	today := models.StartOfDay(s.Now())
	day := today.Format("2006-01-02")

	existing, err := s.DailyColorRepo.GetByDate(today)
	if err == nil && existing.ID != 0 {
		log.WithFields(log.Fields{"date": day, "hex": existing.Color().Hex()}).Debug("Daily color already exists")
		return existing, false, nil
	}

	s.mu.Lock()
	base := palette.Random(s.Rand)
	s.mu.Unlock()

	saved, err := s.DailyColorRepo.Create(models.NewDailyColor(today, base))
	if err != nil {
		log.WithError(err).WithField("date", day).Error("Error saving daily color")
		return models.DailyColor{}, false, err
	}

	log.WithFields(log.Fields{
		"date": day,
		"hex":  saved.Color().Hex(),
		"rgb":  saved.Color().RGBString(),
	}).Info("Generated daily color")

	return saved, true, nil
}

func durationUntilMidnight(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	return next.Sub(now)
}
