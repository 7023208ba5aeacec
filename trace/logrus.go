package trace

import (
	"github.com/sirupsen/logrus"
)

// Logrus writes one structured log line per step.
type Logrus struct {
	entry *logrus.Entry
	level logrus.Level
}

// NewLogrus returns a sink logging at level through entry. A nil entry uses
// the logrus standard logger. Steps are skipped cheaply when level is not
// enabled on the underlying logger.
func NewLogrus(entry *logrus.Entry, level logrus.Level) *Logrus {
	if entry == nil {
		entry = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Logrus{entry: entry, level: level}
}

// Record logs s. It never fails.
func (l *Logrus) Record(s Step) error {
	if !l.entry.Logger.IsLevelEnabled(l.level) {
		return nil
	}

	fields := logrus.Fields{
		"algorithm":         s.Algorithm,
		"round":             s.Round,
		"candidate":         s.Candidate.String(),
		"candidate_fitness": s.CandidateFitness,
		"best":              s.Best.String(),
		"best_fitness":      s.BestFitness,
	}
	if s.GlobalBestFitness != s.BestFitness {
		fields["global_best_fitness"] = s.GlobalBestFitness
	}
	if s.Temperature != 0 {
		fields["temperature"] = s.Temperature
	}
	l.entry.WithFields(fields).Log(l.level, "search step")

	return nil
}
