package roll

import "go.uber.org/zap"

// Logged wraps a Source and logs every draw at debug level, so a combat
// exchange can be reconstructed roll by roll from the log stream.
type Logged struct {
	src    Source
	logger *zap.Logger
}

// NewLogged creates a Logged source drawing from src and logging to logger.
//
// Precondition: src and logger must be non-nil.
func NewLogged(src Source, logger *zap.Logger) *Logged {
	return &Logged{src: src, logger: logger}
}

// Float64 draws from the wrapped source and logs the value.
//
// Postcondition: Returns exactly the wrapped source's next value.
func (l *Logged) Float64() float64 {
	v := l.src.Float64()
	l.logger.Debug("combat roll", zap.Float64("value", v))
	return v
}
