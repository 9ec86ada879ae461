package txservice

import "time"

const (
	// defaultConfirmations is the default number of confirmations to wait
	// for. Currently advisory only.
	defaultConfirmations = 1
	// defaultConfirmationTimeout bounds how long receipt polling may run.
	defaultConfirmationTimeout = 60 * time.Second
	// defaultPollingInterval is the delay between receipt poll ticks.
	defaultPollingInterval = 2 * time.Second
	// defaultMaxHistorySize bounds the number of terminal records retained.
	defaultMaxHistorySize = 100
	// defaultGasMultiplierPercent is the gas estimation buffer (110%).
	defaultGasMultiplierPercent = 110
)

// Config holds the transaction service configuration.
//
// Fields:
// - Confirmations: the number of confirmations to wait for (advisory).
// - ConfirmationTimeout: how long to poll for a receipt before failing
//   the transaction with a timeout.
// - PollingInterval: the delay between receipt poll ticks.
// - MaxHistorySize: the maximum number of terminal records retained in
//   the registry. Non-terminal records are never counted against it.
// - GasMultiplierPercent: the integer-percent buffer applied to gas
//   estimates (110 means 1.1x).
type Config struct {
	Confirmations        uint64
	ConfirmationTimeout  time.Duration
	PollingInterval      time.Duration
	MaxHistorySize       int
	GasMultiplierPercent int64
}

// DefaultConfig returns the default service configuration.
func DefaultConfig() Config {
	return Config{
		Confirmations:        defaultConfirmations,
		ConfirmationTimeout:  defaultConfirmationTimeout,
		PollingInterval:      defaultPollingInterval,
		MaxHistorySize:       defaultMaxHistorySize,
		GasMultiplierPercent: defaultGasMultiplierPercent,
	}
}

// Options holds optional configuration overrides. Nil fields retain the
// prior value.
type Options struct {
	Confirmations        *uint64
	ConfirmationTimeout  *time.Duration
	PollingInterval      *time.Duration
	MaxHistorySize       *int
	GasMultiplierPercent *int64
}

// Configure merges the recognized options into the service configuration.
// Unspecified keys retain their prior values.
//
// Parameters:
// - opts: the configuration overrides to apply.
func (s *Service) Configure(opts Options) {
	s.configMutex.Lock()
	defer s.configMutex.Unlock()

	if opts.Confirmations != nil {
		s.config.Confirmations = *opts.Confirmations
	}
	if opts.ConfirmationTimeout != nil {
		s.config.ConfirmationTimeout = *opts.ConfirmationTimeout
	}
	if opts.PollingInterval != nil {
		s.config.PollingInterval = *opts.PollingInterval
	}
	if opts.MaxHistorySize != nil {
		s.config.MaxHistorySize = *opts.MaxHistorySize
	}
	if opts.GasMultiplierPercent != nil {
		s.config.GasMultiplierPercent = *opts.GasMultiplierPercent
	}
}

// currentConfig returns a copy of the active configuration.
func (s *Service) currentConfig() Config {
	s.configMutex.RLock()
	defer s.configMutex.RUnlock()
	return s.config
}
