package secrets

import "sync"

// The default engine backs the package-level API. It is created lazily
// with the default configuration and reconfigured in place by Init so the
// random source binding survives bit-width changes.
//
//nolint:gochecknoglobals // process-wide convenience engine
var (
	defaultMu     sync.Mutex
	defaultEngine *Engine
)

func getDefault() (*Engine, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultEngine == nil {
		e, err := New()
		if err != nil {
			return nil, err
		}
		defaultEngine = e
	}
	return defaultEngine, nil
}

// Init configures the default engine. Called on a live engine it keeps the
// existing random source binding unless WithRNG overrides it; on error the
// previous configuration stays in effect.
func Init(opts ...Option) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultEngine == nil {
		e, err := New(opts...)
		if err != nil {
			return err
		}
		defaultEngine = e
		return nil
	}
	return defaultEngine.Reconfigure(opts...)
}

// GetConfig returns the default engine's configuration.
func GetConfig() (Config, error) {
	e, err := getDefault()
	if err != nil {
		return Config{}, err
	}
	return e.Config(), nil
}

// SetRNG binds a registered source on the default engine.
func SetRNG(name string) error {
	e, err := getDefault()
	if err != nil {
		return err
	}
	return e.SetRNG(name)
}

// Split divides hexSecret into n shares via the default engine.
func Split(hexSecret string, n, t int) ([]string, error) {
	e, err := getDefault()
	if err != nil {
		return nil, err
	}
	return e.Split(hexSecret, n, t)
}

// SplitPadded is Split with explicit zero-padding.
func SplitPadded(hexSecret string, n, t, pad int) ([]string, error) {
	e, err := getDefault()
	if err != nil {
		return nil, err
	}
	return e.SplitPadded(hexSecret, n, t, pad)
}

// Combine reconstructs a secret via the default engine.
func Combine(shares []string) (string, error) {
	e, err := getDefault()
	if err != nil {
		return "", err
	}
	return e.Combine(shares)
}

// NewShare issues an additional share via the default engine.
func NewShare(id int, shares []string) (string, error) {
	e, err := getDefault()
	if err != nil {
		return "", err
	}
	return e.NewShare(id, shares)
}

// Random draws nBits from the default engine's source, hex-encoded.
func Random(nBits int) (string, error) {
	e, err := getDefault()
	if err != nil {
		return "", err
	}
	return e.Random(nBits)
}
