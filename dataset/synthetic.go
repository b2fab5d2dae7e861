package dataset

import (
	"math/rand/v2"
	"time"

	"github.com/ezoic/linreg/pkg/errors"
	"github.com/ezoic/linreg/pkg/log"
)

// Config controls synthetic data generation. Inputs are drawn uniformly from
// [XMin, XMax) and outputs follow Slope*x + Intercept plus independent
// Gaussian noise with standard deviation NoiseStd.
type Config struct {
	Samples   int
	Slope     float64
	Intercept float64
	XMin      float64
	XMax      float64
	NoiseStd  float64
	Seed      uint64
}

// NewConfig returns the default generation config: 100 samples of
// y = 3x + 7 with unit Gaussian noise on x in [0, 10), fixed seed.
func NewConfig() Config {
	return Config{
		Samples:   100,
		Slope:     3.0,
		Intercept: 7.0,
		XMin:      0.0,
		XMax:      10.0,
		NoiseStd:  1.0,
		Seed:      1,
	}
}

// Generate draws a synthetic regression Dataset according to cfg. The same
// seed always produces the same Dataset.
func Generate(cfg Config) (*Dataset, error) {
	op := "dataset.Generate"
	if cfg.Samples <= 0 {
		return nil, errors.NewValueError(op, "sample count must be positive")
	}
	if cfg.XMax <= cfg.XMin {
		return nil, errors.NewValueError(op, "XMax must be greater than XMin")
	}
	if cfg.NoiseStd < 0 {
		return nil, errors.NewValueError(op, "noise standard deviation must not be negative")
	}

	logger := log.GetLoggerWithName("dataset")
	startTime := time.Now()

	r := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	x := make([]float64, cfg.Samples)
	y := make([]float64, cfg.Samples)
	span := cfg.XMax - cfg.XMin
	for i := 0; i < cfg.Samples; i++ {
		x[i] = cfg.XMin + span*r.Float64()
		y[i] = cfg.Slope*x[i] + cfg.Intercept + r.NormFloat64()*cfg.NoiseStd
	}

	logger.Debug("Synthetic dataset generated",
		log.OperationKey, log.OperationGenerate,
		log.SamplesKey, cfg.Samples,
		log.SlopeKey, cfg.Slope,
		log.InterceptKey, cfg.Intercept,
		log.NoiseStdKey, cfg.NoiseStd,
		log.SeedKey, cfg.Seed,
		log.DurationMsKey, time.Since(startTime).Milliseconds(),
	)

	return &Dataset{X: x, Y: y}, nil
}
