package dataset

import (
	"math/rand/v2"

	"github.com/ezoic/linreg/pkg/errors"
	"github.com/ezoic/linreg/pkg/log"
)

// SplitOption configures TrainTestSplit.
type SplitOption func(*splitConfig)

type splitConfig struct {
	testFraction float64
	shuffle      bool
	seed         uint64
}

// WithTestFraction sets the fraction of rows assigned to the test partition.
// Must be in (0, 1). Default 0.25.
func WithTestFraction(fraction float64) SplitOption {
	return func(c *splitConfig) {
		c.testFraction = fraction
	}
}

// WithShuffle controls whether rows are shuffled before partitioning.
// Default true. Without shuffling the test partition is the tail of the
// Dataset.
func WithShuffle(shuffle bool) SplitOption {
	return func(c *splitConfig) {
		c.shuffle = shuffle
	}
}

// WithSeed sets the seed for the shuffle. Default 1.
func WithSeed(seed uint64) SplitOption {
	return func(c *splitConfig) {
		c.seed = seed
	}
}

// TrainTestSplit partitions a Dataset into train and test Datasets so the
// model can be evaluated on samples it never saw during fitting. Every row
// lands in exactly one partition; with at least two rows, neither partition
// is empty.
func TrainTestSplit(d *Dataset, opts ...SplitOption) (train, test *Dataset, err error) {
	op := "dataset.TrainTestSplit"

	cfg := &splitConfig{
		testFraction: 0.25,
		shuffle:      true,
		seed:         1,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if d == nil || d.Len() == 0 {
		return nil, nil, errors.Wrap(errors.ErrEmptyData, op)
	}
	if cfg.testFraction <= 0 || cfg.testFraction >= 1 {
		return nil, nil, errors.NewValueError(op, "test fraction must be in (0, 1)")
	}

	n := d.Len()
	if n < 2 {
		return nil, nil, errors.NewValueError(op, "need at least 2 samples to split")
	}

	testSize := int(float64(n) * cfg.testFraction)
	if testSize == 0 {
		testSize = 1
	}
	if testSize == n {
		testSize = n - 1
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	if cfg.shuffle {
		r := rand.New(rand.NewPCG(cfg.seed, cfg.seed))
		r.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	train = d.Select(indices[:n-testSize])
	test = d.Select(indices[n-testSize:])

	log.GetLoggerWithName("dataset").Debug("Dataset split",
		log.OperationKey, log.OperationSplit,
		log.SamplesKey, n,
		log.TrainSamplesKey, train.Len(),
		log.TestSamplesKey, test.Len(),
		log.SeedKey, cfg.seed,
	)

	return train, test, nil
}
