package xorlist

import (
	"fmt"

	"github.com/sirkon/errors"
)

const (
	defaultChunkSize = 64
	chunkSizeLimit   = 1 << 16
)

type config struct {
	logger    Logger
	chunkSize int
}

func defaultConfig() config {
	return config{
		logger:    nopLogger{},
		chunkSize: defaultChunkSize,
	}
}

// Option тип опции для создания списка.
type Option interface {
	String() string
	apply(c *config) error
}

// WithLogger задаёт логгер событий жизненного цикла узлов.
func WithLogger(logger Logger) Option {
	return withLogger{logger: logger}
}

// WithChunkSize задаёт количество узлов в одном блоке хранилища.
func WithChunkSize(size int) Option {
	return withChunkSize(size)
}

type withLogger struct {
	logger Logger
}

func (o withLogger) String() string {
	return fmt.Sprintf("set logger %T", o.logger)
}

func (o withLogger) apply(c *config) error {
	if o.logger == nil {
		return errors.New("logger must not be nil")
	}

	c.logger = o.logger
	return nil
}

type withChunkSize int

func (o withChunkSize) String() string {
	return fmt.Sprintf("set chunk size to %d nodes", o)
}

func (o withChunkSize) apply(c *config) error {
	if o <= 0 || o > chunkSizeLimit {
		return errors.Newf("chunk size must be in [1, %d]", chunkSizeLimit).Int("invalid-chunk-size", int(o))
	}

	c.chunkSize = int(o)
	return nil
}
