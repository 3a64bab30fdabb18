package record

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/metacoder/encoding"
	"github.com/arloliu/metacoder/errs"
	"github.com/arloliu/metacoder/format"
	"github.com/arloliu/metacoder/internal/options"
)

// Coder encodes and decodes records with a shared configuration.
//
// A Coder is immutable after construction and safe for concurrent use.
type Coder struct {
	maxSize int
	logger  *zap.Logger
}

// Option is a functional option for configuring a Coder.
type Option = options.Option[*Coder]

// WithMaxSize limits the encoded payload size in bytes, excluding the 0x prefix
// and hex expansion. Encoding a record that does not fit fails with
// errs.ErrSlotOverflow. Zero disables the limit, which is the default.
func WithMaxSize(n int) Option {
	return options.New(func(c *Coder) error {
		if n < 0 {
			return fmt.Errorf("%w: max size %d is negative", errs.ErrInvalidOption, n)
		}
		c.maxSize = n

		return nil
	})
}

// WithLogger sets the logger used by the Coder instead of the package logger.
func WithLogger(l *zap.Logger) Option {
	return options.NoError(func(c *Coder) {
		c.logger = l
	})
}

// NewCoder creates a Coder with the given options.
func NewCoder(opts ...Option) (*Coder, error) {
	c := &Coder{}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

var defaultCoder = &Coder{}

// MaxSize returns the configured payload limit in bytes, zero when unlimited.
func (c *Coder) MaxSize() int {
	return c.maxSize
}

func (c *Coder) log() *zap.Logger {
	if c.logger != nil {
		return c.logger
	}

	return Logger()
}

func (c *Coder) checkSlot(kind format.RecordKind, size int) error {
	if c.maxSize > 0 && size > c.maxSize {
		err := fmt.Errorf("%w: %s payload is %d bytes, slot holds %d", errs.ErrSlotOverflow, kind, size, c.maxSize)
		c.log().Debug("record rejected", zap.Stringer("kind", kind), zap.Error(err))

		return err
	}

	return nil
}

// encodeBytes applies the slot guard to a raw payload and returns its hex form.
func (c *Coder) encodeBytes(kind format.RecordKind, data []byte) (string, error) {
	if err := c.checkSlot(kind, len(data)); err != nil {
		return "", err
	}

	c.log().Debug("record encoded", zap.Stringer("kind", kind), zap.Int("bytes", len(data)))

	return encoding.EncodeHex(data), nil
}

// encodeFields packs positional text fields with the string array codec.
func (c *Coder) encodeFields(kind format.RecordKind, fields []string) (string, error) {
	if err := c.checkSlot(kind, encoding.EncodedSize(fields)); err != nil {
		return "", err
	}

	for i, field := range fields {
		if encoding.HasControlChars(field) {
			c.log().Warn("field contains control characters that will be lost on decode",
				zap.Stringer("kind", kind), zap.Int("field", i))
		}
	}

	encoded := encoding.EncodeStringArray(fields)
	c.log().Debug("record encoded", zap.Stringer("kind", kind), zap.Int("fields", len(fields)),
		zap.Int("bytes", encoding.EncodedSize(fields)))

	return encoded, nil
}

func (c *Coder) decodeFailed(kind format.RecordKind, err error) error {
	c.log().Debug("record decode failed", zap.Stringer("kind", kind), zap.Error(err))
	return err
}
