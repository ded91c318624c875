package booking

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"regexp"
	"strings"

	"parkme/internal/pkg/errs"
)

const (
	DefaultTicketPrefix = "PKM"
	ticketRandomBytes   = 4
)

var ticketPattern = regexp.MustCompile(`^[A-Z0-9]+-[0-9A-F]{8}$`)

type TicketNumber string

func (t TicketNumber) String() string { return string(t) }

func ParseTicketNumber(v string) (TicketNumber, error) {
	if !ticketPattern.MatchString(v) {
		return "", errs.Validation("malformed ticket number %q", v)
	}
	return TicketNumber(v), nil
}

// TicketGenerator issues "<PREFIX>-XXXXXXXX" with 8 upper-case hex digits
// drawn from a cryptographic source.
type TicketGenerator struct {
	prefix string
	random io.Reader
}

func NewTicketGenerator(prefix string) *TicketGenerator {
	return NewTicketGeneratorWithSource(prefix, rand.Reader)
}

func NewTicketGeneratorWithSource(prefix string, random io.Reader) *TicketGenerator {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" {
		prefix = DefaultTicketPrefix
	}
	return &TicketGenerator{prefix: prefix, random: random}
}

func (g *TicketGenerator) Next() (TicketNumber, error) {
	var buf [ticketRandomBytes]byte
	if _, err := io.ReadFull(g.random, buf[:]); err != nil {
		return "", errs.Wrap(err, "read ticket entropy")
	}
	return TicketNumber(g.prefix + "-" + strings.ToUpper(hex.EncodeToString(buf[:]))), nil
}
