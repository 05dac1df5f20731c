// Package peer keeps the set of network addresses a node knows about.
package peer

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

// ErrInvalidAddress is returned for strings that are not host:port pairs.
var ErrInvalidAddress = errors.New("invalid peer address")

// Address is a normalized host:port pair.
type Address string

// NewAddress joins host and port into an Address.
func NewAddress(host string, port uint16) (Address, error) {
	if host == "" {
		return "", fmt.Errorf("%w: empty host", ErrInvalidAddress)
	}
	if port == 0 {
		return "", fmt.Errorf("%w: port must be positive", ErrInvalidAddress)
	}
	return Address(net.JoinHostPort(host, strconv.FormatUint(uint64(port), 10))), nil
}

// ParseAddress validates s and returns it in normalized form.
func ParseAddress(s string) (Address, error) {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidAddress, s, err)
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return "", fmt.Errorf("%w: %q: bad port", ErrInvalidAddress, s)
	}
	return NewAddress(host, uint16(port))
}

// ParseAddresses parses every entry, skipping the ones that fail.
func ParseAddresses(in []string) []Address {
	out := make([]Address, 0, len(in))
	for _, s := range in {
		if a, err := ParseAddress(s); err == nil {
			out = append(out, a)
		}
	}
	return out
}

// Port returns the numeric port of a.
func (a Address) Port() uint16 {
	_, portStr, err := net.SplitHostPort(string(a))
	if err != nil {
		return 0
	}
	port, _ := strconv.ParseUint(portStr, 10, 16)
	return uint16(port)
}

func (a Address) String() string {
	return string(a)
}

// Strings converts addresses to plain strings.
func Strings(addrs []Address) []string {
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = string(a)
	}
	return out
}
