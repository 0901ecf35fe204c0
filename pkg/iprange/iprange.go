package iprange

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"strings"

	"github.com/henderiw/rangelist/pkg/rangeset"
	"go4.org/netipx"
)

// Set is a coalescing set of IPv4 addresses. Adjacent and overlapping
// addresses, ranges and prefixes collapse into the minimal list of ranges.
// Like rangeset.Set it is not safe for concurrent use.
type Set struct {
	set *rangeset.Set[uint32]
}

func New(opts ...rangeset.Option) *Set {
	return &Set{set: rangeset.New[uint32](opts...)}
}

func (r *Set) Add(addr netip.Addr) error {
	id, err := addrToID(addr)
	if err != nil {
		return err
	}
	r.set.InsertValue(id)
	return nil
}

func (r *Set) AddRange(ipRange netipx.IPRange) error {
	if !ipRange.IsValid() {
		return fmt.Errorf("ip range %s is invalid", ipRange.String())
	}
	from, err := addrToID(ipRange.From())
	if err != nil {
		return err
	}
	to, err := addrToID(ipRange.To())
	if err != nil {
		return err
	}
	r.set.Insert(rangeset.NewRange(from, to))
	return nil
}

func (r *Set) AddPrefix(p netip.Prefix) error {
	if !p.IsValid() {
		return fmt.Errorf("prefix %s is invalid", p.String())
	}
	return r.AddRange(netipx.RangeOfPrefix(p))
}

func (r *Set) Contains(addr netip.Addr) bool {
	id, err := addrToID(addr)
	if err != nil {
		return false
	}
	return r.set.Contains(id)
}

func (r *Set) Count() int {
	return r.set.Count()
}

// Ranges returns the coalesced address ranges in ascending order.
func (r *Set) Ranges() []netipx.IPRange {
	ranges := make([]netipx.IPRange, 0, r.set.Count())
	for rng := range r.set.All() {
		ranges = append(ranges, netipx.IPRangeFrom(idToAddr(rng.Start()), idToAddr(rng.End())))
	}
	return ranges
}

// IPSet returns the content of r as a netipx.IPSet.
func (r *Set) IPSet() (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, ipRange := range r.Ranges() {
		b.AddRange(ipRange)
	}
	return b.IPSet()
}

func (r *Set) String() string {
	parts := make([]string, 0, r.set.Count())
	for rng := range r.set.All() {
		if rng.Start() == rng.End() {
			parts = append(parts, idToAddr(rng.Start()).String())
			continue
		}
		parts = append(parts, fmt.Sprintf("%s-%s", idToAddr(rng.Start()), idToAddr(rng.End())))
	}
	return strings.Join(parts, ", ")
}

func addrToID(addr netip.Addr) (uint32, error) {
	if !addr.IsValid() {
		return 0, fmt.Errorf("ip address %s is invalid", addr.String())
	}
	addr = addr.Unmap()
	if !addr.Is4() {
		return 0, fmt.Errorf("ip address %s is not an ipv4 address", addr.String())
	}
	a4 := addr.As4()
	return binary.BigEndian.Uint32(a4[:]), nil
}

func idToAddr(id uint32) netip.Addr {
	var a4 [4]byte
	binary.BigEndian.PutUint32(a4[:], id)
	return netip.AddrFrom4(a4)
}
