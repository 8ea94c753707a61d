// Package band holds the static cellular band tables and resolves an ARFCN
// to its uplink, downlink and center frequency.
package band

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Name defines the band name.
type Name string

// Available bands.
const (
	GSM900   Name = "GSM900"
	GSM1800  Name = "GSM1800"
	UMTS2100 Name = "UMTS2100"
	LTE1800  Name = "LTE1800"
)

// Generation defines the network generation.
type Generation string

// Network generations.
const (
	Generation2G Generation = "2G"
	Generation3G Generation = "3G"
	Generation4G Generation = "4G"
)

// Range defines an inclusive ARFCN interval.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains returns true when the given ARFCN is within the range.
func (r Range) Contains(arfcn int) bool {
	return arfcn >= r.Start && arfcn <= r.End
}

func (r Range) overlaps(o Range) bool {
	return r.Start <= o.End && o.Start <= r.End
}

// String implements fmt.Stringer.
func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Definition defines a single band table.
type Definition struct {
	Name              Name       `json:"name"`
	Ranges            []Range    `json:"arfcnRanges"`
	FirstARFCN        int        `json:"firstArfcn"`
	UplinkBaseMHz     float64    `json:"uplinkBaseMHz"`
	DownlinkBaseMHz   float64    `json:"downlinkBaseMHz"`
	RasterMHz         float64    `json:"rasterMHz"`
	ChannelSpacingMHz float64    `json:"channelSpacingMHz"`
	Generation        Generation `json:"generation"`
	MaxDataRate       string     `json:"maxDataRate"`
	Modulation        []string   `json:"modulation"`
	Features          []string   `json:"features"`
}

// Contains returns true when one of the band ranges contains the ARFCN.
func (d Definition) Contains(arfcn int) bool {
	for _, r := range d.Ranges {
		if r.Contains(arfcn) {
			return true
		}
	}
	return false
}

// clone returns a copy of the definition which shares no slices with the
// static tables.
func (d Definition) clone() Definition {
	d.Ranges = append([]Range(nil), d.Ranges...)
	d.Modulation = append([]string(nil), d.Modulation...)
	d.Features = append([]string(nil), d.Features...)
	return d
}

// RangeString returns the ranges as a comma separated list, e.g.
// "1-124, 128-251".
func (d Definition) RangeString() string {
	var out []string
	for _, r := range d.Ranges {
		out = append(out, r.String())
	}
	return strings.Join(out, ", ")
}

// uplinkKHz and downlinkKHz evaluate the band formula in kHz so that the
// table values (e.g. 890.2) are reproduced exactly after the conversion to
// MHz.
func (d Definition) uplinkKHz(arfcn int) int64 {
	return mhzToKHz(d.UplinkBaseMHz) + mhzToKHz(d.RasterMHz)*int64(arfcn-d.FirstARFCN)
}

func (d Definition) downlinkKHz(arfcn int) int64 {
	return mhzToKHz(d.DownlinkBaseMHz) + mhzToKHz(d.RasterMHz)*int64(arfcn-d.FirstARFCN)
}

func mhzToKHz(f float64) int64 {
	return int64(math.Round(f * 1000))
}

func kHzToMHz(f int64) float64 {
	return float64(f) / 1000
}

// Result holds the frequencies of a resolved ARFCN.
type Result struct {
	ARFCN       int        `json:"arfcn"`
	Band        Definition `json:"band"`
	UplinkMHz   float64    `json:"uplinkMHz"`
	DownlinkMHz float64    `json:"downlinkMHz"`
	CenterMHz   float64    `json:"centerMHz"`
}

var (
	modulation2G = []string{"GMSK", "8PSK (EDGE)"}
	features2G   = []string{"Voice calls", "SMS", "Basic data"}
	dataRate2G   = "115 Kbps (GPRS), 384 Kbps (EDGE)"
)

// bands holds the band tables in priority order. It must never be modified.
var bands = []Definition{
	{
		Name:              GSM900,
		Ranges:            []Range{{1, 124}, {128, 251}},
		FirstARFCN:        0,
		UplinkBaseMHz:     890.0,
		DownlinkBaseMHz:   935.0,
		RasterMHz:         0.2,
		ChannelSpacingMHz: 0.2,
		Generation:        Generation2G,
		MaxDataRate:       dataRate2G,
		Modulation:        modulation2G,
		Features:          features2G,
	},
	{
		Name:              GSM1800,
		Ranges:            []Range{{512, 885}, {1024, 1885}},
		FirstARFCN:        512,
		UplinkBaseMHz:     1710.2,
		DownlinkBaseMHz:   1805.2,
		RasterMHz:         0.2,
		ChannelSpacingMHz: 0.2,
		Generation:        Generation2G,
		MaxDataRate:       dataRate2G,
		Modulation:        modulation2G,
		Features:          features2G,
	},
	{
		Name:              UMTS2100,
		Ranges:            []Range{{10562, 10687}},
		FirstARFCN:        10562,
		UplinkBaseMHz:     1922.4,
		DownlinkBaseMHz:   2112.4,
		RasterMHz:         0.2,
		ChannelSpacingMHz: 5.0,
		Generation:        Generation3G,
		MaxDataRate:       "42 Mbps (DC-HSPA+)",
		Modulation:        []string{"QPSK", "16QAM"},
		Features:          []string{"Video calls", "High-speed data", "Enhanced security"},
	},
	{
		Name:              LTE1800,
		Ranges:            []Range{{300, 379}},
		FirstARFCN:        300,
		UplinkBaseMHz:     1710.0,
		DownlinkBaseMHz:   1805.0,
		RasterMHz:         0.1,
		ChannelSpacingMHz: 0.1,
		Generation:        Generation4G,
		MaxDataRate:       "Up to 150 Mbps",
		Modulation:        []string{"QPSK", "16QAM", "64QAM"},
		Features:          []string{"High-speed data", "VoLTE", "Low latency"},
	},
}

// Setup validates the band tables. It must be called once on startup.
func Setup() error {
	if err := Validate(bands); err != nil {
		return errors.Wrap(err, "validate band tables error")
	}

	for _, b := range bands {
		log.WithFields(log.Fields{
			"band":       b.Name,
			"ranges":     b.RangeString(),
			"generation": b.Generation,
		}).Debug("band: band table loaded")
	}

	return nil
}

// Bands returns the band tables in priority order.
func Bands() []Definition {
	out := make([]Definition, 0, len(bands))
	for _, b := range bands {
		out = append(out, b.clone())
	}
	return out
}

// Lookup returns the band matching the given name. Matching is
// case-insensitive and ignores spaces, so "gsm 900" returns GSM900.
func Lookup(name string) (Definition, error) {
	n := strings.ToUpper(strings.Join(strings.Fields(name), ""))
	for _, b := range bands {
		if string(b.Name) == n {
			return b.clone(), nil
		}
	}
	return Definition{}, errors.Wrapf(ErrUnknownBand, "band %q", name)
}

// Validate checks that all ranges are well-formed and that no ARFCN belongs
// to more than one band.
func Validate(defs []Definition) error {
	for i, a := range defs {
		if len(a.Ranges) == 0 {
			return errors.Wrapf(ErrInvalidRange, "band %s has no ranges", a.Name)
		}

		for _, r := range a.Ranges {
			if r.Start > r.End {
				return errors.Wrapf(ErrInvalidRange, "band %s range %s", a.Name, r)
			}
		}

		for _, b := range defs[i+1:] {
			for _, ra := range a.Ranges {
				for _, rb := range b.Ranges {
					if ra.overlaps(rb) {
						return errors.Wrapf(ErrOverlappingRanges, "%s %s and %s %s", a.Name, ra, b.Name, rb)
					}
				}
			}
		}
	}

	return nil
}

// Resolve returns the uplink, downlink and center frequency for the given
// ARFCN. ErrOutOfRange is returned when no band contains the ARFCN.
func Resolve(arfcn int) (Result, error) {
	for _, b := range bands {
		if !b.Contains(arfcn) {
			continue
		}

		ul := kHzToMHz(b.uplinkKHz(arfcn))
		dl := kHzToMHz(b.downlinkKHz(arfcn))

		resolveCounter(b.Name).Inc()

		return Result{
			ARFCN:       arfcn,
			Band:        b.clone(),
			UplinkMHz:   ul,
			DownlinkMHz: dl,
			CenterMHz:   (ul + dl) / 2,
		}, nil
	}

	resolveErrorCounter(ErrOutOfRange).Inc()
	return Result{}, errors.Wrapf(ErrOutOfRange, "arfcn %d", arfcn)
}

// ParseARFCN parses the given decimal string. Surrounding whitespace is
// ignored.
func ParseARFCN(s string) (int, error) {
	arfcn, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(ErrNonNumericInput, "parse %q", s)
	}
	return arfcn, nil
}

// ResolveString parses and resolves the given raw input.
func ResolveString(s string) (Result, error) {
	arfcn, err := ParseARFCN(s)
	if err != nil {
		resolveErrorCounter(ErrNonNumericInput).Inc()
		return Result{}, err
	}
	return Resolve(arfcn)
}
