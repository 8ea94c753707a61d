// Package display renders resolved ARFCNs, errors and the static band
// overview for the command line and the API.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/mwk/arfcn-calculator/internal/band"
)

// Format defines the output format.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// DefaultPrecision is the number of decimals used for frequencies.
const DefaultPrecision = 1

// MaxPrecision is the maximum number of decimals used for frequencies.
const MaxPrecision = 6

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Options holds the rendering options.
type Options struct {
	Format    Format
	Precision int
}

func (o Options) precision() int {
	return clampPrecision(o.Precision)
}

// clampPrecision returns DefaultPrecision for negative values and caps the
// precision at MaxPrecision.
func clampPrecision(p int) int {
	switch {
	case p < 0:
		return DefaultPrecision
	case p > MaxPrecision:
		return MaxPrecision
	default:
		return p
	}
}

// OutputFormat returns the normalized output format.
func (o Options) OutputFormat() (Format, error) {
	return o.format()
}

func (o Options) format() (Format, error) {
	switch Format(strings.ToLower(string(o.Format))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "format %q", o.Format)
	}
}

// DialerCode holds a phone dialer code which opens the network info screen.
type DialerCode struct {
	Platform string `json:"platform"`
	Code     string `json:"code"`
}

// DialerCodes holds the known network info dialer codes.
var DialerCodes = []DialerCode{
	{Platform: "Android", Code: "*#*#4636#*#*"},
	{Platform: "iPhone", Code: "*3001#12345#*"},
}

// ResultPayload is the JSON representation of a resolved ARFCN.
type ResultPayload struct {
	ARFCN             int      `json:"arfcn"`
	Band              string   `json:"band"`
	UplinkMHz         float64  `json:"uplinkMHz"`
	DownlinkMHz       float64  `json:"downlinkMHz"`
	CenterMHz         float64  `json:"centerMHz"`
	ChannelSpacingMHz float64  `json:"channelSpacingMHz"`
	Generation        string   `json:"generation"`
	MaxDataRate       string   `json:"maxDataRate"`
	Modulation        []string `json:"modulation"`
	Features          []string `json:"features"`
}

// ErrorPayload is the JSON representation of a failed resolve.
type ErrorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// BandPayload is the JSON representation of a band table.
type BandPayload struct {
	Name              string       `json:"name"`
	Ranges            []band.Range `json:"arfcnRanges"`
	ChannelSpacingMHz float64      `json:"channelSpacingMHz"`
	Generation        string       `json:"generation"`
	MaxDataRate       string       `json:"maxDataRate"`
	Modulation        []string     `json:"modulation"`
	Features          []string     `json:"features"`
}

// NewResultPayload returns the payload for the given result, with the
// frequencies rounded to the given number of decimals.
func NewResultPayload(r band.Result, precision int) ResultPayload {
	return ResultPayload{
		ARFCN:             r.ARFCN,
		Band:              string(r.Band.Name),
		UplinkMHz:         round(r.UplinkMHz, precision),
		DownlinkMHz:       round(r.DownlinkMHz, precision),
		CenterMHz:         round(r.CenterMHz, precision),
		ChannelSpacingMHz: r.Band.ChannelSpacingMHz,
		Generation:        string(r.Band.Generation),
		MaxDataRate:       r.Band.MaxDataRate,
		Modulation:        r.Band.Modulation,
		Features:          r.Band.Features,
	}
}

// NewErrorPayload returns the payload for the given input and resolve error.
func NewErrorPayload(input string, err error) ErrorPayload {
	return ErrorPayload{
		Error:   band.ErrorLabel(err),
		Message: Message(input, err),
	}
}

// NewBandPayloads returns the payloads for the given band tables.
func NewBandPayloads(bands []band.Definition) []BandPayload {
	out := make([]BandPayload, 0, len(bands))
	for _, b := range bands {
		out = append(out, BandPayload{
			Name:              string(b.Name),
			Ranges:            b.Ranges,
			ChannelSpacingMHz: b.ChannelSpacingMHz,
			Generation:        string(b.Generation),
			MaxDataRate:       b.MaxDataRate,
			Modulation:        b.Modulation,
			Features:          b.Features,
		})
	}
	return out
}

// Message returns the user-facing message for the given input and error.
func Message(input string, err error) string {
	switch errors.Cause(err) {
	case band.ErrNonNumericInput:
		return "Please enter a valid integer ARFCN"
	case band.ErrOutOfRange:
		return fmt.Sprintf("ARFCN %s is not in any known network range", strings.TrimSpace(input))
	default:
		return fmt.Sprintf("An unexpected error occurred: %s", err)
	}
}

const resultTemplate = `Results
  Uplink Frequency: {{ mhz .UplinkMHz }} MHz
  Downlink Frequency: {{ mhz .DownlinkMHz }} MHz
  Center Frequency: {{ mhz .CenterMHz }} MHz
  Channel Spacing: {{ printf "%.1f" .Band.ChannelSpacingMHz }} MHz
  Network Type: {{ .Band.Name }}

Network Capabilities
  Technology: {{ .Band.Generation }}
  Max Data Rate: {{ .Band.MaxDataRate }}
  Features: {{ join .Band.Features }}
  Modulation: {{ join .Band.Modulation }}
`

const rangesTemplate = `Network Ranges
{{- range . }}
  {{ .Name }}: {{ .RangeString }}
{{- end }}
`

const dialerCodesTemplate = `Network Info Dialer Codes
{{- range . }}
  {{ .Platform }}: {{ .Code }}
{{- end }}
`

// OverviewPayload is the JSON representation of the band overview.
type OverviewPayload struct {
	Bands       []BandPayload `json:"bands"`
	DialerCodes []DialerCode  `json:"dialerCodes"`
}

// Overview renders the network ranges followed by the dialer codes.
func Overview(w io.Writer, bands []band.Definition, opts Options) error {
	f, err := opts.format()
	if err != nil {
		return err
	}

	if f == FormatJSON {
		return writeJSON(w, OverviewPayload{
			Bands:       NewBandPayloads(bands),
			DialerCodes: DialerCodes,
		})
	}

	if err := Ranges(w, bands, opts); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return errors.Wrap(err, "write error")
	}
	return DialerCodeInfo(w, opts)
}

// Result renders the given result.
func Result(w io.Writer, r band.Result, opts Options) error {
	f, err := opts.format()
	if err != nil {
		return err
	}

	if f == FormatJSON {
		return writeJSON(w, NewResultPayload(r, opts.precision()))
	}

	return execute(w, resultTemplate, opts, r)
}

// Error renders the error returned for the given input.
func Error(w io.Writer, input string, err error, opts Options) error {
	f, fErr := opts.format()
	if fErr != nil {
		return fErr
	}

	if f == FormatJSON {
		return writeJSON(w, NewErrorPayload(input, err))
	}

	_, wErr := fmt.Fprintf(w, "Error: %s\n", Message(input, err))
	return wErr
}

// Ranges renders the network range overview.
func Ranges(w io.Writer, bands []band.Definition, opts Options) error {
	f, err := opts.format()
	if err != nil {
		return err
	}

	if f == FormatJSON {
		return writeJSON(w, NewBandPayloads(bands))
	}

	return execute(w, rangesTemplate, opts, bands)
}

// DialerCodeInfo renders the network info dialer codes.
func DialerCodeInfo(w io.Writer, opts Options) error {
	f, err := opts.format()
	if err != nil {
		return err
	}

	if f == FormatJSON {
		return writeJSON(w, DialerCodes)
	}

	return execute(w, dialerCodesTemplate, opts, DialerCodes)
}

func execute(w io.Writer, text string, opts Options, data interface{}) error {
	precision := opts.precision()
	t, err := template.New("display").Funcs(template.FuncMap{
		"mhz": func(f float64) string {
			return fmt.Sprintf("%.*f", precision, f)
		},
		"join": func(s []string) string {
			return strings.Join(s, ", ")
		},
	}).Parse(text)
	if err != nil {
		return errors.Wrap(err, "parse template error")
	}

	if err := t.Execute(w, data); err != nil {
		return errors.Wrap(err, "execute template error")
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encode json error")
	}
	return nil
}

func round(f float64, precision int) float64 {
	p := math.Pow(10, float64(clampPrecision(precision)))
	return math.Round(f*p) / p
}
