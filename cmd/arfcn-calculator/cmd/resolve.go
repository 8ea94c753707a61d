package cmd

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mwk/arfcn-calculator/internal/band"
	"github.com/mwk/arfcn-calculator/internal/display"
)

// ErrResolveFailed is returned when one or more inputs could not be resolved.
var ErrResolveFailed = errors.New("resolve failed")

var resolveCmd = &cobra.Command{
	Use:   "resolve ARFCN [ARFCN...]",
	Short: "Calculate the uplink, downlink and center frequency of the given ARFCNs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return resolveARFCNs(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, displayOptions())
	},
}

// resolveARFCNs renders the result of every input to out and the errors to
// errOut. Failed inputs do not stop the remaining ones from being resolved.
func resolveARFCNs(out, errOut io.Writer, inputs []string, opts display.Options) error {
	format, err := opts.OutputFormat()
	if err != nil {
		return err
	}

	var failed, written int

	for _, input := range inputs {
		res, err := band.ResolveString(input)
		if err != nil {
			failed++

			log.WithFields(log.Fields{
				"input": input,
				"error": band.ErrorLabel(err),
			}).Debug("resolve: arfcn could not be resolved")

			if err := display.Error(errOut, input, err, opts); err != nil {
				return errors.Wrap(err, "render error")
			}
			continue
		}

		log.WithFields(log.Fields{
			"arfcn": res.ARFCN,
			"band":  res.Band.Name,
		}).Debug("resolve: arfcn resolved")

		// text results are separated by a blank line
		if written > 0 && format == display.FormatText {
			fmt.Fprintln(out)
		}

		if err := display.Result(out, res, opts); err != nil {
			return errors.Wrap(err, "render result error")
		}
		written++
	}

	if failed > 0 {
		return errors.Wrapf(ErrResolveFailed, "%d of %d inputs", failed, len(inputs))
	}

	return nil
}
