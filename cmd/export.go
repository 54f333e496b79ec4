package main

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/rapidmidiex/rmxmodes/chord"
	"github.com/rapidmidiex/rmxmodes/event"
	"github.com/rapidmidiex/rmxmodes/midi"
	"github.com/rapidmidiex/rmxmodes/scale"
	"github.com/spf13/cobra"
)

func newExportCmd(sel *selection) *cobra.Command {
	var (
		path    string
		octave  int
		bpm     float64
		seventh bool
	)

	cmd := &cobra.Command{
		Use:   "export [tonic] [mode]",
		Short: "Writes the scale and its chords to a MIDI file",
		Long: `Writes a Standard MIDI File with the scale played up to its octave in
quarter notes, followed by each diatonic chord held for a half note.
With --json the note-on messages are printed as midi envelopes instead.`,
		Example: "  rmxmodes export Eb Lydian -o eb-lydian.mid --seventh",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, tonic, err := sel.resolve(args)
			if err != nil {
				return err
			}
			if bpm <= 0 {
				bpm = sel.cfg.BPM
			}
			kind := chord.Triad
			if seventh {
				kind = chord.Seventh
			}

			notes := append(scale.BuildAbsolute(m, tonic), scale.Octave(tonic))
			chords := chord.Diatonic(m, tonic, kind)
			seq := midi.Explore(notes, chords, octave)
			if err := seq.Validate(); err != nil {
				return err
			}

			if sel.asJSON {
				msgs := midi.ScaleMessages(notes, octave, midi.DefaultVelocity)
				for _, c := range chords {
					msgs = append(msgs, midi.ChordMessages(c, octave, midi.DefaultVelocity)...)
				}
				for _, msg := range msgs {
					if err := writeEnvelope(cmd.OutOrStdout(), event.MIDI, msg); err != nil {
						return err
					}
				}
				return nil
			}

			if path == "" {
				path = strings.ToLower(strings.ReplaceAll(tonic.Name()+"-"+m.Name, " ", "-")) + ".mid"
			}
			err = writeFile(path, func(w io.Writer) error {
				return midi.Export(w, seq, bpm)
			})
			if err != nil {
				return err
			}
			log.New(cmd.ErrOrStderr(), "", 0).Printf("wrote %s (%s %s, %d phrases)", path, tonic.Name(), m.Name, len(seq))
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "output", "o", "", "file to write (default <tonic>-<mode>.mid)")
	cmd.Flags().IntVar(&octave, "octave", midi.DefaultOctave, "octave of the tonic, C4 = middle C")
	cmd.Flags().Float64Var(&bpm, "bpm", 0, "tempo (default from RMX_BPM)")
	cmd.Flags().BoolVar(&seventh, "seventh", false, "export seventh chords instead of triads")
	return cmd
}

// writeFile creates path and fills it with write. The file is removed when writing fails.
func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fault.Wrap(err, fmsg.WithDesc("create "+path, "Could not create "+path))
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fault.Wrap(err, fmsg.With("close "+path))
	}
	return nil
}
