package encoder

import (
	"bufio"
	"fmt"
	"io"
)

// Emit implements S4: format each word as 8 lowercase hex digits
// followed by '\n', with no header, address column, or trailing blank
// line.
func Emit(w io.Writer, words []uint32) error {
	return EmitWithFormat(w, words, false, "\n")
}

// EmitWithFormat is Emit generalized over the two knobs the config
// package's [output] table exposes. spec.md §4.4 fixes lowercase and
// '\n'; this is the explicit, overridable variant config.Config.Output
// was added to make possible, not a relaxation of the default.
func EmitWithFormat(w io.Writer, words []uint32, uppercase bool, lineEnding string) error {
	bw := bufio.NewWriter(w)
	format := "%08x" + lineEnding
	if uppercase {
		format = "%08X" + lineEnding
	}
	for _, word := range words {
		if _, err := fmt.Fprintf(bw, format, word); err != nil {
			return err
		}
	}
	return bw.Flush()
}
