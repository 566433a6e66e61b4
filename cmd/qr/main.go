// Command qr encodes a QR symbol and renders it to the terminal or a PNG file.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/nth-eye/qr"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

var g = struct {
	version int
	level   string
	mask    int
	scale   int
	border  int
	out     string
	sjis    bool
	quiet   bool
	help    bool
}{
	level:  "M",
	mask:   qr.MaskAuto,
	scale:  4,
	border: 4,
}

func main() {
	getopt.FlagLong(&g.version, "version", 'v', "symbol version 1-40; 0 picks the smallest that fits")
	getopt.FlagLong(&g.level, "level", 'l', "error correction level (L, M, Q or H)")
	getopt.FlagLong(&g.mask, "mask", 'm', "mask pattern 0-7; -1 selects the lowest-penalty one")
	getopt.FlagLong(&g.out, "output", 'o', "write a PNG image to this file instead of the terminal")
	getopt.FlagLong(&g.scale, "scale", 's', "PNG pixels per module")
	getopt.FlagLong(&g.border, "border", 'b', "quiet zone width in modules")
	getopt.FlagLong(&g.sjis, "kanji", 'k', "convert input to Shift JIS so kanji mode can apply")
	getopt.FlagLong(&g.quiet, "quiet", 'q', "print only encoding parameters, not the symbol").SetFlag()
	getopt.FlagLong(&g.help, "help", 'h', "show this help").SetFlag()
	getopt.SetParameters("[string ...]")
	getopt.Parse()

	if g.help {
		getopt.PrintUsage(os.Stdout)
		return
	}

	payload, err := readPayload(getopt.Args())
	if err != nil {
		fatal(err)
	}
	level, err := parseLevel(g.level)
	if err != nil {
		fatal(err)
	}
	enc, err := encode(payload, level)
	if err != nil {
		fatal(err)
	}

	if g.quiet {
		fmt.Printf("version %d, level %s, mask %d, mode %s\n",
			enc.Version(), enc.Level(), enc.Mask(), qr.ChooseMode(payload))
		return
	}
	if g.out != "" {
		if err := writePNG(g.out, enc); err != nil {
			fatal(err)
		}
		return
	}
	renderTerminal(os.Stdout, enc)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "qr: error: %v\n", err)
	os.Exit(1)
}

// readPayload joins command-line strings, or reads standard input with the
// final newline stripped, then optionally converts to Shift JIS.
func readPayload(args []string) ([]byte, error) {
	var data []byte
	if len(args) > 0 {
		data = []byte(strings.Join(args, " "))
	} else {
		in, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		data = []byte(strings.TrimSuffix(string(in), "\n"))
	}
	if g.sjis {
		converted, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), data)
		if err != nil {
			return nil, fmt.Errorf("convert to Shift JIS: %w", err)
		}
		data = converted
	}
	return data, nil
}

func parseLevel(s string) (qr.ErrorCorrectionLevel, error) {
	switch strings.ToUpper(s) {
	case "L":
		return qr.ECLevelL, nil
	case "M":
		return qr.ECLevelM, nil
	case "Q":
		return qr.ECLevelQ, nil
	case "H":
		return qr.ECLevelH, nil
	}
	return 0, fmt.Errorf("invalid error correction level %q", s)
}

func encode(payload []byte, level qr.ErrorCorrectionLevel) (*qr.Encoder, error) {
	if g.version != 0 {
		enc, err := qr.NewEncoder(g.version)
		if err != nil {
			return nil, err
		}
		if err := enc.Encode(payload, level, g.mask); err != nil {
			return nil, err
		}
		return enc, nil
	}
	for v := 1; v <= 40; v++ {
		enc, _ := qr.NewEncoder(v)
		if err := enc.Encode(payload, level, g.mask); err == nil {
			return enc, nil
		}
	}
	return nil, fmt.Errorf("payload does not fit any version at level %s", level)
}

// renderTerminal prints the symbol with a quiet zone, using block glyphs on a
// terminal and "##" otherwise.
func renderTerminal(w io.Writer, enc *qr.Encoder) {
	dark, light := "##", "  "
	if isatty.IsTerminal(os.Stdout.Fd()) {
		dark = "██"
	}
	side := enc.Size()
	margin := strings.Repeat(light, side+2*g.border)
	for i := 0; i < g.border; i++ {
		fmt.Fprintln(w, margin)
	}
	for y := 0; y < side; y++ {
		fmt.Fprint(w, strings.Repeat(light, g.border))
		for x := 0; x < side; x++ {
			if enc.Module(x, y) {
				fmt.Fprint(w, dark)
			} else {
				fmt.Fprint(w, light)
			}
		}
		fmt.Fprintln(w, strings.Repeat(light, g.border))
	}
	for i := 0; i < g.border; i++ {
		fmt.Fprintln(w, margin)
	}
}

func writePNG(path string, enc *qr.Encoder) error {
	side := enc.Size()
	size := (side + 2*g.border) * g.scale
	img := image.NewGray(image.Rect(0, 0, size, size))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if !enc.Module(x, y) {
				continue
			}
			px := (x + g.border) * g.scale
			py := (y + g.border) * g.scale
			for dy := 0; dy < g.scale; dy++ {
				for dx := 0; dx < g.scale; dx++ {
					img.SetGray(px+dx, py+dy, color.Gray{})
				}
			}
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
