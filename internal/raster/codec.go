package raster

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// FormatError reports a malformed ESRI ASCII raster: a header that
// cannot be parsed or a data block whose length does not match
// ncols*nrows.
type FormatError struct {
	Detail string
}

func (e *FormatError) Error() string { return "raster: " + e.Detail }

// headerLabels is the fixed header-line order required by the format.
var headerLabels = [6]string{"ncols", "nrows", "xllcorner", "yllcorner", "cellsize", "NODATA_value"}

// Decode reads an ESRI ASCII raster. The six header lines must appear
// in fixed order; only the value token of each is parsed. Everything
// after the header is read as whitespace-separated values regardless of
// line breaks, since CASiMiR rasters are not always wrapped at ncols.
func Decode(r io.Reader) (*Grid, error) {
	br := bufio.NewReader(r)

	vals := make([]string, len(headerLabels))
	for i, label := range headerLabels {
		line, err := br.ReadString('\n')
		if err != nil && line == "" {
			return nil, &FormatError{Detail: fmt.Sprintf("missing %s header line", label)}
		}
		f := strings.Fields(line)
		if len(f) < 2 {
			return nil, &FormatError{Detail: fmt.Sprintf("malformed %s header line %q", label, strings.TrimSpace(line))}
		}
		vals[i] = f[1]
	}

	var h Header
	var err error
	if h.Ncols, err = strconv.Atoi(vals[0]); err != nil {
		return nil, &FormatError{Detail: fmt.Sprintf("bad ncols value %q", vals[0])}
	}
	if h.Nrows, err = strconv.Atoi(vals[1]); err != nil {
		return nil, &FormatError{Detail: fmt.Sprintf("bad nrows value %q", vals[1])}
	}
	if h.Xllcorner, err = strconv.ParseFloat(vals[2], 64); err != nil {
		return nil, &FormatError{Detail: fmt.Sprintf("bad xllcorner value %q", vals[2])}
	}
	if h.Yllcorner, err = strconv.ParseFloat(vals[3], 64); err != nil {
		return nil, &FormatError{Detail: fmt.Sprintf("bad yllcorner value %q", vals[3])}
	}
	if h.Cellsize, err = strconv.ParseFloat(vals[4], 64); err != nil {
		return nil, &FormatError{Detail: fmt.Sprintf("bad cellsize value %q", vals[4])}
	}
	if h.NodataValue, err = strconv.ParseFloat(vals[5], 64); err != nil {
		return nil, &FormatError{Detail: fmt.Sprintf("bad NODATA_value value %q", vals[5])}
	}

	raw, err := io.ReadAll(br)
	if err != nil {
		return nil, fmt.Errorf("reading raster data: %w", err)
	}
	tokens := strings.Fields(string(raw))
	data := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &FormatError{Detail: fmt.Sprintf("bad data value %q at index %d", tok, i)}
		}
		data[i] = v
	}
	return New(h, data)
}

// DecodeFile reads the raster at path.
func DecodeFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening raster: %w", err)
	}
	defer f.Close()
	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Encode writes g in ESRI ASCII form: the six header lines followed by
// Nrows lines of Ncols space-separated values. NaN cells are written as
// the NODATA value; g itself is left untouched.
func Encode(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "ncols %d\n", g.Ncols)
	fmt.Fprintf(bw, "nrows %d\n", g.Nrows)
	fmt.Fprintf(bw, "xllcorner %v\n", g.Xllcorner)
	fmt.Fprintf(bw, "yllcorner %v\n", g.Yllcorner)
	fmt.Fprintf(bw, "cellsize %v\n", g.Cellsize)
	fmt.Fprintf(bw, "NODATA_value %v\n", g.NodataValue)
	for r := 0; r < g.Nrows; r++ {
		for c := 0; c < g.Ncols; c++ {
			v := g.Data[r*g.Ncols+c]
			if math.IsNaN(v) {
				v = g.NodataValue
			}
			if c > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%v", v)
		}
		if r < g.Nrows-1 {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// EncodeFile writes g to path, creating or truncating the file.
func EncodeFile(path string, g *Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating raster file: %w", err)
	}
	if err := Encode(f, g); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
