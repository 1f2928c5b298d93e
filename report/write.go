package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// WriteJSON writes r as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}
	return nil
}

// WriteYAML writes r as a YAML document.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}
	return nil
}

// WriteTable writes a header line and one aligned row per object.
func (r Report) WriteTable(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s: %d objects (run %s)\n", r.Source, len(r.Objects), r.RunID); err != nil {
		return fmt.Errorf("report: write table: %w", err)
	}
	if len(r.Objects) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tpixels\tx\ty\tmin\tmax\tsum\tcx\tcy\t")
	for _, o := range r.Objects {
		fmt.Fprintf(tw, "%d\t%d\t%d-%d\t%d-%d\t%.4g\t%.4g\t%.4g\t%.2f\t%.2f\t\n",
			o.Index, o.Pixels,
			o.Bounds.XMin, o.Bounds.XMax, o.Bounds.YMin, o.Bounds.YMax,
			o.Min, o.Max, o.Sum,
			o.WeightedCentroid[0], o.WeightedCentroid[1])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("report: write table: %w", err)
	}
	return nil
}

// Write dispatches on format: "json", "yaml" or "table".
func (r Report) Write(w io.Writer, format string) error {
	switch format {
	case "json":
		return r.WriteJSON(w)
	case "yaml":
		return r.WriteYAML(w)
	case "table", "":
		return r.WriteTable(w)
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
}
