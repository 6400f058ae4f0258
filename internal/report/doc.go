// Package report renders probe results as fixed-format text.
//
// Two entry points cover the two terminal outcomes of a probe:
//
//	report.Render(os.Stdout, rep)      // full metadata block
//	report.RenderError(os.Stdout, err) // error block
//
// Either the full report prints or the error block prints, never a mix
// of the two.
package report
