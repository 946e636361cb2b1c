package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/di-awab/priseitup/internal/engine"
	domain "github.com/di-awab/priseitup/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printAppraisalResult(r *engine.Result) error {
	tw := newTabWriter(os.Stdout)
	if r.AppraisalID != "" {
		tw.writef("ID:\t%s\n", r.AppraisalID)
	}
	tw.writef("Brand:\t%s\n", orDash(r.Attributes.Brand))
	tw.writef("Model:\t%s\n", orDash(r.Attributes.Model))
	tw.writef("Specs:\t%s\n", orDash(r.Attributes.Specs))
	tw.writef("Condition:\t%s\n", r.Attributes.Condition)
	tw.writef("Estimate:\t$%.0f\n", r.Estimate.Amount)
	tw.writef("Base Source:\t%s\n", r.Estimate.Basis.Source)
	tw.writef("Base Price:\t$%.2f\n", r.Estimate.Basis.BasePrice)
	tw.writef("Condition Factor:\t%.2f\n", r.Estimate.Basis.ConditionFactor)
	tw.writef("Region Factor:\t%.2f\n", r.Estimate.Basis.RegionFactor)
	tw.writef("Specs Factor:\t%.2f\n", r.Estimate.Basis.SpecsFactor)
	if len(r.Range.Prices) > 0 {
		tw.writef("Range:\t$%.2f - $%.2f\n", minOf(r.Range.Prices), maxOf(r.Range.Prices))
	}
	if err := tw.finish(); err != nil {
		return err
	}

	if len(r.Recommendations) > 0 {
		fmt.Println("\nRecommendations:")
		return printRecommendationsTable(r.Recommendations)
	}
	return nil
}

func printAttributes(a *domain.DeviceAttributes) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Brand:\t%s\n", orDash(a.Brand))
	tw.writef("Model:\t%s\n", orDash(a.Model))
	tw.writef("Specs:\t%s\n", orDash(a.Specs))
	tw.writef("Condition:\t%s\n", a.Condition)
	return tw.finish()
}

func printSample(s *domain.MarketSample) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("SOURCE\tMIN\tAVG\tMAX\tLISTINGS\n")
	for i := range s.Sources {
		src := &s.Sources[i]
		tw.writef("%s\t$%.2f\t$%.2f\t$%.2f\t%d\n",
			src.Source, src.Min, src.Avg, src.Max, src.Listings)
	}
	tw.writef("\nBlended Average:\t$%.2f\n", s.BlendedAverage)
	return tw.finish()
}

func printRecommendationsTable(recs []domain.Recommendation) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("TITLE\tPRICE\tDESCRIPTION\n")
	for i := range recs {
		tw.writef("%s\t$%.2f\t%s\n",
			recs[i].Title,
			recs[i].Price,
			truncate(recs[i].Description, 60),
		)
	}
	return tw.finish()
}

func printAppraisalsTable(appraisals []domain.Appraisal) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tTYPE\tBRAND\tMODEL\tCONDITION\tAMOUNT\tCREATED\n")
	for i := range appraisals {
		a := &appraisals[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t$%.0f\t%s\n",
			a.ID,
			a.DeviceType,
			orDash(a.Brand),
			truncate(orDash(a.Model), 30),
			a.Condition,
			a.Amount,
			a.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func printAppraisalDetail(a *domain.Appraisal) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", a.ID)
	tw.writef("Device Type:\t%s\n", a.DeviceType)
	tw.writef("Brand:\t%s\n", orDash(a.Brand))
	tw.writef("Model:\t%s\n", orDash(a.Model))
	tw.writef("Specs:\t%s\n", orDash(a.Specs))
	tw.writef("Condition:\t%s\n", a.Condition)
	tw.writef("Region:\t%s\n", a.Region)
	tw.writef("Amount:\t$%.2f\n", a.Amount)
	tw.writef("Base Source:\t%s\n", a.BaseSource)
	tw.writef("Created:\t%s\n", a.CreatedAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printStats(s *domain.AppraisalStats) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Total Appraisals:\t%d\n", s.Total)
	tw.writef("Average Estimate:\t$%.2f\n", s.AvgAmount)
	if err := tw.finish(); err != nil {
		return err
	}

	if len(s.ByDeviceType) == 0 {
		return nil
	}

	fmt.Println("\nBy Device Type:")
	tw = newTabWriter(os.Stdout)
	tw.writef("TYPE\tCOUNT\tAVG\n")
	for dt, count := range s.ByDeviceType {
		tw.writef("%s\t%d\t$%.2f\n", dt, count, s.AvgByDevice[dt])
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func minOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
